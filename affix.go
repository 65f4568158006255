package cutaffix

import (
	"fmt"
	"strings"
)

type affixKind int

const (
	singleAffix affixKind = iota
	listAffix
)

// Affix is either a single affix or an ordered list of candidate affixes.
// The zero value is the single empty affix, which matches every subject and
// removes nothing.
type Affix[S Sequence] struct {
	kind   affixKind
	single S
	list   []S
}

// Single returns an Affix holding exactly one candidate.
func Single[S Sequence](affix S) Affix[S] {
	return Affix[S]{kind: singleAffix, single: own(affix)}
}

// AnyOf returns an Affix that tries each candidate in order and uses the
// first one that matches. An empty list never matches.
func AnyOf[S Sequence](candidates ...S) Affix[S] {
	list := make([]S, len(candidates))
	for i, c := range candidates {
		list[i] = own(c)
	}
	return Affix[S]{kind: listAffix, list: list}
}

// IsList reports whether a was built with AnyOf.
func (a Affix[S]) IsList() bool {
	return a.kind == listAffix
}

// Len returns the number of candidates.
func (a Affix[S]) Len() int {
	if a.kind == listAffix {
		return len(a.list)
	}
	return 1
}

// Candidates returns a copy of the candidates in match order.
func (a Affix[S]) Candidates() []S {
	if a.kind == singleAffix {
		return []S{own(a.single)}
	}
	result := make([]S, len(a.list))
	for i, c := range a.list {
		result[i] = own(c)
	}
	return result
}

func (a Affix[S]) String() string {
	if a.kind == singleAffix {
		return fmt.Sprintf("%q", string(a.single))
	}
	parts := make([]string, 0, len(a.list))
	for _, c := range a.list {
		parts = append(parts, fmt.Sprintf("%q", string(c)))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// match returns the first candidate accepted by test. The candidate is not
// copied; callers only read its length.
func (a Affix[S]) match(test func(S) bool) (S, bool) {
	switch a.kind {
	case listAffix:
		for _, c := range a.list {
			if test(c) {
				return c, true
			}
		}
		var zero S
		return zero, false
	default:
		return a.single, test(a.single)
	}
}
