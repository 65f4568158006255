package cutaffix

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"github.com/arran4/cutaffix/errors"
	"github.com/kballard/go-shellquote"
	"github.com/stoewer/go-strcase"
	"go.uber.org/zap"
)

// Case names how a rule renders its result after cutting.
type Case string

const (
	CaseNone       Case = "none"
	CaseSnake      Case = "snake"
	CaseKebab      Case = "kebab"
	CaseUpperSnake Case = "upper-snake"
	CaseUpperKebab Case = "upper-kebab"
	CaseCamel      Case = "camel"
	CaseUpperCamel Case = "upper-camel"
)

var caseRenderers = map[Case]func(string) string{
	CaseNone:       func(s string) string { return s },
	CaseSnake:      strcase.SnakeCase,
	CaseKebab:      strcase.KebabCase,
	CaseUpperSnake: strcase.UpperSnakeCase,
	CaseUpperKebab: strcase.UpperKebabCase,
	CaseCamel:      strcase.LowerCamelCase,
	CaseUpperCamel: strcase.UpperCamelCase,
}

// Apply renders s in case c. Unknown cases leave s untouched.
func (c Case) Apply(s string) string {
	if render, ok := caseRenderers[c]; ok {
		return render(s)
	}
	return s
}

// Rule is a named pair of prefix and suffix candidate lists.
type Rule struct {
	EntryNumber int
	Name        string
	Prefixes    []string
	Suffixes    []string
	Case        Case
}

// Apply cuts the first matching prefix, then the first matching suffix, then
// renders the remainder in the rule's case.
func (r *Rule) Apply(s string) string {
	s = CutPrefix(s, AnyOf(r.Prefixes...))
	s = CutSuffix(s, AnyOf(r.Suffixes...))
	return r.Case.Apply(s)
}

// String serializes the Rule back into the rule set format.
func (r *Rule) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name %s\n", r.Name))
	if len(r.Prefixes) > 0 {
		sb.WriteString(fmt.Sprintf("Prefix %s\n", shellquote.Join(r.Prefixes...)))
	}
	if len(r.Suffixes) > 0 {
		sb.WriteString(fmt.Sprintf("Suffix %s\n", shellquote.Join(r.Suffixes...)))
	}
	if r.Case != "" && r.Case != CaseNone {
		sb.WriteString(fmt.Sprintf("Case %s\n", r.Case))
	}
	return sb.String()
}

// FormatRuleSet serializes rules as blocks separated by blank lines.
func FormatRuleSet(rules []*Rule) string {
	blocks := make([]string, 0, len(rules))
	for _, r := range rules {
		blocks = append(blocks, r.String())
	}
	return strings.Join(blocks, "\n")
}

// Find returns the rule called name, or nil.
func Find(rules []*Rule, name string) *Rule {
	for _, r := range rules {
		if r.Name == name {
			return r
		}
	}
	return nil
}

var ruleFields = []string{"Name", "Prefix", "Suffix", "Case"}

// ParseRuleSetReader parses blank line separated rule blocks. Each line is a
// key followed by its value; lines starting with # are comments.
//
//	Name test-names
//	Prefix test_ Test
//	Suffix Mixin Tests Test
//	Case snake
func ParseRuleSetReader(file io.Reader) ([]*Rule, error) {
	var rules []*Rule
	var parseFields map[string][]string
	scanner := bufio.NewScanner(file)
	var lineNumber = 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		lineNumber++
		if strings.HasPrefix(line, "#") {
			continue
		}

		if line == "" {
			if parseFields == nil {
				continue
			}
			var err error
			rules, err = CreateSanitizeAndAppendRule(parseFields, rules)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNumber)
			}
			parseFields = nil
			continue
		}

		if parseFields == nil {
			parseFields = map[string][]string{}
		}

		key, value, ok := splitField(line)
		if !ok {
			return nil, errors.Wrapf(errors.ErrInvalidRuleSet, "line %d: invalid line: %s", lineNumber, line)
		}
		if key == "Prefix" || key == "Suffix" {
			candidates, err := shellquote.Split(value)
			if err != nil {
				return nil, errors.Wrapf(errors.ErrInvalidRuleSet, "line %d: %s candidates: %v", lineNumber, key, err)
			}
			parseFields[key] = append(parseFields[key], candidates...)
			continue
		}
		parseFields[key] = append(parseFields[key], value)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "line %d", lineNumber), errors.ErrInvalidRuleSet)
	}

	if parseFields != nil {
		var err error
		rules, err = CreateSanitizeAndAppendRule(parseFields, rules)
		if err != nil {
			return nil, errors.Wrapf(err, "last rule (%d)", len(rules))
		}
	}

	return rules, nil
}

// splitField splits a line into one of the known keys and the remainder.
func splitField(line string) (string, string, bool) {
	for _, key := range ruleFields {
		rest, found := CutPrefixFound(line, Single(key))
		if !found {
			continue
		}
		if rest != "" && !unicode.IsSpace(rune(rest[0])) {
			continue
		}
		return key, strings.TrimSpace(rest), true
	}
	return "", "", false
}

// CreateSanitizeAndAppendRule validates the collected fields of one block and
// appends the resulting Rule.
func CreateSanitizeAndAppendRule(fields map[string][]string, rules []*Rule) ([]*Rule, error) {
	names := fields["Name"]
	switch {
	case len(names) == 0 || names[0] == "":
		return rules, errors.Wrapf(errors.ErrInvalidRuleSet, "rule %d: missing Name", len(rules))
	case len(names) > 1:
		return rules, errors.Wrapf(errors.ErrInvalidRuleSet, "rule %d: Name given %d times", len(rules), len(names))
	}
	if Find(rules, names[0]) != nil {
		return rules, errors.Wrapf(errors.ErrInvalidRuleSet, "rule %d: duplicate Name %s", len(rules), names[0])
	}
	c := CaseNone
	switch cases := fields["Case"]; len(cases) {
	case 0:
	case 1:
		c = Case(strings.ToLower(cases[0]))
		if _, ok := caseRenderers[c]; !ok {
			return rules, errors.Wrapf(errors.ErrInvalidRuleSet, "rule %s: unknown Case %s, expected one of %s", names[0], cases[0], strings.Join(caseNames(), ", "))
		}
	default:
		return rules, errors.Wrapf(errors.ErrInvalidRuleSet, "rule %s: Case given %d times", names[0], len(cases))
	}
	r := &Rule{
		EntryNumber: len(rules),
		Name:        names[0],
		Prefixes:    fields["Prefix"],
		Suffixes:    fields["Suffix"],
		Case:        c,
	}
	warnShadowed(r.Name, "Prefix", r.Prefixes, strings.HasPrefix)
	warnShadowed(r.Name, "Suffix", r.Suffixes, func(s, suffix string) bool {
		return suffix != "" && strings.HasSuffix(s, suffix)
	})
	return append(rules, r), nil
}

// warnShadowed logs candidates that can never match because an earlier
// candidate matches every subject they would.
func warnShadowed(rule, key string, candidates []string, covers func(s, affix string) bool) {
	for j := range candidates {
		for i := 0; i < j; i++ {
			if covers(candidates[j], candidates[i]) {
				log().Warn("shadowed candidate",
					zap.String("rule", rule),
					zap.String("key", key),
					zap.String("candidate", candidates[j]),
					zap.String("by", candidates[i]),
				)
				break
			}
		}
	}
}

func caseNames() []string {
	names := make([]string, 0, len(caseRenderers))
	for c := range caseRenderers {
		names = append(names, string(c))
	}
	sort.Strings(names)
	return names
}
