// Package cutaffix removes a literal prefix or suffix from a string-like
// value when it is present.
//
// The cut functions are generic over Sequence: text (string), immutable
// bytes (ByteString) and mutable buffers ([]byte), including named types
// built on them. A subject that does not carry the affix comes back
// unchanged. Mutable subjects always come back as a fresh copy, so a caller
// never gains write access to the value it passed in.
//
//	CutPrefix("test_something", Single("test_"))           // "something"
//	CutSuffix("FooTests", AnyOf("Mixin", "Tests", "Test")) // "Foo"
package cutaffix

// CutPrefix returns subject without the first matching prefix in affix.
// Candidates are tried in order and the first match wins. When none match
// the subject is returned unchanged.
func CutPrefix[S Sequence](subject S, affix Affix[S]) S {
	result, _ := CutPrefixFound(subject, affix)
	return result
}

// CutPrefixFound is CutPrefix that also reports whether a candidate matched.
func CutPrefixFound[S Sequence](subject S, affix Affix[S]) (S, bool) {
	prefix, ok := affix.match(func(c S) bool { return hasPrefix(subject, c) })
	if !ok {
		return own(subject), false
	}
	return own(subject[len(prefix):]), true
}

// CutSuffix returns subject without the first matching suffix in affix.
// A single empty suffix matches and removes nothing. In a list an empty
// candidate never matches; the scan moves on to the next one.
func CutSuffix[S Sequence](subject S, affix Affix[S]) S {
	result, _ := CutSuffixFound(subject, affix)
	return result
}

// CutSuffixFound is CutSuffix that also reports whether a candidate matched.
func CutSuffixFound[S Sequence](subject S, affix Affix[S]) (S, bool) {
	suffix, ok := affix.match(suffixTest(subject, affix))
	if !ok {
		return own(subject), false
	}
	if len(suffix) == 0 {
		return own(subject), true
	}
	return own(subject[:len(subject)-len(suffix)]), true
}

// CutPrefixes removes the first of prefixes that subject starts with.
func CutPrefixes[S Sequence](subject S, prefixes ...S) S {
	return CutPrefix(subject, AnyOf(prefixes...))
}

// CutSuffixes removes the first of suffixes that subject ends with.
func CutSuffixes[S Sequence](subject S, suffixes ...S) S {
	return CutSuffix(subject, AnyOf(suffixes...))
}

// HasPrefix reports whether subject starts with any candidate in affix.
func HasPrefix[S Sequence](subject S, affix Affix[S]) bool {
	_, ok := affix.match(func(c S) bool { return hasPrefix(subject, c) })
	return ok
}

// HasSuffix reports whether subject ends with any candidate in affix,
// skipping empty candidates of a list as CutSuffix does.
func HasSuffix[S Sequence](subject S, affix Affix[S]) bool {
	_, ok := affix.match(suffixTest(subject, affix))
	return ok
}

func suffixTest[S Sequence](subject S, affix Affix[S]) func(S) bool {
	if affix.IsList() {
		return func(c S) bool { return len(c) > 0 && hasSuffix(subject, c) }
	}
	return func(c S) bool { return hasSuffix(subject, c) }
}
