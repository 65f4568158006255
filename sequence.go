package cutaffix

import (
	"reflect"
)

// Sequence is the set of string-like types the cut functions operate on.
// Types with an underlying string are immutable; types with an underlying
// []byte are mutable buffers and are always copied on return.
type Sequence interface {
	~string | ~[]byte
}

// ByteString is an immutable sequence of bytes. It shares string's storage
// model but holds byte units, not text, so the dynamic API refuses to mix it
// with string values.
type ByteString string

// ByteUnits marks a string-kinded type as holding bytes rather than text.
func (ByteString) ByteUnits() {}

// Bytes returns a fresh copy of b as a byte slice.
func (b ByteString) Bytes() []byte {
	return []byte(b)
}

func isMutable[S Sequence]() bool {
	return reflect.TypeOf((*S)(nil)).Elem().Kind() == reflect.Slice
}

// own returns s unchanged for immutable types and a private copy of s for
// mutable ones.
func own[S Sequence](s S) S {
	if !isMutable[S]() {
		return s
	}
	b := []byte(s)
	c := make([]byte, len(b))
	copy(c, b)
	return S(c)
}

func hasPrefix[S Sequence](s, prefix S) bool {
	return len(s) >= len(prefix) && string(s[:len(prefix)]) == string(prefix)
}

func hasSuffix[S Sequence](s, suffix S) bool {
	return len(s) >= len(suffix) && string(s[len(s)-len(suffix):]) == string(suffix)
}
