// Package errors provides error handling for cutaffix.
//
// It re-exports the parts of github.com/cockroachdb/errors the library uses
// and declares the sentinel errors callers match with Is.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

var (
	New         = crdb.New
	Newf        = crdb.Newf
	Wrap        = crdb.Wrap
	Wrapf       = crdb.Wrapf
	WithDetailf = crdb.WithDetailf
	WithHint    = crdb.WithHint
	Mark        = crdb.Mark
)

var (
	Is             = crdb.Is
	As             = crdb.As
	GetAllDetails  = crdb.GetAllDetails
	FlattenDetails = crdb.FlattenDetails
)

var (
	// ErrTypeMismatch indicates a subject and an affix do not share a unit
	// type, or a value is not a supported sequence at all.
	ErrTypeMismatch = New("type mismatch")

	// ErrInvalidRuleSet indicates a rule set could not be parsed.
	ErrInvalidRuleSet = New("invalid rule set")

	// ErrInvalidVersion indicates a tag did not hold a semantic version.
	ErrInvalidVersion = New("invalid version")
)

// Mismatch wraps ErrTypeMismatch with a formatted message and attaches the
// same message as a detail.
func Mismatch(format string, args ...interface{}) error {
	return WithDetailf(Wrapf(ErrTypeMismatch, format, args...), format, args...)
}
