package cutaffix

import (
	"reflect"

	"github.com/arran4/cutaffix/errors"
)

// Unit is the kind of element a sequence holds.
type Unit int

const (
	UnitText Unit = iota + 1
	UnitByte
)

func (u Unit) String() string {
	switch u {
	case UnitText:
		return "text"
	case UnitByte:
		return "bytes"
	default:
		return "unknown"
	}
}

var (
	byteUnitsType = reflect.TypeOf((*interface{ ByteUnits() })(nil)).Elem()
	byteType      = reflect.TypeOf((*byte)(nil)).Elem()
)

// UnitOf reports the unit kind of v. Types of kind string hold text unless
// they or a pointer to them implement ByteUnits; byte slices hold bytes.
// Anything else is a type mismatch.
func UnitOf(v any) (Unit, error) {
	if v == nil {
		return 0, errors.Mismatch("nil is not a sequence")
	}
	t := reflect.TypeOf(v)
	switch {
	case t.Kind() == reflect.String && (t.Implements(byteUnitsType) || reflect.PointerTo(t).Implements(byteUnitsType)):
		return UnitByte, nil
	case t.Kind() == reflect.String:
		return UnitText, nil
	case t.Kind() == reflect.Slice && t.Elem() == byteType:
		return UnitByte, nil
	default:
		return 0, errors.Mismatch("%T is not a sequence", v)
	}
}

// Value is an affix whose candidates are only known at run time, such as a
// list assembled from mixed sources. Build it with One or OneOf. The zero
// Value is the single empty affix.
type Value struct {
	list       bool
	candidates []any
}

// One returns a Value holding a single candidate. Byte slice candidates are
// copied.
func One(affix any) Value {
	return Value{candidates: []any{ownValue(affix)}}
}

// OneOf returns a Value that tries each candidate in order. Byte slice
// candidates are copied.
func OneOf(candidates ...any) Value {
	list := make([]any, len(candidates))
	for i, c := range candidates {
		list[i] = ownValue(c)
	}
	return Value{list: true, candidates: list}
}

// ownValue returns a private copy of v when it is a slice, keeping its type.
// Other values are returned as is and validated later.
func ownValue(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.IsNil() {
		return v
	}
	c := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
	reflect.Copy(c, rv)
	return c.Interface()
}

// IsList reports whether v was built with OneOf.
func (v Value) IsList() bool {
	return v.list
}

// CutPrefixValue is CutPrefix for values typed at run time. The result has
// the dynamic type of subject. Every candidate is checked against the
// subject's unit kind before any comparison is made.
func CutPrefixValue(subject any, affix Value) (any, error) {
	return cutValue(subject, affix, CutPrefix[[]byte])
}

// CutSuffixValue is CutSuffix for values typed at run time.
func CutSuffixValue(subject any, affix Value) (any, error) {
	return cutValue(subject, affix, CutSuffix[[]byte])
}

func cutValue(subject any, affix Value, cut func([]byte, Affix[[]byte]) []byte) (any, error) {
	unit, err := UnitOf(subject)
	if err != nil {
		return nil, errors.Wrap(err, "subject")
	}
	candidates := make([][]byte, 0, len(affix.candidates))
	for i, c := range affix.candidates {
		cu, err := UnitOf(c)
		if err != nil {
			return nil, errors.Wrapf(err, "affix %d", i)
		}
		if cu != unit {
			return nil, errors.Mismatch("affix %d: %T holds %s, subject %T holds %s", i, c, cu, subject, unit)
		}
		candidates = append(candidates, rawBytes(c))
	}
	var a Affix[[]byte]
	if affix.list {
		a = Affix[[]byte]{kind: listAffix, list: candidates}
	} else if len(candidates) == 1 {
		a = Affix[[]byte]{kind: singleAffix, single: candidates[0]}
	}
	result := cut(rawBytes(subject), a)
	return reflect.ValueOf(result).Convert(reflect.TypeOf(subject)).Interface(), nil
}

// rawBytes views a validated sequence value as bytes. For byte slices the
// result aliases the input and must only be read.
func rawBytes(v any) []byte {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return []byte(rv.String())
	}
	return rv.Bytes()
}
