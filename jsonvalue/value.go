// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package jsonvalue

import (
	"math"
	"strconv"
)

// A Kind identifies which of the six JSON value types a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "boolean",
	KindNumber: "number",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

// String returns the JSON name of the kind, for example "object".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// A Value is one JSON value: null, a boolean, a number, a string, an
// array of values, or an object.
//
// The zero Value is JSON null. Numbers keep the literal text they were
// parsed from, so re-encoding a parsed number reproduces it exactly.
// Values are treated as immutable once built; use Clone before
// modifying a shared array or object.
type Value struct {
	kind Kind
	b    bool
	// s holds string contents for KindString and the number literal
	// for KindNumber.
	s string
	a []Value
	o *Object
}

// Null returns the JSON null value.
func Null() Value {
	return Value{}
}

// Bool returns a JSON boolean.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// String returns a JSON string.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Float returns a JSON number holding f.
//
// NaN and infinite values are accepted here but cannot be encoded as
// JSON text: encoding such a Value fails with the tokenizer's error.
func Float(f float64) Value {
	return Value{kind: KindNumber, s: formatFloat(f)}
}

// Int returns a JSON number holding i.
func Int(i int64) Value {
	return Value{kind: KindNumber, s: strconv.FormatInt(i, 10)}
}

// Uint returns a JSON number holding u.
func Uint(u uint64) Value {
	return Value{kind: KindNumber, s: strconv.FormatUint(u, 10)}
}

// Number returns a JSON number from its literal text, which must be a
// valid JSON number such as "-1.5e3".
func Number(literal string) (Value, error) {
	if !validNumber(literal) {
		return Value{}, fmtErr("invalid number literal %q", literal)
	}
	return Value{kind: KindNumber, s: literal}, nil
}

// Array returns a JSON array holding the given elements.
func Array(elems ...Value) Value {
	if len(elems) == 0 {
		elems = nil
	}
	return Value{kind: KindArray, a: elems}
}

// ObjectValue returns a Value wrapping o. A nil o yields an empty
// object.
func ObjectValue(o *Object) Value {
	if o == nil {
		o = &Object{}
	}
	return Value{kind: KindObject, o: o}
}

// Kind returns the JSON type of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is JSON null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean held by v and whether v is a boolean.
func (v Value) AsBool() (b, ok bool) {
	return v.b, v.kind == KindBool
}

// AsString returns the string held by v and whether v is a string.
func (v Value) AsString() (s string, ok bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// Literal returns the literal text of a number and whether v is a
// number.
func (v Value) Literal() (s string, ok bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return v.s, true
}

// AsFloat returns the value of a number as a float64. It fails if v is
// not a number or the number does not fit in a finite float64.
func (v Value) AsFloat() (float64, error) {
	if v.kind != KindNumber {
		return 0, fmtErr("%s is not a number", v.kind)
	}
	f, err := strconv.ParseFloat(v.s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmtErr("number %s is not a finite float64", v.s)
	}
	return f, nil
}

// AsInt returns the value of a number as an int64. It fails if v is
// not a number or the number is not an integer in the int64 range.
func (v Value) AsInt() (int64, error) {
	if v.kind != KindNumber {
		return 0, fmtErr("%s is not a number", v.kind)
	}
	if i, err := strconv.ParseInt(v.s, 10, 64); err == nil {
		return i, nil
	}
	f, err := v.AsFloat()
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmtErr("number %s is not an int64", v.s)
	}
	return int64(f), nil
}

// AsUint returns the value of a number as a uint64. It fails if v is
// not a number or the number is not an integer in the uint64 range.
func (v Value) AsUint() (uint64, error) {
	if v.kind != KindNumber {
		return 0, fmtErr("%s is not a number", v.kind)
	}
	if u, err := strconv.ParseUint(v.s, 10, 64); err == nil {
		return u, nil
	}
	f, err := v.AsFloat()
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
		return 0, fmtErr("number %s is not a uint64", v.s)
	}
	return uint64(f), nil
}

// AsArray returns the elements of an array and whether v is an array.
// The returned slice must not be modified.
func (v Value) AsArray() ([]Value, bool) {
	return v.a, v.kind == KindArray
}

// AsObject returns the object held by v, or nil if v is not an object.
func (v Value) AsObject() *Object {
	if v.kind != KindObject {
		return nil
	}
	return v.o
}

// Len returns the number of elements of an array or members of an
// object, and zero for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.a)
	case KindObject:
		return v.o.Len()
	default:
		return 0
	}
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.kind {
	case KindArray:
		if v.a == nil {
			return v
		}
		a := make([]Value, len(v.a))
		for i := range v.a {
			a[i] = v.a[i].Clone()
		}
		return Value{kind: KindArray, a: a}
	case KindObject:
		return Value{kind: KindObject, o: v.o.Clone()}
	default:
		return v
	}
}

// Equal reports whether v and w are the same JSON value. Numbers are
// compared by literal text and object members by name and order.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == w.b
	case KindNumber, KindString:
		return v.s == w.s
	case KindArray:
		if len(v.a) != len(w.a) {
			return false
		}
		for i := range v.a {
			if !v.a[i].Equal(w.a[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return v.o.Equal(w.o)
	default:
		return false
	}
}

// String returns the compact JSON text of v, or a bracketed error
// description if v cannot be encoded.
func (v Value) String() string {
	b, err := Marshal(v)
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return string(b)
}
