// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fgbprop

import (
	"math"
	"strconv"

	"github.com/gogama/geojson/jsonvalue"
)

// ColumnType is the type of a FlatGeobuf column. The values match the
// ColumnType enumeration of the FlatGeobuf header schema.
type ColumnType uint8

const (
	Byte ColumnType = iota
	UByte
	Bool
	Short
	UShort
	Int
	UInt
	Long
	ULong
	Float
	Double
	String
	Json
	DateTime
	Binary
)

var columnTypeNames = [...]string{
	Byte:     "Byte",
	UByte:    "UByte",
	Bool:     "Bool",
	Short:    "Short",
	UShort:   "UShort",
	Int:      "Int",
	UInt:     "UInt",
	Long:     "Long",
	ULong:    "ULong",
	Float:    "Float",
	Double:   "Double",
	String:   "String",
	Json:     "Json",
	DateTime: "DateTime",
	Binary:   "Binary",
}

func (t ColumnType) String() string {
	if int(t) < len(columnTypeNames) {
		return columnTypeNames[t]
	}
	return "ColumnType(" + strconv.Itoa(int(t)) + ")"
}

// Column is one named, typed column of a Schema.
type Column struct {
	Name string
	Type ColumnType
}

// Schema is the ordered list of columns a property buffer refers to by
// index.
type Schema []Column

// Index returns the index of the column with the given name, or -1.
func (s Schema) Index(name string) int {
	for i := range s {
		if s[i].Name == name {
			return i
		}
	}
	return -1
}

func (s Schema) indexes() map[string]int {
	if len(s) > math.MaxUint16+1 {
		fmtPanic("schema has %d columns, at most %d allowed", len(s), math.MaxUint16+1)
	}
	m := make(map[string]int, len(s))
	for i := range s {
		if _, ok := m[s[i].Name]; ok {
			fmtPanic("duplicate column %q", s[i].Name)
		}
		m[s[i].Name] = i
	}
	return m
}

// InferSchema derives a schema able to store every non-null member of
// the given property objects. Columns appear in order of first
// appearance.
//
// Booleans infer Bool, strings String, and arrays and objects Json.
// Integer numbers infer Long, or ULong when they only fit in a uint64.
// Any other number infers Double. A member seen with two different
// numeric types becomes Double, and a member seen with any other mix
// of types becomes Json.
func InferSchema(props ...*jsonvalue.Object) Schema {
	var s Schema
	seen := make(map[string]int)
	for _, p := range props {
		for name, v := range p.All() {
			t, ok := inferType(v)
			if !ok {
				continue
			}
			if i, ok := seen[name]; ok {
				s[i].Type = widen(s[i].Type, t)
			} else {
				seen[name] = len(s)
				s = append(s, Column{Name: name, Type: t})
			}
		}
	}
	return s
}

func inferType(v jsonvalue.Value) (ColumnType, bool) {
	switch v.Kind() {
	case jsonvalue.KindNull:
		return 0, false
	case jsonvalue.KindBool:
		return Bool, true
	case jsonvalue.KindString:
		return String, true
	case jsonvalue.KindNumber:
		lit, _ := v.Literal()
		if _, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return Long, true
		} else if _, err := strconv.ParseUint(lit, 10, 64); err == nil {
			return ULong, true
		}
		return Double, true
	default:
		return Json, true
	}
}

func widen(a, b ColumnType) ColumnType {
	switch {
	case a == b:
		return a
	case inferredNumber(a) && inferredNumber(b):
		return Double
	default:
		return Json
	}
}

func inferredNumber(t ColumnType) bool {
	return t == Long || t == ULong || t == Double
}
