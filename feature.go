// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geojson

import (
	"strconv"

	"github.com/gogama/geojson/jsonvalue"
)

// ID is a Feature identifier: either a string or a number.
type ID struct {
	v jsonvalue.Value
}

// StringID returns an identifier holding s.
func StringID(s string) *ID {
	return &ID{v: jsonvalue.String(s)}
}

// IntID returns a numeric identifier holding i.
func IntID(i int64) *ID {
	return &ID{v: jsonvalue.Int(i)}
}

// NumberID returns a numeric identifier holding f.
func NumberID(f float64) *ID {
	return &ID{v: jsonvalue.Float(f)}
}

// IDFromValue returns the identifier held by v, which must be a JSON
// string or number.
func IDFromValue(v jsonvalue.Value) (*ID, error) {
	switch v.Kind() {
	case jsonvalue.KindString, jsonvalue.KindNumber:
		return &ID{v: v}, nil
	default:
		return nil, &IDTypeError{Kind: v.Kind()}
	}
}

// Value returns the identifier as a JSON value.
func (id *ID) Value() jsonvalue.Value {
	return id.v
}

// IsNumber reports whether the identifier is a number.
func (id *ID) IsNumber() bool {
	return id.v.Kind() == jsonvalue.KindNumber
}

// String returns a string identifier as it is, and a numeric one as
// its literal text.
func (id *ID) String() string {
	if s, ok := id.v.AsString(); ok {
		return s
	}
	s, _ := id.v.Literal()
	return s
}

// Equal reports whether id and other are the same kind and value. Two
// nil identifiers are equal.
func (id *ID) Equal(other *ID) bool {
	if id == nil || other == nil {
		return id == other
	}
	return id.v.Equal(other.v)
}

// GoString makes %#v print the identifier in a readable form.
func (id *ID) GoString() string {
	if id == nil {
		return "(*geojson.ID)(nil)"
	}
	if id.IsNumber() {
		return "geojson.ID(" + id.String() + ")"
	}
	return "geojson.ID(" + strconv.Quote(id.String()) + ")"
}

// Feature is a GeoJSON Feature object: a geometry with properties.
type Feature struct {
	// ID is the optional identifier.
	ID *ID
	// BBox is the optional bounding box.
	BBox BBox
	// Geometry is nil when the feature is unlocated. A "geometry"
	// member that is null or absent both parse to nil.
	Geometry *Geometry
	// Properties is nil when the feature has no properties. A
	// "properties" member that is null or absent both parse to nil.
	Properties *jsonvalue.Object
	// ForeignMembers holds members not defined by RFC 7946 for
	// features, in document order.
	ForeignMembers *jsonvalue.Object
}

// NewFeature returns a feature with the given geometry, which may be
// nil, and no properties.
func NewFeature(g *Geometry) *Feature {
	return &Feature{Geometry: g}
}

// Type returns TypeFeature.
func (f *Feature) Type() Type {
	return TypeFeature
}

func (*Feature) geoJSON() {}

// Property returns the named property and whether it exists.
func (f *Feature) Property(name string) (jsonvalue.Value, bool) {
	return f.Properties.Get(name)
}

// SetProperty sets the named property, creating the property object
// if the feature has none.
func (f *Feature) SetProperty(name string, v jsonvalue.Value) {
	if f.Properties == nil {
		f.Properties = &jsonvalue.Object{}
	}
	f.Properties.Set(name, v)
}

// RemoveProperty removes the named property, returning its value and
// whether it existed. Removing the last property leaves an empty
// property object, not a nil one.
func (f *Feature) RemoveProperty(name string) (jsonvalue.Value, bool) {
	return f.Properties.Delete(name)
}

// ContainsProperty reports whether the named property exists.
func (f *Feature) ContainsProperty(name string) bool {
	return f.Properties.Has(name)
}

// PropertiesLen returns the number of properties.
func (f *Feature) PropertiesLen() int {
	return f.Properties.Len()
}

// Clone returns a deep copy of f.
func (f *Feature) Clone() *Feature {
	if f == nil {
		return nil
	}
	c := &Feature{
		BBox:     cloneBBox(f.BBox),
		Geometry: f.Geometry.Clone(),
	}
	if f.ID != nil {
		c.ID = &ID{v: f.ID.v}
	}
	if f.Properties != nil {
		c.Properties = f.Properties.Clone()
	}
	if f.ForeignMembers != nil {
		c.ForeignMembers = f.ForeignMembers.Clone()
	}
	return c
}
