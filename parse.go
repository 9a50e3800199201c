// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geojson

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gogama/geojson/jsonvalue"
)

// Parse parses a GeoJSON document of any type.
func Parse(data []byte) (GeoJSON, error) {
	return Decode(bytes.NewReader(data))
}

// ParseGeometry parses a GeoJSON geometry.
func ParseGeometry(data []byte) (*Geometry, error) {
	return DecodeGeometry(bytes.NewReader(data))
}

// ParseFeature parses a GeoJSON Feature.
func ParseFeature(data []byte) (*Feature, error) {
	return DecodeFeature(bytes.NewReader(data))
}

// ParseFeatureCollection parses a GeoJSON FeatureCollection. Use a
// FeatureReader instead for collections too large to hold in memory.
func ParseFeatureCollection(data []byte) (*FeatureCollection, error) {
	return DecodeFeatureCollection(bytes.NewReader(data))
}

// Decode reads one GeoJSON document of any type from r.
func Decode(r io.Reader) (GeoJSON, error) {
	o, err := readObject(r)
	if err != nil {
		return nil, err
	}
	return parser{}.any(o)
}

// DecodeGeometry reads one GeoJSON geometry from r.
func DecodeGeometry(r io.Reader) (*Geometry, error) {
	o, err := readObject(r)
	if err != nil {
		return nil, err
	}
	return parser{}.geometry(o)
}

// DecodeFeature reads one GeoJSON Feature from r.
func DecodeFeature(r io.Reader) (*Feature, error) {
	o, err := readObject(r)
	if err != nil {
		return nil, err
	}
	return parser{}.feature(o)
}

// DecodeFeatureCollection reads one GeoJSON FeatureCollection from r.
func DecodeFeatureCollection(r io.Reader) (*FeatureCollection, error) {
	o, err := readObject(r)
	if err != nil {
		return nil, err
	}
	return parser{}.featureCollection(o)
}

// FromValue converts an already parsed JSON value into a GeoJSON
// object. The result shares no memory with v.
func FromValue(v jsonvalue.Value) (GeoJSON, error) {
	o := v.AsObject()
	if o == nil {
		return nil, &TypeMismatchError{Member: memberType, Expected: "object", Actual: v.Kind()}
	}
	return parser{copy: true}.any(o)
}

// GeometryFromObject converts a JSON object into a Geometry. The
// result shares no memory with o.
func GeometryFromObject(o *jsonvalue.Object) (*Geometry, error) {
	return parser{copy: true}.geometry(o)
}

// FeatureFromObject converts a JSON object into a Feature. The result
// shares no memory with o.
func FeatureFromObject(o *jsonvalue.Object) (*Feature, error) {
	return parser{copy: true}.feature(o)
}

// FeatureCollectionFromObject converts a JSON object into a
// FeatureCollection. The result shares no memory with o.
func FeatureCollectionFromObject(o *jsonvalue.Object) (*FeatureCollection, error) {
	return parser{copy: true}.featureCollection(o)
}

// UnmarshalJSON implements json.Unmarshaler.
func (g *Geometry) UnmarshalJSON(data []byte) error {
	h, err := ParseGeometry(data)
	if err != nil {
		return err
	}
	*g = *h
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Feature) UnmarshalJSON(data []byte) error {
	h, err := ParseFeature(data)
	if err != nil {
		return err
	}
	*f = *h
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (fc *FeatureCollection) UnmarshalJSON(data []byte) error {
	h, err := ParseFeatureCollection(data)
	if err != nil {
		return err
	}
	*fc = *h
	return nil
}

func readObject(r io.Reader) (*jsonvalue.Object, error) {
	v, err := jsonvalue.ReadFrom(r)
	if err != nil {
		return nil, err
	}
	o := v.AsObject()
	if o == nil {
		return nil, &TypeMismatchError{Member: memberType, Expected: "object", Actual: v.Kind()}
	}
	return o, nil
}

// parser converts JSON objects into GeoJSON objects. When copy is
// set, JSON values retained in the result are cloned so the result
// does not alias the caller's tree.
type parser struct {
	copy bool
}

func (p parser) own(o *jsonvalue.Object) *jsonvalue.Object {
	if p.copy {
		return o.Clone()
	}
	return o
}

func readType(o *jsonvalue.Object) (Type, error) {
	v, ok := o.Get(memberType)
	if !ok {
		return "", ErrMissingType
	}
	s, ok := v.AsString()
	if !ok {
		return "", &TypeMismatchError{Member: memberType, Expected: "string", Actual: v.Kind()}
	}
	t := Type(s)
	if !t.Valid() {
		return "", &UnknownTypeError{Type: s}
	}
	return t, nil
}

func (p parser) any(o *jsonvalue.Object) (GeoJSON, error) {
	t, err := readType(o)
	if err != nil {
		return nil, err
	}
	switch t {
	case TypeFeature:
		return p.featureOfType(o)
	case TypeFeatureCollection:
		return p.featureCollectionOfType(o)
	default:
		return p.geometryOfType(o, t)
	}
}

func (p parser) geometry(o *jsonvalue.Object) (*Geometry, error) {
	t, err := readType(o)
	if err != nil {
		return nil, err
	}
	if !t.IsGeometry() {
		return nil, &NotVariantError{Expected: "geometry", Actual: t}
	}
	return p.geometryOfType(o, t)
}

func (p parser) feature(o *jsonvalue.Object) (*Feature, error) {
	t, err := readType(o)
	if err != nil {
		return nil, err
	}
	if t != TypeFeature {
		return nil, &NotVariantError{Expected: string(TypeFeature), Actual: t}
	}
	return p.featureOfType(o)
}

func (p parser) featureCollection(o *jsonvalue.Object) (*FeatureCollection, error) {
	t, err := readType(o)
	if err != nil {
		return nil, err
	}
	if t != TypeFeatureCollection {
		return nil, &NotVariantError{Expected: string(TypeFeatureCollection), Actual: t}
	}
	return p.featureCollectionOfType(o)
}

// foreign collects the members of o that are not reserved for t.
func (p parser) foreign(o *jsonvalue.Object, t Type) *jsonvalue.Object {
	var f *jsonvalue.Object
	for _, m := range o.Members() {
		if t.reserved(m.Name) {
			continue
		}
		if f == nil {
			f = &jsonvalue.Object{}
		}
		v := m.Value
		if p.copy {
			v = v.Clone()
		}
		f.Set(m.Name, v)
	}
	return f
}

func (p parser) geometryOfType(o *jsonvalue.Object, t Type) (*Geometry, error) {
	g := &Geometry{}
	var err error
	if g.BBox, err = readBBox(o); err != nil {
		return nil, err
	}
	if t == TypeGeometryCollection {
		g.Value, err = p.geometries(o)
	} else {
		g.Value, err = readCoordinates(o, t)
	}
	if err != nil {
		return nil, err
	}
	g.ForeignMembers = p.foreign(o, t)
	return g, nil
}

func (p parser) geometries(o *jsonvalue.Object) (GeometryCollection, error) {
	v, ok := o.Get(memberGeometries)
	if !ok {
		return nil, &MissingMemberError{Type: TypeGeometryCollection, Member: memberGeometries}
	}
	elems, ok := v.AsArray()
	if !ok {
		return nil, &TypeMismatchError{Member: memberGeometries, Expected: "array", Actual: v.Kind()}
	}
	gc := make(GeometryCollection, len(elems))
	for i := range elems {
		eo := elems[i].AsObject()
		if eo == nil {
			return nil, wrapErr("geometries[%d]", &TypeMismatchError{Member: memberGeometries, Expected: "object", Actual: elems[i].Kind()}, i)
		}
		g, err := p.geometry(eo)
		if err != nil {
			return nil, wrapErr("geometries[%d]", err, i)
		}
		gc[i] = *g
	}
	return gc, nil
}

func (p parser) featureOfType(o *jsonvalue.Object) (*Feature, error) {
	f := &Feature{}
	var err error
	if v, ok := o.Get(memberID); ok {
		if f.ID, err = IDFromValue(v); err != nil {
			return nil, err
		}
	}
	if f.BBox, err = readBBox(o); err != nil {
		return nil, err
	}
	if v, ok := o.Get(memberGeometry); ok && !v.IsNull() {
		gobj := v.AsObject()
		if gobj == nil {
			return nil, &TypeMismatchError{Member: memberGeometry, Expected: "object or null", Actual: v.Kind()}
		}
		if f.Geometry, err = p.geometry(gobj); err != nil {
			return nil, wrapErr("geometry", err)
		}
	}
	if v, ok := o.Get(memberProperties); ok && !v.IsNull() {
		po := v.AsObject()
		if po == nil {
			return nil, &TypeMismatchError{Member: memberProperties, Expected: "object or null", Actual: v.Kind()}
		}
		f.Properties = p.own(po)
	}
	f.ForeignMembers = p.foreign(o, TypeFeature)
	return f, nil
}

func (p parser) featureCollectionOfType(o *jsonvalue.Object) (*FeatureCollection, error) {
	fc := &FeatureCollection{}
	var err error
	if fc.BBox, err = readBBox(o); err != nil {
		return nil, err
	}
	v, ok := o.Get(memberFeatures)
	if !ok {
		return nil, &MissingMemberError{Type: TypeFeatureCollection, Member: memberFeatures}
	}
	elems, ok := v.AsArray()
	if !ok {
		return nil, &TypeMismatchError{Member: memberFeatures, Expected: "array", Actual: v.Kind()}
	}
	fc.Features = make([]*Feature, len(elems))
	for i := range elems {
		fo := elems[i].AsObject()
		if fo == nil {
			return nil, wrapErr("features[%d]", &TypeMismatchError{Member: memberFeatures, Expected: "object", Actual: elems[i].Kind()}, i)
		}
		if fc.Features[i], err = p.feature(fo); err != nil {
			return nil, wrapErr("features[%d]", err, i)
		}
	}
	fc.ForeignMembers = p.foreign(o, TypeFeatureCollection)
	return fc, nil
}

func readBBox(o *jsonvalue.Object) (BBox, error) {
	v, ok := o.Get(memberBBox)
	if !ok {
		return nil, nil
	}
	return bboxFromValue(v)
}

func bboxFromValue(v jsonvalue.Value) (BBox, error) {
	elems, ok := v.AsArray()
	if !ok {
		return nil, &TypeMismatchError{Member: memberBBox, Expected: "array", Actual: v.Kind()}
	}
	b := make(BBox, len(elems))
	for i := range elems {
		f, err := readNumber(elems[i], "", i)
		if err != nil {
			return nil, err
		}
		b[i] = f
	}
	return b, nil
}

func readNumber(v jsonvalue.Value, t Type, i int) (float64, error) {
	if v.Kind() != jsonvalue.KindNumber {
		return 0, &CoordinateError{Type: t, Shape: fmt.Sprintf("element %d is %s, not a number", i, v.Kind())}
	}
	f, err := v.AsFloat()
	if err != nil {
		lit, _ := v.Literal()
		return 0, &CoordinateError{Type: t, Shape: fmt.Sprintf("element %d (%s) is out of range", i, lit)}
	}
	return f, nil
}

func readArray(v jsonvalue.Value, t Type) ([]jsonvalue.Value, error) {
	elems, ok := v.AsArray()
	if !ok {
		return nil, &CoordinateError{Type: t, Shape: "expected array, got " + v.Kind().String()}
	}
	return elems, nil
}

func readPosition(v jsonvalue.Value, t Type) (Position, error) {
	elems, err := readArray(v, t)
	if err != nil {
		return Position{}, err
	}
	if len(elems) != 2 && len(elems) != 3 {
		return Position{}, &CoordinateError{Type: t, Shape: fmt.Sprintf("position has %d elements, want 2 or 3", len(elems))}
	}
	var ords [3]float64
	for i := range elems {
		if ords[i], err = readNumber(elems[i], t, i); err != nil {
			return Position{}, err
		}
	}
	if len(elems) == 3 {
		return PosZ(ords[0], ords[1], ords[2]), nil
	}
	return Pos(ords[0], ords[1]), nil
}

func readPositions(v jsonvalue.Value, t Type) ([]Position, error) {
	elems, err := readArray(v, t)
	if err != nil {
		return nil, err
	}
	ps := make([]Position, len(elems))
	for i := range elems {
		if ps[i], err = readPosition(elems[i], t); err != nil {
			return nil, err
		}
	}
	return ps, nil
}

func readPositions2(v jsonvalue.Value, t Type) ([][]Position, error) {
	elems, err := readArray(v, t)
	if err != nil {
		return nil, err
	}
	ps := make([][]Position, len(elems))
	for i := range elems {
		if ps[i], err = readPositions(elems[i], t); err != nil {
			return nil, err
		}
	}
	return ps, nil
}

func readPositions3(v jsonvalue.Value, t Type) ([][][]Position, error) {
	elems, err := readArray(v, t)
	if err != nil {
		return nil, err
	}
	ps := make([][][]Position, len(elems))
	for i := range elems {
		if ps[i], err = readPositions2(elems[i], t); err != nil {
			return nil, err
		}
	}
	return ps, nil
}

func readCoordinates(o *jsonvalue.Object, t Type) (GeometryValue, error) {
	v, ok := o.Get(memberCoordinates)
	if !ok {
		return nil, &MissingMemberError{Type: t, Member: memberCoordinates}
	}
	switch t {
	case TypePoint:
		pos, err := readPosition(v, t)
		return Point(pos), err
	case TypeMultiPoint:
		ps, err := readPositions(v, t)
		return MultiPoint(ps), err
	case TypeLineString:
		ps, err := readPositions(v, t)
		return LineString(ps), err
	case TypeMultiLineString:
		ps, err := readPositions2(v, t)
		return MultiLineString(ps), err
	case TypePolygon:
		ps, err := readPositions2(v, t)
		return Polygon(ps), err
	case TypeMultiPolygon:
		ps, err := readPositions3(v, t)
		return MultiPolygon(ps), err
	default:
		fmtPanic("logic error: no coordinates for type %s", t)
		return nil, nil
	}
}
