// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geojson

import "github.com/gogama/geojson/jsonvalue"

// GeometryValue is the coordinate payload of a Geometry. It is
// implemented only by the seven geometry types in this package:
// Point, MultiPoint, LineString, MultiLineString, Polygon,
// MultiPolygon and GeometryCollection.
type GeometryValue interface {
	// Type returns the GeoJSON type the value is serialized as.
	Type() Type
	geometryValue()
}

// Point is a single position.
type Point Position

// MultiPoint is an array of positions.
type MultiPoint []Position

// LineString is an array of positions forming a path. RFC 7946
// requires at least two positions, which is checked on conversion to
// orb but not on parsing.
type LineString []Position

// MultiLineString is an array of line strings.
type MultiLineString [][]Position

// Polygon is an array of linear rings. The first ring is the exterior
// boundary and any others are holes. Rings are carried as given:
// closure and winding order are not checked.
type Polygon [][]Position

// MultiPolygon is an array of polygons.
type MultiPolygon [][][]Position

// GeometryCollection is a heterogeneous array of geometries.
type GeometryCollection []Geometry

func (Point) Type() Type              { return TypePoint }
func (MultiPoint) Type() Type         { return TypeMultiPoint }
func (LineString) Type() Type         { return TypeLineString }
func (MultiLineString) Type() Type    { return TypeMultiLineString }
func (Polygon) Type() Type            { return TypePolygon }
func (MultiPolygon) Type() Type       { return TypeMultiPolygon }
func (GeometryCollection) Type() Type { return TypeGeometryCollection }

func (Point) geometryValue()              {}
func (MultiPoint) geometryValue()         {}
func (LineString) geometryValue()         {}
func (MultiLineString) geometryValue()    {}
func (Polygon) geometryValue()            {}
func (MultiPolygon) geometryValue()       {}
func (GeometryCollection) geometryValue() {}

// BBox is the value of a "bbox" member: the minimum values of every
// axis followed by the maximum values. Its length is not checked.
type BBox []float64

// Geometry is a GeoJSON geometry object.
type Geometry struct {
	// BBox is the optional bounding box. A nil BBox is not serialized.
	BBox BBox
	// Value holds the type and coordinates. A Geometry with a nil
	// Value cannot be serialized.
	Value GeometryValue
	// ForeignMembers holds members not defined by RFC 7946 for
	// geometries, in document order. Legacy "crs" members end up
	// here.
	ForeignMembers *jsonvalue.Object
}

// NewGeometry returns a Geometry wrapping v.
func NewGeometry(v GeometryValue) *Geometry {
	return &Geometry{Value: v}
}

// Type returns the type of the geometry value, or the empty Type if
// the value is nil.
func (g *Geometry) Type() Type {
	if g.Value == nil {
		return ""
	}
	return g.Value.Type()
}

// Clone returns a deep copy of g.
func (g *Geometry) Clone() *Geometry {
	if g == nil {
		return nil
	}
	c := &Geometry{
		BBox:  cloneBBox(g.BBox),
		Value: cloneGeometryValue(g.Value),
	}
	if g.ForeignMembers != nil {
		c.ForeignMembers = g.ForeignMembers.Clone()
	}
	return c
}

func (*Geometry) geoJSON() {}

func cloneBBox(b BBox) BBox {
	if b == nil {
		return nil
	}
	return append(make(BBox, 0, len(b)), b...)
}

func clonePositions(p []Position) []Position {
	if p == nil {
		return nil
	}
	return append(make([]Position, 0, len(p)), p...)
}

func clonePositions2(p [][]Position) [][]Position {
	if p == nil {
		return nil
	}
	c := make([][]Position, len(p))
	for i := range p {
		c[i] = clonePositions(p[i])
	}
	return c
}

func cloneGeometryValue(v GeometryValue) GeometryValue {
	switch t := v.(type) {
	case MultiPoint:
		return MultiPoint(clonePositions(t))
	case LineString:
		return LineString(clonePositions(t))
	case MultiLineString:
		return MultiLineString(clonePositions2(t))
	case Polygon:
		return Polygon(clonePositions2(t))
	case MultiPolygon:
		if t == nil {
			return t
		}
		c := make(MultiPolygon, len(t))
		for i := range t {
			c[i] = clonePositions2(t[i])
		}
		return c
	case GeometryCollection:
		if t == nil {
			return t
		}
		c := make(GeometryCollection, len(t))
		for i := range t {
			c[i] = *t[i].Clone()
		}
		return c
	default:
		return v
	}
}
