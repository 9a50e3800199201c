// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geojson

import (
	"reflect"

	"github.com/paulmach/orb"
)

const orbGeometry = "orb.Geometry"

// ToOrb converts g into the equivalent orb geometry. Polygons become
// orb.Polygon, geometry collections become orb.Collection, and so on.
// Altitudes are dropped since orb is planar.
//
// ToOrb fails with a *ConversionError if g has no value, or if any
// line string in g has fewer than two positions.
func ToOrb(g *Geometry) (orb.Geometry, error) {
	if g == nil || g.Value == nil {
		return nil, &ConversionError{Expected: orbGeometry, Actual: "empty geometry", Index: -1}
	}
	switch v := g.Value.(type) {
	case Point:
		return Position(v).Point(), nil
	case MultiPoint:
		return orb.MultiPoint(orbPoints(v)), nil
	case LineString:
		ls, err := orbLineString(v)
		if err != nil {
			return nil, err
		}
		return ls, nil
	case MultiLineString:
		mls := make(orb.MultiLineString, len(v))
		for i := range v {
			ls, err := orbLineString(v[i])
			if err != nil {
				err.Actual = string(TypeMultiLineString)
				err.Expected = "orb.MultiLineString"
				err.Index = i
				return nil, err
			}
			mls[i] = ls
		}
		return mls, nil
	case Polygon:
		return orbPolygon(v), nil
	case MultiPolygon:
		mp := make(orb.MultiPolygon, len(v))
		for i := range v {
			mp[i] = orbPolygon(v[i])
		}
		return mp, nil
	case GeometryCollection:
		c := make(orb.Collection, len(v))
		for i := range v {
			h, err := ToOrb(&v[i])
			if err != nil {
				return nil, &ConversionError{
					Expected: "orb.Collection",
					Actual:   string(TypeGeometryCollection),
					Index:    i,
					Err:      err,
				}
			}
			c[i] = h
		}
		return c, nil
	default:
		fmtPanic("logic error: unknown geometry value %T", g.Value)
		return nil, nil
	}
}

// ConvertTo converts g into the orb geometry type T. It fails with a
// *ConversionError if g does not convert to a T. For example, a
// Polygon converts to orb.Polygon but not to orb.LineString.
//
// T may also be orb.Ring, which accepts a Polygon with exactly one
// ring.
func ConvertTo[T orb.Geometry](g *Geometry) (T, error) {
	var zero T
	expected := reflect.TypeFor[T]().String()
	if _, ok := any(zero).(orb.Ring); ok && g != nil {
		if p, ok := g.Value.(Polygon); ok && len(p) == 1 {
			return any(orb.Ring(orbPoints(p[0]))).(T), nil
		}
	}
	h, err := ToOrb(g)
	if err != nil {
		return zero, err
	}
	t, ok := h.(T)
	if !ok {
		return zero, &ConversionError{Expected: expected, Actual: string(g.Type()), Index: -1}
	}
	return t, nil
}

// CollectionOf converts every member of a GeometryCollection into the
// orb geometry type T. It fails on the first member that does not
// convert, with a *ConversionError whose Index is the member's
// position.
func CollectionOf[T orb.Geometry](g *Geometry) ([]T, error) {
	var gc GeometryCollection
	ok := false
	if g != nil {
		gc, ok = g.Value.(GeometryCollection)
	}
	if !ok {
		actual := "empty geometry"
		if g != nil && g.Value != nil {
			actual = string(g.Type())
		}
		return nil, &ConversionError{Expected: "[]" + reflect.TypeFor[T]().String(), Actual: actual, Index: -1}
	}
	ts := make([]T, len(gc))
	for i := range gc {
		t, err := ConvertTo[T](&gc[i])
		if err != nil {
			return nil, &ConversionError{
				Expected: "[]" + reflect.TypeFor[T]().String(),
				Actual:   string(TypeGeometryCollection),
				Index:    i,
				Err:      err,
			}
		}
		ts[i] = t
	}
	return ts, nil
}

// Orb converts the feature's geometry into an orb geometry. It fails
// with ErrNoGeometry if the feature has no geometry.
func (f *Feature) Orb() (orb.Geometry, error) {
	if f.Geometry == nil {
		return nil, ErrNoGeometry
	}
	return ToOrb(f.Geometry)
}

// QuickCollection flattens any GeoJSON object into an orb.Collection.
// A geometry becomes a one-member collection, a Feature contributes
// its geometry if it has one, and a FeatureCollection contributes the
// geometry of every feature that has one, in order.
func QuickCollection(g GeoJSON) (orb.Collection, error) {
	c := orb.Collection{}
	add := func(h *Geometry) error {
		o, err := ToOrb(h)
		if err != nil {
			return err
		}
		c = append(c, o)
		return nil
	}
	switch t := g.(type) {
	case *Geometry:
		if err := add(t); err != nil {
			return nil, err
		}
	case *Feature:
		if t.Geometry != nil {
			if err := add(t.Geometry); err != nil {
				return nil, err
			}
		}
	case *FeatureCollection:
		for i, f := range t.Features {
			if f == nil || f.Geometry == nil {
				continue
			}
			if err := add(f.Geometry); err != nil {
				return nil, wrapErr("features[%d]", err, i)
			}
		}
	default:
		fmtPanic("unsupported GeoJSON type %T", g)
	}
	return c, nil
}

// FromOrb converts an orb geometry into a Geometry. An orb.Ring or
// orb.Bound becomes a one-ring Polygon. Polygons are emitted with
// exactly the rings they have, so a polygon without holes has a
// single ring.
func FromOrb(o orb.Geometry) (*Geometry, error) {
	v, err := fromOrbValue(o)
	if err != nil {
		return nil, err
	}
	return &Geometry{Value: v}, nil
}

// NewGeoJSON wraps an orb geometry as a GeoJSON geometry object.
func NewGeoJSON(o orb.Geometry) (GeoJSON, error) {
	g, err := FromOrb(o)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func fromOrbValue(o orb.Geometry) (GeometryValue, error) {
	switch t := o.(type) {
	case orb.Point:
		return Point(positionOf(t)), nil
	case orb.MultiPoint:
		return MultiPoint(positionsOf(t)), nil
	case orb.LineString:
		return LineString(positionsOf(t)), nil
	case orb.MultiLineString:
		mls := make(MultiLineString, len(t))
		for i := range t {
			mls[i] = positionsOf(t[i])
		}
		return mls, nil
	case orb.Ring:
		return Polygon{positionsOf(t)}, nil
	case orb.Polygon:
		return Polygon(ringsOf(t)), nil
	case orb.MultiPolygon:
		mp := make(MultiPolygon, len(t))
		for i := range t {
			mp[i] = ringsOf(t[i])
		}
		return mp, nil
	case orb.Bound:
		return Polygon{positionsOf(t.ToRing())}, nil
	case orb.Collection:
		gc := make(GeometryCollection, len(t))
		for i := range t {
			v, err := fromOrbValue(t[i])
			if err != nil {
				return nil, &ConversionError{Expected: string(TypeGeometryCollection), Actual: "orb.Collection", Index: i, Err: err}
			}
			gc[i] = Geometry{Value: v}
		}
		return gc, nil
	case nil:
		return nil, &ConversionError{Expected: "geometry", Actual: "nil", Index: -1}
	default:
		return nil, &ConversionError{Expected: "geometry", Actual: reflect.TypeOf(o).String(), Index: -1}
	}
}

func orbPoints(ps []Position) []orb.Point {
	pts := make([]orb.Point, len(ps))
	for i := range ps {
		pts[i] = ps[i].Point()
	}
	return pts
}

func orbLineString(ps []Position) (orb.LineString, *ConversionError) {
	if len(ps) < 2 {
		return nil, &ConversionError{
			Expected: "orb.LineString",
			Actual:   string(TypeLineString),
			Index:    -1,
			Err:      fmtErr("line string has %d positions, need at least 2", len(ps)),
		}
	}
	return orb.LineString(orbPoints(ps)), nil
}

func orbPolygon(rings [][]Position) orb.Polygon {
	p := make(orb.Polygon, len(rings))
	for i := range rings {
		p[i] = orb.Ring(orbPoints(rings[i]))
	}
	return p
}

func positionsOf[P ~[]orb.Point](pts P) []Position {
	ps := make([]Position, len(pts))
	for i := range pts {
		ps[i] = positionOf(pts[i])
	}
	return ps
}

func ringsOf(p orb.Polygon) [][]Position {
	rings := make([][]Position, len(p))
	for i := range p {
		rings[i] = positionsOf(p[i])
	}
	return rings
}
