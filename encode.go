// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geojson

import (
	"io"

	"github.com/gogama/geojson/jsonvalue"
)

// ToValue converts g into a JSON value. Reserved members are emitted
// first, in the order type, id, bbox, coordinates or geometries or
// geometry, properties, features; foreign members follow in their
// stored order.
//
// ToValue fails if a Geometry has no value, or if a foreign member
// uses a name the object type reserves.
func ToValue(g GeoJSON) (jsonvalue.Value, error) {
	var o *jsonvalue.Object
	var err error
	switch t := g.(type) {
	case *Geometry:
		o, err = geometryObject(t)
	case *Feature:
		o, err = featureObject(t)
	case *FeatureCollection:
		o, err = featureCollectionObject(t)
	default:
		fmtPanic("unsupported GeoJSON type %T", g)
	}
	if err != nil {
		return jsonvalue.Value{}, err
	}
	return jsonvalue.ObjectValue(o), nil
}

// Marshal returns the compact GeoJSON text of g.
func Marshal(g GeoJSON) ([]byte, error) {
	return MarshalIndent(g, "")
}

// MarshalIndent returns the GeoJSON text of g, indented by indent. An
// empty indent produces compact output.
func MarshalIndent(g GeoJSON, indent string) ([]byte, error) {
	v, err := ToValue(g)
	if err != nil {
		return nil, err
	}
	return jsonvalue.MarshalIndent(v, indent)
}

// Encode writes g to w as a GeoJSON document followed by a newline.
func Encode(w io.Writer, g GeoJSON, indent string) error {
	v, err := ToValue(g)
	if err != nil {
		return err
	}
	return jsonvalue.WriteTo(w, v, indent)
}

// MarshalJSON implements json.Marshaler.
func (g *Geometry) MarshalJSON() ([]byte, error) {
	return Marshal(g)
}

// MarshalJSON implements json.Marshaler.
func (f *Feature) MarshalJSON() ([]byte, error) {
	return Marshal(f)
}

// MarshalJSON implements json.Marshaler.
func (fc *FeatureCollection) MarshalJSON() ([]byte, error) {
	return Marshal(fc)
}

func appendForeign(o, foreign *jsonvalue.Object, t Type) error {
	for _, m := range foreign.Members() {
		if t.reserved(m.Name) {
			return fmtErr("foreign member %q is reserved in a %s", m.Name, t)
		}
		o.Set(m.Name, m.Value)
	}
	return nil
}

func bboxValue(b BBox) jsonvalue.Value {
	elems := make([]jsonvalue.Value, len(b))
	for i := range b {
		elems[i] = jsonvalue.Float(b[i])
	}
	return jsonvalue.Array(elems...)
}

func positionValue(p Position) jsonvalue.Value {
	if p.HasZ {
		return jsonvalue.Array(jsonvalue.Float(p.X), jsonvalue.Float(p.Y), jsonvalue.Float(p.Z))
	}
	return jsonvalue.Array(jsonvalue.Float(p.X), jsonvalue.Float(p.Y))
}

func positionsValue(ps []Position) jsonvalue.Value {
	elems := make([]jsonvalue.Value, len(ps))
	for i := range ps {
		elems[i] = positionValue(ps[i])
	}
	return jsonvalue.Array(elems...)
}

func positions2Value(ps [][]Position) jsonvalue.Value {
	elems := make([]jsonvalue.Value, len(ps))
	for i := range ps {
		elems[i] = positionsValue(ps[i])
	}
	return jsonvalue.Array(elems...)
}

func positions3Value(ps [][][]Position) jsonvalue.Value {
	elems := make([]jsonvalue.Value, len(ps))
	for i := range ps {
		elems[i] = positions2Value(ps[i])
	}
	return jsonvalue.Array(elems...)
}

func geometryObject(g *Geometry) (*jsonvalue.Object, error) {
	if g.Value == nil {
		return nil, textErr("geometry has no value")
	}
	t := g.Value.Type()
	o := jsonvalue.NewObject(jsonvalue.Member{Name: memberType, Value: jsonvalue.String(string(t))})
	if g.BBox != nil {
		o.Set(memberBBox, bboxValue(g.BBox))
	}
	switch v := g.Value.(type) {
	case Point:
		o.Set(memberCoordinates, positionValue(Position(v)))
	case MultiPoint:
		o.Set(memberCoordinates, positionsValue(v))
	case LineString:
		o.Set(memberCoordinates, positionsValue(v))
	case MultiLineString:
		o.Set(memberCoordinates, positions2Value(v))
	case Polygon:
		o.Set(memberCoordinates, positions2Value(v))
	case MultiPolygon:
		o.Set(memberCoordinates, positions3Value(v))
	case GeometryCollection:
		elems := make([]jsonvalue.Value, len(v))
		for i := range v {
			eo, err := geometryObject(&v[i])
			if err != nil {
				return nil, wrapErr("geometries[%d]", err, i)
			}
			elems[i] = jsonvalue.ObjectValue(eo)
		}
		o.Set(memberGeometries, jsonvalue.Array(elems...))
	}
	if err := appendForeign(o, g.ForeignMembers, t); err != nil {
		return nil, err
	}
	return o, nil
}

func featureObject(f *Feature) (*jsonvalue.Object, error) {
	o := jsonvalue.NewObject(jsonvalue.Member{Name: memberType, Value: jsonvalue.String(string(TypeFeature))})
	if f.ID != nil {
		o.Set(memberID, f.ID.v)
	}
	if f.BBox != nil {
		o.Set(memberBBox, bboxValue(f.BBox))
	}
	if f.Geometry != nil {
		g, err := geometryObject(f.Geometry)
		if err != nil {
			return nil, wrapErr("geometry", err)
		}
		o.Set(memberGeometry, jsonvalue.ObjectValue(g))
	} else {
		o.Set(memberGeometry, jsonvalue.Null())
	}
	if f.Properties != nil {
		o.Set(memberProperties, jsonvalue.ObjectValue(f.Properties))
	} else {
		o.Set(memberProperties, jsonvalue.Null())
	}
	if err := appendForeign(o, f.ForeignMembers, TypeFeature); err != nil {
		return nil, err
	}
	return o, nil
}

func featureCollectionObject(fc *FeatureCollection) (*jsonvalue.Object, error) {
	o := jsonvalue.NewObject(jsonvalue.Member{Name: memberType, Value: jsonvalue.String(string(TypeFeatureCollection))})
	if fc.BBox != nil {
		o.Set(memberBBox, bboxValue(fc.BBox))
	}
	elems := make([]jsonvalue.Value, len(fc.Features))
	for i, f := range fc.Features {
		if f == nil {
			return nil, fmtErr("features[%d] is nil", i)
		}
		fo, err := featureObject(f)
		if err != nil {
			return nil, wrapErr("features[%d]", err, i)
		}
		elems[i] = jsonvalue.ObjectValue(fo)
	}
	o.Set(memberFeatures, jsonvalue.Array(elems...))
	if err := appendForeign(o, fc.ForeignMembers, TypeFeatureCollection); err != nil {
		return nil, err
	}
	return o, nil
}
