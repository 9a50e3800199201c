// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geojson

// Type is the value of the "type" member of a GeoJSON object.
type Type string

// The nine GeoJSON types defined by RFC 7946.
const (
	TypePoint              Type = "Point"
	TypeMultiPoint         Type = "MultiPoint"
	TypeLineString         Type = "LineString"
	TypeMultiLineString    Type = "MultiLineString"
	TypePolygon            Type = "Polygon"
	TypeMultiPolygon       Type = "MultiPolygon"
	TypeGeometryCollection Type = "GeometryCollection"
	TypeFeature            Type = "Feature"
	TypeFeatureCollection  Type = "FeatureCollection"
)

// Member names with a defined meaning in at least one GeoJSON object.
const (
	memberType        = "type"
	memberBBox        = "bbox"
	memberCoordinates = "coordinates"
	memberGeometries  = "geometries"
	memberID          = "id"
	memberGeometry    = "geometry"
	memberProperties  = "properties"
	memberFeatures    = "features"
)

// IsGeometry reports whether t is one of the seven geometry types.
func (t Type) IsGeometry() bool {
	switch t {
	case TypePoint, TypeMultiPoint, TypeLineString, TypeMultiLineString,
		TypePolygon, TypeMultiPolygon, TypeGeometryCollection:
		return true
	default:
		return false
	}
}

// Valid reports whether t is one of the nine GeoJSON types.
func (t Type) Valid() bool {
	return t.IsGeometry() || t == TypeFeature || t == TypeFeatureCollection
}

// reserved reports whether name is a member the object of type t owns,
// and which therefore may not appear among its foreign members.
func (t Type) reserved(name string) bool {
	switch name {
	case memberType, memberBBox:
		return true
	}
	switch t {
	case TypeGeometryCollection:
		return name == memberGeometries
	case TypeFeature:
		return name == memberID || name == memberGeometry || name == memberProperties
	case TypeFeatureCollection:
		return name == memberFeatures
	default:
		return t.IsGeometry() && name == memberCoordinates
	}
}
