// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geojson

// GeoJSON is any top-level GeoJSON object. It is implemented only by
// *Geometry, *Feature and *FeatureCollection; use a type switch to
// find which one a value holds.
type GeoJSON interface {
	// Type returns the value of the object's "type" member.
	Type() Type
	geoJSON()
}

var (
	_ GeoJSON = (*Geometry)(nil)
	_ GeoJSON = (*Feature)(nil)
	_ GeoJSON = (*FeatureCollection)(nil)
)
