// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geojson

import "github.com/gogama/geojson/jsonvalue"

// FeatureCollection is a GeoJSON FeatureCollection object.
type FeatureCollection struct {
	BBox     BBox
	Features []*Feature
	// ForeignMembers holds members not defined by RFC 7946 for feature
	// collections, in document order.
	ForeignMembers *jsonvalue.Object
}

// NewFeatureCollection returns a collection holding the given features
// in order.
func NewFeatureCollection(features ...*Feature) *FeatureCollection {
	return &FeatureCollection{Features: features}
}

// Type returns TypeFeatureCollection.
func (fc *FeatureCollection) Type() Type {
	return TypeFeatureCollection
}

func (*FeatureCollection) geoJSON() {}

// Append adds features to the end of the collection.
func (fc *FeatureCollection) Append(features ...*Feature) {
	fc.Features = append(fc.Features, features...)
}

// Len returns the number of features.
func (fc *FeatureCollection) Len() int {
	return len(fc.Features)
}

// Clone returns a deep copy of fc.
func (fc *FeatureCollection) Clone() *FeatureCollection {
	if fc == nil {
		return nil
	}
	c := &FeatureCollection{BBox: cloneBBox(fc.BBox)}
	if fc.Features != nil {
		c.Features = make([]*Feature, len(fc.Features))
		for i := range fc.Features {
			c.Features[i] = fc.Features[i].Clone()
		}
	}
	if fc.ForeignMembers != nil {
		c.ForeignMembers = fc.ForeignMembers.Clone()
	}
	return c
}
