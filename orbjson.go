// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geojson

import (
	"github.com/gogama/geojson/jsonvalue"
	orbgeojson "github.com/paulmach/orb/geojson"
)

// ToOrbFeature converts f into the feature type of the orb/geojson
// package. Properties become a map, so their order is lost, and
// foreign members are dropped since orb features cannot hold them.
func ToOrbFeature(f *Feature) (*orbgeojson.Feature, error) {
	of := &orbgeojson.Feature{
		Type: string(TypeFeature),
		BBox: orbgeojson.BBox(cloneBBox(f.BBox)),
	}
	if f.Properties != nil {
		of.Properties = f.Properties.Map()
	}
	if f.ID != nil {
		of.ID = f.ID.v.Interface()
	}
	if f.Geometry != nil {
		g, err := ToOrb(f.Geometry)
		if err != nil {
			return nil, err
		}
		of.Geometry = g
	}
	return of, nil
}

// FromOrbFeature converts a feature of the orb/geojson package into a
// Feature. Property names are sorted, since the orb property map has
// no order. A nil property map becomes nil Properties.
func FromOrbFeature(of *orbgeojson.Feature) (*Feature, error) {
	f := &Feature{BBox: cloneBBox(BBox(of.BBox))}
	if of.ID != nil {
		v, err := jsonvalue.FromInterface(of.ID)
		if err != nil {
			return nil, wrapErr("id", err)
		}
		if f.ID, err = IDFromValue(v); err != nil {
			return nil, err
		}
	}
	if of.Geometry != nil {
		g, err := FromOrb(of.Geometry)
		if err != nil {
			return nil, err
		}
		f.Geometry = g
	}
	if of.Properties != nil {
		p, err := jsonvalue.ObjectFromMap(of.Properties)
		if err != nil {
			return nil, wrapErr("properties", err)
		}
		f.Properties = p
	}
	return f, nil
}

// ToOrbFeatureCollection converts fc into the feature collection type
// of the orb/geojson package. Collection foreign members become
// ExtraMembers.
func ToOrbFeatureCollection(fc *FeatureCollection) (*orbgeojson.FeatureCollection, error) {
	ofc := orbgeojson.NewFeatureCollection()
	ofc.BBox = orbgeojson.BBox(cloneBBox(fc.BBox))
	if fc.ForeignMembers != nil {
		ofc.ExtraMembers = fc.ForeignMembers.Map()
	}
	ofc.Features = make([]*orbgeojson.Feature, 0, len(fc.Features))
	for i, f := range fc.Features {
		if f == nil {
			return nil, fmtErr("features[%d] is nil", i)
		}
		of, err := ToOrbFeature(f)
		if err != nil {
			return nil, wrapErr("features[%d]", err, i)
		}
		ofc.Append(of)
	}
	return ofc, nil
}

// FromOrbFeatureCollection converts a feature collection of the
// orb/geojson package into a FeatureCollection.
func FromOrbFeatureCollection(ofc *orbgeojson.FeatureCollection) (*FeatureCollection, error) {
	fc := &FeatureCollection{
		BBox:     cloneBBox(BBox(ofc.BBox)),
		Features: make([]*Feature, len(ofc.Features)),
	}
	for i, of := range ofc.Features {
		f, err := FromOrbFeature(of)
		if err != nil {
			return nil, wrapErr("features[%d]", err, i)
		}
		fc.Features[i] = f
	}
	if len(ofc.ExtraMembers) > 0 {
		fm, err := jsonvalue.ObjectFromMap(ofc.ExtraMembers)
		if err != nil {
			return nil, wrapErr("extra members", err)
		}
		fc.ForeignMembers = fm
	}
	return fc, nil
}
