// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package geojson reads, writes and builds GeoJSON (RFC 7946)
// documents.
//
// The model types Geometry, Feature and FeatureCollection hold a parsed
// document exactly: member order, number text and foreign members
// survive a round trip through Parse and Marshal. Conversion to and
// from github.com/paulmach/orb geometries is provided by ToOrb,
// ConvertTo and FromOrb.
//
// Large FeatureCollections can be streamed one feature at a time with
// FeatureReader and FeatureWriter, or one Go record at a time with
// RecordReader and RecordWriter, which map struct fields to feature
// properties using "geojson" struct tags.
package geojson
