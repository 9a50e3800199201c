// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package fgbprop encodes GeoJSON feature properties in the property
// format of FlatGeobuf files, and decodes them back.
//
// A FlatGeobuf property buffer is a sequence of (column index, value)
// pairs. The column index is a little-endian uint16 referring to a
// column of a Schema. The value is encoded according to the column's
// type: fixed-width little-endian for the numeric and boolean types,
// and a little-endian uint32 length followed by that many bytes for
// String, DateTime, Json and Binary. Properties whose value is JSON
// null are not stored.
package fgbprop
