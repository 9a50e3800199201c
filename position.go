// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geojson

import (
	"strconv"

	"github.com/paulmach/orb"
)

// Position is a GeoJSON position: an easting and northing, or
// longitude and latitude, with an optional altitude.
type Position struct {
	X, Y float64
	// Z is the altitude, meaningful only when HasZ is true.
	Z    float64
	HasZ bool
}

// Pos returns a two-dimensional position.
func Pos(x, y float64) Position {
	return Position{X: x, Y: y}
}

// PosZ returns a three-dimensional position.
func PosZ(x, y, z float64) Position {
	return Position{X: x, Y: y, Z: z, HasZ: true}
}

// PositionFromSlice returns the position whose ordinates are s. The
// slice must have two or three elements.
func PositionFromSlice(s []float64) (Position, error) {
	switch len(s) {
	case 2:
		return Pos(s[0], s[1]), nil
	case 3:
		return PosZ(s[0], s[1], s[2]), nil
	default:
		return Position{}, fmtErr("position must have 2 or 3 elements, got %d", len(s))
	}
}

// Dim returns the number of ordinates, 2 or 3.
func (p Position) Dim() int {
	if p.HasZ {
		return 3
	}
	return 2
}

// Slice returns the ordinates of p.
func (p Position) Slice() []float64 {
	if p.HasZ {
		return []float64{p.X, p.Y, p.Z}
	}
	return []float64{p.X, p.Y}
}

// Point returns p as a planar point. Any altitude is dropped.
func (p Position) Point() orb.Point {
	return orb.Point{p.X, p.Y}
}

func (p Position) String() string {
	b := make([]byte, 0, 32)
	b = append(b, '[')
	b = strconv.AppendFloat(b, p.X, 'g', -1, 64)
	b = append(b, ' ')
	b = strconv.AppendFloat(b, p.Y, 'g', -1, 64)
	if p.HasZ {
		b = append(b, ' ')
		b = strconv.AppendFloat(b, p.Z, 'g', -1, 64)
	}
	return string(append(b, ']'))
}

func positionOf(p orb.Point) Position {
	return Position{X: p[0], Y: p[1]}
}
