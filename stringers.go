// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geojson

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// String returns a short summary of the geometry: its type and the
// bounds of its positions. Use Marshal for the full GeoJSON text.
func (g *Geometry) String() string {
	if g == nil {
		return "<nil>"
	}
	var b strings.Builder
	g.string(&b)
	return b.String()
}

func (g *Geometry) string(b *strings.Builder) {
	b.WriteString("{Type:")
	if g.Value == nil {
		b.WriteString("<nil>}")
		return
	}
	b.WriteString(string(g.Type()))
	b.WriteString(",Bounds:")
	if bound, ok := Bounds(g.Value); ok {
		writeBound(b, bound)
	} else {
		b.WriteString("<nil>")
	}
	b.WriteByte('}')
}

func (f *Feature) String() string {
	if f == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString("Feature{")
	if f.ID != nil {
		b.WriteString("ID:")
		b.WriteString(f.ID.Value().String())
		b.WriteByte(',')
	}
	b.WriteString("Geometry:")
	if f.Geometry != nil {
		f.Geometry.string(&b)
	} else {
		b.WriteString("<nil>")
	}
	b.WriteString(",Properties:{")
	for i, m := range f.Properties.Members() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(m.Name)
		b.WriteByte(':')
		b.WriteString(m.Value.String())
	}
	b.WriteString("}}")
	return b.String()
}

func (fc *FeatureCollection) String() string {
	if fc == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString("FeatureCollection{Features:")
	b.WriteString(strconv.Itoa(len(fc.Features)))
	b.WriteString(",Bounds:")
	var bound orb.Bound
	var found bool
	for _, f := range fc.Features {
		if f == nil || f.Geometry == nil || f.Geometry.Value == nil {
			continue
		}
		if fb, ok := Bounds(f.Geometry.Value); ok {
			if found {
				bound = bound.Union(fb)
			} else {
				bound, found = fb, true
			}
		}
	}
	if found {
		writeBound(&b, bound)
	} else {
		b.WriteString("<nil>")
	}
	b.WriteByte('}')
	return b.String()
}

// Bounds returns the planar bounding box of every position in v. The
// second result is false if v has no positions.
func Bounds(v GeometryValue) (orb.Bound, bool) {
	var e extent
	e.value(v)
	return e.b, e.ok
}

type extent struct {
	b  orb.Bound
	ok bool
}

func (e *extent) add(p Position) {
	if e.ok {
		e.b = e.b.Extend(p.Point())
	} else {
		e.b, e.ok = p.Point().Bound(), true
	}
}

func (e *extent) all(ps []Position) {
	for _, p := range ps {
		e.add(p)
	}
}

func (e *extent) value(v GeometryValue) {
	switch v := v.(type) {
	case Point:
		e.add(Position(v))
	case MultiPoint:
		e.all(v)
	case LineString:
		e.all(v)
	case MultiLineString:
		for _, ls := range v {
			e.all(ls)
		}
	case Polygon:
		for _, r := range v {
			e.all(r)
		}
	case MultiPolygon:
		for _, p := range v {
			for _, r := range p {
				e.all(r)
			}
		}
	case GeometryCollection:
		for i := range v {
			if v[i].Value != nil {
				e.value(v[i].Value)
			}
		}
	}
}

func writeBound(b *strings.Builder, bound orb.Bound) {
	buf := make([]byte, 0, 64)
	buf = append(buf, '[')
	for i, f := range [4]float64{bound.Min[0], bound.Min[1], bound.Max[0], bound.Max[1]} {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendFloat(buf, f, 'g', -1, 64)
	}
	b.Write(append(buf, ']'))
}
