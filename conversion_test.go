// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geojson

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var square = [][]Position{{Pos(0, 0), Pos(1, 0), Pos(1, 1), Pos(0, 1), Pos(0, 0)}}

var orbSquare = orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}}

func TestToOrb(t *testing.T) {
	testCases := []struct {
		name     string
		input    GeometryValue
		expected orb.Geometry
	}{
		{"Point", Point(PosZ(1, 2, 3)), orb.Point{1, 2}},
		{"MultiPoint", MultiPoint{Pos(1, 2), Pos(3, 4)}, orb.MultiPoint{{1, 2}, {3, 4}}},
		{"LineString", LineString{Pos(1, 2), Pos(3, 4)}, orb.LineString{{1, 2}, {3, 4}}},
		{"MultiLineString", MultiLineString{{Pos(1, 2), Pos(3, 4)}}, orb.MultiLineString{{{1, 2}, {3, 4}}}},
		{"Polygon", Polygon(square), orbSquare},
		{"MultiPolygon", MultiPolygon{square}, orb.MultiPolygon{orbSquare}},
		{"EmptyMultiPolygon", MultiPolygon{}, orb.MultiPolygon{}},
		{
			name:     "GeometryCollection",
			input:    GeometryCollection{*NewGeometry(Point(Pos(1, 2))), *NewGeometry(Polygon(square))},
			expected: orb.Collection{orb.Point{1, 2}, orbSquare},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual, err := ToOrb(NewGeometry(testCase.input))

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, actual)
		})
	}

	t.Run("Error", func(t *testing.T) {
		testCases := []struct {
			name  string
			input *Geometry
			index int
		}{
			{"Nil", nil, -1},
			{"NoValue", &Geometry{}, -1},
			{"ShortLineString", NewGeometry(LineString{Pos(0, 0)}), -1},
			{"ShortMember", NewGeometry(MultiLineString{{Pos(0, 0), Pos(1, 1)}, {}}), 1},
			{"CollectionMember", NewGeometry(GeometryCollection{*NewGeometry(Point(Pos(0, 0))), {}}), 1},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				_, err := ToOrb(testCase.input)

				var ce *ConversionError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, testCase.index, ce.Index)
			})
		}
	})
}

func TestConvertTo(t *testing.T) {
	t.Run("Polygon", func(t *testing.T) {
		p, err := ConvertTo[orb.Polygon](NewGeometry(Polygon(square)))

		require.NoError(t, err)
		assert.Equal(t, orbSquare, p)
	})

	t.Run("Ring", func(t *testing.T) {
		r, err := ConvertTo[orb.Ring](NewGeometry(Polygon(square)))

		require.NoError(t, err)
		assert.Equal(t, orbSquare[0], r)
	})

	t.Run("RingWithHole", func(t *testing.T) {
		_, err := ConvertTo[orb.Ring](NewGeometry(Polygon{square[0], square[0]}))

		var ce *ConversionError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "orb.Ring", ce.Expected)
		assert.Equal(t, "Polygon", ce.Actual)
	})

	t.Run("WrongType", func(t *testing.T) {
		_, err := ConvertTo[orb.LineString](NewGeometry(Polygon(square)))

		var ce *ConversionError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "orb.LineString", ce.Expected)
		assert.Equal(t, "Polygon", ce.Actual)
		assert.Equal(t, "geojson: cannot convert Polygon to orb.LineString", err.Error())
	})

	t.Run("Interface", func(t *testing.T) {
		g, err := ConvertTo[orb.Geometry](NewGeometry(Point(Pos(5, 6))))

		require.NoError(t, err)
		assert.Equal(t, orb.Point{5, 6}, g)
	})
}

func TestCollectionOf(t *testing.T) {
	points := NewGeometry(GeometryCollection{
		*NewGeometry(Point(Pos(1, 2))),
		*NewGeometry(Point(Pos(3, 4))),
	})

	t.Run("Homogeneous", func(t *testing.T) {
		actual, err := CollectionOf[orb.Point](points)

		require.NoError(t, err)
		assert.Equal(t, []orb.Point{{1, 2}, {3, 4}}, actual)
	})

	t.Run("Heterogeneous", func(t *testing.T) {
		g := NewGeometry(GeometryCollection{
			*NewGeometry(Point(Pos(1, 2))),
			*NewGeometry(LineString{Pos(1, 2), Pos(3, 4)}),
		})

		_, err := CollectionOf[orb.Point](g)

		var ce *ConversionError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, 1, ce.Index)
	})

	t.Run("NotCollection", func(t *testing.T) {
		_, err := CollectionOf[orb.Point](NewGeometry(Point(Pos(1, 2))))

		var ce *ConversionError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "Point", ce.Actual)
	})
}

func TestFromOrb(t *testing.T) {
	testCases := []struct {
		name     string
		input    orb.Geometry
		expected GeometryValue
	}{
		{"Point", orb.Point{1, 2}, Point(Pos(1, 2))},
		{"MultiPoint", orb.MultiPoint{{1, 2}}, MultiPoint{Pos(1, 2)}},
		{"LineString", orb.LineString{{1, 2}, {3, 4}}, LineString{Pos(1, 2), Pos(3, 4)}},
		{"MultiLineString", orb.MultiLineString{{{1, 2}, {3, 4}}}, MultiLineString{{Pos(1, 2), Pos(3, 4)}}},
		{"Ring", orbSquare[0], Polygon(square)},
		{"Polygon", orbSquare, Polygon(square)},
		{"MultiPolygon", orb.MultiPolygon{orbSquare}, MultiPolygon{square}},
		{
			name:     "Bound",
			input:    orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}},
			expected: Polygon{{Pos(0, 0), Pos(1, 0), Pos(1, 1), Pos(0, 1), Pos(0, 0)}},
		},
		{
			name:     "Collection",
			input:    orb.Collection{orb.Point{1, 2}, orb.LineString{}},
			expected: GeometryCollection{*NewGeometry(Point(Pos(1, 2))), *NewGeometry(LineString{})},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual, err := FromOrb(testCase.input)

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, actual.Value)
		})
	}

	t.Run("Nil", func(t *testing.T) {
		_, err := FromOrb(nil)

		var ce *ConversionError
		assert.ErrorAs(t, err, &ce)
	})

	t.Run("PolygonAsymmetry", func(t *testing.T) {
		// A polygon read from orb and written back keeps its single ring,
		// but an orb.Ring comes back as an orb.Polygon.
		g, err := FromOrb(orbSquare[0])
		require.NoError(t, err)

		o, err := ToOrb(g)

		require.NoError(t, err)
		assert.IsType(t, orb.Polygon{}, o)
		assert.Equal(t, orbSquare, o)
	})

	t.Run("NewGeoJSON", func(t *testing.T) {
		g, err := NewGeoJSON(orb.Point{1, 2})
		require.NoError(t, err)

		actual, err := Marshal(g)

		require.NoError(t, err)
		assert.Equal(t, `{"type":"Point","coordinates":[1,2]}`, string(actual))
	})
}

func TestFeature_Orb(t *testing.T) {
	t.Run("NoGeometry", func(t *testing.T) {
		_, err := NewFeature(nil).Orb()

		assert.ErrorIs(t, err, ErrNoGeometry)
	})

	t.Run("Geometry", func(t *testing.T) {
		o, err := NewFeature(NewGeometry(Point(Pos(1, 2)))).Orb()

		require.NoError(t, err)
		assert.Equal(t, orb.Point{1, 2}, o)
	})
}

func TestQuickCollection(t *testing.T) {
	testCases := []struct {
		name     string
		input    GeoJSON
		expected orb.Collection
	}{
		{"Geometry", NewGeometry(Point(Pos(1, 2))), orb.Collection{orb.Point{1, 2}}},
		{"FeatureWithoutGeometry", NewFeature(nil), orb.Collection{}},
		{"Feature", NewFeature(NewGeometry(Point(Pos(1, 2)))), orb.Collection{orb.Point{1, 2}}},
		{
			name: "FeatureCollection",
			input: NewFeatureCollection(
				NewFeature(NewGeometry(Point(Pos(1, 2)))),
				NewFeature(nil),
				NewFeature(NewGeometry(Polygon(square))),
			),
			expected: orb.Collection{orb.Point{1, 2}, orbSquare},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual, err := QuickCollection(testCase.input)

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, actual)
		})
	}

	t.Run("Error", func(t *testing.T) {
		fc := NewFeatureCollection(NewFeature(NewGeometry(LineString{})))

		_, err := QuickCollection(fc)

		var ce *ConversionError
		require.ErrorAs(t, err, &ce)
		assert.Contains(t, err.Error(), "features[0]")
	})
}
