// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geojson

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/gogama/geojson/jsonvalue"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errWriter struct {
	err error
}

func (w *errWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func TestFeatureWriter(t *testing.T) {
	testCases := []struct {
		name     string
		opts     []Option
		features []*Feature
		expected string
	}{
		{
			name:     "Empty",
			expected: `{"type":"FeatureCollection","features":[]}`,
		},
		{
			name:     "Features",
			features: []*Feature{{ID: IntID(1)}, {ID: IntID(2), Geometry: NewGeometry(Point(Pos(1, 2)))}},
			expected: `{"type":"FeatureCollection","features":[` +
				`{"type":"Feature","id":1,"geometry":null,"properties":null},` +
				`{"type":"Feature","id":2,"geometry":{"type":"Point","coordinates":[1,2]},"properties":null}]}`,
		},
		{
			name: "CollectionMembers",
			opts: []Option{WithCollectionMembers(BBox{0, 0, 1, 1}, jsonvalue.NewObject(
				jsonvalue.Member{Name: "name", Value: jsonvalue.String("n")},
				jsonvalue.Member{Name: "crs", Value: jsonvalue.Null()},
			))},
			features: []*Feature{{}},
			expected: `{"type":"FeatureCollection","bbox":[0,0,1,1],"features":[` +
				`{"type":"Feature","geometry":null,"properties":null}],"name":"n","crs":null}`,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewFeatureWriter(&buf, testCase.opts...)

			for _, f := range testCase.features {
				err := w.Write(f)
				require.NoError(t, err)
			}
			err := w.Close()

			require.NoError(t, err)
			assert.Equal(t, testCase.expected+"\n", buf.String())
			fc, err := ParseFeatureCollection(buf.Bytes())
			require.NoError(t, err)
			assert.Len(t, fc.Features, len(testCase.features))
		})
	}
}

func TestFeatureWriter_Indent(t *testing.T) {
	var buf bytes.Buffer
	w := NewFeatureWriter(&buf, WithIndent("  "))

	err := w.Write(&Feature{ID: StringID("a")})
	require.NoError(t, err)
	err = w.Close()
	require.NoError(t, err)

	assert.Equal(t, `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "id": "a",
      "geometry": null,
      "properties": null
    }
  ]
}
`, buf.String())
}

func TestFeatureWriter_LateForeignMembers(t *testing.T) {
	t.Run("Added", func(t *testing.T) {
		var buf bytes.Buffer
		foreign := &jsonvalue.Object{}
		w := NewFeatureWriter(&buf, WithCollectionMembers(nil, foreign))

		err := w.Write(&Feature{ID: IntID(1)})
		require.NoError(t, err)
		foreign.Set("title", jsonvalue.String("t"))
		err = w.Close()

		require.NoError(t, err)
		assert.Equal(t, `{"type":"FeatureCollection","features":[{"type":"Feature","id":1,"geometry":null,"properties":null}],"title":"t"}`+"\n", buf.String())
	})

	t.Run("Reserved", func(t *testing.T) {
		foreign := &jsonvalue.Object{}
		w := NewFeatureWriter(&bytes.Buffer{}, WithCollectionMembers(nil, foreign))

		err := w.Write(&Feature{})
		require.NoError(t, err)
		foreign.Set("features", jsonvalue.Null())
		err = w.Close()

		assert.ErrorContains(t, err, `foreign member "features" is reserved`)
	})
}

func TestFeatureWriter_Error(t *testing.T) {
	t.Run("InvalidFeature", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewFeatureWriter(&buf)

		err := w.Write(NewFeature(NewGeometry(Point(Pos(math.Inf(1), 0)))))
		require.Error(t, err)
		err = w.Write(&Feature{ForeignMembers: jsonvalue.NewObject(jsonvalue.Member{Name: "id", Value: jsonvalue.Null()})})
		require.Error(t, err)
		err = w.Write(&Feature{ID: StringID("ok")})
		require.NoError(t, err)
		err = w.Close()
		require.NoError(t, err)

		assert.Equal(t, `{"type":"FeatureCollection","features":[{"type":"Feature","id":"ok","geometry":null,"properties":null}]}`+"\n", buf.String())
	})

	t.Run("ReservedCollectionMember", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewFeatureWriter(&buf, WithCollectionMembers(nil, jsonvalue.NewObject(jsonvalue.Member{Name: "features", Value: jsonvalue.Null()})))

		err := w.Write(&Feature{})
		require.Error(t, err)

		assert.Equal(t, err, w.Close())
		assert.Empty(t, buf.String())
	})

	t.Run("IOError", func(t *testing.T) {
		ioErr := errors.New("pipe burst")
		w := NewFeatureWriter(&errWriter{err: ioErr})

		for i := 0; i < 1000; i++ {
			if err := w.Write(&Feature{Properties: jsonvalue.NewObject(jsonvalue.Member{Name: "padding", Value: jsonvalue.String(strings.Repeat("x", 100))})}); err != nil {
				assert.ErrorIs(t, err, ioErr)
				break
			}
		}
		err := w.Close()

		assert.ErrorIs(t, err, ioErr)
		err = w.Write(&Feature{})
		assert.ErrorIs(t, err, ErrClosed)
	})

	t.Run("Closed", func(t *testing.T) {
		c := &closeRecorder{Writer: &bytes.Buffer{}}
		var logBuf bytes.Buffer
		w := NewFeatureWriter(c, WithLogger(zerolog.New(&logBuf).Level(zerolog.DebugLevel)))

		err := w.Close()
		require.NoError(t, err)

		assert.Equal(t, 1, c.closed)
		assert.Contains(t, logBuf.String(), "finished feature collection")
		assert.ErrorIs(t, w.Close(), ErrClosed)
		assert.ErrorIs(t, w.Write(&Feature{}), ErrClosed)
		assert.Equal(t, 1, c.closed)
	})

	t.Run("NilFeature", func(t *testing.T) {
		w := NewFeatureWriter(&bytes.Buffer{})

		assert.PanicsWithValue(t, "geojson: nil feature", func() {
			_ = w.Write(nil)
		})
	})
}

func TestFeatureWriter_RoundTrip(t *testing.T) {
	input := `{"type":"FeatureCollection","features":[` + feature("a") + `,` + feature("b") + `],"title":"t"}`
	r := NewFeatureReader(strings.NewReader(input))
	var buf bytes.Buffer
	var features []*Feature
	for f, err := range r.All() {
		require.NoError(t, err)
		features = append(features, f)
	}
	w := NewFeatureWriter(&buf, WithCollectionMembers(r.BBox(), r.ForeignMembers()))

	for _, f := range features {
		err := w.Write(f)
		require.NoError(t, err)
	}
	err := w.Close()

	require.NoError(t, err)
	assert.Equal(t, input+"\n", buf.String())
}
