// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geojson

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gogama/geojson/jsonvalue"
	"github.com/paulmach/orb"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type city struct {
	Code       string    `geojson:",id"`
	Location   orb.Point `geojson:",geometry"`
	Name       string    `geojson:"name"`
	Population int       `geojson:"population,omitempty"`
	Tags       []string  `geojson:"tags"`
	Skipped    int       `geojson:"-"`
	private    int
}

const amsterdam = `{"type":"Feature","id":"AMS","geometry":{"type":"Point","coordinates":[4.9,52.37]},"properties":{"name":"Amsterdam","population":872680,"tags":["canal","bike"]}}`

type Named struct {
	Name string `geojson:"name"`
}

type region struct {
	Named
	ID       int64     `geojson:",id,omitempty"`
	Geometry *Geometry // used by name
	Extent   orb.Bound `geojson:"-"`
	Count    uint8     `geojson:"count"`
}

type kitchenSink struct {
	When    time.Time              `geojson:"when"`
	Raw     []byte                 `geojson:"raw"`
	Any     map[string]interface{} `geojson:"any"`
	Value   jsonvalue.Value        `geojson:"value"`
	Object  *jsonvalue.Object      `geojson:"object"`
	Nested  Named                  `geojson:"nested"`
	Ptr     *float64               `geojson:"ptr"`
	Array   [2]bool                `geojson:"array"`
	Omitted string                 `geojson:"omitted,omitempty"`
}

type failingCloser struct {
	bytes.Buffer
	err    error
	closed int
}

func (c *failingCloser) Close() error {
	c.closed++
	return c.err
}

type shape struct {
	Shape *orb.Geometry `geojson:",geometry"`
}

func TestToFeature(t *testing.T) {
	t.Run("Struct", func(t *testing.T) {
		c := city{Code: "AMS", Location: orb.Point{4.9, 52.37}, Name: "Amsterdam", Population: 872680, Tags: []string{"canal", "bike"}, Skipped: 1, private: 2}

		f, err := ToFeature(&c)
		require.NoError(t, err)
		actual, err := Marshal(f)
		require.NoError(t, err)

		assert.Equal(t, amsterdam, string(actual))
	})

	t.Run("OmitEmpty", func(t *testing.T) {
		f, err := ToFeature(city{Code: "X"})
		require.NoError(t, err)
		actual, err := Marshal(f)
		require.NoError(t, err)

		assert.Equal(t, `{"type":"Feature","id":"X","geometry":{"type":"Point","coordinates":[0,0]},"properties":{"name":"","tags":null}}`, string(actual))
	})

	t.Run("EmbeddedAndNamedGeometry", func(t *testing.T) {
		f, err := ToFeature(region{Named: Named{Name: "r"}, Count: 3})
		require.NoError(t, err)
		actual, err := Marshal(f)
		require.NoError(t, err)

		assert.Equal(t, `{"type":"Feature","geometry":null,"properties":{"name":"r","count":3}}`, string(actual))
	})

	t.Run("KitchenSink", func(t *testing.T) {
		pi := 3.5
		ks := kitchenSink{
			When:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			Raw:    []byte("hi"),
			Any:    map[string]interface{}{"b": 1, "a": []interface{}{"x", nil}},
			Value:  jsonvalue.Bool(true),
			Object: jsonvalue.NewObject(jsonvalue.Member{Name: "z", Value: jsonvalue.Null()}),
			Nested: Named{Name: "n"},
			Ptr:    &pi,
			Array:  [2]bool{true, false},
		}

		f, err := ToFeature(ks)
		require.NoError(t, err)

		assert.Equal(t, `{"when":"2026-01-02T03:04:05Z","raw":"aGk=","any":{"a":["x",null],"b":1},"value":true,"object":{"z":null},"nested":{"name":"n"},"ptr":3.5,"array":[true,false]}`, f.Properties.String())

		back, err := FromFeature[kitchenSink](f)
		require.NoError(t, err)
		assert.True(t, ks.When.Equal(back.When))
		assert.Equal(t, ks.Raw, back.Raw)
		assert.Equal(t, map[string]interface{}{"b": float64(1), "a": []interface{}{"x", nil}}, back.Any)
		assert.True(t, ks.Value.Equal(back.Value))
		assert.True(t, ks.Object.Equal(back.Object))
		assert.Equal(t, ks.Nested, back.Nested)
		require.NotNil(t, back.Ptr)
		assert.Equal(t, pi, *back.Ptr)
		assert.Equal(t, ks.Array, back.Array)
	})

	t.Run("PointerToInterface", func(t *testing.T) {
		var empty orb.Geometry
		var line orb.Geometry = orb.LineString{{0, 0}, {1, 1}}

		f, err := ToFeature(shape{Shape: &empty})
		require.NoError(t, err)
		assert.Nil(t, f.Geometry)

		f, err = ToFeature(shape{Shape: &line})
		require.NoError(t, err)
		require.NotNil(t, f.Geometry)
		assert.Equal(t, TypeLineString, f.Geometry.Type())
	})

	t.Run("Marshaler", func(t *testing.T) {
		f, err := ToFeature(&selfEncoding{id: "s"})

		require.NoError(t, err)
		assert.Equal(t, "s", f.ID.String())
	})
}

type selfEncoding struct {
	id string
}

func (s *selfEncoding) MarshalFeature() (*Feature, error) {
	return &Feature{ID: StringID(s.id)}, nil
}

func (s *selfEncoding) UnmarshalFeature(f *Feature) error {
	s.id = f.ID.String()
	return nil
}

func TestFromFeature(t *testing.T) {
	t.Run("Struct", func(t *testing.T) {
		f, err := ParseFeature([]byte(amsterdam))
		require.NoError(t, err)

		c, err := FromFeature[city](f)

		require.NoError(t, err)
		assert.Equal(t, city{Code: "AMS", Location: orb.Point{4.9, 52.37}, Name: "Amsterdam", Population: 872680, Tags: []string{"canal", "bike"}}, c)
	})

	t.Run("NumericIDIntoString", func(t *testing.T) {
		f, err := ParseFeature([]byte(`{"type":"Feature","id":1.50,"geometry":{"type":"Point","coordinates":[0,0]},"properties":null}`))
		require.NoError(t, err)

		c, err := FromFeature[city](f)

		require.NoError(t, err)
		assert.Equal(t, "1.50", c.Code)
	})

	t.Run("MissingPropertiesKeepZero", func(t *testing.T) {
		f, err := ParseFeature([]byte(`{"type":"Feature","id":7,"geometry":{"type":"Polygon","coordinates":[[[0,0],[2,0],[2,1],[0,0]]]},"properties":{"count":9,"extra":1}}`))
		require.NoError(t, err)

		r, err := FromFeature[region](f)

		require.NoError(t, err)
		assert.Equal(t, int64(7), r.ID)
		assert.Equal(t, uint8(9), r.Count)
		assert.Equal(t, "", r.Name)
		require.NotNil(t, r.Geometry)
		assert.Equal(t, TypePolygon, r.Geometry.Type())
	})

	t.Run("Bound", func(t *testing.T) {
		type boxed struct {
			Box orb.Bound `geojson:",geometry"`
		}
		f := NewFeature(NewGeometry(Polygon{{Pos(0, 0), Pos(2, 0), Pos(2, 1), Pos(0, 0)}}))

		b, err := FromFeature[boxed](f)

		require.NoError(t, err)
		assert.Equal(t, orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{2, 1}}, b.Box)
	})

	t.Run("Unmarshaler", func(t *testing.T) {
		s, err := FromFeature[selfEncoding](&Feature{ID: IntID(3)})

		require.NoError(t, err)
		assert.Equal(t, "3", s.id)
	})

	t.Run("Error", func(t *testing.T) {
		testCases := []struct {
			name  string
			input string
		}{
			{"NoGeometry", `{"type":"Feature","geometry":null,"properties":null}`},
			{"WrongGeometry", `{"type":"Feature","geometry":{"type":"LineString","coordinates":[[0,0],[1,1]]},"properties":null}`},
			{"WrongPropertyKind", `{"type":"Feature","geometry":{"type":"Point","coordinates":[0,0]},"properties":{"population":"many"}}`},
			{"Overflow", `{"type":"Feature","geometry":{"type":"Point","coordinates":[0,0]},"properties":{"population":1e40}}`},
			{"Fraction", `{"type":"Feature","geometry":{"type":"Point","coordinates":[0,0]},"properties":{"population":1.5}}`},
			{"WrongElement", `{"type":"Feature","geometry":{"type":"Point","coordinates":[0,0]},"properties":{"tags":[1]}}`},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				f, err := ParseFeature([]byte(testCase.input))
				require.NoError(t, err)

				_, err = FromFeature[city](f)

				assert.Error(t, err)
			})
		}

		t.Run("ErrNoGeometry", func(t *testing.T) {
			_, err := FromFeature[city](NewFeature(nil))

			assert.ErrorIs(t, err, ErrNoGeometry)
		})
	})
}

func TestStructCodec_RecordTypeError(t *testing.T) {
	type withChan struct {
		C chan int `geojson:"c"`
	}
	type twoGeometries struct {
		A orb.Point `geojson:",geometry"`
		B orb.Point `geojson:",geometry"`
	}
	type badGeometry struct {
		A string `geojson:",geometry"`
	}
	type badID struct {
		A []int `geojson:",id"`
	}
	type badOption struct {
		A int `geojson:"a,sometimes"`
	}
	type intKeys struct {
		M map[int]string `geojson:"m"`
	}

	testCases := []struct {
		name  string
		input interface{}
	}{
		{"Chan", withChan{}},
		{"TwoGeometries", twoGeometries{}},
		{"BadGeometry", badGeometry{}},
		{"BadID", badID{}},
		{"BadOption", badOption{}},
		{"IntKeys", intKeys{}},
		{"NotStruct", new(int)},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := ToFeature(testCase.input)

			var rte *RecordTypeError
			require.ErrorAs(t, err, &rte)
			assert.True(t, strings.HasPrefix(err.Error(), "geojson: record type "), err.Error())
		})
	}

	t.Run("Decode", func(t *testing.T) {
		_, err := FromFeature[withChan](NewFeature(nil))

		var rte *RecordTypeError
		require.ErrorAs(t, err, &rte)
		assert.Equal(t, "c", rte.Field)
	})
}

func TestStructCodec_Logger(t *testing.T) {
	var logBuf bytes.Buffer
	codec := StructCodec[region](WithLogger(zerolog.New(&logBuf).Level(zerolog.DebugLevel)))
	f := NewFeature(nil)
	f.ForeignMembers = jsonvalue.NewObject(jsonvalue.Member{Name: "extra", Value: jsonvalue.Null()})

	var r region
	err := codec.DecodeRecord(f, &r)

	require.NoError(t, err)
	assert.Contains(t, logBuf.String(), "foreign members not mapped to record")
	assert.Contains(t, logBuf.String(), "extra")
}

func TestRecordStream(t *testing.T) {
	cities := []city{
		{Code: "AMS", Location: orb.Point{4.9, 52.37}, Name: "Amsterdam", Population: 872680, Tags: []string{"canal", "bike"}},
		{Code: "UTR", Location: orb.Point{5.12, 52.09}, Name: "Utrecht", Tags: []string{}},
	}

	t.Run("RoundTrip", func(t *testing.T) {
		var buf bytes.Buffer
		err := WriteAllRecords(&buf, cities)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(buf.String(), `{"type":"FeatureCollection","features":[`+amsterdam+`,`))

		actual, err := ReadAllRecords[city](&buf)

		require.NoError(t, err)
		assert.Equal(t, cities, actual)
	})

	t.Run("Isolation", func(t *testing.T) {
		input := `{"type":"FeatureCollection","features":[` +
			amsterdam + `,` +
			`{"type":"Feature","id":"BAD","geometry":{"type":"Point","coordinates":[0,0]},"properties":{"name":5}},` +
			`{"type":"Feature","geometry":null}` + `,` +
			`{"type":"Feature","id":"UTR","geometry":{"type":"Point","coordinates":[5.12,52.09]},"properties":{"name":"Utrecht","tags":[]}}]}`
		r := NewRecordReader[city](strings.NewReader(input))

		var codes []string
		var indexes []int
		for c, err := range r.All() {
			if err != nil {
				var ee *ElementError
				require.ErrorAs(t, err, &ee)
				indexes = append(indexes, ee.Index)
				continue
			}
			codes = append(codes, c.Code)
		}

		assert.Equal(t, []string{"AMS", "UTR"}, codes)
		assert.Equal(t, []int{1, 2}, indexes)
		require.NoError(t, r.Close())
	})

	t.Run("ReadAllStopsAtFirstError", func(t *testing.T) {
		input := `[` + amsterdam + `,{"type":"Feature","geometry":null,"properties":null},` + amsterdam + `]`

		recs, err := ReadAllRecords[city](strings.NewReader(input))

		assert.Nil(t, recs)
		var ee *ElementError
		require.ErrorAs(t, err, &ee)
		assert.Equal(t, 1, ee.Index)
		assert.ErrorIs(t, err, ErrNoGeometry)
	})

	t.Run("WriteAllStopsAtFirstError", func(t *testing.T) {
		type withAny struct {
			V interface{} `geojson:"v"`
		}
		var buf bytes.Buffer

		err := WriteAllRecords(&buf, []withAny{{V: 1}, {V: make(chan int)}})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "record 1")

		closeErr := errors.New("disk full")
		c := &failingCloser{err: closeErr}
		err = WriteAllRecords(c, []withAny{{V: make(chan int)}})

		assert.Contains(t, err.Error(), "record 0")
		assert.ErrorIs(t, err, closeErr)
		assert.Equal(t, 1, c.closed)
	})

	t.Run("ReadAllLeavesOptionsAlone", func(t *testing.T) {
		opts := make([]Option, 1, 2)
		opts[0] = WithLogger(zerolog.Nop())

		_, err := ReadAllRecords[city](strings.NewReader(`[`+amsterdam+`]`), opts...)

		require.NoError(t, err)
		assert.Nil(t, opts[:2][1])
	})

	t.Run("Codec", func(t *testing.T) {
		var buf bytes.Buffer
		w := NewRecordWriter[selfEncoding](&buf, WithCodec[selfEncoding](upperCodec{}))
		require.NoError(t, w.Write(&selfEncoding{id: "a"}))
		require.NoError(t, w.Close())

		assert.Equal(t, `{"type":"FeatureCollection","features":[{"type":"Feature","id":"A","geometry":null,"properties":null}]}`+"\n", buf.String())

		r := NewRecordReader[selfEncoding](&buf, WithCodec[selfEncoding](upperCodec{}))
		var s selfEncoding
		require.NoError(t, r.Read(&s))
		assert.Equal(t, "a", s.id)
		assert.Equal(t, 0, r.FeatureReader().ForeignMembers().Len())
	})

	t.Run("CodecMismatch", func(t *testing.T) {
		assert.Panics(t, func() {
			NewRecordReader[city](strings.NewReader(`[]`), WithCodec[selfEncoding](upperCodec{}))
		})
	})
}

type upperCodec struct{}

func (upperCodec) EncodeRecord(s *selfEncoding) (*Feature, error) {
	return &Feature{ID: StringID(strings.ToUpper(s.id))}, nil
}

func (upperCodec) DecodeRecord(f *Feature, s *selfEncoding) error {
	s.id = strings.ToLower(f.ID.String())
	return nil
}
