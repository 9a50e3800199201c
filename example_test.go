// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geojson_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/gogama/geojson"
	"github.com/gogama/geojson/jsonvalue"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

func ExampleParse() {
	g, err := geojson.Parse([]byte(`{"type":"Feature","id":1.50,"geometry":{"type":"Point","coordinates":[1,2]},"properties":{"mass":1.0e2}}`))
	if err != nil {
		panic(err)
	}

	f := g.(*geojson.Feature)
	fmt.Println(f.Type(), f.ID, f.Geometry)

	// Numbers in properties and ids keep their literal text.
	b, err := geojson.Marshal(f)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(b))
	// Output: Feature 1.50 {Type:Point,Bounds:[1 2 1 2]}
	// {"type":"Feature","id":1.50,"geometry":{"type":"Point","coordinates":[1,2]},"properties":{"mass":1.0e2}}
}

func ExampleConvertTo() {
	g, err := geojson.ParseGeometry([]byte(`{"type":"Polygon","coordinates":[[[0,0],[4,0],[4,3],[0,3],[0,0]]]}`))
	if err != nil {
		panic(err)
	}

	p, err := geojson.ConvertTo[orb.Polygon](g)
	if err != nil {
		panic(err)
	}
	fmt.Println(p.Bound(), planar.Area(p))

	_, err = geojson.ConvertTo[orb.Point](g)
	fmt.Println(err)
	// Output: {[0 0] [4 3]} 12
	// geojson: cannot convert Polygon to orb.Point
}

func ExampleFeatureReader() {
	input := `{"type":"FeatureCollection","features":[
		{"type":"Feature","id":"a","geometry":{"type":"Point","coordinates":[1,2]},"properties":null},
		{"type":"Feature","id":"b","geometry":{"type":"Point","coordinates":[1]},"properties":null},
		{"type":"Feature","id":"c","geometry":null,"properties":{"n":3}}
	],"title":"demo"}`

	r := geojson.NewFeatureReader(strings.NewReader(input))
	defer r.Close()
	for f, err := range r.All() {
		var ee *geojson.ElementError
		if errors.As(err, &ee) {
			fmt.Printf("skipped feature %d\n", ee.Index)
			continue
		} else if err != nil {
			panic(err)
		}
		fmt.Println(f)
	}
	fmt.Println(r.ForeignMembers())
	// Output: Feature{ID:"a",Geometry:{Type:Point,Bounds:[1 2 1 2]},Properties:{}}
	// skipped feature 1
	// Feature{ID:"c",Geometry:<nil>,Properties:{n:3}}
	// {"title":"demo"}
}

func ExampleFeatureWriter() {
	var buf bytes.Buffer
	w := geojson.NewFeatureWriter(&buf)

	for i, name := range []string{"x", "y"} {
		f := geojson.NewFeature(geojson.NewGeometry(geojson.Point(geojson.Pos(float64(i), 0))))
		f.ID = geojson.IntID(int64(i))
		f.SetProperty("name", jsonvalue.String(name))
		if err := w.Write(f); err != nil {
			panic(err)
		}
	}
	if err := w.Close(); err != nil {
		panic(err)
	}

	fmt.Print(buf.String())
	// Output: {"type":"FeatureCollection","features":[{"type":"Feature","id":0,"geometry":{"type":"Point","coordinates":[0,0]},"properties":{"name":"x"}},{"type":"Feature","id":1,"geometry":{"type":"Point","coordinates":[1,0]},"properties":{"name":"y"}}]}
}

type station struct {
	Code      string    `geojson:",id"`
	Location  orb.Point `geojson:",geometry"`
	Name      string    `geojson:"name"`
	Elevation float64   `geojson:"elevation,omitempty"`
}

func ExampleWriteAllRecords() {
	stations := []station{
		{Code: "ZRH", Location: orb.Point{8.54, 47.38}, Name: "Zürich HB", Elevation: 408},
		{Code: "GVA", Location: orb.Point{6.14, 46.21}, Name: "Genève"},
	}

	var buf bytes.Buffer
	if err := geojson.WriteAllRecords(&buf, stations, geojson.WithIndent("  ")); err != nil {
		panic(err)
	}

	back, err := geojson.ReadAllRecords[station](&buf)
	if err != nil {
		panic(err)
	}
	for _, s := range back {
		fmt.Printf("%s %v %q %g\n", s.Code, s.Location, s.Name, s.Elevation)
	}
	// Output: ZRH [8.54 47.38] "Zürich HB" 408
	// GVA [6.14 46.21] "Genève" 0
}
