// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gogama/geojson"
	"github.com/gogama/geojson/fgbprop"
	"github.com/gogama/geojson/jsonvalue"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, fc *geojson.FeatureCollection) error {
	v, err := geojson.ToValue(fc)
	if err != nil {
		return err
	}
	return encodeYAML(w, toNode(v))
}

type schemaColumn struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type schemaReport struct {
	Columns []schemaColumn `yaml:"columns"`
	// PropertyBytes is the total size of the features' property
	// buffers encoded against the columns.
	PropertyBytes int `yaml:"propertyBytes"`
}

// writeSchema infers the FlatGeobuf columns for the properties of fc
// and checks that every feature encodes against them.
func writeSchema(w io.Writer, fc *geojson.FeatureCollection, logger zerolog.Logger) error {
	props := make([]*jsonvalue.Object, 0, len(fc.Features))
	for _, f := range fc.Features {
		props = append(props, f.Properties)
	}
	schema := fgbprop.InferSchema(props...)
	report := schemaReport{Columns: make([]schemaColumn, len(schema))}
	for i, c := range schema {
		report.Columns[i] = schemaColumn{Name: c.Name, Type: c.Type.String()}
	}
	pw := fgbprop.NewWriter(io.Discard, schema)
	for i, p := range props {
		n, err := pw.Write(p)
		if err != nil {
			return fmt.Errorf("feature %d: %w", i, err)
		}
		report.PropertyBytes += n
	}
	logger.Debug().Int("columns", len(schema)).Int("bytes", report.PropertyBytes).Msg("Encoded properties")
	return encodeYAML(w, report)
}

func encodeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// toNode converts v to a YAML node, keeping object members in order
// and number literals as written.
func toNode(v jsonvalue.Value) *yaml.Node {
	switch v.Kind() {
	case jsonvalue.KindBool:
		b, _ := v.AsBool()
		s := "false"
		if b {
			s = "true"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: s}
	case jsonvalue.KindNumber:
		lit, _ := v.Literal()
		tag := "!!int"
		if strings.ContainsAny(lit, ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: lit}
	case jsonvalue.KindString:
		s, _ := v.AsString()
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	case jsonvalue.KindArray:
		elems, _ := v.AsArray()
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range elems {
			n.Content = append(n.Content, toNode(e))
		}
		return n
	case jsonvalue.KindObject:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for name, e := range v.AsObject().All() {
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}, toNode(e))
		}
		return n
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
