// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package jsonvalue

import (
	"bytes"
	"io"

	"github.com/go-json-experiment/json/jsontext"
)

// Encode writes v to enc as the next JSON value. Errors reported by the
// encoder, for example for a non-finite number, are returned unchanged.
func Encode(enc *jsontext.Encoder, v Value) error {
	if enc == nil {
		textPanic("nil encoder")
	}
	switch v.kind {
	case KindNull:
		return enc.WriteToken(jsontext.Null)
	case KindBool:
		return enc.WriteToken(jsontext.Bool(v.b))
	case KindNumber:
		return enc.WriteValue(jsontext.Value(v.s))
	case KindString:
		return enc.WriteToken(jsontext.String(v.s))
	case KindArray:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for i := range v.a {
			if err := Encode(enc, v.a[i]); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	case KindObject:
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for _, m := range v.o.Members() {
			if err := enc.WriteToken(jsontext.String(m.Name)); err != nil {
				return err
			}
			if err := Encode(enc, m.Value); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndObject)
	default:
		return fmtErr("invalid kind %d", v.kind)
	}
}

// Check returns an error if v holds a number that cannot be encoded
// as JSON text, such as one built by Float from a NaN. A Value that
// passes Check encodes without error to a healthy encoder.
func Check(v Value) error {
	switch v.kind {
	case KindNumber:
		if !validNumber(v.s) {
			return fmtErr("cannot encode number %s", v.s)
		}
	case KindArray:
		for i := range v.a {
			if err := Check(v.a[i]); err != nil {
				return err
			}
		}
	case KindObject:
		for _, m := range v.o.Members() {
			if err := Check(m.Value); err != nil {
				return wrapErr("member %q", err, m.Name)
			}
		}
	}
	return nil
}

// EncoderOptions returns the jsontext options for compact output when
// indent is empty, and for multiline output indented by indent
// otherwise.
func EncoderOptions(indent string) []jsontext.Options {
	if indent == "" {
		return nil
	}
	return []jsontext.Options{jsontext.Multiline(true), jsontext.WithIndent(indent)}
}

// WriteTo writes v as a single JSON document to w, followed by a
// newline.
func WriteTo(w io.Writer, v Value, indent string) error {
	enc := jsontext.NewEncoder(w, EncoderOptions(indent)...)
	return Encode(enc, v)
}

// Marshal returns the compact JSON text of v.
func Marshal(v Value) ([]byte, error) {
	return MarshalIndent(v, "")
}

// MarshalIndent returns the JSON text of v with each nested element on
// its own line, indented by indent. An empty indent produces compact
// output.
func MarshalIndent(v Value, indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteTo(&buf, v, indent); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return Marshal(v)
}
