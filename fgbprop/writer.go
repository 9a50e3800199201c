// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fgbprop

import (
	"bytes"
	"encoding/base64"
	"io"
	"math"

	"github.com/gogama/geojson/jsonvalue"
	flatbuffers "github.com/google/flatbuffers/go"
)

// Writer writes feature properties to an underlying stream in
// FlatGeobuf property format.
type Writer struct {
	w      io.Writer
	schema Schema
	index  map[string]int
	buf    []byte
}

// NewWriter returns a Writer that encodes properties against schema.
// It panics if schema has duplicate column names or more columns than
// a uint16 column index can address.
func NewWriter(w io.Writer, schema Schema) *Writer {
	if w == nil {
		textPanic("nil writer")
	}
	return &Writer{w: w, schema: schema, index: schema.indexes()}
}

// Write encodes the members of props, in order, as one property buffer
// and writes it in a single call to the underlying stream. Null members
// are skipped. If any member cannot be encoded, nothing is written.
func (w *Writer) Write(props *jsonvalue.Object) (n int, err error) {
	w.buf = w.buf[:0]
	for name, v := range props.All() {
		if v.IsNull() {
			continue
		}
		i, ok := w.index[name]
		if !ok {
			return 0, &UnknownColumnError{Name: name}
		}
		var s []byte
		w.buf, s = grow(w.buf, flatbuffers.SizeUint16)
		flatbuffers.WriteUint16(s, uint16(i))
		if w.buf, err = appendValue(w.buf, w.schema[i], v); err != nil {
			return 0, err
		}
	}
	return w.w.Write(w.buf)
}

// Marshal returns the property buffer encoding props against schema.
func Marshal(schema Schema, props *jsonvalue.Object) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := NewWriter(&buf, schema).Write(props); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func appendValue(b []byte, col Column, v jsonvalue.Value) ([]byte, error) {
	fail := func(err error) ([]byte, error) {
		return b, &ValueError{Column: col.Name, Type: col.Type, Value: v, Err: err}
	}
	var s []byte
	switch col.Type {
	case Byte:
		i, err := intIn(v, math.MinInt8, math.MaxInt8)
		if err != nil {
			return fail(err)
		}
		b, s = grow(b, flatbuffers.SizeInt8)
		flatbuffers.WriteInt8(s, int8(i))
	case UByte:
		u, err := uintIn(v, math.MaxUint8)
		if err != nil {
			return fail(err)
		}
		b, s = grow(b, flatbuffers.SizeUint8)
		flatbuffers.WriteUint8(s, uint8(u))
	case Bool:
		x, ok := v.AsBool()
		if !ok {
			return fail(nil)
		}
		b, s = grow(b, flatbuffers.SizeBool)
		flatbuffers.WriteBool(s, x)
	case Short:
		i, err := intIn(v, math.MinInt16, math.MaxInt16)
		if err != nil {
			return fail(err)
		}
		b, s = grow(b, flatbuffers.SizeInt16)
		flatbuffers.WriteInt16(s, int16(i))
	case UShort:
		u, err := uintIn(v, math.MaxUint16)
		if err != nil {
			return fail(err)
		}
		b, s = grow(b, flatbuffers.SizeUint16)
		flatbuffers.WriteUint16(s, uint16(u))
	case Int:
		i, err := intIn(v, math.MinInt32, math.MaxInt32)
		if err != nil {
			return fail(err)
		}
		b, s = grow(b, flatbuffers.SizeInt32)
		flatbuffers.WriteInt32(s, int32(i))
	case UInt:
		u, err := uintIn(v, math.MaxUint32)
		if err != nil {
			return fail(err)
		}
		b, s = grow(b, flatbuffers.SizeUint32)
		flatbuffers.WriteUint32(s, uint32(u))
	case Long:
		i, err := v.AsInt()
		if err != nil {
			return fail(err)
		}
		b, s = grow(b, flatbuffers.SizeInt64)
		flatbuffers.WriteInt64(s, i)
	case ULong:
		u, err := v.AsUint()
		if err != nil {
			return fail(err)
		}
		b, s = grow(b, flatbuffers.SizeUint64)
		flatbuffers.WriteUint64(s, u)
	case Float:
		f, err := v.AsFloat()
		if err != nil {
			return fail(err)
		} else if math.Abs(f) > math.MaxFloat32 {
			return fail(fmtErr("number %s overflows float32", v))
		}
		b, s = grow(b, flatbuffers.SizeFloat32)
		flatbuffers.WriteFloat32(s, float32(f))
	case Double:
		f, err := v.AsFloat()
		if err != nil {
			return fail(err)
		}
		b, s = grow(b, flatbuffers.SizeFloat64)
		flatbuffers.WriteFloat64(s, f)
	case String, DateTime:
		x, ok := v.AsString()
		if !ok {
			return fail(nil)
		}
		return appendBytes(b, x)
	case Json:
		data, err := jsonvalue.Marshal(v)
		if err != nil {
			return fail(err)
		}
		return appendBytes(b, data)
	case Binary:
		x, ok := v.AsString()
		if !ok {
			return fail(nil)
		}
		data, err := base64.StdEncoding.DecodeString(x)
		if err != nil {
			return fail(err)
		}
		return appendBytes(b, data)
	default:
		return b, fmtErr("column %q has unknown type %s", col.Name, col.Type)
	}
	return b, nil
}

func appendBytes[T string | []byte](b []byte, x T) ([]byte, error) {
	if int64(len(x)) > math.MaxUint32 {
		return b, fmtErr("property length %d overflows uint32", len(x))
	}
	var s []byte
	b, s = grow(b, flatbuffers.SizeUint32)
	flatbuffers.WriteUint32(s, uint32(len(x)))
	return append(b, x...), nil
}

func intIn(v jsonvalue.Value, lo, hi int64) (int64, error) {
	i, err := v.AsInt()
	if err != nil {
		return 0, err
	} else if i < lo || i > hi {
		return 0, fmtErr("%d out of range [%d, %d]", i, lo, hi)
	}
	return i, nil
}

func uintIn(v jsonvalue.Value, hi uint64) (uint64, error) {
	u, err := v.AsUint()
	if err != nil {
		return 0, err
	} else if u > hi {
		return 0, fmtErr("%d out of range [0, %d]", u, hi)
	}
	return u, nil
}
