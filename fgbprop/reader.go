// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fgbprop

import (
	"bytes"
	"encoding/base64"
	"io"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/gogama/geojson/jsonvalue"
	flatbuffers "github.com/google/flatbuffers/go"
)

// Reader reads one property buffer in FlatGeobuf property format from
// an underlying stream. The buffer extends to the end of the stream,
// so the stream should be limited to the property bytes of a single
// feature.
type Reader struct {
	r       io.Reader
	schema  Schema
	scratch [flatbuffers.SizeUint64]byte
}

// NewReader returns a Reader that decodes property buffers against
// schema.
func NewReader(r io.Reader, schema Schema) *Reader {
	if r == nil {
		textPanic("nil reader")
	}
	return &Reader{r: r, schema: schema}
}

// Read decodes properties until the underlying stream is exhausted.
// The members of the returned object are in buffer order. An empty
// stream yields an empty object.
//
// Numbers decoded from Float columns keep the shortest text that
// round-trips at 32-bit precision. Binary values are returned as
// base64 strings.
func (r *Reader) Read() (*jsonvalue.Object, error) {
	props := &jsonvalue.Object{}
	for {
		b, err := r.read(flatbuffers.SizeUint16)
		if err == io.EOF {
			return props, nil
		} else if err != nil {
			return nil, wrapErr("column index", err)
		}
		i := int(flatbuffers.GetUint16(b))
		if i >= len(r.schema) {
			return nil, &ColumnIndexError{Index: i, NumColumns: len(r.schema)}
		}
		col := r.schema[i]
		if props.Has(col.Name) {
			return nil, fmtErr("column %q appears twice", col.Name)
		}
		v, err := r.value(col)
		if err != nil {
			return nil, wrapErr("column %q", err, col.Name)
		}
		props.Set(col.Name, v)
	}
}

// Unmarshal decodes the property buffer data against schema.
func Unmarshal(schema Schema, data []byte) (*jsonvalue.Object, error) {
	return NewReader(bytes.NewReader(data), schema).Read()
}

func (r *Reader) read(n int) ([]byte, error) {
	b := r.scratch[:n]
	if _, err := io.ReadFull(r.r, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *Reader) value(col Column) (v jsonvalue.Value, err error) {
	if size := col.Type.size(); size > 0 {
		var b []byte
		if b, err = r.read(size); err == io.EOF {
			return v, io.ErrUnexpectedEOF
		} else if err != nil {
			return
		}
		err = safeFlatBuffersInteraction(func() error {
			var err2 error
			v, err2 = scalar(col.Type, b)
			return err2
		})
		return
	}

	var b []byte
	switch col.Type {
	case String, DateTime, Json, Binary:
		if b, err = r.readBytes(); err != nil {
			return
		}
	default:
		return v, fmtErr("unknown column type %s", col.Type)
	}
	switch col.Type {
	case Json:
		return jsonvalue.Parse(b)
	case Binary:
		return jsonvalue.String(base64.StdEncoding.EncodeToString(b)), nil
	default:
		if !utf8.Valid(b) {
			return v, textErr("string value is not valid UTF-8")
		}
		return jsonvalue.String(string(b)), nil
	}
}

func (r *Reader) readBytes() ([]byte, error) {
	b, err := r.read(flatbuffers.SizeUint32)
	if err == io.EOF {
		return nil, io.ErrUnexpectedEOF
	} else if err != nil {
		return nil, err
	}
	n := int64(flatbuffers.GetUint32(b))
	// Allocation is bounded by the stream, not the claimed length.
	data, err := io.ReadAll(io.LimitReader(r.r, n))
	if err != nil {
		return nil, err
	} else if int64(len(data)) < n {
		return nil, io.ErrUnexpectedEOF
	}
	return data, nil
}

func scalar(t ColumnType, b []byte) (jsonvalue.Value, error) {
	switch t {
	case Byte:
		return jsonvalue.Int(int64(flatbuffers.GetInt8(b))), nil
	case UByte:
		return jsonvalue.Uint(uint64(flatbuffers.GetUint8(b))), nil
	case Bool:
		return jsonvalue.Bool(flatbuffers.GetBool(b)), nil
	case Short:
		return jsonvalue.Int(int64(flatbuffers.GetInt16(b))), nil
	case UShort:
		return jsonvalue.Uint(uint64(flatbuffers.GetUint16(b))), nil
	case Int:
		return jsonvalue.Int(int64(flatbuffers.GetInt32(b))), nil
	case UInt:
		return jsonvalue.Uint(uint64(flatbuffers.GetUint32(b))), nil
	case Long:
		return jsonvalue.Int(flatbuffers.GetInt64(b)), nil
	case ULong:
		return jsonvalue.Uint(flatbuffers.GetUint64(b)), nil
	case Float:
		f := float64(flatbuffers.GetFloat32(b))
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return jsonvalue.Value{}, fmtErr("non-finite float %v", f)
		}
		return jsonvalue.Number(strconv.FormatFloat(f, 'g', -1, 32))
	case Double:
		f := flatbuffers.GetFloat64(b)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return jsonvalue.Value{}, fmtErr("non-finite double %v", f)
		}
		return jsonvalue.Float(f), nil
	default:
		fmtPanic("not a scalar column type: %s", t)
		return jsonvalue.Value{}, nil
	}
}
