// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fgbprop

import (
	"slices"

	flatbuffers "github.com/google/flatbuffers/go"
)

// safeFlatBuffersInteraction runs a function that interacts with
// FlatBuffers, trapping any panic that occurs and converting it to a
// normal Go error.
//
// The FlatBuffers scalar accessors do not return errors and panic
// when handed a short buffer.
func safeFlatBuffersInteraction(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmtErr("panic: flatbuffers: %v", r)
		}
	}()
	err = f()
	return
}

// size returns the encoded width of a fixed-width column type, or zero
// for the length-prefixed types.
func (t ColumnType) size() int {
	switch t {
	case Byte:
		return flatbuffers.SizeInt8
	case UByte:
		return flatbuffers.SizeUint8
	case Bool:
		return flatbuffers.SizeBool
	case Short:
		return flatbuffers.SizeInt16
	case UShort:
		return flatbuffers.SizeUint16
	case Int:
		return flatbuffers.SizeInt32
	case UInt:
		return flatbuffers.SizeUint32
	case Long:
		return flatbuffers.SizeInt64
	case ULong:
		return flatbuffers.SizeUint64
	case Float:
		return flatbuffers.SizeFloat32
	case Double:
		return flatbuffers.SizeFloat64
	default:
		return 0
	}
}

// grow extends b by n bytes and returns the extended slice along with
// the n new bytes, ready for a flatbuffers.Write* call.
func grow(b []byte, n int) ([]byte, []byte) {
	l := len(b)
	b = slices.Grow(b, n)[:l+n]
	return b, b[l:]
}
