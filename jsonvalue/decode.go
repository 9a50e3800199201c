// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package jsonvalue

import (
	"bytes"
	"io"

	"github.com/go-json-experiment/json/jsontext"
)

// Parse parses data, which must hold exactly one JSON value.
func Parse(data []byte) (Value, error) {
	return ReadFrom(bytes.NewReader(data))
}

// ReadFrom reads exactly one JSON value from r. Leading and trailing
// whitespace is allowed; any other trailing data is an error.
func ReadFrom(r io.Reader) (Value, error) {
	dec := jsontext.NewDecoder(r)
	v, err := Decode(dec)
	if err == io.EOF {
		return Value{}, &SyntaxError{Offset: dec.InputOffset(), Err: io.ErrUnexpectedEOF}
	} else if err != nil {
		return Value{}, err
	}
	if _, err = dec.ReadToken(); err != io.EOF {
		if err == nil {
			return Value{}, &SyntaxError{Offset: dec.InputOffset(), Err: textErr("unexpected data after top-level value")}
		}
		return Value{}, classify(err, dec.InputOffset())
	}
	return v, nil
}

// Decode reads the next JSON value from dec. It returns io.EOF if dec
// is positioned at the end of its input between top-level values.
//
// Errors describing malformed input are returned as *SyntaxError;
// errors from the underlying reader are returned as they are.
func Decode(dec *jsontext.Decoder) (Value, error) {
	if dec == nil {
		textPanic("nil decoder")
	}
	v, err := decode(dec)
	if err != nil {
		return Value{}, classify(err, dec.InputOffset())
	}
	return v, nil
}

func decode(dec *jsontext.Decoder) (Value, error) {
	switch dec.PeekKind() {
	case '{':
		if _, err := dec.ReadToken(); err != nil {
			return Value{}, err
		}
		o := &Object{}
		for dec.PeekKind() != '}' {
			tok, err := dec.ReadToken()
			if err != nil {
				return Value{}, err
			}
			// The token is only valid until the next decoder call.
			name := tok.String()
			v, err := decode(dec)
			if err != nil {
				return Value{}, err
			}
			// The decoder rejects duplicate names, so appending keeps
			// names unique.
			o.members = append(o.members, Member{Name: name, Value: v})
		}
		if _, err := dec.ReadToken(); err != nil {
			return Value{}, err
		}
		return Value{kind: KindObject, o: o}, nil
	case '[':
		if _, err := dec.ReadToken(); err != nil {
			return Value{}, err
		}
		var elems []Value
		for dec.PeekKind() != ']' {
			v, err := decode(dec)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, v)
		}
		if _, err := dec.ReadToken(); err != nil {
			return Value{}, err
		}
		return Value{kind: KindArray, a: elems}, nil
	case '"':
		tok, err := dec.ReadToken()
		if err != nil {
			return Value{}, err
		}
		return String(tok.String()), nil
	case '0':
		raw, err := dec.ReadValue()
		if err != nil {
			return Value{}, err
		}
		return Value{kind: KindNumber, s: string(raw)}, nil
	case 't', 'f':
		tok, err := dec.ReadToken()
		if err != nil {
			return Value{}, err
		}
		return Bool(tok.Bool()), nil
	case 'n':
		if _, err := dec.ReadToken(); err != nil {
			return Value{}, err
		}
		return Null(), nil
	default:
		// Invalid kind: end of input or an error, which ReadToken
		// reports.
		_, err := dec.ReadToken()
		if err == nil {
			err = textErr("unexpected end of object or array")
		}
		return Value{}, err
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	w, err := Parse(data)
	if err != nil {
		return err
	}
	*v = w
	return nil
}
