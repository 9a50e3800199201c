// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geojson

import (
	"errors"
	"io"
	"iter"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/gogama/geojson/jsonvalue"
	"github.com/rs/zerolog"
)

// FeatureReader reads the features of a FeatureCollection one at a
// time from an underlying stream, holding at most one feature in
// memory.
//
// The stream may contain a FeatureCollection object, with its members
// in any order, or a bare JSON array of features.
//
// A feature that is well-formed JSON but not a valid GeoJSON Feature
// is reported as an *ElementError, and reading continues with the next
// feature, unless the reader was created WithFailFast. Every other
// error, notably malformed JSON and I/O errors, is fatal: the reader
// returns the same error from then on.
type FeatureReader struct {
	stateful
	r   io.Reader
	dec *jsontext.Decoder
	log zerolog.Logger
	// failFast makes element errors fatal.
	failFast bool
	// bare is true if the stream is a top-level array.
	bare bool
	// sawType and sawFeatures track which required collection
	// members have been read.
	sawType     bool
	sawFeatures bool
	// index is the index of the next element of the features array.
	index   int
	bbox    BBox
	foreign *jsonvalue.Object
}

// NewFeatureReader returns a reader that reads features from r.
func NewFeatureReader(r io.Reader, opts ...Option) *FeatureReader {
	if r == nil {
		textPanic("nil reader")
	}
	o := newOptions(opts)
	return &FeatureReader{
		r:        r,
		dec:      jsontext.NewDecoder(r),
		log:      o.logger,
		failFast: o.failFast,
	}
}

// Read returns the next feature. It returns io.EOF after the last
// feature, once the whole document has been read and found well
// formed.
func (r *FeatureReader) Read() (*Feature, error) {
	if r.err != nil {
		return nil, r.err
	}
	for {
		switch r.state {
		case uninitialized:
			if err := r.begin(); err != nil {
				return nil, r.toErr(err)
			}
		case beforeFeatures, afterFeatures:
			if err := r.member(); err != nil {
				return nil, r.toErr(err)
			}
		case inFeatures:
			if r.dec.PeekKind() == ']' {
				if err := r.endFeatures(); err != nil {
					return nil, r.toErr(err)
				}
				continue
			}
			return r.element()
		case eof:
			return nil, io.EOF
		default:
			r.sanityCheckState()
			return nil, errUnexpectedState
		}
	}
}

// All returns an iterator over the remaining features. Each step
// yields either a feature or an error. Iteration ends at the end of
// the stream or after a fatal error; an *ElementError does not end it.
func (r *FeatureReader) All() iter.Seq2[*Feature, error] {
	return func(yield func(*Feature, error) bool) {
		for {
			f, err := r.Read()
			if err == io.EOF {
				return
			}
			if !yield(f, err) || r.err != nil {
				return
			}
		}
	}
}

// BBox returns the bounding box of the collection, if it has one and
// it has been read. It is only certain to have been read once Read
// has returned io.EOF.
func (r *FeatureReader) BBox() BBox {
	return r.bbox
}

// ForeignMembers returns the foreign members of the collection read so
// far, in document order. All of them are available once Read has
// returned io.EOF. A bare array of features has none.
func (r *FeatureReader) ForeignMembers() *jsonvalue.Object {
	return r.foreign
}

// Close closes the reader, and the underlying stream if it is an
// io.Closer. Closing a reader is optional.
func (r *FeatureReader) Close() error {
	return r.close(r.r)
}

func (r *FeatureReader) begin() error {
	switch r.dec.PeekKind() {
	case '{':
		if _, err := r.dec.ReadToken(); err != nil {
			return r.classify(err)
		}
		r.state = beforeFeatures
		return nil
	case '[':
		if _, err := r.dec.ReadToken(); err != nil {
			return r.classify(err)
		}
		r.log.Debug().Msg("reading bare array of features")
		r.bare = true
		r.state = inFeatures
		r.sawType, r.sawFeatures = true, true
		return nil
	default:
		v, err := r.decode()
		if err != nil {
			return err
		}
		return &TypeMismatchError{Member: memberFeatures, Expected: "object or array", Actual: v.Kind()}
	}
}

// member reads the next member of the collection object, stopping
// after the opening bracket of the features array.
func (r *FeatureReader) member() error {
	if r.dec.PeekKind() == '}' {
		return r.end()
	}
	tok, err := r.dec.ReadToken()
	if err != nil {
		return r.classify(err)
	}
	name := tok.String()
	if name == memberFeatures {
		if r.dec.PeekKind() != '[' {
			v, err := r.decode()
			if err != nil {
				return err
			}
			return &TypeMismatchError{Member: memberFeatures, Expected: "array", Actual: v.Kind()}
		}
		if _, err = r.dec.ReadToken(); err != nil {
			return r.classify(err)
		}
		r.sawFeatures = true
		return r.toState(r.state, inFeatures)
	}
	v, err := r.decode()
	if err != nil {
		return err
	}
	switch name {
	case memberType:
		if err = checkCollectionType(v); err != nil {
			return err
		}
		r.sawType = true
	case memberBBox:
		if r.bbox, err = bboxFromValue(v); err != nil {
			return err
		}
	default:
		r.log.Trace().Str("member", name).Msg("foreign collection member")
		if r.foreign == nil {
			r.foreign = &jsonvalue.Object{}
		}
		r.foreign.Set(name, v)
	}
	return nil
}

func checkCollectionType(v jsonvalue.Value) error {
	s, ok := v.AsString()
	if !ok {
		return &TypeMismatchError{Member: memberType, Expected: "string", Actual: v.Kind()}
	}
	t := Type(s)
	if !t.Valid() {
		return &UnknownTypeError{Type: s}
	}
	if t != TypeFeatureCollection {
		return &NotVariantError{Expected: string(TypeFeatureCollection), Actual: t}
	}
	return nil
}

func (r *FeatureReader) element() (*Feature, error) {
	v, err := r.decode()
	if err != nil {
		return nil, r.toErr(err)
	}
	i := r.index
	r.index++
	var f *Feature
	if o := v.AsObject(); o == nil {
		err = &TypeMismatchError{Member: memberFeatures, Expected: "object", Actual: v.Kind()}
	} else {
		f, err = parser{}.feature(o)
	}
	if err != nil {
		ee := &ElementError{Index: i, Err: err}
		r.log.Debug().Err(err).Int("index", i).Msg("invalid feature")
		if r.failFast {
			return nil, r.toErr(ee)
		}
		return nil, ee
	}
	return f, nil
}

func (r *FeatureReader) endFeatures() error {
	if _, err := r.dec.ReadToken(); err != nil {
		return r.classify(err)
	}
	r.log.Debug().Int("count", r.index).Msg("end of features")
	if r.bare {
		return r.finish()
	}
	return r.toState(inFeatures, afterFeatures)
}

func (r *FeatureReader) end() error {
	if _, err := r.dec.ReadToken(); err != nil {
		return r.classify(err)
	}
	if !r.sawType {
		return ErrMissingType
	}
	if !r.sawFeatures {
		return &MissingMemberError{Type: TypeFeatureCollection, Member: memberFeatures}
	}
	return r.finish()
}

// finish checks that nothing but whitespace follows the document.
func (r *FeatureReader) finish() error {
	_, err := r.dec.ReadToken()
	if err == nil {
		return &SyntaxError{Offset: r.dec.InputOffset(), Err: textErr("unexpected data after top-level value")}
	} else if err != io.EOF {
		return r.classify(err)
	}
	r.state = eof
	return nil
}

// decode reads the next value, which the document structure requires
// to be present.
func (r *FeatureReader) decode() (jsonvalue.Value, error) {
	v, err := jsonvalue.Decode(r.dec)
	if err == io.EOF {
		return jsonvalue.Value{}, &SyntaxError{Offset: r.dec.InputOffset(), Err: io.ErrUnexpectedEOF}
	}
	return v, err
}

func (r *FeatureReader) classify(err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	var je *jsontext.SyntacticError
	if errors.As(err, &je) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &SyntaxError{Offset: r.dec.InputOffset(), Err: err}
	}
	return err
}
