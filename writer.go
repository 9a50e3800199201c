// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geojson

import (
	"io"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/gogama/geojson/jsonvalue"
	"github.com/rs/zerolog"
)

// FeatureWriter writes a FeatureCollection to an underlying stream one
// feature at a time. The enclosing collection is opened by the first
// Write and finished by Close, so Close must be called to produce a
// complete document. A writer closed without any features having been
// written produces an empty collection.
type FeatureWriter struct {
	stateful
	w       io.Writer
	enc     *jsontext.Encoder
	log     zerolog.Logger
	bbox    BBox
	foreign *jsonvalue.Object
	// n is the number of features written.
	n int
}

// NewFeatureWriter returns a writer that writes a FeatureCollection to
// w. Use WithCollectionMembers to give the collection a bounding box or
// foreign members, and WithIndent for indented output.
func NewFeatureWriter(w io.Writer, opts ...Option) *FeatureWriter {
	if w == nil {
		textPanic("nil writer")
	}
	o := newOptions(opts)
	return &FeatureWriter{
		w:       w,
		enc:     jsontext.NewEncoder(w, jsonvalue.EncoderOptions(o.indent)...),
		log:     o.logger,
		bbox:    o.bbox,
		foreign: o.foreign,
	}
}

// Write writes one feature. An error describing a feature that cannot
// be serialized, such as one with a non-finite coordinate, leaves the
// writer usable. Any error writing to the underlying stream is fatal.
func (w *FeatureWriter) Write(f *Feature) error {
	if f == nil {
		textPanic("nil feature")
	}
	if w.err != nil {
		return w.err
	}
	if w.state == uninitialized {
		if err := w.begin(); err != nil {
			return err
		}
	}
	o, err := featureObject(f)
	if err != nil {
		return err
	}
	v := jsonvalue.ObjectValue(o)
	if err = jsonvalue.Check(v); err != nil {
		return wrapErr("feature %d", err, w.n)
	}
	if err = jsonvalue.Encode(w.enc, v); err != nil {
		return w.toErr(wrapErr("failed to write feature %d", err, w.n))
	}
	w.n++
	return nil
}

// Close finishes the FeatureCollection and closes the underlying
// stream if it is an io.Closer. Calling Close more than once returns
// ErrClosed, as does any Write after Close.
func (w *FeatureWriter) Close() error {
	if w.err == ErrClosed {
		return ErrClosed
	}
	err := w.err
	if err == nil {
		err = w.finish()
	}
	if cerr := w.close(w.w); err == nil {
		err = cerr
	}
	return err
}

func (w *FeatureWriter) checkForeign() error {
	for _, m := range w.foreign.Members() {
		if TypeFeatureCollection.reserved(m.Name) {
			return w.toErr(fmtErr("foreign member %q is reserved in a %s", m.Name, TypeFeatureCollection))
		}
	}
	return nil
}

func (w *FeatureWriter) begin() error {
	if err := w.checkForeign(); err != nil {
		return err
	}
	if err := w.toState(uninitialized, beforeFeatures); err != nil {
		return err
	}
	err := w.writeTokens(
		jsontext.BeginObject,
		jsontext.String(memberType),
		jsontext.String(string(TypeFeatureCollection)),
	)
	if err == nil && w.bbox != nil {
		bv := bboxValue(w.bbox)
		if err = jsonvalue.Check(bv); err != nil {
			return w.toErr(wrapErr("collection bbox", err))
		}
		if err = w.enc.WriteToken(jsontext.String(memberBBox)); err == nil {
			err = jsonvalue.Encode(w.enc, bv)
		}
	}
	if err == nil {
		err = w.writeTokens(jsontext.String(memberFeatures), jsontext.BeginArray)
	}
	if err != nil {
		return w.toErr(wrapErr("failed to write collection header", err))
	}
	return w.toState(beforeFeatures, inFeatures)
}

func (w *FeatureWriter) finish() error {
	if w.state == uninitialized {
		if err := w.begin(); err != nil {
			return err
		}
	}
	// Members may have been added to the foreign object since begin.
	if err := w.checkForeign(); err != nil {
		return err
	}
	if err := w.toState(inFeatures, afterFeatures); err != nil {
		return err
	}
	err := w.enc.WriteToken(jsontext.EndArray)
	for _, m := range w.foreign.Members() {
		if err != nil {
			break
		}
		if err = jsonvalue.Check(m.Value); err != nil {
			break
		}
		if err = w.enc.WriteToken(jsontext.String(m.Name)); err == nil {
			err = jsonvalue.Encode(w.enc, m.Value)
		}
	}
	if err == nil {
		err = w.enc.WriteToken(jsontext.EndObject)
	}
	if err != nil {
		return w.toErr(wrapErr("failed to finish collection", err))
	}
	w.log.Debug().Int("count", w.n).Msg("finished feature collection")
	return w.toState(afterFeatures, eof)
}

func (w *FeatureWriter) writeTokens(toks ...jsontext.Token) error {
	for _, tok := range toks {
		if err := w.enc.WriteToken(tok); err != nil {
			return err
		}
	}
	return nil
}
