// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geojson

import (
	"errors"
	"io"
	"iter"
	"slices"
)

func codecOf[R any](opts []Option) RecordCodec[R] {
	o := newOptions(opts)
	if o.codec == nil {
		return StructCodec[R](opts...)
	}
	c, ok := o.codec.(RecordCodec[R])
	if !ok {
		fmtPanic("codec %T does not encode records of this type", o.codec)
	}
	return c
}

// RecordReader reads the features of a FeatureCollection from a stream
// and decodes each one into a record of type R.
//
// Its error policy is the FeatureReader's: a feature that is invalid,
// or that does not decode into an R, is reported as an *ElementError
// and reading continues unless the reader was created WithFailFast.
type RecordReader[R any] struct {
	fr    *FeatureReader
	codec RecordCodec[R]
}

// NewRecordReader returns a reader that decodes records from r. The
// codec is StructCodec unless set WithCodec.
func NewRecordReader[R any](r io.Reader, opts ...Option) *RecordReader[R] {
	return &RecordReader[R]{
		fr:    NewFeatureReader(r, opts...),
		codec: codecOf[R](opts),
	}
}

// Read decodes the next record into *rec. It returns io.EOF after the
// last record.
func (r *RecordReader[R]) Read(rec *R) error {
	f, err := r.fr.Read()
	if err != nil {
		return err
	}
	i := r.fr.index - 1
	if err = r.codec.DecodeRecord(f, rec); err != nil {
		ee := &ElementError{Index: i, Err: err}
		r.fr.log.Debug().Err(err).Int("index", i).Msg("feature does not decode into record")
		if r.fr.failFast {
			return r.fr.toErr(ee)
		}
		return ee
	}
	return nil
}

// All returns an iterator over the remaining records. Iteration ends
// at the end of the stream or after a fatal error.
func (r *RecordReader[R]) All() iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		for {
			var rec R
			err := r.Read(&rec)
			if err == io.EOF {
				return
			}
			if !yield(rec, err) || r.fr.err != nil {
				return
			}
		}
	}
}

// FeatureReader returns the underlying feature reader, for example to
// get the collection's foreign members after the last record.
func (r *RecordReader[R]) FeatureReader() *FeatureReader {
	return r.fr
}

// Close closes the reader and the underlying stream if it is an
// io.Closer.
func (r *RecordReader[R]) Close() error {
	return r.fr.Close()
}

// RecordWriter encodes records of type R as features and writes them
// to a FeatureCollection on an underlying stream.
type RecordWriter[R any] struct {
	fw    *FeatureWriter
	codec RecordCodec[R]
}

// NewRecordWriter returns a writer that writes records to w. The codec
// is StructCodec unless set WithCodec.
func NewRecordWriter[R any](w io.Writer, opts ...Option) *RecordWriter[R] {
	return &RecordWriter[R]{
		fw:    NewFeatureWriter(w, opts...),
		codec: codecOf[R](opts),
	}
}

// Write encodes and writes one record. A record that does not encode
// leaves the writer usable.
func (w *RecordWriter[R]) Write(rec *R) error {
	if w.fw.err != nil {
		return w.fw.err
	}
	f, err := w.codec.EncodeRecord(rec)
	if err != nil {
		return err
	}
	return w.fw.Write(f)
}

// Close finishes the FeatureCollection and closes the underlying
// stream if it is an io.Closer.
func (w *RecordWriter[R]) Close() error {
	return w.fw.Close()
}

// ReadAllRecords reads a whole FeatureCollection from r and decodes
// every feature into an R. Unlike RecordReader, it stops at the first
// error of any kind.
func ReadAllRecords[R any](r io.Reader, opts ...Option) ([]R, error) {
	rr := NewRecordReader[R](r, slices.Concat(opts, []Option{WithFailFast(true)})...)
	var recs []R
	for rec, err := range rr.All() {
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// WriteAllRecords writes recs to w as a complete FeatureCollection and
// closes the writer. If a record cannot be written the collection is
// left unfinished, w is closed if it is an io.Closer, and the error
// from closing it is joined to the returned error.
func WriteAllRecords[R any](w io.Writer, recs []R, opts ...Option) error {
	rw := NewRecordWriter[R](w, opts...)
	for i := range recs {
		if err := rw.Write(&recs[i]); err != nil {
			return errors.Join(wrapErr("record %d", err, i), rw.fw.close(w))
		}
	}
	return rw.Close()
}
