// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geojson

import (
	"github.com/gogama/geojson/jsonvalue"
	"github.com/rs/zerolog"
)

// An Option configures a reader or writer.
type Option func(*options)

type options struct {
	logger   zerolog.Logger
	indent   string
	failFast bool
	bbox     BBox
	foreign  *jsonvalue.Object
	codec    interface{}
}

func newOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger that readers, writers and record codecs
// report their progress to. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithIndent makes writers put each nested element on its own line,
// indented by indent.
func WithIndent(indent string) Option {
	return func(o *options) {
		o.indent = indent
	}
}

// WithFailFast makes readers treat an invalid feature as a fatal
// error rather than reporting it as an *ElementError and moving on to
// the next feature.
func WithFailFast(failFast bool) Option {
	return func(o *options) {
		o.failFast = failFast
	}
}

// WithCollectionMembers sets the bounding box and foreign members a
// writer emits in the enclosing FeatureCollection. Either may be nil.
//
// The bounding box is written before the first feature. Foreign
// members are written after the last one, when the writer is closed,
// so members added to foreign until then are included.
func WithCollectionMembers(bbox BBox, foreign *jsonvalue.Object) Option {
	return func(o *options) {
		o.bbox = bbox
		o.foreign = foreign
	}
}

// WithCodec sets the codec record readers and writers use to convert
// between records of type R and features. The default is StructCodec.
func WithCodec[R any](codec RecordCodec[R]) Option {
	return func(o *options) {
		o.codec = codec
	}
}
