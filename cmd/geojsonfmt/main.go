// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command geojsonfmt reads a GeoJSON FeatureCollection, validates each
// feature, and writes the valid ones back out as JSON or YAML. It can
// also print the property schema the features would need in a
// FlatGeobuf file.
package main

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/gogama/geojson"
	"github.com/gogama/geojson/jsonvalue"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
)

type Options struct {
	Input    string `short:"i" long:"in" description:"Input GeoJSON file. Reads from stdin if empty"`
	Output   string `short:"o" long:"out" description:"Output file path. Writes to stdout if empty"`
	Format   string `short:"f" long:"format" description:"Output format" choice:"json" choice:"yaml" choice:"schema" default:"json"`
	Indent   string `long:"indent" description:"Indent JSON output with this string"`
	FailFast bool   `long:"fail-fast" description:"Stop at the first invalid feature instead of skipping it"`
	Verbose  []bool `short:"v" long:"verbose" description:"Log more detail (repeat for trace output)"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, len(opts.Verbose))
	if err := run(&opts, os.Stdin, os.Stdout, logger); err != nil {
		logger.Fatal().Err(err).Msg("Failed to format GeoJSON")
	}
}

func newLogger(w io.Writer, verbosity int) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case verbosity == 1:
		level = zerolog.DebugLevel
	case verbosity > 1:
		level = zerolog.TraceLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func run(opts *Options, stdin io.Reader, stdout io.Writer, logger zerolog.Logger) (err error) {
	in := stdin
	if opts.Input != "" {
		f, err := os.Open(opts.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	r := geojson.NewFeatureReader(in, geojson.WithLogger(logger), geojson.WithFailFast(opts.FailFast))

	// YAML and schema output need the whole collection.
	var fc *geojson.FeatureCollection
	if opts.Format != "json" {
		if fc, err = readCollection(r, opts, logger); err != nil {
			return err
		}
	}

	out := stdout
	if opts.Output != "" {
		f, cerr := os.Create(opts.Output)
		if cerr != nil {
			return cerr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		out = f
	}
	// Hide any Close method so the writers leave closing to us.
	w := struct{ io.Writer }{out}

	switch opts.Format {
	case "yaml":
		err = writeYAML(w, fc)
	case "schema":
		err = writeSchema(w, fc, logger)
	default:
		err = streamJSON(r, w, opts, logger)
	}
	if err != nil {
		return err
	}
	logger.Debug().Str("format", opts.Format).Msg("Output written")
	return nil
}

// eachFeature calls fn with every valid feature r reads. Invalid
// features are logged and skipped unless opts.FailFast is set.
func eachFeature(r *geojson.FeatureReader, opts *Options, logger zerolog.Logger, fn func(*geojson.Feature) error) error {
	n, skipped := 0, 0
	for f, err := range r.All() {
		var ee *geojson.ElementError
		if errors.As(err, &ee) && !opts.FailFast {
			logger.Warn().Err(ee.Err).Int("index", ee.Index).Msg("Skipping invalid feature")
			skipped++
			continue
		} else if err != nil {
			return err
		}
		if err = fn(f); err != nil {
			return err
		}
		n++
	}
	logger.Info().Int("features", n).Int("skipped", skipped).Msg("Read feature collection")
	return nil
}

func readCollection(r *geojson.FeatureReader, opts *Options, logger zerolog.Logger) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()
	err := eachFeature(r, opts, logger, func(f *geojson.Feature) error {
		fc.Features = append(fc.Features, f)
		return nil
	})
	if err != nil {
		return nil, err
	}
	fc.BBox = r.BBox()
	fc.ForeignMembers = r.ForeignMembers()
	return fc, nil
}

// streamJSON writes each feature as soon as it is read. The collection
// is opened when the first feature arrives, so a bbox member that
// follows the features array is dropped. Foreign members are written
// last wherever they appeared. On error the output is left unfinished.
func streamJSON(r *geojson.FeatureReader, w io.Writer, opts *Options, logger zerolog.Logger) error {
	foreign := &jsonvalue.Object{}
	var fw *geojson.FeatureWriter
	var bbox geojson.BBox
	start := func() {
		bbox = r.BBox()
		fw = geojson.NewFeatureWriter(w,
			geojson.WithLogger(logger),
			geojson.WithIndent(opts.Indent),
			geojson.WithCollectionMembers(bbox, foreign),
		)
	}
	err := eachFeature(r, opts, logger, func(f *geojson.Feature) error {
		if fw == nil {
			start()
		}
		return fw.Write(f)
	})
	if err != nil {
		return err
	}
	if fw == nil {
		start()
	} else if bbox == nil && r.BBox() != nil {
		logger.Warn().Msg("Dropping collection bbox that follows the features")
	}
	for name, v := range r.ForeignMembers().All() {
		foreign.Set(name, v)
	}
	return fw.Close()
}
