// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package jsonvalue

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
)

const packageName = "jsonvalue: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

// wrapErr prefixes err with text. The package name is dropped from the
// message of err so that it appears only once.
func wrapErr(text string, err error, a ...interface{}) error {
	return &wrapError{msg: fmt.Sprintf(packageName+text, a...) + ": " + errText(err), err: err}
}

type wrapError struct {
	msg string
	err error
}

func (e *wrapError) Error() string {
	return e.msg
}

func (e *wrapError) Unwrap() error {
	return e.err
}

// errText returns the message of err without this package's prefix.
func errText(err error) string {
	return strings.TrimPrefix(err.Error(), packageName)
}

func textPanic(text string) {
	panic(packageName + text)
}

// A SyntaxError reports malformed JSON text. Offset is the byte offset
// in the input at which the problem was detected, and Err is the
// underlying error reported by the JSON tokenizer.
type SyntaxError struct {
	Offset int64
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%smalformed JSON at offset %d: %v", packageName, e.Offset, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// classify converts a tokenizer error into a *SyntaxError when it
// describes malformed input. Any other error, typically an I/O error
// from the underlying stream, is returned unchanged.
func classify(err error, offset int64) error {
	if err == nil || err == io.EOF {
		return err
	}
	var se *SyntaxError
	if errors.As(err, &se) {
		return err
	}
	var je *jsontext.SyntacticError
	if errors.As(err, &je) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &SyntaxError{Offset: offset, Err: err}
	}
	return err
}
