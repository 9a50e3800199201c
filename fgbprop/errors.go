// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fgbprop

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogama/geojson/jsonvalue"
)

// ValueError is returned when a property value cannot be stored in
// the type of its column.
type ValueError struct {
	Column string
	Type   ColumnType
	Value  jsonvalue.Value
	// Err, if not nil, describes why the conversion failed.
	Err error
}

func (e *ValueError) Error() string {
	msg := fmt.Sprintf("%scolumn %q: cannot store %s in %s column", packageName, e.Column, e.Value.Kind(), e.Type)
	if e.Err != nil {
		msg += ": " + errText(e.Err)
	}
	return msg
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// UnknownColumnError is returned when encoding a property whose name
// has no column in the schema.
type UnknownColumnError struct {
	Name string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("%sno column for property %q", packageName, e.Name)
}

// ColumnIndexError is returned when a property buffer refers to a
// column index the schema does not have.
type ColumnIndexError struct {
	Index      int
	NumColumns int
}

func (e *ColumnIndexError) Error() string {
	return fmt.Sprintf("%scolumn index %d not in schema (%d columns)", packageName, e.Index, e.NumColumns)
}

const packageName = "fgbprop: "

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

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
