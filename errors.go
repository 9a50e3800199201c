// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geojson

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogama/geojson/jsonvalue"
)

var (
	// ErrMissingType is returned when a JSON object that should be a
	// GeoJSON object has no "type" member.
	ErrMissingType = textErr(`missing "type" member`)
	// ErrClosed is returned when attempting to perform an operation on
	// a reader or writer which has been closed.
	ErrClosed = textErr("closed")
	// ErrNoGeometry is returned when converting a Feature with no
	// geometry into a planar geometry.
	ErrNoGeometry = textErr("feature has no geometry")

	errUnexpectedState = textErr("unexpected state")
)

// SyntaxError reports malformed JSON text. It is the same type the
// jsonvalue package returns, so errors.As works with either name.
type SyntaxError = jsonvalue.SyntaxError

// TypeMismatchError is returned when a member holds a JSON value of
// the wrong kind, for example a string where an object is required.
type TypeMismatchError struct {
	// Member is the name of the offending member.
	Member string
	// Expected describes the acceptable kinds.
	Expected string
	// Actual is the kind found.
	Actual jsonvalue.Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%smember %q: expected %s, got %s", packageName, e.Member, e.Expected, e.Actual)
}

// UnknownTypeError is returned when the "type" member names no
// GeoJSON type.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("%sunknown type %q", packageName, e.Type)
}

// NotVariantError is returned when a document is a valid GeoJSON type
// but not the one requested, for example a Feature passed to
// ParseGeometry.
type NotVariantError struct {
	Expected string
	Actual   Type
}

func (e *NotVariantError) Error() string {
	return fmt.Sprintf("%sexpected %s, got %s", packageName, e.Expected, e.Actual)
}

// CoordinateError is returned when a "coordinates" or "bbox" member
// does not have the shape its geometry type requires.
type CoordinateError struct {
	// Type is the geometry type whose coordinates were being read, or
	// empty for a bounding box.
	Type Type
	// Shape describes what was wrong.
	Shape string
}

func (e *CoordinateError) Error() string {
	if e.Type == "" {
		return packageName + "bbox: " + e.Shape
	}
	return fmt.Sprintf("%s%s coordinates: %s", packageName, e.Type, e.Shape)
}

// IDTypeError is returned when a Feature's "id" member is neither a
// string nor a number.
type IDTypeError struct {
	Kind jsonvalue.Kind
}

func (e *IDTypeError) Error() string {
	return fmt.Sprintf("%sfeature id must be a string or number, got %s", packageName, e.Kind)
}

// MissingMemberError is returned when a member required by a GeoJSON
// type is absent.
type MissingMemberError struct {
	Type   Type
	Member string
}

func (e *MissingMemberError) Error() string {
	return fmt.Sprintf("%s%s is missing member %q", packageName, e.Type, e.Member)
}

// ConversionError is returned when a GeoJSON geometry cannot be
// converted into the requested planar geometry.
type ConversionError struct {
	// Expected names the requested target, for example "orb.Polygon".
	Expected string
	// Actual names what was found, for example "LineString".
	Actual string
	// Index is the position of the failing member within a
	// GeometryCollection, or -1.
	Index int
	// Err is the underlying cause, if any.
	Err error
}

func (e *ConversionError) Error() string {
	msg := packageName + "cannot convert "
	if e.Index >= 0 {
		msg += "member " + strconv.Itoa(e.Index) + " "
	}
	msg += e.Actual + " to " + e.Expected
	if e.Err != nil {
		msg += ": " + errText(e.Err)
	}
	return msg
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// ElementError reports a Feature in a stream that was well-formed JSON
// but not a valid GeoJSON Feature. Reading may continue after an
// ElementError.
type ElementError struct {
	// Index is the zero-based position of the element in the
	// "features" array.
	Index int
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("%sfeature %d: %s", packageName, e.Index, errText(e.Err))
}

func (e *ElementError) Unwrap() error {
	return e.Err
}

// RecordTypeError is returned when a record type contains a field
// that cannot be mapped to or from a GeoJSON Feature.
type RecordTypeError struct {
	Type  string
	Field string
	Err   error
}

func (e *RecordTypeError) Error() string {
	msg := packageName + "record type " + e.Type
	if e.Field != "" {
		msg += " field " + e.Field
	}
	return msg + ": " + errText(e.Err)
}

func (e *RecordTypeError) Unwrap() error {
	return e.Err
}

const packageName = "geojson: "

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
