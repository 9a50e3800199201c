// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package jsonvalue

import "github.com/go-json-experiment/json/jsontext"

// formatFloat formats f as the shortest JSON number that round-trips,
// with exponent notation only for very small or very large magnitudes.
// Non-finite values produce NaN, Infinity or -Infinity, which are not
// valid JSON numbers.
func formatFloat(f float64) string {
	return jsontext.Float(f).String()
}

// validNumber reports whether s is exactly one JSON number with no
// surrounding whitespace.
func validNumber(s string) bool {
	if s == "" || isSpace(s[0]) || isSpace(s[len(s)-1]) {
		return false
	}
	v := jsontext.Value(s)
	return v.Kind() == '0' && v.IsValid()
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
