// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package jsonvalue provides an in-memory JSON value that keeps the
// member order of objects and the literal text of numbers, built on
// the jsontext streaming tokenizer.
package jsonvalue
