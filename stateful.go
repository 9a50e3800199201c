// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geojson

import (
	"fmt"
	"io"
	"strconv"
)

// state is how far through a FeatureCollection document a reader or
// writer has got.
type state uint8

const (
	uninitialized state = iota
	beforeFeatures
	inFeatures
	afterFeatures
	eof
)

var stateNames = [...]string{
	uninitialized:  "uninitialized",
	beforeFeatures: "before features",
	inFeatures:     "in features",
	afterFeatures:  "after features",
	eof:            "end of document",
}

func (s state) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "state(" + strconv.Itoa(int(s)) + ")"
}

// stateful is embedded by FeatureReader and FeatureWriter. Once err is
// set it is returned by every later operation.
type stateful struct {
	state state
	err   error
}

// close moves to the closed state and closes c if it is an io.Closer.
func (s *stateful) close(c interface{}) error {
	if s.err == ErrClosed {
		return ErrClosed
	}
	s.err = ErrClosed
	if closer, ok := c.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (s *stateful) sanityCheckState() {
	if int(s.state) >= len(stateNames) {
		fmtPanic("logic error: invalid state %s", s.state)
	}
}

func (s *stateful) toState(from, to state) error {
	if s.err != nil {
		return s.err
	}
	if s.state != from {
		s.sanityCheckState()
		return fmt.Errorf("%w: %s, expected %s", errUnexpectedState, s.state, from)
	}
	s.state = to
	return nil
}

// toErr puts the reader or writer into a sticky error state.
func (s *stateful) toErr(err error) error {
	if s.err != nil {
		textPanic("logic error: already in error state")
	}
	s.err = err
	return err
}
