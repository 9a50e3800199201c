// Copyright 2026 The geojson (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geojson

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_String(t *testing.T) {
	assert.Equal(t, "in features", inFeatures.String())
	assert.Equal(t, "end of document", eof.String())
	assert.Equal(t, "state(9)", state(9).String())
}

func TestStateful(t *testing.T) {
	t.Run("Transitions", func(t *testing.T) {
		var s stateful

		err := s.toState(uninitialized, beforeFeatures)
		require.NoError(t, err)
		err = s.toState(inFeatures, afterFeatures)

		assert.ErrorIs(t, err, errUnexpectedState)
		assert.EqualError(t, err, "geojson: unexpected state: before features, expected in features")
		assert.Equal(t, beforeFeatures, s.state)
	})

	t.Run("Sticky", func(t *testing.T) {
		var s stateful
		boom := errors.New("boom")

		assert.Same(t, boom, s.toErr(boom))
		assert.Same(t, boom, s.toState(uninitialized, beforeFeatures))
		assert.PanicsWithValue(t, "geojson: logic error: already in error state", func() {
			_ = s.toErr(boom)
		})
	})

	t.Run("BadState", func(t *testing.T) {
		s := stateful{state: 42}

		assert.PanicsWithValue(t, "geojson: logic error: invalid state state(42)", func() {
			_ = s.toState(uninitialized, beforeFeatures)
		})
	})

	t.Run("Close", func(t *testing.T) {
		var s stateful
		c := &closeRecorder{Writer: &bytes.Buffer{}}

		assert.NoError(t, s.close(c))
		assert.ErrorIs(t, s.close(c), ErrClosed)
		assert.Equal(t, 1, c.closed)
	})
}
