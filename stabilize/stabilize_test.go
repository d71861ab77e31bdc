// Copyright (c) 2025, The Colorsight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stabilize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colorsight/colorsight/naming"
)

func TestMajorityWins(t *testing.T) {
	h := NewHistory(3)
	assert.Equal(t, naming.Name("Red"), h.Stabilize("Red"))
	assert.Equal(t, naming.Name("Red"), h.Stabilize("Red"))

	// Single flicker frame is outvoted.
	assert.Equal(t, naming.Name("Red"), h.Stabilize("Blue"))
}

func TestNoMajorityFallsBack(t *testing.T) {
	h := NewHistory(3)
	h.Stabilize("Red")
	h.Stabilize("Blue")

	// Full window, three distinct names: no majority, so the raw
	// candidate wins.
	assert.Equal(t, naming.Name("Green"), h.Stabilize("Green"))
}

func TestWarmup(t *testing.T) {
	h := NewHistory(4)
	assert.Equal(t, naming.Name("Teal"), h.Stabilize("Teal"))
	assert.Equal(t, 1, h.Len())
}

func TestEviction(t *testing.T) {
	h := NewHistory(3)
	for _, n := range []naming.Name{"Red", "Red", "Red"} {
		h.Stabilize(n)
	}
	assert.Equal(t, 3, h.Len())

	// Old Reds age out; once Blue fills the window it takes over.
	assert.Equal(t, naming.Name("Red"), h.Stabilize("Blue"))
	assert.Equal(t, naming.Name("Blue"), h.Stabilize("Blue"))
	assert.Equal(t, 3, h.Len())
}

func TestCapacityClamped(t *testing.T) {
	assert.Equal(t, MinCapacity, NewHistory(1).cap)
	assert.Equal(t, MaxCapacity, NewHistory(9).cap)
	assert.Equal(t, DefaultCapacity, NewHistory(0).cap)
}

func TestReset(t *testing.T) {
	h := NewHistory(3)
	h.Stabilize("Red")
	h.Stabilize("Red")
	h.Reset()
	assert.Equal(t, 0, h.Len())

	// After reset the first sample passes through raw again.
	assert.Equal(t, naming.Name("Blue"), h.Stabilize("Blue"))
}
