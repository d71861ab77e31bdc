// Copyright (c) 2025, The Colorsight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1.0e-4

func TestPlainConversion(t *testing.T) {
	n := New(Options{})
	s := n.Normalize(1, 0, 0)
	assert.InDelta(t, 0, s.HSL.H, tol)
	assert.InDelta(t, 1, s.HSL.S, tol)
	assert.InDelta(t, 0.5, s.HSL.L, tol)
	assert.InDelta(t, 1, s.Chroma, tol)
}

func TestInputClamped(t *testing.T) {
	n := New(Options{})
	s := n.Normalize(1.7, -0.4, 0.5)
	assert.Equal(t, float32(1), s.R)
	assert.Equal(t, float32(0), s.G)
	assert.Equal(t, float32(0.5), s.B)
}

func TestGrayWorld(t *testing.T) {
	n := New(Options{GrayWorld: true})

	// Equal channels are already gray; the correction is a no-op.
	s := n.Normalize(0.5, 0.5, 0.5)
	assert.InDelta(t, 0.5, s.R, tol)
	assert.InDelta(t, 0, s.HSL.S, tol)

	// A saturated sample is pulled 40% of the way toward its mean,
	// not all the way.
	s = n.Normalize(1, 0, 0)
	avg := float32(1.0 / 3.0)
	assert.InDelta(t, 1+grayWorldBlend*(avg-1), s.R, tol)
	assert.InDelta(t, grayWorldBlend*avg, s.G, tol)
	assert.InDelta(t, grayWorldBlend*avg, s.B, tol)
	assert.Greater(t, s.HSL.S, float32(0.5))

	// Too dark to normalize meaningfully: passed through unchanged.
	s = n.Normalize(0.012, 0.006, 0.003)
	assert.InDelta(t, 0.012, s.R, tol)
	assert.InDelta(t, 0.006, s.G, tol)
	assert.InDelta(t, 0.003, s.B, tol)
}

func TestGamma(t *testing.T) {
	n := New(Options{Gamma: true})
	s := n.Normalize(0.5, 0.5, 0.5)
	assert.InDelta(t, 0.72974, s.HSL.L, tol)
}

// After 100 consecutive extreme-tint frames the correction factors must
// still be inside [0.7, 1.5].
func TestWhiteBalanceBounds(t *testing.T) {
	n := New(Options{AutoWhiteBalance: true})
	for i := 0; i < 100; i++ {
		n.Normalize(0.9, 0.1, 0.1)
	}
	r, g, b := n.WhiteBalance()
	for _, f := range []float32{r, g, b} {
		assert.GreaterOrEqual(t, f, float32(wbFactorMin))
		assert.LessOrEqual(t, f, float32(wbFactorMax))
	}
	// Red is over-represented, so its factor decays to the lower
	// bound; the starved channels are boosted to their cap.
	assert.InDelta(t, wbFactorMin, r, tol)
	assert.InDelta(t, wbFactorMax, g, tol)
	assert.InDelta(t, wbFactorMax, b, tol)
}

// The oldest batch is evicted the moment the window fills; it never
// holds more than wbWindow samples.
func TestWhiteBalanceWindowEviction(t *testing.T) {
	n := New(Options{AutoWhiteBalance: true})
	for i := 0; i < wbWindow-1; i++ {
		n.Normalize(0.5, 0.5, 0.5)
	}
	assert.Len(t, n.wb.window, wbWindow-1)

	n.Normalize(0.5, 0.5, 0.5)
	assert.Len(t, n.wb.window, wbWindow-wbEvict)

	for i := 0; i < 200; i++ {
		n.Normalize(0.5, 0.5, 0.5)
		assert.LessOrEqual(t, len(n.wb.window), wbWindow)
	}
}

func TestReset(t *testing.T) {
	n := New(Options{AutoWhiteBalance: true})
	for i := 0; i < 30; i++ {
		n.Normalize(0.9, 0.2, 0.1)
	}
	r, g, b := n.WhiteBalance()
	assert.NotEqual(t, float32(1), g)

	n.Reset()
	r, g, b = n.WhiteBalance()
	assert.Equal(t, float32(1), r)
	assert.Equal(t, float32(1), g)
	assert.Equal(t, float32(1), b)
	assert.Empty(t, n.wb.window)
}
