// Copyright (c) 2025, The Colorsight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

import (
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

const tol = 1.0e-3

func TestNew(t *testing.T) {
	assert.Equal(t, HSL{100, 0.87, 0.56, 1}, New(100, 0.87, 0.56))

	// Out-of-range arguments are normalized, not propagated.
	n := New(400, 1.2, -0.3)
	assert.InDelta(t, 40, n.H, tol)
	assert.Equal(t, float32(1), n.S)
	assert.Equal(t, float32(0), n.L)
}

func TestFromRGB(t *testing.T) {
	tests := []struct {
		r, g, b float32
		want    HSL
	}{
		{1, 0, 0, HSL{0, 1, 0.5, 1}},
		{0, 1, 0, HSL{120, 1, 0.5, 1}},
		{0, 0, 1, HSL{240, 1, 0.5, 1}},
		{1, 1, 0, HSL{60, 1, 0.5, 1}},
		{0, 1, 1, HSL{180, 1, 0.5, 1}},
		{1, 0, 1, HSL{300, 1, 0.5, 1}},
		{0, 0, 0, HSL{0, 0, 0, 1}},
		{1, 1, 1, HSL{0, 0, 1, 1}},
		{0.5, 0.5, 0.5, HSL{0, 0, 0.5, 1}},
	}
	for _, tt := range tests {
		have := FromRGB(tt.r, tt.g, tt.b)
		assert.InDelta(t, tt.want.H, have.H, tol)
		assert.InDelta(t, tt.want.S, have.S, tol)
		assert.InDelta(t, tt.want.L, have.L, tol)
	}
}

// Inputs outside the nominal 0-1 channel range must still produce
// in-range saturation and lightness and a hue in [0, 360).
func TestFromRGBClamped(t *testing.T) {
	for _, s := range [][3]float32{{1.4, -0.2, 0.3}, {2, 2, 2}, {-1, -1, -1}, {0.9, 1.1, 0.2}} {
		h := FromRGB(s[0], s[1], s[2])
		assert.GreaterOrEqual(t, h.H, float32(0))
		assert.Less(t, h.H, float32(360))
		assert.GreaterOrEqual(t, h.S, float32(0))
		assert.LessOrEqual(t, h.S, float32(1))
		assert.GreaterOrEqual(t, h.L, float32(0))
		assert.LessOrEqual(t, h.L, float32(1))
	}
}

func TestRoundTrip(t *testing.T) {
	for _, want := range []HSL{
		New(20.5, 0.64, 0.56),
		New(86, 0.54, 0.4),
		New(200, 0.9, 0.7),
		New(310, 0.33, 0.25),
	} {
		r, g, b := want.ToRGB()
		have := FromRGB(r, g, b)
		assert.InDelta(t, want.H, have.H, 0.1)
		assert.InDelta(t, want.S, have.S, tol)
		assert.InDelta(t, want.L, have.L, tol)
	}
}

// No discontinuity at the 0/360 hue boundary: colors just on either
// side of pure red convert to hues just on either side of 0.
func TestHueWraparound(t *testing.T) {
	r1, g1, b1 := New(359.9, 0.8, 0.5).ToRGB()
	r2, g2, b2 := New(0.1, 0.8, 0.5).ToRGB()
	h1 := FromRGB(r1, g1, b1)
	h2 := FromRGB(r2, g2, b2)
	assert.InDelta(t, 359.9, h1.H, 0.1)
	assert.InDelta(t, 0.1, h2.H, 0.1)
}

func TestAgainstColorful(t *testing.T) {
	samples := [][3]float32{
		{0.8, 0.45, 0.26}, {0.1, 0.6, 0.15}, {0.2, 0.3, 0.9},
		{0.95, 0.95, 0.3}, {0.33, 0.12, 0.5},
	}
	for _, s := range samples {
		have := FromRGB(s[0], s[1], s[2])
		ch, cs, cl := colorful.Color{R: float64(s[0]), G: float64(s[1]), B: float64(s[2])}.Hsl()
		assert.InDelta(t, ch, float64(have.H), 0.1)
		assert.InDelta(t, cs, float64(have.S), 1.0e-3)
		assert.InDelta(t, cl, float64(have.L), 1.0e-3)
	}
}

func TestColorInterop(t *testing.T) {
	have := Model.Convert(color.RGBA{204, 114, 67, 243}).(HSL)
	assert.InDelta(t, 20.584, have.H, 0.1)
	assert.InDelta(t, 0.6372, have.S, tol)
	assert.InDelta(t, 0.5576, have.L, tol)
	assert.InDelta(t, 0.9529, have.A, tol)

	rgba := have.AsRGBA()
	assert.InDelta(t, 204, float32(rgba.R), 1)
	assert.InDelta(t, 114, float32(rgba.G), 1)
	assert.InDelta(t, 67, float32(rgba.B), 1)
	assert.InDelta(t, 243, float32(rgba.A), 1)

	r, g, b, a := have.RGBA()
	set := HSL{}
	set.SetUint32(r, g, b, a)
	assert.InDelta(t, have.H, set.H, 0.1)
	assert.InDelta(t, have.S, set.S, tol)
	assert.InDelta(t, have.L, set.L, tol)

	set.SetColor(nil)
	assert.Equal(t, HSL{}, set)
}

func TestString(t *testing.T) {
	assert.Equal(t, "hsl(86, 0.54, 0.97)", New(86, 0.54, 0.97).String())
}
