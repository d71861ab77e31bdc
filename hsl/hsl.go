// Copyright (c) 2025, The Colorsight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsl provides the HSL (hue, saturation, lightness) color
// representation used by the classifier, with conversions to and from
// sRGB and the standard [image/color] interfaces.
package hsl

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
)

// deltaEpsilon is the minimum max-min channel difference for a sample
// to be considered chromatic; below it saturation is 0 and hue is 0.
const deltaEpsilon = 0.001

// HSL represents a color in the HSL cylindrical model.
type HSL struct {

	// H is the hue in degrees, always normalized to [0, 360).
	// It is 0 by convention when the color is achromatic (S = 0).
	H float32

	// S is the saturation, clamped to [0, 1].
	S float32

	// L is the lightness, clamped to [0, 1].
	L float32

	// A is the alpha, clamped to [0, 1].
	A float32
}

// New returns a new [HSL] with the given hue (0-360), saturation (0-1),
// and lightness (0-1), and alpha of 1.
func New(h, s, l float32) HSL {
	return HSL{NormHue(h), clamp01(s), clamp01(l), 1}
}

// FromRGB returns the HSL representation of the given sRGB channel
// values in the 0-1 range, using the standard max/min-channel formula.
// The result always satisfies the range invariants: H in [0, 360),
// S and L in [0, 1], with H = 0 and S = 0 for achromatic inputs.
func FromRGB(r, g, b float32) HSL {
	r, g, b = clamp01(r), clamp01(g), clamp01(b)
	max := math32.Max(r, math32.Max(g, b))
	min := math32.Min(r, math32.Min(g, b))
	delta := max - min

	l := (max + min) / 2
	if delta <= deltaEpsilon {
		return HSL{0, 0, clamp01(l), 1}
	}

	denom := 1 - math32.Abs(2*l-1)
	var s float32
	if denom > deltaEpsilon {
		s = delta / denom
	}

	var h float32
	switch max {
	case r:
		h = 60 * ((g - b) / delta)
	case g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	return HSL{NormHue(h), clamp01(s), clamp01(l), 1}
}

// FromColor returns the HSL representation of the given [color.Color].
func FromColor(c color.Color) HSL {
	h := HSL{}
	h.SetColor(c)
	return h
}

// Model is the standard [color.Model] that converts colors to HSL.
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if h, ok := c.(HSL); ok {
		return h
	}
	return FromColor(c)
}

// ToRGB returns the sRGB channel values of the color, in the 0-1 range.
func (h HSL) ToRGB() (r, g, b float32) {
	if h.S == 0 {
		return h.L, h.L, h.L
	}
	var q float32
	if h.L < 0.5 {
		q = h.L * (1 + h.S)
	} else {
		q = h.L + h.S - h.L*h.S
	}
	p := 2*h.L - q
	hn := h.H / 360
	r = hueToComp(p, q, hn+1.0/3.0)
	g = hueToComp(p, q, hn)
	b = hueToComp(p, q, hn-1.0/3.0)
	return
}

func hueToComp(p, q, t float32) float32 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// RGBA implements the [color.Color] interface.
// It performs the premultiplication of the RGB components by alpha.
func (h HSL) RGBA() (r, g, b, a uint32) {
	fr, fg, fb := h.ToRGB()
	r = uint32(fr*h.A*65535.0 + 0.5)
	g = uint32(fg*h.A*65535.0 + 0.5)
	b = uint32(fb*h.A*65535.0 + 0.5)
	a = uint32(h.A*65535.0 + 0.5)
	return
}

// AsRGBA returns a standard [color.RGBA] representation of the color.
func (h HSL) AsRGBA() color.RGBA {
	fr, fg, fb := h.ToRGB()
	return color.RGBA{
		uint8(fr*h.A*255.0 + 0.5),
		uint8(fg*h.A*255.0 + 0.5),
		uint8(fb*h.A*255.0 + 0.5),
		uint8(h.A*255.0 + 0.5),
	}
}

// SetUint32 sets the color from alpha-premultiplied unsigned 32bit
// integer components, as returned by [color.Color.RGBA].
func (h *HSL) SetUint32(r, g, b, a uint32) {
	if a == 0 {
		*h = HSL{}
		return
	}
	fa := float32(a) / 65535.0
	fr := (float32(r) / 65535.0) / fa
	fg := (float32(g) / 65535.0) / fa
	fb := (float32(b) / 65535.0) / fa
	*h = FromRGB(fr, fg, fb)
	h.A = fa
}

// SetColor sets the color from a standard [color.Color].
func (h *HSL) SetColor(c color.Color) {
	if c == nil {
		*h = HSL{}
		return
	}
	h.SetUint32(c.RGBA())
}

func (h HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g, %g)", h.H, h.S, h.L)
}

// NormHue normalizes a hue angle in degrees into [0, 360).
func NormHue(h float32) float32 {
	h = math32.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp01(v float32) float32 {
	return math32.Min(1, math32.Max(0, v))
}
