// Copyright (c) 2025, The Colorsight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

const tol = 1.0e-4

func TestSRGB(t *testing.T) {
	assert.InDelta(t, 0.00015479876, SRGBToLinearComp(0.002), tol)
	assert.InDelta(t, 0.23302202, SRGBToLinearComp(0.52), tol)

	assert.InDelta(t, 0.012920001, SRGBFromLinearComp(0.001), tol)
	assert.InDelta(t, 0.84338915, SRGBFromLinearComp(0.68), tol)

	rl, gl, bl := SRGBToLinear(0.3, 0.2, 0.6)
	assert.InDelta(t, 0.07323897, rl, tol)
	assert.InDelta(t, 0.033104762, gl, tol)
	assert.InDelta(t, 0.31854683, bl, tol)

	r, g, b := SRGBFromLinear(0.12, 0.34, 0.78)
	assert.InDelta(t, 0.38109186, r, tol)
	assert.InDelta(t, 0.61803144, g, tol)
	assert.InDelta(t, 0.8962438, b, tol)
}

func TestXYZ(t *testing.T) {
	x, y, z := SRGBLinToXYZ(0.5, 0.6, 0.7)
	assert.InDelta(t, 0.5470991, x, tol)
	assert.InDelta(t, 0.58596003, y, tol)
	assert.InDelta(t, 0.74640036, z, tol)

	rl, gl, bl := XYZToSRGBLin(x, y, z)
	assert.InDelta(t, 0.5, rl, 1.0e-3)
	assert.InDelta(t, 0.6, gl, 1.0e-3)
	assert.InDelta(t, 0.7, bl, 1.0e-3)
}

func TestLAB(t *testing.T) {
	assert.InDelta(t, 0.887904, LABCompress(0.7), tol)
	assert.InDelta(t, 0.1379544, LABCompress(0.000003), tol)
	assert.InDelta(t, 0.21600002, LABUncompress(0.6), tol)

	l, a, b := XYZToLAB(0.1, 0.3, 0.5)
	assert.InDelta(t, 61.65422, l, 1.0e-2)
	assert.InDelta(t, -98.673805, a, 1.0e-2)
	assert.InDelta(t, -20.413673, b, 1.0e-2)

	x, y, z := LABToXYZ(28, 14, 36.2)
	assert.InDelta(t, 0.06422656, x, tol)
	assert.InDelta(t, 0.054573778, y, tol)
	assert.InDelta(t, 0.008442593, z, tol)

	assert.InDelta(t, 0.023023312, LToY(17), tol)
	assert.InDelta(t, 21.579498, YToL(0.034), 1.0e-2)
}

// Neutral inputs must land on the L* axis with no chromatic component.
func TestLABNeutralAxis(t *testing.T) {
	for _, v := range []float32{0, 0.15, 0.5, 0.82, 1} {
		_, a, b := SRGBToLAB(v, v, v)
		assert.InDelta(t, 0, a, 1.0e-2)
		assert.InDelta(t, 0, b, 1.0e-2)
		assert.InDelta(t, 0, LABChroma(a, b), 2.0e-2)
	}
}

// Cross-check the full sRGB -> LAB path against go-colorful, which keeps
// L* in 0-1 and a*/b* divided by 100.
func TestLABAgainstColorful(t *testing.T) {
	samples := [][3]float32{
		{1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		{0.2, 0.55, 0.81}, {0.93, 0.41, 0.08}, {0.5, 0.5, 0.5},
	}
	for _, s := range samples {
		l, a, b := SRGBToLAB(s[0], s[1], s[2])
		cl, ca, cb := colorful.Color{R: float64(s[0]), G: float64(s[1]), B: float64(s[2])}.Lab()
		assert.InDelta(t, cl, float64(l)/100, 1.0e-2)
		assert.InDelta(t, ca, float64(a)/100, 1.0e-2)
		assert.InDelta(t, cb, float64(b)/100, 1.0e-2)
	}
}
