// Copyright (c) 2025, The Colorsight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the CIE standard colorimetry conversions used by the
// color naming pipeline: gamma-corrected sRGB to and from linear light,
// linear sRGB to and from XYZ, and XYZ to and from L*a*b*, all relative to
// the D65 standard illuminant.
package cie

import "github.com/chewxy/math32"

// SRGBToLinearComp converts a gamma-corrected sRGB component in the 0-1
// range to linear light, using the standard sRGB transfer function.
func SRGBToLinearComp(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math32.Pow((v+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts a linear light component in the 0-1 range
// to a gamma-corrected sRGB component.
func SRGBFromLinearComp(lin float32) float32 {
	if lin <= 0.0031308 {
		return lin * 12.92
	}
	return 1.055*math32.Pow(lin, 1.0/2.4) - 0.055
}

// SRGBToLinear converts gamma-corrected sRGB values in the 0-1 range
// to linear light values.
func SRGBToLinear(r, g, b float32) (rl, gl, bl float32) {
	rl = SRGBToLinearComp(r)
	gl = SRGBToLinearComp(g)
	bl = SRGBToLinearComp(b)
	return
}

// SRGBFromLinear converts linear light values in the 0-1 range
// to gamma-corrected sRGB values.
func SRGBFromLinear(rl, gl, bl float32) (r, g, b float32) {
	r = SRGBFromLinearComp(rl)
	g = SRGBFromLinearComp(gl)
	b = SRGBFromLinearComp(bl)
	return
}
