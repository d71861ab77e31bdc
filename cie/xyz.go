// Copyright (c) 2025, The Colorsight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// SRGBLinToXYZ converts linear sRGB values in the 0-1 range to XYZ
// coordinates, using the standard sRGB primaries and D65 white point.
func SRGBLinToXYZ(rl, gl, bl float32) (x, y, z float32) {
	x = 0.41233895*rl + 0.35762064*gl + 0.18051042*bl
	y = 0.2126*rl + 0.7152*gl + 0.0722*bl
	z = 0.01932141*rl + 0.11916382*gl + 0.95034478*bl
	return
}

// XYZToSRGBLin converts XYZ coordinates to linear sRGB values,
// the inverse of [SRGBLinToXYZ].
func XYZToSRGBLin(x, y, z float32) (rl, gl, bl float32) {
	rl = 3.2413774*x + -1.5376652*y + -0.49885368*z
	gl = -0.96914524*x + 1.8758853*y + 0.041565858*z
	bl = 0.055620935*x + -0.20395525*y + 1.0571799*z
	return
}

// SRGBToXYZ converts gamma-corrected sRGB values in the 0-1 range
// to XYZ coordinates.
func SRGBToXYZ(r, g, b float32) (x, y, z float32) {
	rl, gl, bl := SRGBToLinear(r, g, b)
	x, y, z = SRGBLinToXYZ(rl, gl, bl)
	return
}

// SRGBFromXYZ converts XYZ coordinates to gamma-corrected sRGB values
// in the 0-1 range.
func SRGBFromXYZ(x, y, z float32) (r, g, b float32) {
	rl, gl, bl := XYZToSRGBLin(x, y, z)
	r, g, b = SRGBFromLinear(rl, gl, bl)
	return
}
