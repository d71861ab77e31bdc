// Copyright (c) 2025, The Colorsight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "github.com/chewxy/math32"

// D65 standard illuminant white point, normalized so that Y = 1.
const (
	WhiteD65X float32 = 0.95047
	WhiteD65Y float32 = 1.0
	WhiteD65Z float32 = 1.08883
)

// LABCompress does cube-root compression of a white-point-relative
// XYZ component, per the standard L*a*b* formula, with the linear
// segment for small values.
func LABCompress(t float32) float32 {
	const e = 216.0 / 24389.0
	if t > e {
		return math32.Pow(t, 1.0/3.0)
	}
	const kappa = 24389.0 / 27.0
	return (kappa*t + 16) / 116
}

// LABUncompress is the inverse of [LABCompress].
func LABUncompress(ft float32) float32 {
	e3 := ft * ft * ft
	const e = 216.0 / 24389.0
	if e3 > e {
		return e3
	}
	const kappa = 24389.0 / 27.0
	return (116*ft - 16) / kappa
}

// XYZToLAB converts XYZ coordinates, normalized such that Y = 1 is the
// reference white, to L*a*b* coordinates under the D65 illuminant.
// L* is in the 0-100 range; a* and b* are roughly -128 to 127.
func XYZToLAB(x, y, z float32) (l, a, b float32) {
	fx := LABCompress(x / WhiteD65X)
	fy := LABCompress(y / WhiteD65Y)
	fz := LABCompress(z / WhiteD65Z)
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts L*a*b* coordinates under the D65 illuminant
// to XYZ coordinates normalized such that Y = 1 is the reference white.
func LABToXYZ(l, a, b float32) (x, y, z float32) {
	fy := (l + 16) / 116
	fx := fy + a/500
	fz := fy - b/200
	x = LABUncompress(fx) * WhiteD65X
	y = LABUncompress(fy) * WhiteD65Y
	z = LABUncompress(fz) * WhiteD65Z
	return
}

// SRGBToLAB converts gamma-corrected sRGB values in the 0-1 range
// to L*a*b* coordinates under the D65 illuminant.
func SRGBToLAB(r, g, b float32) (l, a, bb float32) {
	x, y, z := SRGBToXYZ(r, g, b)
	l, a, bb = XYZToLAB(x, y, z)
	return
}

// LABChroma returns the chromatic intensity sqrt(a*^2 + b*^2) of
// L*a*b* opponent coordinates. Near-zero values indicate an
// achromatic (gray) color regardless of lightness.
func LABChroma(a, b float32) float32 {
	return math32.Hypot(a, b)
}

// LToY converts an L* lightness value in the 0-100 range to an XYZ
// Y luminance value normalized such that Y = 1 is the reference white.
func LToY(l float32) float32 {
	return LABUncompress((l + 16) / 116)
}

// YToL converts a normalized XYZ Y luminance value to L* lightness
// in the 0-100 range.
func YToL(y float32) float32 {
	return 116*LABCompress(y) - 16
}
