// Copyright (c) 2025, The Colorsight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package normalize converts raw camera RGB samples into a perceptually
// meaningful representation, compensating for ambient lighting cast
// before the hue-based classification stage. It never fails: when the
// preconditions for a correction are not met it degrades gracefully
// toward the unmodified sample.
package normalize

import (
	"github.com/chewxy/math32"

	"github.com/colorsight/colorsight/hsl"
)

const (
	// grayWorldBlend is how far a sample is pulled toward the neutral
	// gray predicted by the gray-world assumption. Full correction
	// would wash out genuinely saturated colors.
	grayWorldBlend = 0.4

	// grayWorldFloor is the minimum average channel intensity for
	// gray-world correction to apply at all.
	grayWorldFloor = 0.05

	// darkFloor is the average intensity below which a sample is too
	// dark to normalize meaningfully and is passed through unchanged.
	darkFloor = 0.01

	// invGamma is the exponent of the legacy perceptual gamma curve.
	invGamma = 1.0 / 2.2
)

// Options selects which corrections a [Normalizer] applies.
// The zero value is a plain RGB to HSL conversion.
type Options struct {

	// GrayWorld enables single-sample gray-world lighting compensation.
	GrayWorld bool

	// AutoWhiteBalance enables the slowly adapting per-channel
	// white balance reference. Legacy path.
	AutoWhiteBalance bool

	// Gamma enables the 1/2.2 perceptual gamma curve. Legacy path.
	Gamma bool
}

// Sample is the normalized form of one raw RGB observation.
type Sample struct {

	// HSL is the hue, saturation, lightness representation of the
	// normalized channels.
	HSL hsl.HSL

	// Chroma is the max minus min channel value of the normalized
	// channels, a proxy for colorfulness that the classifier's
	// neutral rule uses in preference to the (noisier) saturation.
	Chroma float32

	// R, G, B are the normalized channel values in the 0-1 range.
	R, G, B float32
}

// Normalizer owns the mutable white balance reference for one detection
// session. It is not safe for concurrent use; each independent sample
// stream needs its own instance.
type Normalizer struct {
	opts Options
	wb   whiteBalance
}

// New returns a Normalizer with the given options and a neutral
// white balance reference.
func New(opts Options) *Normalizer {
	n := &Normalizer{opts: opts}
	n.wb.init()
	return n
}

// Normalize converts one raw RGB sample, channels nominally in the 0-1
// range, into a [Sample]. Out-of-range channels are clamped first.
func (n *Normalizer) Normalize(r, g, b float32) Sample {
	r, g, b = clamp01(r), clamp01(g), clamp01(b)

	if n.opts.AutoWhiteBalance {
		n.wb.update(r, g, b)
		r, g, b = n.wb.apply(r, g, b)
	}
	if n.opts.GrayWorld {
		r, g, b = grayWorld(r, g, b)
	}
	if n.opts.Gamma {
		r = math32.Pow(r, invGamma)
		g = math32.Pow(g, invGamma)
		b = math32.Pow(b, invGamma)
	}

	max := math32.Max(r, math32.Max(g, b))
	min := math32.Min(r, math32.Min(g, b))
	return Sample{
		HSL:    hsl.FromRGB(r, g, b),
		Chroma: max - min,
		R:      r, G: g, B: b,
	}
}

// Reset restores the white balance reference to neutral. Call it when
// the detection session restarts so a new scene is not corrected with
// the previous scene's lighting estimate.
func (n *Normalizer) Reset() {
	n.wb.init()
}

// WhiteBalance returns the current per-channel correction factors,
// each within [0.7, 1.5].
func (n *Normalizer) WhiteBalance() (r, g, b float32) {
	return n.wb.factors[0], n.wb.factors[1], n.wb.factors[2]
}

// grayWorld pulls a sample partway toward the neutral gray predicted by
// the gray-world assumption. Samples darker than darkFloor pass through
// untouched, and no correction applies until the average intensity
// clears grayWorldFloor.
func grayWorld(r, g, b float32) (float32, float32, float32) {
	avg := (r + g + b) / 3
	if avg < darkFloor || avg <= grayWorldFloor {
		return r, g, b
	}
	r += grayWorldBlend * (avg - r)
	g += grayWorldBlend * (avg - g)
	b += grayWorldBlend * (avg - b)
	return r, g, b
}

func clamp01(v float32) float32 {
	return math32.Min(1, math32.Max(0, v))
}
