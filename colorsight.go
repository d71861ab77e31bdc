// Copyright (c) 2025, The Colorsight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorsight names the colors in a stream of camera samples.
// It composes three stages per sample: the normalizer compensates for
// ambient lighting and converts to HSL, the classifier maps the result
// to a human-meaningful color name through a tuned hue-sector table,
// and the stabilizer smooths the per-frame names into a steady output
// by majority vote over a short window.
//
// All state lives in [State], scoped to one detection session. The
// pipeline performs no I/O, never blocks, and never fails: every
// numeric path is total. A State must not be shared across concurrent
// callers; independent streams each get their own.
package colorsight

import (
	"github.com/chewxy/math32"

	"github.com/colorsight/colorsight/cie"
	"github.com/colorsight/colorsight/hsl"
	"github.com/colorsight/colorsight/naming"
	"github.com/colorsight/colorsight/normalize"
	"github.com/colorsight/colorsight/stabilize"
)

// DefaultConfidence is the confidence reported with every name unless
// [Options.ComputedConfidence] is set. Keeping it constant preserves
// the long-standing behavior of the detection pipeline.
const DefaultConfidence = 0.8

// labNeutralChroma is the L*a*b* chromatic intensity below which the
// grayscale cross-check overrides hue-based classification. Only the
// high fidelity path applies it.
const labNeutralChroma = 8.0

// Options configures a detection pipeline. The zero value is the high
// fidelity path with the default vocabulary and window.
type Options struct {

	// Legacy selects the older normalization path: the adaptive
	// white balance reference plus perceptual gamma, instead of
	// gray-world compensation with the L*a*b* grayscale cross-check.
	Legacy bool

	// HistorySize is the stabilizer window capacity, clamped to
	// [stabilize.MinCapacity, stabilize.MaxCapacity]; 0 means
	// [stabilize.DefaultCapacity].
	HistorySize int

	// Table overrides the classification table; nil means
	// [naming.DefaultTable].
	Table *naming.Table

	// ComputedConfidence reports a confidence derived from the
	// sample's margin to the nearest decision boundary instead of
	// the constant [DefaultConfidence].
	ComputedConfidence bool
}

// State owns all per-session pipeline state: the normalizer's white
// balance reference and the stabilizer's classification history.
// Create one per logical detection session and Reset it whenever the
// session restarts.
type State struct {
	opts  Options
	table *naming.Table
	norm  *normalize.Normalizer
	hist  *stabilize.History
}

// New returns a State ready to classify a fresh sample stream.
func New(opts Options) *State {
	nopts := normalize.Options{GrayWorld: true}
	if opts.Legacy {
		nopts = normalize.Options{AutoWhiteBalance: true, Gamma: true}
	}
	table := opts.Table
	if table == nil {
		table = naming.DefaultTable
	}
	return &State{
		opts:  opts,
		table: table,
		norm:  normalize.New(nopts),
		hist:  stabilize.NewHistory(opts.HistorySize),
	}
}

// Classify runs one raw RGB sample, channels nominally in the 0-1
// range, through the pipeline and returns the stabilized color name
// with its confidence. Out-of-range channels are clamped at the
// boundary. The call is synchronous, deterministic for a given state,
// and never fails.
func (s *State) Classify(r, g, b float32) (naming.Name, float32) {
	sample := s.norm.Normalize(r, g, b)

	var candidate naming.Name
	if !s.opts.Legacy && s.labNeutral(sample) {
		// The cross-check says achromatic: bucket by lightness even
		// if sensor noise produced a nominal hue.
		candidate = s.table.Classify(hsl.HSL{L: sample.HSL.L, A: 1}, 0)
	} else {
		candidate = s.table.Classify(sample.HSL, sample.Chroma)
	}
	name := s.hist.Stabilize(candidate)

	conf := float32(DefaultConfidence)
	if s.opts.ComputedConfidence {
		conf = s.confidence(sample)
	}
	return name, conf
}

// Reset clears the white balance reference and the classification
// history. Call it on session restart so a new scene starts clean.
func (s *State) Reset() {
	s.norm.Reset()
	s.hist.Reset()
}

// labNeutral reports whether the normalized sample is achromatic in
// L*a*b* opponent space.
func (s *State) labNeutral(sample normalize.Sample) bool {
	_, a, b := cie.SRGBToLAB(sample.R, sample.G, sample.B)
	return cie.LABChroma(a, b) < labNeutralChroma
}

// confidence maps the margin to the nearest decision boundary onto
// [0.5, 1]: a sample sitting on a boundary scores 0.5, one at least
// 0.125 normalized units away scores 1.
func (s *State) confidence(sample normalize.Sample) float32 {
	m := s.table.Margin(sample.HSL, sample.Chroma)
	return 0.5 + math32.Min(m*4, 0.5)
}
