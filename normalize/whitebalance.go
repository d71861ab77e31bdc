// Copyright (c) 2025, The Colorsight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package normalize

import "github.com/chewxy/math32"

const (
	// wbAlpha is the exponential moving average smoothing factor for
	// the white balance reference. Small, so the estimate adapts over
	// seconds rather than chasing per-frame noise.
	wbAlpha = 0.05

	// wbWindow is the number of recent raw samples retained for the
	// channel mean estimate.
	wbWindow = 60

	// wbEvict is how many of the oldest samples are dropped once the
	// window is full.
	wbEvict = 10

	// wbFactorMin and wbFactorMax bound the per-channel correction
	// factors so that near-black or near-saturated frames cannot
	// drive the correction to extremes.
	wbFactorMin = 0.7
	wbFactorMax = 1.5

	// wbChannelFloor is the minimum windowed channel mean for a
	// correction target to be computed for that channel.
	wbChannelFloor = 0.001
)

// whiteBalance is the slowly adapting per-channel correction reference.
// It is owned exclusively by a Normalizer and scoped to one session.
type whiteBalance struct {
	factors [3]float32
	window  [][3]float32
}

func (w *whiteBalance) init() {
	w.factors = [3]float32{1, 1, 1}
	w.window = w.window[:0]
}

// update folds one raw sample into the rolling window and moves the
// correction factors a small step toward the gray-world target of the
// windowed channel means.
func (w *whiteBalance) update(r, g, b float32) {
	w.window = append(w.window, [3]float32{r, g, b})
	if len(w.window) >= wbWindow {
		w.window = append(w.window[:0], w.window[wbEvict:]...)
	}

	var sum [3]float32
	for _, s := range w.window {
		sum[0] += s[0]
		sum[1] += s[1]
		sum[2] += s[2]
	}
	n := float32(len(w.window))
	mean := [3]float32{sum[0] / n, sum[1] / n, sum[2] / n}
	gray := (mean[0] + mean[1] + mean[2]) / 3

	for i := range w.factors {
		target := float32(1)
		if mean[i] > wbChannelFloor {
			target = gray / mean[i]
		}
		f := w.factors[i] + wbAlpha*(target-w.factors[i])
		w.factors[i] = math32.Min(wbFactorMax, math32.Max(wbFactorMin, f))
	}
}

// apply multiplies each channel by its correction factor, capping the
// result at 1.
func (w *whiteBalance) apply(r, g, b float32) (float32, float32, float32) {
	r = math32.Min(1, r*w.factors[0])
	g = math32.Min(1, g*w.factors[1])
	b = math32.Min(1, b*w.factors[2])
	return r, g, b
}
