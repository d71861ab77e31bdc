// Copyright (c) 2025, The Colorsight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stabilize suppresses frame to frame classification flicker.
// Per-frame sampling of a live camera feed is noisy: hand shake,
// auto-exposure transients, and specular highlights make the raw
// classification jitter between adjacent names. A short majority vote
// over the most recent candidates keeps the displayed name steady.
package stabilize

import "github.com/colorsight/colorsight/naming"

const (
	// MinCapacity and MaxCapacity bound the history window. A window
	// shorter than 3 cannot outvote a flicker frame; one longer than
	// 5 makes the displayed name lag a real scene change.
	MinCapacity = 3
	MaxCapacity = 5

	// DefaultCapacity is the history window used when none is given.
	DefaultCapacity = 4

	// majorityCount is the minimum number of occurrences for a name
	// to win the vote.
	majorityCount = 2

	// warmupLen is the minimum history length before voting applies.
	warmupLen = 2
)

// History is the bounded record of recent candidate names for one
// detection stream. It is owned by a single stream and must be Reset
// when the stream restarts so a new scene does not inherit stale
// classifications. Not safe for concurrent use.
type History struct {
	names []naming.Name
	cap   int
}

// NewHistory returns a History with the given window capacity, clamped
// to [MinCapacity, MaxCapacity]. A capacity of 0 selects
// [DefaultCapacity].
func NewHistory(capacity int) *History {
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	if capacity < MinCapacity {
		capacity = MinCapacity
	}
	if capacity > MaxCapacity {
		capacity = MaxCapacity
	}
	return &History{names: make([]naming.Name, 0, capacity), cap: capacity}
}

// Stabilize appends the candidate to the history, evicting the oldest
// entry once the window is full, and returns the name to display: the
// majority name of the window when one exists, otherwise the raw
// candidate (no stabilization during warm-up or when the window is
// split with no majority).
func (h *History) Stabilize(candidate naming.Name) naming.Name {
	if len(h.names) == h.cap {
		copy(h.names, h.names[1:])
		h.names = h.names[:h.cap-1]
	}
	h.names = append(h.names, candidate)

	if len(h.names) < warmupLen {
		return candidate
	}
	counts := make(map[naming.Name]int, len(h.names))
	for _, n := range h.names {
		counts[n]++
	}
	// Ties go to the raw candidate, then to window order, keeping the
	// vote deterministic.
	best, bestCount := candidate, counts[candidate]
	for _, n := range h.names {
		if counts[n] > bestCount {
			best, bestCount = n, counts[n]
		}
	}
	if bestCount >= majorityCount {
		return best
	}
	return candidate
}

// Len returns the number of names currently held.
func (h *History) Len() int {
	return len(h.names)
}

// Reset clears the history.
func (h *History) Reset() {
	h.names = h.names[:0]
}
