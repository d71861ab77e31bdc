// Copyright (c) 2025, The Colorsight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package naming

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"

	"github.com/colorsight/colorsight/hsl"
)

// Rule maps a conjunction of flag conditions to a variant name within a
// sector. Conditions are flag names, optionally prefixed with "!" for
// negation; every condition must hold for the rule to match.
type Rule struct {
	When []string `toml:"when"`
	Name Name     `toml:"name"`
}

func (r Rule) matches(f Flags) bool {
	for _, cond := range r.When {
		want := true
		name := cond
		if strings.HasPrefix(cond, "!") {
			want = false
			name = cond[1:]
		}
		v, ok := f.get(name)
		if !ok || v != want {
			return false
		}
	}
	return true
}

// Sector is one contiguous angular range of the hue circle, carrying
// the family's fallback name and its ordered variant rules. The range
// is lo <= h < hi in degrees; a sector with Lo > Hi wraps through 0.
type Sector struct {
	Name  Name    `toml:"name"`
	Lo    float32 `toml:"lo"`
	Hi    float32 `toml:"hi"`
	Rules []Rule  `toml:"rules"`
}

// Contains reports whether the hue angle, in [0, 360), falls in the
// sector.
func (s Sector) Contains(h float32) bool {
	if s.Lo > s.Hi {
		return h >= s.Lo || h < s.Hi
	}
	return h >= s.Lo && h < s.Hi
}

// classify picks the first matching rule's name, or the sector's own
// name when no rule matches. Rule order matters: more specific
// conditions come first.
func (s Sector) classify(f Flags) Name {
	for _, r := range s.Rules {
		if r.matches(f) {
			return r.Name
		}
	}
	return s.Name
}

// Table is a complete classification table: the tuned thresholds plus
// the hue sectors in ascending order of lower bound.
type Table struct {
	Thresholds Thresholds `toml:"thresholds"`
	Sectors    []Sector   `toml:"sectors"`
}

// Classify maps an HSL triple to a color name. It is deterministic and
// has no state: identical inputs always produce the identical name.
// The chroma argument is the max minus min value of the originating RGB
// channels; the neutral rule prefers it over saturation where
// available. Pass a negative chroma to derive it from saturation alone.
func (t *Table) Classify(c hsl.HSL, chroma float32) Name {
	th := t.Thresholds
	if chroma < 0 {
		// delta = s * (1 - |2l - 1|), inverse of the saturation formula.
		chroma = c.S * (1 - math32.Abs(2*c.L-1))
	}
	if chroma < th.NeutralChroma || c.S < th.NeutralSat {
		return th.neutral(c.L)
	}
	if c.L < th.BlackL && c.S < th.BlackS {
		return Black
	}
	h := hsl.NormHue(c.H)
	for _, sec := range t.Sectors {
		if sec.Contains(h) {
			return sec.classify(th.FlagsFor(c.S, c.L))
		}
	}
	// Unreachable with a validated table; the hue circle is fully
	// covered.
	return th.neutral(c.L)
}

// Margin returns the distance from the sample to the nearest decision
// boundary of the table, in normalized units (hue distances are scaled
// by 1/180). A small margin means a small perturbation could change
// the resulting name. This supports the optional computed confidence.
func (t *Table) Margin(c hsl.HSL, chroma float32) float32 {
	th := t.Thresholds
	if chroma < 0 {
		chroma = c.S * (1 - math32.Abs(2*c.L-1))
	}
	m := math32.Abs(c.S - th.NeutralSat)
	m = math32.Min(m, math32.Abs(chroma-th.NeutralChroma))
	for _, b := range []float32{th.VeryLight, th.Light, th.Dark, th.VeryDark, th.WhiteL, th.LightGrayL, th.GrayL, th.DarkGrayL, th.BlackL} {
		m = math32.Min(m, math32.Abs(c.L-b))
	}
	for _, b := range []float32{th.Pale, th.Muted, th.Vivid, th.VeryVivid, th.BlackS} {
		m = math32.Min(m, math32.Abs(c.S-b))
	}
	h := hsl.NormHue(c.H)
	for _, sec := range t.Sectors {
		m = math32.Min(m, angDist(h, sec.Lo)/180)
	}
	return m
}

func angDist(a, b float32) float32 {
	d := math32.Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

// Validate checks that the table is well formed: sectors are given in
// ascending order of lower bound, are contiguous, cover the full hue
// circle with exactly one wrap-around, and every rule refers only to
// known flags.
func (t *Table) Validate() error {
	if len(t.Sectors) == 0 {
		return fmt.Errorf("naming: table has no sectors")
	}
	wraps := 0
	for i, sec := range t.Sectors {
		if sec.Name == "" {
			return fmt.Errorf("naming: sector %d has no name", i)
		}
		if sec.Lo > sec.Hi {
			wraps++
		}
		next := t.Sectors[(i+1)%len(t.Sectors)]
		if sec.Hi != next.Lo {
			return fmt.Errorf("naming: gap between sector %q (hi %g) and %q (lo %g)", sec.Name, sec.Hi, next.Name, next.Lo)
		}
		for _, r := range sec.Rules {
			if r.Name == "" {
				return fmt.Errorf("naming: sector %q has a rule with no name", sec.Name)
			}
			for _, cond := range r.When {
				name := strings.TrimPrefix(cond, "!")
				if _, ok := (Flags{}).get(name); !ok {
					return fmt.Errorf("naming: sector %q rule %q: unknown flag %q", sec.Name, r.Name, cond)
				}
			}
		}
	}
	if wraps != 1 {
		return fmt.Errorf("naming: table must have exactly one wrap-around sector, has %d", wraps)
	}
	return nil
}

// Names returns every name the table can produce, including the neutral
// names, in table order without duplicates.
func (t *Table) Names() []Name {
	seen := map[Name]bool{}
	var out []Name
	add := func(n Name) {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	for _, n := range []Name{White, LightGray, Gray, DarkGray, Black} {
		add(n)
	}
	for _, sec := range t.Sectors {
		for _, r := range sec.Rules {
			add(r.Name)
		}
		add(sec.Name)
	}
	return out
}

// Classify maps an HSL triple to a color name using [DefaultTable].
func Classify(c hsl.HSL, chroma float32) Name {
	return DefaultTable.Classify(c, chroma)
}
