// Copyright (c) 2025, The Colorsight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package naming maps HSL color coordinates to a closed, hand-authored
// vocabulary of human-meaningful color names. The hue circle is
// partitioned into contiguous sectors, each carrying an ordered list of
// rules that refine the sector's family name by lightness and
// saturation. Classification is a pure function of its inputs.
package naming

// Name is one entry of the color vocabulary, suitable for direct
// display and for speech synthesis.
type Name string

// The neutral (achromatic) names, bucketed purely by lightness.
const (
	White     Name = "White"
	LightGray Name = "Light Gray"
	Gray      Name = "Gray"
	DarkGray  Name = "Dark Gray"
	Black     Name = "Black"
)

// Flags are the boolean lightness and saturation qualifiers that sector
// rules combine to pick a variant name. Each is a single threshold
// comparison; VeryLight implies Light, VeryDark implies Dark, Pale
// implies Muted, and VeryVivid implies Vivid.
type Flags struct {
	VeryLight bool
	Light     bool
	Dark      bool
	VeryDark  bool
	Pale      bool
	Muted     bool
	Vivid     bool
	VeryVivid bool
}

// flag name strings usable in [Rule.When].
const (
	flagVeryLight = "veryLight"
	flagLight     = "light"
	flagDark      = "dark"
	flagVeryDark  = "veryDark"
	flagPale      = "pale"
	flagMuted     = "muted"
	flagVivid     = "vivid"
	flagVeryVivid = "veryVivid"
)

func (f Flags) get(name string) (bool, bool) {
	switch name {
	case flagVeryLight:
		return f.VeryLight, true
	case flagLight:
		return f.Light, true
	case flagDark:
		return f.Dark, true
	case flagVeryDark:
		return f.VeryDark, true
	case flagPale:
		return f.Pale, true
	case flagMuted:
		return f.Muted, true
	case flagVivid:
		return f.Vivid, true
	case flagVeryVivid:
		return f.VeryVivid, true
	}
	return false, false
}

// Thresholds are the tuned constants that derive [Flags] and the
// neutral and very-dark overrides. They are empirical values, not
// derived from a perceptual model; see [DefaultTable] for the canonical
// set.
type Thresholds struct {

	// Lightness flag cutoffs. VeryLight and Light are strict
	// lower bounds; Dark and VeryDark are strict upper bounds.
	VeryLight float32 `toml:"very_light"`
	Light     float32 `toml:"light"`
	Dark      float32 `toml:"dark"`
	VeryDark  float32 `toml:"very_dark"`

	// Saturation flag cutoffs. Pale and Muted are strict upper
	// bounds; Vivid and VeryVivid are strict lower bounds.
	Pale      float32 `toml:"pale"`
	Muted     float32 `toml:"muted"`
	Vivid     float32 `toml:"vivid"`
	VeryVivid float32 `toml:"very_vivid"`

	// Neutral rule: a sample with chroma below NeutralChroma or
	// saturation below NeutralSat is named by lightness alone,
	// never by its (noisy) hue.
	NeutralChroma float32 `toml:"neutral_chroma"`
	NeutralSat    float32 `toml:"neutral_sat"`

	// Neutral lightness buckets, upper bound first.
	WhiteL     float32 `toml:"white_l"`
	LightGrayL float32 `toml:"light_gray_l"`
	GrayL      float32 `toml:"gray_l"`
	DarkGrayL  float32 `toml:"dark_gray_l"`

	// Very-dark override: lightness below BlackL combined with
	// saturation below BlackS forces Black regardless of hue. Dark
	// saturated hues fall through to their sector's dark variants.
	BlackL float32 `toml:"black_l"`
	BlackS float32 `toml:"black_s"`
}

// fillDefaults replaces every unset (zero) field with its value from
// [DefaultThresholds], so a loaded table may override thresholds
// selectively without silently zeroing the rest.
func (t *Thresholds) fillDefaults() {
	fill := func(v *float32, d float32) {
		if *v == 0 {
			*v = d
		}
	}
	d := DefaultThresholds
	fill(&t.VeryLight, d.VeryLight)
	fill(&t.Light, d.Light)
	fill(&t.Dark, d.Dark)
	fill(&t.VeryDark, d.VeryDark)
	fill(&t.Pale, d.Pale)
	fill(&t.Muted, d.Muted)
	fill(&t.Vivid, d.Vivid)
	fill(&t.VeryVivid, d.VeryVivid)
	fill(&t.NeutralChroma, d.NeutralChroma)
	fill(&t.NeutralSat, d.NeutralSat)
	fill(&t.WhiteL, d.WhiteL)
	fill(&t.LightGrayL, d.LightGrayL)
	fill(&t.GrayL, d.GrayL)
	fill(&t.DarkGrayL, d.DarkGrayL)
	fill(&t.BlackL, d.BlackL)
	fill(&t.BlackS, d.BlackS)
}

// FlagsFor derives the rule qualifiers for a saturation and lightness
// pair, both in the 0-1 range.
func (t Thresholds) FlagsFor(s, l float32) Flags {
	return Flags{
		VeryLight: l > t.VeryLight,
		Light:     l > t.Light,
		Dark:      l < t.Dark,
		VeryDark:  l < t.VeryDark,
		Pale:      s < t.Pale,
		Muted:     s < t.Muted,
		Vivid:     s > t.Vivid,
		VeryVivid: s > t.VeryVivid,
	}
}

// neutral buckets a neutral sample by lightness.
func (t Thresholds) neutral(l float32) Name {
	switch {
	case l >= t.WhiteL:
		return White
	case l >= t.LightGrayL:
		return LightGray
	case l >= t.GrayL:
		return Gray
	case l >= t.DarkGrayL:
		return DarkGray
	}
	return Black
}
