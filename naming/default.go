// Copyright (c) 2025, The Colorsight Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package naming

// DefaultThresholds is the canonical tuned threshold set. The values
// are empirical: they were chosen against real camera samples, not
// derived from a perceptual model, and the classifier's behavior is
// defined by them verbatim.
var DefaultThresholds = Thresholds{
	VeryLight: 0.75,
	Light:     0.60,
	Dark:      0.35,
	VeryDark:  0.20,
	Pale:      0.25,
	Muted:     0.45,
	Vivid:     0.70,
	VeryVivid: 0.85,

	NeutralChroma: 0.08,
	NeutralSat:    0.10,

	WhiteL:     0.85,
	LightGrayL: 0.65,
	GrayL:      0.35,
	DarkGrayL:  0.15,

	BlackL: 0.12,
	BlackS: 0.20,
}

// DefaultTable is the canonical classification table: fifteen
// contiguous hue sectors, listed in ascending order of lower bound with
// the red sector wrapping through 0. Within a sector, rule order is
// most specific first; the sector name is the fallback.
var DefaultTable = &Table{
	Thresholds: DefaultThresholds,
	Sectors: []Sector{
		{Name: "Vermilion", Lo: 11, Hi: 25, Rules: []Rule{
			{When: []string{flagVeryDark}, Name: "Mahogany"},
			{When: []string{flagDark, flagMuted}, Name: "Chestnut"},
			{When: []string{flagDark}, Name: "Rust"},
			{When: []string{flagVeryLight}, Name: "Melon"},
			{When: []string{flagLight}, Name: "Coral"},
			{When: []string{flagPale}, Name: "Clay"},
			{When: []string{flagMuted}, Name: "Terra Cotta"},
			{When: []string{flagVeryVivid}, Name: "Tomato"},
		}},
		{Name: "Orange", Lo: 25, Hi: 40, Rules: []Rule{
			{When: []string{flagVeryDark}, Name: "Chocolate"},
			{When: []string{flagDark, flagMuted}, Name: "Sienna"},
			{When: []string{flagDark}, Name: "Burnt Orange"},
			{When: []string{flagVeryLight}, Name: "Peach"},
			{When: []string{flagLight, flagMuted}, Name: "Apricot"},
			{When: []string{flagLight}, Name: "Light Orange"},
			{When: []string{flagPale}, Name: "Tan"},
			{When: []string{flagMuted}, Name: "Caramel"},
			{When: []string{flagVeryVivid}, Name: "Bright Orange"},
		}},
		{Name: "Amber", Lo: 40, Hi: 50, Rules: []Rule{
			{When: []string{flagVeryDark}, Name: "Coffee"},
			{When: []string{flagDark, flagMuted}, Name: "Bronze"},
			{When: []string{flagDark}, Name: "Brown"},
			{When: []string{flagVeryLight}, Name: "Champagne"},
			{When: []string{flagLight, flagPale}, Name: "Wheat"},
			{When: []string{flagLight}, Name: "Honey"},
			{When: []string{flagPale}, Name: "Sand"},
			{When: []string{flagMuted}, Name: "Ochre"},
			{When: []string{flagVeryVivid}, Name: "Marigold"},
		}},
		{Name: "Yellow", Lo: 50, Hi: 65, Rules: []Rule{
			{When: []string{flagVeryDark}, Name: "Umber"},
			{When: []string{flagDark, flagMuted}, Name: "Dark Khaki"},
			{When: []string{flagDark}, Name: "Mustard"},
			{When: []string{flagVeryLight, flagPale}, Name: "Cream"},
			{When: []string{flagVeryLight}, Name: "Light Yellow"},
			{When: []string{flagLight, flagMuted}, Name: "Flax"},
			{When: []string{flagLight}, Name: "Banana"},
			{When: []string{flagPale}, Name: "Khaki"},
			{When: []string{flagMuted}, Name: "Straw"},
			{When: []string{flagVeryVivid}, Name: "Lemon"},
		}},
		{Name: "Chartreuse", Lo: 65, Hi: 85, Rules: []Rule{
			{When: []string{flagVeryDark}, Name: "Dark Olive"},
			{When: []string{flagDark, flagMuted}, Name: "Olive Drab"},
			{When: []string{flagDark}, Name: "Olive"},
			{When: []string{flagVeryLight}, Name: "Pale Lime"},
			{When: []string{flagLight, flagMuted}, Name: "Pistachio"},
			{When: []string{flagLight}, Name: "Spring Bud"},
			{When: []string{flagPale}, Name: "Sage"},
			{When: []string{flagMuted}, Name: "Moss Green"},
			{When: []string{flagVeryVivid}, Name: "Lime"},
		}},
		{Name: "Green", Lo: 85, Hi: 150, Rules: []Rule{
			{When: []string{flagVeryDark}, Name: "Hunter Green"},
			{When: []string{flagDark, flagMuted}, Name: "Pine Green"},
			{When: []string{flagDark}, Name: "Forest Green"},
			{When: []string{flagVeryLight, flagPale}, Name: "Pale Mint"},
			{When: []string{flagVeryLight}, Name: "Mint"},
			{When: []string{flagLight, flagMuted}, Name: "Celadon"},
			{When: []string{flagLight}, Name: "Light Green"},
			{When: []string{flagPale}, Name: "Gray Green"},
			{When: []string{flagMuted}, Name: "Fern Green"},
			{When: []string{flagVeryVivid}, Name: "Emerald"},
			{When: []string{flagVivid}, Name: "Kelly Green"},
		}},
		{Name: "Sea Green", Lo: 150, Hi: 170, Rules: []Rule{
			{When: []string{flagVeryDark}, Name: "Deep Sea Green"},
			{When: []string{flagDark}, Name: "Viridian"},
			{When: []string{flagVeryLight}, Name: "Seafoam"},
			{When: []string{flagLight}, Name: "Aquamarine"},
			{When: []string{flagPale}, Name: "Opal"},
			{When: []string{flagMuted}, Name: "Jade"},
			{When: []string{flagVeryVivid}, Name: "Spring Green"},
		}},
		{Name: "Cyan", Lo: 170, Hi: 185, Rules: []Rule{
			{When: []string{flagVeryDark}, Name: "Deep Teal"},
			{When: []string{flagDark}, Name: "Teal"},
			{When: []string{flagVeryLight}, Name: "Pale Turquoise"},
			{When: []string{flagLight}, Name: "Aqua"},
			{When: []string{flagPale}, Name: "Cadet Blue"},
			{When: []string{flagMuted}, Name: "Dusty Teal"},
			{When: []string{flagVeryVivid}, Name: "Turquoise"},
		}},
		{Name: "Sky Blue", Lo: 185, Hi: 210, Rules: []Rule{
			{When: []string{flagVeryDark}, Name: "Deep Cerulean"},
			{When: []string{flagDark}, Name: "Steel Blue"},
			{When: []string{flagVeryLight}, Name: "Baby Blue"},
			{When: []string{flagLight, flagPale}, Name: "Powder Blue"},
			{When: []string{flagLight}, Name: "Light Sky Blue"},
			{When: []string{flagPale}, Name: "Blue Gray"},
			{When: []string{flagMuted}, Name: "Dusty Blue"},
			{When: []string{flagVeryVivid}, Name: "Cerulean"},
			{When: []string{flagVivid}, Name: "Azure"},
		}},
		{Name: "Blue", Lo: 210, Hi: 245, Rules: []Rule{
			{When: []string{flagVeryDark}, Name: "Midnight Blue"},
			{When: []string{flagDark, flagVivid}, Name: "Navy"},
			{When: []string{flagDark}, Name: "Dark Blue"},
			{When: []string{flagVeryLight}, Name: "Light Blue"},
			{When: []string{flagLight}, Name: "Cornflower Blue"},
			{When: []string{flagPale}, Name: "Slate"},
			{When: []string{flagMuted}, Name: "Denim"},
			{When: []string{flagVeryVivid}, Name: "Cobalt"},
			{When: []string{flagVivid}, Name: "Royal Blue"},
		}},
		{Name: "Indigo", Lo: 245, Hi: 260, Rules: []Rule{
			{When: []string{flagVeryDark}, Name: "Dark Indigo"},
			{When: []string{flagDark}, Name: "Dusk Blue"},
			{When: []string{flagVeryLight}, Name: "Periwinkle"},
			{When: []string{flagLight}, Name: "Lavender Blue"},
			{When: []string{flagPale}, Name: "Heather"},
			{When: []string{flagMuted}, Name: "Twilight Blue"},
			{When: []string{flagVeryVivid}, Name: "Electric Indigo"},
			{When: []string{flagVivid}, Name: "Blue Violet"},
		}},
		{Name: "Purple", Lo: 260, Hi: 290, Rules: []Rule{
			{When: []string{flagVeryDark}, Name: "Dark Purple"},
			{When: []string{flagDark, flagMuted}, Name: "Eggplant"},
			{When: []string{flagDark}, Name: "Grape"},
			{When: []string{flagVeryLight}, Name: "Pale Lavender"},
			{When: []string{flagLight, flagMuted}, Name: "Wisteria"},
			{When: []string{flagLight}, Name: "Lavender"},
			{When: []string{flagPale}, Name: "Dusty Lilac"},
			{When: []string{flagMuted}, Name: "Dusky Purple"},
			{When: []string{flagVeryVivid}, Name: "Electric Purple"},
			{When: []string{flagVivid}, Name: "Violet"},
		}},
		{Name: "Magenta", Lo: 290, Hi: 320, Rules: []Rule{
			{When: []string{flagVeryDark}, Name: "Dark Magenta"},
			{When: []string{flagDark, flagMuted}, Name: "Plum"},
			{When: []string{flagDark}, Name: "Mulberry"},
			{When: []string{flagVeryLight}, Name: "Pink Lavender"},
			{When: []string{flagLight, flagMuted}, Name: "Mauve"},
			{When: []string{flagLight}, Name: "Orchid"},
			{When: []string{flagPale}, Name: "Thistle"},
			{When: []string{flagMuted}, Name: "Puce"},
			{When: []string{flagVeryVivid}, Name: "Fuchsia"},
		}},
		{Name: "Pink", Lo: 320, Hi: 345, Rules: []Rule{
			{When: []string{flagVeryDark}, Name: "Wine"},
			{When: []string{flagDark, flagMuted}, Name: "Berry"},
			{When: []string{flagDark}, Name: "Raspberry"},
			{When: []string{flagVeryLight, flagPale}, Name: "Shell Pink"},
			{When: []string{flagVeryLight}, Name: "Light Pink"},
			{When: []string{flagLight, flagMuted}, Name: "Blush"},
			{When: []string{flagLight}, Name: "Rose"},
			{When: []string{flagPale}, Name: "Dusty Pink"},
			{When: []string{flagMuted}, Name: "Old Rose"},
			{When: []string{flagVeryVivid}, Name: "Hot Pink"},
			{When: []string{flagVivid}, Name: "Cerise"},
		}},
		{Name: "Red", Lo: 345, Hi: 11, Rules: []Rule{
			{When: []string{flagVeryDark}, Name: "Maroon"},
			{When: []string{flagDark, flagMuted}, Name: "Brick Red"},
			{When: []string{flagDark}, Name: "Dark Red"},
			{When: []string{flagVeryLight, flagPale}, Name: "Pale Rose"},
			{When: []string{flagVeryLight}, Name: "Light Coral"},
			{When: []string{flagLight, flagMuted}, Name: "Dusty Rose"},
			{When: []string{flagLight}, Name: "Salmon"},
			{When: []string{flagPale}, Name: "Rosy Brown"},
			{When: []string{flagMuted}, Name: "Indian Red"},
		}},
	},
}
