package style

import (
	"image/color"
	"maps"
	"slices"
)

var (
	white = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}

	// ElementGray is the default color of structural elements.
	ElementGray = color.RGBA{0xB6, 0xB6, 0xB6, 0xFF}
)

// presets are fixed at init and only ever copied out.
var presets = map[string]Style{
	"default": Default(),
	"guide": {
		LineWidth:  1,
		Color:      color.Black,
		LineStyle:  Dashed,
		MarkerSize: 6,
	},
	"poi": {
		LineWidth:  2,
		Color:      white,
		EdgeColor:  color.Black,
		ZOrder:     10,
		MarkerSize: 8,
	},
	"element": {
		LineWidth:  10,
		Color:      ElementGray,
		ZOrder:     -1,
		MarkerSize: 6,
	},
	"support": {
		LineWidth:  3,
		Color:      color.Black,
		ZOrder:     -1,
		MarkerSize: 6,
	},
	"node": {
		LineWidth:  3,
		Color:      white,
		EdgeColor:  color.Black,
		MarkerSize: 12,
	},
}

// Preset returns a copy of the named built-in style.
func Preset(name string) (Style, bool) {
	s, ok := presets[name]
	return s.Clone(), ok
}

// Guide returns the dashed construction-line style.
func Guide() Style {
	s, _ := Preset("guide")
	return s
}

// POI returns the point-of-interest marker style.
func POI() Style {
	s, _ := Preset("poi")
	return s
}

// Element returns the style used for structural elements.
func Element() Style {
	s, _ := Preset("element")
	return s
}

// Support returns the style used for support symbols.
func Support() Style {
	s, _ := Preset("support")
	return s
}

// Node returns the style used for node markers.
func Node() Style {
	s, _ := Preset("node")
	return s
}

// PresetNames lists the built-in style names in sorted order.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(presets))
}
