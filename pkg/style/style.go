// Package style holds the typed drawing options passed to render
// surfaces, the built-in presets, and style sheets loaded from TOML.
package style

import (
	"fmt"
	"image/color"
	"maps"
	"strings"
)

// LineStyle is the dash pattern of stroked lines.
type LineStyle int

const (
	Solid LineStyle = iota
	Dashed
	Dotted
)

func (l LineStyle) String() string {
	switch l {
	case Solid:
		return "solid"
	case Dashed:
		return "dashed"
	case Dotted:
		return "dotted"
	default:
		return fmt.Sprintf("LineStyle(%d)", int(l))
	}
}

// ParseLineStyle accepts the names above and the short forms "-", "--", ":".
func ParseLineStyle(s string) (LineStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "solid", "-", "":
		return Solid, nil
	case "dashed", "--":
		return Dashed, nil
	case "dotted", ":":
		return Dotted, nil
	}
	return Solid, fmt.Errorf("unknown line style %q", s)
}

// Style is the set of options a render surface understands. Extra holds
// options this package does not interpret; surfaces may read them or
// ignore them.
type Style struct {
	LineWidth  float64     // stroke width in points
	Color      color.Color // stroke and marker color
	EdgeColor  color.Color // marker outline; nil draws no outline
	Fill       color.Color // fill for closed shapes; nil leaves them open
	LineStyle  LineStyle
	ZOrder     int     // higher draws later
	MarkerSize float64 // marker diameter in points
	Extra      map[string]string
}

// Default returns a 1pt solid black style.
func Default() Style {
	return Style{
		LineWidth:  1,
		Color:      color.Black,
		LineStyle:  Solid,
		MarkerSize: 6,
	}
}

// WithColor returns a copy of s with its stroke color set.
func (s Style) WithColor(c color.Color) Style {
	s.Color = c
	return s
}

// WithFill returns a copy of s with its fill color set.
func (s Style) WithFill(c color.Color) Style {
	s.Fill = c
	return s
}

// WithLineWidth returns a copy of s with its stroke width set.
func (s Style) WithLineWidth(w float64) Style {
	s.LineWidth = w
	return s
}

// WithZOrder returns a copy of s drawn at layer z.
func (s Style) WithZOrder(z int) Style {
	s.ZOrder = z
	return s
}

// Clone returns a copy of s that shares no map with it.
func (s Style) Clone() Style {
	s.Extra = maps.Clone(s.Extra)
	return s
}

// Option returns an uninterpreted option.
func (s Style) Option(key string) (string, bool) {
	v, ok := s.Extra[key]
	return v, ok
}
