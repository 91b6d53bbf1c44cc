package style

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var namedColors = map[string]color.Color{
	"k":     color.Black,
	"black": color.Black,
	"w":     white,
	"white": white,
}

// ParseColor parses "#rrggbb", "#rgb" or one of a few names. "none" and
// the empty string return a nil color.
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" || name == "none" {
		return nil, nil
	}
	if c, ok := namedColors[name]; ok {
		return c, nil
	}
	if !strings.HasPrefix(name, "#") {
		name = "#" + name
	}
	c, err := colorful.Hex(name)
	if err != nil {
		return nil, fmt.Errorf("parse color %q: %w", s, err)
	}
	return c.Clamped(), nil
}

// Hex formats c as "#rrggbb". A nil color formats as "none".
func Hex(c color.Color) string {
	if c == nil {
		return "none"
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "none"
	}
	return cf.Hex()
}
