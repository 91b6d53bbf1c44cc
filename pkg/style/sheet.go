package style

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Sheet is a set of named styles loaded from a TOML file. It is read-only
// once loaded. The zero Sheet is valid and resolves only presets.
type Sheet struct {
	styles map[string]Style
}

type sheetFile struct {
	Styles map[string]map[string]any `toml:"styles"`
}

// LoadFile reads a style sheet from path.
func LoadFile(path string) (Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return Sheet{}, fmt.Errorf("failed to open style sheet: %w", err)
	}
	defer f.Close()
	sh, err := Parse(f)
	if err != nil {
		return Sheet{}, fmt.Errorf("%s: %w", path, err)
	}
	return sh, nil
}

// Parse reads a style sheet in TOML form:
//
//	[styles.beam]
//	line_width = 2
//	color = "#172869"
//	fill = "#DBE5F1"
//
// A table may name a preset with `base = "guide"` to start from it.
func Parse(r io.Reader) (Sheet, error) {
	var raw sheetFile
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return Sheet{}, fmt.Errorf("failed to parse style sheet: %w", err)
	}
	sh := Sheet{styles: make(map[string]Style, len(raw.Styles))}
	for name, table := range raw.Styles {
		st, err := decodeStyle(table)
		if err != nil {
			return Sheet{}, fmt.Errorf("style %q: %w", name, err)
		}
		sh.styles[name] = st
	}
	return sh, nil
}

// Get returns the named style from the sheet, then from the presets.
func (sh Sheet) Get(name string) (Style, bool) {
	if st, ok := sh.styles[name]; ok {
		return st.Clone(), true
	}
	return Preset(name)
}

// Lookup is Get with a fallback used when name is unknown.
func (sh Sheet) Lookup(name string, fallback Style) Style {
	if st, ok := sh.Get(name); ok {
		return st
	}
	return fallback
}

// Len returns the number of styles defined by the sheet itself.
func (sh Sheet) Len() int {
	return len(sh.styles)
}

func decodeStyle(table map[string]any) (Style, error) {
	st := Default()
	if v, ok := table["base"]; ok {
		name, ok := v.(string)
		if !ok {
			return st, fmt.Errorf("base: expected string, got %T", v)
		}
		base, ok := Preset(name)
		if !ok {
			return st, fmt.Errorf("base: unknown preset %q", name)
		}
		st = base
	}
	for key, v := range table {
		var err error
		switch key {
		case "base":
		case "line_width":
			st.LineWidth, err = toFloat(v)
		case "marker_size":
			st.MarkerSize, err = toFloat(v)
		case "z_order":
			var z int64
			z, err = toInt(v)
			st.ZOrder = int(z)
		case "color":
			st.Color, err = toColor(v)
		case "edge_color":
			st.EdgeColor, err = toColor(v)
		case "fill":
			st.Fill, err = toColor(v)
		case "line_style":
			s, ok := v.(string)
			if !ok {
				err = fmt.Errorf("expected string, got %T", v)
				break
			}
			st.LineStyle, err = ParseLineStyle(s)
		default:
			if st.Extra == nil {
				st.Extra = make(map[string]string)
			}
			st.Extra[key] = fmt.Sprint(v)
		}
		if err != nil {
			return st, fmt.Errorf("%s: %w", key, err)
		}
	}
	if st.LineWidth < 0 || st.MarkerSize < 0 {
		return st, fmt.Errorf("negative size")
	}
	return st, nil
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("expected number, got %T", v)
}

func toInt(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case float64:
		if n == float64(int64(n)) {
			return int64(n), nil
		}
	}
	return 0, fmt.Errorf("expected integer, got %v", v)
}

func toColor(v any) (color.Color, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("expected color string, got %T", v)
	}
	return ParseColor(s)
}
