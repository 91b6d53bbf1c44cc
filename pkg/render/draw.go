package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/taigrr/mechdraw/pkg/shapes"
	"github.com/taigrr/mechdraw/pkg/structures"
	"github.com/taigrr/mechdraw/pkg/style"
)

// Arrow selects which ends of a line or arc carry an arrowhead.
type Arrow int

const (
	ArrowNone  Arrow = iota
	ArrowStart       // "<-"
	ArrowEnd         // "->"
	ArrowBoth        // "<->"
)

func (a Arrow) String() string {
	switch a {
	case ArrowNone:
		return ""
	case ArrowStart:
		return "<-"
	case ArrowEnd:
		return "->"
	case ArrowBoth:
		return "<->"
	default:
		return fmt.Sprintf("Arrow(%d)", int(a))
	}
}

func (a Arrow) atStart() bool { return a == ArrowStart || a == ArrowBoth }
func (a Arrow) atEnd() bool   { return a == ArrowEnd || a == ArrowBoth }

// ParseArrow parses "", "<-", "->" or "<->".
func ParseArrow(s string) (Arrow, error) {
	switch strings.TrimSpace(s) {
	case "", "none":
		return ArrowNone, nil
	case "<-":
		return ArrowStart, nil
	case "->":
		return ArrowEnd, nil
	case "<->":
		return ArrowBoth, nil
	}
	return ArrowNone, fmt.Errorf("arrow %q: %w", s, shapes.ErrInvalidInput)
}

// ArrowFraction is the arrowhead vector length as a fraction of the line length.
const ArrowFraction = 0.1

// DefaultSupportScale is the side length of pin and roller support triangles.
const DefaultSupportScale = 0.1

// DrawPoint draws p as a marker.
func DrawPoint(s Surface, p shapes.Point, st style.Style) error {
	return s.DrawMarker(p, st)
}

// DrawLine draws l as a polyline and adds the requested arrowheads. Each
// arrowhead is a vector of ArrowFraction × length ending at its endpoint.
func DrawLine(s Surface, l shapes.Line, arrow Arrow, st style.Style) error {
	if err := s.DrawPolyline(l.Points(), st); err != nil {
		return err
	}
	if arrow == ArrowNone {
		return nil
	}
	u, err := l.UnitVector()
	if err != nil {
		return fmt.Errorf("arrow on line: %w", err)
	}
	d := u.Scale(ArrowFraction * l.Length())
	if arrow.atEnd() {
		if err := s.DrawArrow(l.Pt1.Sub(d), d, st); err != nil {
			return err
		}
	}
	if arrow.atStart() {
		if err := s.DrawArrow(l.Pt0.Add(d), d.Scale(-1), st); err != nil {
			return err
		}
	}
	return nil
}

// DrawArc draws the sampled arc. When st.Fill is set the fan polygon
// formed with the center is filled first. Arrowheads follow the tangent
// one sampling step before each endpoint.
func DrawArc(s Surface, a shapes.Arc, arrow Arrow, st style.Style) error {
	if st.Fill != nil {
		if err := s.DrawFilledPolygon(a.FanPolygon(), st.Fill, st.ZOrder); err != nil {
			return err
		}
	}
	if err := s.DrawPolyline(a.Points(), st); err != nil {
		return err
	}
	if arrow.atEnd() {
		origin, delta := a.EndTangent()
		if err := s.DrawArrow(origin, delta, st); err != nil {
			return err
		}
	}
	if arrow.atStart() {
		origin, delta := a.StartTangent()
		if err := s.DrawArrow(origin, delta, st); err != nil {
			return err
		}
	}
	return nil
}

// DrawPolygon draws the closed outline of p and fills it when st.Fill is set.
func DrawPolygon(s Surface, p shapes.Polygon, st style.Style) error {
	if len(p) < 3 {
		return fmt.Errorf("polygon needs 3 vertices, got %d: %w", len(p), shapes.ErrInvalidInput)
	}
	if st.Fill != nil {
		if err := s.DrawFilledPolygon(p, st.Fill, st.ZOrder); err != nil {
			return err
		}
	}
	return s.DrawPolyline(p.Closed(), st)
}

// DrawRectangle draws r as a closed polygon. Squares draw through their
// embedded Rectangle.
func DrawRectangle(s Surface, r shapes.Rectangle, st style.Style) error {
	return DrawPolygon(s, r.Polygon(), st)
}

// DrawIBeam draws the 12-vertex section outline.
func DrawIBeam(s Surface, b shapes.IBeam, st style.Style) error {
	return DrawPolygon(s, b.Vertices(), st)
}

// DrawGrid draws every line the grid enumerates.
func DrawGrid(s Surface, g shapes.Grid, st style.Style) error {
	for _, l := range g.Lines() {
		if err := s.DrawPolyline(l.Points(), st); err != nil {
			return err
		}
	}
	return nil
}

// SupportTriangle returns the closed support symbol beneath a node: an
// isosceles triangle with its apex on the node, a base of width h·scale
// and a height of h·scale, where h = √3/2.
func SupportTriangle(at shapes.Point, scale float64) []shapes.Point {
	h := math.Sqrt(3) / 2
	return []shapes.Point{
		at,
		{X: at.X - h/2*scale, Y: at.Y - h*scale},
		{X: at.X + h/2*scale, Y: at.Y - h*scale},
		at,
	}
}

// DrawNode draws the support symbol for n's fixity under its marker.
// Fixed supports have no symbol.
func DrawNode(s Surface, n *structures.Node, scale float64, marker, support style.Style) error {
	if n == nil {
		return fmt.Errorf("nil node: %w", shapes.ErrInvalidInput)
	}
	switch n.Fixity {
	case structures.Pin, structures.Roller:
		if err := s.DrawPolyline(SupportTriangle(n.Point(), scale), support); err != nil {
			return err
		}
	case structures.Fixed, structures.Free:
	default:
		return fmt.Errorf("%v: %w", n.Fixity, shapes.ErrInvalidInput)
	}
	return s.DrawMarker(n.Point(), marker)
}

// DrawElement draws e as a single segment between its nodes' current positions.
func DrawElement(s Surface, e *structures.Element, st style.Style) error {
	if e == nil || e.Start == nil || e.End == nil {
		return fmt.Errorf("element without nodes: %w", shapes.ErrInvalidInput)
	}
	return s.DrawPolyline(e.Line().Points(), st)
}
