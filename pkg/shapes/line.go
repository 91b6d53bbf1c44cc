package shapes

import "fmt"

// Line is a directed segment from Pt0 to Pt1.
type Line struct {
	Pt0, Pt1 Point
}

// NewLine creates a Line from pt0 to pt1.
func NewLine(pt0, pt1 Point) Line {
	return Line{Pt0: pt0, Pt1: pt1}
}

// Length returns the Euclidean length of the segment.
func (l Line) Length() float64 {
	return l.Vector().Norm()
}

// Vector returns Pt1 - Pt0.
func (l Line) Vector() Point {
	return l.Pt1.Sub(l.Pt0)
}

// UnitVector returns the direction of the segment with unit length.
// It fails with ErrDivisionByZero when the segment has zero length.
func (l Line) UnitVector() (Point, error) {
	length := l.Length()
	if length == 0 {
		return Point{}, fmt.Errorf("unit vector of %v: %w", l, ErrDivisionByZero)
	}
	return l.Vector().Scale(1 / length), nil
}

// Midpoint returns the point halfway along the segment.
func (l Line) Midpoint() Point {
	return l.Pt0.Add(l.Pt1).Scale(0.5)
}

// Rotate rotates both endpoints by theta radians about the origin.
func (l Line) Rotate(theta float64) Line {
	return Line{Pt0: l.Pt0.Rotate(theta), Pt1: l.Pt1.Rotate(theta)}
}

// RotateAbout rotates both endpoints by theta radians about the pivot.
func (l Line) RotateAbout(theta float64, about Point) Line {
	return Line{Pt0: l.Pt0.RotateAbout(theta, about), Pt1: l.Pt1.RotateAbout(theta, about)}
}

// Points returns the endpoints as a two-point polyline.
func (l Line) Points() []Point {
	return []Point{l.Pt0, l.Pt1}
}

func (l Line) String() string {
	return fmt.Sprintf("Line(%v, %v)", l.Pt0, l.Pt1)
}
