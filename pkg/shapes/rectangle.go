package shapes

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Rectangle is a quadrilateral with corners in fixed winding order:
// Pt0 lower-left, Pt1 lower-right, Pt2 upper-right, Pt3 upper-left
// (before any rotation).
type Rectangle struct {
	Pt0, Pt1, Pt2, Pt3 Point
}

// NewRectangle builds an axis-aligned rectangle from either pair of
// opposite corners. Pt0 is always the lower-left corner.
func NewRectangle(pt0, pt2 Point) (Rectangle, error) {
	if !pt0.IsFinite() || !pt2.IsFinite() {
		return Rectangle{}, fmt.Errorf("rectangle corners must be finite: %w", ErrInvalidInput)
	}
	if pt0.X == pt2.X || pt0.Y == pt2.Y {
		return Rectangle{}, fmt.Errorf("rectangle from %v to %v has no area: %w", pt0, pt2, ErrInvalidGeometry)
	}
	lo := Point{min(pt0.X, pt2.X), min(pt0.Y, pt2.Y)}
	hi := Point{max(pt0.X, pt2.X), max(pt0.Y, pt2.Y)}
	return Rectangle{
		Pt0: lo,
		Pt1: Point{hi.X, lo.Y},
		Pt2: hi,
		Pt3: Point{lo.X, hi.Y},
	}, nil
}

// RectangleFromCenter builds an axis-aligned rectangle of the given size
// centered on center.
func RectangleFromCenter(center Point, width, height float64) (Rectangle, error) {
	if !isFinite(width) || !isFinite(height) || width <= 0 || height <= 0 {
		return Rectangle{}, fmt.Errorf("rectangle size %gx%g must be positive: %w", width, height, ErrInvalidGeometry)
	}
	half := Point{width / 2, height / 2}
	return NewRectangle(center.Sub(half), center.Add(half))
}

// RectangleFromArray builds a rectangle from a 4x2 matrix whose rows are
// the corners in winding order.
func RectangleFromArray(m mat.Matrix) (Rectangle, error) {
	if m == nil {
		return Rectangle{}, fmt.Errorf("rectangle array is nil: %w", ErrInvalidInput)
	}
	if r, c := m.Dims(); r != 4 || c != 2 {
		return Rectangle{}, fmt.Errorf("rectangle array must be 4x2, got %dx%d: %w", r, c, ErrInvalidInput)
	}
	rect := rectangleFromRows(m)
	for _, p := range rect.Corners() {
		if !p.IsFinite() {
			return Rectangle{}, fmt.Errorf("rectangle corner %v is not finite: %w", p, ErrInvalidInput)
		}
	}
	if poly := rect.Polygon(); poly.SelfIntersects() || poly.Area() == 0 {
		return Rectangle{}, fmt.Errorf("rectangle corners do not form a simple quadrilateral: %w", ErrInvalidGeometry)
	}
	return rect, nil
}

func rectangleFromRows(m mat.Matrix) Rectangle {
	pts := rowsToPoints(m)
	return Rectangle{Pt0: pts[0], Pt1: pts[1], Pt2: pts[2], Pt3: pts[3]}
}

// AsArray returns the corners as a 4x2 matrix, one corner per row.
func (r Rectangle) AsArray() *mat.Dense {
	return pointsToRows(r.Corners()[:])
}

// Corners returns the four corners in winding order.
func (r Rectangle) Corners() [4]Point {
	return [4]Point{r.Pt0, r.Pt1, r.Pt2, r.Pt3}
}

// Polygon returns the corners as an open ring.
func (r Rectangle) Polygon() Polygon {
	c := r.Corners()
	return Polygon(c[:])
}

// Width returns the length of the Pt0-Pt1 side.
func (r Rectangle) Width() float64 {
	return r.Pt0.Distance(r.Pt1)
}

// Height returns the length of the Pt0-Pt3 side.
func (r Rectangle) Height() float64 {
	return r.Pt0.Distance(r.Pt3)
}

// Center returns the midpoint of the Pt0-Pt2 diagonal.
func (r Rectangle) Center() Point {
	return r.Pt0.Add(r.Pt2).Scale(0.5)
}

// Area returns the enclosed area.
func (r Rectangle) Area() float64 {
	return r.Polygon().Area()
}

// Rotate rotates all four corners about the origin as one batch. To
// rotate about the rectangle's own center use RotateAbout.
func (r Rectangle) Rotate(theta float64) Rectangle {
	return rectangleFromRows(rotateRows(r.AsArray(), theta))
}

// RotateAbout rotates all four corners by theta radians about the pivot.
func (r Rectangle) RotateAbout(theta float64, about Point) Rectangle {
	return Rectangle{
		Pt0: r.Pt0.RotateAbout(theta, about),
		Pt1: r.Pt1.RotateAbout(theta, about),
		Pt2: r.Pt2.RotateAbout(theta, about),
		Pt3: r.Pt3.RotateAbout(theta, about),
	}
}

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle(%v, %v, %v, %v)", r.Pt0, r.Pt1, r.Pt2, r.Pt3)
}

// Square is a Rectangle with equal sides.
type Square struct {
	Rectangle
}

// NewSquare builds an axis-aligned square with lower-left corner pt0.
func NewSquare(pt0 Point, side float64) (Square, error) {
	if !isFinite(side) || side <= 0 {
		return Square{}, fmt.Errorf("square side %g must be positive: %w", side, ErrInvalidGeometry)
	}
	r, err := NewRectangle(pt0, pt0.Add(Point{side, side}))
	if err != nil {
		return Square{}, err
	}
	return Square{r}, nil
}

// SquareFromCenter builds an axis-aligned square centered on center.
func SquareFromCenter(center Point, side float64) (Square, error) {
	r, err := RectangleFromCenter(center, side, side)
	if err != nil {
		return Square{}, err
	}
	return Square{r}, nil
}

// Side returns the side length.
func (s Square) Side() float64 {
	return s.Width()
}

// Rotate rotates the square about the origin.
func (s Square) Rotate(theta float64) Square {
	return Square{s.Rectangle.Rotate(theta)}
}

// RotateAbout rotates the square about the pivot.
func (s Square) RotateAbout(theta float64, about Point) Square {
	return Square{s.Rectangle.RotateAbout(theta, about)}
}
