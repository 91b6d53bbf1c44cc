// Package shapes provides the 2D geometric primitives used to build
// technical diagrams: points, lines, arcs, rectangles, grids and
// composite beam profiles. Every type is a value; transforms return
// new instances and never modify the receiver.
package shapes

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// Tolerance is the absolute tolerance used for geometric comparisons.
const Tolerance = 1e-9

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Pt creates a new Point.
func Pt(x, y float64) Point {
	return Point{x, y}
}

// Origin returns the point (0, 0).
func Origin() Point {
	return Point{}
}

// Add returns the component-wise sum p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Norm returns the Euclidean length of p treated as a vector.
func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between p and q.
func (p Point) Distance(q Point) float64 {
	return q.Sub(p).Norm()
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// ApproxEqual reports whether p and q differ by at most tol in each coordinate.
func (p Point) ApproxEqual(q Point, tol float64) bool {
	return scalar.EqualWithinAbs(p.X, q.X, tol) && scalar.EqualWithinAbs(p.Y, q.Y, tol)
}

// AsArray returns p as a 1x2 row matrix.
func (p Point) AsArray() *mat.Dense {
	return mat.NewDense(1, 2, []float64{p.X, p.Y})
}

// Rotate rotates p by theta radians about the origin.
func (p Point) Rotate(theta float64) Point {
	return p.apply(RotationMatrix(theta))
}

// RotateAbout rotates p by theta radians about the pivot point.
// Rotating a point about itself leaves it unchanged.
func (p Point) RotateAbout(theta float64, about Point) Point {
	if p == about {
		return p
	}
	return p.Sub(about).Rotate(theta).Add(about)
}

// Deform applies the 2x2 linear map m to p, returning m · p.
func (p Point) Deform(m mat.Matrix) (Point, error) {
	if err := checkLinearMap(m); err != nil {
		return Point{}, err
	}
	return p.apply(m), nil
}

func (p Point) apply(m mat.Matrix) Point {
	return Point{
		m.At(0, 0)*p.X + m.At(0, 1)*p.Y,
		m.At(1, 0)*p.X + m.At(1, 1)*p.Y,
	}
}

func (p Point) String() string {
	return fmt.Sprintf("Point(%g, %g)", p.X, p.Y)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
