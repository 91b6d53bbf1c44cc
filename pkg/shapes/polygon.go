package shapes

import (
	"math"

	"github.com/ctessum/geom"
	"gonum.org/v1/gonum/floats"
)

// Polygon is an open ring of vertices in traversal order. The closing
// edge from the last vertex back to the first is implied.
type Polygon []Point

// Closed returns the ring with the first vertex repeated at the end, the
// form used to stroke a closed outline.
func (p Polygon) Closed() []Point {
	if len(p) == 0 {
		return nil
	}
	out := make([]Point, len(p)+1)
	copy(out, p)
	out[len(p)] = p[0]
	return out
}

// Area returns the enclosed area. Self-intersecting rings give
// meaningless results.
func (p Polygon) Area() float64 {
	if len(p) < 3 {
		return 0
	}
	return p.geom().Area()
}

// Centroid returns the area centroid of the ring. Degenerate rings return
// the mean of their vertices.
func (p Polygon) Centroid() Point {
	if p.Area() == 0 {
		var sum Point
		for _, v := range p {
			sum = sum.Add(v)
		}
		if len(p) == 0 {
			return sum
		}
		return sum.Scale(1 / float64(len(p)))
	}
	c := p.geom().Centroid()
	return Point{c.X, c.Y}
}

// Bounds returns the lower-left and upper-right corners of the axis-aligned
// bounding box.
func (p Polygon) Bounds() (lo, hi Point) {
	if len(p) == 0 {
		return Point{}, Point{}
	}
	b := p.geom().Bounds()
	return Point{b.Min.X, b.Min.Y}, Point{b.Max.X, b.Max.Y}
}

// Contains reports whether pt lies inside the ring. Points on an edge
// count as inside.
func (p Polygon) Contains(pt Point) bool {
	if len(p) < 3 {
		return false
	}
	return geom.Point{X: pt.X, Y: pt.Y}.Within(p.geom()) != geom.Outside
}

// Rotate rotates every vertex by theta radians about the origin.
func (p Polygon) Rotate(theta float64) Polygon {
	if len(p) == 0 {
		return nil
	}
	return rowsToPoints(rotateRows(pointsToRows(p), theta))
}

// RotateAbout rotates every vertex by theta radians about the pivot.
func (p Polygon) RotateAbout(theta float64, about Point) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = v.RotateAbout(theta, about)
	}
	return out
}

// ApproxEqual reports whether both rings have the same vertices in the
// same order within tol.
func (p Polygon) ApproxEqual(q Polygon, tol float64) bool {
	if len(p) != len(q) {
		return false
	}
	return floats.EqualApprox(p.flat(), q.flat(), tol)
}

// SelfIntersects reports whether any two non-adjacent edges cross or touch.
func (p Polygon) SelfIntersects() bool {
	n := len(p)
	if n < 4 {
		return false
	}
	for i := range n {
		a0, a1 := p[i], p[(i+1)%n]
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // adjacent through the closing edge
			}
			if segmentsIntersect(a0, a1, p[j], p[(j+1)%n]) {
				return true
			}
		}
	}
	return false
}

func (p Polygon) flat() []float64 {
	out := make([]float64, 0, 2*len(p))
	for _, v := range p {
		out = append(out, v.X, v.Y)
	}
	return out
}

func (p Polygon) geom() geom.Polygon {
	ring := make([]geom.Point, len(p))
	for i, v := range p {
		ring[i] = geom.Point{X: v.X, Y: v.Y}
	}
	return geom.Polygon{ring}
}

func cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func onSegment(a, b, p Point) bool {
	return min(a.X, b.X)-Tolerance <= p.X && p.X <= max(a.X, b.X)+Tolerance &&
		min(a.Y, b.Y)-Tolerance <= p.Y && p.Y <= max(a.Y, b.Y)+Tolerance
}

func segmentsIntersect(p1, p2, q1, q2 Point) bool {
	d1 := cross(q1, q2, p1)
	d2 := cross(q1, q2, p2)
	d3 := cross(p1, p2, q1)
	d4 := cross(p1, p2, q2)
	if ((d1 > Tolerance && d2 < -Tolerance) || (d1 < -Tolerance && d2 > Tolerance)) &&
		((d3 > Tolerance && d4 < -Tolerance) || (d3 < -Tolerance && d4 > Tolerance)) {
		return true
	}
	switch {
	case math.Abs(d1) <= Tolerance && onSegment(q1, q2, p1):
		return true
	case math.Abs(d2) <= Tolerance && onSegment(q1, q2, p2):
		return true
	case math.Abs(d3) <= Tolerance && onSegment(p1, p2, q1):
		return true
	case math.Abs(d4) <= Tolerance && onSegment(p1, p2, q2):
		return true
	}
	return false
}

