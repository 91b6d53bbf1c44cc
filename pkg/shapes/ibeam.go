package shapes

import "fmt"

// IBeam is a wide-flange (I) cross-section.
//
//	B  flange width
//	D  overall depth
//	TF flange thickness
//	TW web thickness
type IBeam struct {
	B, D, TF, TW float64
	Center       Point
}

// NewIBeam creates a validated I-section centered on center.
func NewIBeam(b, d, tf, tw float64, center Point) (IBeam, error) {
	for _, v := range []float64{b, d, tf, tw} {
		if !isFinite(v) || v <= 0 {
			return IBeam{}, fmt.Errorf("ibeam dimensions b=%g d=%g tf=%g tw=%g must be positive: %w",
				b, d, tf, tw, ErrInvalidGeometry)
		}
	}
	if tw >= b {
		return IBeam{}, fmt.Errorf("ibeam web %g must be thinner than flange width %g: %w", tw, b, ErrInvalidGeometry)
	}
	if 2*tf >= d {
		return IBeam{}, fmt.Errorf("ibeam flanges 2x%g leave no web in depth %g: %w", tf, d, ErrInvalidGeometry)
	}
	if !center.IsFinite() {
		return IBeam{}, fmt.Errorf("ibeam center %v is not finite: %w", center, ErrInvalidInput)
	}
	return IBeam{B: b, D: d, TF: tf, TW: tw, Center: center}, nil
}

// Vertices returns the 12 outline vertices counter-clockwise, starting at
// the lower-left corner of the bottom flange.
func (s IBeam) Vertices() Polygon {
	hb, hd, hw := s.B/2, s.D/2, s.TW/2
	local := [12]Point{
		{-hb, -hd},
		{hb, -hd},
		{hb, -hd + s.TF},
		{hw, -hd + s.TF},
		{hw, hd - s.TF},
		{hb, hd - s.TF},
		{hb, hd},
		{-hb, hd},
		{-hb, hd - s.TF},
		{-hw, hd - s.TF},
		{-hw, -hd + s.TF},
		{-hb, -hd + s.TF},
	}
	out := make(Polygon, len(local))
	for i, p := range local {
		out[i] = p.Add(s.Center)
	}
	return out
}

// Outline returns the vertices with the first repeated at the end.
func (s IBeam) Outline() []Point {
	return s.Vertices().Closed()
}

// Area returns the cross-sectional area.
func (s IBeam) Area() float64 {
	return s.Vertices().Area()
}

// Centroid returns the area centroid, which is the center for this
// doubly symmetric section.
func (s IBeam) Centroid() Point {
	return s.Vertices().Centroid()
}

// Rotate returns the outline rotated by theta radians about the origin.
func (s IBeam) Rotate(theta float64) Polygon {
	return s.Vertices().Rotate(theta)
}

// RotateAbout returns the outline rotated by theta radians about the pivot.
func (s IBeam) RotateAbout(theta float64, about Point) Polygon {
	return s.Vertices().RotateAbout(theta, about)
}
