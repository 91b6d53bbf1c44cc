package shapes

import (
	"fmt"
	"math"
)

// DefaultDTheta is the sampling step used by NewCircle.
const DefaultDTheta = math.Pi / 100

// MaxSamples caps the number of sampling steps an arc may take.
const MaxSamples = 1 << 20

// Arc is a circular arc from angle Th0 to Thf (radians, counter-clockwise)
// sampled every DTheta radians.
type Arc struct {
	Center Point
	Radius float64
	Th0    float64
	Thf    float64
	DTheta float64
}

// NewArc creates a validated Arc.
func NewArc(center Point, radius, th0, thf, dtheta float64) (Arc, error) {
	a := Arc{Center: center, Radius: radius, Th0: th0, Thf: thf, DTheta: dtheta}
	if err := a.validate(); err != nil {
		return Arc{}, err
	}
	return a, nil
}

// NewCircle creates the closed arc spanning [0, 2π] at DefaultDTheta.
func NewCircle(center Point, radius float64) (Arc, error) {
	return NewArc(center, radius, 0, 2*math.Pi, DefaultDTheta)
}

func (a Arc) validate() error {
	switch {
	case !a.Center.IsFinite() || !isFinite(a.Radius) || !isFinite(a.Th0) ||
		!isFinite(a.Thf) || !isFinite(a.DTheta):
		return fmt.Errorf("arc parameters must be finite: %w", ErrInvalidGeometry)
	case a.Radius <= 0:
		return fmt.Errorf("arc radius %g must be positive: %w", a.Radius, ErrInvalidGeometry)
	case a.DTheta <= 0:
		return fmt.Errorf("arc step %g must be positive: %w", a.DTheta, ErrInvalidGeometry)
	case a.Thf < a.Th0:
		return fmt.Errorf("arc end %g precedes start %g: %w", a.Thf, a.Th0, ErrInvalidGeometry)
	}
	if steps := (a.Thf - a.Th0) / a.DTheta; !isFinite(steps) || steps > MaxSamples {
		return fmt.Errorf("arc needs %g samples, more than %d: %w", steps, MaxSamples, ErrInvalidGeometry)
	}
	return nil
}

// At returns the point on the arc's circle at angle theta.
func (a Arc) At(theta float64) Point {
	sin, cos := math.Sincos(theta)
	return Point{a.Center.X + a.Radius*cos, a.Center.Y + a.Radius*sin}
}

// Pt0 returns the start point of the arc.
func (a Arc) Pt0() Point {
	return a.At(a.Th0)
}

// Pt1 returns the end point of the arc.
func (a Arc) Pt1() Point {
	return a.At(a.Thf)
}

// Closed reports whether the arc covers a full revolution.
func (a Arc) Closed() bool {
	return a.Thf-a.Th0 >= 2*math.Pi-Tolerance
}

// Angles returns the sampling angles th0, th0+dθ, ... with the last one
// clamped to thf.
func (a Arc) Angles() []float64 {
	span := a.Thf - a.Th0
	steps := int(math.Ceil(span / a.DTheta))
	// Floating error can push an exact multiple one step too far.
	if steps > 0 && float64(steps-1)*a.DTheta >= span-Tolerance {
		steps--
	}
	thetas := make([]float64, steps+1)
	for i := range steps {
		thetas[i] = a.Th0 + float64(i)*a.DTheta
	}
	thetas[steps] = a.Thf
	return thetas
}

// Points samples the arc. The first point is Pt0 and the last is Pt1,
// whatever the step size.
func (a Arc) Points() []Point {
	thetas := a.Angles()
	pts := make([]Point, len(thetas))
	for i, th := range thetas {
		pts[i] = a.At(th)
	}
	return pts
}

// FanPolygon returns the sampled boundary followed by the center, a closed
// fan used for filled rendering.
func (a Arc) FanPolygon() Polygon {
	return append(Polygon(a.Points()), a.Center)
}

// EndTangent returns the arrow for the end of the arc: its origin is the
// point DTheta before Thf and its delta reaches Pt1, following the tangent
// instead of the chord.
func (a Arc) EndTangent() (origin, delta Point) {
	origin = a.At(a.Thf - a.arrowStep())
	return origin, a.Pt1().Sub(origin)
}

// StartTangent returns the arrow for the start of the arc, pointing back
// at Pt0 from DTheta past Th0.
func (a Arc) StartTangent() (origin, delta Point) {
	origin = a.At(a.Th0 + a.arrowStep())
	return origin, a.Pt0().Sub(origin)
}

// arrowStep keeps tangent arrows on the arc for spans shorter than DTheta.
func (a Arc) arrowStep() float64 {
	return math.Min(a.DTheta, a.Thf-a.Th0)
}

// Rotate rotates the arc by theta radians about the origin.
func (a Arc) Rotate(theta float64) Arc {
	return a.RotateAbout(theta, Origin())
}

// RotateAbout rotates the arc by theta radians about the pivot.
func (a Arc) RotateAbout(theta float64, about Point) Arc {
	a.Center = a.Center.RotateAbout(theta, about)
	a.Th0 += theta
	a.Thf += theta
	return a
}
