// Package motion drives rotation angles over animation frames with
// harmonica springs.
package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Coaster spins freely after a kick. Friction is a critically damped
// spring pulling the angular velocity to zero, so the angle coasts to rest.
type Coaster struct {
	Angle    float64 // radians
	Velocity float64 // radians per frame
	friction harmonica.Spring
	accel    float64
}

// NewCoaster returns a coaster at rest. Higher frequency stops it sooner.
func NewCoaster(fps int, frequency float64) *Coaster {
	return &Coaster{friction: harmonica.NewSpring(harmonica.FPS(fps), frequency, 1)}
}

// Kick adds v radians per frame to the angular velocity.
func (c *Coaster) Kick(v float64) {
	c.Velocity += v
}

// Step advances one frame and returns the new angle.
func (c *Coaster) Step() float64 {
	c.Angle += c.Velocity
	c.Velocity, c.accel = c.friction.Update(c.Velocity, c.accel, 0)
	return c.Angle
}

// Resting reports whether the velocity has dropped to within tol of zero.
func (c *Coaster) Resting(tol float64) bool {
	return math.Abs(c.Velocity) <= tol && math.Abs(c.accel) <= tol
}

// Frames steps the coaster n times and returns each angle. Once resting
// within tol the angle holds still.
func (c *Coaster) Frames(n int, tol float64) []float64 {
	out := make([]float64, 0, max(n, 0))
	for range n {
		if c.Resting(tol) {
			c.Velocity, c.accel = 0, 0
			out = append(out, c.Angle)
			continue
		}
		out = append(out, c.Step())
	}
	return out
}

// Spinner moves an angle toward a target along a damped spring.
type Spinner struct {
	Angle    float64
	velocity float64
	target   float64
	spring   harmonica.Spring
}

// NewSpinner returns a spinner at rest at angle 0. damping below 1
// overshoots the target, 1 settles as fast as possible without overshoot.
func NewSpinner(fps int, frequency, damping float64) *Spinner {
	return &Spinner{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// SetTarget sets the angle the spinner settles at.
func (s *Spinner) SetTarget(theta float64) {
	s.target = theta
}

// Target returns the angle the spinner settles at.
func (s *Spinner) Target() float64 {
	return s.target
}

// Step advances one frame and returns the new angle.
func (s *Spinner) Step() float64 {
	s.Angle, s.velocity = s.spring.Update(s.Angle, s.velocity, s.target)
	return s.Angle
}

// Settled reports whether the angle is within tol of the target and the
// spinner has effectively stopped.
func (s *Spinner) Settled(tol float64) bool {
	return math.Abs(s.Angle-s.target) <= tol && math.Abs(s.velocity) <= tol
}

// Frames steps the spinner n times and returns each angle. The last
// angle snaps to the target once settled within tol.
func (s *Spinner) Frames(n int, tol float64) []float64 {
	out := make([]float64, 0, max(n, 0))
	for range n {
		angle := s.Step()
		if s.Settled(tol) {
			s.Angle, s.velocity = s.target, 0
			angle = s.target
		}
		out = append(out, angle)
	}
	return out
}
