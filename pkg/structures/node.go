// Package structures provides the structural-diagram primitives: nodes
// carrying a support fixity and elements connecting them.
package structures

import (
	"fmt"
	"math"
	"strings"

	"github.com/taigrr/mechdraw/pkg/shapes"
)

// Fixity is the support condition of a Node.
type Fixity int

const (
	Free   Fixity = iota // no support
	Pin                  // translation restrained
	Fixed                // translation and rotation restrained
	Roller               // one translation restrained
)

var fixityNames = [...]string{
	Free:   "free",
	Pin:    "pin",
	Fixed:  "fixed",
	Roller: "roller",
}

func (f Fixity) String() string {
	if f < Free || f > Roller {
		return fmt.Sprintf("Fixity(%d)", int(f))
	}
	return fixityNames[f]
}

// Valid reports whether f is one of the defined fixities.
func (f Fixity) Valid() bool {
	return f >= Free && f <= Roller
}

// ParseFixity parses a fixity name (case-insensitive).
func ParseFixity(s string) (Fixity, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for f, n := range fixityNames {
		if n == name {
			return Fixity(f), nil
		}
	}
	return Free, fmt.Errorf("unknown fixity %q: %w", s, shapes.ErrInvalidInput)
}

// Node is a point of a structural model with a support condition.
type Node struct {
	X, Y   float64
	Fixity Fixity
}

// NewNode creates a Node. Coordinates must be finite numbers.
func NewNode(x, y float64, fixity Fixity) (*Node, error) {
	if !finite(x) || !finite(y) {
		return nil, fmt.Errorf("node coordinates (%g, %g) must be finite: %w", x, y, shapes.ErrInvalidInput)
	}
	if !fixity.Valid() {
		return nil, fmt.Errorf("node fixity %v: %w", fixity, shapes.ErrInvalidInput)
	}
	return &Node{X: x, Y: y, Fixity: fixity}, nil
}

// Point returns the node position.
func (n *Node) Point() shapes.Point {
	return shapes.Pt(n.X, n.Y)
}

// MoveTo relocates the node. Elements referencing it see the new position.
func (n *Node) MoveTo(x, y float64) error {
	if !finite(x) || !finite(y) {
		return fmt.Errorf("node coordinates (%g, %g) must be finite: %w", x, y, shapes.ErrInvalidInput)
	}
	n.X, n.Y = x, y
	return nil
}

func (n *Node) String() string {
	return fmt.Sprintf("Node(%g, %g, %v)", n.X, n.Y, n.Fixity)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
