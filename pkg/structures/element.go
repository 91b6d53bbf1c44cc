package structures

import (
	"fmt"

	"github.com/taigrr/mechdraw/pkg/shapes"
)

// Element connects two nodes. The nodes are owned by the caller and may
// be shared between elements.
type Element struct {
	Start, End *Node
}

// NewElement creates an Element from start to end.
func NewElement(start, end *Node) (*Element, error) {
	if start == nil || end == nil {
		return nil, fmt.Errorf("element needs two nodes: %w", shapes.ErrInvalidInput)
	}
	return &Element{Start: start, End: end}, nil
}

// Length returns the current distance between the nodes.
func (e *Element) Length() float64 {
	return e.Line().Length()
}

// Line returns the segment between the current node positions.
func (e *Element) Line() shapes.Line {
	return shapes.NewLine(e.Start.Point(), e.End.Point())
}

func (e *Element) String() string {
	return fmt.Sprintf("Element(%v -> %v)", e.Start, e.End)
}
