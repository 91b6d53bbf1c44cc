package shapes

import "fmt"

// Grid lays out evenly spaced lines inside the box spanned by Pt0 and PtN.
type Grid struct {
	Pt0, PtN Point
	NLines   int // interior lines per axis
}

// NewGrid creates a Grid with nLines interior lines per axis.
func NewGrid(pt0, ptN Point, nLines int) (Grid, error) {
	if nLines < 0 {
		return Grid{}, fmt.Errorf("grid line count %d is negative: %w", nLines, ErrInvalidGeometry)
	}
	if !pt0.IsFinite() || !ptN.IsFinite() {
		return Grid{}, fmt.Errorf("grid corners must be finite: %w", ErrInvalidInput)
	}
	return Grid{Pt0: pt0, PtN: ptN, NLines: nLines}, nil
}

// DX returns the horizontal spacing between vertical lines.
func (g Grid) DX() float64 {
	return (g.PtN.X - g.Pt0.X) / float64(g.NLines+1)
}

// DY returns the vertical spacing between horizontal lines.
func (g Grid) DY() float64 {
	return (g.PtN.Y - g.Pt0.Y) / float64(g.NLines+1)
}

// Vertical returns the NLines+2 vertical lines, boundaries included,
// ordered from Pt0.X toward PtN.X.
func (g Grid) Vertical() []Line {
	dx := g.DX()
	lines := make([]Line, g.NLines+2)
	for i := range lines {
		x := g.Pt0.X + float64(i)*dx
		if i == len(lines)-1 {
			x = g.PtN.X
		}
		lines[i] = Line{Pt0: Point{x, g.Pt0.Y}, Pt1: Point{x, g.PtN.Y}}
	}
	return lines
}

// Horizontal returns the NLines+2 horizontal lines, boundaries included,
// ordered from Pt0.Y toward PtN.Y.
func (g Grid) Horizontal() []Line {
	dy := g.DY()
	lines := make([]Line, g.NLines+2)
	for i := range lines {
		y := g.Pt0.Y + float64(i)*dy
		if i == len(lines)-1 {
			y = g.PtN.Y
		}
		lines[i] = Line{Pt0: Point{g.Pt0.X, y}, Pt1: Point{g.PtN.X, y}}
	}
	return lines
}

// Lines returns the vertical lines followed by the horizontal ones.
func (g Grid) Lines() []Line {
	return append(g.Vertical(), g.Horizontal()...)
}
