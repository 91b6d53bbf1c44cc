package render

import (
	"fmt"
	"image/color"
	"slices"
	"sync"

	"github.com/taigrr/mechdraw/pkg/shapes"
	"github.com/taigrr/mechdraw/pkg/style"
)

// Kind identifies a recorded drawing call.
type Kind int

const (
	KindMarker Kind = iota
	KindPolyline
	KindFilledPolygon
	KindArrow
	KindText
)

var kindNames = [...]string{
	KindMarker:        "marker",
	KindPolyline:      "polyline",
	KindFilledPolygon: "filled-polygon",
	KindArrow:         "arrow",
	KindText:          "text",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Command is one recorded drawing call. Points holds the marker or text
// anchor, the polyline or polygon vertices, or an arrow's origin and tip.
type Command struct {
	Kind     Kind
	Points   []shapes.Point
	Style    style.Style
	Fill     color.Color
	Z        int
	Text     string
	Rotation float64 // degrees, text only
}

// Recorder is a Surface that stores every call. It is safe for use by
// concurrent producers.
type Recorder struct {
	mu       sync.Mutex
	commands []Command
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(c Command) error {
	for _, p := range c.Points {
		if !p.IsFinite() {
			return fmt.Errorf("%s with non-finite point %v: %w", c.Kind, p, shapes.ErrInvalidInput)
		}
	}
	r.mu.Lock()
	r.commands = append(r.commands, c)
	r.mu.Unlock()
	return nil
}

func (r *Recorder) DrawMarker(p shapes.Point, st style.Style) error {
	return r.record(Command{Kind: KindMarker, Points: []shapes.Point{p}, Style: st.Clone(), Z: st.ZOrder})
}

func (r *Recorder) DrawPolyline(pts []shapes.Point, st style.Style) error {
	if len(pts) < 2 {
		return fmt.Errorf("polyline needs 2 points, got %d: %w", len(pts), shapes.ErrInvalidInput)
	}
	return r.record(Command{Kind: KindPolyline, Points: slices.Clone(pts), Style: st.Clone(), Z: st.ZOrder})
}

func (r *Recorder) DrawFilledPolygon(pts []shapes.Point, fill color.Color, zOrder int) error {
	if len(pts) < 3 {
		return fmt.Errorf("polygon needs 3 points, got %d: %w", len(pts), shapes.ErrInvalidInput)
	}
	if fill == nil {
		return fmt.Errorf("nil fill color: %w", shapes.ErrInvalidInput)
	}
	return r.record(Command{Kind: KindFilledPolygon, Points: slices.Clone(pts), Fill: fill, Z: zOrder})
}

func (r *Recorder) DrawArrow(origin, delta shapes.Point, st style.Style) error {
	return r.record(Command{Kind: KindArrow, Points: []shapes.Point{origin, origin.Add(delta)}, Style: st.Clone(), Z: st.ZOrder})
}

func (r *Recorder) DrawText(p shapes.Point, text string, rotationDegrees float64, st style.Style) error {
	return r.record(Command{Kind: KindText, Points: []shapes.Point{p}, Text: text, Rotation: rotationDegrees, Style: st.Clone(), Z: st.ZOrder})
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.commands)
}

// Count returns the number of recorded commands of kind k.
func (r *Recorder) Count(k Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.commands {
		if c.Kind == k {
			n++
		}
	}
	return n
}

// Commands returns the commands in call order.
func (r *Recorder) Commands() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.commands)
}

// Sorted returns the commands ordered by Z. Calls with equal Z keep
// their call order.
func (r *Recorder) Sorted() []Command {
	cmds := r.Commands()
	slices.SortStableFunc(cmds, func(a, b Command) int {
		return a.Z - b.Z
	})
	return cmds
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.commands = nil
	r.mu.Unlock()
}

// Bounds returns the bounding box of every recorded point. ok is false
// when nothing has been recorded.
func (r *Recorder) Bounds() (lo, hi shapes.Point, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.commands {
		for _, p := range c.Points {
			if !ok {
				lo, hi, ok = p, p, true
				continue
			}
			lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
			hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
		}
	}
	return lo, hi, ok
}

// Replay issues the recorded commands to s in Z order.
func (r *Recorder) Replay(s Surface) error {
	for _, c := range r.Sorted() {
		if err := c.Apply(s); err != nil {
			return err
		}
	}
	return nil
}

// Apply issues c to s.
func (c Command) Apply(s Surface) error {
	switch c.Kind {
	case KindMarker:
		return s.DrawMarker(c.Points[0], c.Style)
	case KindPolyline:
		return s.DrawPolyline(c.Points, c.Style)
	case KindFilledPolygon:
		return s.DrawFilledPolygon(c.Points, c.Fill, c.Z)
	case KindArrow:
		return s.DrawArrow(c.Points[0], c.Points[1].Sub(c.Points[0]), c.Style)
	case KindText:
		return s.DrawText(c.Points[0], c.Text, c.Rotation, c.Style)
	}
	return fmt.Errorf("unknown command kind %v", c.Kind)
}
