package render

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgsvg"

	"github.com/taigrr/mechdraw/pkg/shapes"
	"github.com/taigrr/mechdraw/pkg/style"
)

// CanvasSurface records drawing calls and renders them onto a gonum/plot
// canvas, scaled so the recorded geometry fits inside the margin.
type CanvasSurface struct {
	*Recorder

	Width, Height vg.Length
	Margin        vg.Length
	Background    color.Color // nil leaves the canvas transparent
	ArrowHead     float64     // arrowhead length in world units
	FontSize      vg.Length
}

// NewCanvasSurface returns a w×h surface with a white background.
func NewCanvasSurface(w, h vg.Length) *CanvasSurface {
	return &CanvasSurface{
		Recorder:   NewRecorder(),
		Width:      w,
		Height:     h,
		Margin:     vg.Points(12),
		Background: color.White,
		ArrowHead:  0.1,
		FontSize:   vg.Points(10),
	}
}

// viewport maps world coordinates onto a draw.Canvas preserving aspect ratio.
type viewport struct {
	lo     shapes.Point
	scale  float64
	origin vg.Point
}

func newViewport(dc draw.Canvas, margin vg.Length, lo, hi shapes.Point) viewport {
	w := float64(dc.Max.X - dc.Min.X - 2*margin)
	h := float64(dc.Max.Y - dc.Min.Y - 2*margin)
	dx, dy := hi.X-lo.X, hi.Y-lo.Y
	scale := math.Inf(1)
	if dx > 0 {
		scale = w / dx
	}
	if dy > 0 {
		scale = min(scale, h/dy)
	}
	if math.IsInf(scale, 1) || scale <= 0 {
		scale = 1
	}
	// center the drawing in the unused space
	offX := (w - dx*scale) / 2
	offY := (h - dy*scale) / 2
	return viewport{
		lo:    lo,
		scale: scale,
		origin: vg.Point{
			X: dc.Min.X + margin + vg.Length(offX),
			Y: dc.Min.Y + margin + vg.Length(offY),
		},
	}
}

func (v viewport) point(p shapes.Point) vg.Point {
	return vg.Point{
		X: v.origin.X + vg.Length((p.X-v.lo.X)*v.scale),
		Y: v.origin.Y + vg.Length((p.Y-v.lo.Y)*v.scale),
	}
}

func (v viewport) points(pts []shapes.Point) []vg.Point {
	out := make([]vg.Point, len(pts))
	for i, p := range pts {
		out[i] = v.point(p)
	}
	return out
}

// Render draws every recorded command onto dc in Z order.
func (c *CanvasSurface) Render(dc draw.Canvas) error {
	if c.Background != nil {
		dc.FillPolygon(c.Background, []vg.Point{
			dc.Min, {X: dc.Max.X, Y: dc.Min.Y}, dc.Max, {X: dc.Min.X, Y: dc.Max.Y},
		})
	}
	lo, hi, ok := c.Bounds()
	if !ok {
		return nil
	}
	vp := newViewport(dc, c.Margin, lo, hi)
	for _, cmd := range c.Sorted() {
		switch cmd.Kind {
		case KindMarker:
			c.drawMarker(&dc, vp.point(cmd.Points[0]), cmd.Style)
		case KindPolyline:
			dc.StrokeLines(lineStyle(cmd.Style), vp.points(cmd.Points))
		case KindFilledPolygon:
			dc.FillPolygon(cmd.Fill, vp.points(cmd.Points))
		case KindArrow:
			c.drawArrow(&dc, vp, cmd.Points[0], cmd.Points[1], cmd.Style)
		case KindText:
			dc.FillText(c.textStyle(cmd), vp.point(cmd.Points[0]), cmd.Text)
		default:
			return fmt.Errorf("unknown command kind %v", cmd.Kind)
		}
	}
	return nil
}

func strokeColor(st style.Style) color.Color {
	if st.Color == nil {
		return color.Black
	}
	return st.Color
}

func lineStyle(st style.Style) draw.LineStyle {
	ls := draw.LineStyle{
		Color: strokeColor(st),
		Width: vg.Points(st.LineWidth),
	}
	switch st.LineStyle {
	case style.Dashed:
		ls.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	case style.Dotted:
		ls.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}
	}
	return ls
}

func (c *CanvasSurface) drawMarker(dc *draw.Canvas, at vg.Point, st style.Style) {
	r := vg.Points(st.MarkerSize / 2)
	dc.DrawGlyph(draw.GlyphStyle{Color: strokeColor(st), Radius: r, Shape: draw.CircleGlyph{}}, at)
	if st.EdgeColor == nil {
		return
	}
	dc.SetLineStyle(draw.LineStyle{Color: st.EdgeColor, Width: vg.Points(st.LineWidth)})
	var p vg.Path
	p.Move(vg.Point{X: at.X + r, Y: at.Y})
	p.Arc(at, r, 0, 2*math.Pi)
	p.Close()
	dc.Stroke(p)
}

// drawArrow strokes the shaft up to the head base and fills the head.
func (c *CanvasSurface) drawArrow(dc *draw.Canvas, vp viewport, from, tip shapes.Point, st style.Style) {
	delta := tip.Sub(from)
	n := delta.Norm()
	if n == 0 {
		return
	}
	u := delta.Scale(1 / n)
	head := min(c.ArrowHead, n)
	base := tip.Sub(u.Scale(head))
	normal := shapes.Pt(-u.Y, u.X).Scale(head / 2)
	if base.Distance(from) > 0 {
		dc.StrokeLines(lineStyle(st), vp.points([]shapes.Point{from, base}))
	}
	dc.FillPolygon(strokeColor(st), vp.points([]shapes.Point{tip, base.Add(normal), base.Sub(normal)}))
}

func (c *CanvasSurface) textStyle(cmd Command) draw.TextStyle {
	size := c.FontSize
	if v, ok := cmd.Style.Option("font_size"); ok {
		var pts float64
		if _, err := fmt.Sscanf(v, "%g", &pts); err == nil && pts > 0 {
			size = vg.Points(pts)
		}
	}
	return draw.TextStyle{
		Color:    strokeColor(cmd.Style),
		Font:     font.From(plot.DefaultFont, size),
		Rotation: cmd.Rotation * math.Pi / 180,
		XAlign:   draw.XCenter,
		YAlign:   draw.YCenter,
		Handler:  plot.DefaultTextHandler,
	}
}

// Encode renders the surface in format ("svg", "png", ...) and writes it to w.
func (c *CanvasSurface) Encode(w io.Writer, format string) (int64, error) {
	cw, err := draw.NewFormattedCanvas(c.Width, c.Height, format)
	if err != nil {
		return 0, err
	}
	if err := c.Render(draw.New(cw)); err != nil {
		return 0, err
	}
	return cw.WriteTo(w)
}

// Save renders the surface to path, choosing the format from its
// extension. Nothing is written unless rendering succeeds.
func (c *CanvasSurface) Save(path string) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format == "" {
		return fmt.Errorf("no file extension in %q: %w", path, shapes.ErrInvalidInput)
	}
	var buf bytes.Buffer
	if _, err := c.Encode(&buf, format); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	log.Infof("Wrote %s (%d commands, %d bytes)", path, c.Len(), buf.Len())
	return nil
}
