package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/taigrr/mechdraw/pkg/shapes"
	"github.com/taigrr/mechdraw/pkg/style"
)

func sampleDrawing(t *testing.T, s Surface) {
	t.Helper()
	b, err := shapes.NewIBeam(2, 4, 0.4, 0.2, shapes.Origin())
	if err != nil {
		t.Fatal(err)
	}
	st := style.Default().WithFill(style.ElementGray)
	if err := DrawIBeam(s, b, st); err != nil {
		t.Fatal(err)
	}
	dim := shapes.NewLine(shapes.Pt(-1, -2.5), shapes.Pt(1, -2.5))
	if err := DrawLine(s, dim, ArrowBoth, style.Guide()); err != nil {
		t.Fatal(err)
	}
	if err := s.DrawText(shapes.Pt(0, -2.8), "b", 0, style.Default()); err != nil {
		t.Fatal(err)
	}
	if err := s.DrawMarker(b.Centroid(), style.POI()); err != nil {
		t.Fatal(err)
	}
}

func TestCanvasSurfaceSave(t *testing.T) {
	for _, ext := range []string{"svg", "png"} {
		t.Run(ext, func(t *testing.T) {
			c := NewCanvasSurface(4*vg.Inch, 4*vg.Inch)
			sampleDrawing(t, c)

			path := filepath.Join(t.TempDir(), "beam."+ext)
			if err := c.Save(path); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("File not created: %v", err)
			}
			if info.Size() == 0 {
				t.Fatal("File is empty")
			}
		})
	}
}

func TestCanvasSurfaceSVGContent(t *testing.T) {
	c := NewCanvasSurface(3*vg.Inch, 3*vg.Inch)
	sampleDrawing(t, c)
	var buf bytes.Buffer
	if _, err := c.Encode(&buf, "svg"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("output is not SVG")
	}
}

func TestCanvasSurfaceErrors(t *testing.T) {
	c := NewCanvasSurface(vg.Inch, vg.Inch)
	if err := c.Save(filepath.Join(t.TempDir(), "noext")); err == nil {
		t.Error("Save without extension should fail")
	}
	var buf bytes.Buffer
	if _, err := c.Encode(&buf, "bmp3"); err == nil {
		t.Error("Encode with unknown format should fail")
	}
}

func TestCanvasSurfaceSaveLeavesNoFileOnError(t *testing.T) {
	c := NewCanvasSurface(vg.Inch, vg.Inch)
	sampleDrawing(t, c)
	path := filepath.Join(t.TempDir(), "beam.bmp3")
	if err := c.Save(path); err == nil {
		t.Fatal("Save with unknown format should fail")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("failed Save left %s behind (stat err = %v)", path, err)
	}
}

func TestCanvasSurfaceEmpty(t *testing.T) {
	c := NewCanvasSurface(vg.Inch, vg.Inch)
	img := vgimg.New(vg.Inch, vg.Inch)
	if err := c.Render(draw.New(img)); err != nil {
		t.Errorf("Render(empty) error: %v", err)
	}
}

func TestViewportFitsBounds(t *testing.T) {
	dc := draw.New(vgimg.New(200, 100))
	vp := newViewport(dc, 10, shapes.Pt(0, 0), shapes.Pt(4, 1))
	lo := vp.point(shapes.Pt(0, 0))
	hi := vp.point(shapes.Pt(4, 1))
	if lo.X < 10 || hi.X > 190 || lo.Y < 10 || hi.Y > 90 {
		t.Errorf("mapped bounds %v..%v escape the margin", lo, hi)
	}
	if hi.Y <= lo.Y {
		t.Error("y axis should point up")
	}
	// aspect ratio is preserved
	if got := float64(hi.X-lo.X) / float64(hi.Y-lo.Y); got < 3.999 || got > 4.001 {
		t.Errorf("aspect = %v, want 4", got)
	}
}

func TestViewportSinglePoint(t *testing.T) {
	dc := draw.New(vgimg.New(100, 100))
	vp := newViewport(dc, 10, shapes.Pt(3, 3), shapes.Pt(3, 3))
	p := vp.point(shapes.Pt(3, 3))
	if p.X != 50 || p.Y != 50 {
		t.Errorf("single point maps to %v, want center", p)
	}
}
