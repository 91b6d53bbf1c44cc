package export

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/taigrr/mechdraw/pkg/render"
	"github.com/taigrr/mechdraw/pkg/shapes"
	"github.com/taigrr/mechdraw/pkg/style"
)

func drawBeam(t *testing.T, s render.Surface) shapes.IBeam {
	t.Helper()
	b, err := shapes.NewIBeam(2, 4, 0.5, 0.25, shapes.Pt(1, 1))
	if err != nil {
		t.Fatal(err)
	}
	if err := render.DrawIBeam(s, b, style.Default().WithFill(style.ElementGray)); err != nil {
		t.Fatal(err)
	}
	dim := shapes.NewLine(shapes.Pt(0, -1.5), shapes.Pt(2, -1.5))
	if err := render.DrawLine(s, dim, render.ArrowEnd, style.Guide()); err != nil {
		t.Fatal(err)
	}
	if err := s.DrawText(shapes.Pt(1, -2), "b", 0, style.Default()); err != nil {
		t.Fatal(err)
	}
	return b
}

func TestGLTFRoundTrip(t *testing.T) {
	g := NewGLTF("beam")
	b := drawBeam(t, g)

	path := filepath.Join(t.TempDir(), "beam.glb")
	if err := g.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	lines, err := ReadGLTF(path)
	if err != nil {
		t.Fatalf("ReadGLTF failed: %v", err)
	}
	// fill loop, outline, dimension line, arrow
	if len(lines) != 4 {
		t.Fatalf("got %d strips, want 4", len(lines))
	}
	if !lines[0].Closed || len(lines[0].Points) != 12 {
		t.Errorf("fill strip closed=%v with %d points, want loop of 12", lines[0].Closed, len(lines[0].Points))
	}
	verts := b.Vertices()
	for i, p := range lines[0].Points {
		if !p.ApproxEqual(verts[i], 1e-6) {
			t.Errorf("vertex %d = %v, want %v", i, p, verts[i])
		}
	}
	if lines[1].Closed || len(lines[1].Points) != 13 {
		t.Errorf("outline closed=%v with %d points", lines[1].Closed, len(lines[1].Points))
	}
}

func TestGLTFDocumentMaterials(t *testing.T) {
	g := NewGLTF("m")
	_ = g.DrawPolyline([]shapes.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, style.Default())
	_ = g.DrawPolyline([]shapes.Point{{X: 0, Y: 1}, {X: 1, Y: 1}}, style.Default())
	_ = g.DrawPolyline([]shapes.Point{{X: 0, Y: 2}, {X: 1, Y: 2}}, style.Default().WithColor(color.RGBA{R: 0xff, A: 0xff}))
	doc, err := g.Document()
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Materials) != 2 {
		t.Errorf("got %d materials, want 2", len(doc.Materials))
	}
	if len(doc.Accessors) != 3 || len(doc.BufferViews) != 3 {
		t.Errorf("got %d accessors, %d buffer views", len(doc.Accessors), len(doc.BufferViews))
	}
	if got := doc.Buffers[0].ByteLength; got != 3*2*12 {
		t.Errorf("buffer length = %d, want 72", got)
	}
}

func TestGLTFEmpty(t *testing.T) {
	g := NewGLTF("empty")
	_ = g.DrawMarker(shapes.Pt(0, 0), style.POI())
	if _, err := g.Document(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Document() err = %v, want ErrEmpty", err)
	}
}

func TestOBJEncode(t *testing.T) {
	o := NewOBJ("tri")
	pts := []shapes.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	if err := o.DrawFilledPolygon(pts, color.White, 0); err != nil {
		t.Fatal(err)
	}
	if err := o.DrawPolyline([]shapes.Point{{X: 0, Y: 0}, {X: 0.5, Y: 2}}, style.Default()); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := o.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	want := `# mechdraw
o tri
v 0 0 0
v 1 0 0
v 0 1 0
l 1 2 3 1
v 0 0 0
v 0.5 2 0
l 4 5
`
	if got := buf.String(); got != want {
		t.Errorf("Encode() =\n%s\nwant\n%s", got, want)
	}
}

func TestOBJRoundTrip(t *testing.T) {
	o := NewOBJ("beam")
	b := drawBeam(t, o)
	path := filepath.Join(t.TempDir(), "beam.obj")
	if err := o.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	lines, err := ReadOBJ(f)
	if err != nil {
		t.Fatalf("ReadOBJ failed: %v", err)
	}
	if len(lines) != 4 {
		t.Fatalf("got %d strips, want 4", len(lines))
	}
	if !lines[0].Closed {
		t.Error("fill strip should be closed")
	}
	if !shapes.Polygon(lines[0].Points).ApproxEqual(b.Vertices(), 1e-12) {
		t.Errorf("fill strip = %v", lines[0].Points)
	}
}

func TestOBJSaveEmptyWritesNothing(t *testing.T) {
	o := NewOBJ("empty")
	_ = o.DrawText(shapes.Pt(0, 0), "label", 0, style.Default())
	path := filepath.Join(t.TempDir(), "empty.obj")
	if err := o.Save(path); !errors.Is(err, ErrEmpty) {
		t.Fatalf("Save() err = %v, want ErrEmpty", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("failed Save left %s behind (stat err = %v)", path, err)
	}
}

func TestReadOBJErrors(t *testing.T) {
	bad := []string{
		"v 1\n",
		"v a 2 0\n",
		"v 0 0 0\nl 1\n",
		"v 0 0 0\nl 1 2\n",
		"v 0 0 0\nv 1 1 0\nl 1 x\n",
	}
	for _, src := range bad {
		if _, err := ReadOBJ(strings.NewReader(src)); err == nil {
			t.Errorf("ReadOBJ(%q) should fail", src)
		}
	}
}

func TestReadOBJNegativeIndices(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 1 1 0\nl -3 -1\nf 1 2 3\n"
	lines, err := ReadOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0].Points[1] != shapes.Pt(1, 1) {
		t.Errorf("lines = %+v", lines)
	}
}
