package render

import (
	"errors"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/taigrr/mechdraw/pkg/shapes"
	"github.com/taigrr/mechdraw/pkg/structures"
	"github.com/taigrr/mechdraw/pkg/style"
)

const eps = 1e-9

func TestParseArrow(t *testing.T) {
	tests := []struct {
		in   string
		want Arrow
	}{
		{"", ArrowNone},
		{"<-", ArrowStart},
		{"->", ArrowEnd},
		{"<->", ArrowBoth},
	}
	for _, tt := range tests {
		got, err := ParseArrow(tt.in)
		if err != nil {
			t.Errorf("ParseArrow(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseArrow(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if got.String() != tt.in {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), tt.in)
		}
	}
	_, err := ParseArrow("=>")
	if !errors.Is(err, shapes.ErrInvalidInput) {
		t.Errorf("ParseArrow(=>) err = %v, want ErrInvalidInput", err)
	}
	if err != nil && !strings.HasPrefix(err.Error(), `arrow "=>": `) {
		t.Errorf("ParseArrow(=>) err = %q, want context before the error kind", err)
	}
}

func TestDrawLineArrows(t *testing.T) {
	rec := NewRecorder()
	l := shapes.NewLine(shapes.Pt(0, 0), shapes.Pt(10, 0))
	if err := DrawLine(rec, l, ArrowBoth, style.Default()); err != nil {
		t.Fatalf("DrawLine() error: %v", err)
	}
	cmds := rec.Commands()
	if len(cmds) != 3 {
		t.Fatalf("got %d commands, want 3", len(cmds))
	}
	if cmds[0].Kind != KindPolyline || len(cmds[0].Points) != 2 {
		t.Errorf("first command = %v with %d points", cmds[0].Kind, len(cmds[0].Points))
	}
	end := cmds[1]
	if !end.Points[0].ApproxEqual(shapes.Pt(9, 0), eps) || !end.Points[1].ApproxEqual(shapes.Pt(10, 0), eps) {
		t.Errorf("end arrow = %v, want (9,0)->(10,0)", end.Points)
	}
	start := cmds[2]
	if !start.Points[0].ApproxEqual(shapes.Pt(1, 0), eps) || !start.Points[1].ApproxEqual(shapes.Pt(0, 0), eps) {
		t.Errorf("start arrow = %v, want (1,0)->(0,0)", start.Points)
	}
}

func TestDrawLineArrowLengthScales(t *testing.T) {
	rec := NewRecorder()
	l := shapes.NewLine(shapes.Pt(1, 1), shapes.Pt(4, 5))
	if err := DrawLine(rec, l, ArrowEnd, style.Default()); err != nil {
		t.Fatal(err)
	}
	arrow := rec.Commands()[1]
	if got := arrow.Points[0].Distance(arrow.Points[1]); math.Abs(got-0.5) > eps {
		t.Errorf("arrow length = %v, want 0.5", got)
	}
}

func TestDrawDegenerateLineWithArrow(t *testing.T) {
	rec := NewRecorder()
	l := shapes.NewLine(shapes.Pt(2, 2), shapes.Pt(2, 2))
	err := DrawLine(rec, l, ArrowEnd, style.Default())
	if !errors.Is(err, shapes.ErrDivisionByZero) {
		t.Errorf("err = %v, want ErrDivisionByZero", err)
	}
	if err := DrawLine(NewRecorder(), l, ArrowNone, style.Default()); err != nil {
		t.Errorf("plain degenerate line err = %v", err)
	}
}

func TestDrawArcFillAndArrow(t *testing.T) {
	a, err := shapes.NewArc(shapes.Origin(), 1, 0, math.Pi/2, shapes.DefaultDTheta)
	if err != nil {
		t.Fatal(err)
	}
	rec := NewRecorder()
	st := style.Default().WithFill(color.Gray{Y: 200})
	if err := DrawArc(rec, a, ArrowEnd, st); err != nil {
		t.Fatalf("DrawArc() error: %v", err)
	}
	cmds := rec.Commands()
	if len(cmds) != 3 {
		t.Fatalf("got %d commands, want 3", len(cmds))
	}
	fan := cmds[0]
	if fan.Kind != KindFilledPolygon {
		t.Fatalf("first command = %v, want filled polygon", fan.Kind)
	}
	if last := fan.Points[len(fan.Points)-1]; !last.ApproxEqual(shapes.Origin(), eps) {
		t.Errorf("fan ends at %v, want center", last)
	}
	arrow := cmds[2]
	if !arrow.Points[1].ApproxEqual(shapes.Pt(0, 1), eps) {
		t.Errorf("arrow tip = %v, want (0,1)", arrow.Points[1])
	}
	wantOrigin := shapes.Pt(math.Cos(math.Pi/2-shapes.DefaultDTheta), math.Sin(math.Pi/2-shapes.DefaultDTheta))
	if !arrow.Points[0].ApproxEqual(wantOrigin, eps) {
		t.Errorf("arrow origin = %v, want %v", arrow.Points[0], wantOrigin)
	}
}

func TestDrawRectangleClosesOutline(t *testing.T) {
	r, err := shapes.NewRectangle(shapes.Pt(0, 0), shapes.Pt(2, 1))
	if err != nil {
		t.Fatal(err)
	}
	rec := NewRecorder()
	if err := DrawRectangle(rec, r, style.Default()); err != nil {
		t.Fatal(err)
	}
	pts := rec.Commands()[0].Points
	if len(pts) != 5 {
		t.Fatalf("outline has %d points, want 5", len(pts))
	}
	if pts[0] != pts[4] {
		t.Errorf("outline not closed: %v != %v", pts[0], pts[4])
	}
}

func TestDrawSquareUsesRectangle(t *testing.T) {
	sq, err := shapes.NewSquare(shapes.Pt(0, 0), 1)
	if err != nil {
		t.Fatal(err)
	}
	rec := NewRecorder()
	if err := DrawRectangle(rec, sq.Rectangle, style.Default().WithFill(color.White)); err != nil {
		t.Fatal(err)
	}
	if rec.Count(KindFilledPolygon) != 1 || rec.Count(KindPolyline) != 1 {
		t.Errorf("got %d fills, %d polylines", rec.Count(KindFilledPolygon), rec.Count(KindPolyline))
	}
}

func TestDrawIBeam(t *testing.T) {
	b, err := shapes.NewIBeam(10, 20, 2, 1, shapes.Origin())
	if err != nil {
		t.Fatal(err)
	}
	rec := NewRecorder()
	if err := DrawIBeam(rec, b, style.Default()); err != nil {
		t.Fatal(err)
	}
	pts := rec.Commands()[0].Points
	if len(pts) != 13 {
		t.Errorf("outline has %d points, want 13", len(pts))
	}
	if pts[0] != pts[12] {
		t.Errorf("outline not closed")
	}
}

func TestDrawGrid(t *testing.T) {
	g, err := shapes.NewGrid(shapes.Pt(0, 0), shapes.Pt(1, 1), 3)
	if err != nil {
		t.Fatal(err)
	}
	rec := NewRecorder()
	if err := DrawGrid(rec, g, style.Guide()); err != nil {
		t.Fatal(err)
	}
	if got := rec.Count(KindPolyline); got != 10 {
		t.Errorf("grid drew %d lines, want 10", got)
	}
}

func TestSupportTriangle(t *testing.T) {
	pts := SupportTriangle(shapes.Pt(1, 1), 0.1)
	h := math.Sqrt(3) / 2
	want := []shapes.Point{
		{X: 1, Y: 1},
		{X: 1 - h/2*0.1, Y: 1 - h*0.1},
		{X: 1 + h/2*0.1, Y: 1 - h*0.1},
		{X: 1, Y: 1},
	}
	for i := range want {
		if !pts[i].ApproxEqual(want[i], eps) {
			t.Errorf("pts[%d] = %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestDrawNodeFixity(t *testing.T) {
	tests := []struct {
		fixity    structures.Fixity
		polylines int
	}{
		{structures.Free, 0},
		{structures.Pin, 1},
		{structures.Roller, 1},
		{structures.Fixed, 0},
	}
	for _, tt := range tests {
		n, err := structures.NewNode(0, 0, tt.fixity)
		if err != nil {
			t.Fatal(err)
		}
		rec := NewRecorder()
		if err := DrawNode(rec, n, DefaultSupportScale, style.Node(), style.Support()); err != nil {
			t.Fatalf("DrawNode(%v) error: %v", tt.fixity, err)
		}
		if got := rec.Count(KindPolyline); got != tt.polylines {
			t.Errorf("%v: %d support polylines, want %d", tt.fixity, got, tt.polylines)
		}
		if got := rec.Count(KindMarker); got != 1 {
			t.Errorf("%v: %d markers, want 1", tt.fixity, got)
		}
	}
}

func TestDrawNodeSupportBehindMarker(t *testing.T) {
	n, _ := structures.NewNode(0, 0, structures.Pin)
	rec := NewRecorder()
	if err := DrawNode(rec, n, DefaultSupportScale, style.Node(), style.Support()); err != nil {
		t.Fatal(err)
	}
	sorted := rec.Sorted()
	if sorted[0].Kind != KindPolyline || sorted[1].Kind != KindMarker {
		t.Errorf("draw order = %v, %v", sorted[0].Kind, sorted[1].Kind)
	}
}

func TestDrawElementFollowsNodes(t *testing.T) {
	a, _ := structures.NewNode(0, 0, structures.Pin)
	b, _ := structures.NewNode(1, 0, structures.Pin)
	e, err := structures.NewElement(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.MoveTo(3, 4); err != nil {
		t.Fatal(err)
	}
	rec := NewRecorder()
	if err := DrawElement(rec, e, style.Element()); err != nil {
		t.Fatal(err)
	}
	cmd := rec.Commands()[0]
	if cmd.Points[1] != shapes.Pt(3, 4) {
		t.Errorf("element end = %v, want (3,4)", cmd.Points[1])
	}
	if cmd.Z != -1 || cmd.Style.LineWidth != 10 {
		t.Errorf("element style z=%d width=%v", cmd.Z, cmd.Style.LineWidth)
	}
	if err := DrawElement(rec, nil, style.Element()); !errors.Is(err, shapes.ErrInvalidInput) {
		t.Errorf("nil element err = %v", err)
	}
}
