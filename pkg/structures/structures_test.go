package structures

import (
	"errors"
	"math"
	"testing"

	"github.com/taigrr/mechdraw/pkg/shapes"
)

func TestNewNode(t *testing.T) {
	n, err := NewNode(0.0, 0.0, Free)
	if err != nil {
		t.Fatalf("NewNode: %v", err)
	}
	if n.X != 0 || n.Y != 0 || n.Fixity != Free {
		t.Errorf("node = %v", n)
	}
	if n.Point() != shapes.Pt(0, 0) {
		t.Errorf("Point = %v", n.Point())
	}
}

func TestNewNodeRejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := NewNode(v, 0, Pin); !errors.Is(err, shapes.ErrInvalidInput) {
			t.Errorf("NewNode(%v) error = %v, want ErrInvalidInput", v, err)
		}
	}
	if _, err := NewNode(0, 0, Fixity(9)); !errors.Is(err, shapes.ErrInvalidInput) {
		t.Errorf("bad fixity error = %v, want ErrInvalidInput", err)
	}
}

func TestElementLength(t *testing.T) {
	n1, _ := NewNode(0, 0, Free)
	n2, _ := NewNode(3, 4, Free)
	e, err := NewElement(n1, n2)
	if err != nil {
		t.Fatalf("NewElement: %v", err)
	}
	if got := e.Length(); got != 5.0 {
		t.Errorf("Length = %v, want 5", got)
	}

	x1, x2 := 0.0, 1.0
	a, _ := NewNode(x1, 0, Free)
	b, _ := NewNode(x2, 0, Free)
	e2, _ := NewElement(a, b)
	if got := e2.Length(); got != math.Sqrt((x2-x1)*(x2-x1)) {
		t.Errorf("Length = %v, want %v", got, x2-x1)
	}
}

func TestElementTracksNodeMoves(t *testing.T) {
	shared, _ := NewNode(1, 0, Pin)
	left, _ := NewNode(0, 0, Pin)
	right, _ := NewNode(2, 0, Roller)
	e1, _ := NewElement(left, shared)
	e2, _ := NewElement(shared, right)

	if err := shared.MoveTo(1, 1); err != nil {
		t.Fatalf("MoveTo: %v", err)
	}
	want := math.Sqrt2
	if math.Abs(e1.Length()-want) > 1e-12 || math.Abs(e2.Length()-want) > 1e-12 {
		t.Errorf("lengths after move = %v, %v, want %v", e1.Length(), e2.Length(), want)
	}
	if err := shared.MoveTo(math.NaN(), 0); !errors.Is(err, shapes.ErrInvalidInput) {
		t.Errorf("MoveTo(NaN) error = %v, want ErrInvalidInput", err)
	}
	if shared.X != 1 || shared.Y != 1 {
		t.Errorf("failed move changed node to %v", shared)
	}
}

func TestNewElementNilNode(t *testing.T) {
	n, _ := NewNode(0, 0, Free)
	if _, err := NewElement(n, nil); !errors.Is(err, shapes.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestFixity(t *testing.T) {
	tests := []struct {
		in   string
		want Fixity
	}{
		{"free", Free},
		{"pin", Pin},
		{" Fixed ", Fixed},
		{"ROLLER", Roller},
	}
	for _, tt := range tests {
		got, err := ParseFixity(tt.in)
		if err != nil {
			t.Errorf("ParseFixity(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFixity(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if got.String() != fixityNames[tt.want] {
			t.Errorf("String() = %q", got.String())
		}
	}
	if _, err := ParseFixity("hinge"); !errors.Is(err, shapes.ErrInvalidInput) {
		t.Errorf("ParseFixity(hinge) error = %v, want ErrInvalidInput", err)
	}
	if got := Fixity(7).String(); got != "Fixity(7)" {
		t.Errorf("String() = %q", got)
	}
}
