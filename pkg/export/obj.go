package export

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"fortio.org/log"

	"github.com/taigrr/mechdraw/pkg/render"
	"github.com/taigrr/mechdraw/pkg/shapes"
)

// OBJ is a render surface that exports line geometry as Wavefront OBJ
// vertices (`v x y 0`) and line elements (`l i j ...`).
type OBJ struct {
	*render.Recorder

	Name string
}

// NewOBJ returns an empty OBJ surface.
func NewOBJ(name string) *OBJ {
	return &OBJ{Recorder: render.NewRecorder(), Name: name}
}

// Encode writes the drawing in OBJ form. Closed strips repeat their
// first vertex index at the end.
func (o *OBJ) Encode(w io.Writer) error {
	lines, _ := polylines(o.Recorder)
	if len(lines) == 0 {
		return ErrEmpty
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# mechdraw\n")
	if o.Name != "" {
		fmt.Fprintf(bw, "o %s\n", o.Name)
	}
	next := 1
	for _, pl := range lines {
		for _, p := range pl.Points {
			fmt.Fprintf(bw, "v %s %s 0\n", formatFloat(p.X), formatFloat(p.Y))
		}
		bw.WriteString("l")
		for i := range pl.Points {
			fmt.Fprintf(bw, " %d", next+i)
		}
		if pl.Closed {
			fmt.Fprintf(bw, " %d", next)
		}
		bw.WriteString("\n")
		next += len(pl.Points)
	}
	return bw.Flush()
}

// Save writes the drawing to path. Nothing is written when there is no
// line geometry.
func (o *OBJ) Save(path string) error {
	var buf bytes.Buffer
	if err := o.Encode(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write OBJ file: %w", err)
	}
	log.Infof("Wrote %s (%d commands)", path, o.Len())
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ReadOBJ parses the vertices and line elements of an OBJ file. Faces
// and other statements are ignored. A line element whose last index
// repeats its first is returned as a closed strip.
func ReadOBJ(r io.Reader) ([]Polyline, error) {
	var positions []shapes.Point
	var out []Polyline

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: invalid vertex (need x y)", lineNum)
			}
			x, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid x coordinate: %w", lineNum, err)
			}
			y, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid y coordinate: %w", lineNum, err)
			}
			positions = append(positions, shapes.Pt(x, y))
		case "l":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: line element needs 2 vertices", lineNum)
			}
			idx := make([]int, 0, len(fields)-1)
			for _, f := range fields[1:] {
				// "l v/vt" form: only the vertex index matters
				f, _, _ = strings.Cut(f, "/")
				i, err := parseIndex(f, len(positions))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNum, err)
				}
				idx = append(idx, i)
			}
			pl := Polyline{}
			if len(idx) > 2 && idx[0] == idx[len(idx)-1] {
				pl.Closed = true
				idx = idx[:len(idx)-1]
			}
			for _, i := range idx {
				pl.Points = append(pl.Points, positions[i])
			}
			out = append(out, pl)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ: %w", err)
	}
	return out, nil
}

// parseIndex converts a 1-based or negative relative OBJ index to 0-based.
func parseIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", s)
	}
	if i < 0 {
		i = n + i
	} else {
		i--
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("index %s out of range (%d vertices)", s, n)
	}
	return i, nil
}
