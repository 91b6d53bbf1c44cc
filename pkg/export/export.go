// Package export writes recorded drawings to 3D interchange formats as
// flat line geometry in the z = 0 plane.
package export

import (
	"github.com/taigrr/mechdraw/pkg/render"
	"github.com/taigrr/mechdraw/pkg/shapes"
)

// Polyline is one exported line strip. Closed strips connect their last
// point back to the first.
type Polyline struct {
	Points []shapes.Point
	Closed bool
	Cmd    render.Command
}

// polylines flattens the recorded commands into line strips in z order.
// Markers and text have no line geometry and are skipped.
func polylines(rec *render.Recorder) (out []Polyline, skipped int) {
	for _, c := range rec.Sorted() {
		switch c.Kind {
		case render.KindPolyline, render.KindArrow:
			out = append(out, Polyline{Points: c.Points, Cmd: c})
		case render.KindFilledPolygon:
			out = append(out, Polyline{Points: c.Points, Closed: true, Cmd: c})
		default:
			skipped++
		}
	}
	return out, skipped
}
