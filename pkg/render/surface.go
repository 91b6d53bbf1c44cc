// Package render turns shapes into drawing calls on a Surface and
// provides the surfaces that buffer those calls: a Recorder and a
// gonum/plot backed CanvasSurface that writes SVG or PNG.
package render

import (
	"image/color"

	"github.com/taigrr/mechdraw/pkg/shapes"
	"github.com/taigrr/mechdraw/pkg/style"
)

// Surface is the drawing backend consumed by the Draw functions.
// Coordinates are world units with y pointing up.
type Surface interface {
	DrawMarker(p shapes.Point, st style.Style) error
	DrawPolyline(pts []shapes.Point, st style.Style) error
	DrawFilledPolygon(pts []shapes.Point, fill color.Color, zOrder int) error
	// DrawArrow draws a vector from origin to origin+delta with its head at the tip.
	DrawArrow(origin, delta shapes.Point, st style.Style) error
	DrawText(p shapes.Point, text string, rotationDegrees float64, st style.Style) error
}
