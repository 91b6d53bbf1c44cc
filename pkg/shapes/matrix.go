package shapes

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// RotationMatrix returns the 2x2 counter-clockwise rotation matrix
//
//	| cos θ  -sin θ |
//	| sin θ   cos θ |
func RotationMatrix(theta float64) *mat.Dense {
	sin, cos := math.Sincos(theta)
	return mat.NewDense(2, 2, []float64{
		cos, -sin,
		sin, cos,
	})
}

// rotateRows rotates every row of an n x 2 coordinate matrix about the
// origin in one product: rows · Rᵀ.
func rotateRows(rows mat.Matrix, theta float64) *mat.Dense {
	var out mat.Dense
	out.Mul(rows, RotationMatrix(theta).T())
	return &out
}

func checkLinearMap(m mat.Matrix) error {
	if m == nil {
		return fmt.Errorf("linear map is nil: %w", ErrInvalidInput)
	}
	if r, c := m.Dims(); r != 2 || c != 2 {
		return fmt.Errorf("linear map must be 2x2, got %dx%d: %w", r, c, ErrInvalidInput)
	}
	return nil
}

// pointsToRows packs points into an n x 2 matrix.
func pointsToRows(pts []Point) *mat.Dense {
	data := make([]float64, 0, 2*len(pts))
	for _, p := range pts {
		data = append(data, p.X, p.Y)
	}
	return mat.NewDense(len(pts), 2, data)
}

// rowsToPoints unpacks an n x 2 matrix into points.
func rowsToPoints(m mat.Matrix) []Point {
	r, _ := m.Dims()
	pts := make([]Point, r)
	for i := range pts {
		pts[i] = Point{m.At(i, 0), m.At(i, 1)}
	}
	return pts
}
