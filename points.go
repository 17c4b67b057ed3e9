package circlefit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// validateXY checks that x and y form a well-shaped, finite 2-D point set of
// at least min points. Shape is checked before count, count before values, so
// callers report the most structural problem first.
func validateXY(x, y []float64, min int) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: len(x)=%d len(y)=%d", ErrShapeMismatch, len(x), len(y))
	}
	if len(x) < min {
		return fmt.Errorf("%w: got %d, need at least %d", ErrTooFewPoints, len(x), min)
	}
	if err := validateFinite("x", x); err != nil {
		return err
	}
	return validateFinite("y", y)
}

func validateFinite(name string, vs []float64) error {
	for i, v := range vs {
		if !isFinite(v) {
			return fmt.Errorf("%w: %s[%d] = %v", ErrNonFinite, name, i, v)
		}
	}
	return nil
}

// pointMatrix packs parallel coordinate slices into a row-per-point matrix.
// The slices must share one non-zero length; callers validate before packing.
func pointMatrix(cols ...[]float64) *mat.Dense {
	m := len(cols[0])
	n := len(cols)
	d := mat.NewDense(m, n, nil)
	for j, col := range cols {
		for i, v := range col {
			d.Set(i, j, v)
		}
	}
	return d
}
