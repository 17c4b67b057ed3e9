package circlefit

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// collinearSample bounds the number of points examined by the first stage of
// the staged collinearity test. Deliberately independent of curvatureSample;
// the two limits are tuned separately.
const collinearSample = 64

// epsMachine is the double-precision machine epsilon used in the rank
// tolerance.
const epsMachine = 0x1p-52

// Collinear reports whether the 2-D points (x, y) lie on a single straight
// line, within numerical rank tolerance. Fewer than three points are
// trivially collinear.
//
// Large inputs are tested in two stages: a bounded sample of the first
// points, then, only if the sample looks collinear, a confirming pass over
// the full set. A non-collinear sample settles the question immediately, so a
// curved set is cheap to clear no matter how long it is.
func Collinear(x, y []float64) (bool, error) {
	if err := validateXY(x, y, 0); err != nil {
		return false, err
	}
	if len(x) < 3 {
		return true, nil
	}
	return collinearStaged(pointMatrix(x, y), collinearSample), nil
}

// Collinear3D is Collinear for 3-D points.
func Collinear3D(x, y, z []float64) (bool, error) {
	if len(x) != len(y) || len(y) != len(z) {
		return false, fmt.Errorf("%w: len(x)=%d len(y)=%d len(z)=%d", ErrShapeMismatch, len(x), len(y), len(z))
	}
	if err := validateFinite("x", x); err != nil {
		return false, err
	}
	if err := validateFinite("y", y); err != nil {
		return false, err
	}
	if err := validateFinite("z", z); err != nil {
		return false, err
	}
	if len(x) < 3 {
		return true, nil
	}
	return collinearStaged(pointMatrix(x, y, z), collinearSample), nil
}

// CollinearComplex treats each element of z as a point in the complex plane
// (real part x, imaginary part y) and reports whether the points are
// collinear.
func CollinearComplex(z []complex128) (bool, error) {
	x := make([]float64, len(z))
	y := make([]float64, len(z))
	for i, v := range z {
		if !isFinite(real(v)) || !isFinite(imag(v)) {
			return false, fmt.Errorf("%w: z[%d] = %v", ErrNonFinite, i, v)
		}
		x[i], y[i] = real(v), imag(v)
	}
	if len(z) < 3 {
		return true, nil
	}
	return collinearStaged(pointMatrix(x, y), collinearSample), nil
}

// CollinearPoints generalizes the test to N dimensions: pts holds one point
// per row, one coordinate per column. Fewer than three rows, or fewer than
// two columns, is trivially collinear.
func CollinearPoints(pts mat.Matrix) (bool, error) {
	m, n := pts.Dims()
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if v := pts.At(i, j); !isFinite(v) {
				return false, fmt.Errorf("%w: pts(%d,%d) = %v", ErrNonFinite, i, j, v)
			}
		}
	}
	if m < 3 || n < 2 {
		return true, nil
	}
	return collinearStaged(mat.DenseCopyOf(pts), collinearSample), nil
}

// collinearStaged applies the two-stage collinearity test to a point matrix
// with at least three rows and two columns. The first stage examines at most
// sample points; sample <= 0 disables staging and tests the full set in one
// pass.
//
// A non-collinear verdict on the sample is trusted as-is: a curved prefix
// cannot straighten out into a line. A collinear verdict on a sample smaller
// than the whole set proves nothing about the tail, so only the confirming
// full pass decides. The asymmetry is observable: a sample of coincident
// points has rank zero, reads as non-collinear, and short-circuits even when
// the remaining points all sit on one line.
func collinearStaged(pts *mat.Dense, sample int) bool {
	m, _ := pts.Dims()
	k := m
	if sample > 0 && sample < m {
		k = sample
	}
	if !collinearClosed(pts, k) {
		return false
	}
	if k == m {
		return true
	}
	return collinearClosed(pts, m)
}

// collinearClosed reports whether the first k points of pts are collinear.
// The test forms the closed loop of consecutive differences, row i holding
// point (i+1) mod k minus point i, and checks that the loop has numerical
// rank exactly one. Rank zero (all points coincident) does not count as
// collinear: there is no line direction to speak of.
func collinearClosed(pts *mat.Dense, k int) bool {
	_, n := pts.Dims()
	diff := mat.NewDense(k, n, nil)
	for i := 0; i < k; i++ {
		next := (i + 1) % k
		for j := 0; j < n; j++ {
			diff.Set(i, j, pts.At(next, j)-pts.At(i, j))
		}
	}
	return matrixRank(diff) == 1
}

// matrixRank computes the numerical rank of a from its singular values,
// counting those above the conventional tolerance max(rows, cols) * sigmaMax
// * machine epsilon.
func matrixRank(a mat.Matrix) int {
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDNone) {
		return 0
	}
	sv := svd.Values(nil)
	if len(sv) == 0 || sv[0] <= 0 {
		return 0
	}
	r, c := a.Dims()
	tol := float64(max(r, c)) * sv[0] * epsMachine
	rank := 0
	for _, s := range sv {
		if s > tol {
			rank++
		}
	}
	return rank
}
