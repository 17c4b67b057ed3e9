package circlefit

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// curvatureSample bounds the first stage of the degeneracy pre-check inside
// the fitting routines.
const curvatureSample = 50

// Circle describes a circle by center and radius.
type Circle struct {
	CenterX float64
	CenterY float64
	Radius  float64
}

// CircleFit is the result of FitCircle: the fitted circle and the
// root-mean-squared radial distance of the points from it.
type CircleFit struct {
	Circle
	RMSE float64
}

// FitCircle fits a circle to the points by algebraic least squares. The
// residual x^2 + y^2 - a*x - b*y - c is minimized over (a, b, c), which
// reduces to a 3x3 linear system; the circle is recovered as center
// (a/2, b/2) and radius sqrt(a^2/4 + b^2/4 + c).
//
// Collinear input has no circle to report and fails with ErrCollinear. A
// trajectory known to be curved, such as a window of a turning track, fits
// without the caller handling a degenerate case.
func FitCircle(x, y []float64) (CircleFit, error) {
	if err := validateXY(x, y, 3); err != nil {
		return CircleFit{}, err
	}
	if collinearStaged(pointMatrix(x, y), curvatureSample) {
		return CircleFit{}, fmt.Errorf("%w: cannot fit a circle", ErrCollinear)
	}
	cx, cy, c, err := solveCircleSystem(x, y)
	if err != nil {
		return CircleFit{}, err
	}
	r := math.Sqrt(cx*cx + cy*cy + c)
	return CircleFit{
		Circle: Circle{CenterX: cx, CenterY: cy, Radius: r},
		RMSE:   radialRMSE(x, y, r, cx, cy),
	}, nil
}

// solveCircleSystem assembles and solves the circle normal equations
//
//	[ Sx   Sy   L  ] [a]   [ Sxx + Syy      ]
//	[ Sxy  Syy  Sy ] [b] = [ sum (x^2+y^2)y ]
//	[ Sxx  Sxy  Sx ] [c]   [ sum (x^2+y^2)x ]
//
// by LU factorization, returning the circle center and the constant term c.
// Radius and curvature both derive from sqrt(cx^2 + cy^2 + c).
//
// The collinearity pre-check keeps most singular systems out, but nearly
// degenerate geometry can still slip through it. An exactly singular
// factorization is reported as ErrCollinear; an ill-conditioned but solvable
// one is accepted, matching the rank test's tolerance-based notion of
// "usable".
func solveCircleSystem(x, y []float64) (cx, cy, c float64, err error) {
	var sx, sy, sxx, syy, sxy, szx, szy float64
	for i := range x {
		xi, yi := x[i], y[i]
		z := xi*xi + yi*yi
		sx += xi
		sy += yi
		sxx += xi * xi
		syy += yi * yi
		sxy += xi * yi
		szx += z * xi
		szy += z * yi
	}
	n := float64(len(x))
	a := mat.NewDense(3, 3, []float64{
		sx, sy, n,
		sxy, syy, sy,
		sxx, sxy, sx,
	})
	b := mat.NewVecDense(3, []float64{sxx + syy, szy, szx})

	var lu mat.LU
	lu.Factorize(a)
	var sol mat.VecDense
	if err := lu.SolveVecTo(&sol, false, b); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 0) {
			return 0, 0, 0, fmt.Errorf("%w: circle normal equations are singular", ErrCollinear)
		}
	}
	return sol.AtVec(0) / 2, sol.AtVec(1) / 2, sol.AtVec(2), nil
}
