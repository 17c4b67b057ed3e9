package circlefit

import (
	"fmt"
	"math"
)

// rmseGuardLimit is the point count below which the scoring routines check
// for collinear input. Larger samples carry enough spread that a rank test on
// every call buys nothing, so they skip it.
const rmseGuardLimit = 20

// CircleRMSE scores the points against a candidate circle of the given
// radius centered at the origin. See CircleRMSEAt.
func CircleRMSE(x, y []float64, radius float64) (float64, error) {
	return CircleRMSEAt(x, y, radius, 0, 0)
}

// CircleRMSEAt returns the root-mean-squared radial residual of the points
// against a candidate circle of the given radius centered at (cx, cy):
//
//	RMSE = sqrt(mean((dist(p, center) - radius)^2))
//
// The candidate is supplied, not fitted, so a caller can score one circle
// against many point sets or sweep radii against one set. The radius must be
// finite and non-negative; zero is allowed and scores the points against the
// center itself.
//
// Small point sets (fewer than 20 points) are first checked for
// collinearity, over every point with no sampling bound, and fail with
// ErrCollinear: a radial residual against a straight run is noise, not a
// score.
func CircleRMSEAt(x, y []float64, radius, cx, cy float64) (float64, error) {
	if err := validateXY(x, y, 3); err != nil {
		return 0, err
	}
	if !isFinite(radius) || radius < 0 {
		return 0, fmt.Errorf("%w: radius %v, want a finite value >= 0", ErrInvalidParam, radius)
	}
	if !isFinite(cx) || !isFinite(cy) {
		return 0, fmt.Errorf("%w: center (%v, %v), want finite coordinates", ErrInvalidParam, cx, cy)
	}
	if len(x) < rmseGuardLimit && collinearStaged(pointMatrix(x, y), 0) {
		return 0, fmt.Errorf("%w: rmse against a circle is undefined", ErrCollinear)
	}
	return radialRMSE(x, y, radius, cx, cy), nil
}

// radialRMSE is the root-mean-squared distance residual of the points from
// the circle of the given radius centered at (cx, cy). Callers validate.
func radialRMSE(x, y []float64, radius, cx, cy float64) float64 {
	var sum float64
	for i := range x {
		d := math.Hypot(x[i]-cx, y[i]-cy) - radius
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(x)))
}
