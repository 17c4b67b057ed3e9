package circlefit

import "math"

// FitResult holds the output of CurvatureFit.
type FitResult struct {
	// Curvature is the absolute curvature (1/radius) of the least-squares
	// circle, or zero when the points are collinear.
	Curvature float64

	// RMSE is the fit error in curvature space. It is NaN for collinear
	// input: a straight line has a well-defined curvature of zero but no
	// circle to measure residuals against.
	RMSE float64
}

// Degenerate reports whether the fit hit collinear input, making Curvature a
// defined zero rather than a measured value.
func (r FitResult) Degenerate() bool {
	return math.IsNaN(r.RMSE)
}

// Curvature returns the absolute curvature of the least-squares circle
// through the points. Collinear input is not an error here: a straight
// trajectory simply has curvature zero.
func Curvature(x, y []float64) (float64, error) {
	res, err := CurvatureFit(x, y)
	if err != nil {
		return 0, err
	}
	return res.Curvature, nil
}

// CurvatureFit fits a circle to the points by algebraic least squares and
// returns its absolute curvature together with the curvature-space fit
// error
//
//	RMSE = sqrt(mean((1/dist(p, center) - curvature)^2))
//
// which weights misfit near the center more heavily than radial distance
// would. Collinear input yields {Curvature: 0, RMSE: NaN} with a nil error;
// use FitResult.Degenerate to detect it.
func CurvatureFit(x, y []float64) (FitResult, error) {
	if err := validateXY(x, y, 3); err != nil {
		return FitResult{}, err
	}
	if collinearStaged(pointMatrix(x, y), curvatureSample) {
		return FitResult{Curvature: 0, RMSE: math.NaN()}, nil
	}
	cx, cy, c, err := solveCircleSystem(x, y)
	if err != nil {
		return FitResult{}, err
	}
	k := math.Abs(1 / math.Sqrt(cx*cx+cy*cy+c))
	var sum float64
	for i := range x {
		d := 1/math.Hypot(x[i]-cx, y[i]-cy) - k
		sum += d * d
	}
	return FitResult{
		Curvature: k,
		RMSE:      math.Sqrt(sum / float64(len(x))),
	}, nil
}
