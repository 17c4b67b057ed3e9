package circlefit

import (
	"errors"
	"math"
	"testing"
)

func TestFitCircle_ExactCircles(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		r, cx, cy float64
	}{
		{"unit circle at origin", 8, 1, 0, 0},
		{"small offset circle", 12, 0.25, 3, -2},
		{"large circle", 50, 180, -40, 75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := circleTestPoints(tt.n, tt.r, tt.cx, tt.cy)
			fit, err := FitCircle(x, y)
			if err != nil {
				t.Fatalf("FitCircle returned error: %v", err)
			}
			if math.Abs(fit.Radius-tt.r) > 1e-9*tt.r {
				t.Errorf("Radius = %v, want %v", fit.Radius, tt.r)
			}
			if math.Abs(fit.CenterX-tt.cx) > 1e-8 || math.Abs(fit.CenterY-tt.cy) > 1e-8 {
				t.Errorf("center = (%v, %v), want (%v, %v)", fit.CenterX, fit.CenterY, tt.cx, tt.cy)
			}
			if fit.RMSE > 1e-9 {
				t.Errorf("RMSE = %v, want ~0 for exact points", fit.RMSE)
			}
		})
	}
}

func TestFitCircle_ThreePoints(t *testing.T) {
	// Three points determine the circle exactly: (0,0), (2,0), (1,1) lie on
	// the circle centered at (1,0) with radius 1.
	fit, err := FitCircle([]float64{0, 2, 1}, []float64{0, 0, 1})
	if err != nil {
		t.Fatalf("FitCircle returned error: %v", err)
	}
	if math.Abs(fit.CenterX-1) > 1e-12 || math.Abs(fit.CenterY) > 1e-12 {
		t.Errorf("center = (%v, %v), want (1, 0)", fit.CenterX, fit.CenterY)
	}
	if math.Abs(fit.Radius-1) > 1e-12 {
		t.Errorf("Radius = %v, want 1", fit.Radius)
	}
}

func TestFitCircle_NoisyCircle(t *testing.T) {
	// Radial ripple of amplitude 0.01 around r=5. The fit should land within
	// the ripple and report an RMSE of its order.
	n := 60
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		r := 5 + 0.01*math.Sin(7*theta)
		x[i] = r * math.Cos(theta)
		y[i] = r * math.Sin(theta)
	}

	fit, err := FitCircle(x, y)
	if err != nil {
		t.Fatalf("FitCircle returned error: %v", err)
	}
	if math.Abs(fit.Radius-5) > 0.02 {
		t.Errorf("Radius = %v, want 5 +/- 0.02", fit.Radius)
	}
	if fit.RMSE <= 0 || fit.RMSE > 0.02 {
		t.Errorf("RMSE = %v, want within ripple amplitude", fit.RMSE)
	}
}

func TestFitCircle_Degenerate(t *testing.T) {
	_, err := FitCircle([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8})
	if !errors.Is(err, ErrCollinear) {
		t.Errorf("collinear input: got %v, want ErrCollinear", err)
	}

	// Coincident points pass the rank pre-check (rank zero, not one) but
	// produce a singular normal system, caught at the solve.
	_, err = FitCircle([]float64{1, 1, 1, 1, 1}, []float64{1, 1, 1, 1, 1})
	if !errors.Is(err, ErrCollinear) {
		t.Errorf("coincident input: got %v, want ErrCollinear", err)
	}
}

func TestFitCircle_StraightPrefixCurvedTail(t *testing.T) {
	// The degeneracy pre-check samples a prefix; a straight run followed by
	// an arc must still fit, because the confirming full pass clears it.
	x, y := lineTestPoints(50, 0, 0, 0.1, 0)
	arcX, arcY := circleTestPoints(30, 3, 5, 3)
	x = append(x, arcX...)
	y = append(y, arcY...)

	fit, err := FitCircle(x, y)
	if err != nil {
		t.Fatalf("FitCircle returned error: %v", err)
	}
	if fit.Radius <= 0 || !isFinite(fit.Radius) {
		t.Errorf("Radius = %v, want a positive finite value", fit.Radius)
	}
}

func TestFitCircle_Validation(t *testing.T) {
	_, err := FitCircle([]float64{1, 2, 3}, []float64{1, 2})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("mismatched lengths: got %v, want ErrShapeMismatch", err)
	}

	_, err = FitCircle([]float64{1, 2}, []float64{3, 4})
	if !errors.Is(err, ErrTooFewPoints) {
		t.Errorf("two points: got %v, want ErrTooFewPoints", err)
	}

	_, err = FitCircle([]float64{1, 2, math.NaN()}, []float64{3, 4, 5})
	if !errors.Is(err, ErrNonFinite) {
		t.Errorf("NaN input: got %v, want ErrNonFinite", err)
	}
}
