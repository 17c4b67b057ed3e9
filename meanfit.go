package circlefit

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// LocalRadii returns the local circle-fit radius profile of the trajectory.
// For each index i a window of width 2h+1, h = window/2, is centered on i and
// a circle is fitted to the points it covers; radii[i] is that circle's
// radius. Indices closer than h to either end have no complete window and
// stay zero.
//
// A window too wide for the trajectory (2h+1 points when fewer exist) fails
// with ErrInvalidParam, and a window of collinear points fails with
// ErrCollinear wrapped with the offending center index.
func LocalRadii(x, y []float64, window int) ([]float64, error) {
	if err := validateXY(x, y, 3); err != nil {
		return nil, err
	}
	if window < 2 {
		return nil, fmt.Errorf("%w: window %d, want an integer >= 2", ErrInvalidParam, window)
	}
	h := window / 2
	if 2*h+1 > len(x) {
		return nil, fmt.Errorf("%w: window %d spans %d points, only %d available", ErrInvalidParam, window, 2*h+1, len(x))
	}
	radii := make([]float64, len(x))
	for i := h; i < len(x)-h; i++ {
		fit, err := FitCircle(x[i-h:i+h+1], y[i-h:i+h+1])
		if err != nil {
			return nil, fmt.Errorf("window at index %d: %w", i, err)
		}
		radii[i] = fit.Radius
	}
	return radii, nil
}

// MeanFitRadius estimates the radius of a trajectory as the mean of its
// local circle-fit radii, windows of width 2h+1 (h = window/2) slid along
// the points. Fitting locally keeps slow drift, a spiraling path for
// instance, from dragging one global fit toward a compromise circle that
// matches no part of the data.
func MeanFitRadius(x, y []float64, window int) (float64, error) {
	radii, err := LocalRadii(x, y, window)
	if err != nil {
		return 0, err
	}
	h := window / 2
	return stat.Mean(radii[h:len(radii)-h], nil), nil
}
