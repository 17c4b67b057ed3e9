// This file provides synthetic trajectory generation for demos and tests.

package trajio

import (
	"math"
	"math/rand"
)

// Circle returns n points evenly spaced around the circle of radius r
// centered at (cx, cy), starting at angle zero.
func Circle(n int, r, cx, cy float64) (x, y []float64) {
	x = make([]float64, 0, max(n, 0))
	y = make([]float64, 0, max(n, 0))
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		x = append(x, cx+r*math.Cos(theta))
		y = append(y, cy+r*math.Sin(theta))
	}
	return x, y
}

// Arc returns n points evenly spaced along the circular arc of radius r
// centered at (cx, cy), sweeping from angle from to angle to (radians,
// endpoints included).
func Arc(n int, r, cx, cy, from, to float64) (x, y []float64) {
	x = make([]float64, 0, max(n, 0))
	y = make([]float64, 0, max(n, 0))
	for i := 0; i < n; i++ {
		theta := from
		if n > 1 {
			theta += (to - from) * float64(i) / float64(n-1)
		}
		x = append(x, cx+r*math.Cos(theta))
		y = append(y, cy+r*math.Sin(theta))
	}
	return x, y
}

// Line returns n points stepping from (x0, y0) by (dx, dy).
func Line(n int, x0, y0, dx, dy float64) (x, y []float64) {
	x = make([]float64, 0, max(n, 0))
	y = make([]float64, 0, max(n, 0))
	for i := 0; i < n; i++ {
		x = append(x, x0+float64(i)*dx)
		y = append(y, y0+float64(i)*dy)
	}
	return x, y
}

// Spiral returns n points on an archimedean spiral centered at the origin
// whose radius grows linearly from r0 to r1 over the given number of turns.
func Spiral(n int, r0, r1, turns float64) (x, y []float64) {
	x = make([]float64, 0, max(n, 0))
	y = make([]float64, 0, max(n, 0))
	total := 2 * math.Pi * turns
	for i := 0; i < n; i++ {
		frac := 0.0
		if n > 1 {
			frac = float64(i) / float64(n-1)
		}
		theta := total * frac
		r := r0 + (r1-r0)*frac
		x = append(x, r*math.Cos(theta))
		y = append(y, r*math.Sin(theta))
	}
	return x, y
}

// Noisy returns a copy of the trajectory with each coordinate perturbed by
// uniform noise in [-amp, amp]. The same seed reproduces the same
// perturbation.
func Noisy(x, y []float64, amp float64, seed int64) (nx, ny []float64) {
	rng := rand.New(rand.NewSource(seed))
	nx = make([]float64, len(x))
	ny = make([]float64, len(y))
	for i := range x {
		nx[i] = x[i] + (rng.Float64()*2-1)*amp
	}
	for i := range y {
		ny[i] = y[i] + (rng.Float64()*2-1)*amp
	}
	return nx, ny
}
