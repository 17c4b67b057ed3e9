// Package circlefit fits circles to 2-D point sets and derives curvature,
// fit-quality, and local-radius statistics from the fits.
//
// The fitting routines use the algebraic least-squares formulation: the
// residual x^2 + y^2 - a*x - b*y - c is minimized, which keeps every fit a
// single 3x3 linear solve with no iteration and no starting guess. Collinear
// input has no finite circle; Collinear and its variants detect that case by
// testing the numerical rank of the closed loop of consecutive point
// differences, and the fitting routines run the same test before solving.
//
// All functions are pure and safe for concurrent use.
package circlefit
