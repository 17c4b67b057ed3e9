package circlefit

import "errors"

// Sentinel errors returned by the validation and fitting routines. Every
// error returned from this package wraps one of these; callers classify with
// errors.Is.
var (
	// ErrShapeMismatch reports coordinate inputs that disagree in length.
	ErrShapeMismatch = errors.New("coordinate inputs differ in shape")

	// ErrNonFinite reports a NaN or infinite coordinate where finite real
	// values are required.
	ErrNonFinite = errors.New("non-finite coordinate value")

	// ErrTooFewPoints reports a point count below the operation's minimum.
	ErrTooFewPoints = errors.New("too few points")

	// ErrInvalidParam reports a scalar parameter (candidate radius, window
	// width, candidate center) outside its allowed range.
	ErrInvalidParam = errors.New("invalid scalar parameter")

	// ErrCollinear reports degenerate geometry: the points lie on, or are
	// numerically indistinguishable from, a single straight line, and the
	// requested computation needs a well-posed circle.
	ErrCollinear = errors.New("points are collinear or nearly collinear")
)
