package circlefit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircleRMSE(t *testing.T) {
	t.Parallel()

	compassX := []float64{0, 1, 0, -1}
	compassY := []float64{1, 0, -1, 0}

	t.Run("exact fit scores zero", func(t *testing.T) {
		t.Parallel()
		got, err := CircleRMSE(compassX, compassY, 1)
		require.NoError(t, err)
		assert.InDelta(t, 0, got, 1e-12)
	})

	t.Run("constant residual", func(t *testing.T) {
		t.Parallel()
		// Every compass point sits at distance 1, so against radius 2 each
		// residual is exactly 1.
		got, err := CircleRMSE(compassX, compassY, 2)
		require.NoError(t, err)
		assert.InDelta(t, 1, got, 1e-12)
	})

	t.Run("zero radius scores distance to center", func(t *testing.T) {
		t.Parallel()
		got, err := CircleRMSE(compassX, compassY, 0)
		require.NoError(t, err)
		assert.InDelta(t, 1, got, 1e-12)
	})

	t.Run("offset candidate center", func(t *testing.T) {
		t.Parallel()
		x, y := circleTestPoints(8, 1.5, 2, 3)
		got, err := CircleRMSEAt(x, y, 1.5, 2, 3)
		require.NoError(t, err)
		assert.InDelta(t, 0, got, 1e-12)

		// The same points scored from the origin are far off.
		far, err := CircleRMSEAt(x, y, 1.5, 0, 0)
		require.NoError(t, err)
		assert.Greater(t, far, 0.5)
	})
}

func TestCircleRMSE_CollinearGuard(t *testing.T) {
	t.Parallel()

	t.Run("small straight sample is rejected", func(t *testing.T) {
		t.Parallel()
		x, y := lineTestPoints(4, 0, 0, 1, 2)
		_, err := CircleRMSE(x, y, 1)
		assert.ErrorIs(t, err, ErrCollinear)
	})

	t.Run("guard covers up to nineteen points", func(t *testing.T) {
		t.Parallel()
		x, y := lineTestPoints(19, 0, 0, 1, 2)
		_, err := CircleRMSE(x, y, 1)
		assert.ErrorIs(t, err, ErrCollinear)
	})

	t.Run("twenty points skip the guard", func(t *testing.T) {
		t.Parallel()
		// Large samples are scored as-is even when straight; the residuals
		// are still well-defined numbers.
		x, y := lineTestPoints(20, 0, 0, 1, 2)
		got, err := CircleRMSE(x, y, 1)
		require.NoError(t, err)
		assert.Greater(t, got, 0.0)
		assert.True(t, !math.IsNaN(got) && !math.IsInf(got, 0))
	})

	t.Run("small curved sample passes the guard", func(t *testing.T) {
		t.Parallel()
		x, y := circleTestPoints(6, 2, 0, 0)
		got, err := CircleRMSE(x, y, 2)
		require.NoError(t, err)
		assert.InDelta(t, 0, got, 1e-12)
	})
}

func TestCircleRMSE_Validation(t *testing.T) {
	t.Parallel()

	x, y := circleTestPoints(6, 1, 0, 0)

	t.Run("negative radius", func(t *testing.T) {
		t.Parallel()
		_, err := CircleRMSE(x, y, -1)
		assert.ErrorIs(t, err, ErrInvalidParam)
	})

	t.Run("non-finite radius", func(t *testing.T) {
		t.Parallel()
		_, err := CircleRMSE(x, y, math.NaN())
		assert.ErrorIs(t, err, ErrInvalidParam)
		_, err = CircleRMSE(x, y, math.Inf(1))
		assert.ErrorIs(t, err, ErrInvalidParam)
	})

	t.Run("non-finite center", func(t *testing.T) {
		t.Parallel()
		_, err := CircleRMSEAt(x, y, 1, math.NaN(), 0)
		assert.ErrorIs(t, err, ErrInvalidParam)
		_, err = CircleRMSEAt(x, y, 1, 0, math.Inf(-1))
		assert.ErrorIs(t, err, ErrInvalidParam)
	})

	t.Run("shape and count come first", func(t *testing.T) {
		t.Parallel()
		_, err := CircleRMSE([]float64{1, 2, 3}, []float64{1, 2}, 1)
		assert.ErrorIs(t, err, ErrShapeMismatch)
		_, err = CircleRMSE([]float64{1, 2}, []float64{1, 2}, 1)
		assert.ErrorIs(t, err, ErrTooFewPoints)
	})

	t.Run("non-finite points", func(t *testing.T) {
		t.Parallel()
		_, err := CircleRMSE([]float64{1, math.NaN(), 3}, []float64{1, 2, 3}, 1)
		assert.ErrorIs(t, err, ErrNonFinite)
	})
}
