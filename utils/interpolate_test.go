package utils

import (
	"math"
	"testing"
)

func TestCubicInterpolateEndpoints(t *testing.T) {
	t.Parallel()

	// At x=0 the result is y1, at x=1 it is y2.
	y0, y1, y2, y3 := float32(0.1), float32(0.4), float32(0.8), float32(0.3)

	if got := CubicInterpolate(y0, y1, y2, y3, 0); got != y1 {
		t.Errorf("CubicInterpolate(..., 0) = %v, want %v", got, y1)
	}

	got := CubicInterpolate(y0, y1, y2, y3, 1)
	if math.Abs(float64(got-y2)) > 1e-6 {
		t.Errorf("CubicInterpolate(..., 1) = %v, want %v", got, y2)
	}
}

func TestCubicInterpolateLinearSegment(t *testing.T) {
	t.Parallel()

	// Four collinear points interpolate linearly.
	got := CubicInterpolate(0, 1, 2, 3, 0.5)
	if math.Abs(float64(got)-1.5) > 1e-6 {
		t.Errorf("CubicInterpolate on a line = %v, want 1.5", got)
	}
}
