package geom

import (
	"math"
	"testing"
)

func TestScalingTransformRoundTrip(t *testing.T) {
	seeds := []complex128{
		complex(-2, -2),
		complex(2, 2),
		complex(-1, 1.5),
	}

	st, ok := NewScalingTransform(seeds, -1, 1)
	if !ok {
		t.Fatalf("NewScalingTransform returned false for non-empty seeds")
	}

	for _, z := range seeds {
		scaled := st.Forward(z)
		if !InRange(scaled, -1, 1) {
			t.Fatalf("Forward(%v) = %v, out of [-1, 1] range", z, scaled)
		}
		back := st.Inverse(scaled)
		if math.Abs(real(back)-real(z)) > 1e-9 || math.Abs(imag(back)-imag(z)) > 1e-9 {
			t.Fatalf("Inverse(Forward(%v)) = %v, want %v", z, back, z)
		}
	}
}

func TestNewScalingTransformEmptySeeds(t *testing.T) {
	if _, ok := NewScalingTransform(nil, -1, 1); ok {
		t.Fatalf("NewScalingTransform(nil, ...) should report false")
	}
}
