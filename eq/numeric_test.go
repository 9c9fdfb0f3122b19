package eq

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		value, min, max, want float64
	}{
		{0, -96, 12, 0},
		{-100, -96, 12, -96},
		{20, -96, 12, 12},
		{-96, -96, 12, -96},
		{12, -96, 12, 12},
		{5, 10, 0, 5}, // swapped bounds
		{math.Inf(-1), -96, 12, -96},
		{math.Inf(1), -96, 12, 12},
	}

	for _, tt := range tests {
		if got := Clamp(tt.value, tt.min, tt.max); got != tt.want {
			t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", tt.value, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestClampNaNPassesThrough(t *testing.T) {
	// NaN compares false against both bounds and is returned unchanged;
	// callers filter non-finite values with IsFinite.
	if got := Clamp(math.NaN(), -96, 12); !math.IsNaN(got) {
		t.Fatalf("Clamp(NaN) = %v, want NaN", got)
	}
}

func TestIsFinite(t *testing.T) {
	for _, v := range []float64{0, 1, -96, 12, 1e300} {
		if !IsFinite(v) {
			t.Fatalf("IsFinite(%v) = false, want true", v)
		}
	}

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if IsFinite(v) {
			t.Fatalf("IsFinite(%v) = true, want false", v)
		}
	}
}

func TestDBConversions(t *testing.T) {
	tests := []struct {
		db     float64
		linear float64
	}{
		{0, 1},
		{20, 10},
		{-20, 0.1},
		{6.020599913279624, 2},
	}

	for _, tt := range tests {
		if got := DBToLinear(tt.db); math.Abs(got-tt.linear) > 1e-12 {
			t.Fatalf("DBToLinear(%v) = %v, want %v", tt.db, got, tt.linear)
		}

		if got := LinearToDB(tt.linear); math.Abs(got-tt.db) > 1e-12 {
			t.Fatalf("LinearToDB(%v) = %v, want %v", tt.linear, got, tt.db)
		}
	}
}

func TestLinearToDBEdgeCases(t *testing.T) {
	if got := LinearToDB(0); !math.IsInf(got, -1) {
		t.Fatalf("LinearToDB(0) = %v, want -Inf", got)
	}

	if got := LinearToDB(-1); !math.IsNaN(got) {
		t.Fatalf("LinearToDB(-1) = %v, want NaN", got)
	}
}
