package analysis

import (
	"errors"
	"math"
	"testing"
)

// TestAsymmetryIndex verifies the index is relative to the stronger side
// and symmetric in its arguments.
func TestAsymmetryIndex(t *testing.T) {
	tests := []struct {
		name        string
		left, right float64
		want        float64
	}{
		{"balanced", 100, 100, 0},
		{"right weaker", 100, 90, 10},
		{"left weaker", 90, 100, 10},
		{"large gap", 200, 100, 50},
		{"one side zero", 100, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AsymmetryIndex(tt.left, tt.right)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AsymmetryIndex(%v, %v) = %v, want %v", tt.left, tt.right, got, tt.want)
			}
		})
	}
}

// TestAsymmetryIndexErrors covers the undefined and invalid inputs.
func TestAsymmetryIndexErrors(t *testing.T) {
	if _, err := AsymmetryIndex(0, 0); !errors.Is(err, ErrDivisionUndefined) {
		t.Errorf("both zero error = %v, want ErrDivisionUndefined", err)
	}
	if _, err := AsymmetryIndex(-5, 100); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("negative measure error = %v, want ErrInvalidParameter", err)
	}
}

// TestDetectAsymmetry verifies per-pair flagging against the default
// 10% threshold.
func TestDetectAsymmetry(t *testing.T) {
	left := []float64{100, 100, 100}
	right := []float64{98, 85, 100}

	out, err := DetectAsymmetry(left, right, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("got %d results, want 3", len(out))
	}
	wantFlagged := []bool{false, true, false}
	for i, w := range wantFlagged {
		if out[i].Flagged != w {
			t.Errorf("pair %d (index %.1f%%): flagged = %v, want %v", i, out[i].IndexPct, out[i].Flagged, w)
		}
	}
}

// TestDetectAsymmetryErrors covers empty input, mismatched pairs and a
// bad threshold.
func TestDetectAsymmetryErrors(t *testing.T) {
	if _, err := DetectAsymmetry(nil, nil, 0); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("empty error = %v, want ErrInsufficientData", err)
	}
	if _, err := DetectAsymmetry([]float64{1, 2}, []float64{1}, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("mismatch error = %v, want ErrInvalidParameter", err)
	}
	if _, err := DetectAsymmetry([]float64{1}, []float64{1}, -5); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("bad threshold error = %v, want ErrInvalidParameter", err)
	}
}
