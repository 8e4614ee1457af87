package analysis

import (
	"errors"
	"math"
	"testing"
)

// TestSWCScalesWithFactor verifies linearity: doubling the effect-size
// factor doubles the threshold.
func TestSWCScalesWithFactor(t *testing.T) {
	s := seriesOf(t, "ath-1", 100, 110, 95, 120, 105, 90, 115)

	base, err := SmallestWorthwhileChange(s, 0.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doubled, err := SmallestWorthwhileChange(s, 0.4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(doubled-2*base) > 1e-9 {
		t.Errorf("SWC(0.4) = %v, want 2×SWC(0.2) = %v", doubled, 2*base)
	}
}

// TestSWCDefaultFactor verifies the 0.2 default kicks in for a zero factor.
func TestSWCDefaultFactor(t *testing.T) {
	s := seriesOf(t, "ath-1", 100, 110, 95, 120)

	explicit, err := SmallestWorthwhileChange(s, 0.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defaulted, err := SmallestWorthwhileChange(s, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if explicit != defaulted {
		t.Errorf("defaulted SWC %v differs from explicit %v", defaulted, explicit)
	}
}

// TestSWCErrors covers the minimum-sample and bad-factor failures.
func TestSWCErrors(t *testing.T) {
	single := seriesOf(t, "ath-1", 100)
	if _, err := SmallestWorthwhileChange(single, 0.2); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("single point error = %v, want ErrInsufficientData", err)
	}

	ok := seriesOf(t, "ath-1", 100, 110)
	if _, err := SmallestWorthwhileChange(ok, -0.2); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("negative factor error = %v, want ErrInvalidParameter", err)
	}
}

// TestConfidenceIntervalSymmetric verifies the interval is symmetric
// around the sample mean within floating-point tolerance.
func TestConfidenceIntervalSymmetric(t *testing.T) {
	values := []float64{98, 105, 110, 92, 101, 99, 104, 96}

	for _, level := range []float64{0.90, 0.95, 0.99} {
		iv, err := ConfidenceInterval(values, level)
		if err != nil {
			t.Fatalf("level %v: unexpected error: %v", level, err)
		}
		if math.Abs((iv.Mean-iv.Lower)-(iv.Upper-iv.Mean)) > 1e-9 {
			t.Errorf("level %v: interval not symmetric: [%v, %v] around %v", level, iv.Lower, iv.Upper, iv.Mean)
		}
		if iv.Lower >= iv.Upper {
			t.Errorf("level %v: degenerate interval [%v, %v]", level, iv.Lower, iv.Upper)
		}
	}
}

// TestConfidenceIntervalWidens verifies higher confidence gives a wider
// interval on the same sample.
func TestConfidenceIntervalWidens(t *testing.T) {
	values := []float64{98, 105, 110, 92, 101, 99, 104, 96}

	iv90, err := ConfidenceInterval(values, 0.90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	iv99, err := ConfidenceInterval(values, 0.99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if iv99.Upper-iv99.Lower <= iv90.Upper-iv90.Lower {
		t.Errorf("99%% interval (%v wide) should be wider than 90%% (%v wide)",
			iv99.Upper-iv99.Lower, iv90.Upper-iv90.Lower)
	}
}

// TestConfidenceIntervalSmallSample verifies the Student-t critical value
// is used for small samples: two points at 95% use t(1) = 12.706.
func TestConfidenceIntervalSmallSample(t *testing.T) {
	iv, err := ConfidenceInterval([]float64{90, 110}, 0.95)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// stddev = sqrt(200) ≈ 14.142, stderr = 10, margin = 127.06
	wantMargin := 12.706 * 10.0
	if math.Abs((iv.Upper-iv.Mean)-wantMargin) > 1e-6 {
		t.Errorf("margin = %v, want %v from t(1)", iv.Upper-iv.Mean, wantMargin)
	}
}

// TestConfidenceIntervalErrors covers the minimum-sample and
// unsupported-level failures.
func TestConfidenceIntervalErrors(t *testing.T) {
	if _, err := ConfidenceInterval([]float64{100}, 0.95); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("single value error = %v, want ErrInsufficientData", err)
	}
	if _, err := ConfidenceInterval([]float64{100, 110}, 0.42); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("unsupported level error = %v, want ErrInvalidParameter", err)
	}
}
