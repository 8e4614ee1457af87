package analysis

import (
	"fmt"
	"math"
)

// DefaultAsymmetryThreshold is the percentage above which a left/right
// imbalance is commonly considered worth intervention.
const DefaultAsymmetryThreshold = 10.0

// Asymmetry is the result of comparing one paired left/right measure.
type Asymmetry struct {
	Left     float64 `json:"left"`
	Right    float64 `json:"right"`
	IndexPct float64 `json:"index_pct"`
	Flagged  bool    `json:"flagged"`
}

// AsymmetryIndex returns the imbalance between paired limb measures as
// (stronger − weaker) / stronger × 100. Both sides zero is undefined.
func AsymmetryIndex(left, right float64) (float64, error) {
	if left < 0 || right < 0 {
		return 0, fmt.Errorf("%w: limb measures must be non-negative (%v, %v)", ErrInvalidParameter, left, right)
	}
	stronger := math.Max(left, right)
	if stronger == 0 {
		return 0, fmt.Errorf("%w: both measures are zero", ErrDivisionUndefined)
	}
	weaker := math.Min(left, right)
	return (stronger - weaker) / stronger * 100, nil
}

// DetectAsymmetry evaluates paired measures (e.g. per-session single-leg
// force outputs) and flags every pair whose index exceeds the threshold.
// Pass 0 to use the 10% default.
func DetectAsymmetry(left, right []float64, thresholdPct float64) ([]Asymmetry, error) {
	if thresholdPct == 0 {
		thresholdPct = DefaultAsymmetryThreshold
	}
	if thresholdPct < 0 {
		return nil, fmt.Errorf("%w: threshold must be positive, got %v", ErrInvalidParameter, thresholdPct)
	}
	if len(left) == 0 {
		return nil, fmt.Errorf("%w: no paired measures", ErrInsufficientData)
	}
	if len(left) != len(right) {
		return nil, fmt.Errorf("%w: %d left measures vs %d right", ErrInvalidParameter, len(left), len(right))
	}

	out := make([]Asymmetry, len(left))
	for i := range left {
		idx, err := AsymmetryIndex(left[i], right[i])
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i, err)
		}
		out[i] = Asymmetry{
			Left:     left[i],
			Right:    right[i],
			IndexPct: idx,
			Flagged:  idx > thresholdPct,
		}
	}
	return out, nil
}
