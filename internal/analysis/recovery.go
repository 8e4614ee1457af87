package analysis

import (
	"fmt"
	"math"
)

// weightSumTolerance bounds how far a weight vector may drift from 1.0
// before it is rejected. Practitioners must be able to audit the exact
// blend, so weights are always caller-supplied and validated, never a
// hidden default inside the formula.
const weightSumTolerance = 1e-6

// DefaultRecoveryWeights is the research-based sleep/HRV/soreness blend.
func DefaultRecoveryWeights() []float64 { return []float64{0.4, 0.3, 0.3} }

// Recovery status bands over the blended 0–100 score.
const (
	RecoveryLow      = "low"
	RecoveryModerate = "moderate"
	RecoveryHigh     = "high"
)

// RecoveryScore is the blended readiness score with its status band.
type RecoveryScore struct {
	Score  float64 `json:"score"`
	Status string  `json:"status"`
}

// BlendRecovery combines component scores (each 0–100, e.g. sleep
// quality, HRV, soreness) into one readiness score using the supplied
// weight vector. Weights must match the component count and sum to 1.0
// within tolerance.
func BlendRecovery(scores, weights []float64) (*RecoveryScore, error) {
	if len(scores) == 0 {
		return nil, fmt.Errorf("%w: no component scores", ErrInsufficientData)
	}
	if len(weights) != len(scores) {
		return nil, fmt.Errorf("%w: %d weights for %d scores", ErrInvalidParameter, len(weights), len(scores))
	}
	var sum float64
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: negative weight %v at index %d", ErrInvalidParameter, w, i)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > weightSumTolerance {
		return nil, fmt.Errorf("%w: weights sum to %v, want 1.0", ErrInvalidParameter, sum)
	}

	var score float64
	for i, s := range scores {
		if s < 0 || s > 100 {
			return nil, fmt.Errorf("%w: component score %v at index %d outside [0,100]", ErrInvalidParameter, s, i)
		}
		score += s * weights[i]
	}
	return &RecoveryScore{Score: score, Status: recoveryStatus(score)}, nil
}

func recoveryStatus(score float64) string {
	switch {
	case score < 40:
		return RecoveryLow
	case score < 70:
		return RecoveryModerate
	default:
		return RecoveryHigh
	}
}
