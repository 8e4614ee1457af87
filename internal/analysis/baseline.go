package analysis

import (
	"fmt"

	"github.com/trainload/trainload/internal/models"
	"github.com/trainload/trainload/internal/stats"
)

// DefaultEffectSizeFactor is the commonly cited small-effect-size
// convention for the smallest worthwhile change.
const DefaultEffectSizeFactor = 0.2

// SmallestWorthwhileChange returns the threshold below which a change in
// the athlete's load metric is noise rather than signal: the sample
// standard deviation over the full history times effectSizeFactor.
// Pass 0 to use the 0.2 default.
func SmallestWorthwhileChange(series *models.Series, effectSizeFactor float64) (float64, error) {
	if effectSizeFactor == 0 {
		effectSizeFactor = DefaultEffectSizeFactor
	}
	if effectSizeFactor < 0 {
		return 0, fmt.Errorf("%w: effect size factor must be positive, got %v", ErrInvalidParameter, effectSizeFactor)
	}
	if series.Len() < 2 {
		return 0, fmt.Errorf("%w: standard deviation needs at least 2 points, have %d", ErrInsufficientData, series.Len())
	}
	return stats.SampleStdDev(series.Loads()) * effectSizeFactor, nil
}

// Interval is a two-sided confidence interval around a sample mean.
type Interval struct {
	Mean  float64 `json:"mean"`
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Level float64 `json:"level"`
}

// ConfidenceInterval computes a two-sided interval around the mean of
// values: mean ± critical × stderr. Student-t critical values are used
// for small samples (df ≤ 30), the normal approximation beyond that.
// Supported levels are 0.90, 0.95 and 0.99; pass 0 for the 0.95 default.
func ConfidenceInterval(values []float64, confidenceLevel float64) (Interval, error) {
	if confidenceLevel == 0 {
		confidenceLevel = 0.95
	}
	if len(values) < 2 {
		return Interval{}, fmt.Errorf("%w: confidence interval needs at least 2 values, have %d", ErrInsufficientData, len(values))
	}
	crit, ok := stats.CriticalValue(confidenceLevel, len(values)-1)
	if !ok {
		return Interval{}, fmt.Errorf("%w: unsupported confidence level %v (use 0.90, 0.95 or 0.99)", ErrInvalidParameter, confidenceLevel)
	}
	mean := stats.Mean(values)
	margin := crit * stats.StdErr(values)
	return Interval{
		Mean:  mean,
		Lower: mean - margin,
		Upper: mean + margin,
		Level: confidenceLevel,
	}, nil
}
