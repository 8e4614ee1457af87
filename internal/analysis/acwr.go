// Package analysis computes workload-ratio and baseline statistics over
// an athlete's daily load series. Every operation is a pure, single-pass
// function of its inputs; the package holds no state between calls.
package analysis

import (
	"fmt"
	"math"

	"github.com/trainload/trainload/internal/models"
	"github.com/trainload/trainload/internal/stats"
)

// Method selects how acute and chronic loads are averaged.
type Method string

const (
	// MethodRolling uses plain unweighted means over trailing windows.
	MethodRolling Method = "rolling"
	// MethodEWMA uses exponentially weighted moving averages, which
	// weight recent training more heavily without the step change a
	// moving window boundary introduces.
	MethodEWMA Method = "ewma"
)

// ParseMethod converts a config/flag string into a Method.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodRolling:
		return MethodRolling, nil
	case MethodEWMA:
		return MethodEWMA, nil
	default:
		return "", fmt.Errorf("%w: unknown method %q", ErrInvalidParameter, s)
	}
}

// Default window sizes and risk cut-points. The thresholds follow the
// commonly cited ACWR literature but stay configurable since different
// sports propose different cut-points.
const (
	DefaultAcuteWindow   = 7
	DefaultChronicWindow = 28

	DefaultHighRiskThreshold      = 1.5
	DefaultUndertrainingThreshold = 0.8
)

// Thresholds holds the ratio cut-points used to flag a result.
type Thresholds struct {
	HighRisk      float64 `json:"high_risk"`
	Undertraining float64 `json:"undertraining"`
}

// DefaultThresholds returns the literature-default cut-points.
func DefaultThresholds() Thresholds {
	return Thresholds{
		HighRisk:      DefaultHighRiskThreshold,
		Undertraining: DefaultUndertrainingThreshold,
	}
}

// Risk flag values attached to a Result.
const (
	FlagHighRisk      = "high_risk"
	FlagUndertraining = "undertraining"
	FlagOptimal       = "optimal"
)

// Result is the outcome of one acute:chronic workload ratio computation.
type Result struct {
	AthleteID   string  `json:"athlete_id"`
	Method      Method  `json:"method"`
	AcuteLoad   float64 `json:"acute_load"`
	ChronicLoad float64 `json:"chronic_load"`
	// Ratio is acute/chronic, rounded to 2 decimal places by convention.
	Ratio float64 `json:"ratio"`
	Flag  string  `json:"flag"`
	// LowConfidence marks a result computed from less history than the
	// chronic window; partial windows are permitted but not trusted.
	LowConfidence bool `json:"low_confidence"`
}

// ComputeACWR computes the acute:chronic workload ratio for the series
// under the given method. acuteWindow and chronicWindow are in days;
// pass 0 for either to use the 7/28 defaults.
func ComputeACWR(series *models.Series, method Method, acuteWindow, chronicWindow int, th Thresholds) (*Result, error) {
	if acuteWindow == 0 {
		acuteWindow = DefaultAcuteWindow
	}
	if chronicWindow == 0 {
		chronicWindow = DefaultChronicWindow
	}
	if acuteWindow < 0 || chronicWindow < 0 {
		return nil, fmt.Errorf("%w: windows must be positive (acute=%d, chronic=%d)", ErrInvalidParameter, acuteWindow, chronicWindow)
	}
	if acuteWindow > chronicWindow {
		return nil, fmt.Errorf("%w: acute window %d exceeds chronic window %d", ErrInvalidParameter, acuteWindow, chronicWindow)
	}
	if series.Len() == 0 {
		return nil, fmt.Errorf("%w: series is empty", ErrInsufficientData)
	}

	var acute, chronic float64
	switch method {
	case MethodRolling:
		acute = stats.Mean(series.TailLoads(acuteWindow))
		chronic = stats.Mean(series.TailLoads(chronicWindow))
	case MethodEWMA:
		loads := series.Loads()
		acute = stats.EWMA(loads, acuteWindow)
		chronic = stats.EWMA(loads, chronicWindow)
	default:
		return nil, fmt.Errorf("%w: unknown method %q", ErrInvalidParameter, method)
	}

	if chronic == 0 {
		return nil, ErrDivisionUndefined
	}

	ratio := round2(acute / chronic)
	return &Result{
		AthleteID:     series.AthleteID(),
		Method:        method,
		AcuteLoad:     acute,
		ChronicLoad:   chronic,
		Ratio:         ratio,
		Flag:          flagFor(ratio, th),
		LowConfidence: series.Len() < chronicWindow,
	}, nil
}

func flagFor(ratio float64, th Thresholds) string {
	switch {
	case ratio > th.HighRisk:
		return FlagHighRisk
	case ratio < th.Undertraining:
		return FlagUndertraining
	default:
		return FlagOptimal
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
