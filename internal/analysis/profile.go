package analysis

import (
	"fmt"
	"math"
	"time"

	"github.com/trainload/trainload/internal/models"
	"github.com/trainload/trainload/internal/stats"
)

// DayLoad is one day of the athlete's load profile. Fitness tracks the
// chronic load, fatigue the acute load, and form (equivalently the
// training stress balance) their difference: positive form means the
// athlete is fresher than their recent training suggests.
type DayLoad struct {
	Date        time.Time `json:"date"`
	AcuteLoad   float64   `json:"acute_load"`
	ChronicLoad float64   `json:"chronic_load"`
	// Ratio is nil on days where the chronic load is still zero.
	Ratio   *float64 `json:"ratio,omitempty"`
	Flag    string   `json:"flag,omitempty"`
	Fitness float64  `json:"fitness"`
	Fatigue float64  `json:"fatigue"`
	Form    float64  `json:"form"`
}

// LoadProfile computes the day-by-day acute/chronic loads and derived
// ratio for the whole series under the given method. Unlike ComputeACWR
// it does not fail on zero chronic load: early days simply carry no
// ratio, so a profile over a ramping-up athlete stays usable.
func LoadProfile(series *models.Series, method Method, acuteWindow, chronicWindow int, th Thresholds) ([]DayLoad, error) {
	if acuteWindow == 0 {
		acuteWindow = DefaultAcuteWindow
	}
	if chronicWindow == 0 {
		chronicWindow = DefaultChronicWindow
	}
	if acuteWindow < 0 || chronicWindow < 0 || acuteWindow > chronicWindow {
		return nil, fmt.Errorf("%w: bad windows (acute=%d, chronic=%d)", ErrInvalidParameter, acuteWindow, chronicWindow)
	}
	if series.Len() == 0 {
		return nil, fmt.Errorf("%w: series is empty", ErrInsufficientData)
	}
	if method != MethodRolling && method != MethodEWMA {
		return nil, fmt.Errorf("%w: unknown method %q", ErrInvalidParameter, method)
	}

	entries := series.Entries()
	loads := series.Loads()
	profile := make([]DayLoad, len(entries))

	// EWMA state carried across days; rolling recomputes from prefixes.
	lambdaA := 2.0 / (float64(acuteWindow) + 1.0)
	lambdaC := 2.0 / (float64(chronicWindow) + 1.0)
	ewmaA, ewmaC := loads[0], loads[0]

	for i, e := range entries {
		var acute, chronic float64
		switch method {
		case MethodRolling:
			acute = stats.Mean(tail(loads[:i+1], acuteWindow))
			chronic = stats.Mean(tail(loads[:i+1], chronicWindow))
		case MethodEWMA:
			if i > 0 {
				ewmaA = loads[i]*lambdaA + ewmaA*(1-lambdaA)
				ewmaC = loads[i]*lambdaC + ewmaC*(1-lambdaC)
			}
			acute, chronic = ewmaA, ewmaC
		}

		d := DayLoad{
			Date:        e.Date,
			AcuteLoad:   acute,
			ChronicLoad: chronic,
			Fitness:     chronic,
			Fatigue:     acute,
			Form:        chronic - acute,
		}
		if chronic > 0 {
			r := math.Round(acute/chronic*100) / 100
			d.Ratio = &r
			d.Flag = flagFor(r, th)
		}
		profile[i] = d
	}
	return profile, nil
}

func tail(values []float64, n int) []float64 {
	if n > len(values) {
		n = len(values)
	}
	return values[len(values)-n:]
}

// Trend direction labels.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// Trend summarizes how the athlete's load has moved between the two most
// recent windows of `window` days each.
type Trend struct {
	Direction string `json:"direction"`
	// ChangePct is relative to the prior-window mean. When that mean is
	// 0 the percentage is undefined and reported as 0; Direction and
	// the two means still describe the change.
	ChangePct  float64 `json:"change_percentage"`
	RecentMean float64 `json:"recent_mean"`
	PriorMean  float64 `json:"prior_mean"`
	// Threshold is the smallest worthwhile change the classification
	// used as its noise floor.
	Threshold float64 `json:"threshold"`
}

// ClassifyTrend compares the mean load of the most recent window against
// the window before it. A difference smaller than the series' smallest
// worthwhile change counts as stable; otherwise the sign decides.
// Needs at least 2×window days of history.
func ClassifyTrend(series *models.Series, window int, effectSizeFactor float64) (*Trend, error) {
	if window <= 0 {
		return nil, fmt.Errorf("%w: window must be positive, got %d", ErrInvalidParameter, window)
	}
	if series.Len() < 2*window {
		return nil, fmt.Errorf("%w: trend over window %d needs %d days, have %d", ErrInsufficientData, window, 2*window, series.Len())
	}
	swc, err := SmallestWorthwhileChange(series, effectSizeFactor)
	if err != nil {
		return nil, err
	}

	loads := series.Loads()
	recent := stats.Mean(loads[len(loads)-window:])
	prior := stats.Mean(loads[len(loads)-2*window : len(loads)-window])

	tr := &Trend{RecentMean: recent, PriorMean: prior, Threshold: swc}
	diff := recent - prior
	if prior != 0 {
		tr.ChangePct = math.Round(diff/prior*10000) / 100
	}
	switch {
	case math.Abs(diff) < swc:
		tr.Direction = TrendStable
	case diff > 0:
		tr.Direction = TrendImproving
	default:
		tr.Direction = TrendDeclining
	}
	return tr, nil
}
