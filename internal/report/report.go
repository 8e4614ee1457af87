// Package report assembles the engine's statistics for one athlete into
// a single serializable document for downstream consumers (dashboards,
// exports). The report itself adds no semantics of its own.
package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trainload/trainload/internal/analysis"
	"github.com/trainload/trainload/internal/config"
	"github.com/trainload/trainload/internal/models"
)

// Report is one analysis run over one athlete's series.
type Report struct {
	ID          uuid.UUID        `json:"id"`
	GeneratedAt time.Time        `json:"generated_at"`
	AthleteID   string           `json:"athlete_id"`
	Days        int              `json:"days"`
	ACWR        *analysis.Result `json:"acwr"`
	SWC         float64          `json:"smallest_worthwhile_change"`
	// AcuteCI brackets the mean load of the most recent acute window.
	// Omitted when the window holds fewer than 2 days.
	AcuteCI *analysis.Interval `json:"acute_confidence_interval,omitempty"`
	// Trend is omitted when the history is too short to classify.
	Trend   *analysis.Trend    `json:"trend,omitempty"`
	Profile []analysis.DayLoad `json:"profile"`
}

// Build runs the full analysis for one series under cfg. The ratio, SWC
// and profile are mandatory; the confidence interval and trend degrade
// gracefully on short histories since both need more data than the
// ratio does.
func Build(series *models.Series, cfg config.AnalysisConfig, profileDays int) (*Report, error) {
	method, err := analysis.ParseMethod(cfg.Method)
	if err != nil {
		return nil, err
	}
	th := analysis.Thresholds{HighRisk: cfg.HighRisk, Undertraining: cfg.Undertraining}

	acwr, err := analysis.ComputeACWR(series, method, cfg.AcuteWindow, cfg.ChronicWindow, th)
	if err != nil {
		return nil, fmt.Errorf("computing ACWR: %w", err)
	}
	swc, err := analysis.SmallestWorthwhileChange(series, cfg.SWCFactor)
	if err != nil {
		return nil, fmt.Errorf("computing SWC: %w", err)
	}
	profile, err := analysis.LoadProfile(series, method, cfg.AcuteWindow, cfg.ChronicWindow, th)
	if err != nil {
		return nil, fmt.Errorf("computing profile: %w", err)
	}
	if profileDays > 0 && len(profile) > profileDays {
		profile = profile[len(profile)-profileDays:]
	}

	r := &Report{
		ID:          uuid.New(),
		GeneratedAt: time.Now().UTC(),
		AthleteID:   series.AthleteID(),
		Days:        series.Len(),
		ACWR:        acwr,
		SWC:         swc,
		Profile:     profile,
	}

	if ci, err := analysis.ConfidenceInterval(series.TailLoads(cfg.AcuteWindow), cfg.Confidence); err == nil {
		r.AcuteCI = &ci
	} else if !errors.Is(err, analysis.ErrInsufficientData) {
		return nil, fmt.Errorf("computing confidence interval: %w", err)
	}

	if tr, err := analysis.ClassifyTrend(series, cfg.AcuteWindow, cfg.SWCFactor); err == nil {
		r.Trend = tr
	} else if !errors.Is(err, analysis.ErrInsufficientData) {
		return nil, fmt.Errorf("classifying trend: %w", err)
	}

	return r, nil
}
