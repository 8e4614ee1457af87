// Package source loads athlete workload series from external tabular
// data. Every backend is read-only: series are constructed once per
// analysis run and the engine never writes anything back.
package source

import (
	"context"
	"fmt"

	"github.com/trainload/trainload/internal/config"
	"github.com/trainload/trainload/internal/models"
)

// Source supplies workload series for analysis.
type Source interface {
	// LoadSeries returns the full daily-load history for one athlete,
	// chronologically ordered.
	LoadSeries(ctx context.Context, athleteID string) (*models.Series, error)
	// Close releases any underlying handles.
	Close() error
}

// Open builds the Source selected by cfg.
func Open(ctx context.Context, cfg config.SourceConfig) (Source, error) {
	switch cfg.Type {
	case "csv":
		return NewCSVSource(cfg.Path), nil
	case "sqlite":
		return OpenSQLite(cfg.Path, cfg.Table)
	case "postgres":
		return OpenPostgres(ctx, cfg.Database.DSN(), cfg.Table)
	default:
		return nil, fmt.Errorf("unknown source type %q", cfg.Type)
	}
}
