package source

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/trainload/trainload/internal/models"
)

// SQLiteSource reads daily loads from a SQLite training-log export.
// The table is owned by whoever produced the export; this source only
// queries it.
type SQLiteSource struct {
	db    *sql.DB
	table string
}

// OpenSQLite opens the database at path. table defaults to daily_loads
// and must have (athlete_id TEXT, day TEXT, load REAL) with ISO dates.
func OpenSQLite(path, table string) (*SQLiteSource, error) {
	if table == "" {
		table = "daily_loads"
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}
	return &SQLiteSource{db: db, table: table}, nil
}

// LoadSeries returns one athlete's full history in day order.
func (s *SQLiteSource) LoadSeries(ctx context.Context, athleteID string) (*models.Series, error) {
	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT day, load FROM %s WHERE athlete_id = ? ORDER BY day`, s.table),
		athleteID)
	if err != nil {
		return nil, fmt.Errorf("querying loads: %w", err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		var day string
		var load float64
		if err := rows.Scan(&day, &load); err != nil {
			return nil, fmt.Errorf("scanning load row: %w", err)
		}
		date, err := time.Parse("2006-01-02", day)
		if err != nil {
			return nil, fmt.Errorf("bad day %q for athlete %s: %w", day, athleteID, err)
		}
		entries = append(entries, models.Entry{Date: date, Load: load})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	series, err := models.NewSeries(athleteID, entries)
	if err != nil {
		return nil, fmt.Errorf("validating loads for %s: %w", athleteID, err)
	}
	return series, nil
}

// Close closes the database handle.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}
