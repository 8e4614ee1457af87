package source

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/trainload/trainload/internal/models"
)

// PostgresSource reads daily loads from a shared team database. Like the
// other sources it is strictly read-only; the table belongs to the
// club's ingestion pipeline.
type PostgresSource struct {
	pool  *pgxpool.Pool
	table string
}

// OpenPostgres connects to the database and verifies the connection.
// table defaults to daily_loads and must have
// (athlete_id TEXT, day DATE, load DOUBLE PRECISION).
func OpenPostgres(ctx context.Context, dsn, table string) (*PostgresSource, error) {
	if table == "" {
		table = "daily_loads"
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &PostgresSource{pool: pool, table: table}, nil
}

// LoadSeries returns one athlete's full history in day order.
func (s *PostgresSource) LoadSeries(ctx context.Context, athleteID string) (*models.Series, error) {
	rows, err := s.pool.Query(ctx,
		fmt.Sprintf(`SELECT day, load FROM %s WHERE athlete_id = $1 ORDER BY day`, s.table),
		athleteID)
	if err != nil {
		return nil, fmt.Errorf("querying loads: %w", err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		var day time.Time
		var load float64
		if err := rows.Scan(&day, &load); err != nil {
			return nil, fmt.Errorf("scanning load row: %w", err)
		}
		entries = append(entries, models.Entry{Date: day, Load: load})
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

// Close closes the connection pool.
func (s *PostgresSource) Close() error {
	s.pool.Close()
	return nil
}
