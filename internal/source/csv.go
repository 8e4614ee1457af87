package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/trainload/trainload/internal/models"
)

// CSVSource reads one athlete's daily loads from a two-column CSV file
// of date,load rows. A header row is detected and skipped. Dates are
// "2006-01-02" or RFC 3339.
type CSVSource struct {
	path string
}

// NewCSVSource returns a source backed by the CSV file at path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// LoadSeries parses the whole file into a validated series. The file
// holds a single athlete's history, so athleteID only labels the result.
func (s *CSVSource) LoadSeries(_ context.Context, athleteID string) (*models.Series, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening csv: %w", err)
	}
	defer f.Close()

	entries, err := parseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}

	series, err := models.NewSeries(athleteID, entries)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", s.path, err)
	}
	return series, nil
}

// Close is a no-op; the file is opened per load.
func (s *CSVSource) Close() error { return nil }

func parseCSV(r io.Reader) ([]models.Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	var entries []models.Entry
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		date, derr := parseDate(record[0])
		if derr != nil {
			// A header row has a non-numeric load column too; a bad
			// date next to a real load is data and must not be dropped.
			if line == 1 && !isNumeric(record[1]) {
				continue
			}
			return nil, fmt.Errorf("row %d: %w", line, derr)
		}
		load, lerr := strconv.ParseFloat(record[1], 64)
		if lerr != nil {
			return nil, fmt.Errorf("row %d: bad load %q", line, record[1])
		}
		entries = append(entries, models.Entry{Date: date, Load: load})
	}
	return entries, nil
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse date %q", s)
}
