package models

import (
	"fmt"
	"time"
)

// Entry is one training day's load for an athlete.
type Entry struct {
	Date time.Time `json:"date"`
	Load float64   `json:"load"`
}

// Series is an athlete's chronologically ordered daily training loads.
// It is immutable after construction: derived statistics never mutate it.
type Series struct {
	athleteID string
	entries   []Entry
}

// NewSeries validates and builds a Series. Dates must be strictly
// increasing (one entry per training day, no duplicates) and loads
// must be non-negative.
func NewSeries(athleteID string, entries []Entry) (*Series, error) {
	for i, e := range entries {
		if e.Load < 0 {
			return nil, fmt.Errorf("entry %d (%s): negative load %.2f", i, e.Date.Format("2006-01-02"), e.Load)
		}
		if i > 0 && !entries[i-1].Date.Before(e.Date) {
			return nil, fmt.Errorf("entry %d (%s): dates must be strictly increasing", i, e.Date.Format("2006-01-02"))
		}
	}
	s := &Series{athleteID: athleteID, entries: make([]Entry, len(entries))}
	copy(s.entries, entries)
	return s, nil
}

// AthleteID returns the athlete this series belongs to.
func (s *Series) AthleteID() string { return s.athleteID }

// Len returns the number of training days in the series.
func (s *Series) Len() int { return len(s.entries) }

// Entries returns a copy of all entries in chronological order.
func (s *Series) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Loads returns all load values in chronological order.
func (s *Series) Loads() []float64 {
	out := make([]float64, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Load
	}
	return out
}

// TailLoads returns the most recent n load values in chronological
// order, or the whole history if fewer than n days exist.
func (s *Series) TailLoads(n int) []float64 {
	if n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]float64, n)
	for i, e := range s.entries[len(s.entries)-n:] {
		out[i] = e.Load
	}
	return out
}

// Last returns the most recent entry. ok is false for an empty series.
func (s *Series) Last() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[len(s.entries)-1], true
}
