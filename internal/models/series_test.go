package models

import (
	"testing"
	"time"
)

func day(n int) time.Time {
	return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

// TestNewSeriesValid verifies that a well-formed series is accepted and
// preserves entry order.
func TestNewSeriesValid(t *testing.T) {
	s, err := NewSeries("ath-1", []Entry{
		{Date: day(0), Load: 100},
		{Date: day(1), Load: 0},
		{Date: day(3), Load: 250.5},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.AthleteID() != "ath-1" {
		t.Errorf("AthleteID() = %q, want %q", s.AthleteID(), "ath-1")
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	loads := s.Loads()
	want := []float64{100, 0, 250.5}
	for i := range want {
		if loads[i] != want[i] {
			t.Errorf("Loads()[%d] = %v, want %v", i, loads[i], want[i])
		}
	}
}

// TestNewSeriesRejectsInvalid verifies the construction invariants:
// strictly increasing dates and non-negative loads.
func TestNewSeriesRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{
			name:    "negative load",
			entries: []Entry{{Date: day(0), Load: -1}},
		},
		{
			name: "duplicate date",
			entries: []Entry{
				{Date: day(0), Load: 100},
				{Date: day(0), Load: 110},
			},
		},
		{
			name: "out of order",
			entries: []Entry{
				{Date: day(2), Load: 100},
				{Date: day(1), Load: 110},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSeries("ath-1", tt.entries); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

// TestSeriesImmutable verifies that mutating slices returned by
// accessors does not affect the series.
func TestSeriesImmutable(t *testing.T) {
	in := []Entry{{Date: day(0), Load: 100}, {Date: day(1), Load: 200}}
	s, err := NewSeries("ath-1", in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in[0].Load = 999
	got := s.Entries()
	got[1].Load = 999

	if fresh := s.Entries(); fresh[0].Load != 100 || fresh[1].Load != 200 {
		t.Errorf("series mutated through caller slices: %+v", fresh)
	}
}

// TestTailLoads verifies tail extraction and the shorter-history case.
func TestTailLoads(t *testing.T) {
	s, err := NewSeries("ath-1", []Entry{
		{Date: day(0), Load: 1},
		{Date: day(1), Load: 2},
		{Date: day(2), Load: 3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := s.TailLoads(2)
	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("TailLoads(2) = %v, want [2 3]", got)
	}

	got = s.TailLoads(10)
	if len(got) != 3 {
		t.Errorf("TailLoads(10) returned %d values, want full history of 3", len(got))
	}
}

// TestLastEmpty verifies Last on an empty series.
func TestLastEmpty(t *testing.T) {
	s, err := NewSeries("ath-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := s.Last(); ok {
		t.Error("Last() on empty series reported ok")
	}
}
