package staff

import (
	"errors"
	"sync"
)

var ErrNoHistory = errors.New("no performance history for staff")

// Store keeps per-staff shift history in memory, oldest first.
// Safe for concurrent handlers.
type Store struct {
	mu      sync.Mutex
	records map[string][]Record
}

// NewStore creates an empty history store.
func NewStore() *Store {
	return &Store{records: make(map[string][]Record)}
}

// Add scores a shift with DailyRating and appends it to the member's
// history.
func (s *Store) Add(staffID, role string, m Metrics) Record {
	rec := Record{
		StaffID: staffID,
		Role:    role,
		Metrics: m,
		Rating:  DailyRating(role, m),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[staffID] = append(s.records[staffID], rec)
	return rec
}

// History returns the member's shift records, oldest first.
func (s *Store) History(staffID string) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.records[staffID]
	if !ok {
		return nil, ErrNoHistory
	}
	out := make([]Record, len(history))
	copy(out, history)
	return out, nil
}

// Team rolls all members' latest records into a summary.
func (s *Store) Team() TeamSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TeamPerformance(s.records)
}
