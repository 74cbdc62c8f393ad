// Package reservation tracks table bookings. A reservation starts
// CONFIRMED and ends in exactly one of SEATED, CANCELLED, or NO_SHOW.
package reservation

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/barkada-pos/api/internal/enum"
	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("reservation not found")
	ErrAlreadySettled    = errors.New("reservation already settled")
	ErrInvalidStatus     = errors.New("invalid reservation status")
	ErrMissingCustomer   = errors.New("customer name and phone are required")
	ErrInvalidGuestCount = errors.New("guests must be > 0")
	ErrMissingTable      = errors.New("table is required")
)

// Reservation is one booking.
type Reservation struct {
	ID            uuid.UUID
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Date          time.Time
	Guests        int
	TableID       string
	Status        string
	IsPaid        bool
	Notes         string
	CreatedAt     time.Time
}

// CreateRequest is the validated input for a new booking.
type CreateRequest struct {
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Date          time.Time
	Guests        int
	TableID       string
	IsPaid        bool
	Notes         string
}

// Store is an in-memory reservation book. Safe for concurrent handlers.
type Store struct {
	mu           sync.Mutex
	reservations map[uuid.UUID]*Reservation
	now          func() time.Time
}

// NewStore creates an empty reservation book.
func NewStore() *Store {
	return &Store{
		reservations: make(map[uuid.UUID]*Reservation),
		now:          time.Now,
	}
}

// Create validates and records a new CONFIRMED reservation.
func (s *Store) Create(req CreateRequest) (Reservation, error) {
	if req.CustomerName == "" || req.CustomerPhone == "" {
		return Reservation{}, ErrMissingCustomer
	}
	if req.Guests <= 0 {
		return Reservation{}, ErrInvalidGuestCount
	}
	if req.TableID == "" {
		return Reservation{}, ErrMissingTable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r := &Reservation{
		ID:            uuid.New(),
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Date:          req.Date,
		Guests:        req.Guests,
		TableID:       req.TableID,
		Status:        enum.ReservationStatusConfirmed,
		IsPaid:        req.IsPaid,
		Notes:         req.Notes,
		CreatedAt:     s.now(),
	}
	s.reservations[r.ID] = r
	return *r, nil
}

// Get returns the reservation with the given ID.
func (s *Store) Get(id uuid.UUID) (Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reservations[id]
	if !ok {
		return Reservation{}, ErrNotFound
	}
	return *r, nil
}

// List returns all reservations ordered by booking date.
func (s *Store) List() []Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Reservation, 0, len(s.reservations))
	for _, r := range s.reservations {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// ListForDate returns reservations whose booking date falls on the given
// calendar day in the date's location.
func (s *Store) ListForDate(day time.Time) []Reservation {
	y, m, d := day.Date()
	var out []Reservation
	for _, r := range s.List() {
		ry, rm, rd := r.Date.Date()
		if ry == y && rm == m && rd == d {
			out = append(out, r)
		}
	}
	return out
}

// SetStatus moves a CONFIRMED reservation to one of its terminal states.
// Settled reservations cannot change again.
func (s *Store) SetStatus(id uuid.UUID, status string) (Reservation, error) {
	switch status {
	case enum.ReservationStatusSeated,
		enum.ReservationStatusCancelled,
		enum.ReservationStatusNoShow:
	default:
		return Reservation{}, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reservations[id]
	if !ok {
		return Reservation{}, ErrNotFound
	}
	if r.Status != enum.ReservationStatusConfirmed {
		return Reservation{}, ErrAlreadySettled
	}

	r.Status = status
	return *r, nil
}
