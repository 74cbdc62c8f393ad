// Package queue holds submitted order tickets for the kitchen and bar
// displays. Tickets move strictly forward through NEW → COOKING → PREPARED,
// one step per action; PREPARED is terminal.
package queue

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/barkada-pos/api/internal/enum"
	"github.com/barkada-pos/api/internal/order"
	"github.com/google/uuid"
)

var ErrTicketNotFound = errors.New("ticket not found")

// Ticket is a submitted order as seen by the prep stations. Lines and
// pricing are snapshots taken at checkout; the source order is cleared
// afterwards and never referenced again.
type Ticket struct {
	ID           uuid.UUID
	Number       string
	Lines        []order.Line
	TableNumber  string // empty for walk-in
	CustomerType string
	Status       string
	Pricing      order.PricingResult
	StaffID      uuid.UUID
	StaffName    string
	Stations     []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// nextStatus is the single allowed forward step per status. No skipping,
// no reverting; PREPARED has no entry.
var nextStatus = map[string]string{
	enum.TicketStatusNew:     enum.TicketStatusCooking,
	enum.TicketStatusCooking: enum.TicketStatusPrepared,
}

// Store is an in-memory ticket queue. Safe for concurrent handlers.
type Store struct {
	mu      sync.Mutex
	tickets map[uuid.UUID]*Ticket
	seq     int
	now     func() time.Time
}

// NewStore creates an empty ticket store.
func NewStore() *Store {
	return &Store{
		tickets: make(map[uuid.UUID]*Ticket),
		now:     time.Now,
	}
}

// Submit creates a NEW ticket from a checked-out order snapshot and
// assigns it the next sequential ticket number.
func (s *Store) Submit(lines []order.Line, tableNumber string, pricing order.PricingResult, staffID uuid.UUID, staffName string, stations []string) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	now := s.now()

	customerType := enum.CustomerTypeWalkIn
	if tableNumber != "" {
		customerType = enum.CustomerTypeTable
	}

	t := &Ticket{
		ID:           uuid.New(),
		Number:       fmt.Sprintf("BKD-%03d", s.seq),
		Lines:        append([]order.Line(nil), lines...),
		TableNumber:  tableNumber,
		CustomerType: customerType,
		Status:       enum.TicketStatusNew,
		Pricing:      pricing,
		StaffID:      staffID,
		StaffName:    staffName,
		Stations:     append([]string(nil), stations...),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.tickets[t.ID] = t
	return *t
}

// Get returns the ticket with the given ID.
func (s *Store) Get(id uuid.UUID) (Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tickets[id]
	if !ok {
		return Ticket{}, ErrTicketNotFound
	}
	return *t, nil
}

// List returns tickets oldest-first, optionally filtered by station.
func (s *Store) List(station string) []Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Ticket
	for _, t := range s.tickets {
		if station != "" && !servesStation(t, station) {
			continue
		}
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Number < out[j].Number
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Advance moves a ticket one step forward and stamps UpdatedAt.
// Advancing a PREPARED ticket is a no-op, not an error.
func (s *Store) Advance(id uuid.UUID) (Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tickets[id]
	if !ok {
		return Ticket{}, ErrTicketNotFound
	}

	next, ok := nextStatus[t.Status]
	if !ok {
		return *t, nil
	}

	t.Status = next
	t.UpdatedAt = s.now()
	return *t, nil
}

func servesStation(t *Ticket, station string) bool {
	for _, st := range t.Stations {
		if st == station {
			return true
		}
	}
	return false
}
