// Package pos manages per-staff point-of-sale sessions. Each session owns
// exactly one in-progress order; there is no sharing between sessions and
// no persistence — a session's order is gone when the session ends.
package pos

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/barkada-pos/api/internal/catalog"
	"github.com/barkada-pos/api/internal/gateway"
	"github.com/barkada-pos/api/internal/order"
	"github.com/google/uuid"
)

var (
	ErrNoSession       = errors.New("no active session")
	ErrNoItems         = errors.New("no items in order")
	ErrNoTableSelected = errors.New("no table selected")
)

// Operator identifies the staff member driving a session and whether their
// station does table service (waiters) or walk-in only (bartenders).
// Derived from the capability table, never from role switches in handlers.
type Operator struct {
	ID           uuid.UUID
	Name         string
	TableService bool
}

// Snapshot is a read-only view of a session's order and derived pricing.
type Snapshot struct {
	Lines        []order.Line
	TableNumber  string
	TableService bool
	Pricing      order.PricingResult
	StartedAt    time.Time
}

type session struct {
	operator  Operator
	order     *order.Order
	startedAt time.Time
}

// Manager owns all live POS sessions. Sessions are created on first use
// and torn down on logout via End. Safe for concurrent handlers; the
// order inside each session is only ever touched under the manager lock.
type Manager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*session
	catalog  catalog.Provider
	checkout gateway.CheckoutGateway
	now      func() time.Time
}

// NewManager creates a session manager submitting checkouts through gw.
func NewManager(cat catalog.Provider, gw gateway.CheckoutGateway) *Manager {
	return &Manager{
		sessions: make(map[uuid.UUID]*session),
		catalog:  cat,
		checkout: gw,
		now:      time.Now,
	}
}

func (m *Manager) ensure(op Operator) *session {
	s, ok := m.sessions[op.ID]
	if !ok {
		s = &session{
			operator:  op,
			order:     order.New(),
			startedAt: m.now(),
		}
		m.sessions[op.ID] = s
	}
	return s
}

// View returns the current snapshot, creating the session if needed.
func (m *Manager) View(op Operator) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return snapshotOf(m.ensure(op))
}

// AddItem adds one unit of the menu item to the operator's order.
func (m *Manager) AddItem(ctx context.Context, op Operator, menuItemID string) (Snapshot, error) {
	item, err := m.catalog.Item(ctx, menuItemID)
	if err != nil {
		return Snapshot{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.ensure(op)
	s.order.AddItem(item)
	return snapshotOf(s), nil
}

// SetQuantity updates a line's quantity; non-positive removes the line.
func (m *Manager) SetQuantity(op Operator, menuItemID string, quantity int32) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.ensure(op)
	s.order.SetQuantity(menuItemID, quantity)
	return snapshotOf(s)
}

// RemoveItem removes a line; no-op if absent.
func (m *Manager) RemoveItem(op Operator, menuItemID string) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.ensure(op)
	s.order.RemoveItem(menuItemID)
	return snapshotOf(s)
}

// SetTable binds the order to a table. Switching from one table to a
// different one clears the in-progress order; the first selection and
// same-table rebinds do not.
func (m *Manager) SetTable(ctx context.Context, op Operator, tableNumber string) (Snapshot, error) {
	if _, err := m.catalog.Table(ctx, tableNumber); err != nil {
		return Snapshot{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.ensure(op)
	if s.order.TableNumber != "" && s.order.TableNumber != tableNumber {
		s.order.Clear()
	}
	s.order.TableNumber = tableNumber
	return snapshotOf(s), nil
}

// Clear empties the operator's order, keeping any table binding.
func (m *Manager) Clear(op Operator) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.ensure(op)
	s.order.Clear()
	return snapshotOf(s)
}

// Checkout validates the order, submits it through the checkout gateway,
// and clears the order on acceptance. An empty order is rejected, as is a
// table-service checkout with no table selected.
func (m *Manager) Checkout(ctx context.Context, op Operator) (gateway.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.ensure(op)
	if s.order.IsEmpty() {
		return gateway.Receipt{}, ErrNoItems
	}
	if s.operator.TableService && s.order.IsWalkIn() {
		return gateway.Receipt{}, ErrNoTableSelected
	}

	sub := gateway.CheckoutSubmission{
		Lines:       append([]order.Line(nil), s.order.Lines...),
		TableNumber: s.order.TableNumber,
		Pricing:     s.order.Price(),
		StaffID:     s.operator.ID,
		StaffName:   s.operator.Name,
		Stations:    m.stationsFor(ctx, s.order.Lines),
	}

	receipt, err := m.checkout.SubmitOrder(ctx, sub)
	if err != nil {
		return gateway.Receipt{}, fmt.Errorf("submit order: %w", err)
	}

	s.order.Clear()
	return receipt, nil
}

// End tears down the operator's session. No-op if none exists.
func (m *Manager) End(staffID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, staffID)
}

// Active reports whether the operator currently has a session.
func (m *Manager) Active(staffID uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sessions[staffID]
	return ok
}

// stationsFor derives the distinct prep stations the order's lines route
// to. Lines always originate from the catalog, so lookups only miss if
// the catalog changed underneath us; such lines are skipped.
func (m *Manager) stationsFor(ctx context.Context, lines []order.Line) []string {
	seen := make(map[string]bool)
	var out []string
	for _, l := range lines {
		item, err := m.catalog.Item(ctx, l.MenuItemID)
		if err != nil {
			continue
		}
		st := item.Station()
		if !seen[st] {
			seen[st] = true
			out = append(out, st)
		}
	}
	return out
}

func snapshotOf(s *session) Snapshot {
	return Snapshot{
		Lines:        append([]order.Line(nil), s.order.Lines...),
		TableNumber:  s.order.TableNumber,
		TableService: s.operator.TableService,
		Pricing:      s.order.Price(),
		StartedAt:    s.startedAt,
	}
}
