// Package notify fans staff notifications out by role. Notifications
// are kept in memory and read through role-scoped queries; dashboards
// poll the notification endpoints for fresh ones.
package notify

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/barkada-pos/api/internal/enum"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("notification not found")

// TargetAll addresses every role.
const TargetAll = "ALL"

// Notification is one message targeted at one or more roles.
type Notification struct {
	ID             uuid.UUID
	Type           string
	Title          string
	Message        string
	Priority       string
	TargetRoles    []string
	IsRead         bool
	ActionRequired bool
	TicketID       string
	TableNumber    string
	CreatedAt      time.Time
}

var priorityRank = map[string]int{
	enum.NotifyPriorityUrgent: 4,
	enum.NotifyPriorityHigh:   3,
	enum.NotifyPriorityMedium: 2,
	enum.NotifyPriorityLow:    1,
}

// Store holds notifications for all roles. Safe for concurrent handlers.
type Store struct {
	mu            sync.Mutex
	notifications map[uuid.UUID]*Notification
	now           func() time.Time
}

// NewStore creates an empty notification store.
func NewStore() *Store {
	return &Store{
		notifications: make(map[uuid.UUID]*Notification),
		now:           time.Now,
	}
}

// Push records a notification and returns it with ID and timestamp set.
func (s *Store) Push(n Notification) Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = uuid.New()
	n.IsRead = false
	n.CreatedAt = s.now()
	stored := n
	s.notifications[n.ID] = &stored
	return n
}

// ForRole returns notifications visible to the role, urgent first and
// newest first within the same priority.
func (s *Store) ForRole(role string) []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Notification
	for _, n := range s.notifications {
		if targets(n, role) {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		pi, pj := priorityRank[out[i].Priority], priorityRank[out[j].Priority]
		if pi != pj {
			return pi > pj
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// UnreadCount returns how many notifications the role has not read yet.
func (s *Store) UnreadCount(role string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, n := range s.notifications {
		if !n.IsRead && targets(n, role) {
			count++
		}
	}
	return count
}

// MarkRead flags one notification as read.
func (s *Store) MarkRead(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok {
		return ErrNotFound
	}
	n.IsRead = true
	return nil
}

func targets(n *Notification, role string) bool {
	for _, r := range n.TargetRoles {
		if r == role || r == TargetAll {
			return true
		}
	}
	return false
}

// ── Templates for the recurring house scenarios ──

// OrderReady tells waiters a kitchen or bar ticket is done.
func OrderReady(ticketNumber, tableNumber string) Notification {
	msg := fmt.Sprintf("Order %s is ready for pickup", ticketNumber)
	if tableNumber != "" {
		msg = fmt.Sprintf("Order %s (Table %s) is ready for pickup", ticketNumber, tableNumber)
	}
	return Notification{
		Type:           enum.NotifyTypeOrder,
		Title:          "Order Ready for Pickup",
		Message:        msg,
		Priority:       enum.NotifyPriorityHigh,
		TargetRoles:    []string{enum.RoleWaiter},
		ActionRequired: true,
		TicketID:       ticketNumber,
		TableNumber:    tableNumber,
	}
}

// LowStock warns the bar and management that an item hit its minimum.
func LowStock(itemName string, currentStock int, unit string) Notification {
	return Notification{
		Type:        enum.NotifyTypeInventory,
		Title:       "Low Stock Alert",
		Message:     fmt.Sprintf("%s stock is running low (%d %s remaining)", itemName, currentStock, unit),
		Priority:    enum.NotifyPriorityMedium,
		TargetRoles: []string{enum.RoleManager, enum.RoleOwner, enum.RoleBartender},
	}
}

// LoginRequest asks management to approve a staff sign-in.
func LoginRequest(staffName, role string) Notification {
	return Notification{
		Type:           enum.NotifyTypeStaff,
		Title:          "Login Request",
		Message:        fmt.Sprintf("%s (%s) requesting login approval", staffName, role),
		Priority:       enum.NotifyPriorityMedium,
		TargetRoles:    []string{enum.RoleManager, enum.RoleOwner},
		ActionRequired: true,
	}
}

// SystemError escalates a fault to the developer and owner.
func SystemError(errorMessage string) Notification {
	return Notification{
		Type:           enum.NotifyTypeSystem,
		Title:          "System Error",
		Message:        errorMessage,
		Priority:       enum.NotifyPriorityUrgent,
		TargetRoles:    []string{enum.RoleDeveloper, enum.RoleOwner},
		ActionRequired: true,
	}
}

// ReservationReminder nudges the floor about an upcoming booking.
func ReservationReminder(customerName string, at time.Time, guests int) Notification {
	return Notification{
		Type:        enum.NotifyTypeReservation,
		Title:       "Upcoming Reservation",
		Message:     fmt.Sprintf("%s - %d guests on %s", customerName, guests, at.Format("Jan 2, 3:04 PM")),
		Priority:    enum.NotifyPriorityMedium,
		TargetRoles: []string{enum.RoleWaiter, enum.RoleManager},
	}
}

// VoucherRedeemed logs a door redemption for management.
func VoucherRedeemed(code, customerInfo string) Notification {
	return Notification{
		Type:        enum.NotifyTypeVoucher,
		Title:       "Voucher Redeemed",
		Message:     fmt.Sprintf("Voucher %s redeemed by %s", code, customerInfo),
		Priority:    enum.NotifyPriorityLow,
		TargetRoles: []string{enum.RoleManager, enum.RoleOwner},
	}
}
