// Package gateway defines the swappable boundaries the POS core talks to:
// checkout submission and credential verification. Production wiring uses
// the in-process implementations below; tests substitute mocks.
package gateway

import (
	"context"
	"time"

	"github.com/barkada-pos/api/internal/order"
	"github.com/barkada-pos/api/internal/queue"
	"github.com/google/uuid"
)

// CheckoutSubmission is the finalized order handed to the checkout
// consumer: the line snapshots, the table reference (empty for walk-in),
// the derived pricing, and staff attribution.
type CheckoutSubmission struct {
	Lines       []order.Line
	TableNumber string
	Pricing     order.PricingResult
	StaffID     uuid.UUID
	StaffName   string
	Stations    []string
}

// Receipt acknowledges an accepted submission.
type Receipt struct {
	Reference    uuid.UUID
	TicketNumber string
	AcceptedAt   time.Time
}

// CheckoutGateway receives finalized orders. Implementations must not
// simulate latency; any real remote submission belongs behind this
// interface, not in the POS core.
type CheckoutGateway interface {
	SubmitOrder(ctx context.Context, sub CheckoutSubmission) (Receipt, error)
}

// QueueGateway is the in-process checkout consumer: accepted submissions
// become tickets on the station queue.
type QueueGateway struct {
	queue *queue.Store
}

// NewQueueGateway creates a QueueGateway backed by the given ticket store.
func NewQueueGateway(q *queue.Store) *QueueGateway {
	return &QueueGateway{queue: q}
}

// SubmitOrder enqueues the submission and acknowledges with the new
// ticket's identity.
func (g *QueueGateway) SubmitOrder(_ context.Context, sub CheckoutSubmission) (Receipt, error) {
	t := g.queue.Submit(sub.Lines, sub.TableNumber, sub.Pricing, sub.StaffID, sub.StaffName, sub.Stations)
	return Receipt{
		Reference:    t.ID,
		TicketNumber: t.Number,
		AcceptedAt:   t.CreatedAt,
	}, nil
}
