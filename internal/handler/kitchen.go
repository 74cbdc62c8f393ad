package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/barkada-pos/api/internal/enum"
	"github.com/barkada-pos/api/internal/notify"
	"github.com/barkada-pos/api/internal/queue"
	"github.com/barkada-pos/api/internal/ws"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// QueueHandler serves the kitchen and bar ticket displays.
type QueueHandler struct {
	queue         *queue.Store
	hub           *ws.Hub
	notifications *notify.Store
}

// NewQueueHandler creates a new QueueHandler.
func NewQueueHandler(q *queue.Store, hub *ws.Hub, notifications *notify.Store) *QueueHandler {
	return &QueueHandler{queue: q, hub: hub, notifications: notifications}
}

type ticketResponse struct {
	ID           uuid.UUID       `json:"id"`
	Number       string          `json:"number"`
	Lines        []lineResponse  `json:"lines"`
	TableNumber  string          `json:"table_number,omitempty"`
	CustomerType string          `json:"customer_type"`
	Status       string          `json:"status"`
	Pricing      pricingResponse `json:"pricing"`
	StaffName    string          `json:"staff_name"`
	Stations     []string        `json:"stations"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ListTickets returns queued tickets oldest-first, optionally filtered by
// ?station=KITCHEN or ?station=BAR.
func (h *QueueHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	station := strings.ToUpper(r.URL.Query().Get("station"))
	if station != "" && station != enum.StationKitchen && station != enum.StationBar {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid station"})
		return
	}

	tickets := h.queue.List(station)
	out := make([]ticketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, toTicketResponse(t))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tickets": out})
}

// AdvanceTicket moves a ticket one status step forward, tells the
// station displays, and pings the waiters when it comes out PREPARED.
func (h *QueueHandler) AdvanceTicket(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid ticket id"})
		return
	}

	before, err := h.queue.Get(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "ticket not found"})
		return
	}

	t, err := h.queue.Advance(id)
	if err != nil {
		if errors.Is(err, queue.ErrTicketNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "ticket not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	// A terminal no-op changes nothing, so nobody needs to hear about it.
	if t.Status != before.Status {
		h.broadcastUpdate(t)
		if t.Status == enum.TicketStatusPrepared {
			h.notifications.Push(notify.OrderReady(t.Number, t.TableNumber))
		}
	}

	writeJSON(w, http.StatusOK, toTicketResponse(t))
}

func (h *QueueHandler) broadcastUpdate(t queue.Ticket) {
	payload, err := json.Marshal(toTicketResponse(t))
	if err != nil {
		log.Printf("ERROR: failed to marshal ticket event: %v", err)
		return
	}
	h.hub.BroadcastToStations(t.Stations, ws.Event{Type: "ticket.updated", Payload: payload})
}

func toTicketResponse(t queue.Ticket) ticketResponse {
	return ticketResponse{
		ID:           t.ID,
		Number:       t.Number,
		Lines:        toLineResponses(t.Lines),
		TableNumber:  t.TableNumber,
		CustomerType: t.CustomerType,
		Status:       t.Status,
		Pricing:      toPricingResponse(t.Pricing),
		StaffName:    t.StaffName,
		Stations:     t.Stations,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
