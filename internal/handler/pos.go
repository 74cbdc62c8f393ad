package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/barkada-pos/api/internal/authz"
	"github.com/barkada-pos/api/internal/catalog"
	"github.com/barkada-pos/api/internal/currency"
	mw "github.com/barkada-pos/api/internal/middleware"
	"github.com/barkada-pos/api/internal/order"
	"github.com/barkada-pos/api/internal/pos"
	"github.com/barkada-pos/api/internal/queue"
	"github.com/barkada-pos/api/internal/ws"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// POSHandler drives the per-staff order screen: composing the order,
// binding tables, and checkout.
type POSHandler struct {
	sessions *pos.Manager
	queue    *queue.Store
	hub      *ws.Hub
}

// NewPOSHandler creates a new POSHandler.
func NewPOSHandler(sessions *pos.Manager, q *queue.Store, hub *ws.Hub) *POSHandler {
	return &POSHandler{sessions: sessions, queue: q, hub: hub}
}

// RegisterRoutes registers POS endpoints on the given Chi router.
func (h *POSHandler) RegisterRoutes(r chi.Router) {
	r.Get("/pos/session", h.GetSession)
	r.Delete("/pos/session", h.ClearOrder)
	r.Post("/pos/session/items", h.AddItem)
	r.Put("/pos/session/items/{id}", h.SetQuantity)
	r.Delete("/pos/session/items/{id}", h.RemoveItem)
	r.Put("/pos/session/table", h.SetTable)
	r.Post("/pos/checkout", h.Checkout)
}

// --- Request / Response types ---

type addItemRequest struct {
	MenuItemID string `json:"menu_item_id"`
}

type setQuantityRequest struct {
	Quantity int32 `json:"quantity"`
}

type setTableRequest struct {
	TableNumber string `json:"table_number"`
}

type lineResponse struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	UnitPrice  string `json:"unit_price"`
	Quantity   int32  `json:"quantity"`
	LineTotal  string `json:"line_total"`
}

type pricingResponse struct {
	Subtotal      string `json:"subtotal"`
	VAT           string `json:"vat"`
	ServiceCharge string `json:"service_charge"`
	GrandTotal    string `json:"grand_total"`
	// GrandTotalDisplay is the peso-formatted total shown on the order
	// screen and printed receipts.
	GrandTotalDisplay string `json:"grand_total_display"`
}

type sessionResponse struct {
	Lines        []lineResponse  `json:"lines"`
	TableNumber  string          `json:"table_number,omitempty"`
	TableService bool            `json:"table_service"`
	Pricing      pricingResponse `json:"pricing"`
	StartedAt    time.Time       `json:"started_at"`
}

type receiptResponse struct {
	Reference    uuid.UUID `json:"reference"`
	TicketNumber string    `json:"ticket_number"`
	AcceptedAt   time.Time `json:"accepted_at"`
}

// --- Handlers ---

// GetSession returns the caller's current order and derived pricing.
func (h *POSHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	op, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(h.sessions.View(op)))
}

// AddItem adds one unit of a menu item to the caller's order.
func (h *POSHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	op, ok := operatorFrom(w, r)
	if !ok {
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.MenuItemID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "menu_item_id is required"})
		return
	}

	snap, err := h.sessions.AddItem(r.Context(), op, req.MenuItemID)
	if err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "menu item not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(snap))
}

// SetQuantity replaces a line's quantity; zero or negative removes it.
func (h *POSHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	op, ok := operatorFrom(w, r)
	if !ok {
		return
	}

	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	snap := h.sessions.SetQuantity(op, chi.URLParam(r, "id"), req.Quantity)
	writeJSON(w, http.StatusOK, toSessionResponse(snap))
}

// RemoveItem deletes a line from the caller's order.
func (h *POSHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	op, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(h.sessions.RemoveItem(op, chi.URLParam(r, "id"))))
}

// SetTable binds the order to a table; switching tables clears the order.
func (h *POSHandler) SetTable(w http.ResponseWriter, r *http.Request) {
	op, ok := operatorFrom(w, r)
	if !ok {
		return
	}

	var req setTableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.TableNumber == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "table_number is required"})
		return
	}

	snap, err := h.sessions.SetTable(r.Context(), op, req.TableNumber)
	if err != nil {
		if errors.Is(err, catalog.ErrTableNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "table not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(snap))
}

// ClearOrder empties the caller's order, keeping any table binding.
func (h *POSHandler) ClearOrder(w http.ResponseWriter, r *http.Request) {
	op, ok := operatorFrom(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(h.sessions.Clear(op)))
}

// Checkout submits the caller's order, announces the new ticket to its
// prep stations, and returns the receipt.
func (h *POSHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	op, ok := operatorFrom(w, r)
	if !ok {
		return
	}

	receipt, err := h.sessions.Checkout(r.Context(), op)
	if err != nil {
		switch {
		case errors.Is(err, pos.ErrNoItems):
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "no items in order"})
		case errors.Is(err, pos.ErrNoTableSelected):
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "no table selected"})
		default:
			log.Printf("ERROR: checkout failed: %v", err)
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": "checkout failed"})
		}
		return
	}

	h.announceTicket(receipt.Reference)

	writeJSON(w, http.StatusCreated, receiptResponse{
		Reference:    receipt.Reference,
		TicketNumber: receipt.TicketNumber,
		AcceptedAt:   receipt.AcceptedAt,
	})
}

// announceTicket broadcasts ticket.created to the stations that will
// prepare it. Broadcast failures never fail the checkout.
func (h *POSHandler) announceTicket(ticketID uuid.UUID) {
	t, err := h.queue.Get(ticketID)
	if err != nil {
		log.Printf("ERROR: ticket %s vanished before broadcast: %v", ticketID, err)
		return
	}

	payload, err := json.Marshal(toTicketResponse(t))
	if err != nil {
		log.Printf("ERROR: failed to marshal ticket event: %v", err)
		return
	}
	h.hub.BroadcastToStations(t.Stations, ws.Event{Type: "ticket.created", Payload: payload})
}

// --- Helpers ---

// operatorFrom builds the session operator from the authenticated claims.
// Table service is a capability, not a role check in the handler.
func operatorFrom(w http.ResponseWriter, r *http.Request) (pos.Operator, bool) {
	claims := mw.ClaimsFromContext(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return pos.Operator{}, false
	}
	return pos.Operator{
		ID:           claims.UserID,
		Name:         claims.FullName,
		TableService: authz.Can(claims.Role, authz.CapTableService),
	}, true
}

func toSessionResponse(s pos.Snapshot) sessionResponse {
	return sessionResponse{
		Lines:        toLineResponses(s.Lines),
		TableNumber:  s.TableNumber,
		TableService: s.TableService,
		Pricing:      toPricingResponse(s.Pricing),
		StartedAt:    s.StartedAt,
	}
}

func toLineResponses(lines []order.Line) []lineResponse {
	out := make([]lineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, lineResponse{
			MenuItemID: l.MenuItemID,
			Name:       l.Name,
			UnitPrice:  l.UnitPrice.StringFixed(2),
			Quantity:   l.Quantity,
			LineTotal:  l.LineTotal().StringFixed(2),
		})
	}
	return out
}

func toPricingResponse(p order.PricingResult) pricingResponse {
	return pricingResponse{
		Subtotal:          p.Subtotal.StringFixed(2),
		VAT:               p.VAT.StringFixed(2),
		ServiceCharge:     p.ServiceCharge.StringFixed(2),
		GrandTotal:        p.GrandTotal.StringFixed(2),
		GrandTotalDisplay: currency.FormatPHP(p.GrandTotal),
	}
}
