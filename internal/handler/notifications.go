package handler

import (
	"errors"
	"net/http"
	"time"

	mw "github.com/barkada-pos/api/internal/middleware"
	"github.com/barkada-pos/api/internal/notify"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// NotificationHandler serves each role's notification feed.
type NotificationHandler struct {
	store *notify.Store
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(store *notify.Store) *NotificationHandler {
	return &NotificationHandler{store: store}
}

// RegisterRoutes registers notification endpoints on the given Chi router.
func (h *NotificationHandler) RegisterRoutes(r chi.Router) {
	r.Get("/notifications", h.List)
	r.Post("/notifications/{id}/read", h.MarkRead)
}

type notificationResponse struct {
	ID             uuid.UUID `json:"id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Priority       string    `json:"priority"`
	IsRead         bool      `json:"is_read"`
	ActionRequired bool      `json:"action_required"`
	TicketID       string    `json:"ticket_id,omitempty"`
	TableNumber    string    `json:"table_number,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// List returns the caller's feed, urgent first, plus the unread count.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := mw.ClaimsFromContext(r.Context())
	if claims == nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
		return
	}

	notifications := h.store.ForRole(claims.Role)
	out := make([]notificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, notificationResponse{
			ID:             n.ID,
			Type:           n.Type,
			Title:          n.Title,
			Message:        n.Message,
			Priority:       n.Priority,
			IsRead:         n.IsRead,
			ActionRequired: n.ActionRequired,
			TicketID:       n.TicketID,
			TableNumber:    n.TableNumber,
			CreatedAt:      n.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"notifications": out,
		"unread_count":  h.store.UnreadCount(claims.Role),
	})
}

// MarkRead flags one notification as read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid notification id"})
		return
	}

	if err := h.store.MarkRead(id); err != nil {
		if errors.Is(err, notify.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "notification not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "read"})
}
