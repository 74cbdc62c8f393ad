package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/barkada-pos/api/internal/notify"
	"github.com/barkada-pos/api/internal/reservation"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ReservationHandler manages table bookings.
type ReservationHandler struct {
	store         *reservation.Store
	notifications *notify.Store
}

// NewReservationHandler creates a new ReservationHandler.
func NewReservationHandler(store *reservation.Store, notifications *notify.Store) *ReservationHandler {
	return &ReservationHandler{store: store, notifications: notifications}
}

// RegisterRoutes registers reservation endpoints on the given Chi router.
func (h *ReservationHandler) RegisterRoutes(r chi.Router) {
	r.Get("/reservations", h.List)
	r.Post("/reservations", h.Create)
	r.Patch("/reservations/{id}/status", h.SetStatus)
}

type createReservationRequest struct {
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	CustomerEmail string    `json:"customer_email"`
	Date          time.Time `json:"date"`
	Guests        int       `json:"guests"`
	TableID       string    `json:"table_id"`
	IsPaid        bool      `json:"is_paid"`
	Notes         string    `json:"notes"`
}

type setReservationStatusRequest struct {
	Status string `json:"status"`
}

type reservationResponse struct {
	ID            uuid.UUID `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	CustomerEmail string    `json:"customer_email,omitempty"`
	Date          time.Time `json:"date"`
	Guests        int       `json:"guests"`
	TableID       string    `json:"table_id"`
	Status        string    `json:"status"`
	IsPaid        bool      `json:"is_paid"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// List returns reservations ordered by booking date; ?date=2025-06-14
// narrows to one calendar day.
func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	var reservations []reservation.Reservation
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		day, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		reservations = h.store.ListForDate(day)
	} else {
		reservations = h.store.List()
	}

	out := make([]reservationResponse, 0, len(reservations))
	for _, res := range reservations {
		out = append(out, toReservationResponse(res))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"reservations": out})
}

// Create records a new CONFIRMED reservation.
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	res, err := h.store.Create(reservation.CreateRequest{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Date:          req.Date,
		Guests:        req.Guests,
		TableID:       req.TableID,
		IsPaid:        req.IsPaid,
		Notes:         req.Notes,
	})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	h.notifications.Push(notify.ReservationReminder(res.CustomerName, res.Date, res.Guests))
	writeJSON(w, http.StatusCreated, toReservationResponse(res))
}

// SetStatus settles a CONFIRMED reservation as SEATED, CANCELLED, or NO_SHOW.
func (h *ReservationHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid reservation id"})
		return
	}

	var req setReservationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	res, err := h.store.SetStatus(id, strings.ToUpper(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, reservation.ErrNotFound):
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "reservation not found"})
		case errors.Is(err, reservation.ErrInvalidStatus):
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid reservation status"})
		case errors.Is(err, reservation.ErrAlreadySettled):
			writeJSON(w, http.StatusConflict, map[string]string{"error": "reservation already settled"})
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		}
		return
	}
	writeJSON(w, http.StatusOK, toReservationResponse(res))
}

func toReservationResponse(res reservation.Reservation) reservationResponse {
	return reservationResponse{
		ID:            res.ID,
		CustomerName:  res.CustomerName,
		CustomerPhone: res.CustomerPhone,
		CustomerEmail: res.CustomerEmail,
		Date:          res.Date,
		Guests:        res.Guests,
		TableID:       res.TableID,
		Status:        res.Status,
		IsPaid:        res.IsPaid,
		Notes:         res.Notes,
		CreatedAt:     res.CreatedAt,
	}
}
