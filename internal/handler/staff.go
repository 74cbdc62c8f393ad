package handler

import (
	"errors"
	"net/http"

	"github.com/barkada-pos/api/internal/currency"
	"github.com/barkada-pos/api/internal/staff"
	"github.com/go-chi/chi/v5"
)

// StaffHandler serves performance views for the manager dashboard.
type StaffHandler struct {
	store *staff.Store
}

// NewStaffHandler creates a new StaffHandler.
func NewStaffHandler(store *staff.Store) *StaffHandler {
	return &StaffHandler{store: store}
}

// RegisterRoutes registers staff performance endpoints on the given Chi router.
func (h *StaffHandler) RegisterRoutes(r chi.Router) {
	r.Get("/staff/performance", h.TeamPerformance)
	r.Get("/staff/{id}/performance", h.MemberPerformance)
}

type teamPerformanceResponse struct {
	AverageRating float64 `json:"average_rating"`
	TotalOrders   int     `json:"total_orders"`
	TotalSales    string  `json:"total_sales"`
	// TotalSalesDisplay is the compact peso figure for the dashboard
	// summary card, e.g. ₱17.5K.
	TotalSalesDisplay string `json:"total_sales_display"`
	TopPerformer      string `json:"top_performer,omitempty"`
}

type shiftResponse struct {
	OrdersProcessed    int     `json:"orders_processed"`
	AverageServiceTime float64 `json:"average_service_time"`
	TotalSales         string  `json:"total_sales"`
	TicketsScanned     int     `json:"tickets_scanned"`
	IncidentsLogged    int     `json:"incidents_logged"`
	WastageReported    int     `json:"wastage_reported"`
	Rating             float64 `json:"rating"`
}

type memberPerformanceResponse struct {
	StaffID     string          `json:"staff_id"`
	Role        string          `json:"role"`
	Trend       string          `json:"trend"`
	Suggestions []string        `json:"suggestions"`
	Shifts      []shiftResponse `json:"shifts"`
}

// TeamPerformance returns the latest-shift rollup across the team.
func (h *StaffHandler) TeamPerformance(w http.ResponseWriter, r *http.Request) {
	team := h.store.Team()
	writeJSON(w, http.StatusOK, teamPerformanceResponse{
		AverageRating:     team.AverageRating,
		TotalOrders:       team.TotalOrders,
		TotalSales:        team.TotalSales.StringFixed(2),
		TotalSalesDisplay: currency.FormatPHPShort(team.TotalSales),
		TopPerformer:      team.TopPerformer,
	})
}

// MemberPerformance returns one member's shift history with trend and
// coaching suggestions.
func (h *StaffHandler) MemberPerformance(w http.ResponseWriter, r *http.Request) {
	staffID := chi.URLParam(r, "id")

	history, err := h.store.History(staffID)
	if err != nil {
		if errors.Is(err, staff.ErrNoHistory) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no performance history for staff"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	shifts := make([]shiftResponse, 0, len(history))
	for _, rec := range history {
		shifts = append(shifts, shiftResponse{
			OrdersProcessed:    rec.Metrics.OrdersProcessed,
			AverageServiceTime: rec.Metrics.AverageServiceTime,
			TotalSales:         rec.Metrics.TotalSales.StringFixed(2),
			TicketsScanned:     rec.Metrics.TicketsScanned,
			IncidentsLogged:    rec.Metrics.IncidentsLogged,
			WastageReported:    rec.Metrics.WastageReported,
			Rating:             rec.Rating,
		})
	}

	suggestions := staff.Suggestions(history)
	if suggestions == nil {
		suggestions = []string{}
	}

	writeJSON(w, http.StatusOK, memberPerformanceResponse{
		StaffID:     staffID,
		Role:        history[len(history)-1].Role,
		Trend:       staff.Trend(history),
		Suggestions: suggestions,
		Shifts:      shifts,
	})
}
