package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/barkada-pos/api/internal/currency"
	"github.com/barkada-pos/api/internal/queue"
	"github.com/barkada-pos/api/internal/report"
	"github.com/go-chi/chi/v5"
)

// ReportsHandler serves the sales rollups on the manager dashboard.
type ReportsHandler struct {
	queue *queue.Store
	now   func() time.Time
}

// NewReportsHandler creates a new ReportsHandler.
func NewReportsHandler(q *queue.Store) *ReportsHandler {
	return &ReportsHandler{queue: q, now: time.Now}
}

// RegisterRoutes registers report endpoints on the given Chi router.
func (h *ReportsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/reports/sales", h.Sales)
}

type topItemResponse struct {
	MenuItemID     string `json:"menu_item_id"`
	Name           string `json:"name"`
	Quantity       int32  `json:"quantity"`
	Revenue        string `json:"revenue"`
	RevenueDisplay string `json:"revenue_display"`
}

type salesReportResponse struct {
	Period              string            `json:"period"`
	From                time.Time         `json:"from"`
	To                  time.Time         `json:"to"`
	OrderCount          int               `json:"order_count"`
	TotalSales          string            `json:"total_sales"`
	TotalSalesDisplay   string            `json:"total_sales_display"`
	AverageOrder        string            `json:"average_order"`
	AverageOrderDisplay string            `json:"average_order_display"`
	TopItems            []topItemResponse `json:"top_items"`
}

// Sales returns the rollup for ?period=daily|weekly|monthly|yearly,
// defaulting to the current day.
func (h *ReportsHandler) Sales(w http.ResponseWriter, r *http.Request) {
	period := strings.ToLower(r.URL.Query().Get("period"))
	if period == "" {
		period = report.PeriodDaily
	}

	from, to, err := report.Window(period, h.now())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid period, expected daily, weekly, monthly, or yearly"})
		return
	}

	s := report.Build(period, h.queue.List(""), from, to)

	topItems := make([]topItemResponse, 0, len(s.TopItems))
	for _, it := range s.TopItems {
		topItems = append(topItems, topItemResponse{
			MenuItemID:     it.MenuItemID,
			Name:           it.Name,
			Quantity:       it.Quantity,
			Revenue:        it.Revenue.StringFixed(2),
			RevenueDisplay: currency.FormatPHP(it.Revenue),
		})
	}

	writeJSON(w, http.StatusOK, salesReportResponse{
		Period:              s.Period,
		From:                s.From,
		To:                  s.To,
		OrderCount:          s.OrderCount,
		TotalSales:          s.TotalSales.StringFixed(2),
		TotalSalesDisplay:   currency.FormatPHP(s.TotalSales),
		AverageOrder:        s.AverageOrder.StringFixed(2),
		AverageOrderDisplay: currency.FormatPHP(s.AverageOrder),
		TopItems:            topItems,
	})
}
