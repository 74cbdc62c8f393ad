package handler

import (
	"net/http"
	"time"

	"github.com/barkada-pos/api/internal/inventory"
	"github.com/barkada-pos/api/internal/notify"
	"github.com/go-chi/chi/v5"
)

// InventoryHandler serves the stock views on the manager dashboard.
type InventoryHandler struct {
	store         *inventory.Store
	notifications *notify.Store
}

// NewInventoryHandler creates a new InventoryHandler. Items already at
// or below their minimum are pushed as low-stock alerts, so a fresh
// boot surfaces existing shortages to the bar and management.
func NewInventoryHandler(store *inventory.Store, notifications *notify.Store) *InventoryHandler {
	for _, it := range store.LowStock() {
		notifications.Push(notify.LowStock(it.Name, it.CurrentStock, it.Unit))
	}
	return &InventoryHandler{store: store, notifications: notifications}
}

// RegisterRoutes registers inventory endpoints on the given Chi router.
func (h *InventoryHandler) RegisterRoutes(r chi.Router) {
	r.Get("/inventory", h.ListItems)
	r.Get("/inventory/low-stock", h.ListLowStock)
}

type inventoryItemResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Unit          string    `json:"unit"`
	PurchasePrice string    `json:"purchase_price"`
	CurrentStock  int       `json:"current_stock"`
	MinStock      int       `json:"min_stock"`
	MaxStock      int       `json:"max_stock"`
	Supplier      string    `json:"supplier"`
	IsLow         bool      `json:"is_low"`
	LastUpdated   time.Time `json:"last_updated"`
}

// ListItems returns the full stock list.
func (h *InventoryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": toInventoryResponses(h.store.Items())})
}

// ListLowStock returns only items at or below their minimum.
func (h *InventoryHandler) ListLowStock(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": toInventoryResponses(h.store.LowStock())})
}

func toInventoryResponses(items []inventory.Item) []inventoryItemResponse {
	out := make([]inventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, inventoryItemResponse{
			ID:            it.ID,
			Name:          it.Name,
			Category:      it.Category,
			Unit:          it.Unit,
			PurchasePrice: it.PurchasePrice.StringFixed(2),
			CurrentStock:  it.CurrentStock,
			MinStock:      it.MinStock,
			MaxStock:      it.MaxStock,
			Supplier:      it.Supplier,
			IsLow:         it.IsLow(),
			LastUpdated:   it.LastUpdated,
		})
	}
	return out
}
