package handler

import (
	"net/http"
	"strings"

	"github.com/barkada-pos/api/internal/catalog"
	"github.com/go-chi/chi/v5"
)

// MenuHandler serves the menu and the floor plan.
type MenuHandler struct {
	catalog catalog.Provider
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(cat catalog.Provider) *MenuHandler {
	return &MenuHandler{catalog: cat}
}

// RegisterRoutes registers menu endpoints on the given Chi router.
func (h *MenuHandler) RegisterRoutes(r chi.Router) {
	r.Get("/menu", h.ListMenu)
	r.Get("/tables", h.ListTables)
}

type menuItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`
	Station     string `json:"station"`
	IsAvailable bool   `json:"is_available"`
}

type tableResponse struct {
	ID       string `json:"id"`
	Number   string `json:"number"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
	Guests   int    `json:"guests"`
}

// ListMenu returns the menu, optionally filtered by ?category= and
// ?subcategory= (case-insensitive).
func (h *MenuHandler) ListMenu(w http.ResponseWriter, r *http.Request) {
	category := strings.ToUpper(r.URL.Query().Get("category"))
	subcategory := strings.ToUpper(r.URL.Query().Get("subcategory"))

	items := catalog.FilterItems(h.catalog.Items(r.Context()), category, subcategory)

	out := make([]menuItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, menuItemResponse{
			ID:          it.ID,
			Name:        it.Name,
			Price:       it.Price.StringFixed(2),
			Category:    it.Category,
			Subcategory: it.Subcategory,
			Station:     it.Station(),
			IsAvailable: it.IsAvailable,
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": out})
}

// ListTables returns the floor plan.
func (h *MenuHandler) ListTables(w http.ResponseWriter, r *http.Request) {
	tables := h.catalog.Tables(r.Context())

	out := make([]tableResponse, 0, len(tables))
	for _, t := range tables {
		out = append(out, tableResponse{
			ID:       t.ID,
			Number:   t.Number,
			Capacity: t.Capacity,
			Status:   t.Status,
			Guests:   t.Guests,
		})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tables": out})
}
