// Package inventory lists stock items for the manager dashboard. Stock
// levels are fixture data and are not decremented by orders; the POS does
// not couple sales to inventory.
package inventory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Item is one stock line: what is on hand, its reorder band, and where it
// comes from.
type Item struct {
	ID            string
	Name          string
	Category      string
	Unit          string
	PurchasePrice decimal.Decimal
	CurrentStock  int
	MinStock      int
	MaxStock      int
	Supplier      string
	LastUpdated   time.Time
}

// IsLow reports whether the item is at or below its minimum stock level.
func (i Item) IsLow() bool {
	return i.CurrentStock <= i.MinStock
}

// Store is a read-only view over the stock list.
type Store struct {
	items []Item
}

// NewStore creates a Store over the given items.
func NewStore(items []Item) *Store {
	return &Store{items: items}
}

// Items returns all stock lines sorted by name.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LowStock returns only the lines at or below their minimum, sorted by
// name. Feeds the low-stock alert on the manager dashboard.
func (s *Store) LowStock() []Item {
	var out []Item
	for _, it := range s.items {
		if it.IsLow() {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// DemoItems is the seed stock list.
func DemoItems(now time.Time) []Item {
	return []Item{
		{ID: "inv-1", Name: "Coca Cola Syrup", Category: "Beverages", Unit: "Liters", PurchasePrice: decimal.NewFromInt(180), CurrentStock: 25, MinStock: 5, MaxStock: 50, Supplier: "Coca Cola Philippines", LastUpdated: now},
		{ID: "inv-2", Name: "Tequila", Category: "Spirits", Unit: "Bottles", PurchasePrice: decimal.NewFromInt(850), CurrentStock: 8, MinStock: 3, MaxStock: 20, Supplier: "Premium Spirits Co.", LastUpdated: now},
		{ID: "inv-3", Name: "Chicken Wings", Category: "Food", Unit: "Kilograms", PurchasePrice: decimal.NewFromInt(320), CurrentStock: 15, MinStock: 5, MaxStock: 30, Supplier: "Fresh Meat Suppliers", LastUpdated: now},
		{ID: "inv-4", Name: "Red Wine", Category: "Wine", Unit: "Bottles", PurchasePrice: decimal.NewFromInt(450), CurrentStock: 12, MinStock: 4, MaxStock: 25, Supplier: "Wine Distributors Inc.", LastUpdated: now},
		{ID: "inv-5", Name: "Beer Bottles", Category: "Beer", Unit: "Cases", PurchasePrice: decimal.NewFromInt(1200), CurrentStock: 6, MinStock: 2, MaxStock: 15, Supplier: "San Miguel Corporation", LastUpdated: now},
	}
}
