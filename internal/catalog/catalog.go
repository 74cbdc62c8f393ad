package catalog

import (
	"context"
	"errors"

	"github.com/barkada-pos/api/internal/enum"
	"github.com/shopspring/decimal"
)

var (
	ErrItemNotFound  = errors.New("menu item not found")
	ErrTableNotFound = errors.New("table not found")
)

// MenuItem is immutable reference data: it is not created or destroyed at
// runtime. Availability is a display concern only; the order layer does not
// enforce it.
type MenuItem struct {
	ID          string
	Name        string
	Price       decimal.Decimal
	Category    string
	Subcategory string // empty unless Category is ALCOHOLIC
	IsAvailable bool
}

// Station returns the prep station responsible for the item.
// Food goes to the kitchen, everything drinkable to the bar.
func (m MenuItem) Station() string {
	if m.Category == enum.CategoryFood {
		return enum.StationKitchen
	}
	return enum.StationBar
}

// Table is one entry in the fixture floor plan.
type Table struct {
	ID       string
	Number   string
	Capacity int
	Status   string
	Guests   int
}

// Provider supplies the menu and floor plan. Read-only; the in-process
// implementation is a Catalog seeded with fixture data, but handlers depend
// on this interface so a real catalog backend can be swapped in.
type Provider interface {
	Items(ctx context.Context) []MenuItem
	Item(ctx context.Context, id string) (MenuItem, error)
	Tables(ctx context.Context) []Table
	Table(ctx context.Context, number string) (Table, error)
}

// Catalog is an in-memory Provider over a fixed item and table list.
type Catalog struct {
	items  []MenuItem
	byID   map[string]MenuItem
	tables []Table
	byNum  map[string]Table
}

// New creates a Catalog from the given items and tables.
func New(items []MenuItem, tables []Table) *Catalog {
	c := &Catalog{
		items:  items,
		byID:   make(map[string]MenuItem, len(items)),
		tables: tables,
		byNum:  make(map[string]Table, len(tables)),
	}
	for _, it := range items {
		c.byID[it.ID] = it
	}
	for _, t := range tables {
		c.byNum[t.Number] = t
	}
	return c
}

// Items returns the full menu in catalog order.
func (c *Catalog) Items(_ context.Context) []MenuItem {
	out := make([]MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// Item looks up a single menu item by ID.
func (c *Catalog) Item(_ context.Context, id string) (MenuItem, error) {
	it, ok := c.byID[id]
	if !ok {
		return MenuItem{}, ErrItemNotFound
	}
	return it, nil
}

// Tables returns the floor plan.
func (c *Catalog) Tables(_ context.Context) []Table {
	out := make([]Table, len(c.tables))
	copy(out, c.tables)
	return out
}

// Table looks up a table by its display number.
func (c *Catalog) Table(_ context.Context, number string) (Table, error) {
	t, ok := c.byNum[number]
	if !ok {
		return Table{}, ErrTableNotFound
	}
	return t, nil
}

// FilterItems returns items matching the given category and subcategory.
// Empty filter values match everything.
func FilterItems(items []MenuItem, category, subcategory string) []MenuItem {
	var out []MenuItem
	for _, it := range items {
		if category != "" && it.Category != category {
			continue
		}
		if subcategory != "" && it.Subcategory != subcategory {
			continue
		}
		out = append(out, it)
	}
	return out
}
