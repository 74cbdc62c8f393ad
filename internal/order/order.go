package order

import (
	"github.com/barkada-pos/api/internal/catalog"
	"github.com/shopspring/decimal"
)

// Line is one entry in an in-progress order. Name and unit price are
// snapshotted from the catalog at add time and not re-read afterwards.
type Line struct {
	MenuItemID string
	Name       string
	UnitPrice  decimal.Decimal
	Quantity   int32
}

// LineTotal returns unit price × quantity.
func (l Line) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt32(l.Quantity))
}

// Order is the set of lines a staff member is building for one customer.
// It is owned by a single POS session; callers coordinate access.
// An empty TableNumber means a walk-in customer.
type Order struct {
	Lines       []Line
	TableNumber string
}

// New creates an empty order.
func New() *Order {
	return &Order{}
}

// AddItem increments the quantity of an existing line for the same menu
// item, or appends a new line with quantity 1. Never fails.
func (o *Order) AddItem(item catalog.MenuItem) {
	for i := range o.Lines {
		if o.Lines[i].MenuItemID == item.ID {
			o.Lines[i].Quantity++
			return
		}
	}
	o.Lines = append(o.Lines, Line{
		MenuItemID: item.ID,
		Name:       item.Name,
		UnitPrice:  item.Price,
		Quantity:   1,
	})
}

// SetQuantity replaces the quantity of the line referencing menuItemID.
// A quantity <= 0 removes the line; a line is never stored with a
// non-positive quantity.
func (o *Order) SetQuantity(menuItemID string, quantity int32) {
	if quantity <= 0 {
		o.RemoveItem(menuItemID)
		return
	}
	for i := range o.Lines {
		if o.Lines[i].MenuItemID == menuItemID {
			o.Lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the line referencing menuItemID. No-op if absent.
func (o *Order) RemoveItem(menuItemID string) {
	for i := range o.Lines {
		if o.Lines[i].MenuItemID == menuItemID {
			o.Lines = append(o.Lines[:i], o.Lines[i+1:]...)
			return
		}
	}
}

// Clear empties the order. Used after checkout confirmation and when the
// bound table changes.
func (o *Order) Clear() {
	o.Lines = nil
}

// IsEmpty reports whether the order has no lines.
func (o *Order) IsEmpty() bool {
	return len(o.Lines) == 0
}

// IsWalkIn reports whether the order is unbound from any table.
func (o *Order) IsWalkIn() bool {
	return o.TableNumber == ""
}
