package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/barkada-pos/api/internal/catalog"
	"github.com/barkada-pos/api/internal/enum"
)

func TestItemLookup(t *testing.T) {
	c := catalog.New(catalog.DemoMenu(), catalog.DemoTables())
	ctx := context.Background()

	item, err := c.Item(ctx, "al-b-1")
	if err != nil {
		t.Fatalf("item: %v", err)
	}
	if item.Name != "San Miguel Beer" || item.Price.String() != "65" {
		t.Errorf("unexpected item: %+v", item)
	}

	if _, err := c.Item(ctx, "nope"); !errors.Is(err, catalog.ErrItemNotFound) {
		t.Errorf("got %v, want ErrItemNotFound", err)
	}
}

func TestTableLookup(t *testing.T) {
	c := catalog.New(catalog.DemoMenu(), catalog.DemoTables())
	ctx := context.Background()

	table, err := c.Table(ctx, "T6")
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	if table.Capacity != 8 || table.Status != enum.TableStatusVacant {
		t.Errorf("unexpected table: %+v", table)
	}

	if _, err := c.Table(ctx, "T99"); !errors.Is(err, catalog.ErrTableNotFound) {
		t.Errorf("got %v, want ErrTableNotFound", err)
	}
}

func TestStationRouting(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{enum.CategoryFood, enum.StationKitchen},
		{enum.CategoryAlcoholic, enum.StationBar},
		{enum.CategoryNonAlcoholic, enum.StationBar},
	}
	for _, tt := range tests {
		item := catalog.MenuItem{Category: tt.category}
		if got := item.Station(); got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.category, got, tt.want)
		}
	}
}

func TestFilterItems(t *testing.T) {
	items := catalog.DemoMenu()

	shots := catalog.FilterItems(items, enum.CategoryAlcoholic, enum.SubcategoryShots)
	if len(shots) != 2 {
		t.Errorf("shots: got %d, want 2", len(shots))
	}

	food := catalog.FilterItems(items, enum.CategoryFood, "")
	if len(food) != 5 {
		t.Errorf("food: got %d, want 5", len(food))
	}

	all := catalog.FilterItems(items, "", "")
	if len(all) != len(items) {
		t.Errorf("empty filter: got %d, want %d", len(all), len(items))
	}
}
