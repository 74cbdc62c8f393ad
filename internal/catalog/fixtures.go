package catalog

import (
	"github.com/barkada-pos/api/internal/enum"
	"github.com/shopspring/decimal"
)

func peso(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// DemoMenu is the demo bar menu, prices in Philippine pesos.
func DemoMenu() []MenuItem {
	return []MenuItem{
		{ID: "na-1", Name: "Coca Cola", Price: peso(45), Category: enum.CategoryNonAlcoholic, IsAvailable: true},
		{ID: "na-2", Name: "Fresh Orange Juice", Price: peso(85), Category: enum.CategoryNonAlcoholic, IsAvailable: true},
		{ID: "na-3", Name: "Iced Coffee", Price: peso(95), Category: enum.CategoryNonAlcoholic, IsAvailable: true},
		{ID: "na-4", Name: "Bottled Water", Price: peso(25), Category: enum.CategoryNonAlcoholic, IsAvailable: true},

		{ID: "al-s-1", Name: "Tequila Shot", Price: peso(120), Category: enum.CategoryAlcoholic, Subcategory: enum.SubcategoryShots, IsAvailable: true},
		{ID: "al-s-2", Name: "Vodka Shot", Price: peso(110), Category: enum.CategoryAlcoholic, Subcategory: enum.SubcategoryShots, IsAvailable: true},
		{ID: "al-g-1", Name: "Red Wine", Price: peso(180), Category: enum.CategoryAlcoholic, Subcategory: enum.SubcategoryGlass, IsAvailable: true},
		{ID: "al-g-2", Name: "Whiskey on Rocks", Price: peso(220), Category: enum.CategoryAlcoholic, Subcategory: enum.SubcategoryGlass, IsAvailable: true},
		{ID: "al-p-1", Name: "Beer Pitcher", Price: peso(450), Category: enum.CategoryAlcoholic, Subcategory: enum.SubcategoryPitcher, IsAvailable: true},
		{ID: "al-b-1", Name: "San Miguel Beer", Price: peso(65), Category: enum.CategoryAlcoholic, Subcategory: enum.SubcategoryBottled, IsAvailable: true},
		{ID: "al-b-2", Name: "Red Horse Beer", Price: peso(70), Category: enum.CategoryAlcoholic, Subcategory: enum.SubcategoryBottled, IsAvailable: true},

		{ID: "f-1", Name: "Chicken Wings", Price: peso(280), Category: enum.CategoryFood, IsAvailable: true},
		{ID: "f-2", Name: "Nachos", Price: peso(220), Category: enum.CategoryFood, IsAvailable: true},
		{ID: "f-3", Name: "Caesar Salad", Price: peso(180), Category: enum.CategoryFood, IsAvailable: true},
		{ID: "f-4", Name: "Grilled Burger", Price: peso(320), Category: enum.CategoryFood, IsAvailable: true},
		{ID: "f-5", Name: "Fish & Chips", Price: peso(380), Category: enum.CategoryFood, IsAvailable: true},
	}
}

// DemoTables is the demo floor plan.
func DemoTables() []Table {
	return []Table{
		{ID: "t1", Number: "T1", Capacity: 4, Status: enum.TableStatusOccupied, Guests: 3},
		{ID: "t2", Number: "T2", Capacity: 2, Status: enum.TableStatusVacant},
		{ID: "t3", Number: "T3", Capacity: 6, Status: enum.TableStatusOccupied, Guests: 5},
		{ID: "t4", Number: "T4", Capacity: 4, Status: enum.TableStatusReserved},
		{ID: "t5", Number: "T5", Capacity: 2, Status: enum.TableStatusOccupied, Guests: 2},
		{ID: "t6", Number: "T6", Capacity: 8, Status: enum.TableStatusVacant},
		{ID: "t7", Number: "T7", Capacity: 4, Status: enum.TableStatusVacant},
		{ID: "t8", Number: "T8", Capacity: 2, Status: enum.TableStatusOccupied, Guests: 2},
	}
}
