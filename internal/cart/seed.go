package cart

import "github.com/shopspring/decimal"

// DemoSeed is the starter cart every new session begins with.
func DemoSeed() []Item {
	return []Item{
		{ID: "d1", Name: "Classic Red Bean Dorayaki", UnitPrice: decimal.RequireFromString("3.50"), Quantity: 2},
		{ID: "g1", Name: "Giant Katsu Curry", UnitPrice: decimal.RequireFromString("12.00"), Quantity: 1},
	}
}
