package models

import "github.com/shopspring/decimal"

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// DefaultMenu is the full diner menu, loaded into the catalog on startup.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{ID: "d1", Name: "Classic Red Bean Dorayaki", Description: "The original and best!", Price: price("3.50"), Category: "dorayaki"},
		{ID: "d2", Name: "Matcha Cream Dorayaki", Description: "Earthy matcha cream filling.", Price: price("4.00"), Category: "dorayaki"},
		{ID: "d3", Name: "Chocolate Custard Dorayaki", Description: "For the chocolate lovers.", Price: price("4.25"), Category: "dorayaki"},
		{ID: "g1", Name: "Giant Katsu Curry", Description: "A huge portion of crispy katsu and rich curry.", Price: price("12.00"), Category: "power-meals"},
		{ID: "g2", Name: "Super Stamina Ramen", Description: "Packed with toppings to keep you going.", Price: price("11.50"), Category: "power-meals"},
		{ID: "s1", Name: "Sweet Potato Cake", Description: "A light and fluffy cake made with sweet potatoes.", Price: price("5.00"), Category: "sweet-treats"},
		{ID: "s2", Name: "Strawberry Parfait", Description: "Layers of cream, sponge, and fresh strawberries.", Price: price("6.50"), Category: "sweet-treats"},
		{ID: "sp1", Name: "Memory Bread French Toast", Description: "Ace your day! French toast made with 'Memory Bread' (syrup not included).", Price: price("7.50"), Category: "specials", Special: true},
		{ID: "sp2", Name: "Time Kerchief Aged Steak", Description: "Aged to perfection in moments! Tender and juicy.", Price: price("18.00"), Category: "specials", Special: true},
		{ID: "sp3", Name: "Anywhere Door Doughnuts", Description: "A portal to deliciousness! Assorted flavors.", Price: price("6.00"), Category: "specials", Special: true},
	}
}
