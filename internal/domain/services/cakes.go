package services

import (
	"github.com/ersonp/prototypes/internal/domain/entities"
	"github.com/ersonp/prototypes/internal/domain/query"
)

// CakeStock is a cake's flavor and how many are on the shelf.
type CakeStock struct {
	Flavor  string `yaml:"flavor" json:"flavor"`
	InStock int    `yaml:"inStock" json:"inStock"`
}

// StockPerCake projects every cake to its flavor and stock.
func StockPerCake(cakes []entities.Cake) []CakeStock {
	return query.Map(cakes, func(c entities.Cake) CakeStock {
		return CakeStock{Flavor: c.Flavor, InStock: c.InStock}
	})
}

// OnlyInStock returns the cakes with at least one in stock.
func OnlyInStock(cakes []entities.Cake) []entities.Cake {
	return query.Filter(cakes, func(c entities.Cake) bool { return c.InStock > 0 })
}

// TotalInventory is the number of cakes on the shelf.
func TotalInventory(cakes []entities.Cake) int {
	return query.Sum(cakes, func(c entities.Cake) int { return c.InStock })
}

// AllToppings lists every topping once, in the order first needed.
func AllToppings(cakes []entities.Cake) []string {
	return query.Distinct(query.FlatMap(cakes, toppings))
}

// GroceryList counts, per topping, how many cakes use it.
func GroceryList(cakes []entities.Cake) *query.Ordered[string, int] {
	var list query.Ordered[string, int]
	for _, topping := range query.FlatMap(cakes, toppings) {
		n, _ := list.Get(topping)
		list.Set(topping, n+1)
	}
	return &list
}

func toppings(c entities.Cake) []string { return c.Toppings }
