package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ersonp/prototypes/internal/domain/entities"
)

func testCakes() []entities.Cake {
	return []entities.Cake{
		{Flavor: "yellow", Filling: "citrus glaze", Toppings: []string{"berries", "edible flowers"}, InStock: 14},
		{Flavor: "dark chocolate", Toppings: []string{"cocoa", "sugar"}, InStock: 15},
	}
}

func TestStockPerCake(t *testing.T) {
	assert.Equal(t, []CakeStock{
		{Flavor: "yellow", InStock: 14},
		{Flavor: "dark chocolate", InStock: 15},
	}, StockPerCake(testCakes()))
}

func TestOnlyInStock(t *testing.T) {
	cakes := append(testCakes(), entities.Cake{Flavor: "white chiffon", InStock: 0})

	inStock := OnlyInStock(cakes)

	assert.Len(t, inStock, 2)
	for _, c := range inStock {
		assert.Positive(t, c.InStock)
	}
}

func TestTotalInventory(t *testing.T) {
	tests := []struct {
		name     string
		cakes    []entities.Cake
		expected int
	}{
		{name: "two cakes", cakes: testCakes(), expected: 29},
		{name: "no cakes", cakes: nil, expected: 0},
		{name: "reversed order", cakes: []entities.Cake{testCakes()[1], testCakes()[0]}, expected: 29},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TotalInventory(tt.cakes))
		})
	}
}

func TestAllToppings(t *testing.T) {
	cakes := append(testCakes(), entities.Cake{Flavor: "butter", Toppings: []string{"sugar", "berries", "fresh fruit"}})

	assert.Equal(t, []string{"berries", "edible flowers", "cocoa", "sugar", "fresh fruit"}, AllToppings(cakes))
	assert.Empty(t, AllToppings(nil))
}

func TestGroceryList(t *testing.T) {
	cakes := append(testCakes(), entities.Cake{Flavor: "butter", Toppings: []string{"sugar", "berries"}})

	list := GroceryList(cakes)

	assert.Equal(t, []string{"berries", "edible flowers", "cocoa", "sugar"}, list.Keys())
	assert.Equal(t, map[string]int{
		"berries":        2,
		"edible flowers": 1,
		"cocoa":          1,
		"sugar":          2,
	}, list.Map())
}
