package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/prototypes/internal/domain/entities"
	"github.com/ersonp/prototypes/internal/domain/query"
)

func testBreweries() []entities.Brewery {
	return []entities.Brewery{
		{Name: "Little Machine Brew", Beers: []entities.Beer{
			{Name: "Fated Farmhouse", Type: "Farmhouse Ale", ABV: 6.6, IBU: 36},
			{Name: "Bear Lake Blueberry", Type: "Fruit Beer", ABV: 10.9, IBU: 15},
		}},
		{Name: "Ratio Beerworks", Beers: []entities.Beer{
			{Name: "Dear You", Type: "French Saison", ABV: 6.6, IBU: 25},
		}},
		{Name: "Woods Boss Brewing", Beers: []entities.Beer{
			{Name: "Barrel Aged Nature's Sweater", Type: "Barley Wine", ABV: 10.9, IBU: 40},
		}},
		{Name: "Empty Taps"},
	}
}

func TestBeerCount(t *testing.T) {
	assert.Equal(t, 4, BeerCount(testBreweries()))
	assert.Equal(t, 0, BeerCount(nil))
}

func TestBreweryBeerCounts(t *testing.T) {
	assert.Equal(t, []BreweryBeerCount{
		{Name: "Little Machine Brew", BeerCount: 2},
		{Name: "Ratio Beerworks", BeerCount: 1},
		{Name: "Woods Boss Brewing", BeerCount: 1},
		{Name: "Empty Taps", BeerCount: 0},
	}, BreweryBeerCounts(testBreweries()))
}

func TestHighestABVBeer(t *testing.T) {
	beer, err := HighestABVBeer(testBreweries())

	require.NoError(t, err)
	assert.Equal(t, "Bear Lake Blueberry", beer.Name, "first beer of a tie wins")
}

func TestHighestABVBeer_NoBeers(t *testing.T) {
	_, err := HighestABVBeer([]entities.Brewery{{Name: "Empty Taps"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, query.ErrEmptyInput)
}
