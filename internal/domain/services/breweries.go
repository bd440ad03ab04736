package services

import (
	"fmt"

	"github.com/ersonp/prototypes/internal/domain/entities"
	"github.com/ersonp/prototypes/internal/domain/query"
)

// BreweryBeerCount is the size of one brewery's menu.
type BreweryBeerCount struct {
	Name      string `yaml:"name" json:"name"`
	BeerCount int    `yaml:"beerCount" json:"beerCount"`
}

// BeerCount is the number of beers across every brewery.
func BeerCount(breweries []entities.Brewery) int {
	return query.Sum(breweries, func(b entities.Brewery) int { return len(b.Beers) })
}

// BreweryBeerCounts lists each brewery with the number of beers it makes.
func BreweryBeerCounts(breweries []entities.Brewery) []BreweryBeerCount {
	return query.Map(breweries, func(b entities.Brewery) BreweryBeerCount {
		return BreweryBeerCount{Name: b.Name, BeerCount: len(b.Beers)}
	})
}

// HighestABVBeer returns the strongest beer. The first one listed wins a tie.
func HighestABVBeer(breweries []entities.Brewery) (entities.Beer, error) {
	beers := query.FlatMap(breweries, func(b entities.Brewery) []entities.Beer { return b.Beers })
	beer, err := query.MaxBy(beers, func(b entities.Beer) float64 { return b.ABV })
	if err != nil {
		return entities.Beer{}, fmt.Errorf("finding highest abv beer: %w", err)
	}
	return beer, nil
}
