package services

import (
	"github.com/ersonp/prototypes/internal/domain/entities"
	"github.com/ersonp/prototypes/internal/domain/query"
)

// StarsInConstellations returns the stars named by any of the
// constellations, in star order.
func StarsInConstellations(constellations []entities.Constellation, stars []entities.Star) []entities.Star {
	named := query.KeySet(constellations, func(c entities.Constellation) []string { return c.Stars })
	return query.SemiJoin(stars, named, starName)
}

// StarsByColor groups the stars by color, colors in first-seen order.
func StarsByColor(stars []entities.Star) *query.Groups[string, entities.Star] {
	return query.GroupBy(stars, func(s entities.Star) string { return s.Color })
}

// ConstellationsStarsExistIn lists the constellation of each star, brightest
// star first. Stars outside any constellation are skipped; a constellation
// appears once per star it holds.
func ConstellationsStarsExistIn(stars []entities.Star) []string {
	brightest := query.SortedBy(stars, query.Ascending(func(s entities.Star) float64 { return s.VisualMagnitude }))
	placed := query.Filter(brightest, func(s entities.Star) bool { return s.Constellation != "" })
	return query.Map(placed, func(s entities.Star) string { return s.Constellation })
}

func starName(s entities.Star) string { return s.Name }
