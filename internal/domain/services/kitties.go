// Package services implements the dataset prompts as pure functions over
// entity slices. No function modifies its inputs.
package services

import (
	"github.com/ersonp/prototypes/internal/domain/entities"
	"github.com/ersonp/prototypes/internal/domain/query"
)

// OrangeKittyNames returns the names of the orange kittens.
func OrangeKittyNames(kitties []entities.Kitten) []string {
	orange := query.Filter(kitties, func(k entities.Kitten) bool { return k.Color == "orange" })
	return query.Map(orange, func(k entities.Kitten) string { return k.Name })
}

// SortByAge returns the kittens oldest first.
func SortByAge(kitties []entities.Kitten) []entities.Kitten {
	return query.SortedBy(kitties, query.Descending(func(k entities.Kitten) int { return k.Age }))
}

// GrowUp returns copies of the kittens aged by years.
func GrowUp(kitties []entities.Kitten, years int) []entities.Kitten {
	return query.Map(kitties, func(k entities.Kitten) entities.Kitten {
		k.Age += years
		return k
	})
}
