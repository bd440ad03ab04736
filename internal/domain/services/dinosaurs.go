package services

import (
	"fmt"
	"math"

	"github.com/ersonp/prototypes/internal/domain/entities"
	"github.com/ersonp/prototypes/internal/domain/query"
)

// UncastActor is a human who has not appeared in any movie.
type UncastActor struct {
	Name                string `yaml:"name" json:"name"`
	Nationality         string `yaml:"nationality" json:"nationality"`
	IMDBStarMeterRating int    `yaml:"imdbStarMeterRating" json:"imdbStarMeterRating"`
}

// ActorAges lists the age of an actor in each movie they were cast in.
type ActorAges struct {
	Name string `yaml:"name" json:"name"`
	Ages []int  `yaml:"ages" json:"ages"`
}

// CountAwesomeDinosaurs maps each movie title to the number of awesome
// dinosaurs appearing in it.
func CountAwesomeDinosaurs(movies []entities.Movie, dinosaurs []entities.Dinosaur) *query.Ordered[string, int] {
	species := query.IndexBy(dinosaurs, func(d entities.Dinosaur) string { return d.Name })

	var counts query.Ordered[string, int]
	for _, m := range movies {
		featured := query.Resolve(query.Distinct(m.Dinos), species)
		counts.Set(m.Title, query.Count(featured, func(d entities.Dinosaur) bool { return d.IsAwesome }))
	}
	return &counts
}

// AverageAgePerMovie maps director to movie title to the average age of the
// movie's cast in its release year, rounded down. A movie without any known
// cast member has no average and fails the whole call.
func AverageAgePerMovie(movies []entities.Movie, humans []entities.Human) (*query.Ordered[string, *query.Ordered[string, int]], error) {
	people := query.IndexBy(humans, humanName)

	var byDirector query.Ordered[string, *query.Ordered[string, int]]
	for _, m := range movies {
		cast := query.Resolve(m.Cast(), people)
		mean, err := query.Mean(cast, func(h entities.Human) int { return ageIn(h, m) })
		if err != nil {
			return nil, fmt.Errorf("movie %q: %w", m.Title, err)
		}

		titles, ok := byDirector.Get(m.Director)
		if !ok {
			titles = &query.Ordered[string, int]{}
			byDirector.Set(m.Director, titles)
		}
		titles.Set(m.Title, int(math.Floor(mean)))
	}
	return &byDirector, nil
}

// UncastActors returns the humans missing from every movie's cast, sorted by
// nationality.
func UncastActors(humans []entities.Human, movies []entities.Movie) []UncastActor {
	cast := query.KeySet(movies, entities.Movie.Cast)
	uncast := query.AntiJoin(humans, cast, humanName)
	sorted := query.SortedBy(uncast, query.Ascending(func(h entities.Human) string { return h.Nationality }))
	return query.Map(sorted, func(h entities.Human) UncastActor {
		return UncastActor{
			Name:                h.Name,
			Nationality:         h.Nationality,
			IMDBStarMeterRating: h.IMDBStarMeterRating,
		}
	})
}

// ActorsAgesInMovies lists, for every human cast at least once, their age in
// each of their movies. Humans keep dataset order; ages follow movie order.
func ActorsAgesInMovies(humans []entities.Human, movies []entities.Movie) []ActorAges {
	people := query.IndexBy(humans, humanName)

	var ages query.Groups[string, int]
	for _, m := range movies {
		for _, h := range query.Resolve(query.Distinct(m.Cast()), people) {
			ages.Append(h.Name, ageIn(h, m))
		}
	}

	out := make([]ActorAges, 0, ages.Len())
	for _, h := range humans {
		if a, ok := ages.Get(h.Name); ok {
			out = append(out, ActorAges{Name: h.Name, Ages: a})
		}
	}
	return out
}

func ageIn(h entities.Human, m entities.Movie) int {
	return m.YearReleased - h.YearBorn
}

func humanName(h entities.Human) string { return h.Name }
