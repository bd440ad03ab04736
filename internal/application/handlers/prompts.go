package handlers

import (
	"github.com/ersonp/prototypes/internal/domain/entities"
	"github.com/ersonp/prototypes/internal/domain/services"
)

// GrowUpYears is how many years the kitties.growUp prompt ages each kitten.
const GrowUpYears = 2

// Prompt is one named query over the catalog.
type Prompt struct {
	Dataset     string
	Name        string
	Description string
	Run         func(c *entities.Catalog) (any, error)
}

// ID returns the prompt identifier, "dataset.name".
func (p Prompt) ID() string {
	return p.Dataset + "." + p.Name
}

// value adapts a query that cannot fail.
func value[T any](fn func(c *entities.Catalog) T) func(c *entities.Catalog) (any, error) {
	return func(c *entities.Catalog) (any, error) {
		return fn(c), nil
	}
}

// fallible adapts a query that returns an error.
func fallible[T any](fn func(c *entities.Catalog) (T, error)) func(c *entities.Catalog) (any, error) {
	return func(c *entities.Catalog) (any, error) {
		v, err := fn(c)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// DefaultPrompts returns every prompt, grouped by dataset in catalog order.
func DefaultPrompts() []Prompt {
	return []Prompt{
		{
			Dataset:     entities.DatasetKitties,
			Name:        "orangeKittyNames",
			Description: "Names of the orange kitties",
			Run: value(func(c *entities.Catalog) []string {
				return services.OrangeKittyNames(c.Kitties)
			}),
		},
		{
			Dataset:     entities.DatasetKitties,
			Name:        "sortByAge",
			Description: "Kitties sorted oldest first",
			Run: value(func(c *entities.Catalog) []entities.Kitten {
				return services.SortByAge(c.Kitties)
			}),
		},
		{
			Dataset:     entities.DatasetKitties,
			Name:        "growUp",
			Description: "Kitties two years older",
			Run: value(func(c *entities.Catalog) []entities.Kitten {
				return services.GrowUp(c.Kitties, GrowUpYears)
			}),
		},
		{
			Dataset:     entities.DatasetClubs,
			Name:        "membersBelongingToClubs",
			Description: "Clubs each member belongs to",
			Run: value(func(c *entities.Catalog) any {
				return services.MembersBelongingToClubs(c.Clubs)
			}),
		},
		{
			Dataset:     entities.DatasetMods,
			Name:        "studentsPerMod",
			Description: "Students per instructor in each mod",
			Run: fallible(func(c *entities.Catalog) ([]services.ModRatio, error) {
				return services.StudentsPerMod(c.Mods)
			}),
		},
		{
			Dataset:     entities.DatasetCakes,
			Name:        "stockPerCake",
			Description: "Flavor and stock of each cake",
			Run: value(func(c *entities.Catalog) []services.CakeStock {
				return services.StockPerCake(c.Cakes)
			}),
		},
		{
			Dataset:     entities.DatasetCakes,
			Name:        "onlyInStock",
			Description: "Cakes that are in stock",
			Run: value(func(c *entities.Catalog) []entities.Cake {
				return services.OnlyInStock(c.Cakes)
			}),
		},
		{
			Dataset:     entities.DatasetCakes,
			Name:        "totalInventory",
			Description: "Total number of cakes in stock",
			Run: value(func(c *entities.Catalog) int {
				return services.TotalInventory(c.Cakes)
			}),
		},
		{
			Dataset:     entities.DatasetCakes,
			Name:        "allToppings",
			Description: "Every topping, without duplicates",
			Run: value(func(c *entities.Catalog) []string {
				return services.AllToppings(c.Cakes)
			}),
		},
		{
			Dataset:     entities.DatasetCakes,
			Name:        "groceryList",
			Description: "How many cakes use each topping",
			Run: value(func(c *entities.Catalog) any {
				return services.GroceryList(c.Cakes)
			}),
		},
		{
			Dataset:     entities.DatasetClassrooms,
			Name:        "feClassrooms",
			Description: "Front end classrooms",
			Run: value(func(c *entities.Catalog) []entities.Classroom {
				return services.FEClassrooms(c.Classrooms)
			}),
		},
		{
			Dataset:     entities.DatasetClassrooms,
			Name:        "totalCapacities",
			Description: "Total capacity per program",
			Run: value(func(c *entities.Catalog) services.Capacities {
				return services.TotalCapacities(c.Classrooms)
			}),
		},
		{
			Dataset:     entities.DatasetClassrooms,
			Name:        "sortByCapacity",
			Description: "Classrooms sorted smallest first",
			Run: value(func(c *entities.Catalog) []entities.Classroom {
				return services.SortByCapacity(c.Classrooms)
			}),
		},
		{
			Dataset:     entities.DatasetBreweries,
			Name:        "getBeerCount",
			Description: "Total number of beers",
			Run: value(func(c *entities.Catalog) int {
				return services.BeerCount(c.Breweries)
			}),
		},
		{
			Dataset:     entities.DatasetBreweries,
			Name:        "getBreweryBeerCount",
			Description: "Number of beers per brewery",
			Run: value(func(c *entities.Catalog) []services.BreweryBeerCount {
				return services.BreweryBeerCounts(c.Breweries)
			}),
		},
		{
			Dataset:     entities.DatasetBreweries,
			Name:        "findHighestAbvBeer",
			Description: "The beer with the highest ABV",
			Run: fallible(func(c *entities.Catalog) (entities.Beer, error) {
				return services.HighestABVBeer(c.Breweries)
			}),
		},
		{
			Dataset:     entities.DatasetTuring,
			Name:        "studentsForEachInstructor",
			Description: "Students each instructor teaches",
			Run: value(func(c *entities.Catalog) []services.InstructorLoad {
				return services.StudentsForEachInstructor(c.Instructors, c.Cohorts)
			}),
		},
		{
			Dataset:     entities.DatasetTuring,
			Name:        "studentsPerInstructor",
			Description: "Students per instructor in each cohort",
			Run: fallible(func(c *entities.Catalog) (any, error) {
				return services.StudentsPerInstructor(c.Cohorts, c.Instructors)
			}),
		},
		{
			Dataset:     entities.DatasetTuring,
			Name:        "modulesPerTeacher",
			Description: "Modules each instructor could teach",
			Run: value(func(c *entities.Catalog) any {
				return services.ModulesPerTeacher(c.Instructors, c.Cohorts)
			}),
		},
		{
			Dataset:     entities.DatasetTuring,
			Name:        "curriculumPerTeacher",
			Description: "Instructors for each curriculum topic",
			Run: value(func(c *entities.Catalog) any {
				return services.CurriculumPerTeacher(c.Cohorts, c.Instructors)
			}),
		},
		{
			Dataset:     entities.DatasetBosses,
			Name:        "bossLoyalty",
			Description: "Total sidekick loyalty per boss",
			Run: value(func(c *entities.Catalog) []services.BossLoyalty {
				return services.BossLoyalties(c.Bosses, c.Sidekicks)
			}),
		},
		{
			Dataset:     entities.DatasetAstronomy,
			Name:        "starsInConstellations",
			Description: "Stars that appear in the constellations list",
			Run: value(func(c *entities.Catalog) []entities.Star {
				return services.StarsInConstellations(c.Constellations, c.Stars)
			}),
		},
		{
			Dataset:     entities.DatasetAstronomy,
			Name:        "starsByColor",
			Description: "Stars grouped by color",
			Run: value(func(c *entities.Catalog) any {
				return services.StarsByColor(c.Stars)
			}),
		},
		{
			Dataset:     entities.DatasetAstronomy,
			Name:        "constellationsStarsExistIn",
			Description: "Constellation of each star, brightest first",
			Run: value(func(c *entities.Catalog) []string {
				return services.ConstellationsStarsExistIn(c.Stars)
			}),
		},
		{
			Dataset:     entities.DatasetUltima,
			Name:        "totalDamage",
			Description: "Total damage of every character's weapons",
			Run: value(func(c *entities.Catalog) int {
				return services.TotalDamage(c.Characters, c.Weapons)
			}),
		},
		{
			Dataset:     entities.DatasetUltima,
			Name:        "charactersByTotal",
			Description: "Total damage and range per character",
			Run: value(func(c *entities.Catalog) []services.CharacterTotal {
				return services.CharactersByTotal(c.Characters, c.Weapons)
			}),
		},
		{
			Dataset:     entities.DatasetDinosaurs,
			Name:        "countAwesomeDinosaurs",
			Description: "Awesome dinosaurs per movie",
			Run: value(func(c *entities.Catalog) any {
				return services.CountAwesomeDinosaurs(c.Movies, c.Dinosaurs)
			}),
		},
		{
			Dataset:     entities.DatasetDinosaurs,
			Name:        "averageAgePerMovie",
			Description: "Average cast age per movie, by director",
			Run: fallible(func(c *entities.Catalog) (any, error) {
				return services.AverageAgePerMovie(c.Movies, c.Humans)
			}),
		},
		{
			Dataset:     entities.DatasetDinosaurs,
			Name:        "uncastActors",
			Description: "Humans not cast in any movie",
			Run: value(func(c *entities.Catalog) []services.UncastActor {
				return services.UncastActors(c.Humans, c.Movies)
			}),
		},
		{
			Dataset:     entities.DatasetDinosaurs,
			Name:        "actorsAgesInMovies",
			Description: "Each cast member's age in their movies",
			Run: value(func(c *entities.Catalog) []services.ActorAges {
				return services.ActorsAgesInMovies(c.Humans, c.Movies)
			}),
		},
	}
}
