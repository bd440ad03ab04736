package entities

// Dataset names, matching fixture file names and prompt groups.
const (
	DatasetKitties    = "kitties"
	DatasetClubs      = "clubs"
	DatasetMods       = "mods"
	DatasetCakes      = "cakes"
	DatasetClassrooms = "classrooms"
	DatasetBreweries  = "breweries"
	DatasetTuring     = "turing"
	DatasetBosses     = "bosses"
	DatasetAstronomy  = "astronomy"
	DatasetUltima     = "ultima"
	DatasetDinosaurs  = "dinosaurs"
)

// DatasetNames lists every dataset in the order prompts are presented.
var DatasetNames = []string{
	DatasetKitties,
	DatasetClubs,
	DatasetMods,
	DatasetCakes,
	DatasetClassrooms,
	DatasetBreweries,
	DatasetTuring,
	DatasetBosses,
	DatasetAstronomy,
	DatasetUltima,
	DatasetDinosaurs,
}

// IsDataset checks if name is a known dataset.
func IsDataset(name string) bool {
	for _, n := range DatasetNames {
		if n == name {
			return true
		}
	}
	return false
}

// Catalog holds every dataset. It is loaded once and treated as read-only.
type Catalog struct {
	Kitties        []Kitten
	Clubs          []Club
	Mods           []Mod
	Cakes          []Cake
	Classrooms     []Classroom
	Breweries      []Brewery
	Instructors    []Instructor
	Cohorts        []Cohort
	Bosses         []Boss
	Sidekicks      []Sidekick
	Stars          []Star
	Constellations []Constellation
	Weapons        []Weapon
	Characters     []Character
	Dinosaurs      []Dinosaur
	Humans         []Human
	Movies         []Movie
}

// Counts returns the number of records per collection of a dataset.
// Collections are returned in a fixed order.
func (c *Catalog) Counts(dataset string) []CollectionCount {
	switch dataset {
	case DatasetKitties:
		return []CollectionCount{{"kitties", len(c.Kitties)}}
	case DatasetClubs:
		return []CollectionCount{{"clubs", len(c.Clubs)}}
	case DatasetMods:
		return []CollectionCount{{"mods", len(c.Mods)}}
	case DatasetCakes:
		return []CollectionCount{{"cakes", len(c.Cakes)}}
	case DatasetClassrooms:
		return []CollectionCount{{"classrooms", len(c.Classrooms)}}
	case DatasetBreweries:
		return []CollectionCount{{"breweries", len(c.Breweries)}}
	case DatasetTuring:
		return []CollectionCount{{"instructors", len(c.Instructors)}, {"cohorts", len(c.Cohorts)}}
	case DatasetBosses:
		return []CollectionCount{{"bosses", len(c.Bosses)}, {"sidekicks", len(c.Sidekicks)}}
	case DatasetAstronomy:
		return []CollectionCount{{"stars", len(c.Stars)}, {"constellations", len(c.Constellations)}}
	case DatasetUltima:
		return []CollectionCount{{"weapons", len(c.Weapons)}, {"characters", len(c.Characters)}}
	case DatasetDinosaurs:
		return []CollectionCount{{"dinosaurs", len(c.Dinosaurs)}, {"humans", len(c.Humans)}, {"movies", len(c.Movies)}}
	default:
		return nil
	}
}

// CollectionCount is the size of one collection within a dataset.
type CollectionCount struct {
	Collection string `yaml:"collection" json:"collection"`
	Records    int    `yaml:"records" json:"records"`
}
