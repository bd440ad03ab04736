package fixtures

import "github.com/ersonp/prototypes/internal/domain/entities"

// document is the decoded shape of one dataset file.
type document interface {
	apply(c *entities.Catalog)
}

// documents maps each dataset to a constructor for its file shape.
var documents = map[string]func() document{
	entities.DatasetKitties:    func() document { return &kittiesFile{} },
	entities.DatasetClubs:      func() document { return &clubsFile{} },
	entities.DatasetMods:       func() document { return &modsFile{} },
	entities.DatasetCakes:      func() document { return &cakesFile{} },
	entities.DatasetClassrooms: func() document { return &classroomsFile{} },
	entities.DatasetBreweries:  func() document { return &breweriesFile{} },
	entities.DatasetTuring:     func() document { return &turingFile{} },
	entities.DatasetBosses:     func() document { return &bossesFile{} },
	entities.DatasetAstronomy:  func() document { return &astronomyFile{} },
	entities.DatasetUltima:     func() document { return &ultimaFile{} },
	entities.DatasetDinosaurs:  func() document { return &dinosaursFile{} },
}

type kittiesFile struct {
	Kitties []entities.Kitten `yaml:"kitties" json:"kitties"`
}

func (f *kittiesFile) apply(c *entities.Catalog) { c.Kitties = f.Kitties }

type clubsFile struct {
	Clubs []entities.Club `yaml:"clubs" json:"clubs"`
}

func (f *clubsFile) apply(c *entities.Catalog) { c.Clubs = f.Clubs }

type modsFile struct {
	Mods []entities.Mod `yaml:"mods" json:"mods"`
}

func (f *modsFile) apply(c *entities.Catalog) { c.Mods = f.Mods }

type cakesFile struct {
	Cakes []entities.Cake `yaml:"cakes" json:"cakes"`
}

func (f *cakesFile) apply(c *entities.Catalog) { c.Cakes = f.Cakes }

type classroomsFile struct {
	Classrooms []entities.Classroom `yaml:"classrooms" json:"classrooms"`
}

func (f *classroomsFile) apply(c *entities.Catalog) { c.Classrooms = f.Classrooms }

type breweriesFile struct {
	Breweries []entities.Brewery `yaml:"breweries" json:"breweries"`
}

func (f *breweriesFile) apply(c *entities.Catalog) { c.Breweries = f.Breweries }

type turingFile struct {
	Instructors []entities.Instructor `yaml:"instructors" json:"instructors"`
	Cohorts     []entities.Cohort     `yaml:"cohorts" json:"cohorts"`
}

func (f *turingFile) apply(c *entities.Catalog) {
	c.Instructors = f.Instructors
	c.Cohorts = f.Cohorts
}

type bossesFile struct {
	Bosses    []entities.Boss     `yaml:"bosses" json:"bosses"`
	Sidekicks []entities.Sidekick `yaml:"sidekicks" json:"sidekicks"`
}

func (f *bossesFile) apply(c *entities.Catalog) {
	c.Bosses = f.Bosses
	c.Sidekicks = f.Sidekicks
}

type astronomyFile struct {
	Constellations []entities.Constellation `yaml:"constellations" json:"constellations"`
	Stars          []entities.Star          `yaml:"stars" json:"stars"`
}

func (f *astronomyFile) apply(c *entities.Catalog) {
	c.Constellations = f.Constellations
	c.Stars = f.Stars
}

type ultimaFile struct {
	Weapons    []entities.Weapon    `yaml:"weapons" json:"weapons"`
	Characters []entities.Character `yaml:"characters" json:"characters"`
}

func (f *ultimaFile) apply(c *entities.Catalog) {
	c.Weapons = f.Weapons
	c.Characters = f.Characters
}

type dinosaursFile struct {
	Dinosaurs []entities.Dinosaur `yaml:"dinosaurs" json:"dinosaurs"`
	Humans    []entities.Human    `yaml:"humans" json:"humans"`
	Movies    []entities.Movie    `yaml:"movies" json:"movies"`
}

func (f *dinosaursFile) apply(c *entities.Catalog) {
	c.Dinosaurs = f.Dinosaurs
	c.Humans = f.Humans
	c.Movies = f.Movies
}
