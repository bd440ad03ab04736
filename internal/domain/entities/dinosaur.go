package entities

// Dinosaur is a species appearing in the movies.
type Dinosaur struct {
	Name      string `yaml:"name" json:"name"`
	Carnivore bool   `yaml:"carnivore" json:"carnivore"`
	Herbivore bool   `yaml:"herbivore" json:"herbivore"`
	Omnivore  bool   `yaml:"omnivore" json:"omnivore"`
	IsAwesome bool   `yaml:"isAwesome" json:"isAwesome"`
}

// Human is an actor who may or may not have been cast.
type Human struct {
	Name                string `yaml:"name" json:"name"`
	YearBorn            int    `yaml:"yearBorn" json:"yearBorn"`
	Nationality         string `yaml:"nationality" json:"nationality"`
	IMDBStarMeterRating int    `yaml:"imdbStarMeterRating" json:"imdbStarMeterRating"`
}

// Movie references its cast and its dinosaurs by name.
type Movie struct {
	Title            string   `yaml:"title" json:"title"`
	Director         string   `yaml:"director" json:"director"`
	Headliners       []string `yaml:"leadActors" json:"leadActors"`
	SupportingActors []string `yaml:"otherActors" json:"otherActors"`
	Dinos            []string `yaml:"dinos" json:"dinos"`
	YearReleased     int      `yaml:"yearReleased" json:"yearReleased"`
}

// Cast returns the lead actors followed by the other actors.
func (m Movie) Cast() []string {
	cast := make([]string, 0, len(m.Headliners)+len(m.SupportingActors))
	cast = append(cast, m.Headliners...)
	return append(cast, m.SupportingActors...)
}
