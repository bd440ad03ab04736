package entities

// Star is one of the brightest stars in the night sky. Constellation is the
// name of the constellation it belongs to, or empty.
type Star struct {
	Name                string  `yaml:"name" json:"name"`
	VisualMagnitude     float64 `yaml:"visualMagnitude" json:"visualMagnitude"`
	Constellation       string  `yaml:"constellation" json:"constellation"`
	LightYearsFromEarth float64 `yaml:"lightYearsFromEarth" json:"lightYearsFromEarth"`
	Color               string  `yaml:"color" json:"color"`
}

// Constellation lists the names of the stars that form it.
type Constellation struct {
	Name           string   `yaml:"name" json:"name"`
	AlternateNames []string `yaml:"alternateNames,omitempty" json:"alternateNames,omitempty"`
	Stars          []string `yaml:"stars" json:"stars"`
}
