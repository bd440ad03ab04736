package entities

// Brewery owns an ordered list of beers.
type Brewery struct {
	Name  string `yaml:"name" json:"name"`
	Beers []Beer `yaml:"beers" json:"beers"`
}

// Beer is a single beer on a brewery's menu.
type Beer struct {
	Name string  `yaml:"name" json:"name"`
	Type string  `yaml:"type" json:"type"`
	ABV  float64 `yaml:"abv" json:"abv"`
	IBU  int     `yaml:"ibu" json:"ibu"`
}
