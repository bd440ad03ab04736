// Package entities contains the record types of every prototype dataset.
package entities

// Kitten is a single record of the kitties dataset.
type Kitten struct {
	Name  string `yaml:"name" json:"name"`
	Age   int    `yaml:"age" json:"age"`
	Color string `yaml:"color" json:"color"`
}

// Club is a club and the people belonging to it, in roster order.
type Club struct {
	Club    string   `yaml:"club" json:"club"`
	Members []string `yaml:"members" json:"members"`
}

// Mod is a Turing module with its head counts.
type Mod struct {
	Mod         int `yaml:"mod" json:"mod"`
	Students    int `yaml:"students" json:"students"`
	Instructors int `yaml:"instructors" json:"instructors"`
}
