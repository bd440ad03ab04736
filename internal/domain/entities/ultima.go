package entities

// Weapon is an Ultima weapon.
type Weapon struct {
	Name   string `yaml:"name" json:"name"`
	Damage int    `yaml:"damage" json:"damage"`
	Range  int    `yaml:"range" json:"range"`
}

// Character carries weapons, referenced by weapon name.
type Character struct {
	Name    string   `yaml:"name" json:"name"`
	Weapons []string `yaml:"weapons" json:"weapons"`
}
