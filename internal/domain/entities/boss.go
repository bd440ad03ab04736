package entities

// Boss is a villain. Sidekicks lists sidekick names; the authoritative link
// is Sidekick.Boss.
type Boss struct {
	Name      string   `yaml:"name" json:"name"`
	Sidekicks []string `yaml:"sidekicks" json:"sidekicks"`
}

// Sidekick refers to its boss by name.
type Sidekick struct {
	Name          string `yaml:"name" json:"name"`
	Boss          string `yaml:"boss" json:"boss"`
	LoyaltyToBoss int    `yaml:"loyaltyToBoss" json:"loyaltyToBoss"`
}
