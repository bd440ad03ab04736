package services

import (
	"encoding/json"

	"github.com/ersonp/prototypes/internal/domain/entities"
	"github.com/ersonp/prototypes/internal/domain/query"
)

// WeaponTotals is the combined damage and range of a set of weapons.
type WeaponTotals struct {
	Damage int `yaml:"damage" json:"damage"`
	Range  int `yaml:"range" json:"range"`
}

// CharacterTotal is a character's combined weapon stats. It encodes as a
// single-key object: {"Avatar": {"damage": 27, "range": 24}}.
type CharacterTotal struct {
	Name string
	WeaponTotals
}

// MarshalJSON encodes the total keyed by character name.
func (c CharacterTotal) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]WeaponTotals{c.Name: c.WeaponTotals})
}

// MarshalYAML encodes the total keyed by character name.
func (c CharacterTotal) MarshalYAML() (any, error) {
	return map[string]WeaponTotals{c.Name: c.WeaponTotals}, nil
}

// TotalDamage sums the damage of every weapon each character carries.
// Weapons missing from the armory count for nothing.
func TotalDamage(characters []entities.Character, weapons []entities.Weapon) int {
	armory := query.IndexBy(weapons, weaponName)
	return query.Sum(characters, func(c entities.Character) int {
		return totalsOf(query.Resolve(c.Weapons, armory)).Damage
	})
}

// CharactersByTotal returns each character's combined weapon damage and range.
func CharactersByTotal(characters []entities.Character, weapons []entities.Weapon) []CharacterTotal {
	armory := query.IndexBy(weapons, weaponName)
	return query.Map(characters, func(c entities.Character) CharacterTotal {
		return CharacterTotal{Name: c.Name, WeaponTotals: totalsOf(query.Resolve(c.Weapons, armory))}
	})
}

func totalsOf(weapons []entities.Weapon) WeaponTotals {
	return WeaponTotals{
		Damage: query.Sum(weapons, func(w entities.Weapon) int { return w.Damage }),
		Range:  query.Sum(weapons, func(w entities.Weapon) int { return w.Range }),
	}
}

func weaponName(w entities.Weapon) string { return w.Name }
