package services

import (
	"fmt"

	"github.com/ersonp/prototypes/internal/domain/entities"
	"github.com/ersonp/prototypes/internal/domain/query"
)

// MembersBelongingToClubs maps each person to the clubs they belong to, in
// club order.
func MembersBelongingToClubs(clubs []entities.Club) *query.Groups[string, string] {
	var members query.Groups[string, string]
	for _, club := range clubs {
		for _, member := range club.Members {
			members.Append(member, club.Club)
		}
	}
	return &members
}

// ModRatio is the number of students per instructor in a module.
type ModRatio struct {
	Mod                   int     `yaml:"mod" json:"mod"`
	StudentsPerInstructor float64 `yaml:"studentsPerInstructor" json:"studentsPerInstructor"`
}

// StudentsPerMod replaces each module's head counts with their ratio.
func StudentsPerMod(mods []entities.Mod) ([]ModRatio, error) {
	out := make([]ModRatio, 0, len(mods))
	for _, m := range mods {
		ratio, err := query.Ratio(m.Students, m.Instructors, "students per instructor")
		if err != nil {
			return nil, fmt.Errorf("mod %d: %w", m.Mod, err)
		}
		out = append(out, ModRatio{Mod: m.Mod, StudentsPerInstructor: ratio})
	}
	return out, nil
}
