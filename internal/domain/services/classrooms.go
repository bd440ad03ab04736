package services

import (
	"github.com/ersonp/prototypes/internal/domain/entities"
	"github.com/ersonp/prototypes/internal/domain/query"
)

// Capacities is the seating total of each program.
type Capacities struct {
	FECapacity int `yaml:"feCapacity" json:"feCapacity"`
	BECapacity int `yaml:"beCapacity" json:"beCapacity"`
}

// FEClassrooms returns the front-end classrooms.
func FEClassrooms(classrooms []entities.Classroom) []entities.Classroom {
	return query.Filter(classrooms, inProgram(entities.ProgramFrontEnd))
}

// TotalCapacities sums classroom capacity per program.
func TotalCapacities(classrooms []entities.Classroom) Capacities {
	capacity := func(c entities.Classroom) int { return c.Capacity }
	return Capacities{
		FECapacity: query.Sum(query.Filter(classrooms, inProgram(entities.ProgramFrontEnd)), capacity),
		BECapacity: query.Sum(query.Filter(classrooms, inProgram(entities.ProgramBackEnd)), capacity),
	}
}

// SortByCapacity returns the classrooms smallest first.
func SortByCapacity(classrooms []entities.Classroom) []entities.Classroom {
	return query.SortedBy(classrooms, query.Ascending(func(c entities.Classroom) int { return c.Capacity }))
}

func inProgram(p entities.Program) func(entities.Classroom) bool {
	return func(c entities.Classroom) bool { return c.Program == p }
}
