package services

import (
	"cmp"
	"fmt"

	"github.com/ersonp/prototypes/internal/domain/entities"
	"github.com/ersonp/prototypes/internal/domain/query"
)

// InstructorLoad is the size of the cohort an instructor currently teaches.
type InstructorLoad struct {
	Name         string `yaml:"name" json:"name"`
	StudentCount int    `yaml:"studentCount" json:"studentCount"`
}

// StudentsForEachInstructor pairs each instructor with the student count of
// every cohort in their module.
func StudentsForEachInstructor(instructors []entities.Instructor, cohorts []entities.Cohort) []InstructorLoad {
	return query.Join(instructors, cohorts, instructorModule, cohortModule,
		func(i entities.Instructor, c entities.Cohort) InstructorLoad {
			return InstructorLoad{Name: i.Name, StudentCount: c.StudentCount}
		})
}

// StudentsPerInstructor maps "cohort<id>" to the number of students per
// instructor teaching that cohort's module.
func StudentsPerInstructor(cohorts []entities.Cohort, instructors []entities.Instructor) (*query.Ordered[string, float64], error) {
	staff := query.GroupBy(instructors, instructorModule)

	var ratios query.Ordered[string, float64]
	for _, c := range cohorts {
		teachers, _ := staff.Get(c.Module)
		ratio, err := query.Ratio(c.StudentCount, len(teachers), "students per instructor")
		if err != nil {
			return nil, fmt.Errorf("cohort %d: %w", c.Cohort, err)
		}
		ratios.Set(fmt.Sprintf("cohort%d", c.Cohort), ratio)
	}
	return &ratios, nil
}

// ModulesPerTeacher maps each instructor to the modules, ascending, whose
// curriculum includes at least one topic the instructor teaches.
func ModulesPerTeacher(instructors []entities.Instructor, cohorts []entities.Cohort) *query.Groups[string, int] {
	modulesByTopic := topicIndex(cohorts, func(c entities.Cohort) []string { return c.Curriculum }, cohortModule)

	var out query.Groups[string, int]
	for _, i := range instructors {
		modules := query.FlatMap(i.Teaches, func(topic string) []int {
			m, _ := modulesByTopic.Get(topic)
			return m
		})
		out.Ensure(i.Name)
		out.Append(i.Name, query.SortedBy(query.Distinct(modules), cmp.Compare[int])...)
	}
	return &out
}

// CurriculumPerTeacher maps each curriculum topic to the instructors who
// teach it. Topics nobody teaches map to an empty list.
func CurriculumPerTeacher(cohorts []entities.Cohort, instructors []entities.Instructor) *query.Groups[string, string] {
	teachersByTopic := topicIndex(instructors,
		func(i entities.Instructor) []string { return i.Teaches },
		func(i entities.Instructor) string { return i.Name })

	topics := query.Distinct(query.FlatMap(cohorts, func(c entities.Cohort) []string { return c.Curriculum }))

	var out query.Groups[string, string]
	for _, topic := range topics {
		teachers, _ := teachersByTopic.Get(topic)
		out.Ensure(topic)
		out.Append(topic, query.Distinct(teachers)...)
	}
	return &out
}

// topicIndex groups value(x) under every topic listed by topics(x).
func topicIndex[T any, V any](xs []T, topics func(T) []string, value func(T) V) *query.Groups[string, V] {
	var index query.Groups[string, V]
	for _, x := range xs {
		v := value(x)
		for _, topic := range topics(x) {
			index.Append(topic, v)
		}
	}
	return &index
}

func instructorModule(i entities.Instructor) int { return i.Module }

func cohortModule(c entities.Cohort) int { return c.Module }
