package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/prototypes/internal/domain/entities"
	"github.com/ersonp/prototypes/internal/domain/query"
)

func testInstructors() []entities.Instructor {
	return []entities.Instructor{
		{Name: "Pam", Module: 2, Teaches: []string{"scope", "recursion"}},
		{Name: "Brittany", Module: 2, Teaches: []string{"oop", "pwas"}},
		{Name: "Robbie", Module: 4, Teaches: []string{"node", "pwas"}},
		{Name: "Travis", Module: 1, Teaches: []string{"javascript", "html", "css"}},
		{Name: "Jeo", Module: 5, Teaches: []string{"elixir"}},
	}
}

func testCohorts() []entities.Cohort {
	return []entities.Cohort{
		{Cohort: 1806, Module: 1, StudentCount: 18, Curriculum: []string{"html", "css", "javascript"}},
		{Cohort: 1803, Module: 2, StudentCount: 31, Curriculum: []string{"oop", "scope", "mvc", "javascript"}},
		{Cohort: 1801, Module: 4, StudentCount: 18, Curriculum: []string{"recursion", "pwas", "mvc", "node", "javascript"}},
	}
}

func TestStudentsForEachInstructor(t *testing.T) {
	loads := StudentsForEachInstructor(testInstructors(), testCohorts())

	assert.Equal(t, []InstructorLoad{
		{Name: "Pam", StudentCount: 31},
		{Name: "Brittany", StudentCount: 31},
		{Name: "Robbie", StudentCount: 18},
		{Name: "Travis", StudentCount: 18},
	}, loads, "instructors without a cohort are dropped")
}

func TestStudentsPerInstructor(t *testing.T) {
	ratios, err := StudentsPerInstructor(testCohorts(), testInstructors())

	require.NoError(t, err)
	assert.Equal(t, []string{"cohort1806", "cohort1803", "cohort1801"}, ratios.Keys())
	assert.Equal(t, map[string]float64{
		"cohort1806": 18,
		"cohort1803": 15.5,
		"cohort1801": 18,
	}, ratios.Map())
}

func TestStudentsPerInstructor_Unstaffed(t *testing.T) {
	cohorts := []entities.Cohort{{Cohort: 1901, Module: 3, StudentCount: 20}}

	_, err := StudentsPerInstructor(cohorts, testInstructors())

	require.Error(t, err)
	assert.ErrorIs(t, err, query.ErrEmptyInput)
	assert.Contains(t, err.Error(), "cohort 1901")
}

func TestModulesPerTeacher(t *testing.T) {
	modules := ModulesPerTeacher(testInstructors(), testCohorts())

	assert.Equal(t, []string{"Pam", "Brittany", "Robbie", "Travis", "Jeo"}, modules.Keys())
	assert.Equal(t, map[string][]int{
		"Pam":      {2, 4},
		"Brittany": {2, 4},
		"Robbie":   {4},
		"Travis":   {1, 2, 4},
		"Jeo":      {},
	}, modules.Map())
}

func TestCurriculumPerTeacher(t *testing.T) {
	curriculum := CurriculumPerTeacher(testCohorts(), testInstructors())

	assert.Equal(t, []string{"html", "css", "javascript", "oop", "scope", "mvc", "recursion", "pwas", "node"}, curriculum.Keys())

	js, ok := curriculum.Get("javascript")
	require.True(t, ok)
	assert.Equal(t, []string{"Travis"}, js)

	pwas, _ := curriculum.Get("pwas")
	assert.Equal(t, []string{"Brittany", "Robbie"}, pwas)

	mvc, ok := curriculum.Get("mvc")
	require.True(t, ok, "topics nobody teaches stay listed")
	assert.Empty(t, mvc)

	_, ok = curriculum.Get("elixir")
	assert.False(t, ok, "topics outside every curriculum are absent")
}
