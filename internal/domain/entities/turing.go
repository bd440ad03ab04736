package entities

// Instructor teaches in one module and knows a set of topics.
type Instructor struct {
	Name    string   `yaml:"name" json:"name"`
	Module  int      `yaml:"module" json:"module"`
	Teaches []string `yaml:"teaches" json:"teaches"`
}

// Cohort is a group of students currently in one module.
type Cohort struct {
	Cohort       int      `yaml:"cohort" json:"cohort"`
	Module       int      `yaml:"module" json:"module"`
	StudentCount int      `yaml:"studentCount" json:"studentCount"`
	Curriculum   []string `yaml:"curriculum" json:"curriculum"`
}
