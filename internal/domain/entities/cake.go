package entities

// Cake is a cake on the bakery shelf.
type Cake struct {
	Flavor   string   `yaml:"cakeFlavor" json:"cakeFlavor"`
	Filling  string   `yaml:"filling" json:"filling"` // empty when the cake has none
	Frosting string   `yaml:"frosting" json:"frosting"`
	Toppings []string `yaml:"toppings" json:"toppings"`
	InStock  int      `yaml:"inStock" json:"inStock"`
}

// Program identifies the track a classroom is used by.
type Program string

const (
	ProgramFrontEnd Program = "FE"
	ProgramBackEnd  Program = "BE"
)

// Classroom is a room and its seating capacity.
type Classroom struct {
	RoomLetter string  `yaml:"roomLetter" json:"roomLetter"`
	Program    Program `yaml:"program" json:"program"`
	Capacity   int     `yaml:"capacity" json:"capacity"`
}
