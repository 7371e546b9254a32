package roster

// Grade is a course grade that may not have been assigned yet.
// Any string is accepted as a value.
type Grade struct {
	Value    string `json:"value,omitempty" yaml:"value,omitempty"`
	Assigned bool   `json:"assigned"        yaml:"assigned"`
}

// NoGrade is the grade of an enrollment before one is assigned.
var NoGrade = Grade{}

// GradeOf returns an assigned grade holding v.
func GradeOf(v string) Grade {
	return Grade{Value: v, Assigned: true}
}

func (g Grade) String() string {
	if !g.Assigned {
		return "none"
	}
	return g.Value
}
