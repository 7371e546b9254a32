package roster

import "fmt"

// Person holds the identity shared by every member of the registry.
// ID is the only field used for lookups.
type Person struct {
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name"  yaml:"last_name"`
	ID        string `json:"id"         yaml:"id"`
}

// FullName returns "first last".
func (p Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p Person) String() string {
	return fmt.Sprintf("This is %s %s with ID NUMBER %s", p.FirstName, p.LastName, p.ID)
}

// Student is a person studying a major.
type Student struct {
	Person

	Major string `json:"major" yaml:"major"`

	// EnrolledCourses is maintained by callers; no registry operation
	// keeps it in sync with course enrollments.
	EnrolledCourses []string `json:"enrolled_courses,omitempty" yaml:"enrolled_courses,omitempty"`
}

// NewStudent creates a new student with no enrolled courses.
func NewStudent(firstName, lastName, id, major string) *Student {
	return &Student{
		Person: Person{FirstName: firstName, LastName: lastName, ID: id},
		Major:  major,
	}
}

func (s *Student) String() string {
	return fmt.Sprintf("This is %s %s and this is your major %s", s.FirstName, s.LastName, s.Major)
}

// Update overwrites every field of the student, identifier included.
func (s *Student) Update(id, firstName, lastName, major string) {
	s.ID = id
	s.FirstName = firstName
	s.LastName = lastName
	s.Major = major
}

// Instructor is a person lecturing for a department.
type Instructor struct {
	Person

	Department string `json:"department" yaml:"department"`
}

// NewInstructor creates a new instructor.
func NewInstructor(firstName, lastName, id, department string) *Instructor {
	return &Instructor{
		Person:     Person{FirstName: firstName, LastName: lastName, ID: id},
		Department: department,
	}
}

func (i *Instructor) String() string {
	return fmt.Sprintf("This is Lecturer %s %s with ID NUMBER %s in %s Department",
		i.FirstName, i.LastName, i.ID, i.Department)
}

// Update overwrites every field of the instructor, identifier included.
func (i *Instructor) Update(id, firstName, lastName, department string) {
	i.ID = id
	i.FirstName = firstName
	i.LastName = lastName
	i.Department = department
}
