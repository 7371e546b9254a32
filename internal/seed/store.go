package seed

import "github.com/ekisa-team/campus/internal/roster"

// Store is the subset of the registry the seeder writes to.
type Store interface {
	AddInstructor(in *roster.Instructor) roster.Outcome
	AddStudent(s *roster.Student) roster.Outcome
	AddCourse(c *roster.Course) roster.Outcome

	FindInstructor(id string) (*roster.Instructor, bool)
	FindStudent(id string) (*roster.Student, bool)
	FindCourse(id string) (*roster.Course, bool)

	Enroll(e *roster.Enrollment) roster.Outcome
	AssignGrade(e *roster.Enrollment, grade string) roster.Outcome
}

// Summary counts what a seeding pass changed.
type Summary struct {
	Applied int
	Skipped int
}

func (s *Summary) record(o roster.Outcome) {
	if o.Changed() {
		s.Applied++
	} else {
		s.Skipped++
	}
}
