package roster

import "fmt"

// Enrollment carries a student, a course and a grade through a single call.
// It holds live references, so rendering reflects later updates.
type Enrollment struct {
	Student *Student
	Course  *Course
	Grade   Grade
}

// NewEnrollment pairs a student with a course, without a grade.
func NewEnrollment(student *Student, course *Course) *Enrollment {
	return &Enrollment{
		Student: student,
		Course:  course,
		Grade:   NoGrade,
	}
}

// AssignGrade sets the grade and returns it.
func (e *Enrollment) AssignGrade(grade string) Grade {
	e.Grade = GradeOf(grade)
	return e.Grade
}

func (e *Enrollment) String() string {
	return fmt.Sprintf("%s has been enrolled for %s (%s) with grade %s",
		e.Student, e.Course.Name, e.Course.ID, e.Grade)
}
