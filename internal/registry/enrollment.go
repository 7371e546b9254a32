package registry

import (
	"github.com/ekisa-team/campus/internal/roster"
)

// Enroll adds the enrollment's student to the registered course with the
// same identifier. Both the course and the student must be registered.
func (r *Registry) Enroll(e *roster.Enrollment) roster.Outcome {
	r.mu.RLock()
	defer r.mu.RUnlock()

	course, ok := r.findCourse(e.Course.ID)
	if !ok {
		r.logger.Info("Course "+e.Course.ID+" does not exist", "course_id", e.Course.ID)
		return roster.NotFound
	}
	if course.Has(e.Student.ID) {
		r.logger.Info("Student has been enrolled", "student_id", e.Student.ID, "course_id", course.ID)
		return roster.AlreadyEnrolled
	}
	if _, ok := r.findStudent(e.Student.ID); !ok {
		r.logger.Info(e.Student.FullName()+" does not exist", "student_id", e.Student.ID)
		return roster.NotFound
	}

	return course.AddStudent(e)
}

// Unenroll removes the enrollment's student from the registered course.
// The student does not need to be registered, so orphaned entries can be
// cleaned up.
func (r *Registry) Unenroll(e *roster.Enrollment) roster.Outcome {
	r.mu.RLock()
	defer r.mu.RUnlock()

	course, ok := r.findCourse(e.Course.ID)
	if !ok {
		r.logger.Info("Course "+e.Course.ID+" does not exist", "course_id", e.Course.ID)
		return roster.NotFound
	}

	outcome := course.Drop(e.Student.ID)
	if outcome == roster.NotFound {
		r.logger.Info(e.Student.FullName()+" does not exist", "student_id", e.Student.ID, "course_id", course.ID)
	}

	return outcome
}

// AssignGrade assigns grade to the enrollment and writes it into the
// registered course. The student's entry is created if it is missing.
func (r *Registry) AssignGrade(e *roster.Enrollment, grade string) roster.Outcome {
	r.mu.RLock()
	defer r.mu.RUnlock()

	course, ok := r.findCourse(e.Course.ID)
	if !ok {
		r.logger.Info("Course "+e.Course.ID+" does not exist", "course_id", e.Course.ID)
		return roster.NotFound
	}
	if _, ok := r.findStudent(e.Student.ID); !ok {
		r.logger.Info(e.Student.FullName()+" does not exist", "student_id", e.Student.ID)
		return roster.NotFound
	}

	course.SetGrade(e.Student.ID, e.AssignGrade(grade))
	return roster.Graded
}

// CourseStudents returns a copy of the student ID to grade mapping of the
// course registered under courseID.
func (r *Registry) CourseStudents(courseID string) (map[string]roster.Grade, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	course, ok := r.findCourse(courseID)
	if !ok {
		return nil, false
	}

	return course.ListStudents(), true
}

// ListCoursesForStudent maps the identifier of every course studentID is
// enrolled in to "{course name} by {instructor}".
func (r *Registry) ListCoursesForStudent(studentID string) map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]string)
	for _, c := range r.courses {
		if c.Has(studentID) {
			result[c.ID] = c.String()
		}
	}

	return result
}
