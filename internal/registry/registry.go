package registry

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/ekisa-team/campus/internal/roster"
)

// Registry owns the students, instructors and courses of a campus.
// Collections keep insertion order and are scanned linearly by identifier.
type Registry struct {
	students    []*roster.Student
	instructors []*roster.Instructor
	courses     []*roster.Course

	logger            *slog.Logger
	allowIDCollisions bool
	orphanEnrollments bool
	mu                sync.RWMutex
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

func studentID(s *roster.Student) string       { return s.ID }
func instructorID(i *roster.Instructor) string { return i.ID }
func courseID(c *roster.Course) string         { return c.ID }

// indexOf returns the position of the first item whose key equals id, or -1.
func indexOf[T any](items []T, id string, key func(T) string) int {
	return slices.IndexFunc(items, func(item T) bool {
		return key(item) == id
	})
}

// taken reports whether id belongs to an item other than the one at self.
func taken[T any](items []T, self int, id string, key func(T) string) bool {
	for i, item := range items {
		if i != self && key(item) == id {
			return true
		}
	}
	return false
}

// -------------------------
// Students
// -------------------------

// FindStudent returns the student registered under id.
func (r *Registry) FindStudent(id string) (*roster.Student, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.findStudent(id)
}

func (r *Registry) findStudent(id string) (*roster.Student, bool) {
	if i := indexOf(r.students, id, studentID); i >= 0 {
		return r.students[i], true
	}
	return nil, false
}

// AddStudent appends s unless its identifier is already registered.
func (r *Registry) AddStudent(s *roster.Student) roster.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	if indexOf(r.students, s.ID, studentID) >= 0 {
		r.logger.Info(s.FullName()+" already exists", "student_id", s.ID)
		return roster.DuplicateIgnored
	}

	r.students = append(r.students, s)
	return roster.Added
}

// RemoveStudent removes the student registered under id. Unless the registry
// keeps orphaned enrollments, the student is also dropped from every course.
func (r *Registry) RemoveStudent(id string) roster.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOf(r.students, id, studentID)
	if i < 0 {
		r.logger.Info("Student "+id+" does not exist", "student_id", id)
		return roster.NotFound
	}

	r.students = slices.Delete(r.students, i, i+1)
	if !r.orphanEnrollments {
		for _, c := range r.courses {
			c.Drop(id)
		}
	}

	return roster.Removed
}

// UpdateStudent overwrites the student registered under id with the fields
// of values, including its identifier. On a rename the student's course
// entries move to the new identifier unless the registry keeps orphaned
// enrollments.
func (r *Registry) UpdateStudent(id string, values *roster.Student) roster.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOf(r.students, id, studentID)
	if i < 0 {
		r.logger.Info("Student "+id+" does not exist", "student_id", id)
		return roster.NotFound
	}
	if !r.allowIDCollisions && taken(r.students, i, values.ID, studentID) {
		r.logger.Info(values.FullName()+" already exists", "student_id", values.ID)
		return roster.DuplicateIgnored
	}

	if values.ID != id && !r.orphanEnrollments {
		for _, c := range r.courses {
			c.Rekey(id, values.ID)
		}
	}
	r.students[i].Update(values.ID, values.FirstName, values.LastName, values.Major)
	return roster.Updated
}

// Students returns the registered students in insertion order.
func (r *Registry) Students() []*roster.Student {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.students)
}

// -------------------------
// Instructors
// -------------------------

// FindInstructor returns the instructor registered under id.
func (r *Registry) FindInstructor(id string) (*roster.Instructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := indexOf(r.instructors, id, instructorID); i >= 0 {
		return r.instructors[i], true
	}
	return nil, false
}

// AddInstructor appends in unless its identifier is already registered.
func (r *Registry) AddInstructor(in *roster.Instructor) roster.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	if indexOf(r.instructors, in.ID, instructorID) >= 0 {
		r.logger.Info(in.FullName()+" already exists", "instructor_id", in.ID)
		return roster.DuplicateIgnored
	}

	r.instructors = append(r.instructors, in)
	return roster.Added
}

// RemoveInstructor removes the instructor registered under id. Courses keep
// their reference to the removed instructor.
func (r *Registry) RemoveInstructor(id string) roster.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOf(r.instructors, id, instructorID)
	if i < 0 {
		r.logger.Info("Instructor "+id+" does not exist", "instructor_id", id)
		return roster.NotFound
	}

	r.instructors = slices.Delete(r.instructors, i, i+1)
	return roster.Removed
}

// UpdateInstructor overwrites the instructor registered under id with the
// fields of values, including its identifier.
func (r *Registry) UpdateInstructor(id string, values *roster.Instructor) roster.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOf(r.instructors, id, instructorID)
	if i < 0 {
		r.logger.Info("Instructor "+id+" does not exist", "instructor_id", id)
		return roster.NotFound
	}
	if !r.allowIDCollisions && taken(r.instructors, i, values.ID, instructorID) {
		r.logger.Info(values.FullName()+" already exists", "instructor_id", values.ID)
		return roster.DuplicateIgnored
	}

	r.instructors[i].Update(values.ID, values.FirstName, values.LastName, values.Department)
	return roster.Updated
}

// Instructors returns the registered instructors in insertion order.
func (r *Registry) Instructors() []*roster.Instructor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.instructors)
}

// -------------------------
// Courses
// -------------------------

// FindCourse returns the course registered under id.
func (r *Registry) FindCourse(id string) (*roster.Course, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.findCourse(id)
}

func (r *Registry) findCourse(id string) (*roster.Course, bool) {
	if i := indexOf(r.courses, id, courseID); i >= 0 {
		return r.courses[i], true
	}
	return nil, false
}

// AddCourse appends c unless its identifier is already registered.
func (r *Registry) AddCourse(c *roster.Course) roster.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	if indexOf(r.courses, c.ID, courseID) >= 0 {
		r.logger.Info(c.Name+" already exists", "course_id", c.ID)
		return roster.DuplicateIgnored
	}

	r.courses = append(r.courses, c)
	return roster.Added
}

// RemoveCourse removes the course registered under id.
func (r *Registry) RemoveCourse(id string) roster.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOf(r.courses, id, courseID)
	if i < 0 {
		r.logger.Info("Course "+id+" does not exist", "course_id", id)
		return roster.NotFound
	}

	r.courses = slices.Delete(r.courses, i, i+1)
	return roster.Removed
}

// UpdateCourse renames the course registered under id and reassigns its
// instructor from values. Enrollments are kept.
func (r *Registry) UpdateCourse(id string, values *roster.Course) roster.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := indexOf(r.courses, id, courseID)
	if i < 0 {
		r.logger.Info("Course "+id+" does not exist", "course_id", id)
		return roster.NotFound
	}
	if !r.allowIDCollisions && taken(r.courses, i, values.ID, courseID) {
		r.logger.Info(values.Name+" already exists", "course_id", values.ID)
		return roster.DuplicateIgnored
	}

	r.courses[i].Update(values.ID, values.Name, values.Instructor)
	return roster.Updated
}

// Courses returns the registered courses in insertion order.
func (r *Registry) Courses() []*roster.Course {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.courses)
}
