package roster

import (
	"fmt"
	"maps"
	"sync"
)

// Course is taught by one instructor and maps enrolled student IDs to grades.
// The zero value is an empty course.
type Course struct {
	Name       string
	ID         string
	Instructor *Instructor

	enrolled map[string]Grade
	mu       sync.RWMutex
}

// NewCourse creates a course with no enrolled students.
func NewCourse(name, id string, instructor *Instructor) *Course {
	return &Course{
		Name:       name,
		ID:         id,
		Instructor: instructor,
		enrolled:   make(map[string]Grade),
	}
}

// AddStudent enrolls the enrollment's student with the enrollment's grade.
// An existing entry is left untouched.
func (c *Course) AddStudent(e *Enrollment) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.enrolled[e.Student.ID]; ok {
		return AlreadyEnrolled
	}
	c.init()
	c.enrolled[e.Student.ID] = e.Grade
	return Added
}

// RemoveStudent drops the enrollment's student from the course.
func (c *Course) RemoveStudent(e *Enrollment) Outcome {
	return c.Drop(e.Student.ID)
}

// Drop removes the given student ID from the course.
func (c *Course) Drop(studentID string) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.enrolled[studentID]; !ok {
		return NotFound
	}
	delete(c.enrolled, studentID)
	return Removed
}

// SetGrade writes the grade for studentID, inserting the key if it is absent.
func (c *Course) SetGrade(studentID string, g Grade) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.init()
	c.enrolled[studentID] = g
}

// Rekey moves the entry of oldID to newID, replacing any entry newID had.
// It reports whether oldID was enrolled.
func (c *Course) Rekey(oldID, newID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	g, ok := c.enrolled[oldID]
	if !ok || oldID == newID {
		return ok
	}
	delete(c.enrolled, oldID)
	c.enrolled[newID] = g
	return true
}

// init allocates the mapping of a course built as a struct literal.
// Callers must hold c.mu.
func (c *Course) init() {
	if c.enrolled == nil {
		c.enrolled = make(map[string]Grade)
	}
}

// Has reports whether studentID is enrolled.
func (c *Course) Has(studentID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.enrolled[studentID]
	return ok
}

// Update renames the course and reassigns its instructor.
// Enrollments are kept.
func (c *Course) Update(id, name string, instructor *Instructor) {
	c.ID = id
	c.Name = name
	c.Instructor = instructor
}

// ListStudents returns a copy of the student ID to grade mapping.
func (c *Course) ListStudents() map[string]Grade {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.enrolled == nil {
		return make(map[string]Grade)
	}
	return maps.Clone(c.enrolled)
}

// String renders "{name} by {instructor}".
func (c *Course) String() string {
	return fmt.Sprintf("%s by %s", c.Name, c.Instructor)
}
