// Package report renders registry listings for people to read.
package report

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"text/tabwriter"

	"github.com/ekisa-team/campus/internal/registry"
)

var (
	ErrStudentNotFound = errors.New("student not found in registry")
	ErrCourseNotFound  = errors.New("course not found in registry")
)

// Transcript writes every course the student is enrolled in, sorted by
// course ID.
func Transcript(w io.Writer, reg *registry.Registry, studentID string) error {
	student, ok := reg.FindStudent(studentID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrStudentNotFound, studentID)
	}

	courses := reg.ListCoursesForStudent(studentID)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\n", student)
	for _, id := range slices.Sorted(maps.Keys(courses)) {
		fmt.Fprintf(tw, "  %s\t%s\n", id, courses[id])
	}

	return tw.Flush()
}

// GradeSheet writes the enrolled students of a course with their grades,
// sorted by student ID. Students no longer registered are marked.
func GradeSheet(w io.Writer, reg *registry.Registry, courseID string) error {
	course, ok := reg.FindCourse(courseID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrCourseNotFound, courseID)
	}
	grades := course.ListStudents()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s (%s)\n", course, course.ID)
	for _, id := range slices.Sorted(maps.Keys(grades)) {
		name := "(not registered)"
		if s, ok := reg.FindStudent(id); ok {
			name = s.FullName()
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", id, name, grades[id])
	}

	return tw.Flush()
}

// Summary writes a grade sheet for every course in insertion order.
func Summary(w io.Writer, reg *registry.Registry) error {
	for _, c := range reg.Courses() {
		if err := GradeSheet(w, reg, c.ID); err != nil {
			return err
		}
	}

	return nil
}
