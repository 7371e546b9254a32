package registry

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekisa-team/campus/internal/roster"
)

func quietRegistry(opts ...Option) *Registry {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(append([]Option{WithLogger(logger)}, opts...)...)
}

func TestRegistry_AddAndFindStudent(t *testing.T) {
	reg := quietRegistry()
	ada := roster.NewStudent("Ada", "Lovelace", "S1", "CS")

	assert.Equal(t, roster.Added, reg.AddStudent(ada))

	got, ok := reg.FindStudent("S1")
	require.True(t, ok)
	assert.Same(t, ada, got)

	_, ok = reg.FindStudent("missing")
	assert.False(t, ok)
}

func TestRegistry_AddStudentDuplicate(t *testing.T) {
	var buf bytes.Buffer
	reg := New(WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	first := roster.NewStudent("Ada", "Lovelace", "S1", "CS")
	reg.AddStudent(first)

	outcome := reg.AddStudent(roster.NewStudent("Other", "Person", "S1", "Math"))
	assert.Equal(t, roster.DuplicateIgnored, outcome)
	assert.Len(t, reg.Students(), 1)
	assert.Contains(t, buf.String(), "Other Person already exists")

	got, _ := reg.FindStudent("S1")
	assert.Same(t, first, got)
}

func TestRegistry_InsertionOrder(t *testing.T) {
	reg := quietRegistry()
	ids := []string{"S3", "S1", "S2"}
	for _, id := range ids {
		reg.AddStudent(roster.NewStudent("N", "N", id, "CS"))
	}

	var got []string
	for _, s := range reg.Students() {
		got = append(got, s.ID)
	}
	assert.Equal(t, ids, got)
}

func TestRegistry_RemoveStudent(t *testing.T) {
	reg := quietRegistry()
	reg.AddStudent(roster.NewStudent("A", "A", "S1", "CS"))
	reg.AddStudent(roster.NewStudent("B", "B", "S2", "CS"))
	reg.AddStudent(roster.NewStudent("C", "C", "S3", "CS"))

	assert.Equal(t, roster.NotFound, reg.RemoveStudent("S9"))
	assert.Len(t, reg.Students(), 3)

	assert.Equal(t, roster.Removed, reg.RemoveStudent("S2"))
	students := reg.Students()
	require.Len(t, students, 2)
	assert.Equal(t, "S1", students[0].ID)
	assert.Equal(t, "S3", students[1].ID)
}

func TestRegistry_RemoveStudentCascades(t *testing.T) {
	reg, ada, algo := enrolledFixture(t)

	assert.Equal(t, roster.Removed, reg.RemoveStudent(ada.ID))
	assert.Empty(t, algo.ListStudents())
}

func TestRegistry_RemoveStudentOrphaned(t *testing.T) {
	reg, ada, algo := enrolledFixture(t, WithOrphanedEnrollments())

	assert.Equal(t, roster.Removed, reg.RemoveStudent(ada.ID))
	assert.Equal(t, map[string]roster.Grade{"S1": roster.NoGrade}, algo.ListStudents())
}

func TestRegistry_StudentsReturnsCopy(t *testing.T) {
	reg := quietRegistry()
	reg.AddStudent(roster.NewStudent("A", "A", "S1", "CS"))

	students := reg.Students()
	students[0] = roster.NewStudent("X", "X", "SX", "CS")

	_, ok := reg.FindStudent("S1")
	assert.True(t, ok)
}

func TestRegistry_UpdateStudent(t *testing.T) {
	reg := quietRegistry()
	ada := roster.NewStudent("Ada", "Lovelace", "S1", "CS")
	reg.AddStudent(ada)

	outcome := reg.UpdateStudent("S1", roster.NewStudent("Ada", "King", "S1", "Math"))
	assert.Equal(t, roster.Updated, outcome)
	assert.Equal(t, "King", ada.LastName)
	assert.Equal(t, "Math", ada.Major)

	assert.Equal(t, roster.NotFound, reg.UpdateStudent("S9", roster.NewStudent("", "", "S9", "")))
}

func TestRegistry_UpdateStudentRename(t *testing.T) {
	reg := quietRegistry()
	ada := roster.NewStudent("Ada", "Lovelace", "S1", "CS")
	reg.AddStudent(ada)
	reg.AddStudent(roster.NewStudent("Bob", "Smith", "S2", "CS"))

	// Renaming onto a taken identifier is rejected
	outcome := reg.UpdateStudent("S1", roster.NewStudent("Ada", "Lovelace", "S2", "CS"))
	assert.Equal(t, roster.DuplicateIgnored, outcome)
	assert.Equal(t, "S1", ada.ID)

	outcome = reg.UpdateStudent("S1", roster.NewStudent("Ada", "Lovelace", "S5", "CS"))
	assert.Equal(t, roster.Updated, outcome)

	got, ok := reg.FindStudent("S5")
	require.True(t, ok)
	assert.Same(t, ada, got)
	_, ok = reg.FindStudent("S1")
	assert.False(t, ok)
}

func TestRegistry_UpdateStudentWithIDCollisions(t *testing.T) {
	reg := quietRegistry(WithIDCollisions())
	ada := roster.NewStudent("Ada", "Lovelace", "S1", "CS")
	bob := roster.NewStudent("Bob", "Smith", "S2", "CS")
	reg.AddStudent(ada)
	reg.AddStudent(bob)

	outcome := reg.UpdateStudent("S2", roster.NewStudent("Bob", "Smith", "S1", "CS"))
	assert.Equal(t, roster.Updated, outcome)
	assert.Equal(t, "S1", bob.ID)

	// The first inserted entity wins lookups
	got, _ := reg.FindStudent("S1")
	assert.Same(t, ada, got)
}

func TestRegistry_Instructors(t *testing.T) {
	reg := quietRegistry()
	turing := roster.NewInstructor("Alan", "Turing", "I1", "CS")

	assert.Equal(t, roster.Added, reg.AddInstructor(turing))
	assert.Equal(t, roster.DuplicateIgnored, reg.AddInstructor(roster.NewInstructor("A", "B", "I1", "Math")))

	got, ok := reg.FindInstructor("I1")
	require.True(t, ok)
	assert.Same(t, turing, got)

	assert.Equal(t, roster.Updated, reg.UpdateInstructor("I1", roster.NewInstructor("Alan", "Turing", "I1", "Math")))
	assert.Equal(t, "Math", turing.Department)

	reg.AddInstructor(roster.NewInstructor("Alonzo", "Church", "I2", "Math"))
	assert.Equal(t, roster.DuplicateIgnored, reg.UpdateInstructor("I1", roster.NewInstructor("Alan", "Turing", "I2", "Math")))
	assert.Equal(t, roster.NotFound, reg.UpdateInstructor("I9", turing))

	assert.Equal(t, roster.NotFound, reg.RemoveInstructor("I9"))
	assert.Equal(t, roster.Removed, reg.RemoveInstructor("I1"))
	assert.Len(t, reg.Instructors(), 1)
}

func TestRegistry_Courses(t *testing.T) {
	reg := quietRegistry()
	turing := roster.NewInstructor("Alan", "Turing", "I1", "CS")
	algo := roster.NewCourse("Algorithms", "C1", turing)

	assert.Equal(t, roster.Added, reg.AddCourse(algo))
	assert.Equal(t, roster.DuplicateIgnored, reg.AddCourse(roster.NewCourse("Other", "C1", turing)))

	got, ok := reg.FindCourse("C1")
	require.True(t, ok)
	assert.Same(t, algo, got)

	church := roster.NewInstructor("Alonzo", "Church", "I2", "Math")
	assert.Equal(t, roster.Updated, reg.UpdateCourse("C1", roster.NewCourse("Lambda", "C2", church)))
	assert.Equal(t, "Lambda", algo.Name)
	assert.Same(t, church, algo.Instructor)

	_, ok = reg.FindCourse("C1")
	assert.False(t, ok)

	assert.Equal(t, roster.NotFound, reg.RemoveCourse("C1"))
	assert.Equal(t, roster.Removed, reg.RemoveCourse("C2"))
	assert.Empty(t, reg.Courses())
}

func TestRegistry_RemoveInstructorKeepsCourseReference(t *testing.T) {
	reg := quietRegistry()
	turing := roster.NewInstructor("Alan", "Turing", "I1", "CS")
	algo := roster.NewCourse("Algorithms", "C1", turing)
	reg.AddInstructor(turing)
	reg.AddCourse(algo)

	reg.RemoveInstructor("I1")
	assert.Same(t, turing, algo.Instructor)
}

func TestRegistry_NotFoundMessagesNameTheID(t *testing.T) {
	var buf bytes.Buffer
	reg := New(WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	reg.RemoveStudent("S9")
	reg.UpdateInstructor("I9", roster.NewInstructor("A", "B", "I9", "CS"))
	reg.RemoveCourse("C9")
	reg.Enroll(roster.NewEnrollment(roster.NewStudent("Ada", "Lovelace", "S1", "CS"), roster.NewCourse("X", "C8", nil)))

	out := buf.String()
	assert.Contains(t, out, "Student S9 does not exist")
	assert.Contains(t, out, "Instructor I9 does not exist")
	assert.Contains(t, out, "Course C9 does not exist")
	assert.Contains(t, out, "Course C8 does not exist")
}
