package config

// Config holds a campus roster declared on disk.
type Config struct {
	Version     string             `json:"version"               yaml:"version"`
	Registry    RegistryConfig     `json:"registry,omitempty"    yaml:"registry,omitempty"`
	Instructors []InstructorConfig `json:"instructors,omitempty" yaml:"instructors,omitempty"`
	Students    []StudentConfig    `json:"students,omitempty"    yaml:"students,omitempty"`
	Courses     []CourseConfig     `json:"courses,omitempty"     yaml:"courses,omitempty"`
	Enrollments []EnrollmentConfig `json:"enrollments,omitempty" yaml:"enrollments,omitempty"`
}

// RegistryConfig holds registry behaviour toggles.
type RegistryConfig struct {
	// AllowIDCollisions lets updates rename an entity onto a taken identifier.
	AllowIDCollisions bool `json:"allow_id_collisions,omitempty" yaml:"allow_id_collisions,omitempty"`

	// OrphanEnrollments keeps a removed student's course entries.
	OrphanEnrollments bool `json:"orphan_enrollments,omitempty" yaml:"orphan_enrollments,omitempty"`
}

// PersonConfig holds the identity fields shared by students and instructors.
// An empty ID is replaced with a generated one when the roster is seeded.
// Courses and enrollments reference people by ID only, so a person declared
// without one cannot teach or be enrolled from the roster.
type PersonConfig struct {
	ID        string `json:"id,omitempty" yaml:"id,omitempty"`
	FirstName string `json:"first_name"   yaml:"first_name"`
	LastName  string `json:"last_name"    yaml:"last_name"`
}

// StudentConfig declares a student.
type StudentConfig struct {
	PersonConfig `yaml:",inline"`

	Major string `json:"major" yaml:"major"`
}

// InstructorConfig declares an instructor.
type InstructorConfig struct {
	PersonConfig `yaml:",inline"`

	Department string `json:"department" yaml:"department"`
}

// CourseConfig declares a course taught by a declared instructor.
type CourseConfig struct {
	ID         string `json:"id"         yaml:"id"`
	Name       string `json:"name"       yaml:"name"`
	Instructor string `json:"instructor" yaml:"instructor"` // Instructor ID
}

// EnrollmentConfig enrolls a student in a course, optionally with a grade.
type EnrollmentConfig struct {
	Student string  `json:"student"         yaml:"student"`
	Course  string  `json:"course"          yaml:"course"`
	Grade   *string `json:"grade,omitempty" yaml:"grade,omitempty"`
}
