package seed

import "errors"

// Error definitions for the seed package.
var (
	ErrUnknownInstructor = errors.New("instructor not declared in roster")
	ErrUnknownStudent    = errors.New("student not declared in roster")
	ErrUnknownCourse     = errors.New("course not declared in roster")
)
