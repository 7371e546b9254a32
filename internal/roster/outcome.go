package roster

// Outcome is the result of a mutating call. Outcomes that did not change
// state are informational, never fatal.
type Outcome int

const (
	// Added means the entity or enrollment was inserted.
	Added Outcome = iota + 1

	// Updated means an existing entity was overwritten.
	Updated

	// Removed means the entity or enrollment was deleted.
	Removed

	// Graded means a grade was written into a course.
	Graded

	// DuplicateIgnored means the identifier was already taken.
	DuplicateIgnored

	// NotFound means a referenced identifier does not exist.
	NotFound

	// AlreadyEnrolled means the student is already a key of the course.
	AlreadyEnrolled
)

var outcomeNames = map[Outcome]string{
	Added:            "added",
	Updated:          "updated",
	Removed:          "removed",
	Graded:           "graded",
	DuplicateIgnored: "duplicate_ignored",
	NotFound:         "not_found",
	AlreadyEnrolled:  "already_enrolled",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// Changed reports whether the call mutated state.
func (o Outcome) Changed() bool {
	switch o {
	case Added, Updated, Removed, Graded:
		return true
	default:
		return false
	}
}
