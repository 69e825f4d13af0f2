package engine

import "fmt"

// NotFoundError is returned when a command names a goal that does not exist.
type NotFoundError struct {
	Goal string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("goal '%s' not found", e.Goal)
}

// DuplicateNameError is returned when adding a goal that is already active.
// Callers show it as a notice rather than a failure.
type DuplicateNameError struct {
	Goal string
}

func (e DuplicateNameError) Error() string {
	return fmt.Sprintf("goal '%s' already exists", e.Goal)
}

// InputError rejects malformed user input before any mutation happens.
type InputError struct {
	Field  string
	Value  string
	Reason string
}

func (e InputError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}
