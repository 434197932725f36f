package api

import "fmt"

// NetworkError reports a failed day-snapshot fetch: a transport failure,
// a non-2xx status, or a malformed response body.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ToggleError reports a failed habit-toggle mutation. Callers keep their
// local optimistic edit regardless and resynchronize with a reload.
type ToggleError struct {
	HabitID string
	Err     error
}

func (e *ToggleError) Error() string {
	return fmt.Sprintf("toggle habit %s: %v", e.HabitID, e.Err)
}

func (e *ToggleError) Unwrap() error { return e.Err }
