package phase

import "fmt"

// Error tags a failure with the phase that produced it.
type Error struct {
	Phase int
	Name  string
	Err   error
}

func (e *Error) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("phase %d (%s): %v", e.Phase, e.Name, e.Err)
	}
	return fmt.Sprintf("phase %d: %v", e.Phase, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
