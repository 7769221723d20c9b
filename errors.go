package canopy

import "fmt"

// HashError is returned from [Build] when the injected hasher fails.
// It identifies where in the reduction the failure happened.
type HashError struct {
	// The reduction level, where zero is the leaf level.
	Level int

	// The index of the node being created within its level.
	Index int

	Err error
}

func (e HashError) Error() string {
	if e.Level == 0 {
		return fmt.Sprintf("hashing leaf %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("hashing node %d at level %d: %v", e.Index, e.Level, e.Err)
}

func (e HashError) Unwrap() error {
	return e.Err
}
