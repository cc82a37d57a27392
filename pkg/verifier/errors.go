package verifier

import (
	"errors"
	"fmt"
)

var (
	// ErrNoInputFiles none of the expected listing files exist
	ErrNoInputFiles = errors.New("no listing files found")

	// ErrCheckFailed an expectation about the dataset does not hold
	ErrCheckFailed = errors.New("check failed")
)

// CheckError carries a failed check so callers can log or combine them
type CheckError struct {
	Check   string
	Message string
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("%s [%s]: %s", ErrCheckFailed, e.Check, e.Message)
}

func (e *CheckError) Unwrap() error {
	return ErrCheckFailed
}
