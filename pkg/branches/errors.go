package branches

import (
	"errors"
	"fmt"
)

var (
	// ErrBaseDirNotFound the region directory does not exist
	ErrBaseDirNotFound = errors.New("listing directory not found")

	// ErrInvalidJSON a listing file could not be decoded
	ErrInvalidJSON = errors.New("invalid listing JSON")
)

// ParseError reports a listing file that is not valid JSON
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrInvalidJSON, e.Path, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrInvalidJSON, e.Err}
}
