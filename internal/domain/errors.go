package domain

import "fmt"

// InvalidInputError reports a missing or blank required input.
type InvalidInputError struct {
	Field string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s is required", e.Field)
}

// AccessError reports an archive that does not exist or cannot be read.
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cannot read archive %q", e.Path)
	}
	return fmt.Sprintf("cannot read archive %q: %v", e.Path, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// ExtractionError wraps an I/O failure hit while reading entries or
// writing extracted files. CleanupWarning is set when the partially
// created destination could not be removed right away.
type ExtractionError struct {
	Directory      string
	Err            error
	CleanupWarning error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract into %q: %v", e.Directory, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
