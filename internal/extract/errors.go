package extract

import "fmt"

// UnsupportedFormatError is returned when a file's format cannot be read.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Format == "" {
		return "unsupported file format"
	}
	return fmt.Sprintf("unsupported file format: %s", e.Format)
}

// Error represents a failure while reading text out of a supported format.
type Error struct {
	Format  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extract %s: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("extract %s: %s", e.Format, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
