package compare

import (
	"fmt"
)

// Reason names the precondition an input path failed
type Reason string

const (
	// ReasonNotExist indicates the path does not exist
	ReasonNotExist Reason = "does not exist"
	// ReasonIsDir indicates the path is a directory
	ReasonIsDir Reason = "is a directory"
	// ReasonIsSymlink indicates the path is a symbolic link
	ReasonIsSymlink Reason = "is a symbolic link"
)

// InvalidInputError is returned before any hashing when an input path is not
// an existing regular file
type InvalidInputError struct {
	Path   string
	Reason Reason
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Path, e.Reason)
}

// FileAccessError is returned when a file cannot be opened or read.
// It wraps the underlying I/O error.
type FileAccessError struct {
	Path string
	Op   string // "stat", "open" or "read"
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("failed to %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}
