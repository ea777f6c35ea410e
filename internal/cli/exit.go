package cli

import (
	"errors"
	"fmt"
	"io"
)

// Exit codes
const (
	ExitOK           = 0 // comparison completed, identical or not
	ExitFailure      = 1 // I/O failure, bad flags or configuration
	ExitInvalidInput = 2 // an input path is missing, a directory or a link
)

// ExitError carries a process exit code through cobra's error return
type ExitError struct {
	Code int
	Err  error
	// Reported is set when the message was already written to the user
	Reported bool
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCode reports err to stderr unless already reported and maps it to an exit code
func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if !exitErr.Reported {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return exitErr.Code
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	return ExitFailure
}
