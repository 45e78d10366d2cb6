package domain

import (
	"errors"
	"fmt"
)

// Exit codes returned by the binary.
const (
	ExitOK      = 0
	ExitInvalid = 1
	ExitSetup   = 2
)

// ErrInvalidFiles signals that at least one discovered file failed to parse
// or failed schema validation. The report already lists the details.
var ErrInvalidFiles = errors.New("one or more files are invalid")

// SetupError is a fatal failure before any file could be validated.
type SetupError struct {
	Stage string
	Path  string
	Err   error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *SetupError) Unwrap() error { return e.Err }

// ExitCode maps a run error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInvalidFiles):
		return ExitInvalid
	default:
		return ExitSetup
	}
}
