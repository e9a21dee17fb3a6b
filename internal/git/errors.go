package git

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBranchNotFound indicates a local branch does not exist.
	ErrBranchNotFound = errors.New("branch not found")
	// ErrNotRepository indicates a directory is not inside a git repository.
	ErrNotRepository = errors.New("not a git repository")
)

// CommandError is returned when a git invocation exits unsuccessfully or
// cannot be started.
type CommandError struct {
	// Args are the git arguments, already redacted for display.
	Args []string
	// Output is git's combined stdout and stderr, trimmed of surrounding
	// whitespace.
	Output string
	// Err is the underlying process error.
	Err error
}

// Error returns git's diagnostic output when present.
func (e *CommandError) Error() string {
	if e.Output != "" {
		return e.Output
	}
	return fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
}

// Unwrap returns the underlying process error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Diagnostic returns the text a failed operation should report: git's own
// output for a [CommandError], otherwise the error string.
func Diagnostic(err error) string {
	if err == nil {
		return ""
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && cmdErr.Output != "" {
		return cmdErr.Output
	}
	return err.Error()
}
