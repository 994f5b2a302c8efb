package ledger

import (
	"errors"
	"fmt"
)

// ErrUnexpectedTask matches any *UnexpectedTaskError via errors.Is.
var ErrUnexpectedTask = errors.New("ledger: unexpected task")

// UnexpectedTaskError reports an entry for a task that was never registered
// under its project. An unknown project is reported the same way.
type UnexpectedTaskError struct {
	Project string
	Task    string
}

func (e *UnexpectedTaskError) Error() string {
	return fmt.Sprintf("ledger: unexpected task %q for project %q", e.Task, e.Project)
}

func (e *UnexpectedTaskError) Is(target error) bool {
	return target == ErrUnexpectedTask
}
