package install

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"syscall"

	"github.com/conn-castle/pyprep/internal/messages"
	"github.com/conn-castle/pyprep/internal/plan"
)

// Exit codes used when the failing step did not report its own status.
const (
	ExitFailure       = 1
	ExitNotExecutable = 126
	ExitNotFound      = 127
	exitSignalBase    = 128
)

// StepError reports the first step that failed. Later steps were not run.
type StepError struct {
	// Index is the 1-based position of the failing step.
	Index int
	Total int
	Step  plan.Step
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf(messages.StepFailedFmt, e.Index, e.Total, e.Step.ID, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// ExitCode maps an installer error to the process exit status, the way a POSIX
// shell reports it: the child's own status, 128+N for a child killed by signal N,
// 126 for an executable that cannot be run and 127 for one that does not exist.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			return exitSignalBase + int(status.Signal())
		}
		code := exitErr.ExitCode()
		if code <= 0 {
			return ExitFailure
		}
		return code
	}
	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return ExitNotFound
	case errors.Is(err, fs.ErrPermission):
		return ExitNotExecutable
	}
	return ExitFailure
}
