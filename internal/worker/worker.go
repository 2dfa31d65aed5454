// Package worker runs mutating filesystem operations in short-lived isolated
// worker processes. A worker's fatal error terminates only the worker; the
// parent observes the outcome solely through the process exit status, and the
// kernel reclaims every worker resource (open handles, advisory locks) on
// exit even when the worker dies abnormally.
package worker

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// Operation names understood by the hidden worker subcommand.
const (
	OpAppend     = "append"
	OpDeleteFile = "delete-file"
	OpDeleteDir  = "delete-dir"
	OpListDir    = "list-dir"
	OpListExt    = "list-ext"
)

// Sentinel errors describing how a worker failed.
var (
	// ErrSpawn indicates the worker process could not be started at all.
	ErrSpawn = errors.New("could not spawn worker process")

	// ErrFailed indicates the worker ran but exited with a nonzero status.
	ErrFailed = errors.New("worker reported failure")

	// ErrAbnormal indicates the worker was terminated by a signal instead
	// of exiting on its own.
	ErrAbnormal = errors.New("worker terminated abnormally")
)

// Runner executes one named operation and reports pass/fail.
type Runner interface {
	Run(op string, args ...string) error
}

// Subprocess is the isolating Runner: it re-executes the current binary with
// the hidden worker subcommand and waits for it to terminate. The worker's
// diagnostics go to the inherited stderr; listings go to the inherited
// stdout.
type Subprocess struct {
	path   string
	prefix []string
}

// NewSubprocess returns a Subprocess runner targeting the currently running
// executable.
func NewSubprocess() (*Subprocess, error) {
	path, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to locate own executable: %w", err)
	}
	return NewSubprocessCommand(path, "worker"), nil
}

// NewSubprocessCommand returns a Subprocess runner that invokes the given
// binary with the given leading arguments before the operation name. Tests
// use this to re-exec the test binary.
func NewSubprocessCommand(path string, prefix ...string) *Subprocess {
	return &Subprocess{path: path, prefix: prefix}
}

// Run spawns the worker, blocks until it terminates, and maps the
// termination state: a normal exit with status 0 is success, everything else
// is failure. Once started a worker runs to completion; there is no
// cancellation and no retry.
func (s *Subprocess) Run(op string, args ...string) error {
	argv := append(append([]string{}, s.prefix...), op)
	argv = append(argv, args...)

	cmd := exec.Command(s.path, argv...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %v", ErrSpawn, err)
	}

	err := cmd.Wait()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return fmt.Errorf("%w: killed by signal %v", ErrAbnormal, ws.Signal())
		}
		return fmt.Errorf("%w: exit status %d", ErrFailed, exitErr.ExitCode())
	}
	return fmt.Errorf("%w: %v", ErrSpawn, err)
}

// InProcess runs operations directly in the calling process, without fault
// containment. Used when worker isolation is disabled in the configuration.
type InProcess struct{}

// Run dispatches the operation in the current process.
func (InProcess) Run(op string, args ...string) error {
	return Dispatch(op, args...)
}
