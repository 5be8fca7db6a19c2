// Package runner invokes the external formatting and analysis tools one
// file at a time and classifies their failures.
//
// Expected failures (unreadable file, tool missing, formatter exiting
// non-zero) surface as *lint.ToolError so the aggregator can isolate them
// to the file; anything else propagates unclassified and halts the batch.
package runner

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"

	"github.com/harrison/clang-lint/internal/lint"
)

// execute runs the invocation and returns its captured stdout and stderr.
//
// Both streams are buffered through exec.Cmd, which drains each pipe in its
// own goroutine before Wait returns. Reading the pipes sequentially instead
// would deadlock once the child fills one pipe buffer while we block on the
// other.
func execute(invocation []string) (stdout, stderr string, err error) {
	cmd := exec.Command(invocation[0], invocation[1:]...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}

// cmdline renders an invocation the way it is echoed and reported.
func cmdline(invocation []string) string {
	return strings.Join(invocation, " ")
}

// startError converts a failure to launch the executable into a ToolError.
// exec.Error covers names resolved through PATH and distinguishes "not
// found / not executable" from other OS errors in its message; fs.PathError
// covers explicit paths that could not be executed. Returns nil when err is
// not a start failure.
func startError(invocation []string, err error) *lint.ToolError {
	var execErr *exec.Error
	var pathErr *fs.PathError
	if errors.As(err, &execErr) || errors.As(err, &pathErr) {
		return &lint.ToolError{
			Message: fmt.Sprintf("Command '%s' failed to start: %v", cmdline(invocation), err),
		}
	}
	return nil
}

// exitFailure extracts the child's exit failure. It covers both a real
// non-zero exit and a signal-killed child (where ExitCode reports -1); a
// crashing tool is still a per-file problem, never a pipeline failure.
// Returns nil when err is not an exit failure.
func exitFailure(err error) *exec.ExitError {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return nil
}

// exitMessage renders how the child terminated. Signal-killed children have
// no exit code and are reported with the signal description instead.
func exitMessage(invocation []string, exitErr *exec.ExitError) string {
	if code := exitErr.ExitCode(); code >= 0 {
		return fmt.Sprintf("Command '%s' returned non-zero exit status %d", cmdline(invocation), code)
	}
	return fmt.Sprintf("Command '%s' died with %s", cmdline(invocation), exitErr.String())
}
