package lint

import "fmt"

// ExitStatus is the process exit code contract: 0 for a clean run, 1 when
// any diff or diagnostic was produced, 2 for trouble (missing tool, tool
// crash, unreadable file, internal failure).
type ExitStatus int

const (
	StatusSuccess ExitStatus = 0
	StatusDiff    ExitStatus = 1
	StatusTrouble ExitStatus = 2
)

// Merge folds another status into s using the priority ordering
// Trouble > Diff > Success. Merging is monotonic: once a run reaches
// Trouble no later outcome can lower it.
func (s ExitStatus) Merge(other ExitStatus) ExitStatus {
	if other > s {
		return other
	}
	return s
}

// ToolError is an expected per-file failure: the file could not be read,
// the tool could not be started, or the formatter exited non-zero. It is
// reported, folds the run to Trouble, and processing continues with the
// next task.
type ToolError struct {
	// Message is the single-line trouble description.
	Message string
	// Stderr holds the tool's captured stderr lines, if any. Lines keep
	// their trailing newlines so they can be written through verbatim.
	Stderr []string
}

// Error implements the error interface.
func (e *ToolError) Error() string { return e.Message }

// InternalError is an unexpected failure inside the pipeline itself, as
// opposed to a misbehaving file or tool. It carries a captured stack and
// halts the batch: something could be very wrong, so the remaining files
// are not processed.
type InternalError struct {
	Message string
	Stack   []byte
}

// Error implements the error interface.
func (e *InternalError) Error() string { return e.Message }

// internalErrorf builds an InternalError tagged with the file that was
// being processed, mirroring the "<file>: <kind>: <detail>" message shape.
func internalErrorf(path string, stack []byte, format string, args ...interface{}) *InternalError {
	return &InternalError{
		Message: fmt.Sprintf("%s: %s", path, fmt.Sprintf(format, args...)),
		Stack:   stack,
	}
}
