package lint

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/harrison/clang-lint/internal/presenter"
)

// Runner runs one external tool over one file.
//
// output holds the tool's reportable lines (a unified diff for the
// formatter, raw diagnostics for the analyzer); stderr holds the tool's
// captured stderr for passthrough. A *ToolError marks expected per-file
// trouble; any other error is treated as an internal failure.
type Runner interface {
	Run(path string) (output []string, stderr []string, err error)
}

// Logger receives verbose progress messages. May be nil.
type Logger interface {
	LogDebug(message string)
	LogInfo(message string)
}

// Aggregator executes the task sequence and accumulates the exit status.
//
// It moves through three states: running (consuming tasks in order), halted
// (an internal failure stopped the batch early), and done. Per-task trouble
// does not halt: it is reported, folded into the status, and the next task
// runs.
type Aggregator struct {
	// Prog is the program name prefixed to trouble messages.
	Prog string
	// Quiet suppresses diff/diagnostic rendering but not trouble messages
	// or the exit status.
	Quiet bool
	// Presenter renders diffs and trouble messages.
	Presenter *presenter.Presenter
	// Log receives per-task progress at debug level. May be nil.
	Log Logger
}

// Run consumes every formatter task, then every analyzer task, in
// enumeration order, and returns the folded exit status. Output is printed
// in task order, never reordered.
func (a *Aggregator) Run(format Runner, formatFiles []string, analyze Runner, analyzeFiles []string) ExitStatus {
	status := StatusSuccess

	for _, task := range Tasks(formatFiles, analyzeFiles) {
		runner := format
		if task.Kind == KindAnalyze {
			runner = analyze
		}

		start := time.Now()
		output, stderr, err := runTask(runner, task)
		a.logDebug(fmt.Sprintf("%s %s: %d output line(s) in %s",
			task.Kind, task.Path, len(output), time.Since(start).Round(time.Millisecond)))

		if err != nil {
			var toolErr *ToolError
			if errors.As(err, &toolErr) {
				a.Presenter.PrintTrouble(a.Prog, toolErr.Message)
				a.Presenter.WriteStderr(toolErr.Stderr)
				status = status.Merge(StatusTrouble)
				continue
			}

			// Internal failure: report with its stack and stop consuming
			// tasks. The remaining files are left unprocessed on purpose.
			var internal *InternalError
			if !errors.As(err, &internal) {
				internal = internalErrorf(task.Path, debug.Stack(), "internal error: %v", err)
			}
			a.Presenter.PrintTrouble(a.Prog, internal.Message)
			a.Presenter.WriteStack(internal.Stack)
			status = status.Merge(StatusTrouble)
			break
		}

		a.Presenter.WriteStderr(stderr)
		if len(output) > 0 {
			status = status.Merge(StatusDiff)
			if !a.Quiet {
				a.Presenter.PrintDiff(output)
			}
		}
	}

	return status
}

func (a *Aggregator) logDebug(message string) {
	if a.Log != nil {
		a.Log.LogDebug(message)
	}
}

// runTask invokes the runner, converting panics and unclassified errors
// into InternalError so the caller's halt-vs-continue decision is explicit.
func runTask(r Runner, task FileTask) (output, stderr []string, err error) {
	defer func() {
		if p := recover(); p != nil {
			output, stderr = nil, nil
			err = internalErrorf(task.Path, debug.Stack(), "panic: %v", p)
		}
	}()

	output, stderr, err = r.Run(task.Path)
	if err != nil {
		var toolErr *ToolError
		if errors.As(err, &toolErr) {
			return nil, nil, err
		}
		return nil, nil, internalErrorf(task.Path, debug.Stack(), "internal error: %v", err)
	}
	return output, stderr, nil
}
