package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/harrison/clang-lint/internal/diff"
	"github.com/harrison/clang-lint/internal/lint"
)

// Formatter invokes the source formatter on single files and diffs its
// output against the original content.
type Formatter struct {
	// Executable is the formatter binary, looked up in PATH if relative.
	Executable string
	// Style is forwarded as "--style S" when non-empty.
	Style string
	// InPlace makes the tool rewrite the file ("-i") instead of emitting
	// reformatted content on stdout.
	InPlace bool
	// DryRun echoes the invocation without executing it.
	DryRun bool
	// Progress receives the echoed command line before each execution so
	// batch operators can observe progress. May be nil.
	Progress io.Writer
}

// invocation builds the command line for one file.
func (f *Formatter) invocation(path string) []string {
	inv := []string{f.Executable}
	if f.InPlace {
		inv = append(inv, "-i")
	}
	inv = append(inv, path)
	if f.Style != "" {
		inv = append(inv, "--style", f.Style)
	}
	return inv
}

// Run formats one file. On success it returns the unified diff between the
// original and reformatted content (empty when the file is already clean,
// or always for in-place runs) plus the tool's stderr lines. Unreadable
// files, start failures, and non-zero exits return *lint.ToolError.
func (f *Formatter) Run(path string) ([]string, []string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &lint.ToolError{Message: err.Error()}
	}

	inv := f.invocation(path)
	if f.Progress != nil {
		fmt.Fprintln(f.Progress, cmdline(inv))
	}
	if f.DryRun {
		return nil, nil, nil
	}

	stdout, stderr, err := execute(inv)
	stderrLines := diff.Lines(stderr)
	if err != nil {
		if toolErr := startError(inv, err); toolErr != nil {
			return nil, nil, toolErr
		}
		if exitErr := exitFailure(err); exitErr != nil {
			return nil, nil, &lint.ToolError{
				Message: exitMessage(inv, exitErr),
				Stderr:  stderrLines,
			}
		}
		return nil, nil, err
	}

	if f.InPlace {
		// The tool already rewrote the file; there is nothing to diff.
		return nil, stderrLines, nil
	}

	diffLines, err := diff.Unified(path, string(content), stdout)
	if err != nil {
		return nil, nil, err
	}
	return diffLines, stderrLines, nil
}
