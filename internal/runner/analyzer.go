package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/harrison/clang-lint/internal/diff"
	"github.com/harrison/clang-lint/internal/lint"
)

// Analyzer invokes the static analyzer on single files and collects its
// diagnostics.
//
// Unlike the formatter, a non-zero exit is not trouble: it means the tool
// found issues, and the raw stdout is reported like a diff. Only a failure
// to start the executable (or an unreadable file) is classified as trouble.
type Analyzer struct {
	// Executable is the analyzer binary, looked up in PATH if relative.
	Executable string
	// BuildPath is forwarded as "-p <dir>" for compile-command lookup.
	BuildPath string
	// Style is forwarded as "--format-style S" when non-empty.
	Style string
	// FixErrors forwards the tool's auto-fix flag ("--fix-errors").
	FixErrors bool
	// DryRun echoes the invocation without executing it.
	DryRun bool
	// Progress receives the echoed command line before each execution.
	// May be nil.
	Progress io.Writer
}

// invocation builds the command line for one file.
func (a *Analyzer) invocation(path string) []string {
	inv := []string{a.Executable, "--quiet", "-p", a.BuildPath}
	if a.Style != "" {
		inv = append(inv, "--format-style", a.Style)
	}
	if a.FixErrors {
		inv = append(inv, "--fix-errors")
	}
	return append(inv, path)
}

// Run analyzes one file. Exit code 0 is clean and returns empty on both
// channels; a non-zero exit returns the tool's stdout as diagnostic lines
// plus its stderr.
func (a *Analyzer) Run(path string) ([]string, []string, error) {
	if _, err := os.ReadFile(path); err != nil {
		return nil, nil, &lint.ToolError{Message: err.Error()}
	}

	inv := a.invocation(path)
	if a.Progress != nil {
		fmt.Fprintln(a.Progress, cmdline(inv))
	}
	if a.DryRun {
		return nil, nil, nil
	}

	stdout, stderr, err := execute(inv)
	if err != nil {
		if toolErr := startError(inv, err); toolErr != nil {
			return nil, nil, toolErr
		}
		if exitFailure(err) != nil {
			return diff.Lines(stdout), diff.Lines(stderr), nil
		}
		return nil, nil, err
	}
	return nil, nil, nil
}
