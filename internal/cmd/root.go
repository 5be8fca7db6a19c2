// Package cmd wires the CLI surface to the lint pipeline.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harrison/clang-lint/internal/config"
	"github.com/harrison/clang-lint/internal/filelock"
	"github.com/harrison/clang-lint/internal/fileset"
	"github.com/harrison/clang-lint/internal/ignore"
	"github.com/harrison/clang-lint/internal/lint"
	"github.com/harrison/clang-lint/internal/logger"
	"github.com/harrison/clang-lint/internal/presenter"
	"github.com/harrison/clang-lint/internal/runner"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// ExitError carries the pipeline's exit status through cobra's error path
// so main can map it to the process exit code.
type ExitError struct {
	Status lint.ExitStatus
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Status)
}

// Execute runs the root command and returns the process exit code:
// 0 for a clean run, 1 when diffs or diagnostics were found, 2 for trouble
// (including usage and configuration errors).
func Execute() int {
	root := NewRootCommand()
	err := root.Execute()
	if err == nil {
		return int(lint.StatusSuccess)
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		// Pipeline outcomes were already reported through the presenter.
		return int(exitErr.Status)
	}

	// Usage or configuration errors never reached the pipeline.
	fmt.Fprintf(os.Stderr, "%s: error: %v\n", root.Name(), err)
	return int(lint.StatusTrouble)
}

// NewRootCommand creates the root cobra command for clang-lint.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clang-lint [flags] <file-or-directory>...",
		Short: "Batch clang-format and clang-tidy wrapper for CI",
		Long: `clang-lint runs clang-format and clang-tidy over multiple files and
directories, aggregates their output, and returns a sensible exit code.

Formatting differences are printed as unified diffs (or fixed in place with
-i), clang-tidy diagnostics are printed as-is, and the exit code makes the
result usable as a CI gate: 0 means clean, 1 means diffs or diagnostics were
found, 2 means trouble (missing tool, tool crash, unreadable file).

Exclude patterns are shell globs matched against full paths. They come from
the ` + ignore.DefaultIgnoreFile + ` file in the working directory (one
pattern per line, '#' comments allowed) and from repeated -e flags; both
sources are applied identically to explicit arguments and to files found by
recursive search.

Project defaults (tool paths, extensions, style, build path) can be kept in
` + config.DefaultConfigFile + `; CLI flags override them.

Examples:
  # Check a tree, diff output only
  clang-lint -r src include

  # Fix everything in place (clang-format -i plus clang-tidy --fix-errors)
  clang-lint -r -i src

  # CI gate: no output, just the exit code
  clang-lint -r -q src || exit 1

  # Exclude generated code, with extra excludes for clang-tidy only
  clang-lint -r -e '*generated*' --exclude-tidy '*third_party*' src

  # Explicit style and compilation database
  clang-lint -r --style Google -p ./build src`,
		Version:       Version,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runLint,
	}

	cmd.Flags().String("clang-format-executable", "", "path to the clang-format executable (default clang-format)")
	cmd.Flags().String("clang-tidy-executable", "", "path to the clang-tidy executable (default clang-tidy)")
	cmd.Flags().String("extensions", "", "comma-separated list of file extensions (default "+defaultExtensionList()+")")
	cmd.Flags().BoolP("recursive", "r", false, "run recursively over directories")
	cmd.Flags().BoolP("dry-run", "d", false, "just print the tool invocations")
	cmd.Flags().BoolP("in-place", "i", false, "format files instead of printing differences")
	cmd.Flags().BoolP("quiet", "q", false, "disable diff output, useful for the exit code")
	cmd.Flags().String("color", "", "show colored diff: auto, always, or never (default auto)")
	cmd.Flags().StringArrayP("exclude", "e", nil, "exclude paths matching the given glob-like pattern(s) from recursive search")
	cmd.Flags().StringArray("exclude-tidy", nil, "exclude paths matching the given glob-like pattern(s) from clang-tidy analysis")
	cmd.Flags().String("style", "", "formatting style to apply (LLVM, Google, Chromium, Mozilla, WebKit)")
	cmd.Flags().StringP("build-path", "p", "", "build path holding the compilation database (default ./build)")
	cmd.Flags().String("config", "", "path to config file (default "+config.DefaultConfigFile+")")
	cmd.Flags().Bool("verbose", false, "log per-file progress and timings to stderr")

	return cmd
}

// runLint implements the whole pipeline: config merge, signal setup,
// preflight, enumeration, tool invocation, and status folding.
func runLint(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	if configPath == "" {
		configPath = config.DefaultConfigFile
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	cfg.MergeWithFlags(
		changedString(cmd, "clang-format-executable"),
		changedString(cmd, "clang-tidy-executable"),
		changedString(cmd, "extensions"),
		changedString(cmd, "style"),
		changedString(cmd, "build-path"),
		changedString(cmd, "color"),
	)
	if err := cfg.Validate(); err != nil {
		return err
	}

	recursive, _ := flags.GetBool("recursive")
	dryRun, _ := flags.GetBool("dry-run")
	inPlace, _ := flags.GetBool("in-place")
	quiet, _ := flags.GetBool("quiet")
	verbose, _ := flags.GetBool("verbose")

	// One-time setup before the pipeline: default signal dispositions, so
	// ^C behaves like it does for diff.
	RestoreDefaultSignals()

	coloredStdout, coloredStderr := resolveColor(cfg.Color)
	present := presenter.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), coloredStdout, coloredStderr)
	prog := cmd.Name()

	log := logger.NewConsole(nil, cfg.LogLevel)
	if verbose {
		log = logger.NewConsole(os.Stderr, "debug")
	}

	// Preflight both tools before touching any file: a missing executable
	// fails the whole run once, not once per file.
	if err := runner.Preflight(cfg.FormatExecutable, cfg.TidyExecutable); err != nil {
		present.PrintTrouble(prog, err.Error())
		return &ExitError{Status: lint.StatusTrouble}
	}
	log.LogDebug("version preflight passed for " + cfg.FormatExecutable + " and " + cfg.TidyExecutable)

	base, err := ignore.LoadFile(ignore.DefaultIgnoreFile)
	if err != nil {
		return err
	}
	excludeFlags, _ := flags.GetStringArray("exclude")
	tidyExcludeFlags, _ := flags.GetStringArray("exclude-tidy")

	// The two rule sets are derived independently from the same immutable
	// base; neither enumeration can observe the other's extra patterns.
	formatPatterns := concat(base, excludeFlags)
	tidyPatterns := concat(formatPatterns, tidyExcludeFlags)

	formatMatcher, err := ignore.NewMatcher(formatPatterns)
	if err != nil {
		return err
	}
	tidyMatcher, err := ignore.NewMatcher(tidyPatterns)
	if err != nil {
		return err
	}

	formatFiles := fileset.Enumerate(args, recursive, cfg.Extensions, formatMatcher)
	tidyFiles := fileset.Enumerate(args, recursive, cfg.Extensions, tidyMatcher)
	log.LogInfo(fmt.Sprintf("%d file(s) to format, %d file(s) to analyze", len(formatFiles), len(tidyFiles)))

	if len(formatFiles) == 0 && len(tidyFiles) == 0 {
		return nil
	}

	if inPlace && !dryRun {
		lock := filelock.New(filelock.DefaultLockFile)
		if err := lock.Acquire(); err != nil {
			present.PrintTrouble(prog, err.Error())
			return &ExitError{Status: lint.StatusTrouble}
		}
		defer lock.Release()
	}

	formatter := &runner.Formatter{
		Executable: cfg.FormatExecutable,
		Style:      cfg.Style,
		InPlace:    inPlace,
		DryRun:     dryRun,
		Progress:   cmd.OutOrStdout(),
	}
	analyzer := &runner.Analyzer{
		Executable: cfg.TidyExecutable,
		BuildPath:  cfg.BuildPath,
		Style:      cfg.Style,
		FixErrors:  inPlace,
		DryRun:     dryRun,
		Progress:   cmd.OutOrStdout(),
	}

	agg := &lint.Aggregator{Prog: prog, Quiet: quiet, Presenter: present, Log: log}
	status := agg.Run(formatter, formatFiles, analyzer, tidyFiles)
	if status != lint.StatusSuccess {
		return &ExitError{Status: status}
	}
	return nil
}

// changedString returns the flag's value only when it was set on the
// command line, so config-file values survive unset flags.
func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

// resolveColor maps the color mode onto per-stream decisions. In auto mode
// each stream is probed independently, so a piped stdout stays plain while
// trouble messages on a terminal stderr keep their color.
func resolveColor(mode string) (stdout, stderr bool) {
	switch mode {
	case "always":
		return true, true
	case "never":
		return false, false
	default:
		return streamIsTerminal(os.Stdout), streamIsTerminal(os.Stderr)
	}
}

func streamIsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// concat returns a fresh slice holding a followed by b, leaving both inputs
// untouched.
func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

func defaultExtensionList() string {
	return strings.Join(config.DefaultExtensions, ",")
}
