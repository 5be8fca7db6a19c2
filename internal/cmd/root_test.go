package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/clang-lint/internal/lint"
)

// chdir changes into dir for the duration of the test, mirroring
// testing.T.Chdir, which is unavailable on the Go toolchain in use.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

// writeScript creates an executable shell script standing in for a tool.
// Every fake answers --version so the preflight check passes.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	script := "#!/bin/sh\nif [ \"$1\" = \"--version\" ]; then exit 0; fi\n" + body
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

// fakeTools builds a formatter that reproduces input unchanged and a tidy
// that reports clean.
func fakeTools(t *testing.T) (format, tidy string) {
	t.Helper()
	dir := t.TempDir()
	format = writeScript(t, dir, "fake-format", "cat \"$1\"\n")
	tidy = writeScript(t, dir, "fake-tidy", "exit 0\n")
	return format, tidy
}

// runRoot executes the root command with the given args and returns the
// captured stdout, stderr, and error.
func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func exitStatus(t *testing.T, err error) lint.ExitStatus {
	t.Helper()
	if err == nil {
		return lint.StatusSuccess
	}
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	return exitErr.Status
}

func TestRunCleanTree(t *testing.T) {
	chdir(t, t.TempDir())
	format, tidy := fakeTools(t)
	require.NoError(t, os.WriteFile("a.cc", []byte("int x;\n"), 0644))

	out, errOut, err := runRoot(t,
		"--clang-format-executable", format,
		"--clang-tidy-executable", tidy,
		"--color", "never",
		"a.cc")

	assert.Equal(t, lint.StatusSuccess, exitStatus(t, err))
	// Progress lines echo both invocations; no diff output follows.
	assert.Contains(t, out, format+" a.cc\n")
	assert.Contains(t, out, tidy+" --quiet -p ./build a.cc\n")
	assert.NotContains(t, out, "--- ")
	assert.Empty(t, errOut)
}

func TestRunDiffFound(t *testing.T) {
	chdir(t, t.TempDir())
	dir := t.TempDir()
	format := writeScript(t, dir, "fake-format", "printf 'int x;\\n'\n")
	tidy := writeScript(t, dir, "fake-tidy", "exit 0\n")
	require.NoError(t, os.WriteFile("a.cc", []byte("int  x;\n"), 0644))

	out, _, err := runRoot(t,
		"--clang-format-executable", format,
		"--clang-tidy-executable", tidy,
		"--color", "never",
		"a.cc")

	assert.Equal(t, lint.StatusDiff, exitStatus(t, err))
	assert.Contains(t, out, "--- a.cc\t(original)\n")
	assert.Contains(t, out, "+++ a.cc\t(reformatted)\n")
	assert.Contains(t, out, "-int  x;\n")
	assert.Contains(t, out, "+int x;\n")
}

func TestRunQuietSuppressesDiff(t *testing.T) {
	chdir(t, t.TempDir())
	dir := t.TempDir()
	format := writeScript(t, dir, "fake-format", "printf 'int x;\\n'\n")
	tidy := writeScript(t, dir, "fake-tidy", "exit 0\n")
	require.NoError(t, os.WriteFile("a.cc", []byte("int  x;\n"), 0644))

	out, _, err := runRoot(t,
		"--clang-format-executable", format,
		"--clang-tidy-executable", tidy,
		"--color", "never",
		"-q",
		"a.cc")

	assert.Equal(t, lint.StatusDiff, exitStatus(t, err), "quiet keeps the exit status")
	assert.NotContains(t, out, "--- ", "quiet suppresses diff rendering")
}

func TestRunAnalyzerDiagnostics(t *testing.T) {
	chdir(t, t.TempDir())
	dir := t.TempDir()
	format := writeScript(t, dir, "fake-format", "cat \"$1\"\n")
	tidy := writeScript(t, dir, "fake-tidy", "echo 'a.cc:1:1: warning: unused [misc]'\nexit 1\n")
	require.NoError(t, os.WriteFile("a.cc", []byte("int x;\n"), 0644))

	out, _, err := runRoot(t,
		"--clang-format-executable", format,
		"--clang-tidy-executable", tidy,
		"--color", "never",
		"a.cc")

	assert.Equal(t, lint.StatusDiff, exitStatus(t, err))
	assert.Contains(t, out, "warning: unused")
}

func TestRunMissingFormatterFailsPreflight(t *testing.T) {
	chdir(t, t.TempDir())
	_, tidy := fakeTools(t)
	require.NoError(t, os.WriteFile("a.cc", []byte("int x;\n"), 0644))

	out, errOut, err := runRoot(t,
		"--clang-format-executable", "/nonexistent/clang-format",
		"--clang-tidy-executable", tidy,
		"--color", "never",
		"a.cc")

	assert.Equal(t, lint.StatusTrouble, exitStatus(t, err))
	assert.Contains(t, errOut, "failed to start")
	assert.NotContains(t, out, "a.cc", "no file may be touched when preflight fails")
}

func TestRunUnreadableFileIsolated(t *testing.T) {
	chdir(t, t.TempDir())
	format, tidy := fakeTools(t)
	require.NoError(t, os.WriteFile("a.cc", []byte("int x;\n"), 0644))
	require.NoError(t, os.WriteFile("c.cc", []byte("int y;\n"), 0644))

	out, errOut, err := runRoot(t,
		"--clang-format-executable", format,
		"--clang-tidy-executable", tidy,
		"--color", "never",
		"a.cc", "missing.cc", "c.cc")

	assert.Equal(t, lint.StatusTrouble, exitStatus(t, err))
	assert.Contains(t, errOut, "missing.cc")
	// Later files were still processed.
	assert.Contains(t, out, format+" c.cc\n")
}

func TestRunRecursiveWithIgnoreFile(t *testing.T) {
	chdir(t, t.TempDir())
	format, tidy := fakeTools(t)
	require.NoError(t, os.MkdirAll("src", 0755))
	require.NoError(t, os.WriteFile("src/a.cc", []byte("int x;\n"), 0644))
	require.NoError(t, os.WriteFile("src/a_gen.cc", []byte("int y;\n"), 0644))
	require.NoError(t, os.WriteFile(".clang-lint-ignore", []byte("# generated\n*gen*\n"), 0644))

	out, _, err := runRoot(t,
		"--clang-format-executable", format,
		"--clang-tidy-executable", tidy,
		"--color", "never",
		"-r", "src")

	assert.Equal(t, lint.StatusSuccess, exitStatus(t, err))
	assert.Contains(t, out, filepath.Join("src", "a.cc"))
	assert.NotContains(t, out, "a_gen.cc")
}

func TestRunTidyOnlyExcludes(t *testing.T) {
	chdir(t, t.TempDir())
	format, tidy := fakeTools(t)
	require.NoError(t, os.MkdirAll("src", 0755))
	require.NoError(t, os.WriteFile("src/a.cc", []byte("int x;\n"), 0644))
	require.NoError(t, os.WriteFile("src/legacy.cc", []byte("int y;\n"), 0644))

	out, _, err := runRoot(t,
		"--clang-format-executable", format,
		"--clang-tidy-executable", tidy,
		"--color", "never",
		"--exclude-tidy", "*legacy*",
		"-r", "src")

	assert.Equal(t, lint.StatusSuccess, exitStatus(t, err))
	// legacy.cc is still formatted but not analyzed.
	assert.Contains(t, out, format+" "+filepath.Join("src", "legacy.cc"))
	assert.NotContains(t, out, tidy+" --quiet -p ./build "+filepath.Join("src", "legacy.cc"))
}

func TestRunDryRun(t *testing.T) {
	chdir(t, t.TempDir())
	format, tidy := fakeTools(t)
	require.NoError(t, os.WriteFile("a.cc", []byte("int  x;\n"), 0644))

	out, _, err := runRoot(t,
		"--clang-format-executable", format,
		"--clang-tidy-executable", tidy,
		"--color", "never",
		"-d",
		"a.cc")

	assert.Equal(t, lint.StatusSuccess, exitStatus(t, err))
	assert.Contains(t, out, format+" a.cc\n", "dry run still echoes invocations")
	assert.NotContains(t, out, "--- ", "dry run produces no diff")
}

func TestRunNoMatchingFiles(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.MkdirAll("empty", 0755))

	// With nothing enumerated the run exits clean before preflight output
	// matters; still provide fakes to keep the preflight green.
	format, tidy := fakeTools(t)
	out, _, err := runRoot(t,
		"--clang-format-executable", format,
		"--clang-tidy-executable", tidy,
		"--color", "never",
		"-r", "empty")

	assert.Equal(t, lint.StatusSuccess, exitStatus(t, err))
	assert.NotContains(t, out, "empty")
}

func TestRunConfigFileDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	dir := t.TempDir()
	format := writeScript(t, dir, "cfg-format", "cat \"$1\"\n")
	tidy := writeScript(t, dir, "cfg-tidy", "exit 0\n")
	require.NoError(t, os.WriteFile("a.cc", []byte("int x;\n"), 0644))

	cfg := "format_executable: " + format + "\ntidy_executable: " + tidy +
		"\nstyle: Google\nbuild_path: ./out\ncolor: never\n"
	require.NoError(t, os.WriteFile(".clang-lint.yaml", []byte(cfg), 0644))

	out, _, err := runRoot(t, "a.cc")

	assert.Equal(t, lint.StatusSuccess, exitStatus(t, err))
	assert.Contains(t, out, format+" a.cc --style Google\n")
	assert.Contains(t, out, tidy+" --quiet -p ./out --format-style Google a.cc\n")
}

func TestRunInvalidColorMode(t *testing.T) {
	chdir(t, t.TempDir())
	_, _, err := runRoot(t, "--color", "sometimes", "a.cc")
	require.Error(t, err)
	var exitErr *ExitError
	assert.False(t, errors.As(err, &exitErr), "config errors surface as plain errors mapped to trouble")
}

func TestRunRequiresFileArguments(t *testing.T) {
	_, _, err := runRoot(t)
	require.Error(t, err, "at least one file or directory is required")
}

func TestExitErrorMessage(t *testing.T) {
	err := &ExitError{Status: lint.StatusDiff}
	assert.Equal(t, "exit status 1", err.Error())
}
