package presenter

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansi strips SGR escape sequences, leaving the underlying text.
var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestPrintDiffPlain(t *testing.T) {
	var out bytes.Buffer
	p := New(&out, &bytes.Buffer{}, false, false)

	lines := []string{"--- a.cc\t(original)\n", "+++ a.cc\t(reformatted)\n", "@@ -1 +1 @@\n", "-old\n", "+new\n", " ctx\n"}
	p.PrintDiff(lines)

	assert.Equal(t, strings.Join(lines, ""), out.String(), "plain rendering writes lines verbatim")
}

func TestPrintDiffColorized(t *testing.T) {
	var out bytes.Buffer
	p := New(&out, &bytes.Buffer{}, true, false)

	lines := []string{"--- a.cc\t(original)\n", "@@ -1 +1 @@\n", "-old\n", "+new\n", " ctx\n"}
	p.PrintDiff(lines)

	got := out.String()
	assert.Contains(t, got, "\x1b[", "colorized output carries escape codes")
	assert.Equal(t, strings.Join(lines, ""), ansi.ReplaceAllString(got, ""),
		"colorization must not alter the underlying text")
}

func TestColorizeScheme(t *testing.T) {
	lines := []string{
		"--- a.cc\t(original)\n",
		"+++ a.cc\t(reformatted)\n",
		"@@ -1,3 +1,3 @@\n",
		"+added\n",
		"-removed\n",
		" unchanged\n",
	}
	colored := Colorize(lines)
	require.Len(t, colored, len(lines))

	// Headers bold, hunks cyan, additions green, removals red.
	assert.Contains(t, colored[0], "\x1b[1m")
	assert.Contains(t, colored[1], "\x1b[1m")
	assert.Contains(t, colored[2], "\x1b[36m")
	assert.Contains(t, colored[3], "\x1b[32m")
	assert.Contains(t, colored[4], "\x1b[31m")
	assert.Equal(t, " unchanged\n", colored[5], "context lines stay uncolored")
}

func TestColorizeDoesNotMutateInput(t *testing.T) {
	lines := []string{"+added\n"}
	Colorize(lines)
	assert.Equal(t, "+added\n", lines[0])
}

func TestPrintTroublePlain(t *testing.T) {
	var errOut bytes.Buffer
	p := New(&bytes.Buffer{}, &errOut, false, false)

	p.PrintTrouble("clang-lint", "Command 'clang-format --version' failed to start: not found")

	assert.Equal(t,
		"clang-lint: error: Command 'clang-format --version' failed to start: not found\n",
		errOut.String())
}

func TestPrintTroubleColorized(t *testing.T) {
	var errOut bytes.Buffer
	p := New(&bytes.Buffer{}, &errOut, false, true)

	p.PrintTrouble("clang-lint", "boom")

	got := errOut.String()
	assert.Contains(t, got, "\x1b[", "trouble marker is colored")
	assert.Equal(t, "clang-lint: error: boom\n", ansi.ReplaceAllString(got, ""))
}

func TestWriteStderrPassthrough(t *testing.T) {
	var errOut bytes.Buffer
	p := New(&bytes.Buffer{}, &errOut, true, true)

	p.WriteStderr([]string{"warning: a\n", "warning: b\n"})

	assert.Equal(t, "warning: a\nwarning: b\n", errOut.String(),
		"tool stderr passes through uncolored even when color is on")
}

func TestWriteStack(t *testing.T) {
	var errOut bytes.Buffer
	p := New(&bytes.Buffer{}, &errOut, false, false)

	p.WriteStack(nil)
	assert.Empty(t, errOut.String())

	p.WriteStack([]byte("goroutine 1 [running]:\n"))
	assert.Equal(t, "goroutine 1 [running]:\n", errOut.String())
}
