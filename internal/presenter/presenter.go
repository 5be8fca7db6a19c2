// Package presenter renders diffs, diagnostics, and trouble messages to the
// tool's output streams, optionally colorized.
//
// Colorization is a pure rendering transform: the underlying line text is
// never altered, only wrapped in SGR sequences. The color decision is made
// once by the caller (per stream), so rendering here never probes the
// terminal.
package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Diff color scheme: file headers bold, hunk headers cyan, additions green,
// removals red. Trouble markers are bold red.
var (
	headerColor  = newColor(color.Bold)
	hunkColor    = newColor(color.FgCyan)
	addColor     = newColor(color.FgGreen)
	removeColor  = newColor(color.FgRed)
	troubleColor = newColor(color.Bold, color.FgRed)
)

// newColor builds a color that always emits escape codes. TTY detection
// happens upstream where the --color mode is resolved, so the package-level
// NoColor heuristic must not second-guess it.
func newColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// Presenter writes diffs and diagnostics to Out and trouble/stderr
// passthrough to Err.
type Presenter struct {
	Out io.Writer
	Err io.Writer
	// ColorDiff enables colorized diff rendering on Out.
	ColorDiff bool
	// ColorErr enables the bold-red trouble marker on Err.
	ColorErr bool
}

// New creates a Presenter for the given streams.
func New(out, err io.Writer, colorDiff, colorErr bool) *Presenter {
	return &Presenter{Out: out, Err: err, ColorDiff: colorDiff, ColorErr: colorErr}
}

// PrintDiff writes diff or diagnostic lines to the output stream in order.
// Lines keep their own newlines; nothing is inserted between them.
func (p *Presenter) PrintDiff(lines []string) {
	if p.ColorDiff {
		lines = Colorize(lines)
	}
	for _, line := range lines {
		io.WriteString(p.Out, line)
	}
}

// PrintTrouble reports a failure on the error stream as
// "<prog>: error: <message>".
func (p *Presenter) PrintTrouble(prog, message string) {
	errText := "error:"
	if p.ColorErr {
		errText = troubleColor.Sprint(errText)
	}
	fmt.Fprintf(p.Err, "%s: %s %s\n", prog, errText, message)
}

// WriteStderr passes captured tool stderr lines through to the error
// stream, uncolored and unmodified.
func (p *Presenter) WriteStderr(lines []string) {
	for _, line := range lines {
		io.WriteString(p.Err, line)
	}
}

// WriteStack writes a captured stack trace to the error stream.
func (p *Presenter) WriteStack(stack []byte) {
	if len(stack) == 0 {
		return
	}
	p.Err.Write(stack)
}

// Colorize returns a copy of the diff lines with the color scheme applied.
// Unchanged context lines pass through as-is.
func Colorize(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "--- ") || strings.HasPrefix(line, "+++ "):
			out[i] = headerColor.Sprint(line)
		case strings.HasPrefix(line, "@@ "):
			out[i] = hunkColor.Sprint(line)
		case strings.HasPrefix(line, "+"):
			out[i] = addColor.Sprint(line)
		case strings.HasPrefix(line, "-"):
			out[i] = removeColor.Sprint(line)
		default:
			out[i] = line
		}
	}
	return out
}
