// Package diff synthesizes unified diffs between a file's original content
// and the formatter's reformatted output.
package diff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// contextLines is the number of unchanged lines shown around each hunk.
const contextLines = 3

// Unified computes a unified diff between original and reformatted content.
// Headers carry the path tagged "(original)" and "(reformatted)" with no
// timestamps, so output is deterministic given identical inputs. An empty
// result means no changes.
func Unified(path, original, reformatted string) ([]string, error) {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(reformatted),
		FromFile: path + "\t(original)",
		ToFile:   path + "\t(reformatted)",
		Context:  contextLines,
	}
	text, err := difflib.GetUnifiedDiffString(ud)
	if err != nil {
		return nil, err
	}
	return Lines(text), nil
}

// Lines splits text into lines that keep their trailing newlines, with no
// phantom entry for a trailing newline. Lines(" ") == []string{" "};
// Lines("") == nil.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
