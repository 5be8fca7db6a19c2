// Package fileset expands the CLI's file and directory arguments into the
// concrete list of files each tool pass will process.
package fileset

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/clang-lint/internal/ignore"
)

// Enumerate expands inputs into an ordered, de-duplicated file list.
//
// In non-recursive mode every input passes through verbatim: no extension
// filtering and no existence check, since open-time failures surface as
// per-file trouble later. In recursive mode directory inputs are walked;
// excluded directories are pruned before descent, and files are kept only
// when their extension (without the dot, case-sensitive) is in extensions
// and no exclude rule matches the path. Results preserve walk order so
// output is printed in a stable, predictable sequence.
func Enumerate(inputs []string, recursive bool, extensions []string, excludes *ignore.Matcher) []string {
	extSet := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		extSet[strings.TrimPrefix(ext, ".")] = true
	}

	var out []string
	seen := make(map[string]bool)
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			out = append(out, path)
		}
	}

	for _, input := range inputs {
		if !recursive {
			add(input)
			continue
		}

		info, err := os.Stat(input)
		if err != nil || !info.IsDir() {
			// Explicit file arguments honor the same exclude rules as
			// discovered ones.
			if !excludes.Match(input) {
				add(input)
			}
			continue
		}

		filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable entries are skipped; the walk continues.
				return nil
			}
			if d.IsDir() {
				if path != input && excludes.Match(path) {
					return filepath.SkipDir
				}
				return nil
			}
			ext := strings.TrimPrefix(filepath.Ext(path), ".")
			if extSet[ext] && !excludes.Match(path) {
				add(path)
			}
			return nil
		})
	}

	return out
}
