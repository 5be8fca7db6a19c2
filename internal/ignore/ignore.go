// Package ignore loads exclude patterns and matches candidate paths against
// them with shell-glob semantics.
//
// Patterns come from an ignore file (one per line, '#' comments and blank
// lines skipped) and from repeated CLI flags; the two sources are
// concatenated with no precedence distinction. A path is excluded when it
// matches any pattern. Matching follows fnmatch rules: '*' matches any run
// of characters including path separators, '?' matches one character, and
// '[...]' matches a character class ('[!...]' negates). Patterns are matched
// against the full path, not just the basename.
package ignore

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// DefaultIgnoreFile is the ignore file looked up in the working directory.
const DefaultIgnoreFile = ".clang-lint-ignore"

// LoadFile reads exclude patterns from the given ignore file. A missing
// file is not an error and yields no patterns; any other read failure is
// returned.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read ignore file %s: %w", path, err)
	}
	defer f.Close()

	var patterns []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		pattern := strings.TrimRight(line, " \t\r\n")
		if pattern == "" {
			continue
		}
		patterns = append(patterns, pattern)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ignore file %s: %w", path, err)
	}
	return patterns, nil
}

// Matcher holds a compiled set of exclude patterns. A nil Matcher matches
// nothing.
type Matcher struct {
	patterns []string
	regexps  []*regexp.Regexp
}

// NewMatcher compiles the given glob patterns. The pattern order is
// irrelevant to matching but preserved for error reporting.
func NewMatcher(patterns []string) (*Matcher, error) {
	m := &Matcher{patterns: patterns}
	for _, p := range patterns {
		re, err := regexp.Compile(translate(p))
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		m.regexps = append(m.regexps, re)
	}
	return m, nil
}

// Match reports whether the path matches any exclude pattern.
func (m *Matcher) Match(path string) bool {
	if m == nil {
		return false
	}
	for _, re := range m.regexps {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

// translate converts a shell glob into an anchored regular expression.
// Unlike filepath.Match, '*' crosses path separators, so a pattern like
// "*build*" excludes everything under any build directory.
func translate(pattern string) string {
	var b strings.Builder
	b.WriteString("^")
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		case '[':
			j := i + 1
			if j < len(pattern) && pattern[j] == '!' {
				j++
			}
			if j < len(pattern) && pattern[j] == ']' {
				j++
			}
			for j < len(pattern) && pattern[j] != ']' {
				j++
			}
			if j >= len(pattern) {
				// Unterminated class: treat the bracket literally.
				b.WriteString(`\[`)
				continue
			}
			inner := strings.ReplaceAll(pattern[i+1:j], `\`, `\\`)
			if strings.HasPrefix(inner, "!") {
				inner = "^" + inner[1:]
			}
			b.WriteString("[" + inner + "]")
			i = j
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	b.WriteString("$")
	return b.String()
}
