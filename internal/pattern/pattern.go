// Package pattern compiles the include/exclude glob patterns given on the
// command line.
//
// Patterns use forward slashes regardless of platform and are matched against
// paths relative to the walk root. Supported syntax is that of
// github.com/gobwas/glob with '/' as the separator: '*' and '?' stay inside a
// path segment, '**' crosses segments, '[...]' and '{a,b}' work as usual.
// A "**/" segment may also match zero directories, so "**/*.go" selects
// "main.go" as well as "cmd/rcat/main.go".
package pattern

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

const separator = '/'

// Set is a compiled list of glob patterns. The zero value matches nothing.
type Set struct {
	patterns []string
	files    []glob.Glob
	// dirs holds the prefixes of "<prefix>/**" patterns: a directory matching
	// one of them has every descendant matched by the set.
	dirs     []glob.Glob
}

// Compile compiles patterns into a Set. Empty patterns are skipped.
func Compile(patterns []string) (*Set, error) {
	s := &Set{}
	for _, raw := range patterns {
		p := Normalize(raw)
		if p == "" {
			continue
		}
		s.patterns = append(s.patterns, p)

		for _, variant := range expand(p) {
			g, err := glob.Compile(variant, separator)
			if err != nil {
				return nil, fmt.Errorf("pattern: invalid glob %q: %w", raw, err)
			}
			s.files = append(s.files, g)

			if prefix, ok := dirPrefix(variant); ok {
				dg, err := glob.Compile(prefix, separator)
				if err != nil {
					return nil, fmt.Errorf("pattern: invalid glob %q: %w", raw, err)
				}
				s.dirs = append(s.dirs, dg)
			}
		}
	}
	return s, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(patterns ...string) *Set {
	s, err := Compile(patterns)
	if err != nil {
		panic(err)
	}
	return s
}

// Match reports whether the slash-separated relative path matches any
// pattern in the set.
func (s *Set) Match(path string) bool {
	if s == nil {
		return false
	}
	for _, g := range s.files {
		if g.Match(path) {
			return true
		}
	}
	return false
}

// MatchDir reports whether the directory dir is matched by the set, either
// by name ("dist", "**/node_modules") or through a "<prefix>/**" pattern.
// An excluded directory is pruned together with everything below it.
func (s *Set) MatchDir(dir string) bool {
	if s == nil {
		return false
	}
	if s.Match(dir) {
		return true
	}
	for _, g := range s.dirs {
		if g.Match(dir) {
			return true
		}
	}
	return false
}

// Len returns the number of source patterns in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.patterns)
}

// Patterns returns the normalized source patterns.
func (s *Set) Patterns() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.patterns...)
}

// Normalize trims whitespace and strips any leading "./" or "/" so patterns
// line up with root-relative paths.
func Normalize(p string) string {
	p = strings.TrimSpace(p)
	for {
		switch {
		case strings.HasPrefix(p, "./"):
			p = p[2:]
		case strings.HasPrefix(p, "/"):
			p = p[1:]
		default:
			return p
		}
	}
}

// Partition splits patterns into positive ones and negated ("!pattern")
// ones, with the leading '!' removed from the latter.
func Partition(patterns []string) (positive, negative []string) {
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if rest, ok := strings.CutPrefix(p, "!"); ok {
			if rest != "" {
				negative = append(negative, rest)
			}
			continue
		}
		positive = append(positive, p)
	}
	return positive, negative
}

// expand returns every variant of p obtained by letting each "**/" segment
// match zero directories.
func expand(p string) []string {
	i := indexGlobstar(p)
	if i < 0 {
		return []string{p}
	}
	head, tail := p[:i], p[i+3:]
	var out []string
	for _, t := range expand(tail) {
		out = append(out, head+"**/"+t, head+t)
	}
	return out
}

// indexGlobstar finds the first "**/" that starts a path segment.
func indexGlobstar(p string) int {
	from := 0
	for {
		j := strings.Index(p[from:], "**/")
		if j < 0 {
			return -1
		}
		i := from + j
		if i == 0 || p[i-1] == separator {
			return i
		}
		from = i + 1
	}
}

func dirPrefix(variant string) (string, bool) {
	if variant == "**" {
		return "**", true
	}
	prefix, ok := strings.CutSuffix(variant, "/**")
	if !ok || prefix == "" {
		return "", false
	}
	return prefix, true
}
