package ignore

import (
	"path/filepath"
	"strings"
)

// ShouldIgnore reports whether relativePath should be left out of the walk.
func (m *Matcher) ShouldIgnore(relativePath string, isDir bool) bool {
	return m.Check(relativePath, isDir) != NotIgnored
}

// Check returns the rule excluding relativePath, or NotIgnored.
func (m *Matcher) Check(relativePath string, isDir bool) Reason {
	if m == nil || m.disabled {
		return NotIgnored
	}
	if relativePath == "" || relativePath == "." {
		return NotIgnored // never the root itself
	}

	unixPath := filepath.ToSlash(relativePath)

	if m.ignoreHidden && HasDotSegment(unixPath) {
		m.logger.Debug("ignore.Check: %q ignored (dotfile rule)", unixPath)
		return ReasonDotfile
	}

	if m.repoIgnore != nil && m.gitignored(unixPath, isDir) {
		m.logger.Debug("ignore.Check: %q ignored (.gitignore rule)", unixPath)
		return ReasonGitignore
	}

	return NotIgnored
}

func (m *Matcher) gitignored(unixPath string, isDir bool) (ignored bool) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("PANIC recovered in gitignore library for path %q: %v", unixPath, r)
			ignored = false
		}
	}()

	match := m.repoIgnore.Relative(unixPath, isDir)
	if match == nil {
		return false
	}
	// A negation rule ("!keep.txt") yields a match that includes the path.
	return match.Ignore()
}

// HasDotSegment reports whether any segment of a slash-separated path begins
// with '.'. The segments "." and ".." are not hidden names.
func HasDotSegment(unixPath string) bool {
	for _, seg := range strings.Split(unixPath, "/") {
		if seg == "." || seg == ".." {
			continue
		}
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}
