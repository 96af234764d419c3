// Package walker enumerates the files under a root directory that pass the
// include/exclude patterns, .gitignore rules, dotfile policy and depth limit.
//
// The result is a lazy sequence: each file is handed to the consumer before
// the walk moves on, and stopping the range loop stops the walk.
package walker

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/rcat/internal/ignore"
)

// ErrNotDirectory is returned when the walk root is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// Walker walks one root directory.
type Walker struct {
	// root is the resolved root, so a symlinked root is walked through.
	root    string
	matcher *ignore.Matcher
	opts    Options
}

// New validates rootDir and prepares a walk over it. The matcher may be nil,
// in which case no .gitignore or dotfile rules apply.
func New(rootDir string, matcher *ignore.Matcher, opts ...Option) (*Walker, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	absRootDir, err := CheckRoot(rootDir)
	if err != nil {
		return nil, err
	}

	resolved, err := filepath.EvalSymlinks(absRootDir)
	if err != nil {
		return nil, fmt.Errorf("walker: failed to resolve '%s': %w", absRootDir, err)
	}

	return &Walker{
		root:    resolved,
		matcher: matcher,
		opts:    options,
	}, nil
}

// CheckRoot returns the absolute form of rootDir, or an error if it does not
// exist or is not a directory.
func CheckRoot(rootDir string) (string, error) {
	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return "", fmt.Errorf("walker: failed to get absolute path for '%s': %w", rootDir, err)
	}
	info, err := os.Stat(absRootDir)
	if err != nil {
		return "", fmt.Errorf("walker: cannot access root: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("walker: root '%s': %w", absRootDir, ErrNotDirectory)
	}
	return absRootDir, nil
}

// Root returns the absolute root directory with symlinks resolved. Entry
// AbsPaths are below it.
func (w *Walker) Root() string {
	return w.root
}

// Paths returns the sequence of matching files in lexical walk order. A walk
// error is yielded once, as the final element.
func (w *Walker) Paths(ctx context.Context) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		log := w.opts.Logger
		stopped := false

		err := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if path == w.root {
				return nil
			}

			rel, err := filepath.Rel(w.root, path)
			if err != nil {
				return fmt.Errorf("walker: relative path for %q: %w", path, err)
			}
			rel = filepath.ToSlash(rel)

			if d.IsDir() {
				return w.visitDir(rel)
			}

			entry, ok := w.visitFile(path, rel, d)
			if !ok {
				return nil
			}

			log.Debug("walker: yielding %q", rel)
			if !yield(entry, nil) {
				stopped = true
				return filepath.SkipAll
			}
			return nil
		})

		if err != nil && !stopped {
			yield(Entry{}, fmt.Errorf("walker: %w", err))
		}
	}
}

// visitDir decides whether to descend into the directory rel.
func (w *Walker) visitDir(rel string) error {
	log, tracker := w.opts.Logger, w.opts.Tracker

	if reason := w.matcher.Check(rel, true); reason != ignore.NotIgnored {
		log.Debug("walker: pruning %q (%s)", rel, reason)
		tracker.Track(rel, ignoredReason(reason), true)
		return filepath.SkipDir
	}
	if w.opts.Excludes.MatchDir(rel) {
		log.Debug("walker: pruning %q (exclude pattern)", rel)
		tracker.Track(rel, ReasonExcluded, true)
		return filepath.SkipDir
	}
	if w.opts.MaxDepth != Unlimited && level(rel) >= w.depthLimit() {
		log.Debug("walker: pruning %q (depth limit %d)", rel, w.opts.MaxDepth)
		tracker.Track(rel, ReasonDepthLimit, true)
		return filepath.SkipDir
	}
	return nil
}

// visitFile applies the file-level rules and returns the entry to yield.
func (w *Walker) visitFile(path, rel string, d fs.DirEntry) (Entry, bool) {
	tracker := w.opts.Tracker

	if d.Type()&fs.ModeSymlink != 0 {
		if !w.symlinkToFileInRoot(path) {
			tracker.Track(rel, ReasonSymlink, false)
			return Entry{}, false
		}
	} else if !d.Type().IsRegular() {
		tracker.Track(rel, ReasonSkippedNotRegular, false)
		return Entry{}, false
	}

	if w.opts.MaxDepth != Unlimited && level(rel) > w.depthLimit() {
		tracker.Track(rel, ReasonDepthLimit, false)
		return Entry{}, false
	}
	if reason := w.matcher.Check(rel, false); reason != ignore.NotIgnored {
		tracker.Track(rel, ignoredReason(reason), false)
		return Entry{}, false
	}
	if !w.opts.Includes.Match(rel) {
		tracker.Track(rel, ReasonNotIncluded, false)
		return Entry{}, false
	}
	if w.opts.Excludes.Match(rel) {
		tracker.Track(rel, ReasonExcluded, false)
		return Entry{}, false
	}

	return Entry{Path: rel, AbsPath: path}, true
}

// symlinkToFileInRoot reports whether the link at path resolves to a regular
// file below the root. Links to directories are never followed.
func (w *Walker) symlinkToFileInRoot(path string) bool {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		w.opts.Logger.Debug("walker: dangling symlink %q: %v", path, err)
		return false
	}
	info, err := os.Stat(target)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	rel, err := filepath.Rel(w.root, target)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// level numbers path segments from the root: entries directly in the root
// are level 1.
func level(rel string) int {
	return strings.Count(rel, "/") + 1
}

// depthLimit is the deepest level whose files are yielded. Directories at
// that level are not entered. A limit of 0 behaves like 1.
func (w *Walker) depthLimit() int {
	return max(w.opts.MaxDepth, 1)
}

func ignoredReason(r ignore.Reason) SkippedReason {
	if r == ignore.ReasonDotfile {
		return ReasonIgnoredHidden
	}
	return ReasonIgnoredRule
}
