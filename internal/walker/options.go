package walker

import (
	"github.com/bethropolis/rcat/internal/logger"
	"github.com/bethropolis/rcat/internal/pattern"
)

// Unlimited disables the depth limit.
const Unlimited = -1

// Options configures a Walker
type Options struct {
	Logger   logger.Interface
	Includes *pattern.Set
	Excludes *pattern.Set
	// MaxDepth is the deepest level whose files are yielded, counting files
	// directly in the root as level 1. 0 and 1 both mean root files only.
	MaxDepth int
	Tracker  *SkippedTracker
}

func defaultOptions() Options {
	return Options{
		Logger:   logger.Discard{},
		Includes: pattern.MustCompile("**/*"),
		Excludes: &pattern.Set{},
		MaxDepth: Unlimited,
	}
}

// Option is a functional option for configuring Options
type Option func(*Options)

// WithLogger sets a custom logger for the walker
func WithLogger(l logger.Interface) Option {
	return func(opts *Options) {
		if l != nil {
			opts.Logger = l
		}
	}
}

// WithIncludes sets the patterns a file must match. A nil or empty set keeps
// the default of matching every file.
func WithIncludes(s *pattern.Set) Option {
	return func(opts *Options) {
		if s != nil && s.Len() > 0 {
			opts.Includes = s
		}
	}
}

// WithExcludes sets the patterns that remove a file from the result.
func WithExcludes(s *pattern.Set) Option {
	return func(opts *Options) {
		if s != nil {
			opts.Excludes = s
		}
	}
}

// WithMaxDepth limits how deep the walk descends. Negative means unlimited.
func WithMaxDepth(depth int) Option {
	return func(opts *Options) {
		if depth < 0 {
			depth = Unlimited
		}
		opts.MaxDepth = depth
	}
}

// WithTracker records every pruned directory and rejected file.
func WithTracker(t *SkippedTracker) Option {
	return func(opts *Options) {
		opts.Tracker = t
	}
}
