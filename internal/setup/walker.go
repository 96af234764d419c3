// Package setup turns a Config into a ready-to-run walker
package setup

import (
	"fmt"

	"github.com/bethropolis/rcat/internal/config"
	"github.com/bethropolis/rcat/internal/ignore"
	"github.com/bethropolis/rcat/internal/logger"
	"github.com/bethropolis/rcat/internal/pattern"
	"github.com/bethropolis/rcat/internal/walker"
)

// ConfigureWalker compiles the patterns, loads the .gitignore rules and
// returns the walker for cfg.RootDir. The tracker is nil unless skipped items
// were asked for.
func ConfigureWalker(cfg *config.Config, log logger.Interface) (*walker.Walker, *walker.SkippedTracker, error) {
	root, err := walker.CheckRoot(cfg.RootDir)
	if err != nil {
		return nil, nil, err
	}

	// "!pattern" in includes excludes, as in most glob tools.
	includes, negated := pattern.Partition(cfg.Includes)
	includeSet, err := pattern.Compile(includes)
	if err != nil {
		return nil, nil, fmt.Errorf("includes: %w", err)
	}
	excludeSet, err := pattern.Compile(append(negated, cfg.Excludes...))
	if err != nil {
		return nil, nil, fmt.Errorf("excludes: %w", err)
	}
	log.Debug("Include patterns: %v", includeSet.Patterns())
	log.Debug("Exclude patterns: %v", excludeSet.Patterns())

	if cfg.Dotfiles {
		log.Debug("Including hidden files/directories.")
	} else {
		log.Debug("Ignoring hidden files/directories (starting with '.').")
	}

	matcher, err := ignore.NewFromConfig(ignore.Config{
		RootDir:  root,
		Dotfiles: cfg.Dotfiles,
		Logger:   log,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing ignore rules: %w", err)
	}

	opts := []walker.Option{
		walker.WithLogger(log),
		walker.WithIncludes(includeSet),
		walker.WithExcludes(excludeSet),
		walker.WithMaxDepth(cfg.Depth),
	}

	var tracker *walker.SkippedTracker
	if cfg.ShowSkipped {
		tracker = walker.NewSkippedTracker(100)
		opts = append(opts, walker.WithTracker(tracker))
	}

	w, err := walker.New(root, matcher, opts...)
	if err != nil {
		return nil, nil, err
	}
	return w, tracker, nil
}
