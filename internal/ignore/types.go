package ignore

import (
	"github.com/bethropolis/rcat/internal/logger"
	gitignore "github.com/denormal/go-gitignore"
)

// Reason names the rule that excluded a path. The empty Reason means the
// path is kept.
type Reason string

const (
	NotIgnored      Reason = ""
	ReasonDotfile   Reason = "dotfile"
	ReasonGitignore Reason = "gitignore"
)

// Matcher decides whether a path below the root is excluded by .gitignore
// rules or the dotfile policy.
type Matcher struct {
	// Repository rules, .gitignore files loaded lazily per directory
	repoIgnore gitignore.GitIgnore

	rootDir      string
	ignoreHidden bool
	disabled     bool
	logger       logger.Interface
}

// Config holds configuration options for the matcher
type Config struct {
	RootDir  string
	Dotfiles bool
	Disabled bool
	Logger   logger.Interface
}
