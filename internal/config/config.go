// Package config holds the resolved command-line configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

// DefaultInclude selects every file.
const DefaultInclude = "**/*"

// ErrTooManyArgs is returned when more than one root path is given.
var ErrTooManyArgs = errors.New("too many arguments")

// Config holds all application configuration settings
type Config struct {
	// Directory settings
	RootDir string

	// Filtering settings
	Includes []string
	Excludes []string
	Depth    int // -1 means unlimited
	Dotfiles bool

	// Output settings
	List        bool
	ShowSkipped bool

	// Logging settings
	Verbose   bool
	LogLevel  string
	NoColor   bool
	UseColors bool

	Version string

	flags *pflag.FlagSet
}

// New returns a Config with defaults applied.
func New() *Config {
	return &Config{
		Includes: []string{DefaultInclude},
		Depth:    -1,
		Version:  "1.0.0",
	}
}

// BindFlags registers the rcat flags on fs.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	c.flags = fs
	fs.StringArrayVarP(&c.Includes, "includes", "i", c.Includes, "Glob pattern to include (repeatable)")
	fs.StringArrayVarP(&c.Excludes, "excludes", "e", c.Excludes, "Glob pattern to exclude (repeatable)")
	fs.IntVarP(&c.Depth, "depth", "d", c.Depth, "Maximum recursion depth (unset = unlimited)")
	fs.BoolVarP(&c.Dotfiles, "dotfiles", "D", c.Dotfiles, "Include dotfiles (hidden files)")
	fs.BoolVarP(&c.List, "list", "l", c.List, "Only list files without printing content")
	fs.BoolVar(&c.ShowSkipped, "show-skipped", c.ShowSkipped, "Show skipped files/directories and reasons on stderr at the end")
	fs.BoolVarP(&c.Verbose, "verbose", "v", c.Verbose, "Enable debug logging on stderr")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Set the logging level (DEBUG, INFO, WARN, ERROR, NONE)")
	fs.BoolVar(&c.NoColor, "no-color", c.NoColor, "Disable color output")
}

// Resolve applies the positional arguments and finishes derived settings.
// With no argument the root is the current working directory.
func (c *Config) Resolve(args []string) error {
	if len(args) > 1 {
		return ErrTooManyArgs
	}
	if len(args) == 1 {
		c.RootDir = args[0]
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("config: cannot determine working directory: %w", err)
		}
		c.RootDir = wd
	}

	if c.Depth < -1 || (c.Depth < 0 && c.depthFlagSet()) {
		return fmt.Errorf("config: depth must be non-negative, got %d", c.Depth)
	}
	if len(c.Includes) == 0 {
		c.Includes = []string{DefaultInclude}
	}

	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd())
	return nil
}

func (c *Config) depthFlagSet() bool {
	return c.flags != nil && c.flags.Changed("depth")
}

// UnlimitedDepth reports whether no depth limit was given.
func (c *Config) UnlimitedDepth() bool {
	return c.Depth < 0
}
