// Package ignore applies .gitignore rules and the dotfile policy to paths
// found while walking a directory tree.
//
// Every .gitignore file below the root is honored for its own subtree,
// including negation rules, the way git does it. The root does not need to be
// a git repository.
package ignore

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bethropolis/rcat/internal/logger"
	gitignore "github.com/denormal/go-gitignore"
)

// New creates a Matcher rooted at rootDir.
func New(rootDir string, opts ...Option) (*Matcher, error) {
	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for rootDir '%s': %w", rootDir, err)
	}

	m := &Matcher{
		rootDir:      absRootDir,
		ignoreHidden: true,
		logger:       logger.Discard{},
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := m.init(); err != nil {
		return nil, err
	}
	return m, nil
}

// NewFromConfig creates a Matcher from a Config struct
func NewFromConfig(cfg Config) (*Matcher, error) {
	return New(cfg.RootDir,
		WithDotfiles(cfg.Dotfiles),
		WithDisabled(cfg.Disabled),
		WithLogger(cfg.Logger),
	)
}

func (m *Matcher) init() error {
	m.logger.Debug("ignore.New: root=%s ignoreHidden=%v", m.rootDir, m.ignoreHidden)

	if m.disabled {
		m.logger.Debug("ignore.New: matcher disabled, skipping .gitignore loading")
		return nil
	}

	repo, err := gitignore.NewRepository(m.rootDir)
	if err != nil {
		if repo != nil {
			return fmt.Errorf("ignore: failed to load repository ignores: %w", err)
		}
		m.logger.Warn("ignore.New: no .gitignore rules loaded for '%s': %v", m.rootDir, err)
		repo = gitignore.New(strings.NewReader(""), m.rootDir, nil)
	}
	m.repoIgnore = repo
	return nil
}

// Root returns the absolute root directory.
func (m *Matcher) Root() string {
	return m.rootDir
}
