package setup

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/rcat/internal/config"
	"github.com/bethropolis/rcat/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureWalkerNegatedInclude(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"main.go", "main_test.go", "README.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x"), 0o644))
	}

	cfg := config.New()
	cfg.Includes = []string{"**/*.go", "!**/*_test.go"}
	cfg.ShowSkipped = true
	require.NoError(t, cfg.Resolve([]string{root}))

	w, tracker, err := ConfigureWalker(cfg, logger.Discard{})
	require.NoError(t, err)
	require.NotNil(t, tracker)

	var got []string
	for entry, err := range w.Paths(context.Background()) {
		require.NoError(t, err)
		got = append(got, entry.Path)
	}
	assert.Equal(t, []string{"main.go"}, got)
	assert.Len(t, tracker.Items(), 2)
}

func TestConfigureWalkerBadPattern(t *testing.T) {
	cfg := config.New()
	cfg.Excludes = []string{"[oops"}
	require.NoError(t, cfg.Resolve([]string{t.TempDir()}))

	_, _, err := ConfigureWalker(cfg, logger.Discard{})
	assert.ErrorContains(t, err, "excludes")
}

func TestConfigureWalkerNotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	cfg := config.New()
	require.NoError(t, cfg.Resolve([]string{file}))

	_, tracker, err := ConfigureWalker(cfg, logger.Discard{})
	assert.Error(t, err)
	assert.Nil(t, tracker)
}
