package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteTooManyArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{"dirA", "dirB"}, &stdout, &stderr)

	assert.Equal(t, exitUsage, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "too many arguments")
	assert.Contains(t, stderr.String(), "Usage:")
}

func TestExecuteUnknownFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{"--bogus"}, &stdout, &stderr)
	assert.Equal(t, exitUsage, code)
	assert.Empty(t, stdout.String())
}

func TestExecuteNegativeDepth(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{"-d", "-1", t.TempDir()}, &stdout, &stderr)

	assert.Equal(t, exitUsage, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "depth must be non-negative")
}

func TestExecuteMissingRoot(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{filepath.Join(t.TempDir(), "missing")}, &stdout, &stderr)

	assert.Equal(t, exitIO, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Error:")
}

func TestExecuteDumpsTree(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("alpha\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.png"), []byte("png"), 0o644))

	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{root, "--no-color"}, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "\n--- a.txt ---\nalpha\n", stdout.String())
	assert.Empty(t, stderr.String())

	stdout.Reset()
	code = execute(context.Background(), []string{"-l", root}, &stdout, &stderr)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "a.txt\n", stdout.String())
}
