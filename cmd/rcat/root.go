package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bethropolis/rcat/internal/app"
	"github.com/bethropolis/rcat/internal/config"
	"github.com/spf13/cobra"
)

// Exit codes
const (
	exitOK    = 0
	exitUsage = 1
	exitIO    = 2
)

// usageError marks errors caused by bad command-line input.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func newRootCmd(cfg *config.Config, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rcat [path]",
		Short: "Print the text files of a directory tree",
		Long: `rcat walks a directory, keeps the files matching the include patterns
and none of the exclude patterns, honors .gitignore files, skips binary
files and prints each remaining file under a "--- path ---" header.`,
		Example: `  # Output all text files in the current directory
  rcat

  # Output only .ts and .tsx files in the src directory
  rcat ./src --includes "**/*.ts" --includes "**/*.tsx"

  # Output everything except test files and the dist folder
  rcat --excludes "**/*.test.ts" --excludes "dist/**"

  # Output files only 2 levels deep
  rcat --depth 2`,
		Version:       cfg.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return usageError{config.ErrTooManyArgs}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Resolve(args); err != nil {
				return usageError{err}
			}
			return app.New(cfg, stdout, stderr).Run(cmd.Context())
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})
	cfg.BindFlags(cmd.Flags())
	return cmd
}

// execute runs rcat with args and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(config.New(), stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	var uerr usageError
	if errors.As(err, &uerr) {
		fmt.Fprintf(stderr, "Error: %v\n\n%s", err, cmd.UsageString())
		return exitUsage
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitIO
}
