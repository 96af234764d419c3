// Package app wires the walk and the printer together
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bethropolis/rcat/internal/config"
	"github.com/bethropolis/rcat/internal/logger"
	"github.com/bethropolis/rcat/internal/printer"
	"github.com/bethropolis/rcat/internal/setup"
	"github.com/bethropolis/rcat/internal/summary"
	"github.com/bethropolis/rcat/internal/walker"
	"github.com/fatih/color"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	Output io.Writer
	Errors io.Writer
}

// New creates an App printing files to out and logging to errOut
func New(cfg *config.Config, out, errOut io.Writer) *App {
	color.NoColor = !cfg.UseColors

	log := logger.New(errOut, cfg.Verbose, cfg.UseColors)
	if cfg.LogLevel != "" {
		log.SetLevel(cfg.LogLevel)
	}

	return &App{
		cfg:    cfg,
		log:    log,
		Output: out,
		Errors: errOut,
	}
}

// Run walks the root and prints every selected file. Files are handled one
// at a time in walk order; the first I/O error stops the run.
func (a *App) Run(ctx context.Context) error {
	startTime := time.Now()

	a.log.Debug("Directory: %s", a.cfg.RootDir)
	a.log.Debug("Depth limit: %d, dotfiles: %v, list: %v", a.cfg.Depth, a.cfg.Dotfiles, a.cfg.List)

	w, tracker, err := setup.ConfigureWalker(a.cfg, a.log)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(a.Output)
	p := printer.New().WithOutput(out).WithList(a.cfg.List)
	defer func() {
		if ferr := p.Flush(); ferr != nil {
			a.log.Error("Failed to flush output: %v", ferr)
		}
	}()

	for entry, err := range w.Paths(ctx) {
		if err != nil {
			return err
		}

		emitted, err := p.Emit(ctx, entry.Path, entry.AbsPath)
		if err != nil {
			return err
		}
		if !emitted {
			a.log.Debug("Skipping binary file %s", entry.Path)
			tracker.Track(entry.Path, walker.ReasonBinary, false)
		}
	}

	if err := p.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	summary.DisplayResults(a.log, p.GetCount(), p.SkippedBinary(), time.Since(startTime))
	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(tracker.Items(), a.Errors)
	}
	return nil
}
