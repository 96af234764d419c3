// Package summary reports scan results and skipped items on stderr
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bethropolis/rcat/internal/walker"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// DisplayResults logs how many files were emitted and how long it took
func DisplayResults(logger Logger, fileCount, binaryCount int64, duration time.Duration) {
	logger.Info("Emitted %d files, skipped %d binary files.", fileCount, binaryCount)
	logger.Info("Scan complete in %v.", duration.Round(time.Millisecond))
}

// DisplaySkippedItems prints every skipped path with its reason, sorted by
// path, to output.
func DisplaySkippedItems(skippedItems []walker.SkippedItem, output io.Writer) {
	fmt.Fprintf(output, "--- Skipped Items (%d) ---\n", len(skippedItems))

	items := append([]walker.SkippedItem(nil), skippedItems...)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Path < items[j].Path
	})
	for _, item := range items {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR " // pad for alignment
		}
		fmt.Fprintf(output, "Skipped %s: %-.*s [%s]\n", typeStr, 50, item.Path, item.Reason)
	}
	fmt.Fprintln(output, "--- End Skipped Items ---")
}
