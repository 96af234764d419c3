// Package printer writes the selected files to the output stream
package printer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bethropolis/rcat/internal/binary"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultChunkSize is how many bytes are read from a file before they are
// written out. Only one chunk is held in memory at a time.
const DefaultChunkSize = 32 * 1024

// Printer is the sole writer of the output stream. It is not safe for
// concurrent use.
type Printer struct {
	output     io.Writer
	classifier binary.Classifier
	listOnly   bool
	chunkSize  int
	count      int64
	skipped    int64
}

// New creates a new Printer writing to stdout
func New() *Printer {
	return &Printer{
		output:     os.Stdout,
		classifier: binary.ExtensionClassifier{},
		chunkSize:  DefaultChunkSize,
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithList switches to printing only relative paths, one per line
func (p *Printer) WithList(enabled bool) *Printer {
	p.listOnly = enabled
	return p
}

// WithClassifier replaces the binary file heuristic
func (p *Printer) WithClassifier(c binary.Classifier) *Printer {
	if c != nil {
		p.classifier = c
	}
	return p
}

// WithChunkSize sets the copy chunk size. Values below 1 are ignored.
func (p *Printer) WithChunkSize(n int) *Printer {
	if n > 0 {
		p.chunkSize = n
	}
	return p
}

// Emit prints one file. Files classified as binary produce no output and
// Emit returns false. Cancelling ctx stops a file mid-stream.
func (p *Printer) Emit(ctx context.Context, relativePath, absPath string) (bool, error) {
	if p.classifier.IsBinary(absPath) {
		p.skipped++
		return false, nil
	}

	if p.listOnly {
		if err := p.PrintPath(relativePath); err != nil {
			return false, err
		}
		return true, nil
	}

	f, err := os.Open(absPath)
	if err != nil {
		return false, fmt.Errorf("printer: %w", err)
	}
	defer f.Close()

	if err := p.PrintFile(ctx, relativePath, f); err != nil {
		return false, err
	}
	return true, nil
}

// PrintPath writes relativePath followed by a newline
func (p *Printer) PrintPath(relativePath string) error {
	if _, err := fmt.Fprintln(p.output, relativePath); err != nil {
		return fmt.Errorf("printer: write path: %w", err)
	}
	p.count++
	return nil
}

// PrintFile writes the "--- path ---" header and then streams content,
// decoded as UTF-8, in fixed-size chunks. Each chunk is written before the
// next one is read, so a slow consumer slows the reads down. ctx is checked
// before every chunk.
func (p *Printer) PrintFile(ctx context.Context, relativePath string, content io.Reader) error {
	if _, err := fmt.Fprintf(p.output, "\n--- %s ---\n", relativePath); err != nil {
		return fmt.Errorf("printer: write header: %w", err)
	}

	src := transform.NewReader(content, unicode.UTF8.NewDecoder())
	if err := copyChunks(ctx, p.output, src, make([]byte, p.chunkSize)); err != nil {
		return fmt.Errorf("printer: %s: %w", relativePath, err)
	}
	p.count++
	return nil
}

// Flush flushes the output if it buffers writes.
func (p *Printer) Flush() error {
	if f, ok := p.output.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// GetCount returns the number of files printed
func (p *Printer) GetCount() int64 {
	return p.count
}

// SkippedBinary returns the number of files skipped as binary
func (p *Printer) SkippedBinary() int64 {
	return p.skipped
}

// copyChunks is io.CopyBuffer without the ReaderFrom/WriterTo shortcuts, which
// would let the copy pick its own buffer.
func copyChunks(ctx context.Context, dst io.Writer, src io.Reader, buf []byte) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, rerr := src.Read(buf)
		if n > 0 {
			w, werr := dst.Write(buf[:n])
			if werr != nil {
				return werr
			}
			if w != n {
				return io.ErrShortWrite
			}
		}
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				return nil
			}
			return rerr
		}
	}
}
