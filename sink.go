package typstplot

import (
	"bytes"
	"fmt"
	"os"
)

// sink is the destination for emitted markup. It is a tagged union of two
// variants: a file-backed sink owns its buffer and flushes it to path on
// finalize; a buffer sink borrows a caller-owned buffer and does nothing
// on finalize. path == "" discriminates the variants.
//
// Appending is identical for both; only finalize differs.
type sink struct {
	buf  *bytes.Buffer
	path string

	// closed is set once the closing container line has been emitted.
	// flushed is set once finalize has fully succeeded; a failed flush
	// leaves the buffer intact so finalize can be retried.
	closed  bool
	flushed bool
}

func newFileSink(path string) *sink {
	return &sink{buf: &bytes.Buffer{}, path: path}
}

func newBufferSink(buf *bytes.Buffer) *sink {
	return &sink{buf: buf}
}

// append writes one command line to the buffer.
func (s *sink) append(line string) {
	s.buf.WriteString(line)
	s.buf.WriteByte('\n')
}

// finalize closes the container and, for file-backed sinks, writes the
// accumulated document to disk. Idempotent on success; after a failed
// flush the closing line is not emitted again and the flush is retried.
func (s *sink) finalize() error {
	if s.flushed {
		return nil
	}
	if !s.closed {
		s.append("]")
		s.closed = true
	}
	if s.path != "" {
		f, err := os.Create(s.path)
		if err != nil {
			return fmt.Errorf("typstplot: create %s: %w", s.path, err)
		}
		if _, err := f.Write(s.buf.Bytes()); err != nil {
			f.Close()
			return fmt.Errorf("typstplot: write %s: %w", s.path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("typstplot: write %s: %w", s.path, err)
		}
	}
	s.flushed = true
	return nil
}
