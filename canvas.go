package typstplot

import (
	"bytes"
	"fmt"
	"runtime"

	"github.com/typstplot/typstplot/backend"
)

// Canvas renders drawing primitives into a Typst markup document.
//
// Create one with New (file-backed) or NewWithBuffer (caller-owned
// buffer), issue drawing calls, then call Present or Close exactly once.
// The zero value is not usable.
//
// A Canvas is owned by a single caller and is not safe for concurrent use.
type Canvas struct {
	sink    *sink
	width   int
	height  int
	anchors AnchorStrategy
	cleanup runtime.Cleanup
}

// Compile-time interface conformance.
var (
	_ backend.DrawingBackend = (*Canvas)(nil)
	_ backend.BitmapBlitter  = (*Canvas)(nil)
)

// New creates a file-backed Canvas of the given pixel size. The document
// accumulates in memory; the file at path is created (or truncated) and
// written only when Present succeeds.
func New(path string, width, height int, opts ...Option) *Canvas {
	return newCanvas(newFileSink(path), width, height, opts)
}

// NewWithBuffer creates a Canvas that appends the document to a
// caller-owned buffer. Present closes the container but performs no I/O.
func NewWithBuffer(buf *bytes.Buffer, width, height int, opts ...Option) *Canvas {
	return newCanvas(newBufferSink(buf), width, height, opts)
}

func newCanvas(s *sink, width, height int, opts []Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{
		sink:    s,
		width:   width,
		height:  height,
		anchors: o.anchors,
	}

	// Absolutely positioned, clipped container bounding every command.
	s.append(fmt.Sprintf("#box(width: %dpt, height: %dpt, clip: true)[", width, height))

	// Best-effort finalize for canvases discarded without Present.
	// The cleanup must not fail, so its error is logged and dropped.
	c.cleanup = runtime.AddCleanup(c, func(s *sink) {
		if err := s.finalize(); err != nil {
			logger().Warn("implicit finalize failed", "path", s.path, "error", err)
		}
	}, s)

	return c
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// EnsurePrepared implements backend.DrawingBackend. The canvas needs no
// preparation.
func (c *Canvas) EnsurePrepared() error {
	return nil
}

// Present finalizes the document: it emits the closing container line and,
// for file-backed canvases, writes the buffer to disk. Create and write
// failures are returned wrapped; the in-memory document stays intact so a
// failed Present can be retried. Subsequent calls after success are no-ops.
func (c *Canvas) Present() error {
	if c.sink.flushed {
		return nil
	}
	if err := c.sink.finalize(); err != nil {
		return err
	}
	c.cleanup.Stop()
	logger().Debug("canvas finalized",
		"width", c.width, "height", c.height, "bytes", c.sink.buf.Len())
	return nil
}

// Close is an alias for Present, so a Canvas satisfies io.Closer and works
// with defer.
func (c *Canvas) Close() error {
	return c.Present()
}

// command appends one markup command line inside the container.
// Once the container is closed, further commands are rejected: emitting
// them would place content outside the closing bracket and corrupt the
// document.
func (c *Canvas) command(cmd string) error {
	if c.sink.closed {
		return backend.ErrFinalized
	}
	c.sink.append(cmd)
	return nil
}
