// Package typstplot renders vector drawing primitives into a Typst markup
// document.
//
// # Overview
//
// typstplot is an output adapter: it implements the drawing-backend
// abstraction in package backend by translating each primitive call into
// one line of Typst markup. The resulting document is a sized, clipped
// #box containing one #place command per drawn element, in draw order.
//
// # Quick Start
//
//	import (
//		"github.com/typstplot/typstplot"
//		"github.com/typstplot/typstplot/backend"
//	)
//
//	// Render to a file
//	c := typstplot.New("chart.typ", 500, 500)
//	c.DrawRect(backend.Pt(10, 10), backend.Pt(100, 100),
//		backend.NewStyle(backend.Red), true)
//	if err := c.Close(); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or render into a caller-owned buffer
//	var buf bytes.Buffer
//	c := typstplot.NewWithBuffer(&buf, 500, 500)
//
// # Output contract
//
// The emitted directive syntax (function names, argument order, the pt
// unit suffix, the rgb(r, g, b[, a%]) color constructor) is a compatibility
// contract: downstream tooling matches it verbatim. Draw order equals
// emission order equals visual stacking order, and commands are never
// rewritten after emission.
//
// # Text anchoring
//
// Two anchor translation strategies exist; see AnchorStrategy. The default
// EdgeAnchors strategy is canonical. The strategies produce different (both
// valid) markup for the same anchor and are not interchangeable
// byte-for-byte.
//
// # Lifecycle
//
// A Canvas accepts drawing calls until Present (or its alias Close) is
// called, which closes the container and, for file-backed canvases, writes
// the document to disk. Present is idempotent. Drawing after Present
// returns backend.ErrFinalized. A Canvas discarded without Present is
// finalized best-effort by a runtime cleanup; errors on that path are
// logged and discarded. A Canvas is not safe for concurrent use.
package typstplot
