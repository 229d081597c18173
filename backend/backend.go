// Copyright 2026 The typstplot Authors
// SPDX-License-Identifier: MIT

package backend

import "errors"

// Common backend errors.
var (
	// ErrFinalized is returned by drawing operations issued after Present.
	ErrFinalized = errors.New("backend: canvas already finalized")

	// ErrUnsupported is returned when an optional capability is not
	// implemented by a backend.
	ErrUnsupported = errors.New("backend: operation not supported")

	// ErrInvalidBitmap is returned by BlitBitmap when the pixel buffer
	// length does not match the declared dimensions.
	ErrInvalidBitmap = errors.New("backend: bitmap buffer size mismatch")
)

// Point is a coordinate on the backend canvas, in pixel units.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// DrawingBackend is the interface implemented by output adapters.
//
// Drawing calls are best-effort: degenerate input (fully transparent
// colors, empty polygons, single-point paths) degrades to a no-op rather
// than an error. Calls must be issued from a single goroutine; a backend
// is owned by one caller for its entire lifetime.
//
// Present finalizes the output and is the only operation with an external
// side effect. It must be called exactly once on the success path;
// implementations make it idempotent so cleanup paths can call it again
// safely.
type DrawingBackend interface {
	// Size returns the canvas dimensions in pixels.
	Size() (width, height int)

	// EnsurePrepared gives the backend a chance to allocate resources
	// before the first drawing call. Backends with no setup return nil.
	EnsurePrepared() error

	// DrawPixel draws a single pixel.
	DrawPixel(p Point, c Color) error

	// DrawLine draws a straight segment from one point to another.
	DrawLine(from, to Point, s Style) error

	// DrawRect draws a rectangle given its upper-left and bottom-right
	// corners. If fill is true the rectangle is filled, otherwise only
	// its outline is stroked.
	DrawRect(upperLeft, bottomRight Point, s Style, fill bool) error

	// DrawPath draws an open polyline through the given points.
	// Fewer than two points is a no-op. The path is never closed.
	DrawPath(points []Point, s Style) error

	// FillPolygon fills the polygon described by the given vertices.
	// An empty vertex list is a no-op.
	FillPolygon(points []Point, s Style) error

	// DrawCircle draws a circle around center. If fill is true the disc
	// is filled, otherwise only the outline is stroked.
	DrawCircle(center Point, radius int, s Style, fill bool) error

	// DrawText draws a text run anchored at pos according to the style's
	// anchor and transform.
	DrawText(text string, s TextStyle, pos Point) error

	// Present finalizes the output (closes the document, flushes to the
	// destination). Idempotent.
	Present() error
}

// BitmapBlitter is an optional capability for backends that can embed
// raster images. The pixel buffer is tightly packed RGB8, row-major,
// width*height*3 bytes.
type BitmapBlitter interface {
	BlitBitmap(pos Point, width, height int, rgb []byte) error
}
