// Copyright 2026 The typstplot Authors
// SPDX-License-Identifier: MIT

// Package backend defines the drawing-primitive abstraction that output
// adapters plug into.
//
// The package contains only the shared vocabulary of a plotting pipeline:
// coordinates, colors, stroke and text styles, and the DrawingBackend
// interface that concrete adapters implement. It knows nothing about any
// particular output format.
//
// # Drawing model
//
// A DrawingBackend is a best-effort pixel-coordinate canvas. The caller
// issues primitive calls (DrawLine, DrawRect, DrawText, ...) in stacking
// order and finishes with Present. Styles are passed per call and never
// retained by the backend.
//
//	var b backend.DrawingBackend = typstplot.NewWithBuffer(&buf, 500, 500)
//	b.DrawRect(backend.Pt(10, 10), backend.Pt(100, 100), style, true)
//	if err := b.Present(); err != nil {
//		log.Fatal(err)
//	}
//
// # Optional capabilities
//
// Capabilities beyond the core surface are modeled as separate interfaces.
// Callers feature-test with a type assertion:
//
//	if blitter, ok := b.(backend.BitmapBlitter); ok {
//		_ = blitter.BlitBitmap(pos, w, h, pixels)
//	}
package backend
