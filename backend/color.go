// Copyright 2026 The typstplot Authors
// SPDX-License-Identifier: MIT

package backend

import "image/color"

// Color is an RGB color with an alpha channel. Channel values are 8-bit,
// alpha is in the range [0, 1]. Colors are immutable values passed per
// drawing call; backends never retain them.
type Color struct {
	R, G, B uint8
	A       float64
}

// Common colors.
var (
	Black       = Color{0, 0, 0, 1}
	White       = Color{255, 255, 255, 1}
	Red         = Color{255, 0, 0, 1}
	Green       = Color{0, 255, 0, 1}
	Blue        = Color{0, 0, 255, 1}
	Transparent = Color{0, 0, 0, 0}
)

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA creates a color from 8-bit components and an alpha in [0, 1].
func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// IsTransparent reports whether drawing with this color would be
// invisible. Backends use this to skip fully transparent operations.
func (c Color) IsTransparent() bool {
	return c.A == 0
}

// WithAlpha returns a copy of the color with the given alpha.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Color converts to the standard library color.Color interface.
func (c Color) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(clamp01(c.A) * 255)}
}

// FromColor converts a standard library color.Color into a Color.
func FromColor(c color.Color) Color {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: nrgba.R,
		G: nrgba.G,
		B: nrgba.B,
		A: float64(nrgba.A) / 255,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
