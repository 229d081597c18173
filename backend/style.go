// Copyright 2026 The typstplot Authors
// SPDX-License-Identifier: MIT

package backend

// Style describes how shape outlines and fills are drawn.
type Style struct {
	Color       Color
	StrokeWidth int
}

// NewStyle creates a style with the given color and a 1px stroke.
func NewStyle(c Color) Style {
	return Style{Color: c, StrokeWidth: 1}
}

// WithStrokeWidth returns a copy of the style with the given stroke width.
func (s Style) WithStrokeWidth(w int) Style {
	s.StrokeWidth = w
	return s
}

// FontStyle selects the weight and slant of a font face.
type FontStyle uint8

const (
	FontNormal FontStyle = iota
	FontOblique
	FontItalic
	FontBold
)

var fontStyleNames = [...]string{
	FontNormal:  "Normal",
	FontOblique: "Oblique",
	FontItalic:  "Italic",
	FontBold:    "Bold",
}

// String returns the name of the font style.
func (f FontStyle) String() string {
	if int(f) < len(fontStyleNames) {
		return fontStyleNames[f]
	}
	return "Unknown"
}

// FontTransform is a discrete rotation applied to a text run.
type FontTransform uint8

const (
	TransformNone FontTransform = iota
	Rotate90
	Rotate180
	Rotate270
)

var fontTransformNames = [...]string{
	TransformNone: "None",
	Rotate90:      "Rotate90",
	Rotate180:     "Rotate180",
	Rotate270:     "Rotate270",
}

// String returns the name of the transform.
func (t FontTransform) String() string {
	if int(t) < len(fontTransformNames) {
		return fontTransformNames[t]
	}
	return "Unknown"
}

// Degrees returns the rotation in degrees (0, 90, 180 or 270).
func (t FontTransform) Degrees() int {
	switch t {
	case Rotate90:
		return 90
	case Rotate180:
		return 180
	case Rotate270:
		return 270
	default:
		return 0
	}
}

// HPos is the horizontal component of a text anchor.
type HPos uint8

const (
	Left HPos = iota
	HCenter
	Right
)

// VPos is the vertical component of a text anchor.
type VPos uint8

const (
	Top VPos = iota
	VCenter
	Bottom
)

// Anchor is the reference point within a text run's bounding box used for
// positioning. The default zero value anchors at the top-left corner.
type Anchor struct {
	H HPos
	V VPos
}

// AnchorAt builds an anchor from its two components.
func AnchorAt(h HPos, v VPos) Anchor {
	return Anchor{H: h, V: v}
}

// TextStyle describes how a text run is drawn.
type TextStyle struct {
	Color     Color
	Family    string
	Size      float64
	Style     FontStyle
	Transform FontTransform
	Anchor    Anchor
}

// NewTextStyle creates a text style with the given color, family and size,
// a normal face, no rotation and a top-left anchor.
func NewTextStyle(c Color, family string, size float64) TextStyle {
	return TextStyle{Color: c, Family: family, Size: size}
}

// WithAnchor returns a copy of the style anchored at the given position.
func (s TextStyle) WithAnchor(h HPos, v VPos) TextStyle {
	s.Anchor = Anchor{H: h, V: v}
	return s
}

// WithTransform returns a copy of the style with the given rotation.
func (s TextStyle) WithTransform(t FontTransform) TextStyle {
	s.Transform = t
	return s
}
