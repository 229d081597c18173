package typstplot

import (
	"fmt"
	"strings"

	"github.com/typstplot/typstplot/backend"
)

// fontSizeFactor compensates for the systematic difference between the
// caller's font-size convention and Typst's rendered glyph size. This is a
// calibration constant, not derived analytically.
const fontSizeFactor = 1.24

// Vertical offsets used by the OffsetAnchors strategy, in em of the
// rendered font size.
const (
	topOffsetEm    = 0.76
	centerOffsetEm = 0.35
)

// textEscaper escapes the four characters with special meaning in Typst
// inline syntax. A single Replacer pass never re-escapes its own output,
// so escaping is safe to apply exactly once, before any other transform.
var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"#", `\#`,
	"$", `\$`,
)

func escapeText(text string) string {
	return textEscaper.Replace(text)
}

// typstFontFamily maps the three generic font families to concrete Typst
// font names. Anything else is passed through as a literal font name.
func typstFontFamily(family string) string {
	switch family {
	case "sans-serif":
		return "Liberation Sans"
	case "serif":
		return "Liberation Serif"
	case "monospace":
		return "Liberation Mono"
	default:
		return family
	}
}

func fontWeight(s backend.FontStyle) string {
	if s == backend.FontBold {
		return `"bold"`
	}
	return `"regular"`
}

// fontSlant collapses oblique into italic; Typst has no distinct oblique.
func fontSlant(s backend.FontStyle) string {
	if s == backend.FontItalic || s == backend.FontOblique {
		return `"italic"`
	}
	return `"normal"`
}

// rotationWrap returns the opening and closing fragments of a rotate
// transform, or two empty strings when no rotation applies.
func rotationWrap(t backend.FontTransform) (prefix, suffix string) {
	if t == backend.TransformNone {
		return "", ""
	}
	return fmt.Sprintf("rotate(%ddeg, ", t.Degrees()), ")"
}

// DrawText draws a text run anchored at pos. The anchor translation
// depends on the canvas's AnchorStrategy; see the package documentation.
func (c *Canvas) DrawText(text string, s backend.TextStyle, pos backend.Point) error {
	if s.Color.IsTransparent() {
		return nil
	}

	size := s.Size / fontSizeFactor
	escaped := escapeText(text)
	family := typstFontFamily(s.Family)
	rotOpen, rotClose := rotationWrap(s.Transform)

	if c.anchors == OffsetAnchors {
		return c.drawTextOffset(escaped, s, pos, size, family, rotOpen, rotClose)
	}
	return c.drawTextEdge(escaped, s, pos, size, family, rotOpen, rotClose)
}

// drawTextEdge implements the edge-based anchor strategy. Vertical anchors
// map to Typst top-edge/bottom-edge text-box attributes; centered and
// right-aligned text is shifted by its measured width inside a #context
// block, deferring the measurement to Typst's own layout pass.
func (c *Canvas) drawTextEdge(escaped string, s backend.TextStyle, pos backend.Point, size float64, family, rotOpen, rotClose string) error {
	var topEdge, bottomEdge string
	switch s.Anchor.V {
	case backend.Top:
		topEdge, bottomEdge = `"bounds"`, `"bounds"`
	case backend.VCenter:
		topEdge, bottomEdge = `"cap-height"`, `"baseline"`
	case backend.Bottom:
		topEdge, bottomEdge = `"baseline"`, `"baseline"`
	}

	aligned := escaped
	switch s.Anchor.H {
	case backend.Right:
		aligned = fmt.Sprintf("#context { let m = measure([%s]); h(-m.width); [%s] }", escaped, escaped)
	case backend.HCenter:
		aligned = fmt.Sprintf("#context { let m = measure([%s]); h(-m.width / 2); [%s] }", escaped, escaped)
	}

	return c.command(fmt.Sprintf(
		`  #place(dx: %dpt, dy: %dpt, %sbox[#set text(size: %vpt, fill: %s, weight: %s, style: %s, font: "%s", top-edge: %s, bottom-edge: %s); %s]%s)`,
		pos.X, pos.Y, rotOpen, size, typstColor(s.Color), fontWeight(s.Style), fontSlant(s.Style),
		family, topEdge, bottomEdge, aligned, rotClose))
}

// drawTextOffset implements the offset-based anchor strategy. Vertical
// anchors become a fixed em-proportional upward shift of the placement
// point; horizontal anchors map to the alignment argument of place. No
// measurement step is needed, at the cost of approximate vertical
// placement. Not byte-compatible with the edge strategy.
func (c *Canvas) drawTextOffset(escaped string, s backend.TextStyle, pos backend.Point, size float64, family, rotOpen, rotClose string) error {
	dy := float64(pos.Y)
	switch s.Anchor.V {
	case backend.Top:
		dy -= topOffsetEm * size
	case backend.VCenter:
		dy -= centerOffsetEm * size
	}

	align := "left"
	switch s.Anchor.H {
	case backend.HCenter:
		align = "center"
	case backend.Right:
		align = "right"
	}

	return c.command(fmt.Sprintf(
		`  #place(top + %s, dx: %dpt, dy: %vpt, %sbox[#set text(size: %vpt, fill: %s, weight: %s, style: %s, font: "%s"); %s]%s)`,
		align, pos.X, dy, rotOpen, size, typstColor(s.Color), fontWeight(s.Style), fontSlant(s.Style),
		family, escaped, rotClose))
}
