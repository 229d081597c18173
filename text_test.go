package typstplot

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typstplot/typstplot/backend"
)

func TestEscapeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "hello", want: "hello"},
		{name: "backslash", in: `a\b`, want: `a\\b`},
		{name: "quote", in: `say "hi"`, want: `say \"hi\"`},
		{name: "hash", in: "#1", want: `\#1`},
		{name: "dollar", in: "$5", want: `\$5`},
		{name: "all specials", in: `\"#$`, want: `\\\"\#\$`},
		{name: "no double escaping", in: `\#`, want: `\\\#`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeText(tt.in); got != tt.want {
				t.Errorf("escapeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTypstFontFamily(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sans-serif", "Liberation Sans"},
		{"serif", "Liberation Serif"},
		{"monospace", "Liberation Mono"},
		{"Fira Code", "Fira Code"},
	}

	for _, tt := range tests {
		if got := typstFontFamily(tt.in); got != tt.want {
			t.Errorf("typstFontFamily(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFontWeightAndSlant(t *testing.T) {
	tests := []struct {
		style     backend.FontStyle
		wantThick string
		wantSlant string
	}{
		{backend.FontNormal, `"regular"`, `"normal"`},
		{backend.FontBold, `"bold"`, `"normal"`},
		{backend.FontItalic, `"regular"`, `"italic"`},
		{backend.FontOblique, `"regular"`, `"italic"`},
	}

	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			if got := fontWeight(tt.style); got != tt.wantThick {
				t.Errorf("fontWeight = %s, want %s", got, tt.wantThick)
			}
			if got := fontSlant(tt.style); got != tt.wantSlant {
				t.Errorf("fontSlant = %s, want %s", got, tt.wantSlant)
			}
		})
	}
}

func drawSingleText(t *testing.T, text string, style backend.TextStyle, pos backend.Point, opts ...Option) string {
	t.Helper()
	var buf bytes.Buffer
	c := NewWithBuffer(&buf, 500, 500, opts...)
	require.NoError(t, c.DrawText(text, style, pos))
	require.NoError(t, c.Present())
	return buf.String()
}

func TestDrawText_Basic(t *testing.T) {
	style := backend.NewTextStyle(backend.Black, "sans-serif", 20)
	doc := drawSingleText(t, "hello", style, backend.Pt(40, 60))

	assert.Contains(t, doc, "#place(dx: 40pt, dy: 60pt,")
	assert.Contains(t, doc, fmt.Sprintf("size: %vpt", 20.0/fontSizeFactor))
	assert.Contains(t, doc, `font: "Liberation Sans"`)
	assert.Contains(t, doc, `weight: "regular"`)
	assert.Contains(t, doc, `style: "normal"`)
	assert.Contains(t, doc, "hello")
	assert.NotContains(t, doc, "rotate(")
	assert.NotContains(t, doc, "measure(")
}

func TestDrawText_Escaping(t *testing.T) {
	style := backend.NewTextStyle(backend.Black, "serif", 12)
	doc := drawSingleText(t, `cost: $5 "net" #1 a\b`, style, backend.Pt(0, 0))

	assert.Contains(t, doc, `\$5`)
	assert.Contains(t, doc, `\"net\"`)
	assert.Contains(t, doc, `\#1`)
	assert.Contains(t, doc, `a\\b`)
	assert.NotContains(t, doc, `cost: $5`)
}

func TestDrawText_EdgeVerticalAnchors(t *testing.T) {
	tests := []struct {
		name string
		v    backend.VPos
		want string
	}{
		{name: "top", v: backend.Top, want: `top-edge: "bounds", bottom-edge: "bounds"`},
		{name: "center", v: backend.VCenter, want: `top-edge: "cap-height", bottom-edge: "baseline"`},
		{name: "bottom", v: backend.Bottom, want: `top-edge: "baseline", bottom-edge: "baseline"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := backend.NewTextStyle(backend.Black, "serif", 12).WithAnchor(backend.Left, tt.v)
			doc := drawSingleText(t, "anchored", style, backend.Pt(10, 10))
			assert.Contains(t, doc, tt.want)
		})
	}
}

func TestDrawText_EdgeHorizontalAnchors(t *testing.T) {
	base := backend.NewTextStyle(backend.Black, "sans-serif", 20)

	left := drawSingleText(t, "left-align", base.WithAnchor(backend.Left, backend.Top), backend.Pt(150, 200))
	assert.NotContains(t, left, "measure(")

	right := drawSingleText(t, "right-align", base.WithAnchor(backend.Right, backend.Top), backend.Pt(150, 50))
	assert.Contains(t, right, "#context { let m = measure([right-align]); h(-m.width); [right-align] }")

	center := drawSingleText(t, "center-align", base.WithAnchor(backend.HCenter, backend.Top), backend.Pt(150, 150))
	assert.Contains(t, center, "#context { let m = measure([center-align]); h(-m.width / 2); [center-align] }")
}

func TestDrawText_Rotation(t *testing.T) {
	tests := []struct {
		transform backend.FontTransform
		wantOpen  string
	}{
		{backend.Rotate90, "rotate(90deg, "},
		{backend.Rotate180, "rotate(180deg, "},
		{backend.Rotate270, "rotate(270deg, "},
	}

	for _, tt := range tests {
		t.Run(tt.transform.String(), func(t *testing.T) {
			style := backend.NewTextStyle(backend.Black, "serif", 14).WithTransform(tt.transform)
			doc := drawSingleText(t, "spin", style, backend.Pt(5, 5))
			assert.Contains(t, doc, tt.wantOpen)
			// The rotate wrapper is closed after the box.
			assert.Contains(t, doc, "])")
		})
	}

	plain := drawSingleText(t, "steady",
		backend.NewTextStyle(backend.Black, "serif", 14), backend.Pt(5, 5))
	assert.NotContains(t, plain, "rotate(")
}

func TestDrawText_BoldItalic(t *testing.T) {
	bold := backend.NewTextStyle(backend.Black, "serif", 14)
	bold.Style = backend.FontBold
	doc := drawSingleText(t, "strong", bold, backend.Pt(0, 0))
	assert.Contains(t, doc, `weight: "bold"`)

	italic := backend.NewTextStyle(backend.Black, "serif", 14)
	italic.Style = backend.FontItalic
	doc = drawSingleText(t, "slanted", italic, backend.Pt(0, 0))
	assert.Contains(t, doc, `style: "italic"`)
}

func TestDrawText_OffsetStrategy(t *testing.T) {
	size := 20.0 / fontSizeFactor

	tests := []struct {
		name   string
		anchor backend.Anchor
		wantDy float64
		wantAl string
	}{
		{name: "top left", anchor: backend.AnchorAt(backend.Left, backend.Top), wantDy: 100 - topOffsetEm*size, wantAl: "top + left"},
		{name: "center center", anchor: backend.AnchorAt(backend.HCenter, backend.VCenter), wantDy: 100 - centerOffsetEm*size, wantAl: "top + center"},
		{name: "bottom right", anchor: backend.AnchorAt(backend.Right, backend.Bottom), wantDy: 100, wantAl: "top + right"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := backend.NewTextStyle(backend.Black, "sans-serif", 20)
			style.Anchor = tt.anchor
			doc := drawSingleText(t, "anchored", style, backend.Pt(50, 100),
				WithAnchorStrategy(OffsetAnchors))

			assert.Contains(t, doc, fmt.Sprintf("#place(%s, dx: 50pt, dy: %vpt,", tt.wantAl, tt.wantDy))
			assert.NotContains(t, doc, "measure(", "offset strategy needs no measurement")
			assert.NotContains(t, doc, "top-edge:")
		})
	}
}

// The two strategies are distinct, pinned outputs for the same input.
func TestDrawText_StrategiesDiverge(t *testing.T) {
	style := backend.NewTextStyle(backend.Black, "sans-serif", 20).
		WithAnchor(backend.HCenter, backend.VCenter)

	edge := drawSingleText(t, "same input", style, backend.Pt(30, 30))
	offset := drawSingleText(t, "same input", style, backend.Pt(30, 30),
		WithAnchorStrategy(OffsetAnchors))

	assert.NotEqual(t, edge, offset)
	assert.True(t, strings.Contains(edge, "measure(") && !strings.Contains(offset, "measure("))
}
