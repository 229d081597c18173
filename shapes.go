package typstplot

import (
	"fmt"
	"math"
	"strings"

	"github.com/typstplot/typstplot/backend"
)

// fillStroke returns the fill and stroke attributes for a shape. Filled
// shapes carry no stroke; outlined shapes carry no fill.
func fillStroke(s backend.Style, fill bool) (fillAttr, strokeAttr string) {
	color := typstColor(s.Color)
	if fill {
		return "fill: " + color, "stroke: none"
	}
	return "fill: none", fmt.Sprintf("stroke: %dpt + %s", s.StrokeWidth, color)
}

// DrawPixel draws a single pixel as a 1x1 filled rectangle.
func (c *Canvas) DrawPixel(p backend.Point, col backend.Color) error {
	if col.IsTransparent() {
		return nil
	}
	return c.command(fmt.Sprintf(
		"  #place(dx: %dpt, dy: %dpt, rect(width: 1pt, height: 1pt, fill: %s, stroke: none))",
		p.X, p.Y, typstColor(col)))
}

// DrawLine draws a segment between two points. Typst models a segment as a
// start point plus polar length and angle rather than two endpoints, so
// the endpoints are converted here.
func (c *Canvas) DrawLine(from, to backend.Point, s backend.Style) error {
	if s.Color.IsTransparent() {
		return nil
	}

	dx := float64(to.X - from.X)
	dy := float64(to.Y - from.Y)
	length := math.Sqrt(dx*dx + dy*dy)
	angle := math.Atan2(dy, dx) * 180 / math.Pi

	return c.command(fmt.Sprintf(
		"  #place(dx: %dpt, dy: %dpt, line(length: %vpt, angle: %vdeg, stroke: %dpt + %s))",
		from.X, from.Y, length, angle, s.StrokeWidth, typstColor(s.Color)))
}

// DrawRect draws a rectangle given its upper-left and bottom-right corners.
func (c *Canvas) DrawRect(upperLeft, bottomRight backend.Point, s backend.Style, fill bool) error {
	if s.Color.IsTransparent() {
		return nil
	}

	width := bottomRight.X - upperLeft.X
	height := bottomRight.Y - upperLeft.Y
	fillAttr, strokeAttr := fillStroke(s, fill)

	return c.command(fmt.Sprintf(
		"  #place(dx: %dpt, dy: %dpt, rect(width: %dpt, height: %dpt, %s, %s))",
		upperLeft.X, upperLeft.Y, width, height, fillAttr, strokeAttr))
}

// DrawPath draws an open polyline as independent segments between
// consecutive points. Emitting segments instead of a polygon primitive
// keeps the path from auto-closing.
func (c *Canvas) DrawPath(points []backend.Point, s backend.Style) error {
	if s.Color.IsTransparent() {
		return nil
	}
	if len(points) < 2 {
		return nil
	}

	for i := 1; i < len(points); i++ {
		if err := c.DrawLine(points[i-1], points[i], s); err != nil {
			return err
		}
	}
	return nil
}

// FillPolygon fills the polygon with the given vertices, in order, with no
// outline. An empty vertex list emits nothing.
func (c *Canvas) FillPolygon(points []backend.Point, s backend.Style) error {
	if s.Color.IsTransparent() {
		return nil
	}
	if len(points) == 0 {
		return nil
	}

	coords := make([]string, len(points))
	for i, p := range points {
		coords[i] = fmt.Sprintf("(%dpt, %dpt)", p.X, p.Y)
	}

	return c.command(fmt.Sprintf(
		"  #place(polygon(fill: %s, stroke: none, %s))",
		typstColor(s.Color), strings.Join(coords, ", ")))
}

// DrawCircle draws a circle around center. Typst positions a circle by the
// top-left corner of its bounding box, so the placement is offset by the
// radius on both axes.
func (c *Canvas) DrawCircle(center backend.Point, radius int, s backend.Style, fill bool) error {
	if s.Color.IsTransparent() {
		return nil
	}

	fillAttr, strokeAttr := fillStroke(s, fill)

	return c.command(fmt.Sprintf(
		"  #place(dx: %dpt, dy: %dpt, circle(radius: %dpt, %s, %s))",
		center.X-radius, center.Y-radius, radius, fillAttr, strokeAttr))
}
