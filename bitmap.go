package typstplot

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/typstplot/typstplot/backend"
)

// BlitBitmap embeds a raster image in the document. The pixel buffer is
// tightly packed RGB8, row-major, width*height*3 bytes; it is encoded as a
// PNG and inlined as a base64 data: URI with explicit dimensions.
func (c *Canvas) BlitBitmap(pos backend.Point, width, height int, rgb []byte) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	if len(rgb) != width*height*3 {
		return fmt.Errorf("%w: %d bytes for %dx%d", backend.ErrInvalidBitmap, len(rgb), width, height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		img.Pix[i*4+0] = rgb[i*3+0]
		img.Pix[i*4+1] = rgb[i*3+1]
		img.Pix[i*4+2] = rgb[i*3+2]
		img.Pix[i*4+3] = 0xFF
	}

	var data bytes.Buffer
	if err := png.Encode(&data, img); err != nil {
		return fmt.Errorf("typstplot: encode png: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(data.Bytes())

	return c.command(fmt.Sprintf(
		`  #place(dx: %dpt, dy: %dpt, image.decode("data:image/png;base64,%s", width: %dpt, height: %dpt))`,
		pos.X, pos.Y, encoded, width, height))
}

// BlitImage embeds any image.Image, scaled to width x height. The source
// is resampled with approximate bilinear filtering and flattened to RGB
// before embedding.
func (c *Canvas) BlitImage(pos backend.Point, width, height int, src image.Image) error {
	if width <= 0 || height <= 0 {
		return nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	rgb := make([]byte, 0, width*height*3)
	for i := 0; i < width*height; i++ {
		rgb = append(rgb, dst.Pix[i*4+0], dst.Pix[i*4+1], dst.Pix[i*4+2])
	}
	return c.BlitBitmap(pos, width, height, rgb)
}
