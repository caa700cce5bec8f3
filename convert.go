package pixkit

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/disintegration/gift"
	_ "golang.org/x/image/bmp"
)

// Decode reads an image from r. PNG, JPEG, GIF and BMP are supported.
func Decode(r io.Reader) (image.Image, error) {
	m, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("pixkit: decode image: %w", err)
	}
	return m, nil
}

// Convert downscales m to the canvas size and matches every cell against
// the palette. The resize happens in two steps: a Lanczos fill and center
// crop to a square intermediate, then a Lanczos downsample to the canvas.
func (c *Converter) Convert(m image.Image) *Frame {
	mid := image.NewRGBA(image.Rect(0, 0, intermediateSize, intermediateSize))
	gift.New(gift.ResizeToFill(intermediateSize, intermediateSize, gift.LanczosResampling, gift.CenterAnchor)).Draw(mid, m)

	small := image.NewRGBA(image.Rect(0, 0, CanvasSize, CanvasSize))
	gift.New(gift.Resize(CanvasSize, CanvasSize, gift.LanczosResampling)).Draw(small, mid)

	frame := &Frame{palette: c.palette}
	for y := 0; y < CanvasSize; y++ {
		for x := 0; x < CanvasSize; x++ {
			frame.codes[y][x] = c.palette.Nearest(small.At(x, y))
		}
	}

	if c.logger != nil {
		c.logger.Printf("converted %dx%d image to %d cells\n", m.Bounds().Dx(), m.Bounds().Dy(), CanvasSize*CanvasSize)
	}

	return frame
}
