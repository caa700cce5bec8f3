/*
Package pixkit converts images into chat commands for a collaborative
pixel-art canvas game.

The canvas is a fixed 32 by 32 grid and every cell is painted by posting a
command of the form "!pixel x,y,##" in chat, where x and y are zero-based
grid coordinates and ## is a two-digit palette code. A source image is
downscaled to the canvas size and each resulting pixel is matched against
the game palette, producing one command per cell.
*/
package pixkit

import (
	"log"

	"github.com/pixkit/pixkit/palette"
)

const (
	// CanvasSize is the width and height of the game canvas in cells.
	CanvasSize = 32

	// Source images are first filled and center-cropped to this size
	// before the final downsample, which keeps fine detail from
	// smearing in a single large resize step.
	intermediateSize = 128
)

type Converter struct {
	palette *palette.Palette
	logger  *log.Logger
}

func New(p *palette.Palette, logger *log.Logger) *Converter {
	return &Converter{
		palette: p,
		logger:  logger,
	}
}
