package pixkit

import (
	"bufio"
	"bytes"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/pixkit/pixkit/palette"
)

// Frame is a resolved canvas: one palette code per cell.
type Frame struct {
	codes   [CanvasSize][CanvasSize]string
	palette *palette.Palette
}

// Code returns the palette code at (x, y).
func (f *Frame) Code(x, y int) string {
	return f.codes[y][x]
}

// Commands returns one command per cell in row-major order, top-left first.
func (f *Frame) Commands() []Command {
	cmds := make([]Command, 0, CanvasSize*CanvasSize)
	for y := 0; y < CanvasSize; y++ {
		for x := 0; x < CanvasSize; x++ {
			cmds = append(cmds, Command{X: x, Y: y, Code: f.codes[y][x]})
		}
	}
	return cmds
}

// Image renders the frame as a palette-mapped preview image.
func (f *Frame) Image() image.Image {
	m := image.NewRGBA(image.Rect(0, 0, CanvasSize, CanvasSize))
	for y := 0; y < CanvasSize; y++ {
		for x := 0; x < CanvasSize; x++ {
			entry, _ := f.palette.Lookup(f.codes[y][x])
			m.Set(x, y, entry.RGBA())
		}
	}
	return m
}

// WritePreview writes the preview image to w as PNG.
func (f *Frame) WritePreview(w io.Writer) error {
	return png.Encode(w, f.Image())
}

// WritePreviewFile writes the preview image to path. The PNG is buffered
// in memory first so a failed run never leaves a partial file behind.
func (f *Frame) WritePreviewFile(path string) error {
	var buf bytes.Buffer
	if err := f.WritePreview(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// WriteCommands writes the frame's commands to w, one per line.
func (f *Frame) WriteCommands(w io.Writer) error {
	wr := bufio.NewWriter(w)
	for _, cmd := range f.Commands() {
		if _, err := wr.WriteString(cmd.String()); err != nil {
			return err
		}
		if err := wr.WriteByte('\n'); err != nil {
			return err
		}
	}
	return wr.Flush()
}

// WriteCommandsFile writes the frame's commands to path, buffered the same
// way as WritePreviewFile.
func (f *Frame) WriteCommandsFile(path string) error {
	var buf bytes.Buffer
	if err := f.WriteCommands(&buf); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
