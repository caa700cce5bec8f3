/*
Package key renders a printable PDF color key for the canvas palette.

Every palette entry becomes one labeled swatch, laid out in a fixed grid of
columns across as many A4 pages as needed. The key is meant to be kept next
to the chat window so players can look up the two-digit code for a color.
*/
package key

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-pdf/fpdf"

	"github.com/pixkit/pixkit/palette"
)

// Filename is the conventional output path for the color key.
const Filename = "color_key.pdf"

// Layout in millimeters on A4 portrait.
const (
	pageMargin  = 15.0
	cellWidth   = 60.0
	cellHeight  = 14.0
	swatchSize  = 10.0
	labelGap    = 3.0
	titleHeight = 12.0
)

// Generate writes a PDF color key for p to w.
func Generate(w io.Writer, p *palette.Palette) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Canvas Color Key", false)
	pdf.SetAutoPageBreak(false, 0)

	pageWidth, pageHeight := pdf.GetPageSize()
	cols := int((pageWidth - 2*pageMargin) / cellWidth)
	if cols < 1 {
		cols = 1
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(pageMargin, pageMargin+6, "Canvas Color Key")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetDrawColor(0, 0, 0)

	col := 0
	y := pageMargin + titleHeight
	for _, entry := range p.Entries() {
		if y+cellHeight > pageHeight-pageMargin {
			pdf.AddPage()
			pdf.SetFont("Helvetica", "", 10)
			col = 0
			y = pageMargin
		}

		x := pageMargin + float64(col)*cellWidth
		c := entry.RGBA()
		pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
		pdf.Rect(x, y, swatchSize, swatchSize, "FD")
		pdf.Text(x+swatchSize+labelGap, y+swatchSize/2+1.5, fmt.Sprintf("%s  %s", entry.Code, entry.Name))

		col++
		if col == cols {
			col = 0
			y += cellHeight
		}
	}

	return pdf.Output(w)
}

// WriteFile renders the color key for p and writes it to path. The document
// is buffered in memory first so a failed render never leaves a partial
// file behind.
func WriteFile(path string, p *palette.Palette) error {
	var buf bytes.Buffer
	if err := Generate(&buf, p); err != nil {
		return fmt.Errorf("key: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("key: %w", err)
	}

	return nil
}
