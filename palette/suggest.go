package palette

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/lucasb-eyer/go-colorful"
)

// Two-digit codes cap a palette at 100 entries.
const maxEntries = 100

// Suggest derives a candidate palette from an image by median-cut
// quantization, assigning sequential codes starting at "00".
func Suggest(m image.Image, colors int) (*Palette, error) {
	if colors < 1 || colors > maxEntries {
		return nil, fmt.Errorf("palette: color count must be between 1 and %d", maxEntries)
	}

	q := quantize.MedianCutQuantizer{}
	quantized := q.Quantize(make(color.Palette, 0, colors), m)
	if len(quantized) == 0 {
		return nil, errors.New("palette: image has no quantizable colors")
	}

	p := &Palette{
		entries: make([]Entry, 0, len(quantized)),
		index:   make(map[string]int, len(quantized)),
		lab:     make([][3]float64, 0, len(quantized)),
	}

	for i, c := range quantized {
		cf, ok := colorful.MakeColor(c)
		if !ok {
			// Fully transparent quantization bucket
			continue
		}

		code := fmt.Sprintf("%02d", i)
		p.index[code] = len(p.entries)
		p.entries = append(p.entries, Entry{
			Code: code,
			Name: fmt.Sprintf("Color %s", code),
			Hex:  cf.Hex()[1:],
		})

		l, a, b := cf.Lab()
		p.lab = append(p.lab, [3]float64{l, a, b})
	}

	if len(p.entries) == 0 {
		return nil, errors.New("palette: image has no quantizable colors")
	}

	return p, nil
}

// Encode writes the palette as indented JSON in the format Decode reads.
func (p *Palette) Encode(w io.Writer) error {
	raw := make(map[string]Entry, len(p.entries))
	for _, entry := range p.entries {
		raw[entry.Code] = entry
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(raw)
}
