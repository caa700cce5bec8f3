package palette

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Nearest returns the code of the entry closest to c in CIE-L*a*b* space.
// Entries are scanned in ascending code order with a strict comparison, so
// the lowest code wins when two entries are equidistant. Alpha is ignored.
func (p *Palette) Nearest(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	l, a, b := colorful.Color{
		R: float64(n.R) / 255.0,
		G: float64(n.G) / 255.0,
		B: float64(n.B) / 255.0,
	}.Lab()

	best := 0
	bestDist := math.Inf(1)
	for i, lab := range p.lab {
		dl, da, db := l-lab[0], a-lab[1], b-lab[2]
		if d := dl*dl + da*da + db*db; d < bestDist {
			bestDist = d
			best = i
		}
	}

	return p.entries[best].Code
}
