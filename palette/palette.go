/*
Package palette implements loading and querying of the canvas color palette.

The palette is a JSON object mapping two-digit string codes to a display
name and a six-digit hex color:

	{
	    "00": {"name": "White", "hex": "FFFFFF"},
	    "01": {"name": "Black", "hex": "000000"}
	}

A leading "#" on the hex value is accepted. The palette is loaded once per
run and is immutable afterwards; entries are kept sorted by code so that
iteration order, and therefore nearest-color tie-breaking, is stable.
*/
package palette

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	codeRegexp = regexp.MustCompile(`^[0-9]{2}$`)
	hexRegexp  = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)
)

// ParseError describes why a palette file was rejected. Code is empty when
// the file as a whole could not be parsed.
type ParseError struct {
	Code   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("palette: %s", e.Reason)
	}
	return fmt.Sprintf("palette: entry %q: %s", e.Code, e.Reason)
}

// Entry is a single palette color.
type Entry struct {
	Code string `json:"-"`
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// RGBA returns the entry's color as 8-bit RGB with full alpha.
func (e Entry) RGBA() color.RGBA {
	c, _ := colorful.Hex(normalizeHex(e.Hex))
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Palette is an immutable set of palette entries indexed by code.
type Palette struct {
	entries []Entry
	index   map[string]int

	// L*a*b* coordinates per entry, precomputed at load time
	lab [][3]float64
}

// Decode reads a palette from r and validates every entry.
func Decode(r io.Reader) (*Palette, error) {
	var raw map[string]Entry
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, &ParseError{Reason: err.Error()}
	}

	if len(raw) == 0 {
		return nil, &ParseError{Reason: "no entries"}
	}

	p := &Palette{
		entries: make([]Entry, 0, len(raw)),
		index:   make(map[string]int, len(raw)),
	}

	for code, entry := range raw {
		if !codeRegexp.MatchString(code) {
			return nil, &ParseError{Code: code, Reason: "code must be two digits"}
		}
		if entry.Hex == "" {
			return nil, &ParseError{Code: code, Reason: "missing hex value"}
		}
		if !hexRegexp.MatchString(strings.TrimPrefix(entry.Hex, "#")) {
			return nil, &ParseError{Code: code, Reason: fmt.Sprintf("invalid hex color %q", entry.Hex)}
		}
		entry.Code = code
		p.entries = append(p.entries, entry)
	}

	sort.Slice(p.entries, func(i, j int) bool {
		return p.entries[i].Code < p.entries[j].Code
	})

	p.lab = make([][3]float64, len(p.entries))
	for i, entry := range p.entries {
		p.index[entry.Code] = i
		c, err := colorful.Hex(normalizeHex(entry.Hex))
		if err != nil {
			return nil, &ParseError{Code: entry.Code, Reason: err.Error()}
		}
		l, a, b := c.Lab()
		p.lab[i] = [3]float64{l, a, b}
	}

	return p, nil
}

// Load reads and decodes the palette file at path.
func Load(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("palette: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Entries returns all entries in ascending code order.
func (p *Palette) Entries() []Entry {
	return p.entries
}

// Lookup returns the entry for code.
func (p *Palette) Lookup(code string) (Entry, bool) {
	i, ok := p.index[code]
	if !ok {
		return Entry{}, false
	}
	return p.entries[i], true
}

func normalizeHex(s string) string {
	return "#" + strings.ToLower(strings.TrimPrefix(s, "#"))
}
