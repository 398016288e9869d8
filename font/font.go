// Package font provides fixed-cell bitmap fonts for page-organized monochrome
// displays such as the SSD1306.
//
// Glyphs are stored pre-rotated into the display's native byte order: each
// byte covers 8 vertically stacked pixels of one column (LSB on top), and
// fonts taller than 8 pixels stack H/8 such bands top to bottom. A glyph is
// therefore W*H/8 bytes, band by band with W column bytes per band, which is
// exactly the order the display's buffer-draw path consumes.
package font

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// Style selects the rendering variant applied when a glyph is blitted.
type Style int

const (
	// StyleNormal renders glyphs as stored.
	StyleNormal Style = iota
	// StyleBold thickens glyphs by one column.
	StyleBold
	// StyleItalic shears glyphs to the right, top rows leading.
	StyleItalic
)

func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "Normal"
	case StyleBold:
		return "Bold"
	case StyleItalic:
		return "Italic"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Fixed is a fixed-cell bitmap font covering a contiguous single-byte code
// range. All glyphs share the same W x H pixel cell.
type Fixed struct {
	// Name identifies the font in logs and errors.
	Name string
	// W and H are the glyph cell size in pixels. H must be a multiple of 8.
	W, H int
	// First and Last bound the covered code range, inclusive.
	First, Last byte
	// Data holds (Last-First+1) glyphs of W*H/8 bytes each, band-major:
	// the top 8-pixel band's W column bytes, then the next band's.
	Data []byte
	// Charmap optionally maps runes to the font's single-byte code page.
	// When nil, codes are taken to be ASCII.
	Charmap *charmap.Charmap
}

// Validate checks that the font geometry and data length are coherent.
func (f *Fixed) Validate() error {
	switch {
	case f == nil:
		return errors.New("font: nil font")
	case f.W <= 0 || f.H <= 0:
		return fmt.Errorf("font: %s: invalid cell size %dx%d", f.Name, f.W, f.H)
	case f.H%8 != 0:
		return fmt.Errorf("font: %s: cell height %d is not a multiple of 8", f.Name, f.H)
	case f.First > f.Last:
		return fmt.Errorf("font: %s: empty code range [%#02x, %#02x]", f.Name, f.First, f.Last)
	}
	if want := (int(f.Last) - int(f.First) + 1) * f.BytesPerGlyph(); len(f.Data) != want {
		return fmt.Errorf("font: %s: %d data bytes, want %d", f.Name, len(f.Data), want)
	}
	return nil
}

// BytesPerGlyph returns the storage size of one glyph cell.
func (f *Fixed) BytesPerGlyph() int {
	return f.W * f.H / 8
}

// Index maps a rune to a glyph index. Runes outside the font's code page or
// covered range substitute '?'; if even '?' is uncovered, the first glyph is
// used.
func (f *Fixed) Index(r rune) int {
	c := byte('?')
	if f.Charmap != nil {
		if b, ok := f.Charmap.EncodeRune(r); ok {
			c = b
		}
	} else if r < 0x80 {
		c = byte(r)
	}
	return f.IndexByte(c)
}

// IndexByte maps a single-byte code, already in the font's code page, to a
// glyph index with the same '?' substitution as Index.
func (f *Fixed) IndexByte(c byte) int {
	if c < f.First || c > f.Last {
		c = '?'
		if c < f.First || c > f.Last {
			return 0
		}
	}
	return int(c - f.First)
}

// Glyph returns the stored cell bytes for glyph index i. The slice aliases
// the font data and must not be modified.
func (f *Fixed) Glyph(i int) []byte {
	n := f.BytesPerGlyph()
	return f.Data[i*n : (i+1)*n]
}
