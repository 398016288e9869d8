package ssd1306gfx

import (
	"errors"
	"fmt"

	"periph.io/x/devices/v3/ssd1306gfx/font"
)

// Scale is the integer glyph magnification exponent: each source pixel
// becomes a (1<<Scale)-sized square block.
type Scale uint8

const (
	Scale1x Scale = iota
	Scale2x
	Scale4x
	Scale8x
)

// Factor returns the pixel multiplication factor, 1<<s.
func (s Scale) Factor() int {
	return 1 << s
}

func (s Scale) String() string {
	return fmt.Sprintf("%dx", s.Factor())
}

// SetFont selects the fixed font used by all subsequent text operations.
// The font is referenced, not copied; it must stay alive and unmodified for
// as long as it is selected.
func (d *Dev) SetFont(f *font.Fixed) error {
	if err := f.Validate(); err != nil {
		return err
	}
	d.font = f
	return nil
}

// SetTextCursor moves the implicit text cursor used by Write and WriteByte.
// y is in pixels and, like all text drawing, snaps down to a page boundary
// per glyph.
func (d *Dev) SetTextCursor(x, y int) {
	d.cursorX, d.cursorY = x, y
}

// PrintFixed renders text at (x, y) in the selected font at 1x scale.
// See PrintFixedN for the full contract.
func (d *Dev) PrintFixed(x, y int, text string, style font.Style) (int, error) {
	return d.printFixed(x, y, text, style, Scale1x, -1)
}

// PrintFixedN renders text at (x, y) in the selected font, magnifying each
// glyph pixel into a scale.Factor()-sized square block.
//
// y is coerced down to the nearest page boundary: y=18 renders at y=16.
// '\n' and '\r' are skipped, not rendered. The cursor advances by
// glyphWidth*scale.Factor() per character; characters that would start
// beyond the right edge terminate the walk early. Returns the number of
// characters processed. Glyph cells are blitted whole, so each character
// destructively replaces the full cell area, and Negative draw mode renders
// inverse video.
func (d *Dev) PrintFixedN(x, y int, text string, style font.Style, scale Scale) (int, error) {
	return d.printFixed(x, y, text, style, scale, -1)
}

// PrintFixedField renders text at (x, y) like PrintFixed, then erases the
// remaining field up to pixel column xRight (exclusive). Short strings thus
// blank the tail of a fixed-width field, which is how highlighted menu rows
// clear stale content: in Negative draw mode the erased tail comes out lit.
func (d *Dev) PrintFixedField(x, y int, text string, style font.Style, xRight int) (int, error) {
	return d.printFixed(x, y, text, style, Scale1x, xRight)
}

func (d *Dev) printFixed(x, y int, text string, style font.Style, scale Scale, fieldRight int) (int, error) {
	if d.halted {
		return 0, errors.New("ssd1306gfx: halted")
	}
	if d.font == nil {
		return 0, errors.New("ssd1306gfx: no font selected")
	}
	if scale > Scale8x {
		return 0, errors.New("ssd1306gfx: scale out of range")
	}

	k := scale.Factor()
	page := y >> 3
	cw := d.font.W * k

	n := 0
	for _, r := range text {
		if r == '\n' || r == '\r' {
			n++
			continue
		}
		if x >= d.rect.Dx() {
			break
		}
		if err := d.blitGlyph(x, page, d.font.Index(r), style, k); err != nil {
			return n, err
		}
		x += cw
		n++
	}

	if fieldRight > x {
		if err := d.fillRegion(x, page, fieldRight-x, d.font.H*k/8, 0x00); err != nil {
			return n, err
		}
	}
	return n, nil
}

// WriteByte renders one byte, already in the selected font's code page, at
// the implicit text cursor, advancing it by one glyph cell. '\r' rewinds
// the cursor to column 0; '\n' additionally advances it one text row.
// Neither is rendered. WriteByte implements io.ByteWriter.
func (d *Dev) WriteByte(c byte) error {
	if d.halted {
		return errors.New("ssd1306gfx: halted")
	}
	if d.font == nil {
		return errors.New("ssd1306gfx: no font selected")
	}
	switch c {
	case '\r':
		d.cursorX = 0
	case '\n':
		d.cursorX = 0
		d.cursorY += d.font.H
	default:
		if err := d.blitGlyph(d.cursorX, d.cursorY>>3, d.font.IndexByte(c), font.StyleNormal, 1); err != nil {
			return err
		}
		d.cursorX += d.font.W
	}
	return nil
}

// Write renders p byte by byte at the implicit text cursor, implementing
// io.Writer so the device works with fmt.Fprintf and friends. Bytes are
// interpreted in the font's code page; for rune-aware rendering use
// PrintFixedN. There is no automatic wrapping: glyphs past the right edge
// clip.
func (d *Dev) Write(p []byte) (int, error) {
	for i, c := range p {
		if err := d.WriteByte(c); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// blitGlyph renders glyph gi of the selected font at column x, page row
// page, styled and magnified by k.
func (d *Dev) blitGlyph(x, page, gi int, style font.Style, k int) error {
	f := d.font
	g := d.styleGlyph(f.Glyph(gi), style)
	if k == 1 {
		return d.drawBuffer(x, page, f.W, f.H, g, false)
	}

	w2 := f.W * k
	need := w2 * f.H * k / 8
	if cap(d.glyphBuf) < need {
		d.glyphBuf = make([]byte, need)
	}
	buf := d.glyphBuf[:need]
	for i := range buf {
		buf[i] = 0
	}

	for c := 0; c < f.W; c++ {
		for b := 0; b < f.H/8; b++ {
			bits := g[b*f.W+c]
			if bits == 0 {
				continue
			}
			for bit := 0; bit < 8; bit++ {
				if bits&(1<<uint(bit)) == 0 {
					continue
				}
				ys := (b*8 + bit) * k
				xs := c * k
				for dy := 0; dy < k; dy++ {
					row := buf[((ys+dy)>>3)*w2:]
					m := byte(1) << uint((ys+dy)&7)
					for dx := 0; dx < k; dx++ {
						row[xs+dx] |= m
					}
				}
			}
		}
	}
	return d.drawBuffer(x, page, w2, f.H*k, buf, false)
}

// styleGlyph applies the style transform to a stored glyph cell, returning
// either the cell itself (StyleNormal) or a scratch copy.
func (d *Dev) styleGlyph(g []byte, style font.Style) []byte {
	if style == font.StyleNormal {
		return g
	}
	f := d.font
	n := f.BytesPerGlyph()
	if cap(d.styleBuf) < n {
		d.styleBuf = make([]byte, n)
	}
	out := d.styleBuf[:n]
	bands := f.H / 8

	switch style {
	case font.StyleBold:
		// Thicken by OR-ing each column with its left neighbor.
		for b := 0; b < bands; b++ {
			row := g[b*f.W : (b+1)*f.W]
			o := out[b*f.W : (b+1)*f.W]
			o[0] = row[0]
			for c := 1; c < f.W; c++ {
				o[c] = row[c] | row[c-1]
			}
		}
	case font.StyleItalic:
		// Shear right: pixel row y shifts by (H-1-y)/4 columns, so the top
		// of the glyph leads. Pixels sheared past the cell edge clip.
		for b := 0; b < bands; b++ {
			for c := 0; c < f.W; c++ {
				var v byte
				for bit := 0; bit < 8; bit++ {
					sc := c - (f.H-1-(b*8+bit))/4
					if sc < 0 {
						continue
					}
					if g[b*f.W+sc]&(1<<uint(bit)) != 0 {
						v |= 1 << uint(bit)
					}
				}
				out[b*f.W+c] = v
			}
		}
	default:
		return g
	}
	return out
}
