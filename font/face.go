package font

import (
	"errors"
	"fmt"
	"image"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"
)

// FromFace rasterizes a monospaced font.Face into a Fixed font covering the
// codes [first, last]. The cell width is taken from the advance of '0' and
// the cell height from the face metrics, rounded up to a whole number of
// 8-pixel bands. cm optionally names the code page the byte range decodes
// through; nil means ASCII.
//
// Proportional faces are rejected: every covered glyph must share the '0'
// advance. Codes the face cannot render become blank cells.
func FromFace(name string, face xfont.Face, first, last byte, cm *charmap.Charmap) (*Fixed, error) {
	if face == nil {
		return nil, errors.New("font: nil face")
	}
	if first > last {
		return nil, fmt.Errorf("font: %s: empty code range [%#02x, %#02x]", name, first, last)
	}
	adv, ok := face.GlyphAdvance('0')
	if !ok {
		return nil, fmt.Errorf("font: %s: face cannot render '0'", name)
	}
	w := adv.Ceil()
	m := face.Metrics()
	h := (m.Ascent + m.Descent).Ceil()
	h = (h + 7) &^ 7
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("font: %s: degenerate cell %dx%d", name, w, h)
	}

	f := &Fixed{
		Name:    name,
		W:       w,
		H:       h,
		First:   first,
		Last:    last,
		Charmap: cm,
		Data:    make([]byte, (int(last)-int(first)+1)*w*h/8),
	}
	ascent := m.Ascent.Ceil()
	dot := fixed.P(0, ascent)
	for c := int(first); c <= int(last); c++ {
		r := rune(c)
		if cm != nil {
			r = cm.DecodeByte(byte(c))
		}
		dr, mask, maskp, a, ok := face.Glyph(dot, r)
		if !ok {
			continue
		}
		if a != adv {
			return nil, fmt.Errorf("font: %s: face is not fixed pitch (%q advance differs)", name, r)
		}
		cell := f.Data[(c-int(first))*f.BytesPerGlyph():]
		for y := dr.Min.Y; y < dr.Max.Y; y++ {
			if y < 0 || y >= h {
				continue
			}
			for x := dr.Min.X; x < dr.Max.X; x++ {
				if x < 0 || x >= w {
					continue
				}
				p := image.Pt(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y)
				if _, _, _, alpha := mask.At(p.X, p.Y).RGBA(); alpha >= 0x8000 {
					cell[y/8*w+x] |= 1 << uint(y&7)
				}
			}
		}
	}
	return f, nil
}
