package ssd1306gfx

import (
	"errors"
	"image"

	"periph.io/x/devices/v3/ssd1306gfx/image1bit"
)

// SetPixel lights the single pixel at (x, y).
//
// The display cannot be read back, so the write replaces the whole 8-pixel
// column byte containing (x, y): the 7 neighbors sharing the byte are
// cleared (or lit, in Negative mode). Callers needing non-destructive pixel
// composition must render through an image1bit.VerticalLSB and Draw.
// Out-of-range coordinates are a no-op.
func (d *Dev) SetPixel(x, y int) error {
	if x < 0 || x >= d.rect.Dx() || y < 0 || y >= d.rect.Dy() {
		return nil
	}
	return d.PutColumn(x, y>>3, 1<<uint(y&7))
}

// DrawHLine draws a horizontal line from (x1, y) to (x2, y) inclusive.
// The endpoints may be given in either order; the span is clipped to the
// display. Each affected column byte is replaced whole, clearing the 7
// vertical neighbors of the line in its page row.
func (d *Dev) DrawHLine(x1, y, x2 int) error {
	if d.halted {
		return errors.New("ssd1306gfx: halted")
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y < 0 || y >= d.rect.Dy() || x2 < 0 || x1 >= d.rect.Dx() {
		return nil
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 >= d.rect.Dx() {
		x2 = d.rect.Dx() - 1
	}

	b := byte(1<<uint(y&7)) ^ d.invert
	data := d.scratch[:0]
	for i := x1; i <= x2; i++ {
		data = append(data, b)
	}
	d.scratch = data[:0]
	return d.writeRegion(x1, y>>3, x2-x1+1, 1, data)
}

// DrawVLine draws a vertical line from (x, y1) to (x, y2) inclusive.
// The endpoints may be given in either order; the span is clipped to the
// display. Fully covered page rows receive a solid byte; the partial top
// and bottom rows receive a masked byte, clearing the out-of-span pixels
// of the column.
func (d *Dev) DrawVLine(x, y1, y2 int) error {
	if d.halted {
		return errors.New("ssd1306gfx: halted")
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	if x < 0 || x >= d.rect.Dx() || y2 < 0 || y1 >= d.rect.Dy() {
		return nil
	}
	if y1 < 0 {
		y1 = 0
	}
	if y2 >= d.rect.Dy() {
		y2 = d.rect.Dy() - 1
	}

	topPage, botPage := y1>>3, y2>>3
	data := d.scratch[:0]
	for p := topPage; p <= botPage; p++ {
		m := byte(0xFF)
		if p == topPage {
			m &= 0xFF << uint(y1&7)
		}
		if p == botPage {
			m &= 0xFF >> uint(7-y2&7)
		}
		data = append(data, m^d.invert)
	}
	d.scratch = data[:0]
	return d.writeRegion(x, topPage, 1, botPage-topPage+1, data)
}

// DrawLine draws a line from (x1, y1) to (x2, y2) inclusive, tracing the
// general case pixel by pixel with incremental error accumulation.
// Axis-aligned lines degrade to DrawHLine/DrawVLine, which write whole
// byte spans per transaction instead of one pixel at a time.
//
// Both endpoints are always plotted, regardless of direction. Each plotted
// pixel has the destructive column-byte semantics of SetPixel.
func (d *Dev) DrawLine(x1, y1, x2, y2 int) error {
	if d.halted {
		return errors.New("ssd1306gfx: halted")
	}
	if y1 == y2 {
		return d.DrawHLine(x1, y1, x2)
	}
	if x1 == x2 {
		return d.DrawVLine(x1, y1, y2)
	}

	dx, dy := x2-x1, y2-y1
	stepX, stepY := 1, 1
	if dx < 0 {
		dx, stepX = -dx, -1
	}
	if dy < 0 {
		dy, stepY = -dy, -1
	}
	dx2, dy2 := dx*2, dy*2

	// Plot both endpoints up front so endpoint inclusion never depends on
	// the traversal direction.
	if err := d.SetPixel(x1, y1); err != nil {
		return err
	}
	if err := d.SetPixel(x2, y2); err != nil {
		return err
	}

	if dx2 > dy2 {
		fraction := dy2 - dx
		for x1 != x2 {
			if fraction >= 0 {
				y1 += stepY
				fraction -= dx2
			}
			x1 += stepX
			fraction += dy2
			if err := d.SetPixel(x1, y1); err != nil {
				return err
			}
		}
	} else {
		fraction := dx2 - dy
		for y1 != y2 {
			if fraction >= 0 {
				x1 += stepX
				fraction -= dy2
			}
			y1 += stepY
			fraction += dx2
			if err := d.SetPixel(x1, y1); err != nil {
				return err
			}
		}
	}
	return nil
}

// DrawRect draws the outline of the rectangle with opposite corners
// (x1, y1) and (x2, y2), as four line calls. Reversed corners are
// normalized. Edges sharing a page row interact destructively like any
// overlapping line draws.
func (d *Dev) DrawRect(x1, y1, x2, y2 int) error {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	if err := d.DrawHLine(x1, y1, x2); err != nil {
		return err
	}
	if err := d.DrawHLine(x1, y2, x2); err != nil {
		return err
	}
	if err := d.DrawVLine(x1, y1, y2); err != nil {
		return err
	}
	return d.DrawVLine(x2, y1, y2)
}

// DrawBuffer blits a column-byte bitmap at column x, page row page.
//
// buf holds w*h/8 bytes, one byte per 8-pixel vertical strip, page row by
// page row (the top band's w bytes first). h must be a multiple of 8 and
// buf must hold the full bitmap; both are caller bugs and return an error.
// The region is clipped to the display. Negative draw mode inverts the
// blitted bytes.
func (d *Dev) DrawBuffer(x, page, w, h int, buf []byte) error {
	if d.halted {
		return errors.New("ssd1306gfx: halted")
	}
	return d.drawBuffer(x, page, w, h, buf, false)
}

// DrawBitmap blits a column-byte bitmap at column x, page row page.
// It is DrawBuffer under the name kept for read-only (flash-resident)
// bitmap assets; Go draws no SRAM/ROM distinction.
func (d *Dev) DrawBitmap(x, page, w, h int, bitmap []byte) error {
	if d.halted {
		return errors.New("ssd1306gfx: halted")
	}
	return d.drawBuffer(x, page, w, h, bitmap, false)
}

// DrawBufferFast blits a column-byte bitmap at pixel position (x, y),
// snapping y down to its page row.
//
// Unlike DrawBuffer it streams the buffer bytes exactly as given: Negative
// draw mode is NOT applied. Use DrawBuffer when inverse video matters.
func (d *Dev) DrawBufferFast(x, y, w, h int, buf []byte) error {
	if d.halted {
		return errors.New("ssd1306gfx: halted")
	}
	return d.drawBuffer(x, y>>3, w, h, buf, true)
}

func (d *Dev) drawBuffer(x, page, w, h int, buf []byte, raw bool) error {
	if h%8 != 0 {
		return errors.New("ssd1306gfx: bitmap height must be a multiple of 8")
	}
	pages := h / 8
	if w < 0 || pages < 0 || len(buf) < w*pages {
		return errors.New("ssd1306gfx: short bitmap buffer")
	}

	// Clip against the display, keeping source indexing in step.
	srcX, srcPage := 0, 0
	if x < 0 {
		srcX = -x
		x = 0
	}
	if page < 0 {
		srcPage = -page
		page = 0
	}
	vw := w - srcX
	if x+vw > d.rect.Dx() {
		vw = d.rect.Dx() - x
	}
	vp := pages - srcPage
	if page+vp > d.pages {
		vp = d.pages - page
	}
	if vw <= 0 || vp <= 0 {
		return nil
	}

	data := d.scratch[:0]
	for p := 0; p < vp; p++ {
		row := buf[(srcPage+p)*w+srcX:]
		if raw {
			data = append(data, row[:vw]...)
		} else {
			for i := 0; i < vw; i++ {
				data = append(data, row[i]^d.invert)
			}
		}
	}
	d.scratch = data[:0]
	return d.writeRegion(x, page, vw, vp, data)
}

// ClearBlock erases a w by h pixel block at column x, page row page by
// writing an all-zero bitmap. h must be a multiple of 8. In Negative draw
// mode the block comes out lit, consistent with inverse video. The region
// is clipped to the display.
func (d *Dev) ClearBlock(x, page, w, h int) error {
	if d.halted {
		return errors.New("ssd1306gfx: halted")
	}
	if h%8 != 0 {
		return errors.New("ssd1306gfx: block height must be a multiple of 8")
	}
	return d.fillRegion(x, page, w, h/8, 0x00)
}

// FillScreen floods the whole display with a repeated column byte,
// honoring the draw mode.
func (d *Dev) FillScreen(pattern byte) error {
	if d.halted {
		return errors.New("ssd1306gfx: halted")
	}
	return d.fillRegion(0, 0, d.rect.Dx(), d.pages, pattern)
}

// Clear blanks the whole display. In Negative draw mode the display comes
// out fully lit.
func (d *Dev) Clear() error {
	return d.FillScreen(0x00)
}

// Draw renders src into the dst rectangle of the display, implementing
// display.Drawer. sp is the source point, as in draw.Draw.
//
// dst is clipped to the display and then widened vertically to whole page
// rows: partial pages cannot be written without replacing their bytes, so
// rows pulled in by the widening are completed with unlit pixels (source
// pixels outside dst read as unlit). Negative draw mode inverts the output
// like any buffer draw.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("ssd1306gfx: halted")
	}

	orig := dst.Min
	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}
	// Keep the source origin aligned with whatever clipping moved dst.Min.
	sp = sp.Add(dst.Min.Sub(orig))

	y0 := dst.Min.Y &^ 7
	y1 := (dst.Max.Y + 7) &^ 7
	w := dst.Dx()
	pages := (y1 - y0) / 8

	// Fast path: full-frame blit from a matching VerticalLSB.
	if img, ok := src.(*image1bit.VerticalLSB); ok {
		if dst == d.rect && sp == (image.Point{}) && img.Rect == d.rect {
			data := d.scratch[:0]
			for _, b := range img.Pix {
				data = append(data, b^d.invert)
			}
			d.scratch = data[:0]
			return d.writeRegion(0, 0, w, pages, data)
		}
	}

	bitAt := func(x, y int) bool {
		return image1bit.BitModel.Convert(src.At(x, y)) == image1bit.On
	}
	if img, ok := src.(*image1bit.VerticalLSB); ok {
		bitAt = func(x, y int) bool { return bool(img.BitAt(x, y)) }
	}

	data := d.scratch[:0]
	for p := 0; p < pages; p++ {
		for x := dst.Min.X; x < dst.Max.X; x++ {
			var b byte
			for bit := 0; bit < 8; bit++ {
				y := y0 + p*8 + bit
				if y < dst.Min.Y || y >= dst.Max.Y {
					continue
				}
				if bitAt(sp.X+x-dst.Min.X, sp.Y+y-dst.Min.Y) {
					b |= 1 << uint(bit)
				}
			}
			data = append(data, b^d.invert)
		}
	}
	d.scratch = data[:0]
	return d.writeRegion(dst.Min.X, y0>>3, w, pages, data)
}
