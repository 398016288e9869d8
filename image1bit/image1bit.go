// Package image1bit provides a 1-bit monochrome image format optimized for the SSD1306 display.
//
// The SSD1306 stores pixels in vertical byte packing where each byte contains 8 pixels.
// Bit 0 (LSB) represents the topmost pixel of the byte, bit 7 the bottommost.
// This package provides the Bit color type and VerticalLSB image implementation.
package image1bit

import (
	"image"
	"image/color"
)

// Bit represents a 1-bit monochrome color (pixel lit or unlit).
type Bit bool

// Lit and unlit pixel values.
const (
	On  = Bit(true)
	Off = Bit(false)
)

// RGBA converts the Bit color to standard RGBA.
// On maps to full white, Off to full black.
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Standard grayscale conversion: 0.299R + 0.587G + 0.114B
	// RGBA returns 16-bit values; anything at or above mid-gray is lit.
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// VerticalLSB is a 1-bit monochrome image where pixels are stored in vertical byte packing.
// Each byte contains 8 vertically stacked pixels: bit 0 = top pixel, bit 7 = bottom pixel.
// Rows of bytes ("pages") advance down the image 8 pixels at a time.
type VerticalLSB struct {
	Pix    []byte          // Pixel data (8 pixels per byte, one byte per column per page)
	Stride int             // Bytes per page (equals the width in pixels)
	Rect   image.Rectangle // Image bounds
}

// NewVerticalLSB creates a new VerticalLSB image with the specified bounds.
// The height must be a multiple of 8 (since 8 pixels per byte).
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &VerticalLSB{Rect: r}
	}
	if h%8 != 0 {
		panic("image1bit: height must be a multiple of 8")
	}

	stride := w
	pixelCount := stride * (h / 8)
	return &VerticalLSB{
		Pix:    make([]byte, pixelCount),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the image bounds.
func (p *VerticalLSB) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *VerticalLSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit color of the pixel at (x, y).
func (p *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.pixOffset(x, y)
	return Bit(p.Pix[offset]&mask != 0)
}

// Set sets the color of the pixel at (x, y).
func (p *VerticalLSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the Bit color of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *VerticalLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
// Memory layout: each byte covers 8 vertically adjacent pixels of one column.
// Byte 0 is the top-left page of column 0; bytes advance across the row of
// pages, then down to the next page.
func (p *VerticalLSB) pixOffset(x, y int) (offset int, mask byte) {
	ry := y - p.Rect.Min.Y
	offset = ry/8*p.Stride + (x - p.Rect.Min.X)
	mask = 1 << uint(ry&7)
	return
}
