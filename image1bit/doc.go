// Package image1bit provides a 1-bit monochrome image format for the SSD1306 display controller.
//
// The SSD1306 OLED controller stores one bit per pixel. Its GDDRAM is organized
// in pages 8 pixels tall: each byte covers 8 vertically stacked pixels of a
// single column, with bit 0 (LSB) as the topmost pixel and bit 7 as the
// bottommost.
//
// Memory layout example for one column spanning two pages:
//
//	Pixel rows:  0..7        8..15
//	Lit rows:    0, 3        9
//	Bytes:       0x09        0x02
//	             (0x09 = bits 0 and 3 set)
//	             (0x02 = bit 1 set, i.e. row 8+1)
//
// This package provides:
//
// - Bit: A color type representing a single monochrome pixel (On/Off)
// - BitModel: A color model for converting standard Go colors to Bit
// - VerticalLSB: An image.Image implementation matching the SSD1306 page layout
//
// Example usage:
//
//	// Create a 128x64 image
//	img := image1bit.NewVerticalLSB(image.Rect(0, 0, 128, 64))
//
//	// Light a pixel
//	img.SetBit(10, 20, image1bit.On)
//
//	// Read it back
//	b := img.BitAt(10, 20)
//	println(b.String()) // Output: On
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
package image1bit
