package ssd1306gfx

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"periph.io/x/devices/v3/ssd1306gfx/image1bit"
)

func TestSetPixel(t *testing.T) {
	dev, sim := testDev(t, 128, 64)

	if err := dev.SetPixel(10, 12); err != nil {
		t.Fatalf("SetPixel: %v", err)
	}
	// y=12 is bit 4 of page 1.
	if got := sim.PageByte(10, 1); got != 0x10 {
		t.Errorf("column byte = %#02x, want 0x10", got)
	}
	if !sim.Pixel(10, 12) {
		t.Error("pixel (10, 12) should be lit")
	}
}

func TestSetPixelDestructive(t *testing.T) {
	dev, sim := testDev(t, 128, 64)

	// Pre-light the whole column byte; a single-pixel write replaces it.
	if err := dev.PutColumn(10, 1, 0xFF); err != nil {
		t.Fatalf("PutColumn: %v", err)
	}
	if err := dev.SetPixel(10, 12); err != nil {
		t.Fatalf("SetPixel: %v", err)
	}
	if got := sim.PageByte(10, 1); got != 0x10 {
		t.Errorf("column byte = %#02x, want 0x10 (neighbors cleared)", got)
	}
}

func TestSetPixelOutOfRange(t *testing.T) {
	dev, sim := testDev(t, 128, 64)
	before := sim.DataBytes()

	coords := []struct{ x, y int }{
		{-1, 0}, {128, 0}, {0, -1}, {0, 64},
	}
	for _, c := range coords {
		if err := dev.SetPixel(c.x, c.y); err != nil {
			t.Errorf("SetPixel(%d, %d) = %v, want nil (silent no-op)", c.x, c.y, err)
		}
	}
	if got := sim.DataBytes(); got != before {
		t.Errorf("out-of-range SetPixel wrote %d data bytes", got-before)
	}
}

func TestSetPixelNegativeMode(t *testing.T) {
	dev, sim := testDev(t, 128, 64)

	dev.SetDrawMode(Negative)
	if err := dev.SetPixel(10, 12); err != nil {
		t.Fatalf("SetPixel: %v", err)
	}
	if got := sim.PageByte(10, 1); got != 0xEF {
		t.Errorf("column byte = %#02x, want 0xEF (inverted)", got)
	}
}

func TestDrawHLine(t *testing.T) {
	dev, sim := testDev(t, 128, 64)

	if err := dev.DrawHLine(5, 10, 20); err != nil {
		t.Fatalf("DrawHLine: %v", err)
	}
	// y=10 is bit 2 of page 1.
	for x := 5; x <= 20; x++ {
		if got := sim.PageByte(x, 1); got != 0x04 {
			t.Fatalf("column %d = %#02x, want 0x04", x, got)
		}
	}
	if got := sim.PageByte(4, 1); got != 0 {
		t.Errorf("column 4 = %#02x, want 0 (outside span)", got)
	}
	if got := sim.PageByte(21, 1); got != 0 {
		t.Errorf("column 21 = %#02x, want 0 (outside span)", got)
	}
}

func TestDrawHLineDirectionIndependent(t *testing.T) {
	devA, simA := testDev(t, 128, 64)
	devB, simB := testDev(t, 128, 64)

	if err := devA.DrawHLine(5, 10, 20); err != nil {
		t.Fatalf("DrawHLine: %v", err)
	}
	if err := devB.DrawHLine(20, 10, 5); err != nil {
		t.Fatalf("DrawHLine (reversed): %v", err)
	}

	a, b := simA.Snapshot(), simB.Snapshot()
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("reversed endpoints produced different RAM at byte %d: %#02x vs %#02x", i, a.Pix[i], b.Pix[i])
		}
	}
}

func TestDrawHLineClipping(t *testing.T) {
	dev, sim := testDev(t, 128, 64)

	// Spans both edges: clipped to 0..127.
	if err := dev.DrawHLine(-10, 0, 200); err != nil {
		t.Fatalf("DrawHLine: %v", err)
	}
	if got := sim.PageByte(0, 0); got != 0x01 {
		t.Errorf("column 0 = %#02x, want 0x01", got)
	}
	if got := sim.PageByte(127, 0); got != 0x01 {
		t.Errorf("column 127 = %#02x, want 0x01", got)
	}

	// Fully out of range: silent no-op.
	before := sim.DataBytes()
	if err := dev.DrawHLine(0, 100, 50); err != nil {
		t.Errorf("DrawHLine with y out of range = %v, want nil", err)
	}
	if err := dev.DrawHLine(200, 5, 300); err != nil {
		t.Errorf("DrawHLine right of display = %v, want nil", err)
	}
	if got := sim.DataBytes(); got != before {
		t.Errorf("out-of-range DrawHLine wrote %d data bytes", got-before)
	}
}

func TestDrawVLine(t *testing.T) {
	dev, sim := testDev(t, 128, 64)

	// Spans pages 0..2 with partial coverage at both ends.
	if err := dev.DrawVLine(3, 5, 18); err != nil {
		t.Fatalf("DrawVLine: %v", err)
	}
	if got := sim.PageByte(3, 0); got != 0xE0 {
		t.Errorf("page 0 = %#02x, want 0xE0 (rows 5..7)", got)
	}
	if got := sim.PageByte(3, 1); got != 0xFF {
		t.Errorf("page 1 = %#02x, want 0xFF (full)", got)
	}
	if got := sim.PageByte(3, 2); got != 0x07 {
		t.Errorf("page 2 = %#02x, want 0x07 (rows 16..18)", got)
	}
	if got := sim.PageByte(3, 3); got != 0 {
		t.Errorf("page 3 = %#02x, want 0 (outside span)", got)
	}
}

func TestDrawVLineDirectionIndependent(t *testing.T) {
	devA, simA := testDev(t, 128, 64)
	devB, simB := testDev(t, 128, 64)

	if err := devA.DrawVLine(7, 5, 18); err != nil {
		t.Fatalf("DrawVLine: %v", err)
	}
	if err := devB.DrawVLine(7, 18, 5); err != nil {
		t.Fatalf("DrawVLine (reversed): %v", err)
	}

	a, b := simA.Snapshot(), simB.Snapshot()
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("reversed endpoints produced different RAM at byte %d", i)
		}
	}
}

func TestDrawVLineSinglePage(t *testing.T) {
	dev, sim := testDev(t, 128, 64)

	// Both masks apply to the same byte.
	if err := dev.DrawVLine(0, 10, 13); err != nil {
		t.Fatalf("DrawVLine: %v", err)
	}
	if got := sim.PageByte(0, 1); got != 0x3C {
		t.Errorf("page 1 = %#02x, want 0x3C (rows 10..13)", got)
	}
}

func TestDrawLineAxisAligned(t *testing.T) {
	dev, sim := testDev(t, 128, 64)

	// Horizontal and vertical lines degrade to the span primitives.
	if err := dev.DrawLine(5, 10, 20, 10); err != nil {
		t.Fatalf("DrawLine horizontal: %v", err)
	}
	if got := sim.PageByte(12, 1); got != 0x04 {
		t.Errorf("horizontal line byte = %#02x, want 0x04", got)
	}

	if err := dev.DrawLine(40, 8, 40, 15); err != nil {
		t.Fatalf("DrawLine vertical: %v", err)
	}
	if got := sim.PageByte(40, 1); got != 0xFF {
		t.Errorf("vertical line byte = %#02x, want 0xFF", got)
	}
}

func TestDrawLineDiagonal(t *testing.T) {
	dev, sim := testDev(t, 128, 64)

	if err := dev.DrawLine(0, 0, 7, 7); err != nil {
		t.Fatalf("DrawLine: %v", err)
	}
	for i := 0; i <= 7; i++ {
		if !sim.Pixel(i, i) {
			t.Errorf("pixel (%d, %d) should be lit", i, i)
		}
	}
}

func TestDrawLineEndpointsBothDirections(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
	}{
		{"shallow", 3, 10, 90, 25},
		{"steep", 20, 2, 35, 60},
		{"reverse shallow", 90, 25, 3, 10},
		{"reverse steep", 35, 60, 20, 2},
		{"down-left", 100, 5, 10, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, sim := testDev(t, 128, 64)
			if err := dev.DrawLine(tt.x1, tt.y1, tt.x2, tt.y2); err != nil {
				t.Fatalf("DrawLine: %v", err)
			}
			if !sim.Pixel(tt.x1, tt.y1) {
				t.Errorf("start endpoint (%d, %d) not lit", tt.x1, tt.y1)
			}
			if !sim.Pixel(tt.x2, tt.y2) {
				t.Errorf("end endpoint (%d, %d) not lit", tt.x2, tt.y2)
			}
		})
	}
}

func TestDrawRect(t *testing.T) {
	dev, sim := testDev(t, 128, 64)

	if err := dev.DrawRect(10, 8, 30, 23); err != nil {
		t.Fatalf("DrawRect: %v", err)
	}

	// Corners.
	for _, p := range []struct{ x, y int }{{10, 8}, {30, 8}, {10, 23}, {30, 23}} {
		if !sim.Pixel(p.x, p.y) {
			t.Errorf("corner (%d, %d) not lit", p.x, p.y)
		}
	}
	// Edge middles.
	if !sim.Pixel(20, 8) || !sim.Pixel(20, 23) {
		t.Error("horizontal edges incomplete")
	}
	if !sim.Pixel(10, 15) || !sim.Pixel(30, 15) {
		t.Error("vertical edges incomplete")
	}
	// Interior stays dark.
	if sim.Pixel(20, 15) {
		t.Error("interior pixel lit")
	}
}

func TestDrawRectNormalizesCorners(t *testing.T) {
	devA, simA := testDev(t, 128, 64)
	devB, simB := testDev(t, 128, 64)

	if err := devA.DrawRect(10, 8, 30, 23); err != nil {
		t.Fatalf("DrawRect: %v", err)
	}
	if err := devB.DrawRect(30, 23, 10, 8); err != nil {
		t.Fatalf("DrawRect (reversed): %v", err)
	}

	a, b := simA.Snapshot(), simB.Snapshot()
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("reversed corners produced different RAM at byte %d", i)
		}
	}
}

func TestDrawBuffer(t *testing.T) {
	dev, sim := testDev(t, 128, 64)

	// 4 columns by 16 rows: two page bands of 4 bytes.
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	if err := dev.DrawBuffer(10, 2, 4, 16, buf); err != nil {
		t.Fatalf("DrawBuffer: %v", err)
	}

	for i := 0; i < 4; i++ {
		if got := sim.PageByte(10+i, 2); got != buf[i] {
			t.Errorf("page 2 column %d = %#02x, want %#02x", 10+i, got, buf[i])
		}
		if got := sim.PageByte(10+i, 3); got != buf[4+i] {
			t.Errorf("page 3 column %d = %#02x, want %#02x", 10+i, got, buf[4+i])
		}
	}
}

func TestDrawBufferErrors(t *testing.T) {
	dev, _ := testDev(t, 128, 64)

	tests := []struct {
		name    string
		op      func() error
		wantErr string
	}{
		{
			"ragged height",
			func() error { return dev.DrawBuffer(0, 0, 4, 12, make([]byte, 8)) },
			"ssd1306gfx: bitmap height must be a multiple of 8",
		},
		{
			"short buffer",
			func() error { return dev.DrawBuffer(0, 0, 4, 16, make([]byte, 7)) },
			"ssd1306gfx: short bitmap buffer",
		},
		{
			"short bitmap",
			func() error { return dev.DrawBitmap(0, 0, 4, 16, make([]byte, 7)) },
			"ssd1306gfx: short bitmap buffer",
		},
		{
			"ragged clear",
			func() error { return dev.ClearBlock(0, 0, 4, 12) },
			"ssd1306gfx: block height must be a multiple of 8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op()
			if err == nil {
				t.Fatal("expected error but didn't get one")
			}
			if err.Error() != tt.wantErr {
				t.Errorf("error = %q, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestDrawBufferClipping(t *testing.T) {
	dev, sim := testDev(t, 128, 64)

	// Left clip: the first two source columns fall off the display.
	if err := dev.DrawBuffer(-2, 0, 4, 8, []byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("DrawBuffer: %v", err)
	}
	if got := sim.PageByte(0, 0); got != 3 {
		t.Errorf("column 0 = %#02x, want 0x03 (source column 2)", got)
	}
	if got := sim.PageByte(1, 0); got != 4 {
		t.Errorf("column 1 = %#02x, want 0x04 (source column 3)", got)
	}

	// Right clip: only the first two columns fit.
	if err := dev.DrawBuffer(126, 1, 4, 8, []byte{5, 6, 7, 8}); err != nil {
		t.Fatalf("DrawBuffer: %v", err)
	}
	if got := sim.PageByte(126, 1); got != 5 {
		t.Errorf("column 126 = %#02x, want 0x05", got)
	}
	if got := sim.PageByte(127, 1); got != 6 {
		t.Errorf("column 127 = %#02x, want 0x06", got)
	}

	// Fully off-display draws write nothing.
	before := sim.DataBytes()
	if err := dev.DrawBuffer(128, 0, 4, 8, []byte{1, 2, 3, 4}); err != nil {
		t.Errorf("DrawBuffer off-display = %v, want nil", err)
	}
	if err := dev.DrawBuffer(0, 8, 4, 8, []byte{1, 2, 3, 4}); err != nil {
		t.Errorf("DrawBuffer below display = %v, want nil", err)
	}
	if got := sim.DataBytes(); got != before {
		t.Errorf("off-display DrawBuffer wrote %d data bytes", got-before)
	}
}

func TestDrawBufferNegativeMode(t *testing.T) {
	dev, sim := testDev(t, 128, 64)

	dev.SetDrawMode(Negative)
	if err := dev.DrawBuffer(0, 0, 2, 8, []byte{0x0F, 0xF0}); err != nil {
		t.Fatalf("DrawBuffer: %v", err)
	}
	if got := sim.PageByte(0, 0); got != 0xF0 {
		t.Errorf("column 0 = %#02x, want 0xF0 (inverted)", got)
	}
	if got := sim.PageByte(1, 0); got != 0x0F {
		t.Errorf("column 1 = %#02x, want 0x0F (inverted)", got)
	}
}

func TestDrawBufferFastIgnoresDrawMode(t *testing.T) {
	dev, sim := testDev(t, 128, 64)

	dev.SetDrawMode(Negative)
	if err := dev.DrawBufferFast(0, 16, 2, 8, []byte{0x0F, 0xF0}); err != nil {
		t.Fatalf("DrawBufferFast: %v", err)
	}
	// Bytes stream through verbatim despite Negative mode.
	if got := sim.PageByte(0, 2); got != 0x0F {
		t.Errorf("column 0 = %#02x, want 0x0F (raw)", got)
	}
	if got := sim.PageByte(1, 2); got != 0xF0 {
		t.Errorf("column 1 = %#02x, want 0xF0 (raw)", got)
	}
}

func TestDrawBufferFastSnapsY(t *testing.T) {
	dev, sim := testDev(t, 128, 64)

	// y=19 is inside page 2; the blit lands on the page boundary.
	if err := dev.DrawBufferFast(5, 19, 1, 8, []byte{0xFF}); err != nil {
		t.Fatalf("DrawBufferFast: %v", err)
	}
	if got := sim.PageByte(5, 2); got != 0xFF {
		t.Errorf("page 2 = %#02x, want 0xFF", got)
	}
	if got := sim.PageByte(5, 3); got != 0 {
		t.Errorf("page 3 = %#02x, want 0 (no straddle)", got)
	}
}

func TestClearBlock(t *testing.T) {
	dev, sim := testDev(t, 128, 64)

	if err := dev.FillScreen(0xFF); err != nil {
		t.Fatalf("FillScreen: %v", err)
	}
	if err := dev.ClearBlock(10, 2, 4, 16); err != nil {
		t.Fatalf("ClearBlock: %v", err)
	}

	for i := 0; i < 4; i++ {
		if got := sim.PageByte(10+i, 2); got != 0 {
			t.Errorf("page 2 column %d = %#02x, want 0", 10+i, got)
		}
		if got := sim.PageByte(10+i, 3); got != 0 {
			t.Errorf("page 3 column %d = %#02x, want 0", 10+i, got)
		}
	}
	// Outside the block stays lit.
	if got := sim.PageByte(9, 2); got != 0xFF {
		t.Errorf("column 9 = %#02x, want 0xFF (outside block)", got)
	}
	if got := sim.PageByte(14, 2); got != 0xFF {
		t.Errorf("column 14 = %#02x, want 0xFF (outside block)", got)
	}
	if got := sim.PageByte(10, 4); got != 0xFF {
		t.Errorf("page 4 = %#02x, want 0xFF (outside block)", got)
	}
}

func TestClearBlockUndoesDrawBuffer(t *testing.T) {
	dev, sim := testDev(t, 128, 64)

	// Clearing the exact region of an earlier draw zeroes it no matter what
	// the buffer held.
	buf := []byte{0x12, 0xF7, 0x08, 0xC3, 0x5A, 0x81, 0x3E, 0x6D}
	if err := dev.DrawBuffer(40, 3, 4, 16, buf); err != nil {
		t.Fatalf("DrawBuffer: %v", err)
	}
	if err := dev.ClearBlock(40, 3, 4, 16); err != nil {
		t.Fatalf("ClearBlock: %v", err)
	}
	for page := 3; page <= 4; page++ {
		for x := 40; x < 44; x++ {
			if got := sim.PageByte(x, page); got != 0 {
				t.Errorf("column %d page %d = %#02x, want 0", x, page, got)
			}
		}
	}
}

func TestClearBlockNegativeMode(t *testing.T) {
	dev, sim := testDev(t, 128, 64)

	dev.SetDrawMode(Negative)
	if err := dev.ClearBlock(0, 0, 2, 8); err != nil {
		t.Fatalf("ClearBlock: %v", err)
	}
	// Inverse video: an erased block comes out lit.
	if got := sim.PageByte(0, 0); got != 0xFF {
		t.Errorf("column 0 = %#02x, want 0xFF", got)
	}
}

func TestFillScreenAndClear(t *testing.T) {
	dev, sim := testDev(t, 128, 64)

	if err := dev.FillScreen(0xAA); err != nil {
		t.Fatalf("FillScreen: %v", err)
	}
	for page := 0; page < 8; page++ {
		for x := 0; x < 128; x++ {
			if got := sim.PageByte(x, page); got != 0xAA {
				t.Fatalf("column %d page %d = %#02x, want 0xAA", x, page, got)
			}
		}
	}

	if err := dev.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	for page := 0; page < 8; page++ {
		for x := 0; x < 128; x++ {
			if got := sim.PageByte(x, page); got != 0 {
				t.Fatalf("column %d page %d = %#02x, want 0 after Clear", x, page, got)
			}
		}
	}
}

func TestClearNegativeMode(t *testing.T) {
	dev, sim := testDev(t, 128, 64)

	dev.SetDrawMode(Negative)
	if err := dev.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got := sim.PageByte(64, 4); got != 0xFF {
		t.Errorf("column byte = %#02x, want 0xFF (inverse video clear)", got)
	}
}

func TestDrawFullFrame(t *testing.T) {
	dev, sim := testDev(t, 128, 64)

	img := image1bit.NewVerticalLSB(dev.Bounds())
	img.SetBit(0, 0, image1bit.On)
	img.SetBit(127, 63, image1bit.On)
	img.SetBit(50, 33, image1bit.On)

	if err := dev.Draw(dev.Bounds(), img, image.Point{}); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	got := sim.Snapshot()
	for i := range img.Pix {
		if got.Pix[i] != img.Pix[i] {
			t.Fatalf("RAM differs from source at byte %d: %#02x vs %#02x", i, got.Pix[i], img.Pix[i])
		}
	}
}

func TestDrawPartialWidensToPages(t *testing.T) {
	dev, sim := testDev(t, 128, 64)

	// Pre-light the destination page; the page-widened draw replaces whole
	// bytes, clearing rows the rectangle does not cover.
	if err := dev.FillScreen(0xFF); err != nil {
		t.Fatalf("FillScreen: %v", err)
	}

	src := image1bit.NewVerticalLSB(image.Rect(0, 0, 10, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 10; x++ {
			src.SetBit(x, y, image1bit.On)
		}
	}

	if err := dev.Draw(image.Rect(10, 10, 20, 14), src, image.Point{}); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	// Rows 10..13 of page 1 are lit, rows 8..9 and 14..15 come out unlit.
	for x := 10; x < 20; x++ {
		if got := sim.PageByte(x, 1); got != 0x3C {
			t.Errorf("column %d = %#02x, want 0x3C", x, got)
		}
	}
	// Columns outside the rectangle keep their content.
	if got := sim.PageByte(9, 1); got != 0xFF {
		t.Errorf("column 9 = %#02x, want 0xFF (untouched)", got)
	}
	if got := sim.PageByte(20, 1); got != 0xFF {
		t.Errorf("column 20 = %#02x, want 0xFF (untouched)", got)
	}
}

func TestDrawSourcePoint(t *testing.T) {
	dev, sim := testDev(t, 128, 64)

	// Source has a single lit pixel at (5, 9); blitting with sp=(4, 8)
	// maps it to destination (1, 1) within the rectangle at (20, 16).
	src := image1bit.NewVerticalLSB(image.Rect(0, 0, 16, 16))
	src.SetBit(5, 9, image1bit.On)

	if err := dev.Draw(image.Rect(20, 16, 28, 24), src, image.Pt(4, 8)); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if !sim.Pixel(21, 17) {
		t.Error("pixel (21, 17) should be lit")
	}
	if sim.Pixel(25, 17) {
		t.Error("pixel (25, 17) should not be lit")
	}
}

func TestDrawFromStdlibImage(t *testing.T) {
	dev, sim := testDev(t, 128, 64)

	// Anything satisfying image.Image converts through the bit model.
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	draw.Draw(src, src.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	if err := dev.Draw(image.Rect(0, 0, 8, 8), src, image.Point{}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if got := sim.PageByte(0, 0); got != 0xFF {
		t.Errorf("column 0 = %#02x, want 0xFF", got)
	}
	if got := sim.PageByte(7, 0); got != 0xFF {
		t.Errorf("column 7 = %#02x, want 0xFF", got)
	}
	if got := sim.PageByte(8, 0); got != 0 {
		t.Errorf("column 8 = %#02x, want 0 (outside rect)", got)
	}
}

func TestDrawClippedToDisplay(t *testing.T) {
	dev, sim := testDev(t, 128, 64)

	src := image1bit.NewVerticalLSB(image.Rect(0, 0, 16, 8))
	for x := 0; x < 16; x++ {
		src.SetBit(x, 0, image1bit.On)
	}

	// The rectangle hangs off the right edge; the overhang is dropped and
	// the source point stays aligned with the kept part.
	if err := dev.Draw(image.Rect(120, 0, 136, 8), src, image.Point{}); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	for x := 120; x < 128; x++ {
		if !sim.Pixel(x, 0) {
			t.Errorf("pixel (%d, 0) should be lit", x)
		}
	}
}

func TestDrawEmptyIntersection(t *testing.T) {
	dev, sim := testDev(t, 128, 64)
	before := sim.DataBytes()

	src := image1bit.NewVerticalLSB(image.Rect(0, 0, 8, 8))
	if err := dev.Draw(image.Rect(200, 0, 208, 8), src, image.Point{}); err != nil {
		t.Errorf("Draw outside display = %v, want nil", err)
	}
	if got := sim.DataBytes(); got != before {
		t.Errorf("empty draw wrote %d data bytes", got-before)
	}
}
