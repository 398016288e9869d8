// Package ssd1306gfx controls a SSD1306 OLED display via I2C or SPI.
//
// The SSD1306 is a 1-bit monochrome OLED controller supporting up to 128x64
// pixels. Common display resolutions are 128x64, 128x32 and 96x16.
//
// See the examples for how to use this package.
package ssd1306gfx

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"periph.io/x/devices/v3/ssd1306gfx/font"
	"periph.io/x/devices/v3/ssd1306gfx/image1bit"
)

// DrawMode selects how draw operations compose outgoing bytes.
//
// The mode applies to every byte the draw path sends until changed: in
// Negative mode each byte is bitwise-inverted before transmission, giving
// inverse-video rendering. DrawBufferFast is the one exception; it always
// streams bytes unmodified.
type DrawMode uint8

const (
	// Positive sends draw bytes unmodified (lit pixels on dark background).
	Positive DrawMode = iota
	// Negative inverts every draw byte (dark pixels on lit background).
	Negative
)

func (m DrawMode) String() string {
	switch m {
	case Positive:
		return "Positive"
	case Negative:
		return "Negative"
	default:
		return fmt.Sprintf("DrawMode(%d)", uint8(m))
	}
}

// Opts is the configuration for the SSD1306 display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 128, must be ≤128)
	H int // Height (default: 64, must be a multiple of 8 and ≤64)

	// Rotation and mirroring
	Rotated       bool // 180° rotation
	Sequential    bool // Sequential COM pin configuration (e.g. 128x32 panels)
	SwapTopBottom bool // Swap top/bottom display halves

	// I2C address (NewI2C only). Defaults to 0x3C; boards strapped for the
	// alternate address use 0x3D.
	Addr uint16

	// Optional hardware reset pin
	RST gpio.PinIO // Reset pin (optional, nil if not used)
}

// Dev is the device handle for the SSD1306 display.
//
// All drawing goes straight to the display's GDDRAM: there is no backing
// framebuffer and the controller offers no readback, so every write replaces
// whole 8-pixel column bytes. Operations that touch part of a byte clobber
// the other pixels sharing it; the per-operation docs call this out.
//
// Dev is not safe for concurrent use. Wrap logical drawing sequences (such
// as a full sprite move) in external locking if multiple goroutines share
// one device.
type Dev struct {
	// Communication
	c   conn.Conn   // I2C or SPI connection
	dc  gpio.PinOut // Data/Command pin (SPI only, nil for I2C)
	rst gpio.PinIO  // Reset pin (optional)

	// Display geometry
	rect         image.Rectangle
	pages        int // Height in 8-pixel page rows
	columnOffset int // For centering on the controller's 128-column RAM

	// Draw state
	mode   DrawMode
	invert byte // 0x00 in Positive mode, 0xFF in Negative

	// Text state
	font             *font.Fixed
	cursorX, cursorY int // Implicit cursor for Write/WriteByte

	// Column cursor for SetPos/WriteColumn streams
	posX    int // Window start column, where the hardware cursor wraps to
	curX    int
	curPage int

	// Scratch buffers reused across draws
	scratch  []byte
	glyphBuf []byte
	styleBuf []byte

	// State
	halted bool
}

// NewI2C creates a new SSD1306 device connected via I2C.
//
// The address defaults to 0x3C; set opts.Addr to 0x3D for boards strapped
// for the alternate address.
//
// opts can be nil to use defaults (128x64 display).
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{W: 128, H: 64}
	}

	addr := opts.Addr
	if addr == 0 {
		addr = 0x3C
	}
	if addr != 0x3C && addr != 0x3D {
		return nil, errors.New("ssd1306gfx: I2C address must be 0x3C or 0x3D")
	}

	return newDev(&i2c.Dev{Bus: b, Addr: addr}, nil, opts)
}

// NewSPI creates a new SSD1306 device connected via SPI.
//
// The SPI port is configured for 10MHz, Mode0 (CPOL=0, CPHA=0), 8-bit
// transfers. The dc (Data/Command) GPIO pin must be provided and configured
// as an output; 3-wire SPI mode is not supported.
//
// opts can be nil to use defaults (128x64 display).
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{W: 128, H: 64}
	}
	if dc == nil {
		return nil, errors.New("ssd1306gfx: D/C pin is required (3-wire SPI mode is not supported)")
	}

	// SSD1306 supports Mode0 (CPOL=0, CPHA=0); 10MHz is the datasheet maximum.
	c, err := p.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	return newDev(c, dc, opts)
}

// newDev validates opts and initializes the display over an established
// connection.
func newDev(c conn.Conn, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts.W <= 0 || opts.W > 128 {
		return nil, errors.New("ssd1306gfx: width must be between 1 and 128")
	}
	if opts.H <= 0 || opts.H%8 != 0 || opts.H > 64 {
		return nil, errors.New("ssd1306gfx: height must be a multiple of 8 between 8 and 64")
	}

	d := &Dev{
		c:            c,
		dc:           dc,
		rst:          opts.RST,
		rect:         image.Rect(0, 0, opts.W, opts.H),
		pages:        opts.H / 8,
		columnOffset: (128 - opts.W) / 2,
		scratch:      make([]byte, 0, opts.W*opts.H/8),
	}

	// Initialize the display
	if err := d.init(opts); err != nil {
		return nil, err
	}

	return d, nil
}

// init sends the initialization sequence to the display.
func (d *Dev) init(opts *Opts) error {
	// Hardware reset sequence (if RST pin is provided)
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("ssd1306gfx: failed to pull RST low: %w", err)
		}
		time.Sleep(10 * time.Millisecond)

		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("ssd1306gfx: failed to pull RST high: %w", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	// Remap settings: adjust for rotation and COM wiring
	segRemap, comScan := byte(0xA1), byte(0xC8)
	if opts.Rotated {
		segRemap = 0xA0
		comScan = 0xC0
	}
	comPins := byte(0x02)
	if !opts.Sequential {
		comPins |= 0x10
	}
	if opts.SwapTopBottom {
		comPins |= 0x20
	}

	cmds := []byte{
		0xAE,       // Display OFF
		0xD5, 0x80, // Clock divider and oscillator frequency
		0xA8, byte(opts.H - 1), // MUX ratio
		0xD3, 0x00, // Display offset
		0x40,       // Start line 0
		0x8D, 0x14, // Enable internal charge pump
		0x20, 0x00, // Horizontal memory addressing mode
		segRemap,      // Segment remap
		comScan,       // COM scan direction
		0xDA, comPins, // COM pins hardware configuration
		0x81, 0xFF, // Contrast (max)
		0xD9, 0xF1, // Pre-charge period (charge pump on)
		0xDB, 0x40, // VCOMH deselect level
		0xA4, // Resume display from RAM content
		0xA6, // Normal display mode
		0x2E, // Deactivate scroll
	}

	if err := d.sendCommands(cmds); err != nil {
		return err
	}

	// Clear display RAM
	if err := d.clearRAM(); err != nil {
		return err
	}

	// Turn display ON
	return d.sendCommand(0xAF)
}

// clearRAM clears all pixels in the display RAM.
func (d *Dev) clearRAM() error {
	return d.fillRegion(0, 0, d.rect.Dx(), d.pages, 0x00)
}

// sendCommand sends a single command byte.
func (d *Dev) sendCommand(cmd byte) error {
	return d.sendCommands([]byte{cmd})
}

// sendCommands sends a slice of command bytes.
func (d *Dev) sendCommands(cmds []byte) error {
	if d.dc == nil {
		// I2C framing: control byte 0x00 introduces a command stream.
		return d.c.Tx(append([]byte{0x00}, cmds...), nil)
	}
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	return d.c.Tx(cmds, nil)
}

// sendData sends a slice of GDDRAM data bytes.
func (d *Dev) sendData(data []byte) error {
	if d.dc == nil {
		// I2C framing: control byte 0x40 introduces a data stream.
		return d.c.Tx(append([]byte{0x40}, data...), nil)
	}
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.c.Tx(data, nil)
}

// writeRegion streams column bytes into a page-aligned addressing window.
//
// The window spans w columns starting at x and pages page rows starting at
// page. data is consumed in horizontal addressing order: w bytes for the
// first page row, then w for the next.
func (d *Dev) writeRegion(x, page, w, pages int, data []byte) error {
	cmds := []byte{
		0x21, byte(x + d.columnOffset), byte(x + w - 1 + d.columnOffset), // Column address window
		0x22, byte(page), byte(page + pages - 1), // Page address window
	}
	if err := d.sendCommands(cmds); err != nil {
		return err
	}
	return d.sendData(data)
}

// fillRegion floods a page-aligned region with a repeated column byte,
// honoring the draw mode.
func (d *Dev) fillRegion(x, page, w, pages int, pattern byte) error {
	x, page, w, pages = d.clipRegion(x, page, w, pages)
	if w <= 0 || pages <= 0 {
		return nil
	}
	b := pattern ^ d.invert
	data := d.scratch[:0]
	for i := 0; i < w*pages; i++ {
		data = append(data, b)
	}
	d.scratch = data[:0]
	return d.writeRegion(x, page, w, pages, data)
}

// clipRegion clamps a column/page region to the display, preserving the
// addressed origin.
func (d *Dev) clipRegion(x, page, w, pages int) (int, int, int, int) {
	if x < 0 {
		w += x
		x = 0
	}
	if page < 0 {
		pages += page
		page = 0
	}
	if x+w > d.rect.Dx() {
		w = d.rect.Dx() - x
	}
	if page+pages > d.pages {
		pages = d.pages - page
	}
	return x, page, w, pages
}

// SetDrawMode selects positive or negative video for subsequent draw
// operations. The mode is latched on the device handle, not the hardware:
// it alters bytes as they are sent and has no effect on pixels already on
// screen (see Invert for the hardware-level display inversion).
func (d *Dev) SetDrawMode(m DrawMode) {
	d.mode = m
	if m == Negative {
		d.invert = 0xFF
	} else {
		d.invert = 0x00
	}
}

// DrawMode returns the current draw mode.
func (d *Dev) DrawMode() DrawMode {
	return d.mode
}

// SetPos positions the column cursor at column x of page row page.
// Subsequent WriteColumn calls write there and auto-advance one column at a
// time, wrapping back to x at the right edge of the display.
//
// Out-of-range coordinates are clamped to the display.
func (d *Dev) SetPos(x, page int) error {
	if d.halted {
		return errors.New("ssd1306gfx: halted")
	}
	if x < 0 {
		x = 0
	} else if x >= d.rect.Dx() {
		x = d.rect.Dx() - 1
	}
	if page < 0 {
		page = 0
	} else if page >= d.pages {
		page = d.pages - 1
	}
	d.posX, d.curX, d.curPage = x, x, page

	cmds := []byte{
		0x21, byte(x + d.columnOffset), byte(d.rect.Dx() - 1 + d.columnOffset), // Columns x..width-1
		0x22, byte(page), byte(page), // Single page row
	}
	return d.sendCommands(cmds)
}

// WriteColumn writes one byte of 8 vertically stacked pixels (bit 0 = top)
// at the column cursor, then advances the cursor. The byte replaces the
// whole column of the page row; in Negative mode it is inverted before
// transmission.
func (d *Dev) WriteColumn(pixels byte) error {
	if d.halted {
		return errors.New("ssd1306gfx: halted")
	}
	if err := d.sendData([]byte{pixels ^ d.invert}); err != nil {
		return err
	}
	d.curX++
	if d.curX >= d.rect.Dx() {
		// The hardware window wraps back to the start column.
		d.curX = d.posX
	}
	return nil
}

// PutColumn writes one byte of 8 vertically stacked pixels at column x of
// page row page, without disturbing the column cursor. Out-of-range
// coordinates are a no-op.
func (d *Dev) PutColumn(x, page int, pixels byte) error {
	if d.halted {
		return errors.New("ssd1306gfx: halted")
	}
	if x < 0 || x >= d.rect.Dx() || page < 0 || page >= d.pages {
		return nil
	}
	return d.writeRegion(x, page, 1, 1, []byte{pixels ^ d.invert})
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return errors.New("ssd1306gfx: halted")
	}
	return d.sendCommands([]byte{0x81, contrast})
}

// Invert inverts the hardware display output (lit becomes unlit and vice
// versa) without touching GDDRAM. Unlike Negative draw mode, this flips
// pixels already on screen.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errors.New("ssd1306gfx: halted")
	}
	mode := byte(0xA6) // Normal display
	if invert {
		mode = 0xA7 // Inverted display
	}
	return d.sendCommand(mode)
}

// Halt powers off the display.
// After calling Halt, the display will not respond to further commands
// until the device is re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	return d.sendCommand(0xAE) // Display OFF
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306gfx.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

// ScrollSpeed defines the horizontal scroll frame interval.
type ScrollSpeed byte

// Scroll frame intervals (in display refresh frames between shifts).
const (
	Speed2Frames   ScrollSpeed = 0x07
	Speed3Frames   ScrollSpeed = 0x04
	Speed4Frames   ScrollSpeed = 0x05
	Speed5Frames   ScrollSpeed = 0x00
	Speed25Frames  ScrollSpeed = 0x06
	Speed64Frames  ScrollSpeed = 0x01
	Speed128Frames ScrollSpeed = 0x02
	Speed256Frames ScrollSpeed = 0x03
)

// ScrollHorizontal starts hardware horizontal scrolling of the page rows
// startPage..endPage (inclusive). If right is true, content scrolls right;
// otherwise left. Drawing into the scrolled region while scrolling is active
// produces undefined output; call StopScroll first.
func (d *Dev) ScrollHorizontal(startPage, endPage byte, speed ScrollSpeed, right bool) error {
	if d.halted {
		return errors.New("ssd1306gfx: halted")
	}

	if int(startPage) >= d.pages || int(endPage) >= d.pages || startPage > endPage {
		return errors.New("ssd1306gfx: scroll page out of range")
	}

	// Select scroll direction command
	scrollCmd := byte(0x27) // Left
	if right {
		scrollCmd = 0x26 // Right
	}

	// Send scroll setup command
	return d.sendCommands([]byte{
		scrollCmd,
		0x00,        // Dummy byte (always 0x00)
		startPage,   // Start page
		byte(speed), // Scroll frame interval
		endPage,     // End page
		0x00, 0xFF,  // Dummy bytes
		0x2F, // Activate scroll
	})
}

// StopScroll stops all scrolling and resets the display to normal operation.
func (d *Dev) StopScroll() error {
	if d.halted {
		return errors.New("ssd1306gfx: halted")
	}
	return d.sendCommand(0x2E) // Deactivate scroll
}
