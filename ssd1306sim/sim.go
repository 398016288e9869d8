// Package ssd1306sim emulates an SSD1306 OLED controller for tests and
// demos.
//
// Device implements i2c.Bus: it decodes the command/data streams a driver
// sends (control byte 0x00 or 0x40, addressing windows, GDDRAM writes) into
// an in-memory copy of the controller's 128x64-bit graphics RAM. Unlike the
// real chip it can be read back, so tests can assert on exact page bytes,
// and Terminal can render it into a terminal window.
package ssd1306sim

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"periph.io/x/conn/v3/physic"

	"periph.io/x/devices/v3/ssd1306gfx/image1bit"
)

const (
	ramColumns = 128
	ramPages   = 8
)

// Device is an in-memory SSD1306 controller behind an I2C bus.
//
// w and h describe the attached panel, which may cover less than the full
// 128x64 GDDRAM; panel-relative readback accounts for the centering column
// offset drivers apply. Device is safe for concurrent use, so a Terminal
// can render it while a test or demo draws.
type Device struct {
	mu sync.Mutex

	addr         uint16
	w, h         int
	columnOffset int

	// GDDRAM and write cursor
	ram                [ramPages][ramColumns]byte
	colStart, colEnd   int
	pageStart, pageEnd int
	col, page          int
	addrMode           byte

	// Panel state
	displayOn bool
	allOn     bool
	inverted  bool
	contrast  byte
	scrolling bool

	// Stored-but-unrendered configuration
	startLine   byte
	muxRatio    byte
	offset      byte
	clock       byte
	comPins     byte
	precharge   byte
	vcomh       byte
	chargePump  byte
	segRemap    bool
	comScanDec  bool
	scrollRight bool
	scrollCfg   [6]byte

	// Multi-byte command collection
	pending byte
	need    int
	args    []byte

	dataBytes int // Total GDDRAM bytes received
}

// New returns a simulated controller for a w by h panel responding at the
// given I2C address.
func New(w, h int, addr uint16) *Device {
	return &Device{
		addr:         addr,
		w:            w,
		h:            h,
		columnOffset: (ramColumns - w) / 2,
		colEnd:       ramColumns - 1,
		pageEnd:      ramPages - 1,
		contrast:     0x7F,
	}
}

// String implements i2c.Bus.
func (s *Device) String() string {
	return fmt.Sprintf("ssd1306sim(%dx%d)", s.w, s.h)
}

// SetSpeed implements i2c.Bus. The simulation has no clock; any speed is
// accepted.
func (s *Device) SetSpeed(f physic.Frequency) error {
	return nil
}

// Tx implements i2c.Bus. The device is write-only, like the real chip over
// I2C: any read request is an error. Writes must start with control byte
// 0x00 (command stream) or 0x40 (data stream).
func (s *Device) Tx(addr uint16, w, r []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if addr != s.addr {
		return fmt.Errorf("ssd1306sim: no device at address %#02x", addr)
	}
	if len(r) != 0 {
		return errors.New("ssd1306sim: write-only device")
	}
	if len(w) == 0 {
		return nil
	}
	switch w[0] {
	case 0x00:
		for _, b := range w[1:] {
			if err := s.command(b); err != nil {
				return err
			}
		}
	case 0x40:
		for _, b := range w[1:] {
			s.data(b)
		}
	default:
		return fmt.Errorf("ssd1306sim: unsupported control byte %#02x", w[0])
	}
	return nil
}

// command decodes one command-stream byte, collecting arguments of
// multi-byte commands across transaction boundaries.
func (s *Device) command(b byte) error {
	if s.need > 0 {
		s.args = append(s.args, b)
		s.need--
		if s.need == 0 {
			s.apply()
		}
		return nil
	}

	switch {
	case b == 0x21 || b == 0x22: // Column/page address window
		s.collect(b, 2)
	case b == 0x26 || b == 0x27: // Horizontal scroll setup
		s.collect(b, 6)
	case b == 0x20 || b == 0x81 || b == 0x8D || b == 0xA8 || b == 0xD3 ||
		b == 0xD5 || b == 0xD9 || b == 0xDA || b == 0xDB:
		s.collect(b, 1)
	case b >= 0x40 && b <= 0x7F:
		s.startLine = b & 0x3F
	case b == 0xA4 || b == 0xA5:
		s.allOn = b == 0xA5
	case b == 0xA6 || b == 0xA7:
		s.inverted = b == 0xA7
	case b == 0xA0 || b == 0xA1:
		s.segRemap = b == 0xA1
	case b == 0xC0 || b == 0xC8:
		s.comScanDec = b == 0xC8
	case b == 0xAE || b == 0xAF:
		s.displayOn = b == 0xAF
	case b == 0x2E || b == 0x2F:
		s.scrolling = b == 0x2F
	case b >= 0xB0 && b <= 0xB7: // Page-mode page start
		s.page = int(b & 0x07)
	case b <= 0x0F: // Page-mode lower column nibble
		s.col = s.col&0xF0 | int(b)
	case b >= 0x10 && b <= 0x1F: // Page-mode upper column nibble
		s.col = s.col&0x0F | int(b&0x0F)<<4
	default:
		return fmt.Errorf("ssd1306sim: unknown command %#02x", b)
	}
	return nil
}

func (s *Device) collect(cmd byte, n int) {
	s.pending = cmd
	s.need = n
	s.args = s.args[:0]
}

// apply executes a multi-byte command once all its arguments arrived.
func (s *Device) apply() {
	switch s.pending {
	case 0x21:
		s.colStart = clampInt(int(s.args[0]), 0, ramColumns-1)
		s.colEnd = clampInt(int(s.args[1]), 0, ramColumns-1)
		s.col = s.colStart
	case 0x22:
		s.pageStart = clampInt(int(s.args[0]), 0, ramPages-1)
		s.pageEnd = clampInt(int(s.args[1]), 0, ramPages-1)
		s.page = s.pageStart
	case 0x20:
		s.addrMode = s.args[0] & 0x03
	case 0x81:
		s.contrast = s.args[0]
	case 0x8D:
		s.chargePump = s.args[0]
	case 0xA8:
		s.muxRatio = s.args[0]
	case 0xD3:
		s.offset = s.args[0]
	case 0xD5:
		s.clock = s.args[0]
	case 0xD9:
		s.precharge = s.args[0]
	case 0xDA:
		s.comPins = s.args[0]
	case 0xDB:
		s.vcomh = s.args[0]
	case 0x26, 0x27:
		s.scrollRight = s.pending == 0x26
		copy(s.scrollCfg[:], s.args)
	}
}

// data stores one GDDRAM byte at the write cursor and advances it
// according to the memory addressing mode.
func (s *Device) data(b byte) {
	s.dataBytes++
	s.ram[s.page&(ramPages-1)][s.col&(ramColumns-1)] = b
	switch s.addrMode {
	case 0x00: // Horizontal: across the window, then next page row
		s.col++
		if s.col > s.colEnd {
			s.col = s.colStart
			s.page++
			if s.page > s.pageEnd {
				s.page = s.pageStart
			}
		}
	case 0x01: // Vertical: down the window, then next column
		s.page++
		if s.page > s.pageEnd {
			s.page = s.pageStart
			s.col++
			if s.col > s.colEnd {
				s.col = s.colStart
			}
		}
	default: // Page mode: across the page, stopping at the RAM edge
		if s.col < ramColumns-1 {
			s.col++
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PageByte returns the GDDRAM byte of panel column x, page row page.
// Out-of-range coordinates return 0.
func (s *Device) PageByte(x, page int) byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pageByteLocked(x, page)
}

func (s *Device) pageByteLocked(x, page int) byte {
	if x < 0 || x >= s.w || page < 0 || page*8 >= s.h {
		return 0
	}
	return s.ram[page][x+s.columnOffset]
}

// Pixel reports whether the panel pixel at (x, y) is lit in GDDRAM.
// Hardware-level inversion (Invert) is not applied; see Inverted.
func (s *Device) Pixel(x, y int) bool {
	if y < 0 {
		return false
	}
	return s.PageByte(x, y/8)&(1<<uint(y&7)) != 0
}

// Snapshot copies the panel's GDDRAM content into a fresh VerticalLSB
// image.
func (s *Device) Snapshot() *image1bit.VerticalLSB {
	s.mu.Lock()
	defer s.mu.Unlock()

	img := image1bit.NewVerticalLSB(image.Rect(0, 0, s.w, s.h))
	for p := 0; p < s.h/8; p++ {
		for x := 0; x < s.w; x++ {
			img.Pix[p*img.Stride+x] = s.pageByteLocked(x, p)
		}
	}
	return img
}

// DisplayOn reports whether the panel is powered on (command 0xAF).
func (s *Device) DisplayOn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.displayOn
}

// Inverted reports whether hardware display inversion (command 0xA7) is
// active.
func (s *Device) Inverted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inverted
}

// Contrast returns the last contrast level set (command 0x81).
func (s *Device) Contrast() byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contrast
}

// Scrolling reports whether hardware scrolling is active (command 0x2F).
func (s *Device) Scrolling() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scrolling
}

// ScrollConfig returns the direction and raw arguments of the last scroll
// setup command (0x26/0x27): dummy, start page, frame interval, end page,
// dummy, dummy.
func (s *Device) ScrollConfig() (right bool, cfg [6]byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scrollRight, s.scrollCfg
}

// DataBytes returns how many GDDRAM data bytes the device has received in
// total. It measures write traffic, letting tests compare the cost of
// partial and full redraws.
func (s *Device) DataBytes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dataBytes
}
