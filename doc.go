// Package ssd1306gfx controls a SSD1306 OLED display via I2C or SPI and adds
// a direct-draw graphics layer on top of the controller's page-organized RAM.
//
// The SSD1306 is a monochrome OLED controller supporting up to 128×64 pixels.
// This driver implements the display.Drawer interface from periph.io and a set
// of rendering primitives (pixels, lines, rectangles, bitmaps, text, sprites
// and a menu widget) that write straight to the display without a full
// framebuffer on the host.
//
// # Display Characteristics
//
// - 1-bit monochrome, one byte of RAM drives 8 vertically stacked pixels
// - RAM is organized in pages: a page is an 8-pixel-tall horizontal band
// - Support for various resolutions (typically 128×64, 128×32 or 64×48)
// - Hardware scrolling support (horizontal only)
// - Adjustable contrast (0-255)
// - Display inversion
// - 128-column internal RAM with automatic centering for narrower displays
//
// # The Direct-Draw Model
//
// There is no host-side framebuffer and the controller's RAM cannot be read
// back. Every primitive writes bytes directly to display RAM, so a write to
// any pixel replaces the other 7 pixels sharing its RAM byte. SetPixel
// therefore clears the 7 neighbors in its column byte; this is inherent to
// the model, not a bug. Primitives that operate on whole pages (text,
// bitmaps, sprites, menu rows) do not suffer from this because they own
// every byte they touch.
//
// If you need composition with read-modify-write semantics, render into an
// image1bit.VerticalLSB on the host and push it with Draw.
//
// # Hardware Connection
//
// Connect the SSD1306 display to your system via I2C:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL         → I2C Clock (SCL)
//	SDA         → I2C Data (SDA)
//
// or via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	D0/CLK      → SPI Clock (SCLK)
//	D1/MOSI     → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select (or GND if always selected)
//	RES         → Optional: GPIO for hardware reset
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/devices/v3/ssd1306gfx"
//		"periph.io/x/devices/v3/ssd1306gfx/font"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open I2C bus
//		bus, _ := i2creg.Open("")
//
//		// Create device
//		dev, _ := ssd1306gfx.NewI2C(bus, &ssd1306gfx.Opts{
//			W: 128,
//			H: 64,
//		})
//		defer dev.Halt()
//
//		// Draw directly to display RAM
//		dev.SetFont(font.Font6x8)
//		dev.DrawRect(0, 0, 127, 63)
//		dev.DrawLine(0, 63, 127, 0)
//		dev.PrintFixed(8, 8, "Hello!", font.StyleNormal)
//	}
//
// # Using Hardware Reset Pin (Optional)
//
// If your display has a reset (RST) pin connected to a GPIO, you can provide
// it in the Opts struct for clean hardware initialization:
//
//	rstPin := gpioreg.ByName("GPIO24")
//
//	dev, _ := ssd1306gfx.NewI2C(bus, &ssd1306gfx.Opts{
//		W:   128,
//		H:   64,
//		RST: rstPin, // Optional reset pin
//	})
//
// The driver will automatically perform a hardware reset sequence (pull RST
// low, wait 10ms, pull high, wait 10ms) during initialization. If RST is nil
// or not provided, the driver skips the hardware reset and relies on power-on
// reset.
//
// # Draw Modes
//
// Every rendering primitive honors the device draw mode:
//
//	dev.SetDrawMode(ssd1306gfx.Positive) // lit ink on dark background
//	dev.SetDrawMode(ssd1306gfx.Negative) // dark ink on lit background
//
// In Negative mode every byte written through the draw path is inverted,
// including the background bytes of text cells and block clears. The one
// exception is DrawBufferFast, which streams caller bytes verbatim for
// maximum throughput and ignores the draw mode.
//
// # Text
//
// Text rendering uses fixed-cell fonts from the font subpackage. The y
// coordinate snaps down to the containing page:
//
//	dev.SetFont(font.Font6x8)
//	dev.PrintFixed(0, 0, "status", font.StyleNormal)
//	dev.PrintFixedN(0, 16, "BIG", font.StyleBold, ssd1306gfx.Scale2x)
//	dev.PrintFixedField(0, 32, "cpu 42%", font.StyleNormal, 128)
//
// PrintFixedField blanks the cell band up to the given right edge, so a
// shorter value overwrites a longer previous one without a separate clear.
// The device is also an io.Writer positioned by SetTextCursor, so it works
// with fmt.Fprintf.
//
// # Sprites
//
// A Sprite is a page-aligned bitmap whose previous position is remembered.
// MoveSprite erases only the strip of RAM the sprite vacated and redraws it
// at the new position, avoiding full-region flicker:
//
//	s := ssd1306gfx.NewSprite(8, 8, 8, spriteData)
//	dev.DrawSprite(s)
//	dev.MoveSprite(s, 10, 8)
//
// # Menu
//
// The menu widget renders a framed, scrollable list with the selected row
// highlighted in inverse video:
//
//	m := ssd1306gfx.NewMenu([]string{"Start", "Options", "About"})
//	dev.ShowMenu(m)
//	dev.MenuDown(m)
//	dev.UpdateMenu(m) // redraws only the rows that changed
//
// # Hardware Scrolling
//
// The display supports horizontal scrolling of whole pages:
//
//	// Start scrolling left across all 8 pages
//	dev.ScrollHorizontal(0, 7, ssd1306gfx.Speed5Frames, false)
//	time.Sleep(5 * time.Second)
//
//	// Stop scrolling
//	dev.StopScroll()
//
// # Performance
//
// Direct draw sends only the bytes a primitive touches. On 400kHz I2C:
// - Full clear: ~25ms (1KB of RAM plus addressing)
// - 6×8 text cell: well under 1ms
// - Hardware scrolling: smooth (handled by display)
//
// SPI communication is significantly faster (typical 10MHz), making even
// full-frame pushes via Draw cheap.
//
// # Display Resolution
//
// This driver supports configurable resolutions. Common options:
//
//	Opts{W: 128, H: 64} // 128×64 (most common)
//	Opts{W: 128, H: 32} // 128×32 (slim modules)
//	Opts{W: 64, H: 48}  // 64×48 (tiny modules)
//
// Width must be ≤128. Height must be a multiple of 8 and ≤64.
//
// # Datasheet
//
// For detailed register descriptions and timing information, see:
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
//
// # Compatibility with periph.io
//
// This driver implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// It can be used with any periph.io tool or library expecting a
// display.Drawer.
//
// # Simulator
//
// The ssd1306sim subpackage provides an in-memory SSD1306 that implements
// i2c.Bus, plus an optional terminal renderer. It is used by the package
// tests and lets the example run without hardware.
package ssd1306gfx
