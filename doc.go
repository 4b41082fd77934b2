// Package ftb8md controls a Futaba 8-MD-06INK VFD display via SPI.
//
// The 8-MD-06INK is an 8 digit vacuum fluorescent display with a 5×7 dot
// matrix per digit, a decimal point per digit, an ASCII compatible built-in
// font and 8 user definable glyph slots.
//
// # Display Characteristics
//
// - 8 digits, addressed 0 (leftmost) to 7
// - 5×7 dot matrix characters plus a decimal point per digit
// - 8 custom glyph slots in glyph RAM (see the glyph subpackage)
// - 241 brightness levels (0-240)
// - Standby mode that preserves display RAM
//
// # Hardware Connection
//
// The display is write-only; it has no MISO line. Connect it via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 5V
//	CLK         → SPI Clock (SCLK)
//	DIN         → SPI Data (MOSI)
//	CS          → SPI Chip Select (active low)
//	RST         → Optional: GPIO for hardware reset
//
// The controller requires LSB-first transfers with the clock idling high
// and data sampled on the rising edge (Mode3), at no more than 500kHz. The
// driver configures the SPI port accordingly; the port's driver must
// support the LSBFirst flag.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"log"
//
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/ftb8md"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		if _, err := host.Init(); err != nil {
//			log.Fatal(err)
//		}
//
//		spiBus, err := spireg.Open("")
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer spiBus.Close()
//
//		dev, err := ftb8md.NewSPI(spiBus, nil)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Halt()
//
//		dev.WriteString(0, "HELLO")
//		dev.SetDot(1, true)
//	}
//
// # Using the Hardware Reset Pin (Optional)
//
// If the display's RST pin is wired to a GPIO, pass it in Opts and the
// driver performs a reset pulse (RST low, 10ms, RST high, 10ms) before
// talking to the controller:
//
//	rstPin := gpioreg.ByName("GPIO4")
//
//	dev, err := ftb8md.NewSPI(spiBus, &ftb8md.Opts{RST: rstPin})
//
// # Custom Glyphs
//
// Define up to 8 custom 5×7 patterns and address them per digit:
//
//	dev.DefineGlyph(0, glyph.Heart[:])
//	dev.ShowGlyph(3, 0)
//
// # Initialization Failures
//
// After connecting, the driver sends three configuration commands (digit
// count, brightness, display on). The bus gives no acknowledgment, so a
// failure here usually means a wiring problem rather than a transient
// error; by default such failures are logged and NewSPI still returns a
// handle. Set Opts.StrictInit to turn them into hard errors instead.
package ftb8md
