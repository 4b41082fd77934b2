package ftb8md

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// NumDigits is the number of character positions on the display, addressed
// 0 to 7 with 0 the leftmost.
const NumDigits = 8

// NumGlyphs is the number of custom character slots in the controller's
// glyph RAM.
const NumGlyphs = 8

// MaxDimming is the highest dimming level the controller accepts.
// SetDimming saturates larger values to it.
const MaxDimming = 240

// PatternLen is the number of columns in a custom glyph pattern.
const PatternLen = 5

// Validation errors. They are returned before any bus traffic happens.
var (
	ErrInvalidDigit   = errors.New("ftb8md: digit out of range")
	ErrInvalidGlyph   = errors.New("ftb8md: glyph index out of range")
	ErrInvalidPattern = errors.New("ftb8md: glyph pattern must be 5 bytes")
	ErrInvalidGrid    = errors.New("ftb8md: grid address out of range")
	ErrHalted         = errors.New("ftb8md: halted")
)

// Command prefixes, encoded in the high 3 bits of the first packet byte.
const (
	prefixDCRAM = 0x20 // character RAM write
	prefixCGRAM = 0x40 // custom glyph RAM write
	prefixADRAM = 0x60 // auxiliary RAM write (decimal points)
	prefixURAM  = 0x80 // grid control RAM write
)

// Control opcodes. A control packet is the opcode followed by one argument
// byte.
const (
	opDigitCount = 0xE0
	opDimming    = 0xE4
	opDisplayOn  = 0xE8
	opDisplayOff = 0xEA
	opNormal     = 0xEC
	opStandby    = 0xED
)

// Opts is the configuration for the display.
type Opts struct {
	// RST is the optional hardware reset pin. When set, NewSPI issues a
	// reset pulse before the first SPI transfer. When nil the driver relies
	// on power-on reset.
	RST gpio.PinIO

	// StrictInit makes a failed configuration command during NewSPI abort
	// initialization instead of only being logged. The controller usually
	// comes up fine even when one of the three init commands is lost, so
	// the default is to keep going.
	StrictInit bool
}

// Dev is an open handle to the display.
//
// The driver is write-only and keeps no copy of the display RAM; what is
// shown is exactly what was last written. A Dev serializes its transfers,
// so a single handle may be shared between goroutines.
type Dev struct {
	c conn.Conn

	mu     sync.Mutex
	halted bool
}

// NewSPI opens the display on the given SPI port.
//
// The port is configured for 500kHz, Mode3 (CPOL=1, CPHA=1), LSB-first
// 8-bit transfers, matching the controller's timing requirements. opts can
// be nil.
//
// After connecting, the display is configured for 8 digits at full
// brightness and turned on.
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}

	// Hardware reset pulse, before any bus traffic.
	if opts.RST != nil {
		if err := opts.RST.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("ftb8md: failed to pull RST low: %w", err)
		}
		time.Sleep(10 * time.Millisecond)

		if err := opts.RST.Out(gpio.High); err != nil {
			return nil, fmt.Errorf("ftb8md: failed to pull RST high: %w", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	c, err := p.Connect(500*physic.KiloHertz, spi.Mode3|spi.LSBFirst, 8)
	if err != nil {
		return nil, err
	}

	d := &Dev{c: c}
	if err := d.init(opts.StrictInit); err != nil {
		return nil, err
	}
	return d, nil
}

// init applies the power-on configuration: digit count, full brightness,
// display on. Unless strict is set, failures are logged rather than
// returned; the device is often still usable when one of these is lost.
func (d *Dev) init(strict bool) error {
	cmds := [][]byte{
		encodeControl(opDigitCount, NumDigits-1), // 0-7 means 1-8 digits
		encodeControl(opDimming, MaxDimming),
		encodeControl(opDisplayOn, 0),
	}

	for _, cmd := range cmds {
		if err := d.send(cmd); err != nil {
			if strict {
				return fmt.Errorf("ftb8md: init command %#02x failed: %w", cmd[0], err)
			}
			log.Printf("ftb8md: init command %#02x failed: %v", cmd[0], err)
		}
	}
	return nil
}

// send transmits one command packet.
func (d *Dev) send(cmd []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return ErrHalted
	}
	return d.c.Tx(cmd, nil)
}

// WriteString displays s starting at the given digit position. Characters
// that do not fit on the remaining width are dropped. Bytes are sent
// unmodified; the controller's built-in font is ASCII compatible.
func (d *Dev) WriteString(digit int, s string) error {
	if digit < 0 || digit >= NumDigits {
		return ErrInvalidDigit
	}
	return d.send(encodeText(digit, []byte(s)))
}

// SetSegments writes one raw character RAM byte at the given digit,
// bypassing the font. The segment bit mapping depends on the display
// hardware.
func (d *Dev) SetSegments(digit int, segments byte) error {
	if digit < 0 || digit >= NumDigits {
		return ErrInvalidDigit
	}
	return d.send(encodeText(digit, []byte{segments}))
}

// SetDot turns the decimal point of the given digit on or off.
func (d *Dev) SetDot(digit int, on bool) error {
	if digit < 0 || digit >= NumDigits {
		return ErrInvalidDigit
	}
	return d.send(encodeDot(digit, on))
}

// DefineGlyph stores a custom pattern in one of the 8 glyph RAM slots.
// pattern holds PatternLen bytes, one per column, bit 0 the top row through
// bit 6 the bottom row. The glyph package helps building patterns. Use
// ShowGlyph to put the glyph on a digit.
func (d *Dev) DefineGlyph(index int, pattern []byte) error {
	if index < 0 || index >= NumGlyphs {
		return ErrInvalidGlyph
	}
	if len(pattern) != PatternLen {
		return ErrInvalidPattern
	}
	return d.send(encodeGlyph(index, pattern))
}

// ShowGlyph displays the custom glyph stored at index on the given digit.
// Glyph RAM slots are addressed at character codes 0x00-0x07.
func (d *Dev) ShowGlyph(digit, index int) error {
	if digit < 0 || digit >= NumDigits {
		return ErrInvalidDigit
	}
	if index < 0 || index >= NumGlyphs {
		return ErrInvalidGlyph
	}
	return d.send(encodeText(digit, []byte{byte(index)}))
}

// SetGrid writes two bytes of raw grid control data at the given grid RAM
// address (0-7). The low byte drives grids 1G-8G, the high byte 9G-16G.
// The 8 digit display leaves this RAM unused; it is exposed for displays
// wired with extra grids.
func (d *Dev) SetGrid(addr int, grids uint16) error {
	if addr < 0 || addr >= NumDigits {
		return ErrInvalidGrid
	}
	return d.send(encodeGrid(addr, grids))
}

// SetDimming sets the display brightness. The controller's usable ceiling
// is MaxDimming; larger values are saturated, not rejected.
func (d *Dev) SetDimming(level uint8) error {
	if level > MaxDimming {
		level = MaxDimming
	}
	return d.send(encodeControl(opDimming, level))
}

// Standby enters or leaves the controller's low power mode. Display RAM
// content is preserved across the transition.
func (d *Dev) Standby(enable bool) error {
	op := byte(opNormal)
	if enable {
		op = opStandby
	}
	return d.send(encodeControl(op, 0))
}

// SetDisplayPower turns the display output on or off without touching
// display RAM.
func (d *Dev) SetDisplayPower(on bool) error {
	op := byte(opDisplayOff)
	if on {
		op = opDisplayOn
	}
	return d.send(encodeControl(op, 0))
}

// Clear blanks all 8 positions and turns every decimal point off. It stops
// at the first failure; a partial clear is then visible on the display.
func (d *Dev) Clear() error {
	if err := d.send(encodeText(0, bytes.Repeat([]byte{' '}, NumDigits))); err != nil {
		return err
	}
	for i := 0; i < NumDigits; i++ {
		if err := d.send(encodeDot(i, false)); err != nil {
			return err
		}
	}
	return nil
}

// Halt turns the display off and invalidates the handle, implementing
// conn.Resource. Further operations fail with ErrHalted.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.halted {
		return nil
	}
	d.halted = true
	return d.c.Tx(encodeControl(opDisplayOff, 0), nil)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ftb8md.Dev{%d}", NumDigits)
}

// encodeText builds a character RAM write: prefix plus start digit, then
// one byte per character. text is truncated to the width remaining after
// digit.
func encodeText(digit int, text []byte) []byte {
	if n := NumDigits - digit; len(text) > n {
		text = text[:n]
	}
	cmd := make([]byte, 1+len(text))
	cmd[0] = prefixDCRAM | byte(digit)
	copy(cmd[1:], text)
	return cmd
}

// encodeGlyph builds a glyph RAM write defining the 5-column pattern of one
// of the 8 custom glyph slots.
func encodeGlyph(index int, pattern []byte) []byte {
	cmd := make([]byte, 1+PatternLen)
	cmd[0] = prefixCGRAM | byte(index)
	copy(cmd[1:], pattern)
	return cmd
}

// encodeDot builds an auxiliary RAM write driving the decimal point output
// (E0) of one digit.
func encodeDot(digit int, on bool) []byte {
	pin := byte(0x00)
	if on {
		pin = 0x01
	}
	return []byte{prefixADRAM | byte(digit), pin}
}

// encodeGrid builds a grid RAM write: the address followed by the grid
// bytes, low byte first.
func encodeGrid(addr int, grids uint16) []byte {
	return []byte{prefixURAM | byte(addr), byte(grids), byte(grids >> 8)}
}

// encodeControl builds a 2-byte control command.
func encodeControl(op, arg byte) []byte {
	return []byte{op, arg}
}
