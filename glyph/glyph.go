// Package glyph builds 5×7 custom character patterns for the ftb8md
// display's glyph RAM.
//
// The controller stores a glyph as 5 bytes, one per column, bit 0 the top
// row through bit 6 the bottom row. This package provides the Pattern type
// in that order, conversion from the more common row-major form, a small
// cell art parser, and a handful of stock patterns.
package glyph

import (
	"fmt"
	"strings"
)

// Columns and Rows describe the glyph cell: 5 columns of 7 rows.
const (
	Columns = 5
	Rows    = 7
)

// Pattern is one glyph cell in controller order: one byte per column, bit 0
// the top row through bit 6 the bottom row. Bit 7 is ignored by the
// controller.
type Pattern [Columns]byte

// FromRows converts a row-major bitmap to controller order. Each of the 7
// bytes is one row, bit 4 the leftmost column through bit 0 the rightmost.
func FromRows(rows [Rows]byte) Pattern {
	var p Pattern
	for c := 0; c < Columns; c++ {
		for r := 0; r < Rows; r++ {
			if rows[r]&(1<<(Columns-1-c)) != 0 {
				p[c] |= 1 << r
			}
		}
	}
	return p
}

// Parse builds a Pattern from 7 lines of 5 cells each, '#' for a lit cell
// and '.' for a dark one. Leading and trailing newlines are ignored, so the
// art can be written as an indented raw string literal.
func Parse(art string) (Pattern, error) {
	var p Pattern
	lines := strings.Split(strings.Trim(art, "\n"), "\n")
	if len(lines) != Rows {
		return Pattern{}, fmt.Errorf("glyph: want %d rows, got %d", Rows, len(lines))
	}
	for r, line := range lines {
		if len(line) != Columns {
			return Pattern{}, fmt.Errorf("glyph: row %d: want %d cells, got %d", r, Columns, len(line))
		}
		for c := 0; c < Columns; c++ {
			switch line[c] {
			case '#':
				p[c] |= 1 << r
			case '.':
			default:
				return Pattern{}, fmt.Errorf("glyph: row %d: invalid cell %q", r, line[c])
			}
		}
	}
	return p, nil
}

// MustParse is like Parse but panics on malformed art. It is intended for
// package level pattern variables.
func MustParse(art string) Pattern {
	p, err := Parse(art)
	if err != nil {
		panic(err)
	}
	return p
}

// String renders the pattern as cell art in the form accepted by Parse.
func (p Pattern) String() string {
	var b strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < Columns; c++ {
			if p[c]&(1<<r) != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Stock patterns.
var (
	Heart = MustParse(`
.###.
#####
#####
#####
.###.
.....
.....`)

	Smiley = MustParse(`
.#.#.
.#.#.
.#.#.
.....
.###.
.....
.....`)

	ArrowUp = MustParse(`
..#..
.###.
#.#.#
..#..
..#..
..#..
..#..`)

	ArrowDown = MustParse(`
..#..
..#..
..#..
..#..
#.#.#
.###.
..#..`)

	BatteryEmpty = MustParse(`
#####
#...#
#...#
#...#
#...#
#...#
#####`)

	BatteryHalf = MustParse(`
#####
##..#
##..#
##..#
##..#
##..#
#####`)

	BatteryFull = MustParse(`
#####
#####
#####
#####
#####
#####
#####`)

	Degree = MustParse(`
.#...
#.#..
#.#..
.#...
.....
.....
.....`)
)
