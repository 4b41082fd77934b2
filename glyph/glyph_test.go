package glyph

import "testing"

func TestFromRows(t *testing.T) {
	tests := []struct {
		name string
		rows [Rows]byte
		want Pattern
	}{
		{"empty", [Rows]byte{}, Pattern{}},
		{"top row", [Rows]byte{0x1F}, Pattern{0x01, 0x01, 0x01, 0x01, 0x01}},
		{"bottom row", [Rows]byte{0, 0, 0, 0, 0, 0, 0x1F}, Pattern{0x40, 0x40, 0x40, 0x40, 0x40}},
		{"left column", [Rows]byte{0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10}, Pattern{0x7F, 0, 0, 0, 0}},
		{"right column", [Rows]byte{0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01}, Pattern{0, 0, 0, 0, 0x7F}},
		{"single cell", [Rows]byte{0, 0, 0x04, 0, 0, 0, 0}, Pattern{0, 0, 0x04, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromRows(tt.rows); got != tt.want {
				t.Errorf("FromRows(%v) = %v, want %v", tt.rows, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	p, err := Parse(`
..#..
.#.#.
#...#
#####
#...#
#...#
#...#`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	// Letter A: column bytes computed by hand from the art above.
	want := Pattern{0x7C, 0x0A, 0x09, 0x0A, 0x7C}
	if p != want {
		t.Errorf("Parse() = %#v, want %#v", p, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		art  string
	}{
		{"empty", ""},
		{"too few rows", ".....\n.....\n....."},
		{"too many rows", ".....\n.....\n.....\n.....\n.....\n.....\n.....\n....."},
		{"short row", ".....\n...\n.....\n.....\n.....\n.....\n....."},
		{"long row", ".....\n.......\n.....\n.....\n.....\n.....\n....."},
		{"invalid cell", ".....\n..x..\n.....\n.....\n.....\n.....\n....."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.art); err == nil {
				t.Error("Parse() should have failed")
			}
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse() should panic on malformed art")
		}
	}()
	MustParse("not a glyph")
}

func TestStringRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		p    Pattern
	}{
		{"empty", Pattern{}},
		{"heart", Heart},
		{"arrow up", ArrowUp},
		{"degree", Degree},
		{"all bits", Pattern{0x7F, 0x7F, 0x7F, 0x7F, 0x7F}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.p.String())
			if err != nil {
				t.Fatalf("Parse(String()) error: %v", err)
			}
			if got != tt.p {
				t.Errorf("Parse(String()) = %v, want %v", got, tt.p)
			}
		})
	}
}

func TestStockPatterns(t *testing.T) {
	// The stock patterns match the column encodings from the display's
	// sample character set.
	tests := []struct {
		name string
		p    Pattern
		want Pattern
	}{
		{"heart", Heart, Pattern{0x0E, 0x1F, 0x1F, 0x1F, 0x0E}},
		{"smiley", Smiley, Pattern{0x00, 0x17, 0x10, 0x17, 0x00}},
		{"arrow up", ArrowUp, Pattern{0x04, 0x02, 0x7F, 0x02, 0x04}},
		{"arrow down", ArrowDown, Pattern{0x10, 0x20, 0x7F, 0x20, 0x10}},
		{"battery empty", BatteryEmpty, Pattern{0x7F, 0x41, 0x41, 0x41, 0x7F}},
		{"battery half", BatteryHalf, Pattern{0x7F, 0x7F, 0x41, 0x41, 0x7F}},
		{"battery full", BatteryFull, Pattern{0x7F, 0x7F, 0x7F, 0x7F, 0x7F}},
		{"degree", Degree, Pattern{0x06, 0x09, 0x06, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.p != tt.want {
				t.Errorf("%s = %#v, want %#v", tt.name, tt.p, tt.want)
			}
		})
	}
}
