/*
Package sheet implements the in-memory model of Link's spritesheet.

The sheet is defined as a grid of 8 by 28 cells where each cell is a 16
by 16 pixel block of 4-bit color indices. A cell is stored as two 0x40
byte strips; each strip holds a pair of horizontally adjacent 8 by 8
SNES 4bpp tiles and the two strips sit exactly 0x200 bytes apart, so one
16 pixel row of cells occupies 0x400 bytes and the whole sheet occupies
0x7000 bytes. Decoding and encoding are bit-exact inverses over that
region.
*/
package sheet

import "fmt"

const (
	// Cols and Rows are the cell dimensions of the grid.
	Cols = 8
	Rows = 28

	// CellSize is the width and height of a cell in pixels.
	CellSize = 16

	stripBytes = 0x40
	stripGap   = 0x200
	cellBytes  = 2 * stripBytes
	rowStride  = 2 * stripGap

	// SheetBytes is the encoded size of the full grid.
	SheetBytes = Rows * rowStride
)

// FormatError reports a malformed, undersized or otherwise unusable
// container.
type FormatError struct {
	msg string
}

func (e *FormatError) Error() string {
	return e.msg
}

// FormatErrorf returns a FormatError with a formatted message.
func FormatErrorf(format string, a ...interface{}) error {
	return &FormatError{msg: fmt.Sprintf(format, a...)}
}

// Coord addresses one cell of the grid.
type Coord struct {
	Row, Col int
}

// Tile is the pixel data of one cell. It is a value type; moving a Tile
// between cells or sheets always copies it.
type Tile struct {
	data [cellBytes]byte
}

// PixelAt returns the 4-bit color index of the pixel at (x, y) where
// both coordinates run from 0 to 15.
func (t Tile) PixelAt(x, y int) byte {
	base := 0
	if x >= 8 {
		base = 0x20
		x -= 8
	}
	if y >= 8 {
		base += stripBytes
		y -= 8
	}
	shift := uint(7 - x)
	p := t.data[base+y*2]>>shift&1 |
		t.data[base+y*2+1]>>shift&1<<1 |
		t.data[base+0x10+y*2]>>shift&1<<2 |
		t.data[base+0x10+y*2+1]>>shift&1<<3
	return p
}

// SetPixel stores the 4-bit color index v at (x, y).
func (t *Tile) SetPixel(x, y int, v byte) {
	base := 0
	if x >= 8 {
		base = 0x20
		x -= 8
	}
	if y >= 8 {
		base += stripBytes
		y -= 8
	}
	mask := byte(1) << uint(7-x)
	for plane := 0; plane < 4; plane++ {
		i := base + (plane>>1)*0x10 + y*2 + plane&1
		if v>>uint(plane)&1 != 0 {
			t.data[i] |= mask
		} else {
			t.data[i] &^= mask
		}
	}
}

// Sheet is the decoded tile grid.
type Sheet struct {
	tiles [Rows * Cols]Tile
}

// Tile returns a copy of the cell at c.
func (s *Sheet) Tile(c Coord) Tile {
	return s.tiles[c.Row*Cols+c.Col]
}

// SetTile replaces the cell at c.
func (s *Sheet) SetTile(c Coord, t Tile) {
	s.tiles[c.Row*Cols+c.Col] = t
}

// Clone returns an independent copy of the sheet.
func (s *Sheet) Clone() *Sheet {
	dup := *s
	return &dup
}

// DecodeSheet reads the 0x7000 byte spritesheet region starting at
// offset in b.
func DecodeSheet(b []byte, offset int) (*Sheet, error) {
	if offset < 0 || len(b) < offset+SheetBytes {
		return nil, FormatErrorf("sheet: need %#x bytes at offset %#x, have %d", SheetBytes, offset, len(b))
	}
	s := new(Sheet)
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			t := &s.tiles[row*Cols+col]
			for strip := 0; strip < 2; strip++ {
				src := offset + row*rowStride + col*stripBytes + strip*stripGap
				copy(t.data[strip*stripBytes:(strip+1)*stripBytes], b[src:src+stripBytes])
			}
		}
	}
	return s, nil
}

// Encode serializes the grid back into its 0x7000 byte region layout.
func (s *Sheet) Encode() []byte {
	b := make([]byte, SheetBytes)
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			t := &s.tiles[row*Cols+col]
			for strip := 0; strip < 2; strip++ {
				dst := row*rowStride + col*stripBytes + strip*stripGap
				copy(b[dst:dst+stripBytes], t.data[strip*stripBytes:(strip+1)*stripBytes])
			}
		}
	}
	return b
}
