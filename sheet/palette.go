package sheet

import (
	"encoding/binary"
	"image/color"
)

// Color is a packed 15-bit SNES color, 5 bits per channel stored as
// 0BBBBBGG GGGRRRRR.
type Color uint16

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c) & 0x1f
	g = uint32(c) >> 5 & 0x1f
	b = uint32(c) >> 10 & 0x1f
	// Spread the 5-bit channels across the full 16-bit range
	r = r<<11 | r<<6 | r<<1 | r>>4
	g = g<<11 | g<<6 | g<<1 | g>>4
	b = b<<11 | b<<6 | b<<1 | b>>4
	return r, g, b, 0xffff
}

// FromColor packs an arbitrary color into the nearest 15-bit value.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color(r>>11 | g>>11<<5 | b>>11<<10)
}

const (
	// PaletteColors is the number of entries in one sub-palette. Color
	// index zero is transparent and never stored.
	PaletteColors = 15

	numPalettes = 4
	gloveColors = 2

	// PaletteBytes is the encoded size of a full palette set: four
	// sub-palettes followed by the two glove colors.
	PaletteBytes = (numPalettes*PaletteColors + gloveColors) * 2

	mailBytes = numPalettes * PaletteColors * 2
)

// Palette is one ordered 15 color sub-palette.
type Palette [PaletteColors]Color

// PaletteSet holds every color table associated with the spritesheet:
// the three mail palettes, the bunny form palette and the two glove
// recolor values.
type PaletteSet struct {
	Green  Palette
	Blue   Palette
	Red    Palette
	Bunny  Palette
	Gloves [gloveColors]Color
}

// DecodePaletteSet reads a 0x7c byte palette block.
func DecodePaletteSet(b []byte) (PaletteSet, error) {
	var p PaletteSet
	if len(b) < PaletteBytes {
		return p, FormatErrorf("sheet: palette block is %d bytes, need %d", len(b), PaletteBytes)
	}
	for i, pal := range []*Palette{&p.Green, &p.Blue, &p.Red, &p.Bunny} {
		for j := range pal {
			pal[j] = Color(binary.LittleEndian.Uint16(b[(i*PaletteColors+j)*2:]))
		}
	}
	for i := range p.Gloves {
		p.Gloves[i] = Color(binary.LittleEndian.Uint16(b[mailBytes+i*2:]))
	}
	return p, nil
}

// Encode serializes the palette set back into its 0x7c byte block.
func (p *PaletteSet) Encode() []byte {
	b := make([]byte, PaletteBytes)
	for i, pal := range []*Palette{&p.Green, &p.Blue, &p.Red, &p.Bunny} {
		for j, c := range pal {
			binary.LittleEndian.PutUint16(b[(i*PaletteColors+j)*2:], uint16(c))
		}
	}
	for i, c := range p.Gloves {
		binary.LittleEndian.PutUint16(b[mailBytes+i*2:], uint16(c))
	}
	return b
}
