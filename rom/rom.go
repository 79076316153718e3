/*
Package rom reads and writes the Link spritesheet embedded in an
A Link to the Past cartridge image.

Loading keeps a copy of the whole image so that saving can reproduce
every byte outside the spritesheet and palette regions exactly, with
only the internal header checksum pair recomputed.
*/
package rom

import (
	"strings"

	"github.com/alttpx/linkshuffle/sheet"
	"github.com/alttpx/linkshuffle/snes"
)

// Image is a loaded cartridge image together with its decoded
// spritesheet and palettes.
type Image struct {
	Sheet    *sheet.Sheet
	Palettes sheet.PaletteSet

	layout *sheet.Layout
	data   []byte
}

// Load decodes the spritesheet and palette regions of b according to
// the Link layout. The image bytes are copied; the caller may reuse b.
func Load(b []byte) (*Image, error) {
	return LoadLayout(b, &sheet.Link)
}

// LoadLayout decodes b according to an explicit layout.
func LoadLayout(b []byte, layout *sheet.Layout) (*Image, error) {
	if len(b) < layout.MinROMSize {
		return nil, sheet.FormatErrorf("rom: image is %d bytes, need at least %#x", len(b), layout.MinROMSize)
	}
	if title := snes.Title(b, layout.HeaderOffset); !strings.HasPrefix(title, layout.Title) {
		return nil, sheet.FormatErrorf("rom: unexpected cartridge title %q", title)
	}

	s, err := sheet.DecodeSheet(b, layout.SheetOffset)
	if err != nil {
		return nil, err
	}

	mail := sheet.PaletteBytes - 4
	block := make([]byte, sheet.PaletteBytes)
	copy(block, b[layout.MailOffset:layout.MailOffset+mail])
	copy(block[mail:], b[layout.GlovesOffset:layout.GlovesOffset+4])
	p, err := sheet.DecodePaletteSet(block)
	if err != nil {
		return nil, err
	}

	data := make([]byte, len(b))
	copy(data, b)

	return &Image{
		Sheet:    s,
		Palettes: p,
		layout:   layout,
		data:     data,
	}, nil
}

// Save writes s and p into a copy of the original image and recomputes
// the header checksum pair. The original image is never modified.
func (img *Image) Save(s *sheet.Sheet, p sheet.PaletteSet) []byte {
	out := make([]byte, len(img.data))
	copy(out, img.data)

	copy(out[img.layout.SheetOffset:], s.Encode())

	block := p.Encode()
	mail := sheet.PaletteBytes - 4
	copy(out[img.layout.MailOffset:], block[:mail])
	copy(out[img.layout.GlovesOffset:], block[mail:])

	snes.Fix(out, img.layout.HeaderOffset)

	return out
}
