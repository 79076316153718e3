/*
Package preview converts between the spritesheet model and ordinary
paletted images.

Render draws the full grid with the green mail palette; bunny cells use
the bunny palette. FromImage goes the other way, quantizing arbitrary
input down to the 15 usable colors if necessary.
*/
package preview

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/alttpx/linkshuffle/sheet"
)

const (
	pixelX = sheet.Cols * sheet.CellSize
	pixelY = sheet.Rows * sheet.CellSize

	maxColors = sheet.PaletteColors + 1
)

func imagePalette(p sheet.Palette) color.Palette {
	pal := make(color.Palette, maxColors)
	pal[0] = color.RGBA{}
	for i, c := range p {
		pal[i+1] = c
	}
	return pal
}

func isBunny(layout *sheet.Layout, c sheet.Coord) bool {
	for _, b := range layout.Pool(sheet.PoolBunny) {
		if b == c {
			return true
		}
	}
	return false
}

// Render draws the sheet as a 128 by 448 paletted image. The image
// palette is the green mail palette followed by the bunny palette, with
// index zero transparent.
func Render(s *sheet.Sheet, p sheet.PaletteSet, layout *sheet.Layout) *image.Paletted {
	pal := append(imagePalette(p.Green), imagePalette(p.Bunny)[1:]...)
	m := image.NewPaletted(image.Rect(0, 0, pixelX, pixelY), pal)

	for row := 0; row < sheet.Rows; row++ {
		for col := 0; col < sheet.Cols; col++ {
			c := sheet.Coord{Row: row, Col: col}
			t := s.Tile(c)
			var base uint8
			if isBunny(layout, c) {
				base = maxColors - 1
			}
			for y := 0; y < sheet.CellSize; y++ {
				for x := 0; x < sheet.CellSize; x++ {
					v := t.PixelAt(x, y)
					if v != 0 {
						v += base
					}
					m.SetColorIndex(col*sheet.CellSize+x, row*sheet.CellSize+y, v)
				}
			}
		}
	}

	return m
}

// FromImage converts a 128 by 448 image into a sheet plus the mail
// palette derived from its colors. Images that are not already paletted
// with at most 16 colors are quantized first.
func FromImage(m image.Image) (*sheet.Sheet, sheet.Palette, error) {
	var pal sheet.Palette

	b := m.Bounds()
	if b.Dx() != pixelX || b.Dy() != pixelY {
		return nil, pal, sheet.FormatErrorf("preview: image is %dx%d, need %dx%d", b.Dx(), b.Dy(), pixelX, pixelY)
	}

	pm, _ := m.(*image.Paletted)
	if pm == nil || len(pm.Palette) > maxColors {
		q := quantize.MedianCutQuantizer{}
		pm = image.NewPaletted(b, q.Quantize(make(color.Palette, 0, maxColors), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	// Adjust image so that top-left corner is at (0, 0)
	if pm.Rect.Min != (image.Point{}) {
		dup := *pm
		dup.Rect = dup.Rect.Sub(dup.Rect.Min)
		pm = &dup
	}

	for i, c := range pm.Palette {
		if i == 0 {
			continue
		}
		if i > len(pal) {
			break
		}
		pal[i-1] = sheet.FromColor(c)
	}

	s := new(sheet.Sheet)
	for row := 0; row < sheet.Rows; row++ {
		for col := 0; col < sheet.Cols; col++ {
			var t sheet.Tile
			for y := 0; y < sheet.CellSize; y++ {
				for x := 0; x < sheet.CellSize; x++ {
					t.SetPixel(x, y, pm.ColorIndexAt(col*sheet.CellSize+x, row*sheet.CellSize+y)&0x0f)
				}
			}
			s.SetTile(sheet.Coord{Row: row, Col: col}, t)
		}
	}

	return s, pal, nil
}
