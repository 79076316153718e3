package linkshuffle

import (
	"bytes"

	"github.com/alttpx/linkshuffle/rom"
	"github.com/alttpx/linkshuffle/sheet"
	"github.com/alttpx/linkshuffle/shuffle"
	"github.com/alttpx/linkshuffle/zspr"
)

// Kind selects a container format.
type Kind int

const (
	// KindROM is a full cartridge image.
	KindROM Kind = iota
	// KindZSPR is a standalone ZSPR sprite file.
	KindZSPR
)

var zsprMagic = []byte("ZSPR")

// DetectKind determines the container format from its leading bytes.
func DetectKind(b []byte) Kind {
	if len(b) >= len(zsprMagic) && bytes.Equal(b[:len(zsprMagic)], zsprMagic) {
		return KindZSPR
	}
	return KindROM
}

// source is one decoded input container. The cartridge image is kept
// around so that cartridge output can reproduce the untouched regions.
type source struct {
	sprite shuffle.Sprite
	rom    *rom.Image
	file   *zspr.File
}

func decodeSource(b []byte) (*source, error) {
	switch DetectKind(b) {
	case KindZSPR:
		f, err := zspr.Decode(b)
		if err != nil {
			return nil, err
		}
		return &source{
			sprite: shuffle.Sprite{Sheet: f.Sheet, Palettes: f.Palettes},
			file:   f,
		}, nil
	default:
		img, err := rom.Load(b)
		if err != nil {
			return nil, err
		}
		return &source{
			sprite: shuffle.Sprite{Sheet: img.Sheet, Palettes: img.Palettes},
			rom:    img,
		}, nil
	}
}

// Aux draws up to n auxiliary sprites from the catalog.
func (s *Shuffler) Aux(n int) ([][]byte, error) {
	return s.catalog.Random(n)
}

// Run decodes the primary and auxiliary containers, shuffles according
// to the policy and re-encodes into the requested output kind. On any
// error no output is produced.
func (s *Shuffler) Run(primary []byte, aux [][]byte, policy shuffle.Policy, out Kind) ([]byte, error) {
	if err := policy.Check(len(aux)); err != nil {
		return nil, err
	}

	src, err := decodeSource(primary)
	if err != nil {
		return nil, err
	}
	if out == KindROM && src.rom == nil {
		return nil, shuffle.ConfigErrorf("shuffle: cartridge output requires a cartridge source")
	}

	auxSprites := make([]shuffle.Sprite, 0, len(aux))
	for _, b := range aux {
		a, err := decodeSource(b)
		if err != nil {
			return nil, err
		}
		auxSprites = append(auxSprites, a.sprite)
	}

	s.logger.Printf("shuffling with policy %q, %d auxiliary sprites\n", policy, len(auxSprites))

	result, err := shuffle.Shuffle(s.rnd, &sheet.Link, src.sprite, auxSprites, policy)
	if err != nil {
		return nil, err
	}

	switch out {
	case KindZSPR:
		f := &zspr.File{
			Sheet:       result.Sheet,
			Palettes:    result.Palettes,
			Name:        "Shuffled Link",
			Author:      "linkshuffle",
			AuthorShort: "linkshuffle",
		}
		if src.file != nil {
			f.Name = src.file.Name
			f.Author = src.file.Author
			f.AuthorShort = src.file.AuthorShort
		}
		return f.Encode(), nil
	default:
		return src.rom.Save(result.Sheet, result.Palettes), nil
	}
}

// Convert re-emits a container as the other kind without shuffling.
// Cartridge output needs a base cartridge image to embed the sprite in.
func (s *Shuffler) Convert(in, base []byte, out Kind) ([]byte, error) {
	src, err := decodeSource(in)
	if err != nil {
		return nil, err
	}

	switch out {
	case KindZSPR:
		f := &zspr.File{
			Sheet:       src.sprite.Sheet,
			Palettes:    src.sprite.Palettes,
			Name:        "Converted Link",
			Author:      "linkshuffle",
			AuthorShort: "linkshuffle",
		}
		if src.file != nil {
			f.Name = src.file.Name
			f.Author = src.file.Author
			f.AuthorShort = src.file.AuthorShort
		}
		return f.Encode(), nil
	default:
		img := src.rom
		if img == nil {
			if base == nil {
				return nil, shuffle.ConfigErrorf("shuffle: cartridge output requires a base cartridge image")
			}
			if img, err = rom.Load(base); err != nil {
				return nil, err
			}
		}
		return img.Save(src.sprite.Sheet, src.sprite.Palettes), nil
	}
}
