/*
Package shuffle permutes the tile pools of a Link spritesheet.

The engine is a pure function of its inputs: the source sprites are
never mutated and every random draw comes from an injected Source, so a
fixed Source yields a fixed result.
*/
package shuffle

import "github.com/alttpx/linkshuffle/sheet"

// Source supplies the random draws for a shuffle. *rand.Rand implements
// it.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Sprite pairs a decoded sheet with its palettes.
type Sprite struct {
	Sheet    *sheet.Sheet
	Palettes sheet.PaletteSet
}

func pick(rnd Source, primary Sprite, aux []Sprite) Sprite {
	n := rnd.Intn(len(aux) + 1)
	if n == 0 {
		return primary
	}
	return aux[n-1]
}

// Shuffle builds a new sprite from primary according to the policy.
// Cells outside every pool are copied from primary unchanged; bunny
// cells are only ever touched by bunny substitution, which replaces
// them and the bunny palette wholesale from one auxiliary sprite.
func Shuffle(rnd Source, layout *sheet.Layout, primary Sprite, aux []Sprite, p Policy) (Sprite, error) {
	if err := p.Check(len(aux)); err != nil {
		return Sprite{}, err
	}

	out := Sprite{
		Sheet:    primary.Sheet.Clone(),
		Palettes: primary.Palettes,
	}

	for _, bucket := range p.Buckets() {
		var coords []sheet.Coord
		for _, pool := range bucket {
			coords = append(coords, layout.Pool(pool)...)
		}

		switch p.multi {
		case MultiNone:
			tiles := make([]sheet.Tile, len(coords))
			for i, c := range coords {
				tiles[i] = primary.Sheet.Tile(c)
			}
			rnd.Shuffle(len(tiles), func(i, j int) {
				tiles[i], tiles[j] = tiles[j], tiles[i]
			})
			for i, c := range coords {
				out.Sheet.SetTile(c, tiles[i])
			}
		case MultiSimple:
			for _, c := range coords {
				out.Sheet.SetTile(c, pick(rnd, primary, aux).Sheet.Tile(c))
			}
		case MultiFull:
			for _, c := range coords {
				src := pick(rnd, primary, aux)
				out.Sheet.SetTile(c, src.Sheet.Tile(coords[rnd.Intn(len(coords))]))
			}
		}
	}

	if p.bunny {
		src := aux[rnd.Intn(len(aux))]
		for _, c := range layout.Pool(sheet.PoolBunny) {
			out.Sheet.SetTile(c, src.Sheet.Tile(c))
		}
		out.Palettes.Bunny = src.Palettes.Bunny
	}

	return out, nil
}
