package sheet

// Pool names one disjoint group of cells that shuffles as a unit.
type Pool string

// The pools of the Link spritesheet layout.
const (
	PoolHead  Pool = "head"
	PoolBody  Pool = "body"
	PoolBunny Pool = "bunny"
)

// Layout is the declarative description of one spritesheet convention:
// where the sheet and palette regions sit inside a cartridge image,
// what the cartridge must look like, and which grid cells belong to
// each pool. Cells outside every pool are reserved and never shuffled.
type Layout struct {
	SheetOffset  int
	MailOffset   int
	GlovesOffset int
	HeaderOffset int
	MinROMSize   int
	Title        string

	Head  []Coord
	Body  []Coord
	Bunny []Coord
}

// Pool returns the cells of the named pool in their fixed order.
func (l *Layout) Pool(p Pool) []Coord {
	switch p {
	case PoolHead:
		return l.Head
	case PoolBody:
		return l.Body
	case PoolBunny:
		return l.Bunny
	}
	return nil
}

// Pools returns every named pool of the layout.
func (l *Layout) Pools() map[Pool][]Coord {
	return map[Pool][]Coord{
		PoolHead:  l.Head,
		PoolBody:  l.Body,
		PoolBunny: l.Bunny,
	}
}

func row(r, from, to int) []Coord {
	cells := make([]Coord, 0, to-from+1)
	for c := from; c <= to; c++ {
		cells = append(cells, Coord{r, c})
	}
	return cells
}

func cells(groups ...[]Coord) []Coord {
	var all []Coord
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}

// Link is the layout of Link's spritesheet in the Japanese 1.0
// cartridge. The sheet lives at 0x80000, the mail palettes at 0xdd308
// and the glove colors at 0xdedf5; the internal header sits at the
// LoROM location.
var Link = Layout{
	SheetOffset:  0x80000,
	MailOffset:   0xdd308,
	GlovesOffset: 0xdedf5,
	HeaderOffset: 0x7fc0,
	MinROMSize:   0x100000,
	Title:        "ZELDANODENSETSU",

	Head: cells(
		row(0, 0, 7),
		[]Coord{{1, 7}},
		[]Coord{{4, 2}, {4, 3}, {4, 4}, {4, 7}},
		[]Coord{{6, 5}, {6, 6}},
		[]Coord{{10, 3}, {10, 4}, {10, 5}},
		[]Coord{{11, 5}, {11, 6}, {11, 7}},
		[]Coord{{20, 0}, {20, 1}, {20, 2}},
		[]Coord{{23, 1}},
		[]Coord{{25, 0}, {25, 1}, {25, 3}},
	),

	Body: cells(
		row(1, 0, 6),
		row(2, 0, 7),
		row(3, 0, 7),
		[]Coord{{4, 0}, {4, 1}},
		[]Coord{{5, 5}, {5, 6}, {5, 7}},
		[]Coord{{6, 7}},
		[]Coord{{8, 0}, {8, 1}, {8, 2}},
		[]Coord{{11, 3}, {11, 4}},
		row(12, 0, 7),
		row(13, 0, 7),
		row(14, 0, 7),
		row(15, 1, 7),
		row(16, 0, 7),
		row(17, 3, 7),
		row(18, 3, 7),
		row(19, 3, 7),
		row(20, 3, 7),
		row(21, 0, 7),
		row(22, 0, 7),
		[]Coord{{23, 0}},
		row(23, 2, 7),
		row(24, 0, 5),
		[]Coord{{25, 4}},
	),

	Bunny: cells(
		row(26, 0, 7),
		row(27, 0, 7),
	),
}
