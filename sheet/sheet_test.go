package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegion() []byte {
	b := make([]byte, SheetBytes)
	for i := range b {
		b[i] = byte(i*7 + i>>8)
	}
	return b
}

func TestSheetRoundTrip(t *testing.T) {
	b := testRegion()

	s, err := DecodeSheet(b, 0)
	require.NoError(t, err)

	assert.Equal(t, b, s.Encode())
}

func TestSheetRoundTripOffset(t *testing.T) {
	region := testRegion()
	b := make([]byte, 0x100+SheetBytes)
	copy(b[0x100:], region)

	s, err := DecodeSheet(b, 0x100)
	require.NoError(t, err)

	assert.Equal(t, region, s.Encode())
}

func TestDecodeSheetShort(t *testing.T) {
	_, err := DecodeSheet(make([]byte, SheetBytes-1), 0)
	assert.IsType(t, &FormatError{}, err)

	_, err = DecodeSheet(make([]byte, SheetBytes), 1)
	assert.IsType(t, &FormatError{}, err)
}

func TestTilePixels(t *testing.T) {
	var tile Tile
	for y := 0; y < CellSize; y++ {
		for x := 0; x < CellSize; x++ {
			tile.SetPixel(x, y, byte(x+y)&0x0f)
		}
	}
	for y := 0; y < CellSize; y++ {
		for x := 0; x < CellSize; x++ {
			assert.Equal(t, byte(x+y)&0x0f, tile.PixelAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestTileCopies(t *testing.T) {
	s, err := DecodeSheet(testRegion(), 0)
	require.NoError(t, err)

	c := Coord{Row: 3, Col: 5}
	tile := s.Tile(c)
	tile.SetPixel(0, 0, tile.PixelAt(0, 0)^0x0f)

	assert.NotEqual(t, tile, s.Tile(c))
}

func TestSheetClone(t *testing.T) {
	s, err := DecodeSheet(testRegion(), 0)
	require.NoError(t, err)

	dup := s.Clone()
	dup.SetTile(Coord{}, Tile{})

	assert.NotEqual(t, s.Tile(Coord{}), dup.Tile(Coord{}))
}
