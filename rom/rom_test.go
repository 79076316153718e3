package rom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alttpx/linkshuffle/sheet"
	"github.com/alttpx/linkshuffle/snes"
)

func testROM() []byte {
	b := make([]byte, sheet.Link.MinROMSize)
	for i := range b {
		b[i] = byte(i*31 + i>>8)
	}
	copy(b[sheet.Link.HeaderOffset:], "ZELDANODENSETSU      ")
	return b
}

func TestLoadSaveRoundTrip(t *testing.T) {
	in := testROM()

	img, err := Load(in)
	require.NoError(t, err)

	out := img.Save(img.Sheet, img.Palettes)
	require.Len(t, out, len(in))

	// Only the checksum pair may differ from the input
	for i := range out {
		if i >= sheet.Link.HeaderOffset+0x1c && i < sheet.Link.HeaderOffset+0x20 {
			continue
		}
		if out[i] != in[i] {
			t.Fatalf("byte %#x changed from %#x to %#x", i, in[i], out[i])
		}
	}

	assert.True(t, snes.Valid(out, sheet.Link.HeaderOffset))
}

func TestSaveResidualPreserved(t *testing.T) {
	in := testROM()

	img, err := Load(in)
	require.NoError(t, err)

	// Replace the whole sheet and palettes with new content
	s := new(sheet.Sheet)
	var p sheet.PaletteSet
	for i := range p.Green {
		p.Green[i] = sheet.Color(i + 1)
	}

	out := img.Save(s, p)

	inRegion := func(i, off, n int) bool { return i >= off && i < off+n }
	for i := range out {
		switch {
		case inRegion(i, sheet.Link.SheetOffset, sheet.SheetBytes),
			inRegion(i, sheet.Link.MailOffset, sheet.PaletteBytes-4),
			inRegion(i, sheet.Link.GlovesOffset, 4),
			inRegion(i, sheet.Link.HeaderOffset+0x1c, 4):
		default:
			if out[i] != in[i] {
				t.Fatalf("residual byte %#x changed from %#x to %#x", i, in[i], out[i])
			}
		}
	}

	assert.True(t, snes.Valid(out, sheet.Link.HeaderOffset))

	reloaded, err := Load(out)
	require.NoError(t, err)
	assert.Equal(t, s, reloaded.Sheet)
	assert.Equal(t, p, reloaded.Palettes)
}

func TestLoadDoesNotAliasInput(t *testing.T) {
	in := testROM()

	img, err := Load(in)
	require.NoError(t, err)

	in[sheet.Link.SheetOffset]++
	out := img.Save(img.Sheet, img.Palettes)
	assert.NotEqual(t, in[sheet.Link.SheetOffset], out[sheet.Link.SheetOffset])
}

func TestLoadShort(t *testing.T) {
	_, err := Load(make([]byte, 0x1000))
	assert.IsType(t, &sheet.FormatError{}, err)
}

func TestLoadWrongTitle(t *testing.T) {
	b := testROM()
	copy(b[sheet.Link.HeaderOffset:], "SOME OTHER GAME      ")

	_, err := Load(b)
	assert.IsType(t, &sheet.FormatError{}, err)
}
