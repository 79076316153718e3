package zspr

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alttpx/linkshuffle/sheet"
)

func testFile(t *testing.T) *File {
	region := make([]byte, sheet.SheetBytes)
	for i := range region {
		region[i] = byte(i * 11)
	}
	s, err := sheet.DecodeSheet(region, 0)
	require.NoError(t, err)

	var p sheet.PaletteSet
	for i := range p.Green {
		p.Green[i] = sheet.Color(0x1000 + i)
		p.Bunny[i] = sheet.Color(0x2000 + i)
	}
	p.Gloves[0] = 0x1234
	p.Gloves[1] = 0x4321

	return &File{
		Sheet:       s,
		Palettes:    p,
		Name:        "Lördag Link",
		Author:      "Åsa",
		AuthorShort: "asa",
	}
}

func TestRoundTrip(t *testing.T) {
	f := testFile(t)

	b := f.Encode()
	g, err := Decode(b)
	require.NoError(t, err)

	assert.Equal(t, f, g)
}

func TestEncodeDeterministic(t *testing.T) {
	f := testFile(t)
	assert.Equal(t, f.Encode(), f.Encode())
}

func TestChecksumField(t *testing.T) {
	b := testFile(t).Encode()

	var sum uint16
	for i, c := range b {
		if i >= checksumOffset && i < checksumOffset+4 {
			continue
		}
		sum += uint16(c)
	}

	field := binary.LittleEndian.Uint32(b[checksumOffset:])
	assert.Equal(t, uint32(sum), field&0xffff)
	assert.Equal(t, uint32(0xffff-sum), field>>16)
}

func TestDecodeBadMagic(t *testing.T) {
	b := testFile(t).Encode()
	copy(b, "NOPE")

	_, err := Decode(b)
	assert.IsType(t, &sheet.FormatError{}, err)
}

func TestDecodeBadVersion(t *testing.T) {
	b := testFile(t).Encode()
	b[4] = 2

	_, err := Decode(b)
	assert.IsType(t, &sheet.FormatError{}, err)
}

func TestDecodeBadChecksum(t *testing.T) {
	b := testFile(t).Encode()
	b[len(b)-1]++

	_, err := Decode(b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checksum")
}

func TestDecodeTruncated(t *testing.T) {
	b := testFile(t).Encode()

	for _, n := range []int{0, 3, 28, len(b) / 2} {
		_, err := Decode(b[:n])
		assert.IsType(t, &sheet.FormatError{}, err, "length %d", n)
	}
}
