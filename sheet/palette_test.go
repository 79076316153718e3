package sheet

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteSetRoundTrip(t *testing.T) {
	b := make([]byte, PaletteBytes)
	for i := range b {
		b[i] = byte(i * 3)
	}
	// Keep every packed value inside 15 bits
	for i := 1; i < len(b); i += 2 {
		b[i] &= 0x7f
	}

	p, err := DecodePaletteSet(b)
	require.NoError(t, err)

	assert.Equal(t, b, p.Encode())
}

func TestDecodePaletteSetShort(t *testing.T) {
	_, err := DecodePaletteSet(make([]byte, PaletteBytes-1))
	assert.IsType(t, &FormatError{}, err)
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := Color(0x7fff).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
	assert.Equal(t, uint32(0xffff), a)

	r, g, b, _ = Color(0x001f).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
}

func TestFromColor(t *testing.T) {
	assert.Equal(t, Color(0x001f), FromColor(color.RGBA{0xff, 0, 0, 0xff}))
	assert.Equal(t, Color(0x03e0), FromColor(color.RGBA{0, 0xff, 0, 0xff}))
	assert.Equal(t, Color(0x7c00), FromColor(color.RGBA{0, 0, 0xff, 0xff}))
}

func TestFromColorRoundTrip(t *testing.T) {
	for _, c := range []Color{0, 0x7fff, 0x1234, 0x5a5a & 0x7fff} {
		assert.Equal(t, c, FromColor(c))
	}
}
