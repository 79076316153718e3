package snes

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testROM() []byte {
	rom := make([]byte, 0x10000)
	for i := range rom {
		rom[i] = byte(i * 13)
	}
	return rom
}

func TestFix(t *testing.T) {
	rom := testROM()

	Fix(rom, HeaderLoROM)

	complement := binary.LittleEndian.Uint16(rom[HeaderLoROM+complementOffset:])
	checksum := binary.LittleEndian.Uint16(rom[HeaderLoROM+checksumOffset:])

	assert.Equal(t, uint16(0xffff), checksum+complement)
	assert.True(t, Valid(rom, HeaderLoROM))
}

func TestValidDetectsCorruption(t *testing.T) {
	rom := testROM()
	Fix(rom, HeaderLoROM)

	rom[0x100]++
	assert.False(t, Valid(rom, HeaderLoROM))
}

func TestChecksumIgnoresStoredFields(t *testing.T) {
	rom := testROM()
	sum := Checksum(rom, HeaderLoROM)

	Fix(rom, HeaderLoROM)
	assert.Equal(t, sum, Checksum(rom, HeaderLoROM))
}

func TestTitle(t *testing.T) {
	rom := testROM()
	copy(rom[HeaderLoROM:], "ZELDANODENSETSU      ")

	assert.Equal(t, "ZELDANODENSETSU      ", Title(rom, HeaderLoROM))
}
