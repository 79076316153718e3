/*
Package snes implements the checksum and complement pair stored in the
internal header of a Super Nintendo cartridge image.

The checksum is the 16-bit sum of every byte of the image computed as if
the complement field held 0xffff and the checksum field zero; the
complement is the bitwise inverse of the checksum so the two fields
always sum to 0xffff.
*/
package snes

import "encoding/binary"

// HeaderLoROM is the internal header offset for LoROM cartridges.
const HeaderLoROM = 0x7fc0

const (
	titleLength      = 21
	complementOffset = 0x1c
	checksumOffset   = 0x1e
)

// Title returns the cartridge title recorded in the header.
func Title(rom []byte, header int) string {
	return string(rom[header : header+titleLength])
}

// Checksum computes the header checksum of rom with the checksum fields
// normalized.
func Checksum(rom []byte, header int) uint16 {
	var sum uint16
	for i, b := range rom {
		switch i {
		case header + complementOffset, header + complementOffset + 1:
			sum += 0xff
		case header + checksumOffset, header + checksumOffset + 1:
		default:
			sum += uint16(b)
		}
	}
	return sum
}

// Fix recomputes the checksum of rom and writes the complement and
// checksum fields in place.
func Fix(rom []byte, header int) {
	sum := Checksum(rom, header)
	binary.LittleEndian.PutUint16(rom[header+complementOffset:], ^sum)
	binary.LittleEndian.PutUint16(rom[header+checksumOffset:], sum)
}

// Valid reports whether the stored checksum fields are consistent with
// the image contents.
func Valid(rom []byte, header int) bool {
	complement := binary.LittleEndian.Uint16(rom[header+complementOffset:])
	checksum := binary.LittleEndian.Uint16(rom[header+checksumOffset:])
	return checksum+complement == 0xffff && checksum == Checksum(rom, header)
}
