/*
Package zspr implements the ZSPR sprite container.

The file starts with a fixed header ("ZSPR" magic, a version byte, a
32-bit checksum and an offset table locating the sprite and palette
blocks), followed by a UTF-16 sprite name, a UTF-16 author name, an
ASCII author handle, the 0x7000 byte spritesheet and the 0x7c byte
palette block. The checksum field holds the 16-bit sum of every byte of
the file (computed with the field itself zeroed) in its low half and
the complement to 0xffff in its high half.
*/
package zspr

import (
	"bytes"
	"encoding/binary"
	"unicode/utf16"

	"github.com/alttpx/linkshuffle/sheet"
)

const (
	// Version is the only container revision in circulation.
	Version = 1

	// TypeLink identifies a playable character sprite.
	TypeLink = 1

	headerSize     = 29
	magic          = "ZSPR"
	checksumOffset = 5
)

// File is a decoded ZSPR container.
type File struct {
	Sheet    *sheet.Sheet
	Palettes sheet.PaletteSet

	Name        string
	Author      string
	AuthorShort string
}

func checksum(b []byte) uint32 {
	var sum uint16
	for i, c := range b {
		if i >= checksumOffset && i < checksumOffset+4 {
			continue
		}
		sum += uint16(c)
	}
	return uint32(sum) | uint32(0xffff-sum)<<16
}

func readUTF16(b []byte) (string, int, error) {
	var units []uint16
	for i := 0; ; i += 2 {
		if i+2 > len(b) {
			return "", 0, sheet.FormatErrorf("zspr: unterminated string")
		}
		u := binary.LittleEndian.Uint16(b[i:])
		if u == 0 {
			return string(utf16.Decode(units)), i + 2, nil
		}
		units = append(units, u)
	}
}

func readASCII(b []byte) (string, int, error) {
	i := bytes.IndexByte(b, 0)
	if i < 0 {
		return "", 0, sheet.FormatErrorf("zspr: unterminated string")
	}
	return string(b[:i]), i + 1, nil
}

// Decode parses and verifies a ZSPR file.
func Decode(b []byte) (*File, error) {
	if len(b) < headerSize {
		return nil, sheet.FormatErrorf("zspr: file is %d bytes, need at least %d", len(b), headerSize)
	}
	if string(b[:4]) != magic {
		return nil, sheet.FormatErrorf("zspr: bad magic %q", b[:4])
	}
	if b[4] != Version {
		return nil, sheet.FormatErrorf("zspr: unsupported version %d", b[4])
	}
	if sum := binary.LittleEndian.Uint32(b[checksumOffset:]); sum != checksum(b) {
		return nil, sheet.FormatErrorf("zspr: checksum mismatch")
	}

	sheetOff := int(binary.LittleEndian.Uint32(b[9:]))
	sheetLen := int(binary.LittleEndian.Uint16(b[13:]))
	palOff := int(binary.LittleEndian.Uint32(b[15:]))
	palLen := int(binary.LittleEndian.Uint16(b[19:]))

	if sheetLen != sheet.SheetBytes || palLen != sheet.PaletteBytes {
		return nil, sheet.FormatErrorf("zspr: unexpected block lengths %#x/%#x", sheetLen, palLen)
	}
	if sheetOff < headerSize || sheetOff+sheetLen > len(b) || palOff < headerSize || palOff+palLen > len(b) {
		return nil, sheet.FormatErrorf("zspr: offset table points outside the file")
	}

	f := new(File)

	rest := b[headerSize:sheetOff]
	var n int
	var err error
	if f.Name, n, err = readUTF16(rest); err != nil {
		return nil, err
	}
	rest = rest[n:]
	if f.Author, n, err = readUTF16(rest); err != nil {
		return nil, err
	}
	rest = rest[n:]
	if f.AuthorShort, _, err = readASCII(rest); err != nil {
		return nil, err
	}

	if f.Sheet, err = sheet.DecodeSheet(b, sheetOff); err != nil {
		return nil, err
	}
	if f.Palettes, err = sheet.DecodePaletteSet(b[palOff : palOff+palLen]); err != nil {
		return nil, err
	}

	return f, nil
}

func writeUTF16(b *bytes.Buffer, s string) {
	for _, u := range utf16.Encode([]rune(s)) {
		var tmp [2]byte
		binary.LittleEndian.PutUint16(tmp[:], u)
		b.Write(tmp[:])
	}
	b.Write([]byte{0, 0})
}

// Encode serializes the file, filling in the offset table and checksum.
func (f *File) Encode() []byte {
	var names bytes.Buffer
	writeUTF16(&names, f.Name)
	writeUTF16(&names, f.Author)
	names.WriteString(f.AuthorShort)
	names.WriteByte(0)

	sheetOff := headerSize + names.Len()
	palOff := sheetOff + sheet.SheetBytes

	b := new(bytes.Buffer)
	b.WriteString(magic)
	b.WriteByte(Version)
	binary.Write(b, binary.LittleEndian, uint32(0)) // checksum, filled below
	binary.Write(b, binary.LittleEndian, uint32(sheetOff))
	binary.Write(b, binary.LittleEndian, uint16(sheet.SheetBytes))
	binary.Write(b, binary.LittleEndian, uint32(palOff))
	binary.Write(b, binary.LittleEndian, uint16(sheet.PaletteBytes))
	binary.Write(b, binary.LittleEndian, uint16(TypeLink))
	b.Write(make([]byte, 6)) // reserved

	b.Write(names.Bytes())
	b.Write(f.Sheet.Encode())
	b.Write(f.Palettes.Encode())

	out := b.Bytes()
	binary.LittleEndian.PutUint32(out[checksumOffset:], checksum(out))
	return out
}
