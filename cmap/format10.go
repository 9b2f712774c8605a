package cmap

import "github.com/lxman/fontoutline/glyph"

// decodeFormat10 decodes a format 10 cmap subtable: the 32-bit analogue of
// format 6, a trimmed array covering a single contiguous range of codes.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap#format-10-trimmed-array
func decodeFormat10(data []byte, code2rune func(c int) rune) (Subtable, error) {
	if len(data) < 20 {
		return nil, errMalformedSubtable
	}

	startCharCode := uint32(data[12])<<24 | uint32(data[13])<<16 | uint32(data[14])<<8 | uint32(data[15])
	numChars := uint32(data[16])<<24 | uint32(data[17])<<16 | uint32(data[18])<<8 | uint32(data[19])
	if numChars > 1<<20 {
		return nil, errMalformedSubtable
	}

	glyphs := data[20:]
	if uint32(len(glyphs)) < numChars*2 {
		return nil, errMalformedSubtable
	}

	cmap := Format12{}
	for i := uint32(0); i < numChars; i++ {
		gid := uint16(glyphs[2*i])<<8 | uint16(glyphs[2*i+1])
		if gid != 0 {
			cmap[startCharCode+i] = glyph.ID(gid)
		}
	}
	return cmap, nil
}
