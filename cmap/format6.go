package cmap

import "github.com/lxman/fontoutline/glyph"

// decodeFormat6 decodes a format 6 cmap subtable: a trimmed table mapping a
// single contiguous range of codes to glyph IDs.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap#format-6-trimmed-table-mapping
func decodeFormat6(data []byte, code2rune func(c int) rune) (Subtable, error) {
	if code2rune == nil {
		code2rune = unicode
	}

	if len(data) < 10 {
		return nil, errMalformedSubtable
	}
	firstCode := int(data[6])<<8 | int(data[7])
	count := int(data[8])<<8 | int(data[9])

	// some fonts have a trailing 0x0000 after the array
	if len(data) == 10+2*count+2 && data[10+2*count] == 0 && data[10+2*count+1] == 0 {
		data = data[:10+2*count]
	}

	if len(data) != 10+2*count {
		return nil, errMalformedSubtable
	}
	data = data[10:]

	res := make(Format4)
	for i := 0; i < count; i++ {
		gid := uint16(data[2*i])<<8 | uint16(data[2*i+1])
		if gid != 0 {
			res[uint16(code2rune(i+firstCode))] = glyph.ID(gid)
		}
	}
	return res, nil
}
