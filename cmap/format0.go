package cmap

import (
	"github.com/lxman/fontoutline/glyph"
)

// decodeFormat0 decodes a format 0 cmap subtable.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap#format-0-byte-encoding-table
func decodeFormat0(data []byte, code2rune func(c int) rune) (Subtable, error) {
	data = data[6:]
	if len(data) != 256 {
		return nil, errMalformedSubtable
	}

	res := &Format0{}
	copy(res.Data[:], data)

	return res, nil
}

// Format0 is a 256-entry byte-encoding cmap subtable.
type Format0 struct {
	Data [256]byte
}

// Lookup returns the glyph index for the given rune.
func (cmap *Format0) Lookup(r rune) glyph.ID {
	if r < 0 || r > 255 {
		return 0
	}
	return glyph.ID(cmap.Data[r])
}

// CodeRange returns the smallest and largest code point in the subtable.
func (cmap *Format0) CodeRange() (low rune, high rune) {
	return 0, 255
}
