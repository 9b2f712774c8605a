package cmap

import "github.com/lxman/fontoutline/glyph"

// Format13 represents a decoded format 13 cmap subtable: many-to-one range
// mappings, where every code in a group's range maps to the same glyph ID.
// This is used by fonts such as the "last resort" font, where a single
// fallback glyph covers a huge range of unassigned codepoints.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap#format-13-many-to-one-range-mappings
type Format13 []format13Group

type format13Group struct {
	startCharCode uint32
	endCharCode   uint32
	glyphID       glyph.ID
}

func decodeFormat13(data []byte, code2rune func(c int) rune) (Subtable, error) {
	if len(data) < 16 {
		return nil, errMalformedSubtable
	}

	nGroups := uint32(data[12])<<24 | uint32(data[13])<<16 | uint32(data[14])<<8 | uint32(data[15])
	if len(data) != 16+int(nGroups)*12 || nGroups > 1e6 {
		return nil, errMalformedSubtable
	}

	var cmap Format13
	var prevEnd uint32
	for i := uint32(0); i < nGroups; i++ {
		base := 16 + i*12
		startCharCode := uint32(data[base])<<24 | uint32(data[base+1])<<16 | uint32(data[base+2])<<8 | uint32(data[base+3])
		endCharCode := uint32(data[base+4])<<24 | uint32(data[base+5])<<16 | uint32(data[base+6])<<8 | uint32(data[base+7])
		glyphID := uint32(data[base+8])<<24 | uint32(data[base+9])<<16 | uint32(data[base+10])<<8 | uint32(data[base+11])

		if (i > 0 && startCharCode <= prevEnd) || endCharCode < startCharCode || glyphID > 0xFFFF {
			return nil, errMalformedSubtable
		}
		prevEnd = endCharCode

		cmap = append(cmap, format13Group{
			startCharCode: startCharCode,
			endCharCode:   endCharCode,
			glyphID:       glyph.ID(glyphID),
		})
	}

	return cmap, nil
}

// Lookup implements the Subtable interface.
func (cmap Format13) Lookup(r rune) glyph.ID {
	c := uint32(r)
	for _, g := range cmap {
		if c >= g.startCharCode && c <= g.endCharCode {
			return g.glyphID
		}
	}
	return 0
}

// CodeRange returns the smallest and largest code point in the subtable.
func (cmap Format13) CodeRange() (low, high rune) {
	if len(cmap) == 0 {
		return
	}
	low = rune(cmap[0].startCharCode)
	high = rune(cmap[0].endCharCode)
	for _, g := range cmap[1:] {
		if rune(g.startCharCode) < low {
			low = rune(g.startCharCode)
		}
		if rune(g.endCharCode) > high {
			high = rune(g.endCharCode)
		}
	}
	return
}
