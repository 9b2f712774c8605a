package cmap

import (
	"github.com/lxman/fontoutline/glyph"
	"golang.org/x/exp/maps"
)

// Format12 represents a decoded format 12 cmap subtable: sequential groups
// mapping a contiguous range of codes to a contiguous range of glyph IDs.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap#format-12-segmented-coverage
type Format12 map[uint32]glyph.ID

func decodeFormat12(data []byte, code2rune func(c int) rune) (Subtable, error) {
	if code2rune != nil {
		return nil, errMalformedSubtable
	}

	if len(data) < 16 {
		return nil, errMalformedSubtable
	}

	nSegments := uint32(data[12])<<24 | uint32(data[13])<<16 | uint32(data[14])<<8 | uint32(data[15])
	if len(data) != 16+int(nSegments)*12 || nSegments > 1e6 {
		return nil, errMalformedSubtable
	}

	cmap := Format12{}

	var size uint32
	var prevEnd uint32
	for i := uint32(0); i < nSegments; i++ {
		base := 16 + i*12
		startCharCode := uint32(data[base])<<24 | uint32(data[base+1])<<16 | uint32(data[base+2])<<8 | uint32(data[base+3])
		endCharCode := uint32(data[base+4])<<24 | uint32(data[base+5])<<16 | uint32(data[base+6])<<8 | uint32(data[base+7])
		startGlyphID := uint32(data[base+8])<<24 | uint32(data[base+9])<<16 | uint32(data[base+10])<<8 | uint32(data[base+11])

		if (i > 0 && startCharCode <= prevEnd) ||
			endCharCode < startCharCode ||
			endCharCode == 0xFFFF_FFFF || // avoid integer overflow in the loop below
			startGlyphID > 0x10_FFFF ||
			startGlyphID+(endCharCode-startCharCode) > 0x10_FFFF {
			return nil, errMalformedSubtable
		}
		prevEnd = endCharCode

		size += endCharCode - startCharCode + 1
		if size > 65536 {
			// avoid excessive memory allocation from malformed subtables
			return nil, errMalformedSubtable
		}

		for c := startCharCode; c <= endCharCode; c++ {
			cmap[c] = glyph.ID(startGlyphID + c - startCharCode)
		}
	}

	return cmap, nil
}

// Lookup implements the Subtable interface.
func (cmap Format12) Lookup(code rune) glyph.ID {
	return cmap[uint32(code)]
}

// CodeRange returns the smallest and largest code point in the subtable.
func (cmap Format12) CodeRange() (low, high rune) {
	keys := maps.Keys(cmap)
	if len(keys) == 0 {
		return
	}
	low, high = rune(keys[0]), rune(keys[0])
	for _, c := range keys[1:] {
		cr := rune(c)
		if cr < low {
			low = cr
		}
		if cr > high {
			high = cr
		}
	}
	return
}
