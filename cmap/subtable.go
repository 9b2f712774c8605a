package cmap

import (
	"github.com/lxman/fontoutline/glyph"
	"github.com/lxman/fontoutline/mac"
)

// Subtable represents a decoded cmap subtable.
type Subtable interface {
	// Lookup returns the glyph index for the given character code.
	// If the code is not mapped, Lookup returns 0 (the ".notdef" glyph).
	Lookup(r rune) glyph.ID

	// CodeRange returns the smallest and largest code point in the subtable.
	CodeRange() (low, high rune)
}

// Approximate real-world distribution of cmap subtable formats, by format:
//
//	4  segment mapping to delta values (most common, BMP)
//	6  trimmed table mapping
//	12 segmented coverage (full Unicode)
//	0  byte encoding table (legacy Macintosh)
//	14 Unicode variation sequences (parsed, not resolved at this layer)
//	2  high-byte mapping through table (legacy CJK)
//	10 trimmed array
//	8  mixed 16-bit and 32-bit coverage
//	13 many-to-one range mappings
var decoders = map[uint16]func([]byte, func(int) rune) (Subtable, error){
	0:  decodeFormat0,
	2:  notImplemented, // legacy CJK sub-header format, rarely exercised
	4:  decodeFormat4,
	6:  decodeFormat6,
	8:  notImplemented,
	10: decodeFormat10,
	12: decodeFormat12,
	13: decodeFormat13,
	14: notImplemented, // variation sequences are not resolved at this layer
}

func notImplemented([]byte, func(int) rune) (Subtable, error) {
	return nil, errUnsupportedCmapFormat
}

func unicode(code int) rune {
	return rune(code)
}

func macRoman(code int) rune {
	return mac.DecodeOne(byte(code))
}
