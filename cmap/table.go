// Package cmap decodes the sfnt "cmap" table: the directory of per-platform
// subtables mapping character codes to glyph indices, and the individual
// subtable formats themselves.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap
package cmap

import (
	"sort"

	"github.com/lxman/fontoutline/internal/sfnterr"
	"golang.org/x/exp/slices"
)

// Key selects a subtable of a cmap table.
type Key struct {
	PlatformID uint16
	EncodingID uint16
	Language   uint16
}

// Table holds the raw, undecoded bytes of every subtable in a "cmap" table,
// keyed by platform/encoding/language.
type Table map[Key][]byte

// Decode parses the subtable directory of a "cmap" table. The returned
// subtable byte slices are only checked for a plausible length and a known
// format tag; use Get to actually decode one.
func Decode(data []byte) (Table, error) {
	const minLength = 10 // length of an empty format 6 subtable

	if len(data) < 4 {
		return nil, sfnterr.Invalid("sfnt/cmap", "table too short")
	}
	version := uint16(data[0])<<8 | uint16(data[1])
	if version != 0 {
		return nil, sfnterr.Unsupported("sfnt/cmap", "table version")
	}
	numTables := int(data[2])<<8 | int(data[3])
	if len(data) < 4+8*numTables {
		return nil, sfnterr.Invalid("sfnt/cmap", "truncated subtable directory")
	}

	endOfHeader := uint32(4 + 8*numTables)
	endOfData := uint32(len(data))

	type seg struct {
		start, end uint32
	}
	var segs []seg

	res := make(Table)
	for i := 0; i < numTables; i++ {
		platformID := uint16(data[4+i*8])<<8 | uint16(data[5+i*8])
		encodingID := uint16(data[6+i*8])<<8 | uint16(data[7+i*8])

		o := uint32(data[8+i*8])<<24 |
			uint32(data[9+i*8])<<16 |
			uint32(data[10+i*8])<<8 |
			uint32(data[11+i*8])
		if o < endOfHeader || o > endOfData-minLength {
			return nil, sfnterr.Invalid("sfnt/cmap", "subtable offset out of range")
		}

		var language uint16
		var length uint32
		format := uint16(data[o])<<8 | uint16(data[o+1])
		checkLength := uint32(minLength)
		switch format {
		case 0, 2, 4, 6:
			length = uint32(data[o+2])<<8 | uint32(data[o+3])
			language = uint16(data[o+4])<<8 | uint16(data[o+5])
		case 8, 10, 12, 13:
			checkLength = 12
			if o > endOfData-checkLength {
				return nil, sfnterr.Invalid("sfnt/cmap", "subtable offset out of range")
			}
			length = uint32(data[o+4])<<24 |
				uint32(data[o+5])<<16 |
				uint32(data[o+6])<<8 |
				uint32(data[o+7])
			language = uint16(data[o+10])<<8 | uint16(data[o+11])
		case 14:
			length = uint32(data[o+2])<<24 |
				uint32(data[o+3])<<16 |
				uint32(data[o+4])<<8 |
				uint32(data[o+5])
		default:
			return nil, sfnterr.Unsupported("sfnt/cmap", "subtable format")
		}
		if length < checkLength || length > endOfData-o {
			return nil, sfnterr.Invalid("sfnt/cmap", "subtable length out of range")
		}

		if platformID != 1 {
			language = 0
		}

		// subtables must be either disjoint or byte-identical
		idx := sort.Search(len(segs), func(i int) bool {
			return o <= segs[i].start
		})
		if idx == len(segs) || o != segs[idx].start {
			if idx > 0 && o < segs[idx-1].end ||
				idx < len(segs) && o+length > segs[idx].start {
				return nil, sfnterr.Invalid("sfnt/cmap", "overlapping subtables")
			}
			segs = slices.Insert(segs, idx, seg{o, o + length})
		}

		res[Key{PlatformID: platformID, EncodingID: encodingID, Language: language}] = data[o : o+length]
	}

	return res, nil
}

// Get decodes the subtable stored under key.
func (ss Table) Get(key Key) (Subtable, error) {
	data, ok := ss[key]
	if !ok {
		return nil, sfnterr.Invalid("sfnt/cmap", "no such subtable")
	}

	code2rune := unicode
	if key.PlatformID == 1 {
		if key.EncodingID != 0 {
			return nil, sfnterr.Unsupported("sfnt/cmap", "non-Roman Macintosh encoding")
		}
		code2rune = macRoman
	}

	format := uint16(data[0])<<8 | uint16(data[1])
	decode, ok := decoders[format]
	if !ok {
		return nil, sfnterr.Unsupported("sfnt/cmap", "subtable format")
	}
	// the 32-bit formats store Unicode scalar values directly and have no
	// use for a code2rune translation
	switch format {
	case 8, 10, 12, 13:
		return decode(data, nil)
	}
	return decode(data, code2rune)
}

// preferredOrder lists (platformID, encodingID) pairs in order of
// preference for GetBest: full Unicode first, then the BMP-only and legacy
// encodings, in decreasing likelihood of covering the glyph repertoire.
var preferredOrder = []Key{
	{PlatformID: 3, EncodingID: 10},
	{PlatformID: 0, EncodingID: 4},
	{PlatformID: 0, EncodingID: 6},
	{PlatformID: 3, EncodingID: 1},
	{PlatformID: 0, EncodingID: 3},
	{PlatformID: 0, EncodingID: 2},
	{PlatformID: 0, EncodingID: 1},
	{PlatformID: 0, EncodingID: 0},
}

// GetBest selects and decodes the subtable most likely to give the widest
// and most standard character coverage.
func (ss Table) GetBest() (Subtable, error) {
	for _, pref := range preferredOrder {
		for key := range ss {
			if key.PlatformID == pref.PlatformID && key.EncodingID == pref.EncodingID {
				if sub, err := ss.Get(key); err == nil {
					return sub, nil
				}
			}
		}
	}
	for key := range ss {
		if sub, err := ss.Get(key); err == nil {
			return sub, nil
		}
	}
	return nil, sfnterr.Invalid("sfnt/cmap", "no usable subtable found")
}
