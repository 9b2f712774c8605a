// Package hmtx decodes the sfnt 'hmtx' table: the per-glyph advance widths
// and left side bearings. The table is compressed — only the first
// numOfLongHorMetrics glyphs carry an explicit advance width, and every
// glyph after that inherits the last one.
package hmtx

import (
	"encoding/binary"

	"github.com/lxman/fontoutline/internal/funit"
	"github.com/lxman/fontoutline/internal/sfnterr"
)

// Info holds the decoded per-glyph horizontal metrics, one entry per glyph.
type Info struct {
	Width []funit.Int16
	LSB   []funit.Int16
}

// Decode decodes the 'hmtx' table. numOfLongHorMetrics comes from the 'hhea'
// table and numGlyphs from the 'maxp' table.
func Decode(data []byte, numOfLongHorMetrics uint16, numGlyphs int) (*Info, error) {
	numLong := int(numOfLongHorMetrics)
	if numLong == 0 || numLong > numGlyphs {
		return nil, sfnterr.Invalid("sfnt/hmtx", "invalid numOfLongHorMetrics")
	}

	needLong := numLong * 4
	if len(data) < needLong {
		return nil, sfnterr.Invalid("sfnt/hmtx", "table too short for long metrics")
	}

	numBareLSB := numGlyphs - numLong
	needBare := numBareLSB * 2
	if len(data) < needLong+needBare {
		return nil, sfnterr.Invalid("sfnt/hmtx", "table too short for bare LSBs")
	}

	info := &Info{
		Width: make([]funit.Int16, numGlyphs),
		LSB:   make([]funit.Int16, numGlyphs),
	}

	r := data
	var lastWidth funit.Int16
	for i := 0; i < numLong; i++ {
		w := binary.BigEndian.Uint16(r[i*4:])
		lsb := int16(binary.BigEndian.Uint16(r[i*4+2:]))
		lastWidth = funit.Int16(w)
		info.Width[i] = lastWidth
		info.LSB[i] = funit.Int16(lsb)
	}

	bare := r[needLong:]
	for i := 0; i < numBareLSB; i++ {
		lsb := int16(binary.BigEndian.Uint16(bare[i*2:]))
		info.Width[numLong+i] = lastWidth
		info.LSB[numLong+i] = funit.Int16(lsb)
	}

	return info, nil
}

// AdvanceWidth returns the advance width for gid, clamping to the last
// explicit entry if gid is out of range for a malformed or hand-built table.
func (info *Info) AdvanceWidth(gid int) funit.Int16 {
	if gid < 0 {
		gid = 0
	}
	if gid >= len(info.Width) {
		gid = len(info.Width) - 1
	}
	if gid < 0 {
		return 0
	}
	return info.Width[gid]
}
