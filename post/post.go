// Package post decodes the sfnt "post" table, which supplies per-glyph
// names (formats 1.0 and 2.0) plus the italic angle and underline metrics
// the Font Facade surfaces alongside the outlines.
// https://docs.microsoft.com/en-us/typography/opentype/spec/post
package post

import (
	"encoding/binary"
	"fmt"

	"github.com/lxman/fontoutline/internal/funit"
	"github.com/lxman/fontoutline/internal/sfnterr"
	"github.com/lxman/fontoutline/parser"
)

// Info contains the decoded contents of the "post" table.
type Info struct {
	ItalicAngle        float64 // degrees
	UnderlinePosition  funit.Int16
	UnderlineThickness funit.Int16
	IsFixedPitch       bool

	// Names holds one glyph name per glyph, or is nil if the table is
	// version 3.0 (no names present).
	Names []string
}

type postHeader struct {
	Version            uint32
	ItalicAngle        int32
	UnderlinePosition  funit.Int16
	UnderlineThickness funit.Int16
	IsFixedPitch       uint32
	MinMemType42       uint32
	MaxMemType42       uint32
	MinMemType1        uint32
	MaxMemType1        uint32
}

// Read decodes the "post" table from r.
func Read(r parser.ReadSeekSizer) (*Info, error) {
	p := parser.New(r)

	var hdr postHeader
	if err := binary.Read(p, binary.BigEndian, &hdr); err != nil {
		return nil, sfnterr.Invalid("sfnt/post", "table too short")
	}

	info := &Info{
		ItalicAngle:        float64(hdr.ItalicAngle) / 65536,
		UnderlinePosition:  hdr.UnderlinePosition,
		UnderlineThickness: hdr.UnderlineThickness,
		IsFixedPitch:       hdr.IsFixedPitch != 0,
	}

	switch hdr.Version {
	case 0x00010000:
		info.Names = macRoman

	case 0x00020000:
		glyphNameIndex, err := p.ReadUint16Slice()
		if err != nil {
			return nil, sfnterr.Invalid("sfnt/post", "truncated glyph name index")
		}
		numGlyphs := len(glyphNameIndex)

		var names []string
		info.Names = make([]string, numGlyphs)
		nMac := len(macRoman)
		for i, idx := range glyphNameIndex {
			idx := int(idx)
			if idx < nMac {
				info.Names[i] = macRoman[idx]
				continue
			}
			idx -= nMac
			for len(names) <= idx {
				l, err := p.ReadUint8()
				if err != nil {
					return nil, sfnterr.Invalid("sfnt/post", "truncated pascal string")
				}
				buf, err := p.ReadBytes(int(l))
				if err != nil {
					return nil, sfnterr.Invalid("sfnt/post", "truncated pascal string")
				}
				names = append(names, string(buf))
			}
			info.Names[i] = names[idx]
		}

	case 0x00030000:
		// no names present

	case 0x00040000:
		// Apple's format for use with non-Roman glyph naming schemes; we
		// don't decode the per-glyph index, only the header fields above.

	default:
		return nil, sfnterr.Unsupported("sfnt/post", fmt.Sprintf("table version 0x%08x", hdr.Version))
	}

	return info, nil
}
