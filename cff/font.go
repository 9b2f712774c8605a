// seehuhn.de/go/sfnt - a library for reading and writing font files
// Copyright (C) 2021  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cff

import (
	"fmt"
	"math"

	"github.com/lxman/fontoutline/glyph"
	"github.com/lxman/fontoutline/internal/funit"
	"github.com/lxman/fontoutline/internal/geom"
	"github.com/lxman/fontoutline/outline"
	"github.com/lxman/fontoutline/parser"
)

// Font stores a decoded CFF font: its FontInfo plus the glyph outlines.
type Font struct {
	*FontInfo
	*Outlines
}

// Outlines stores the glyph data of a CFF font.
//
// There are two cases:
//   - For a simple font, Encoding is used, and ROS, Gid2cid, and
//     FontMatrices must be nil. In this case FdSelect always returns 0.
//   - For CID-keyed fonts, ROS, Gid2cid, and FontMatrices are used, and
//     Encoding must be nil.
type Outlines struct {
	Glyphs []*Glyph

	// Private stores the private dictionaries of the font. The length of
	// this slice must be at least one; for a simple font it is exactly one.
	Private []*PrivateDict

	// FdSelect determines which private dictionary is used for each glyph.
	// For a simple font, this always returns 0.
	FdSelect FDSelectFn

	// Encoding lists the glyphs corresponding to the 256 one-byte character
	// codes in a simple font. The length of this slice must be 256, entries
	// for unused character codes must be set to 0.
	// For CIDFonts (where ROS != nil), Encoding must be nil.
	Encoding []glyph.ID

	// ROS specifies the character collection of the font, using Adobe's
	// Registry, Ordering, Supplement system. This must be non-nil if and
	// only if the font is a CIDFont.
	ROS *CIDSystemInfo

	// Gid2cid lists the character identifiers corresponding to the glyphs.
	// This is only present for CIDFonts, and encodes the information from
	// the charset table in the CFF font.
	Gid2cid []int32

	// FontMatrices lists the font matrix declared in each Font DICT of a
	// CID-keyed font's FDArray, indexed the same way as Private. It is
	// applied to a glyph's outline before FontInfo.FontMatrix. Only present
	// for CIDFonts.
	FontMatrices [][]float64
}

// IsCIDKeyed reports whether the font is a CID-keyed font.
func (o *Outlines) IsCIDKeyed() bool {
	return o.ROS != nil
}

// NumGlyphs returns the number of glyphs in the font.
func (o *Outlines) NumGlyphs() int {
	return len(o.Glyphs)
}

// BuiltinEncoding returns the built-in encoding of the font. For simple CFF
// fonts, the result is a slice of length 256. For CIDFonts, the result is
// nil.
func (o *Outlines) BuiltinEncoding() []string {
	if len(o.Encoding) != 256 {
		return nil
	}
	res := make([]string, 256)
	for i, gid := range o.Encoding {
		if gid <= 0 || int(gid) >= len(o.Glyphs) {
			res[i] = ".notdef"
		} else {
			res[i] = o.Glyphs[gid].Name
		}
	}
	return res
}

// GlyphOutline returns the outline of glyph gid, in font design units. CFF
// glyphs are implicitly closed, a property already baked into Glyph.Outline.
func (o *Outlines) GlyphOutline(gid glyph.ID) outline.GlyphOutline {
	if int(gid) >= len(o.Glyphs) || o.Glyphs[gid] == nil {
		return outline.GlyphOutline{}
	}
	return o.Glyphs[gid].Outline()
}

// GlyphBBox computes the bounding box of a glyph, after the matrix M has
// been applied to the glyph outline.
//
// If the glyph is blank, the zero rectangle is returned.
func (o *Outlines) GlyphBBox(M geom.Matrix, gid glyph.ID) geom.Rect {
	var bbox geom.Rect
	for _, c := range o.GlyphOutline(gid).Contours {
		for _, seg := range c {
			for _, p := range seg.Args {
				x, y := M.Apply(p.X, p.Y)
				bbox = bbox.Extend(x, y)
			}
		}
	}
	return bbox
}

// GlyphBBoxPDF computes the bounding box of a glyph in PDF glyph space units
// (1/1000th of a text space unit). The font matrix M is applied to the
// glyph outline first; for CID-keyed fonts, the glyph's own Font DICT
// matrix is applied before that.
//
// If the glyph is blank, the zero rectangle is returned.
func (o *Outlines) GlyphBBoxPDF(M geom.Matrix, gid glyph.ID) geom.Rect {
	if o.IsCIDKeyed() {
		fdIdx := o.FdSelect(gid)
		if fdIdx >= 0 && fdIdx < len(o.FontMatrices) && len(o.FontMatrices[fdIdx]) == 6 {
			fm := o.FontMatrices[fdIdx]
			M = M.Mul(geom.Matrix{A: fm[0], B: fm[1], C: fm[2], D: fm[3], E: fm[4], F: fm[5]})
		}
	}
	M = geom.Matrix{A: 1000, D: 1000}.Mul(M)
	return o.GlyphBBox(M, gid)
}

// IsBlank reports whether glyph gid has no drawing commands.
func (o *Outlines) IsBlank(gid glyph.ID) bool {
	if int(gid) >= len(o.Glyphs) {
		gid = 0 // .notdef
	}
	return len(o.Glyphs[gid].Cmds) == 0
}

// Widths returns the widths of all glyphs, in font design units.
func (cff *Font) Widths() []uint16 {
	res := make([]uint16, len(cff.Glyphs))
	for i, g := range cff.Glyphs {
		res[i] = uint16(g.Width)
	}
	return res
}

// Read reads a CFF font from r.
func Read(r parser.ReadSeekSizer) (*Font, error) {
	cff := &Font{
		Outlines: &Outlines{},
	}

	p := parser.New(r)

	// section 0: header
	x, err := p.ReadUint32()
	if err != nil {
		return nil, err
	}
	major := x >> 24
	minor := (x >> 16) & 0xFF
	nameIndexOffs := int64((x >> 8) & 0xFF)
	offSize := x & 0xFF // only used to exclude non-CFF files
	if major == 2 {
		return nil, unsupported(fmt.Sprintf("version %d.%d", major, minor))
	} else if major != 1 || nameIndexOffs < 4 || offSize > 4 {
		return nil, invalidSince("invalid header")
	}

	// section 1: Name INDEX
	err = p.SeekPos(nameIndexOffs)
	if err != nil {
		return nil, err
	}
	fontNames, err := readIndex(p)
	if err != nil {
		return nil, err
	}
	if len(fontNames) == 0 {
		return nil, invalidSince("no font data")
	} else if len(fontNames) > 1 {
		return nil, unsupported("fontsets with more than one font")
	}
	cff.FontInfo = &FontInfo{
		FontName: string(fontNames[0]),
	}

	// section 2: top DICT INDEX
	topDictIndex, err := readIndex(p)
	if err != nil {
		return nil, err
	}
	if len(topDictIndex) != len(fontNames) {
		return nil, invalidSince("wrong number of top dicts")
	}

	// section 3: String INDEX
	stringIndex, err := readIndex(p)
	if err != nil {
		return nil, err
	}
	strings := &cffStrings{
		data: make([]string, len(stringIndex)),
	}
	for i, s := range stringIndex {
		strings.data[i] = string(s)
	}

	// interlude: decode the top DICT
	topDict, err := decodeDict(topDictIndex[0], strings)
	if err != nil {
		return nil, err
	}
	if topDict.getInt(opCharstringType, 2) != 2 {
		return nil, unsupported("charstring type != 2")
	}
	cff.FontInfo.Version = topDict.getString(opVersion)
	cff.FontInfo.Notice = topDict.getString(opNotice)
	cff.FontInfo.Copyright = topDict.getString(opCopyright)
	cff.FontInfo.FullName = topDict.getString(opFullName)
	cff.FontInfo.FamilyName = topDict.getString(opFamilyName)
	cff.FontInfo.Weight = topDict.getString(opWeight)
	isFixedPitch := topDict.getInt(opIsFixedPitch, 0)
	cff.FontInfo.IsFixedPitch = isFixedPitch != 0
	italicAngle := topDict.getFloat(opItalicAngle, 0)
	cff.FontInfo.ItalicAngle = normaliseAngle(italicAngle)
	cff.FontInfo.UnderlinePosition = topDict.getFloat(opUnderlinePosition, defaultUnderlinePosition)
	cff.FontInfo.UnderlineThickness = topDict.getFloat(opUnderlineThickness, defaultUnderlineThickness)

	cff.FontInfo.FontMatrix = topDict.getFontMatrix(opFontMatrix)

	// section 4: global subr INDEX
	gsubrs, err := readIndex(p)
	if err != nil {
		return nil, err
	}

	// section 5: encodings
	// read below, once we know the charset

	// read the CharStrings INDEX
	charStringsOffs := topDict.getInt(opCharStrings, 0)
	charStrings, err := readIndexAt(p, int(charStringsOffs), "CharStrings")
	nGlyphs := len(charStrings)
	if err != nil {
		return nil, err
	} else if nGlyphs == 0 {
		return nil, invalidSince("no charstrings")
	}

	ROS, isCIDFont := topDict[opROS]
	var decoders []*decodeInfo
	if isCIDFont {
		if len(ROS) != 3 {
			return nil, invalidSince("wrong number of ROS values")
		}
		ros := &CIDSystemInfo{}
		if reg, ok := ROS[0].(string); ok {
			ros.Registry = reg
		} else {
			return nil, invalidSince("wrong type for Registry")
		}
		if ord, ok := ROS[1].(string); ok {
			ros.Ordering = ord
		} else {
			return nil, invalidSince("wrong type for Ordering")
		}
		if sup, ok := ROS[2].(int32); ok {
			ros.Supplement = sup
		} else {
			return nil, invalidSince("wrong type for Supplement")
		}
		cff.ROS = ros

		fdArrayOffs := topDict.getInt(opFDArray, 0)
		fdArrayIndex, err := readIndexAt(p, int(fdArrayOffs), "Font DICT")
		if err != nil {
			return nil, err
		} else if len(fdArrayIndex) > 256 {
			return nil, invalidSince("too many Font DICTs")
		} else if len(fdArrayIndex) == 0 {
			return nil, invalidSince("no Font DICTs")
		}
		for _, fdBlob := range fdArrayIndex {
			fontDict, err := decodeDict(fdBlob, strings)
			if err != nil {
				return nil, err
			}
			pInfo, err := fontDict.readPrivate(p, strings)
			if err != nil {
				return nil, err
			}
			cff.Private = append(cff.Private, pInfo.private)
			cff.FontMatrices = append(cff.FontMatrices, fontDict.getFontMatrix(opFontMatrix))
			decoders = append(decoders, &decodeInfo{
				subr:         pInfo.subrs,
				gsubr:        gsubrs,
				defaultWidth: pInfo.defaultWidth,
				nominalWidth: pInfo.nominalWidth,
			})
		}

		fdSelectOffs := topDict.getInt(opFDSelect, 0)
		if fdSelectOffs < 4 {
			return nil, invalidSince("missing FDSelect")
		}
		err = p.SeekPos(int64(fdSelectOffs))
		if err != nil {
			return nil, err
		}
		cff.FdSelect, err = readFDSelect(p, nGlyphs, len(cff.Private))
		if err != nil {
			return nil, err
		}
	} else {
		cff.FdSelect = func(gid glyph.ID) int { return 0 }
	}

	// read the list of glyph names
	charsetOffs := topDict.getInt(opCharset, 0)
	var charset []int32
	if isCIDFont {
		err = p.SeekPos(int64(charsetOffs))
		if err != nil {
			return nil, err
		}
		charset, err = readCharset(p, nGlyphs)
		if err != nil {
			return nil, err
		}
		cff.Gid2cid = make([]int32, nGlyphs) // filled in below
	} else {
		switch charsetOffs {
		case 0: // ISOAdobe charset
			if nGlyphs > len(isoAdobeCharset) {
				return nil, invalidSince("invalid charset")
			}
			charset = make([]int32, nGlyphs)
			for i := range charset {
				charset[i] = int32(strings.lookup(isoAdobeCharset[i]))
			}
		case 1: // Expert charset
			if nGlyphs > len(expertCharset) {
				return nil, invalidSince("invalid charset")
			}
			charset = make([]int32, nGlyphs)
			for i := range charset {
				charset[i] = int32(strings.lookup(expertCharset[i]))
			}
		case 2: // ExpertSubset charset
			if nGlyphs > len(expertSubsetCharset) {
				return nil, invalidSince("invalid charset")
			}
			charset = make([]int32, nGlyphs)
			for i := range charset {
				charset[i] = int32(strings.lookup(expertSubsetCharset[i]))
			}
		default:
			err = p.SeekPos(int64(charsetOffs))
			if err != nil {
				return nil, err
			}
			charset, err = readCharset(p, nGlyphs)
			if err != nil {
				return nil, err
			}
		}
	}

	// read the Private DICT
	if !isCIDFont {
		pInfo, err := topDict.readPrivate(p, strings)
		if err != nil {
			return nil, err
		}
		cff.Private = []*PrivateDict{pInfo.private}
		decoders = append(decoders, &decodeInfo{
			subr:         pInfo.subrs,
			gsubr:        gsubrs,
			defaultWidth: pInfo.defaultWidth,
			nominalWidth: pInfo.nominalWidth,
		})
	}

	cff.Glyphs = make([]*Glyph, nGlyphs)
	fdSelect := cff.FdSelect
	for gid, code := range charStrings {
		fdIdx := fdSelect(glyph.ID(gid))
		if fdIdx < 0 || fdIdx >= len(decoders) {
			return nil, invalidSince("FDSelect out of range")
		}
		info := decoders[fdIdx]

		g, err := info.decodeCharString(code)
		if err != nil {
			return nil, err
		}
		if isCIDFont {
			if charset != nil {
				cff.Gid2cid[gid] = charset[gid]
			}
		} else {
			name, ok := strings.get(sid(charset[gid]))
			if !ok {
				return nil, invalidSince("invalid charset entry")
			}
			g.Name = name
		}
		cff.Glyphs[gid] = g
	}

	// read the encoding
	if !isCIDFont {
		encodingOffs := topDict.getInt(opEncoding, 0)
		var enc []glyph.ID
		switch {
		case encodingOffs == 0:
			enc = StandardEncoding(cff.Glyphs)
		case encodingOffs == 1:
			enc = expertEncoding(cff.Glyphs)
		default:
			err = p.SeekPos(int64(encodingOffs))
			if err != nil {
				return nil, err
			}
			enc, err = readEncoding(p, charset)
			if err != nil {
				return nil, err
			}
		}
		cff.Encoding = enc
	}

	return cff, nil
}

func normaliseAngle(x float64) float64 {
	y := math.Mod(x+180, 360)
	if y < 0 {
		y += 360
	}
	return y - 180
}
