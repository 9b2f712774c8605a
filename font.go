// seehuhn.de/go/sfnt - a library for reading and writing font files
// Copyright (C) 2022  Jochen Voss <voss@seehuhn.de>
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

package sfnt

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/lxman/fontoutline/cff"
	"github.com/lxman/fontoutline/cmap"
	"github.com/lxman/fontoutline/internal/funit"
	"github.com/lxman/fontoutline/internal/geom"
	"github.com/lxman/fontoutline/glyph"
	"github.com/lxman/fontoutline/os2"
	"github.com/lxman/fontoutline/type1"
)

// Outlines represents the glyph data of a TrueType or OpenType font.
// This must be one of [*glyfOutlines] or [*cff.Outlines].
type Outlines interface {
	NumGlyphs() int
	GlyphBBoxPDF(m geom.Matrix, gid glyph.ID) (bbox geom.Rect)
}

// Font contains information about a TrueType or OpenType font.
type Font struct {
	FamilyName string
	Width      os2.Width
	Weight     os2.Weight
	IsRegular  bool // glyphs are in the standard weight/style for the font
	IsBold     bool // glyphs are emboldened
	IsItalic   bool // font contains italic or oblique glyphs
	IsOblique  bool // font contains oblique glyphs
	IsSerif    bool // glyph shapes have serifs
	IsScript   bool // glyphs resemble cursive handwriting

	CodePageRange os2.CodePageRange

	// Version is the font revision, rendered the way a 'name' table
	// Version string or a PostScript FontInfo Version string would be.
	Version          string
	CreationTime     time.Time
	ModificationTime time.Time
	Description      string
	SampleText       string

	Copyright  string
	Trademark  string
	License    string
	LicenseURL string
	PermUse    os2.Permissions

	UnitsPerEm uint16

	FontMatrix geom.Matrix

	Ascent    funit.Int16
	Descent   funit.Int16 // negative
	LineGap   funit.Int16 // LineGap = Leading - Ascent + Descent
	CapHeight funit.Int16
	XHeight   funit.Int16

	ItalicAngle        float64     // degrees counterclockwise from vertical
	UnderlinePosition  funit.Int16 // negative
	UnderlineThickness funit.Int16

	// Outlines contains the glyph data of the font.
	// This must be one of [*glyfOutlines] or [*cff.Outlines].
	Outlines Outlines

	CMapTable cmap.Table
}

// Clone makes a shallow copy of the font object.
func (f *Font) Clone() *Font {
	f2 := *f
	return &f2
}

// GetFontInfo returns an Adobe FontInfo structure for the given font.
// The result is a newly allocated structure and is not shared with the font.
func (f *Font) GetFontInfo() *type1.FontInfo {
	return &type1.FontInfo{
		FontName:   f.PostScriptName(),
		FullName:   f.FullName(),
		FamilyName: f.FamilyName,
		Weight:     f.Weight.String(),
		Version:    f.Version,

		Copyright: strings.ReplaceAll(f.Copyright, "Â©", "(c)"),
		Notice:    f.Trademark,

		FontMatrix: matrixToSlice(f.FontMatrix),

		ItalicAngle:  f.ItalicAngle,
		IsFixedPitch: f.IsFixedPitch(),

		UnderlinePosition:  f.UnderlinePosition,
		UnderlineThickness: f.UnderlineThickness,
	}
}

func matrixToSlice(m geom.Matrix) []float64 {
	return []float64{m.A, m.B, m.C, m.D, m.E, m.F}
}

func matrixFromSlice(v []float64) geom.Matrix {
	if len(v) != 6 {
		return geom.Identity
	}
	return geom.Matrix{A: v[0], B: v[1], C: v[2], D: v[3], E: v[4], F: v[5]}
}

func rectToRect16(r geom.Rect) funit.Rect16 {
	return funit.Rect16{
		LLx: funit.Int16(math.Round(r.LLx)),
		LLy: funit.Int16(math.Round(r.LLy)),
		URx: funit.Int16(math.Round(r.URx)),
		URy: funit.Int16(math.Round(r.URy)),
	}
}

// IsGlyf returns true if the font contains TrueType glyph outlines.
func (f *Font) IsGlyf() bool {
	_, ok := f.Outlines.(*glyfOutlines)
	return ok
}

// IsCFF returns true if the font contains CFF glyph outlines.
func (f *Font) IsCFF() bool {
	_, ok := f.Outlines.(*cff.Outlines)
	return ok
}

// AsCFF returns the CFF font data for the given font.
// Panics if the font does not contain CFF outlines.
func (f *Font) AsCFF() *cff.Font {
	return &cff.Font{
		FontInfo: &cff.FontInfo{
			FontName:   f.PostScriptName(),
			Version:    f.Version,
			Notice:     f.Trademark,
			Copyright:  strings.ReplaceAll(f.Copyright, "Â©", "(c)"),
			FullName:   f.FullName(),
			FamilyName: f.FamilyName,
			Weight:     f.Weight.String(),

			IsFixedPitch: f.IsFixedPitch(),
			ItalicAngle:  f.ItalicAngle,

			UnderlinePosition:  float64(f.UnderlinePosition),
			UnderlineThickness: float64(f.UnderlineThickness),

			FontMatrix: matrixToSlice(f.FontMatrix),
		},
		Outlines: f.Outlines.(*cff.Outlines),
	}
}

// FullName returns the full name of the font.
func (f *Font) FullName() string {
	return f.FamilyName + " " + f.Subfamily()
}

// Subfamily returns the subfamily name of the font.
func (f *Font) Subfamily() string {
	var words []string
	if f.Width != 0 && f.Width != os2.WidthNormal {
		words = append(words, f.Width.String())
	}
	if f.Weight != 0 && f.Weight != os2.WeightNormal {
		tag := f.Weight.SimpleString()
		seen := strings.Contains(f.FamilyName, tag)
		for _, w := range words {
			if strings.Contains(w, tag) {
				seen = true
				break
			}
		}
		if !seen {
			words = append(words, tag)
		}
	} else if f.IsBold {
		words = append(words, "Bold")
	}
	if f.IsOblique {
		words = append(words, "Oblique")
	} else if f.IsItalic {
		words = append(words, "Italic")
	}
	if len(words) == 0 {
		return "Regular"
	}
	return strings.Join(words, " ")
}

var postScriptNameCleaner = regexp.MustCompile(`[^!-$&-'*-.0-;=?-Z\\^-z|~]+`)

// PostScriptName returns the PostScript name of the font.
func (f *Font) PostScriptName() string {
	name := f.FamilyName + "-" + f.Subfamily()
	return postScriptNameCleaner.ReplaceAllString(name, "")
}

// FontBBox returns the bounding box of the font, in font design units.
func (f *Font) FontBBox() funit.Rect16 {
	var bbox funit.Rect16
	first := true
	for i := 0; i < f.NumGlyphs(); i++ {
		glyphBBox := f.GlyphBBox(glyph.ID(i))
		if glyphBBox.IsZero() {
			continue
		}
		if first {
			bbox = glyphBBox
			first = false
		} else {
			bbox = extendRect16(bbox, glyphBBox)
		}
	}
	return bbox
}

func extendRect16(a, b funit.Rect16) funit.Rect16 {
	if a.LLx > b.LLx {
		a.LLx = b.LLx
	}
	if a.LLy > b.LLy {
		a.LLy = b.LLy
	}
	if a.URx < b.URx {
		a.URx = b.URx
	}
	if a.URy < b.URy {
		a.URy = b.URy
	}
	return a
}

// FontBBoxPDF returns the font bounding box in PDF glyph space units.
// This is the smallest rectangle enclosing all individual glyph bounding
// boxes.
func (f *Font) FontBBoxPDF() geom.Rect {
	var fontBBox geom.Rect
	for i := 0; i < f.NumGlyphs(); i++ {
		glyphBBox := f.Outlines.GlyphBBoxPDF(f.FontMatrix, glyph.ID(i))
		if glyphBBox.IsZero() {
			continue
		}
		fontBBox = fontBBox.Union(glyphBBox)
	}
	return fontBBox
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return f.Outlines.NumGlyphs()
}

// BuiltinEncoding returns the font's built-in encoding, if it has one.
func (f *Font) BuiltinEncoding() []string {
	switch o := f.Outlines.(type) {
	case *cff.Outlines:
		return o.BuiltinEncoding()
	default:
		return nil
	}
}

// Widths returns the advance widths of the glyphs in the font,
// in font design units.
func (f *Font) Widths() []float64 {
	widths := make([]float64, f.NumGlyphs())
	switch o := f.Outlines.(type) {
	case *cff.Outlines:
		for gid, g := range o.Glyphs {
			widths[gid] = g.Width
		}
	case *glyfOutlines:
		for i := range widths {
			widths[i] = float64(o.AdvanceWidth(glyph.ID(i)))
		}
	default:
		panic("unexpected font type")
	}
	return widths
}

// WidthsPDF returns the advance widths of the glyphs in the font,
// in PDF text space units.
func (f *Font) WidthsPDF() []float64 {
	widths := make([]float64, f.NumGlyphs())
	switch o := f.Outlines.(type) {
	case *cff.Outlines:
		for gid, g := range o.Glyphs {
			widths[gid] = g.Width * f.FontMatrix.A
		}
	case *glyfOutlines:
		if o.Widths == nil {
			return nil
		}
		for i := range widths {
			widths[i] = float64(o.AdvanceWidth(glyph.ID(i))) / float64(f.UnitsPerEm)
		}
	default:
		panic("unexpected font type")
	}
	return widths
}

// WidthsMapPDF returns a map of glyph names to advance widths in PDF glyph
// space units.
//
// If the font does not contain CFF outlines or is CID-keyed, nil is
// returned.
func (f *Font) WidthsMapPDF() map[string]float64 {
	o, isCFF := f.Outlines.(*cff.Outlines)
	if !isCFF || o.IsCIDKeyed() {
		return nil
	}

	q := f.FontMatrix.A
	if math.Abs(f.FontMatrix.D) > 1e-6 {
		q -= f.FontMatrix.B * f.FontMatrix.C / f.FontMatrix.D
	}
	q *= 1000

	widths := make(map[string]float64)
	for _, g := range o.Glyphs {
		widths[g.Name] = g.Width * q
	}
	return widths
}

// GlyphBBoxes returns the glyph bounding boxes for the font, in font
// design units.
func (f *Font) GlyphBBoxes() []funit.Rect16 {
	extents := make([]funit.Rect16, f.NumGlyphs())
	switch o := f.Outlines.(type) {
	case *cff.Outlines:
		for i := range extents {
			extents[i] = rectToRect16(o.GlyphBBox(geom.Identity, glyph.ID(i)))
		}
	case *glyfOutlines:
		for i := range extents {
			extents[i] = o.GlyphDesignBBox(glyph.ID(i))
		}
	default:
		panic("unexpected font type")
	}
	return extents
}

// GlyphWidth returns the advance width of the glyph with the given glyph
// ID, in font design units.
func (f *Font) GlyphWidth(gid glyph.ID) float64 {
	switch o := f.Outlines.(type) {
	case *cff.Outlines:
		return o.Glyphs[gid].Width
	case *glyfOutlines:
		return float64(o.AdvanceWidth(gid))
	default:
		panic("unexpected font type")
	}
}

// GlyphWidthPDF returns the advance width in PDF glyph space units.
func (f *Font) GlyphWidthPDF(gid glyph.ID) float64 {
	switch o := f.Outlines.(type) {
	case *cff.Outlines:
		fm := f.FontMatrix
		if o.IsCIDKeyed() {
			fdIdx := o.FdSelect(gid)
			if fdIdx >= 0 && fdIdx < len(o.FontMatrices) && len(o.FontMatrices[fdIdx]) == 6 {
				fm = f.FontMatrix.Mul(matrixFromSlice(o.FontMatrices[fdIdx]))
			}
		}
		q := fm.A
		if math.Abs(fm.D) > 1e-6 {
			q -= fm.B * fm.C / fm.D
		}
		return o.Glyphs[gid].Width * (q * 1000)
	case *glyfOutlines:
		if o.Widths == nil {
			return 0
		}
		return float64(o.AdvanceWidth(gid)) / (float64(f.UnitsPerEm) / 1000)
	default:
		panic("unexpected font type")
	}
}

// GlyphBBox returns the glyph bounding box for one glyph, in font design
// units.
func (f *Font) GlyphBBox(gid glyph.ID) funit.Rect16 {
	switch o := f.Outlines.(type) {
	case *cff.Outlines:
		return rectToRect16(o.GlyphBBox(geom.Identity, gid))
	case *glyfOutlines:
		return o.GlyphDesignBBox(gid)
	default:
		panic("unexpected font type")
	}
}

func (f *Font) glyphHeight(gid glyph.ID) funit.Int16 {
	return f.GlyphBBox(gid).URy
}

// GlyphName returns the name of a glyph.
// If the name is not known, the empty string is returned.
func (f *Font) GlyphName(gid glyph.ID) string {
	switch o := f.Outlines.(type) {
	case *cff.Outlines:
		if int(gid) >= len(o.Glyphs) {
			return ""
		}
		return o.Glyphs[gid].Name
	case *glyfOutlines:
		return o.GlyphName(gid)
	default:
		panic("unexpected font type")
	}
}

// IsFixedPitch returns true if all glyphs in the font have the same width.
func (f *Font) IsFixedPitch() bool {
	ww := f.Widths()
	if len(ww) == 0 {
		return false
	}

	var width float64
	for _, w := range ww {
		if w == 0 {
			continue
		}
		if width == 0 {
			width = w
		} else if math.Abs(width-w) >= 0.5 {
			return false
		}
	}

	return true
}
