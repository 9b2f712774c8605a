// Package glyf decodes the sfnt "glyf" and "loca" tables into simple and
// composite TrueType glyph outlines.
// https://docs.microsoft.com/en-us/typography/opentype/spec/glyf
// https://docs.microsoft.com/en-us/typography/opentype/spec/loca
package glyf

// Glyphs holds one decoded glyph per glyph ID, in the order given by the
// "loca" table. A nil entry means the glyph has an empty outline.
type Glyphs []*Glyph

// Encoded represents the raw "glyf" and "loca" table data, before decoding.
type Encoded struct {
	GlyfData   []byte
	LocaData   []byte
	LocaFormat int16
}

// Decode converts the data from the "glyf" and "loca" tables into a slice of
// Glyphs. LocaFormat comes from the indexToLocFormat entry in the "head"
// table.
func Decode(enc *Encoded) (Glyphs, error) {
	offs, err := decodeLoca(enc)
	if err != nil {
		return nil, err
	}

	numGlyphs := len(offs) - 1
	if numGlyphs < 0 {
		return nil, errInvalidLoca
	}

	gg := make(Glyphs, numGlyphs)
	for i := range gg {
		if offs[i] > offs[i+1] {
			return nil, errInvalidLoca
		}
		data := enc.GlyfData[offs[i]:offs[i+1]]
		g, err := decodeGlyph(data)
		if err != nil {
			return nil, err
		}
		gg[i] = g
	}

	return gg, nil
}
