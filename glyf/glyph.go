package glyf

import "github.com/lxman/fontoutline/internal/funit"

// Glyph represents a single glyph in a TrueType font: its design-space
// bounding box, plus either a SimpleGlyph or a CompositeGlyph body.
type Glyph struct {
	Rect16 funit.Rect16
	Data   interface{} // SimpleGlyph or CompositeGlyph
}

func decodeGlyph(data []byte) (*Glyph, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data) < 10 {
		return nil, errInvalidGlyphData
	}

	numContours := int16(data[0])<<8 | int16(data[1])
	bbox := funit.Rect16{
		LLx: funit.Int16(int16(data[2])<<8 | int16(data[3])),
		LLy: funit.Int16(int16(data[4])<<8 | int16(data[5])),
		URx: funit.Int16(int16(data[6])<<8 | int16(data[7])),
		URy: funit.Int16(int16(data[8])<<8 | int16(data[9])),
	}
	tail := data[10:]

	if numContours >= 0 {
		return &Glyph{
			Rect16: bbox,
			Data:   SimpleGlyph{NumContours: numContours, Encoded: tail},
		}, nil
	}

	comp, err := decodeGlyphComposite(tail)
	if err != nil {
		return nil, err
	}
	return &Glyph{Rect16: bbox, Data: *comp}, nil
}
