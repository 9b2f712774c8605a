package glyf

import (
	"github.com/lxman/fontoutline/internal/funit"
	"github.com/lxman/fontoutline/outline"
)

// SimpleGlyph is the un-decoded body of a TrueType simple glyph: its
// contour count plus the raw flags/coordinate/instruction bytes.
type SimpleGlyph struct {
	NumContours int16
	Encoded     []byte
}

// Point is a point in a glyph outline, in font design units.
type Point struct {
	X, Y    funit.Int16
	OnCurve bool
}

// Contour describes one connected part of a glyph outline.
type Contour []Point

// SimpleUnpacked contains the decoded contours of a SimpleGlyph.
type SimpleUnpacked struct {
	Contours     []Contour
	Instructions []byte
}

// Unpack decodes the flag/coordinate byte stream into explicit contours.
func (sg SimpleGlyph) Unpack() (*SimpleUnpacked, error) {
	buf := sg.Encoded

	numContours := int(sg.NumContours)
	if len(buf) < 2*numContours+2 {
		return nil, errInvalidGlyphData
	}

	endPtsOfContours := make([]uint16, numContours)
	for i := range endPtsOfContours {
		endPtsOfContours[i] = uint16(buf[2*i])<<8 | uint16(buf[2*i+1])
	}
	buf = buf[2*numContours:]

	var numPoints int
	if numContours > 0 {
		numPoints = int(endPtsOfContours[numContours-1]) + 1
	}

	if len(buf) < 2 {
		return nil, errInvalidGlyphData
	}
	instructionLength := int(buf[0])<<8 | int(buf[1])
	if len(buf) < 2+instructionLength {
		return nil, errInvalidGlyphData
	}
	instructions := buf[2 : 2+instructionLength]
	buf = buf[2+instructionLength:]

	flags := make([]byte, numPoints)
	for i := 0; i < numPoints; {
		if len(buf) < 1 {
			return nil, errInvalidGlyphData
		}
		flag := buf[0]
		buf = buf[1:]
		flags[i] = flag
		i++
		if flag&flagRepeat != 0 {
			if len(buf) < 1 {
				return nil, errInvalidGlyphData
			}
			count := int(buf[0])
			buf = buf[1:]
			for count > 0 && i < numPoints {
				flags[i] = flag
				i++
				count--
			}
		}
	}

	xx := make([]funit.Int16, numPoints)
	var x funit.Int16
	for i, flag := range flags {
		if flag&flagXShortVec != 0 {
			if len(buf) < 1 {
				return nil, errInvalidGlyphData
			}
			dx := funit.Int16(buf[0])
			buf = buf[1:]
			if flag&flagXSameOrPos != 0 {
				x += dx
			} else {
				x -= dx
			}
		} else if flag&flagXSameOrPos == 0 {
			if len(buf) < 2 {
				return nil, errInvalidGlyphData
			}
			dx := funit.Int16(buf[0])<<8 | funit.Int16(buf[1])
			buf = buf[2:]
			x += dx
		}
		xx[i] = x
	}

	yy := make([]funit.Int16, numPoints)
	var y funit.Int16
	for i, flag := range flags {
		if flag&flagYShortVec != 0 {
			if len(buf) < 1 {
				return nil, errInvalidGlyphData
			}
			dy := funit.Int16(buf[0])
			buf = buf[1:]
			if flag&flagYSameOrPos != 0 {
				y += dy
			} else {
				y -= dy
			}
		} else if flag&flagYSameOrPos == 0 {
			if len(buf) < 2 {
				return nil, errInvalidGlyphData
			}
			dy := funit.Int16(buf[0])<<8 | funit.Int16(buf[1])
			buf = buf[2:]
			y += dy
		}
		yy[i] = y
	}

	var cc []Contour
	if numContours > 0 {
		cc = make([]Contour, numContours)
		start := 0
		for i := 0; i < numContours; i++ {
			end := int(endPtsOfContours[i]) + 1
			if end <= start {
				return nil, errInvalidGlyphData
			}
			contour := make([]Point, end-start)
			for j := start; j < end; j++ {
				contour[j-start] = Point{xx[j], yy[j], flags[j]&flagOnCurve != 0}
			}
			cc[i] = contour
			start = end
		}
	}

	var inst []byte
	if instructionLength > 0 {
		inst = make([]byte, len(instructions))
		copy(inst, instructions)
	}

	return &SimpleUnpacked{Contours: cc, Instructions: inst}, nil
}

// Outline converts the decoded contours into the shared outline
// representation, inserting the implicit on-curve midpoints between
// consecutive off-curve points as required by the quadratic TrueType
// contour encoding.
func (sd *SimpleUnpacked) Outline() outline.GlyphOutline {
	var b outline.Builder

	for _, cc := range sd.Contours {
		if len(cc) < 2 {
			continue
		}

		toPoint := func(p Point) outline.Point {
			return outline.Point{X: p.X.Float64(), Y: p.Y.Float64()}
		}
		midpoint := func(p1, p2 Point) outline.Point {
			return outline.Point{
				X: (p1.X.Float64() + p2.X.Float64()) / 2,
				Y: (p1.Y.Float64() + p2.Y.Float64()) / 2,
			}
		}

		// extended is the point sequence with an implicit on-curve midpoint
		// inserted between every pair of consecutive off-curve points.
		type extPoint struct {
			pt      outline.Point
			onCurve bool
		}
		var ext []extPoint
		n := len(cc)
		for i := 0; i < n; i++ {
			cur := cc[i]
			if i > 0 {
				prev := cc[i-1]
				if !prev.OnCurve && !cur.OnCurve {
					ext = append(ext, extPoint{midpoint(prev, cur), true})
				}
			}
			ext = append(ext, extPoint{toPoint(cur), cur.OnCurve})
		}
		// close the loop: check the wrap-around pair too
		if !cc[n-1].OnCurve && !cc[0].OnCurve {
			ext = append(ext, extPoint{midpoint(cc[n-1], cc[0]), true})
		}

		start := 0
		for i, p := range ext {
			if p.onCurve {
				start = i
				break
			}
		}
		if !ext[start].onCurve {
			// all points off-curve: synthesize a start at the midpoint of
			// the last and first extended points
			b.MoveTo(midpoint(cc[n-1], cc[0]).X, midpoint(cc[n-1], cc[0]).Y)
		} else {
			b.MoveTo(ext[start].pt.X, ext[start].pt.Y)
		}

		total := len(ext)
		i := (start + 1) % total
		for count := 0; count < total; {
			cur := ext[i]
			if cur.onCurve {
				b.LineTo(cur.pt.X, cur.pt.Y)
				i = (i + 1) % total
				count++
				continue
			}
			// off-curve control point: next extended point is guaranteed
			// on-curve by construction
			next := ext[(i+1)%total]
			b.QuadTo(cur.pt.X, cur.pt.Y, next.pt.X, next.pt.Y)
			i = (i + 2) % total
			count += 2
		}

		b.ClosePath()
	}

	return b.Outline()
}

// https://docs.microsoft.com/en-us/typography/opentype/spec/glyf#simpleGlyphFlags
const (
	flagOnCurve    = 0x01 // ON_CURVE_POINT
	flagXShortVec  = 0x02 // X_SHORT_VECTOR
	flagYShortVec  = 0x04 // Y_SHORT_VECTOR
	flagRepeat     = 0x08 // REPEAT_FLAG
	flagXSameOrPos = 0x10 // X_IS_SAME_OR_POSITIVE_X_SHORT_VECTOR
	flagYSameOrPos = 0x20 // Y_IS_SAME_OR_POSITIVE_Y_SHORT_VECTOR
)
