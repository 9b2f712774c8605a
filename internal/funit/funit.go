// Package funit provides the scalar numeric types used to represent
// distances in font design units.
package funit

import "math"

// Int16 is a signed distance in font design units (glyph space).
type Int16 int16

// Float64 converts x to a plain float64, unscaled.
func (x Int16) Float64() float64 {
	return float64(x)
}

// Fixed16 is a 16.16 fixed-point number, as used for CFF FontMatrix entries
// and OpenType version fields.
type Fixed16 int32

// Float64 converts x to a plain float64.
func (x Fixed16) Float64() float64 {
	return float64(x) / 65536
}

// Floor returns the largest integer <= x.
func (x Fixed16) Floor() int32 {
	return int32(math.Floor(x.Float64()))
}

// Ceil returns the smallest integer >= x.
func (x Fixed16) Ceil() int32 {
	return int32(math.Ceil(x.Float64()))
}

// Abs returns the absolute value of x.
func (x Fixed16) Abs() Fixed16 {
	if x < 0 {
		return -x
	}
	return x
}

// FixedFromFloat64 converts a float64 to 16.16 fixed point, rounding to the
// nearest representable value.
func FixedFromFloat64(v float64) Fixed16 {
	return Fixed16(math.Round(v * 65536))
}

// Rect16 is a bounding box in font design units, as stored in the glyf
// table's per-glyph header.
type Rect16 struct {
	LLx, LLy, URx, URy Int16
}

// IsZero reports whether r is the zero rectangle.
func (r Rect16) IsZero() bool {
	return r == Rect16{}
}
