package cff

// FontInfo carries the Adobe FontInfo fields decoded from a CFF Top DICT:
// naming, versioning and the metrics PDF/PostScript consumers expect
// alongside the glyph outlines.
type FontInfo struct {
	FontName   string
	Version    string
	Notice     string
	Copyright  string
	FullName   string
	FamilyName string
	Weight     string

	IsFixedPitch bool
	ItalicAngle  float64

	UnderlinePosition  float64
	UnderlineThickness float64

	FontMatrix []float64
}

// PrivateDict carries the hinting parameters decoded from a CFF Private
// DICT. Subroutines are kept separately in the decoder, not here.
type PrivateDict struct {
	BlueValues []int32
	OtherBlues []int32
	BlueScale  float64
	BlueShift  int32
	BlueFuzz   int32
	StdHW      float64
	StdVW      float64
	ForceBold  bool
}

// CIDSystemInfo identifies the character collection of a CID-keyed font
// using Adobe's Registry-Ordering-Supplement scheme.
type CIDSystemInfo struct {
	Registry   string
	Ordering   string
	Supplement int32
}
