// Package os2 decodes the sfnt "OS/2" table, a supplemental source of
// typographic metrics (CapHeight, XHeight, the Typo ascent/descent/line-gap
// triple) and the style bits the Font Facade uses for IsBold/IsItalic/
// IsRegular/IsOblique, beyond what 'head' and 'hhea' alone provide.
// https://docs.microsoft.com/en-us/typography/opentype/spec/os2
package os2

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/lxman/fontoutline/internal/funit"
	"github.com/lxman/fontoutline/internal/sfnterr"
)

// Weight is the OS/2 usWeightClass value (100-900, in steps of 100).
type Weight uint16

// Named weight classes, as defined by the OS/2 spec.
const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

// Width is the OS/2 usWidthClass value (1-9).
type Width uint16

// Named width classes, as defined by the OS/2 spec.
const (
	WidthUltraCondensed Width = 1
	WidthExtraCondensed Width = 2
	WidthCondensed      Width = 3
	WidthSemiCondensed  Width = 4
	WidthNormal         Width = 5
	WidthSemiExpanded   Width = 6
	WidthExpanded       Width = 7
	WidthExtraExpanded  Width = 8
	WidthUltraExpanded  Width = 9
)

// Info contains the fields of the "OS/2" table used by this module.
type Info struct {
	WeightClass Weight
	WidthClass  Width

	IsBold    bool // glyphs are emboldened
	IsItalic  bool // font contains italic or oblique glyphs
	IsRegular bool // glyphs are in the standard weight/style for the font
	IsOblique bool // font contains oblique glyphs

	FirstCharIndex uint16
	LastCharIndex  uint16

	Ascent     funit.Int16
	Descent    funit.Int16 // negative
	WinAscent  funit.Int16
	WinDescent funit.Int16 // positive
	LineGap    funit.Int16
	CapHeight  funit.Int16
	XHeight    funit.Int16

	AvgGlyphWidth funit.Int16

	FamilyClass int16
	Panose      [10]byte
	Vendor      string

	UnicodeRange  UnicodeRange
	CodePageRange CodePageRange

	PermUse          Permissions
	PermNoSubsetting bool
	PermOnlyBitmap   bool
}

type v0Data struct {
	Version            uint16
	AvgCharWidth       funit.Int16
	WeightClass        uint16
	WidthClass         uint16
	Type               uint16
	SubscriptXSize     funit.Int16
	SubscriptYSize     funit.Int16
	SubscriptXOffset   funit.Int16
	SubscriptYOffset   funit.Int16
	SuperscriptXSize   funit.Int16
	SuperscriptYSize   funit.Int16
	SuperscriptXOffset funit.Int16
	SuperscriptYOffset funit.Int16
	StrikeoutSize      funit.Int16
	StrikeoutPosition  funit.Int16
	FamilyClass        int16
	Panose             [10]byte
	UnicodeRange       UnicodeRange
	VendID             [4]byte
	Selection          uint16
	FirstCharIndex     uint16
	LastCharIndex      uint16
}

type v0MsData struct {
	TypoAscender  funit.Int16
	TypoDescender funit.Int16
	TypoLineGap   funit.Int16
	WinAscent     funit.Int16
	WinDescent    funit.Int16
}

type v2Data struct {
	XHeight     funit.Int16
	CapHeight   funit.Int16
	DefaultChar uint16
	BreakChar   uint16
	MaxContext  uint16
}

// Read decodes the "OS/2" table from r.
func Read(r io.Reader) (*Info, error) {
	var v0 v0Data
	if err := binary.Read(r, binary.BigEndian, &v0); err != nil {
		return nil, sfnterr.Invalid("sfnt/os2", "table too short")
	}
	if v0.Version > 5 {
		return nil, sfnterr.Unsupported("sfnt/os2", fmt.Sprintf("table version %d", v0.Version))
	}

	var permUse Permissions
	permBits := v0.Type
	if v0.Version < 3 {
		permBits &= 0xF
	}
	switch {
	case permBits&8 != 0:
		permUse = PermEdit
	case permBits&4 != 0:
		permUse = PermView
	case permBits&2 != 0:
		permUse = PermRestricted
	default:
		permUse = PermInstall
	}

	sel := v0.Selection
	if v0.Version <= 3 {
		sel &= 0x007F
	}

	info := &Info{
		WeightClass: Weight(v0.WeightClass),
		WidthClass:  Width(v0.WidthClass),

		IsBold:    sel&0x0060 == 0x0020,
		IsItalic:  sel&0x0041 == 0x0001,
		IsRegular: sel&0x0040 != 0,
		IsOblique: sel&0x0200 != 0,

		FirstCharIndex: v0.FirstCharIndex,
		LastCharIndex:  v0.LastCharIndex,

		AvgGlyphWidth: v0.AvgCharWidth,

		FamilyClass: v0.FamilyClass,
		Panose:      v0.Panose,
		Vendor:      string(v0.VendID[:]),

		UnicodeRange: v0.UnicodeRange,

		PermUse:          permUse,
		PermNoSubsetting: permBits&0x0100 != 0,
		PermOnlyBitmap:   permBits&0x0200 != 0,
	}

	var v0ms v0MsData
	if err := binary.Read(r, binary.BigEndian, &v0ms); err != nil {
		if err == io.EOF {
			return info, nil
		}
		return nil, sfnterr.Invalid("sfnt/os2", "truncated Microsoft-extension fields")
	}
	info.Ascent = v0ms.TypoAscender
	info.Descent = v0ms.TypoDescender
	info.LineGap = v0ms.TypoLineGap
	info.WinAscent = v0ms.WinAscent
	info.WinDescent = v0ms.WinDescent

	if v0.Version < 2 {
		return info, nil
	}

	var codePageRange [8]byte
	if err := binary.Read(r, binary.BigEndian, codePageRange[:]); err != nil {
		return nil, sfnterr.Invalid("sfnt/os2", "truncated code page range")
	}
	info.CodePageRange = CodePageRange(codePageRange[0])<<24 |
		CodePageRange(codePageRange[1])<<16 |
		CodePageRange(codePageRange[2])<<8 |
		CodePageRange(codePageRange[3]) |
		CodePageRange(codePageRange[4])<<56 |
		CodePageRange(codePageRange[5])<<48 |
		CodePageRange(codePageRange[6])<<40 |
		CodePageRange(codePageRange[7])<<32

	var v2 v2Data
	if err := binary.Read(r, binary.BigEndian, &v2); err != nil {
		return nil, sfnterr.Invalid("sfnt/os2", "truncated version 2+ fields")
	}
	if v2.XHeight > 0 {
		info.XHeight = v2.XHeight
	}
	if v2.CapHeight > 0 {
		info.CapHeight = v2.CapHeight
	}

	return info, nil
}

// UnicodeRange is a bitfield describing which Unicode blocks are
// "functional" in a font.
type UnicodeRange [4]uint32

// CodePageRange is a bitmask of code pages supported by a font.
type CodePageRange uint64

// Permissions describes rights to embed and use a font.
type Permissions int

func (perm Permissions) String() string {
	switch perm {
	case PermInstall:
		return "can install"
	case PermEdit:
		return "can edit"
	case PermView:
		return "can view"
	case PermRestricted:
		return "restricted"
	default:
		return fmt.Sprintf("Permissions(%d)", perm)
	}
}

// The possible permission values.
// https://learn.microsoft.com/en-us/typography/opentype/spec/os2#fstype
const (
	PermInstall    Permissions = iota // bits 0-3 unset
	PermEdit                          // only bit 3 set
	PermView                          // only bit 2 set
	PermRestricted                    // only bit 1 set
)
