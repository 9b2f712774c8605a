// Package head decodes the sfnt 'head' table: font-wide metadata such as
// the units-per-em scale, the font bounding box, and the style flags used
// by the Font Facade's IsBold/IsItalic heuristics.
package head

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/lxman/fontoutline/internal/funit"
	"github.com/lxman/fontoutline/internal/sfnterr"
)

const tableLength = 54

// Info represents the decoded contents of the 'head' table.
type Info struct {
	FontRevision funit.Fixed16 // set by the font manufacturer

	// MagicNumber is surfaced as read, but never validated against the
	// expected 0x5F0F3CF5: fonts seen in the wild occasionally carry a
	// corrupted magic number and still decode and render correctly in every
	// other respect.
	MagicNumber uint32

	HasYBaseAt0 bool // baseline for font at y=0
	HasXBaseAt0 bool // left sidebearing point at x=0 (TrueType only)
	IsNonlinear bool // outline/advance width may change nonlinearly

	UnitsPerEm uint16 // font design units per em square

	Created  time.Time
	Modified time.Time

	XMin, YMin, XMax, YMax funit.Int16

	IsBold        bool
	IsItalic      bool
	HasUnderline  bool
	IsOutline     bool
	HasShadow     bool
	IsCondensed   bool
	IsExtended    bool
	LowestRecPPEM uint16

	// HasLongOffsets reports whether the 'loca' table uses 32-bit offsets.
	HasLongOffsets bool
}

type binaryHead struct {
	Version            uint32
	FontRevision       uint32
	CheckSumAdjustment uint32
	MagicNumber        uint32
	Flags              uint16
	UnitsPerEm         uint16
	Created            int64
	Modified           int64

	XMin, YMin, XMax, YMax int16

	MacStyle uint16

	LowestRecPPEM     uint16
	FontDirectionHint int16

	IndexToLocFormat int16
	GlyphDataFormat  int16
}

// Read decodes the binary representation of the 'head' table.
func Read(r io.Reader) (*Info, error) {
	var enc binaryHead
	if err := binary.Read(r, binary.BigEndian, &enc); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, sfnterr.Invalid("sfnt/head", "table too short")
		}
		return nil, err
	}

	if enc.Version != 0x00010000 {
		return nil, sfnterr.Unsupported("sfnt/head", fmt.Sprintf("table version 0x%08x", enc.Version))
	}

	info := &Info{
		FontRevision: funit.Fixed16(enc.FontRevision),
		MagicNumber:  enc.MagicNumber,
		UnitsPerEm:   enc.UnitsPerEm,
		Created:      decodeTime(enc.Created),
		Modified:     decodeTime(enc.Modified),
		XMin:         funit.Int16(enc.XMin),
		YMin:         funit.Int16(enc.YMin),
		XMax:         funit.Int16(enc.XMax),
		YMax:         funit.Int16(enc.YMax),

		LowestRecPPEM:  enc.LowestRecPPEM,
		HasLongOffsets: enc.IndexToLocFormat != 0,
	}

	flags := enc.Flags
	info.HasYBaseAt0 = flags&(1<<0) != 0
	info.HasXBaseAt0 = flags&(1<<1) != 0
	info.IsNonlinear = flags&(1<<2) != 0 || flags&(1<<4) != 0

	style := enc.MacStyle
	info.IsBold = style&(1<<0) != 0
	info.IsItalic = style&(1<<1) != 0
	info.HasUnderline = style&(1<<2) != 0
	info.IsOutline = style&(1<<3) != 0
	info.HasShadow = style&(1<<4) != 0
	info.IsCondensed = style&(1<<5) != 0
	info.IsExtended = style&(1<<6) != 0

	if info.UnitsPerEm == 0 {
		return nil, sfnterr.Invalid("sfnt/head", "unitsPerEm is zero")
	}

	return info, nil
}

// macEpoch is 1904-01-01, the zero time for sfnt longDateTime fields.
var macEpoch = time.Date(1904, time.January, 1, 0, 0, 0, 0, time.UTC)

func decodeTime(t int64) time.Time {
	return macEpoch.Add(time.Duration(t) * time.Second)
}
