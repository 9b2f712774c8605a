// Package maxp decodes the sfnt 'maxp' table, which records the number of
// glyphs in the font (and, for TrueType fonts, the hinting interpreter's
// resource limits, surfaced here but never executed).
package maxp

import (
	"encoding/binary"
	"io"

	"github.com/lxman/fontoutline/internal/sfnterr"
)

// Info represents the decoded contents of the 'maxp' table.
type Info struct {
	NumGlyphs int

	// The following fields are only present in version 1.0 (TrueType);
	// they are zero for version 0.5 (CFF-outline) fonts.
	MaxPoints             uint16
	MaxContours            uint16
	MaxCompositePoints     uint16
	MaxCompositeContours   uint16
	MaxZones               uint16
	MaxTwilightPoints      uint16
	MaxStorage             uint16
	MaxFunctionDefs        uint16
	MaxInstructionDefs     uint16
	MaxStackElements       uint16
	MaxSizeOfInstructions  uint16
	MaxComponentElements   uint16
	MaxComponentDepth      uint16
}

// Read decodes the binary representation of the 'maxp' table. Both version
// 0.5 (numGlyphs only, used by CFF-outline fonts) and version 1.0 (the full
// TrueType hinting limits) are accepted.
func Read(r io.Reader) (*Info, error) {
	var header struct {
		Version   uint32
		NumGlyphs uint16
	}
	if err := binary.Read(r, binary.BigEndian, &header); err != nil {
		return nil, sfnterr.Invalid("sfnt/maxp", "table too short")
	}

	info := &Info{NumGlyphs: int(header.NumGlyphs)}
	if info.NumGlyphs == 0 {
		return nil, sfnterr.Invalid("sfnt/maxp", "numGlyphs is zero")
	}

	switch header.Version {
	case 0x00005000: // 0.5, CFF-outline fonts
		return info, nil
	case 0x00010000: // 1.0, TrueType fonts
		var rest struct {
			MaxPoints             uint16
			MaxContours           uint16
			MaxCompositePoints    uint16
			MaxCompositeContours  uint16
			MaxZones              uint16
			MaxTwilightPoints     uint16
			MaxStorage            uint16
			MaxFunctionDefs       uint16
			MaxInstructionDefs    uint16
			MaxStackElements      uint16
			MaxSizeOfInstructions uint16
			MaxComponentElements  uint16
			MaxComponentDepth     uint16
		}
		if err := binary.Read(r, binary.BigEndian, &rest); err != nil {
			return nil, sfnterr.Invalid("sfnt/maxp", "truncated version 1.0 table")
		}
		info.MaxPoints = rest.MaxPoints
		info.MaxContours = rest.MaxContours
		info.MaxCompositePoints = rest.MaxCompositePoints
		info.MaxCompositeContours = rest.MaxCompositeContours
		info.MaxZones = rest.MaxZones
		info.MaxTwilightPoints = rest.MaxTwilightPoints
		info.MaxStorage = rest.MaxStorage
		info.MaxFunctionDefs = rest.MaxFunctionDefs
		info.MaxInstructionDefs = rest.MaxInstructionDefs
		info.MaxStackElements = rest.MaxStackElements
		info.MaxSizeOfInstructions = rest.MaxSizeOfInstructions
		info.MaxComponentElements = rest.MaxComponentElements
		info.MaxComponentDepth = rest.MaxComponentDepth
		return info, nil
	default:
		return nil, sfnterr.Unsupported("sfnt/maxp", "table version")
	}
}
