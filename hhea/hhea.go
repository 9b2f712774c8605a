// Package hhea decodes the sfnt 'hhea' table: the horizontal header that
// precedes the 'hmtx' metrics table and supplies the font's ascent/descent/
// line-gap metrics.
package hhea

import (
	"encoding/binary"
	"io"

	"github.com/lxman/fontoutline/internal/funit"
	"github.com/lxman/fontoutline/internal/sfnterr"
)

// Info represents the decoded contents of the 'hhea' table.
type Info struct {
	Ascent               funit.Int16
	Descent              funit.Int16
	LineGap              funit.Int16
	AdvanceWidthMax      uint16
	MinLeftSideBearing   funit.Int16
	MinRightSideBearing  funit.Int16
	XMaxExtent           funit.Int16
	CaretSlopeRise       int16
	CaretSlopeRun        int16
	CaretOffset          funit.Int16
	NumOfLongHorMetrics  uint16
}

type binaryHhea struct {
	Version             uint32
	Ascent              int16
	Descent             int16
	LineGap             int16
	AdvanceWidthMax     uint16
	MinLeftSideBearing  int16
	MinRightSideBearing int16
	XMaxExtent          int16
	CaretSlopeRise      int16
	CaretSlopeRun       int16
	CaretOffset         int16
	_                   [4]int16 // reserved
	MetricDataFormat    int16
	NumOfLongHorMetrics uint16
}

// Read decodes the binary representation of the 'hhea' table.
func Read(r io.Reader) (*Info, error) {
	var enc binaryHhea
	if err := binary.Read(r, binary.BigEndian, &enc); err != nil {
		return nil, sfnterr.Invalid("sfnt/hhea", "table too short")
	}
	if enc.Version != 0x00010000 {
		return nil, sfnterr.Unsupported("sfnt/hhea", "table version")
	}
	if enc.MetricDataFormat != 0 {
		return nil, sfnterr.Unsupported("sfnt/hhea", "metric data format")
	}

	return &Info{
		Ascent:              funit.Int16(enc.Ascent),
		Descent:             funit.Int16(enc.Descent),
		LineGap:             funit.Int16(enc.LineGap),
		AdvanceWidthMax:     enc.AdvanceWidthMax,
		MinLeftSideBearing:  funit.Int16(enc.MinLeftSideBearing),
		MinRightSideBearing: funit.Int16(enc.MinRightSideBearing),
		XMaxExtent:          funit.Int16(enc.XMaxExtent),
		CaretSlopeRise:      enc.CaretSlopeRise,
		CaretSlopeRun:       enc.CaretSlopeRun,
		CaretOffset:         funit.Int16(enc.CaretOffset),
		NumOfLongHorMetrics: enc.NumOfLongHorMetrics,
	}, nil
}
