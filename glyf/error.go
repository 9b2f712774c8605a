package glyf

import "github.com/lxman/fontoutline/internal/sfnterr"

var (
	errInvalidGlyphData = sfnterr.Invalid("sfnt/glyf", "invalid glyph data")
	errIncompleteGlyph  = sfnterr.Invalid("sfnt/glyf", "incomplete composite glyph")
	errInvalidLoca      = sfnterr.Invalid("sfnt/loca", "invalid table length")
	errCompositeCycle   = sfnterr.Invalid("sfnt/glyf", "composite glyph cycle or depth exceeded")
)
