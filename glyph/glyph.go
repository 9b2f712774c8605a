// Package glyph contains the glyph index type shared across the font
// decoders.
package glyph

// ID enumerates the glyphs in a font. The first glyph has index 0 and is
// used to indicate a missing character (usually rendered as an empty box).
type ID uint16
