package glyf

import (
	"github.com/lxman/fontoutline/internal/geom"
	"github.com/lxman/fontoutline/outline"
)

// maxComponentDepth bounds how deeply composite glyphs may nest before
// decoding is aborted as a (possibly cyclic) malformed font.
const maxComponentDepth = 16

// Outline resolves glyph id into its final, format-independent outline,
// recursively placing composite components through their transforms. It
// rejects component graphs that cycle back to an ancestor or nest deeper
// than maxComponentDepth.
func (gg Glyphs) Outline(id int) (outline.GlyphOutline, error) {
	return gg.outline(id, nil)
}

func (gg Glyphs) outline(id int, ancestors []int) (outline.GlyphOutline, error) {
	if id < 0 || id >= len(gg) {
		return outline.GlyphOutline{}, errInvalidGlyphData
	}
	g := gg[id]
	if g == nil {
		return outline.GlyphOutline{}, nil
	}

	if len(ancestors) >= maxComponentDepth {
		return outline.GlyphOutline{}, errCompositeCycle
	}
	for _, a := range ancestors {
		if a == id {
			return outline.GlyphOutline{}, errCompositeCycle
		}
	}

	switch d := g.Data.(type) {
	case SimpleGlyph:
		unpacked, err := d.Unpack()
		if err != nil {
			return outline.GlyphOutline{}, err
		}
		return unpacked.Outline(), nil

	case CompositeGlyph:
		nextAncestors := append(append([]int(nil), ancestors...), id)

		var result outline.GlyphOutline
		for _, comp := range d.Components {
			cu, err := comp.Unpack()
			if err != nil {
				return outline.GlyphOutline{}, err
			}

			childOutline, err := gg.outline(int(cu.Child), nextAncestors)
			if err != nil {
				return outline.GlyphOutline{}, err
			}

			m := componentMatrix(cu)
			result = outline.Append(result, outline.Transform(childOutline, m))
		}
		return result, nil

	default:
		return outline.GlyphOutline{}, errInvalidGlyphData
	}
}

// componentMatrix builds the placement transform for a composite component.
// Point-matching placement (AlignPoints) requires the referenced glyphs'
// decoded point coordinates to resolve, which outline-level composition does
// not have access to; such components are placed with no translation.
func componentMatrix(cu *ComponentUnpacked) geom.Matrix {
	m := cu.Trfm
	if cu.AlignPoints {
		m.E, m.F = 0, 0
	} else if cu.ScaledComponentOffset {
		dx, dy := m.E, m.F
		m.E, m.F = 0, 0
		ex, ey := m.Apply(dx, dy)
		m.E, m.F = ex, ey
	}
	return m
}
