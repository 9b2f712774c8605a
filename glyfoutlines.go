package sfnt

import (
	"github.com/lxman/fontoutline/glyf"
	"github.com/lxman/fontoutline/glyph"
	"github.com/lxman/fontoutline/internal/funit"
	"github.com/lxman/fontoutline/internal/geom"
	"github.com/lxman/fontoutline/outline"
)

// glyfOutlines adapts a decoded glyf.Glyphs table, together with the
// hmtx advance widths and post glyph names that describe it, into the
// Outlines interface. The glyf package itself only exposes the raw
// per-glyph table plus a free-standing Outline resolver; a Font needs the
// three combined the same way cff.Outlines already combines its own glyph
// data, widths and names.
type glyfOutlines struct {
	Glyphs glyf.Glyphs
	Widths []funit.Int16
	Names  []string
}

func (o *glyfOutlines) NumGlyphs() int {
	return len(o.Glyphs)
}

// GlyphOutline resolves gid into its format-independent outline. Composite
// glyphs referencing an out-of-range or cyclic component decode to an empty
// outline rather than failing the whole font.
func (o *glyfOutlines) GlyphOutline(gid glyph.ID) outline.GlyphOutline {
	out, err := o.Glyphs.Outline(int(gid))
	if err != nil {
		return outline.GlyphOutline{}
	}
	return out
}

// GlyphBBox computes the bounding box of a glyph after M has been applied
// to its outline.
func (o *glyfOutlines) GlyphBBox(m geom.Matrix, gid glyph.ID) geom.Rect {
	var bbox geom.Rect
	for _, c := range o.GlyphOutline(gid).Contours {
		for _, seg := range c {
			for _, p := range seg.Args {
				x, y := m.Apply(p.X, p.Y)
				bbox = bbox.Extend(x, y)
			}
		}
	}
	return bbox
}

// GlyphBBoxPDF computes the bounding box of a glyph in PDF glyph space
// units (1/1000th of a text space unit).
func (o *glyfOutlines) GlyphBBoxPDF(m geom.Matrix, gid glyph.ID) geom.Rect {
	m = geom.Matrix{A: 1000, D: 1000}.Mul(m)
	return o.GlyphBBox(m, gid)
}

// GlyphDesignBBox returns the bounding box stored in the glyf table's own
// per-glyph header, in font design units.
func (o *glyfOutlines) GlyphDesignBBox(gid glyph.ID) funit.Rect16 {
	if int(gid) >= len(o.Glyphs) || o.Glyphs[gid] == nil {
		return funit.Rect16{}
	}
	return o.Glyphs[gid].Rect16
}

// AdvanceWidth returns the glyph's advance width, or 0 if no hmtx table
// was present.
func (o *glyfOutlines) AdvanceWidth(gid glyph.ID) funit.Int16 {
	if o.Widths == nil || int(gid) >= len(o.Widths) {
		return 0
	}
	return o.Widths[gid]
}

// GlyphName returns the glyph's PostScript name, or "" if no post table
// with glyph names was present.
func (o *glyfOutlines) GlyphName(gid glyph.ID) string {
	if o.Names == nil || int(gid) >= len(o.Names) {
		return ""
	}
	return o.Names[gid]
}

// IsBlank reports whether glyph gid has an empty outline.
func (o *glyfOutlines) IsBlank(gid glyph.ID) bool {
	return o.GlyphOutline(gid).IsEmpty()
}
