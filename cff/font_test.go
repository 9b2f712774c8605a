package cff

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lxman/fontoutline/glyph"
	"github.com/lxman/fontoutline/internal/geom"
)

func TestGlyphBBoxPDF(t *testing.T) {
	g := &Glyph{
		Name: "test",
		Cmds: []GlyphOp{
			{Op: OpMoveTo, Args: []float64{-16, -16}},
			{Op: OpLineTo, Args: []float64{128, -16}},
			{Op: OpLineTo, Args: []float64{128, 128}},
			{Op: OpLineTo, Args: []float64{-16, 128}},
		},
	}
	o := &Outlines{
		Glyphs: []*Glyph{g},
	}
	fontMatrix := geom.Matrix{A: 1.0 / 4, D: 1.0 / 8}
	bbox := o.GlyphBBoxPDF(fontMatrix, 0)

	want := geom.Rect{LLx: -4_000, LLy: -2_000, URx: 32_000, URy: 16_000}
	if math.Abs(bbox.LLx-want.LLx) > 1e-7 || math.Abs(bbox.LLy-want.LLy) > 1e-7 ||
		math.Abs(bbox.URx-want.URx) > 1e-7 || math.Abs(bbox.URy-want.URy) > 1e-7 {
		t.Errorf("bbox = %+v, want %+v", bbox, want)
	}
}

func TestOutlinesRoundTripEquality(t *testing.T) {
	mkOutlines := func() *Outlines {
		return &Outlines{
			Glyphs: []*Glyph{
				{Name: ".notdef"},
				{Name: "A", Cmds: []GlyphOp{{Op: OpMoveTo, Args: []float64{0, 0}}}},
			},
			Private:  []*PrivateDict{{StdHW: 80, StdVW: 90}},
			FdSelect: func(glyph.ID) int { return 0 },
			Encoding: make([]glyph.ID, 256),
		}
	}
	o1, o2 := mkOutlines(), mkOutlines()

	cmpFDSelectFn := cmp.Comparer(func(fn1, fn2 FDSelectFn) bool {
		if fn1 == nil || fn2 == nil {
			return fn1 == nil && fn2 == nil
		}
		for _, gid := range []glyph.ID{0, 1, 2} {
			if fn1(gid) != fn2(gid) {
				return false
			}
		}
		return true
	})
	if diff := cmp.Diff(o1, o2, cmpFDSelectFn); diff != "" {
		t.Errorf("identically constructed Outlines differ (-got +want):\n%s", diff)
	}
}
