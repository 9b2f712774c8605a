package sfnt

import (
	"bytes"
	"testing"

	"github.com/lxman/fontoutline/glyph"
	"github.com/lxman/fontoutline/internal/debug"
	"github.com/lxman/fontoutline/os2"
	"github.com/stretchr/testify/require"
)

func TestPostScriptName(t *testing.T) {
	info := &Font{
		FamilyName: `A(n)d[r]o{m}e/d<a> N%ebula`,
		Weight:     os2.WeightBold,
		IsItalic:   true,
	}
	psName := info.PostScriptName()
	require.Equal(t, "AndromedaNebula-BoldItalic", psName)

	var rr []rune
	for i := 0; i < 255; i++ {
		rr = append(rr, rune(i))
	}
	info.FamilyName = string(rr)
	psName = info.PostScriptName()
	require.Len(t, psName, 127-33-10+len("-BoldItalic"))
}

func TestReadGoRegular(t *testing.T) {
	f, err := Read(bytes.NewReader(debug.GoRegularTTF()))
	require.NoError(t, err)
	require.True(t, f.IsGlyf())
	require.False(t, f.IsCFF())
	require.Greater(t, f.NumGlyphs(), 0)
	require.Equal(t, "Go", f.FamilyName)

	gid := glyphForRune(t, f, 'A')
	bbox := f.GlyphBBox(gid)
	require.False(t, bbox.IsZero(), "bounding box of 'A' should not be empty")
	require.Greater(t, f.GlyphWidth(gid), 0.0)
}

func glyphForRune(t *testing.T, f *Font, r rune) glyph.ID {
	t.Helper()
	sub, err := f.CMapTable.GetBest()
	require.NoError(t, err)
	gid := sub.Lookup(r)
	require.NotZero(t, gid, "no glyph found for %q", r)
	return gid
}
