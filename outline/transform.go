package outline

import "github.com/lxman/fontoutline/internal/geom"

// Transform returns a copy of g with m applied to every point.
func Transform(g GlyphOutline, m geom.Matrix) GlyphOutline {
	out := GlyphOutline{Contours: make([]Contour, len(g.Contours))}
	for i, c := range g.Contours {
		nc := make(Contour, len(c))
		for j, seg := range c {
			nargs := make([]Point, len(seg.Args))
			for k, p := range seg.Args {
				x, y := m.Apply(p.X, p.Y)
				nargs[k] = Point{X: x, Y: y}
			}
			nc[j] = Segment{Op: seg.Op, Args: nargs}
		}
		out.Contours[i] = nc
	}
	return out
}

// Append concatenates b's contours onto a and returns the result.
func Append(a, b GlyphOutline) GlyphOutline {
	out := GlyphOutline{Contours: make([]Contour, 0, len(a.Contours)+len(b.Contours))}
	out.Contours = append(out.Contours, a.Contours...)
	out.Contours = append(out.Contours, b.Contours...)
	return out
}
