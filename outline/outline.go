// Package outline defines the unified glyph outline representation that
// TrueType (quadratic) and CFF/Type 1 (cubic) glyph decoders both produce,
// so callers never need to know which source format a glyph came from.
package outline

// Op identifies the kind of drawing command a Segment carries.
type Op byte

const (
	// OpMoveTo closes the current contour (if any) and starts a new one.
	OpMoveTo Op = iota
	// OpLineTo appends a straight line to the next point.
	OpLineTo
	// OpQuadTo appends a quadratic Bezier curve (one control point).
	OpQuadTo
	// OpCubicTo appends a cubic Bezier curve (two control points).
	OpCubicTo
	// OpClose closes the current contour back to its start point.
	OpClose
)

// Point is a coordinate in font design units, already converted to
// float64 so callers never deal with per-format fixed-point types.
type Point struct {
	X, Y float64
}

// Segment is a single drawing command. Args holds the control point(s)
// followed by the endpoint, per Op: 1 point for MoveTo/LineTo, 2 for
// QuadTo, 3 for CubicTo, none for Close.
type Segment struct {
	Op   Op
	Args []Point
}

// Contour is one closed subpath of a glyph outline.
type Contour []Segment

// GlyphOutline is the decoded, format-independent shape of a single glyph.
type GlyphOutline struct {
	Contours []Contour
}

// IsEmpty reports whether the outline has no contours (e.g. the space
// glyph).
func (g GlyphOutline) IsEmpty() bool {
	return len(g.Contours) == 0
}

// Builder accumulates drawing commands into a GlyphOutline. It is the
// common sink used by the TrueType, CFF and Type 1 glyph decoders.
type Builder struct {
	contours []Contour
	cur      Contour
	started  bool
}

// MoveTo closes the current contour, if any, and starts a new one at (x, y).
func (b *Builder) MoveTo(x, y float64) {
	b.flush()
	b.cur = Contour{{Op: OpMoveTo, Args: []Point{{x, y}}}}
	b.started = true
}

// LineTo appends a straight line segment ending at (x, y).
func (b *Builder) LineTo(x, y float64) {
	if !b.started {
		b.MoveTo(x, y)
		return
	}
	b.cur = append(b.cur, Segment{Op: OpLineTo, Args: []Point{{x, y}}})
}

// QuadTo appends a quadratic Bezier segment with control point (cx, cy)
// ending at (x, y).
func (b *Builder) QuadTo(cx, cy, x, y float64) {
	if !b.started {
		b.MoveTo(x, y)
		return
	}
	b.cur = append(b.cur, Segment{Op: OpQuadTo, Args: []Point{{cx, cy}, {x, y}}})
}

// CurveTo appends a cubic Bezier segment with control points (x1, y1),
// (x2, y2) ending at (x3, y3).
func (b *Builder) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if !b.started {
		b.MoveTo(x3, y3)
		return
	}
	b.cur = append(b.cur, Segment{Op: OpCubicTo, Args: []Point{{x1, y1}, {x2, y2}, {x3, y3}}})
}

// ClosePath closes the current contour.
func (b *Builder) ClosePath() {
	if !b.started {
		return
	}
	b.cur = append(b.cur, Segment{Op: OpClose})
}

func (b *Builder) flush() {
	if b.started && len(b.cur) > 0 {
		b.contours = append(b.contours, b.cur)
	}
	b.cur = nil
	b.started = false
}

// Outline finalizes and returns the accumulated outline.
func (b *Builder) Outline() GlyphOutline {
	b.flush()
	return GlyphOutline{Contours: b.contours}
}
