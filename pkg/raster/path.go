package raster

import "math"

// Verb identifies the kind of a path segment.
type Verb int

const (
	// VerbMove relocates the cursor without drawing.
	VerbMove Verb = iota
	// VerbLine draws a straight segment from the cursor.
	VerbLine
	// VerbArc draws a circular arc, joined to the cursor by a line if one exists.
	VerbArc
	// VerbClose draws back to the start of the current subpath.
	VerbClose
)

// String returns the string representation of the verb.
func (v Verb) String() string {
	switch v {
	case VerbMove:
		return "move"
	case VerbLine:
		return "line"
	case VerbArc:
		return "arc"
	case VerbClose:
		return "close"
	default:
		return "unknown"
	}
}

// Segment is one path instruction.
// X/Y hold the target point for move and line; for arcs they hold the
// center, with Radius, Start and Sweep in radians.
type Segment struct {
	Verb   Verb
	X, Y   float64
	Radius float64
	Start  float64
	Sweep  float64
}

// ArcStart returns the first point of an arc segment.
func (s Segment) ArcStart() (float64, float64) {
	return s.X + s.Radius*math.Cos(s.Start), s.Y + s.Radius*math.Sin(s.Start)
}

// ArcEnd returns the last point of an arc segment.
func (s Segment) ArcEnd() (float64, float64) {
	end := s.Start + s.Sweep
	return s.X + s.Radius*math.Cos(end), s.Y + s.Radius*math.Sin(end)
}

// Path is an immutable sequence of segments produced by PathBuilder.
type Path struct {
	segments []Segment
}

// Segments returns the path's segments. The slice must not be modified.
func (p *Path) Segments() []Segment {
	if p == nil {
		return nil
	}
	return p.segments
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.Segments())
}

// Drawable reports whether the path contains anything a rasterizer could
// paint: a line or an arc with a positive radius and a non-zero sweep.
// Paths made only of moves and closes are not drawable.
func (p *Path) Drawable() bool {
	for _, s := range p.Segments() {
		switch s.Verb {
		case VerbLine:
			return true
		case VerbArc:
			if s.Radius > 0 && s.Sweep != 0 {
				return true
			}
		}
	}
	return false
}

// PathBuilder accumulates segments into a Path.
type PathBuilder struct {
	segments []Segment
}

// NewPathBuilder creates an empty builder.
func NewPathBuilder() *PathBuilder {
	return &PathBuilder{}
}

// MoveTo starts a new subpath at (x, y).
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	b.segments = append(b.segments, Segment{Verb: VerbMove, X: x, Y: y})
	return b
}

// LineTo adds a straight segment to (x, y).
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	b.segments = append(b.segments, Segment{Verb: VerbLine, X: x, Y: y})
	return b
}

// Arc adds a circular arc centred at (cx, cy) starting at angle start and
// sweeping by sweep radians (positive is clockwise in y-down space).
func (b *PathBuilder) Arc(cx, cy, r, start, sweep float64) *PathBuilder {
	b.segments = append(b.segments, Segment{
		Verb:   VerbArc,
		X:      cx,
		Y:      cy,
		Radius: r,
		Start:  start,
		Sweep:  sweep,
	})
	return b
}

// Close closes the current subpath.
func (b *PathBuilder) Close() *PathBuilder {
	b.segments = append(b.segments, Segment{Verb: VerbClose})
	return b
}

// Finish returns the built path and resets the builder.
func (b *PathBuilder) Finish() *Path {
	p := &Path{segments: b.segments}
	b.segments = nil
	return p
}
