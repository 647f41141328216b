package textmeasure

import "iter"

// PathVerb represents a path construction command.
type PathVerb uint8

// Path verb constants.
const (
	// VerbMoveTo moves the current point without drawing.
	VerbMoveTo PathVerb = iota
	// VerbLineTo draws a line to the specified point.
	VerbLineTo
	// VerbQuadTo draws a quadratic Bezier curve.
	VerbQuadTo
	// VerbCubicTo draws a cubic Bezier curve.
	VerbCubicTo
	// VerbClose closes the current subpath.
	VerbClose
)

// String returns a human-readable name for the verb.
func (v PathVerb) String() string {
	switch v {
	case VerbMoveTo:
		return "MoveTo"
	case VerbLineTo:
		return "LineTo"
	case VerbQuadTo:
		return "QuadTo"
	case VerbCubicTo:
		return "CubicTo"
	case VerbClose:
		return "Close"
	default:
		return "Unknown"
	}
}

// Point is a 2D point in a y-down coordinate space.
type Point struct {
	X, Y float64
}

// Path holds glyph outline geometry. It stores path commands (verbs)
// and coordinate data separately for compact storage and cheap
// appends while outlines accumulate.
type Path struct {
	verbs  []PathVerb
	points []float64
	start  [2]float64 // start of current subpath for Close
	cursor [2]float64 // current position
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]PathVerb, 0, 16),
		points: make([]float64, 0, 64),
	}
}

// Reset clears the path for reuse without deallocating memory.
func (p *Path) Reset() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
	p.start = [2]float64{}
	p.cursor = [2]float64{}
}

// MoveTo begins a new subpath at the specified point.
func (p *Path) MoveTo(x, y float64) *Path {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, x, y)
	p.start = [2]float64{x, y}
	p.cursor = [2]float64{x, y}
	return p
}

// LineTo draws a line from the current point to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, x, y)
	p.cursor = [2]float64{x, y}
	return p
}

// QuadTo draws a quadratic Bezier curve to (x, y) using (cx, cy) as
// the control point.
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points, cx, cy, x, y)
	p.cursor = [2]float64{x, y}
	return p
}

// CubicTo draws a cubic Bezier curve to (x, y) using (c1x, c1y) and
// (c2x, c2y) as control points.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points, c1x, c1y, c2x, c2y, x, y)
	p.cursor = [2]float64{x, y}
	return p
}

// Close closes the current subpath by drawing a line back to its start.
func (p *Path) Close() *Path {
	p.verbs = append(p.verbs, VerbClose)
	p.cursor = p.start
	return p
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// VerbCount returns the number of verbs in the path.
func (p *Path) VerbCount() int {
	return len(p.verbs)
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.verbs = append(result.verbs[:0], p.verbs...)
	result.points = append(result.points[:0], p.points...)
	result.start = p.start
	result.cursor = p.cursor
	return result
}

// PathElement represents a single path command with its associated
// points, as produced by the Elements iterator.
type PathElement struct {
	// Verb is the path command type.
	Verb PathVerb

	// Points contains the coordinates for this element: one point for
	// MoveTo and LineTo, two for QuadTo (control, destination), three
	// for CubicTo (control1, control2, destination), none for Close.
	Points []Point
}

// Elements returns an iterator over all path elements.
func (p *Path) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		pointIdx := 0

		for _, verb := range p.verbs {
			var elem PathElement
			elem.Verb = verb

			switch verb {
			case VerbMoveTo, VerbLineTo:
				elem.Points = []Point{
					{p.points[pointIdx], p.points[pointIdx+1]},
				}
				pointIdx += 2

			case VerbQuadTo:
				elem.Points = []Point{
					{p.points[pointIdx], p.points[pointIdx+1]},
					{p.points[pointIdx+2], p.points[pointIdx+3]},
				}
				pointIdx += 4

			case VerbCubicTo:
				elem.Points = []Point{
					{p.points[pointIdx], p.points[pointIdx+1]},
					{p.points[pointIdx+2], p.points[pointIdx+3]},
					{p.points[pointIdx+4], p.points[pointIdx+5]},
				}
				pointIdx += 6

			case VerbClose:
				elem.Points = nil
			}

			if !yield(elem) {
				return
			}
		}
	}
}
