package shape

// Glyph is one positioned glyph in a Layout.
type Glyph struct {
	// ID is the glyph id within Source. 0 is the missing glyph.
	ID GlyphID

	// X, Y is the glyph origin relative to the run origin, y-down.
	X, Y float64

	// Cluster is the offset of the glyph's cluster, in code units
	// relative to the start of the measured range.
	Cluster int

	// Source is the font the glyph was shaped with.
	Source *FontSource
}

// FontRun is a maximal contiguous group of layout glyphs shaped with
// one font, identified by half-open glyph indices.
type FontRun struct {
	Source *FontSource
	Start  int
	End    int
}

// Layout is the result of shaping a run: positioned glyphs in visual
// left-to-right order plus the derived measurements.
type Layout struct {
	// Glyphs in visual order.
	Glyphs []Glyph

	// Advances holds one value per code unit of the measured range.
	// A cluster's advance sits on its first code unit; the remaining
	// units of the cluster are zero.
	Advances []float64

	// Total is the sum of all advances.
	Total float64

	// Ink is the tight ink bounding box, y-down relative to the run
	// origin.
	Ink Rect

	// Runs groups Glyphs into maximal same-font sub-runs, in visual
	// order.
	Runs []FontRun
}

// NumGlyphs returns the number of shaped glyphs.
func (l *Layout) NumGlyphs() int { return len(l.Glyphs) }

// CopyAdvances copies per-code-unit advances into dst and returns the
// number of values copied.
func (l *Layout) CopyAdvances(dst []float64) int {
	return copy(dst, l.Advances)
}

// appendGlyph records a glyph, extending the font run grouping.
func (l *Layout) appendGlyph(g Glyph) {
	idx := len(l.Glyphs)
	l.Glyphs = append(l.Glyphs, g)
	if n := len(l.Runs); n > 0 && l.Runs[n-1].Source == g.Source {
		l.Runs[n-1].End = idx + 1
		return
	}
	l.Runs = append(l.Runs, FontRun{Source: g.Source, Start: idx, End: idx + 1})
}
