package shape

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// GlyphID is a glyph index within a font. Glyph id 0 is the missing
// glyph ("notdef") in every OpenType font.
type GlyphID uint16

// Bidi selects how the engine resolves text direction for a run.
type Bidi int

const (
	// BidiLTR resolves the run with a left-to-right base direction.
	BidiLTR Bidi = iota
	// BidiRTL resolves the run with a right-to-left base direction.
	BidiRTL
	// BidiDefaultLTR infers direction from content, defaulting to LTR.
	BidiDefaultLTR
	// BidiDefaultRTL infers direction from content, defaulting to RTL.
	BidiDefaultRTL
	// BidiForceLTR treats the whole run as left-to-right.
	BidiForceLTR
	// BidiForceRTL treats the whole run as right-to-left.
	BidiForceRTL
)

// String returns the string representation of the bidi mode.
func (b Bidi) String() string {
	switch b {
	case BidiLTR:
		return "LTR"
	case BidiRTL:
		return "RTL"
	case BidiDefaultLTR:
		return "DefaultLTR"
	case BidiDefaultRTL:
		return "DefaultRTL"
	case BidiForceLTR:
		return "ForceLTR"
	case BidiForceRTL:
		return "ForceRTL"
	default:
		return unknownStr
	}
}

// Rect is an axis-aligned rectangle in y-down coordinates: MinY is the
// highest ink edge above the baseline (negative above it), MaxY the
// lowest below.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Empty reports whether the rectangle encloses no area.
func (r Rect) Empty() bool { return r.MinX >= r.MaxX || r.MinY >= r.MaxY }

// Union returns the smallest rectangle containing both r and s.
// An empty rectangle does not contribute.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	if s.MinX < r.MinX {
		r.MinX = s.MinX
	}
	if s.MinY < r.MinY {
		r.MinY = s.MinY
	}
	if s.MaxX > r.MaxX {
		r.MaxX = s.MaxX
	}
	if s.MaxY > r.MaxY {
		r.MaxY = s.MaxY
	}
	return r
}

// FontMetrics holds font-wide vertical metrics at a specific size,
// in y-down coordinates: Ascent and Top are negative (above the
// baseline), Descent and Bottom positive (below it).
type FontMetrics struct {
	// Top is the highest extent of any glyph in the font.
	Top float64
	// Ascent is the recommended distance above the baseline (negative).
	Ascent float64
	// Descent is the recommended distance below the baseline (positive).
	Descent float64
	// Bottom is the lowest extent of any glyph in the font.
	Bottom float64
	// Leading is the recommended additional space between lines.
	Leading float64
}

// Spacing returns the recommended baseline-to-baseline distance.
func (m FontMetrics) Spacing() float64 {
	return m.Descent - m.Ascent + m.Leading
}
