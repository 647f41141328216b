package textmeasure

import (
	"github.com/gogpu/textmeasure/shape"
)

// Run is an immutable view into a UTF-16 buffer. The context span
// [ContextStart, ContextStart+ContextCount) is the widest range the
// shaper may examine for joining and kerning; [Start, Start+Count) is
// the range actually measured. All offsets are absolute code-unit
// indices into Text.
type Run struct {
	Text         []uint16
	ContextStart int
	ContextCount int
	Start        int
	Count        int
}

// WholeRun is a Run covering all of text, with the context equal to
// the measured range.
func WholeRun(text []uint16) Run {
	return Run{Text: text, ContextCount: len(text), Count: len(text)}
}

// validate checks the run's index contract. It runs before any engine
// call, so a failed call never partially applies.
func (r Run) validate(op string) error {
	if r.Text == nil {
		return ErrNilText
	}
	if r.Start < 0 || r.Count < 0 || r.ContextStart < 0 || r.ContextCount < 0 {
		return rangeErr(op, "negative index: start %d count %d contextStart %d contextCount %d",
			r.Start, r.Count, r.ContextStart, r.ContextCount)
	}
	if r.Count > r.ContextCount {
		return rangeErr(op, "count %d exceeds contextCount %d", r.Count, r.ContextCount)
	}
	if r.Start < r.ContextStart || r.Start+r.Count > r.ContextStart+r.ContextCount {
		return rangeErr(op, "measured range [%d, %d) outside context [%d, %d)",
			r.Start, r.Start+r.Count, r.ContextStart, r.ContextStart+r.ContextCount)
	}
	if r.ContextStart+r.ContextCount > len(r.Text) {
		return rangeErr(op, "context end %d exceeds text length %d",
			r.ContextStart+r.ContextCount, len(r.Text))
	}
	return nil
}

// context returns the context span and the measured range relative to
// it.
func (r Run) context() (text []uint16, start, count int) {
	return r.Text[r.ContextStart : r.ContextStart+r.ContextCount],
		r.Start - r.ContextStart, r.Count
}

// Measurer reduces shaped layouts to measurements: advances, cursor
// positions, glyph outlines, bounds, and glyph-presence queries. It
// owns an Engine and nothing else; every operation is a pure function
// of its inputs.
//
// A Measurer is safe for concurrent use, but each call needs exclusive
// access to its Paint: some operations temporarily adjust skew and
// fake-bold so the engine measures with font fakery applied, then
// restore the caller-visible values.
type Measurer struct {
	engine shape.Engine
}

// Option configures a Measurer.
type Option func(*Measurer)

// WithEngine replaces the default HarfBuzz shaping engine.
func WithEngine(e shape.Engine) Option {
	return func(m *Measurer) { m.engine = e }
}

// NewMeasurer creates a Measurer with the given options.
func NewMeasurer(opts ...Option) *Measurer {
	m := &Measurer{}
	for _, opt := range opts {
		opt(m)
	}
	if m.engine == nil {
		m.engine = shape.NewHarfBuzz()
	}
	return m
}

// shapeRun resolves the typeface, applies font fakery to the paint
// for the duration of the engine call, and restores the paint's skew
// and fake-bold afterward. It returns the layout together with the
// options the engine actually observed, which path extraction needs.
func (m *Measurer) shapeRun(p *Paint, tf *shape.Typeface, r Run, bidi shape.Bidi) (*shape.Layout, shape.Options) {
	tf = shape.ResolveDefault(tf)
	faked := tf.Collection.BaseFont(tf.Style)

	saveSkew := p.TextSkewX
	saveBold := p.FakeBold()
	if faked.Fakery.Bold() {
		p.SetFakeBold(true)
	}
	if faked.Fakery.Italic() {
		p.TextSkewX = shape.FakeItalicSkew
	}
	opts := p.shapingOptions()

	ctx, start, count := r.context()
	layout := m.engine.Shape(shape.Request{
		Text:     ctx,
		Start:    start,
		Count:    count,
		Bidi:     bidi,
		Typeface: tf,
		Options:  opts,
	})

	p.TextSkewX = saveSkew
	p.SetFakeBold(saveBold)
	return layout, opts
}

// Advances shapes the run and returns its total advance. When out is
// non-nil, the per-code-unit advances of the measured range are also
// copied into out starting at outIndex; a cluster's advance sits on
// its first code unit.
//
// A zero-count run returns 0 without invoking the engine and without
// touching out. Range violations, including an out buffer too small
// for count values at outIndex, return a RangeError before any engine
// call or buffer write.
func (m *Measurer) Advances(p *Paint, tf *shape.Typeface, r Run, bidi shape.Bidi, out []float64, outIndex int) (float64, error) {
	const op = "Advances"
	if err := r.validate(op); err != nil {
		return 0, err
	}
	if outIndex < 0 {
		return 0, rangeErr(op, "negative outIndex %d", outIndex)
	}
	if r.Count == 0 {
		return 0, nil
	}
	if out != nil && outIndex+r.Count > len(out) {
		return 0, rangeErr(op, "out buffer too small: need %d values at index %d, have %d",
			r.Count, outIndex, len(out))
	}

	layout, _ := m.shapeRun(p, tf, r, bidi)
	if out != nil {
		layout.CopyAdvances(out[outIndex:])
	}
	return layout.Total, nil
}

// RunCursor moves a cursor offset to a grapheme-cluster boundary
// within the context span [contextStart, contextStart+contextCount).
// The five move semantics are those of MoveOpt; MoveAt returns -1 when
// offset is not already a boundary. Pure function of the buffer; the
// direction does not affect boundaries and is accepted for interface
// symmetry with the shaped operations.
func (m *Measurer) RunCursor(text []uint16, contextStart, contextCount int, _ shape.Bidi, offset int, opt shape.MoveOpt) int {
	return shape.Cursor(text, contextStart, contextCount, offset, opt)
}

// GlyphPath shapes the run and appends the filled outlines of its
// glyphs to a new Path, translated so the run origin lands at (x, y)
// adjusted by the paint's text alignment against the total advance.
// Font runs are appended in left-to-right visual order.
//
// The paint's alignment and text encoding are forced to left and
// glyph-id for the duration of extraction and restored before return.
func (m *Measurer) GlyphPath(p *Paint, tf *shape.Typeface, r Run, bidi shape.Bidi, x, y float64) (*Path, error) {
	if err := r.validate("GlyphPath"); err != nil {
		return nil, err
	}

	layout, opts := m.shapeRun(p, tf, r, bidi)

	switch p.TextAlign {
	case AlignCenter:
		x -= layout.Total / 2
	case AlignRight:
		x -= layout.Total
	}

	saveAlign := p.TextAlign
	saveEncoding := p.TextEncoding
	p.TextAlign = AlignLeft
	p.TextEncoding = EncodingGlyphID

	path := NewPath()
	scaleX := opts.ScaleX
	if scaleX == 0 {
		scaleX = 1
	}
	for _, fr := range layout.Runs {
		for i := fr.Start; i < fr.End; i++ {
			g := layout.Glyphs[i]
			segs, err := fr.Source.GlyphOutline(g.ID, opts.Size)
			if err != nil {
				Logger().Debug("glyph outline unavailable",
					"font", fr.Source.Name(), "glyph", g.ID, "err", err)
				continue
			}
			appendOutline(path, segs, x+g.X, y+g.Y, scaleX, opts.SkewX)
		}
	}

	p.TextAlign = saveAlign
	p.TextEncoding = saveEncoding
	return path, nil
}

// appendOutline appends one glyph outline to the path, sheared by
// skew, scaled horizontally, and translated to (dx, dy).
func appendOutline(path *Path, segs []shape.Segment, dx, dy, scaleX, skew float64) {
	tx := func(pt shape.Point) (float64, float64) {
		return dx + scaleX*(pt.X+skew*pt.Y), dy + pt.Y
	}
	opened := false
	for _, seg := range segs {
		switch seg.Op {
		case shape.SegmentOpMoveTo:
			if opened {
				path.Close()
			}
			x0, y0 := tx(seg.Args[0])
			path.MoveTo(x0, y0)
			opened = true
		case shape.SegmentOpLineTo:
			x0, y0 := tx(seg.Args[0])
			path.LineTo(x0, y0)
		case shape.SegmentOpQuadTo:
			cx, cy := tx(seg.Args[0])
			x0, y0 := tx(seg.Args[1])
			path.QuadTo(cx, cy, x0, y0)
		case shape.SegmentOpCubeTo:
			c1x, c1y := tx(seg.Args[0])
			c2x, c2y := tx(seg.Args[1])
			x0, y0 := tx(seg.Args[2])
			path.CubicTo(c1x, c1y, c2x, c2y, x0, y0)
		}
	}
	if opened {
		path.Close()
	}
}

// Bounds shapes the run and returns its tight ink bounds rounded
// outward to an integer rectangle: floor on the min edges, ceil on
// the max edges, so the result fully contains the true glyph ink.
func (m *Measurer) Bounds(p *Paint, tf *shape.Typeface, r Run, bidi shape.Bidi) (IRect, error) {
	if err := r.validate("Bounds"); err != nil {
		return IRect{}, err
	}
	layout, _ := m.shapeRun(p, tf, r, bidi)
	return roundOut(layout.Ink), nil
}

// HasGlyph reports whether the typeface renders text as exactly one
// glyph. Malformed UTF-16 (unpaired surrogates) returns false without
// invoking the engine. Text containing a variation selector (U+FE00
// through U+FE0F, or U+E0100 through U+E01EF) also returns false:
// variation-aware glyph queries are not implemented yet.
//
// Multi-character input is accepted only when it shapes to a single
// glyph, so ligatures report true. The missing-glyph id 0 anywhere in
// the layout reports false.
func (m *Measurer) HasGlyph(p *Paint, tf *shape.Typeface, bidi shape.Bidi, text []uint16) bool {
	nChars := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case 0xDC00 <= c && c <= 0xDFFF:
			// Unpaired trailing surrogate.
			return false
		case 0xD800 <= c && c <= 0xDBFF:
			if i+1 == len(text) {
				// Unpaired leading surrogate at end of string.
				return false
			}
			i++
			c2 := text[i]
			if !(0xDC00 <= c2 && c2 <= 0xDFFF) {
				// Leading surrogate not followed by a trailing one.
				return false
			}
			// U+E0100..U+E01EF encodes as DB40 DD00..DDEF.
			if c == 0xDB40 && 0xDD00 <= c2 && c2 <= 0xDDEF {
				return m.hasGlyphVariation(p, tf, bidi, text)
			}
		case 0xFE00 <= c && c <= 0xFE0F:
			return m.hasGlyphVariation(p, tf, bidi, text)
		}
		nChars++
	}
	if len(text) == 0 {
		return false
	}

	layout, _ := m.shapeRun(p, tf, WholeRun(text), bidi)
	nGlyphs := layout.NumGlyphs()
	if nGlyphs != 1 && nChars > 1 {
		// Multi-character input that was not a ligature.
		return false
	}
	if nGlyphs == 0 {
		return false
	}
	for _, g := range layout.Glyphs {
		if g.ID == 0 {
			return false
		}
	}
	return true
}

// hasGlyphVariation would query the font for variation-selector
// coverage. Not implemented yet; reports absent.
func (m *Measurer) hasGlyphVariation(*Paint, *shape.Typeface, shape.Bidi, []uint16) bool {
	return false
}

// forcedBidi maps the run direction flag to a forced bidi mode.
func forcedBidi(isRtl bool) shape.Bidi {
	if isRtl {
		return shape.BidiForceRTL
	}
	return shape.BidiForceLTR
}

// RunAdvance returns the cumulative advance from the start of the
// measured range up to offset, an absolute code-unit index in
// [r.Start, r.Start+r.Count]. The layout is shaped with a direction
// forced from isRtl alone; mixed-direction structure within the run
// is ignored. Offsets inside a cluster split the cluster's advance
// evenly across its grapheme boundaries.
func (m *Measurer) RunAdvance(p *Paint, tf *shape.Typeface, r Run, isRtl bool, offset int) (float64, error) {
	const op = "RunAdvance"
	if err := r.validate(op); err != nil {
		return 0, err
	}
	if offset < r.Start || offset > r.Start+r.Count {
		return 0, rangeErr(op, "offset %d outside measured range [%d, %d]",
			offset, r.Start, r.Start+r.Count)
	}
	layout, _ := m.shapeRun(p, tf, r, forcedBidi(isRtl))
	ctx, start, count := r.context()
	return shape.RunAdvance(layout, ctx, start, count, offset-r.ContextStart), nil
}

// OffsetForAdvance returns the absolute code-unit offset whose
// cumulative advance is nearest to advance, considering only grapheme
// boundaries. Ties resolve to the lower offset. It is the inverse of
// RunAdvance for monotonically advancing runs.
func (m *Measurer) OffsetForAdvance(p *Paint, tf *shape.Typeface, r Run, isRtl bool, advance float64) (int, error) {
	if err := r.validate("OffsetForAdvance"); err != nil {
		return 0, err
	}
	layout, _ := m.shapeRun(p, tf, r, forcedBidi(isRtl))
	ctx, start, count := r.context()
	return shape.OffsetForAdvance(layout, ctx, start, count, advance) + r.ContextStart, nil
}

// BreakText measures text until adding the next code unit's advance
// would exceed maxWidth, scanning forward or backward. It returns the
// number of code units that fit and their measured width. A backward
// scan only counts a position once a nonzero advance is seen, so a
// break never lands inside a trailing cluster.
func (m *Measurer) BreakText(p *Paint, tf *shape.Typeface, text []uint16, bidi shape.Bidi, maxWidth float64, forward bool) (int, float64, error) {
	if text == nil {
		return 0, 0, ErrNilText
	}
	if len(text) == 0 {
		return 0, 0, nil
	}

	layout, _ := m.shapeRun(p, tf, WholeRun(text), bidi)
	advances := layout.Advances

	measured := 0.0
	measuredCount := 0
	for i := 0; i < len(advances); i++ {
		index := i
		if !forward {
			index = len(advances) - i - 1
		}
		width := advances[index]
		if measured+width > maxWidth {
			break
		}
		if forward || width != 0 {
			measuredCount = i + 1
		}
		measured += width
	}
	return measuredCount, measured, nil
}
