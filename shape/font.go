package shape

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Style describes the style a caller asks a collection for.
type Style struct {
	// Weight is the CSS-style weight, 100..900. 400 is regular, 700 bold.
	Weight int
	// Italic requests an italic or oblique variant.
	Italic bool
}

// Common styles.
var (
	StyleNormal     = Style{Weight: 400}
	StyleBold       = Style{Weight: 700}
	StyleItalic     = Style{Weight: 400, Italic: true}
	StyleBoldItalic = Style{Weight: 700, Italic: true}
)

// Fakery is the set of synthetic style effects required to render a
// requested style with a font that has no matching real variant.
type Fakery uint8

const (
	// FakeBold requests synthetic emboldening.
	FakeBold Fakery = 1 << iota
	// FakeItalic requests synthetic oblique via a horizontal skew.
	FakeItalic
)

// FakeItalicSkew is the horizontal skew applied for synthetic oblique.
const FakeItalicSkew = -0.25

// Bold reports whether synthetic emboldening is required.
func (f Fakery) Bold() bool { return f&FakeBold != 0 }

// Italic reports whether synthetic oblique is required.
func (f Fakery) Italic() bool { return f&FakeItalic != 0 }

// FontSource is a parsed font file. It is parsed once for shaping
// (go-text/typesetting) and once for metrics and outlines
// (golang.org/x/image/font/sfnt); both forms are retained for the
// lifetime of the source.
//
// FontSource is safe for concurrent use.
type FontSource struct {
	data []byte
	otf  *opentype.Font // metrics, bounds, outlines
	hb   *font.Font     // shaping; read-only, safe for concurrent use
	name string
}

// NewFontSource parses font data (TTF or OTF).
// The data slice is copied and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	otf, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("shape: parsing font: %w", err)
	}

	hbFace, err := font.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("shape: parsing font for shaping: %w", err)
	}

	s := &FontSource{
		data: dataCopy,
		otf:  otf,
		hb:   hbFace.Font,
	}
	if name, err := otf.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = name
	}
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("shape: reading font file: %w", err)
	}
	return NewFontSource(data)
}

// Name returns the font family name, or "" if the font has none.
func (s *FontSource) Name() string { return s.name }

// shapingFace returns a face for one shaping call. font.Face is not
// safe for concurrent use, so every call gets a fresh one; wrapping
// the shared read-only Font is cheap.
func (s *FontSource) shapingFace() *font.Face {
	return font.NewFace(s.hb)
}

// GlyphIndex returns the glyph id for a rune, 0 if uncovered.
func (s *FontSource) GlyphIndex(r rune) GlyphID {
	gid, ok := font.NewFace(s.hb).NominalGlyph(r)
	if !ok {
		return 0
	}
	return GlyphID(gid)
}

// GlyphAdvance returns the horizontal advance of a glyph at the given
// size in pixels.
func (s *FontSource) GlyphAdvance(gid GlyphID, size float64) float64 {
	var buf sfnt.Buffer
	adv, err := s.otf.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), floatToFixed(size), xfont.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(adv)
}

// GlyphBounds returns the ink bounds of a glyph at the given size in
// y-down coordinates relative to the glyph origin.
func (s *FontSource) GlyphBounds(gid GlyphID, size float64) Rect {
	var buf sfnt.Buffer
	bounds, _, err := s.otf.GlyphBounds(&buf, sfnt.GlyphIndex(gid), floatToFixed(size), xfont.HintingNone)
	if err != nil {
		return Rect{}
	}
	return Rect{
		MinX: fixedToFloat(bounds.Min.X),
		MinY: fixedToFloat(bounds.Min.Y),
		MaxX: fixedToFloat(bounds.Max.X),
		MaxY: fixedToFloat(bounds.Max.Y),
	}
}

// Metrics returns font-wide vertical metrics at the given size in
// y-down coordinates (Ascent and Top negative).
func (s *FontSource) Metrics(size float64) FontMetrics {
	var buf sfnt.Buffer
	ppem := floatToFixed(size)

	m, err := s.otf.Metrics(&buf, ppem, xfont.HintingNone)
	if err != nil {
		return FontMetrics{}
	}

	fm := FontMetrics{
		Ascent:  -fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
	}
	fm.Leading = fixedToFloat(m.Height) - (fm.Descent - fm.Ascent)
	if fm.Leading < 0 {
		fm.Leading = 0
	}

	// Top and bottom come from the font bounding box; fall back to
	// ascent/descent when the font carries no usable box.
	if bounds, err := s.otf.Bounds(&buf, ppem, xfont.HintingNone); err == nil && bounds.Min.Y < bounds.Max.Y {
		fm.Top = fixedToFloat(bounds.Min.Y)
		fm.Bottom = fixedToFloat(bounds.Max.Y)
	} else {
		fm.Top = fm.Ascent
		fm.Bottom = fm.Descent
	}
	return fm
}

// GlyphOutline returns the scaled outline segments for a glyph at the
// given size, in y-down coordinates relative to the glyph origin.
// A glyph without an outline (such as a space) yields no segments.
func (s *FontSource) GlyphOutline(gid GlyphID, size float64) ([]Segment, error) {
	var buf sfnt.Buffer
	raw, err := s.otf.LoadGlyph(&buf, sfnt.GlyphIndex(gid), floatToFixed(size), nil)
	if err != nil {
		return nil, fmt.Errorf("shape: loading glyph %d: %w", gid, err)
	}

	segs := make([]Segment, 0, len(raw))
	for _, rs := range raw {
		seg := Segment{}
		switch rs.Op {
		case sfnt.SegmentOpMoveTo:
			seg.Op = SegmentOpMoveTo
		case sfnt.SegmentOpLineTo:
			seg.Op = SegmentOpLineTo
		case sfnt.SegmentOpQuadTo:
			seg.Op = SegmentOpQuadTo
		case sfnt.SegmentOpCubeTo:
			seg.Op = SegmentOpCubeTo
		default:
			continue
		}
		for i, a := range rs.Args {
			seg.Args[i] = Point{X: fixedToFloat(a.X), Y: fixedToFloat(a.Y)}
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

// Point is a 2D outline coordinate.
type Point struct {
	X, Y float64
}

// SegmentOp is the type of an outline path operation.
type SegmentOp uint8

const (
	// SegmentOpMoveTo starts a new contour.
	SegmentOpMoveTo SegmentOp = iota
	// SegmentOpLineTo draws a straight line.
	SegmentOpLineTo
	// SegmentOpQuadTo draws a quadratic Bezier curve.
	SegmentOpQuadTo
	// SegmentOpCubeTo draws a cubic Bezier curve.
	SegmentOpCubeTo
)

// Segment is one outline path operation.
// Args usage: MoveTo/LineTo use Args[0]; QuadTo uses Args[0] as control
// and Args[1] as target; CubeTo uses Args[0], Args[1] as controls and
// Args[2] as target.
type Segment struct {
	Op   SegmentOp
	Args [3]Point
}

// Entry binds a font source to the style it actually provides.
type Entry struct {
	Source *FontSource
	Style  Style
}

// Collection is an ordered set of font sources. Itemization walks the
// entries in order and picks the first one covering a rune, so earlier
// entries take priority.
//
// Collection is safe for concurrent use once built.
type Collection struct {
	entries []Entry
}

// NewCollection builds a collection from entries.
func NewCollection(entries ...Entry) (*Collection, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCollection
	}
	for i, e := range entries {
		if e.Source == nil {
			return nil, fmt.Errorf("shape: collection entry %d has nil source", i)
		}
	}
	c := &Collection{entries: make([]Entry, len(entries))}
	copy(c.entries, entries)
	return c, nil
}

// FakedFont is a concrete source plus the synthetic effects needed to
// approximate a requested style with it.
type FakedFont struct {
	Source *FontSource
	Fakery Fakery
}

// BaseFont returns the entry best matching style, with fakery bits for
// whatever the match lacks. Matching prefers the same italic flag and
// the closest weight.
func (c *Collection) BaseFont(style Style) FakedFont {
	best := 0
	bestScore := -1
	for i, e := range c.entries {
		score := 0
		if e.Style.Italic == style.Italic {
			score += 1000
		}
		diff := e.Style.Weight - style.Weight
		if diff < 0 {
			diff = -diff
		}
		score += 900 - diff
		if score > bestScore {
			bestScore = score
			best = i
		}
	}

	chosen := c.entries[best]
	var fakery Fakery
	if style.Weight >= 600 && chosen.Style.Weight < 600 {
		fakery |= FakeBold
	}
	if style.Italic && !chosen.Style.Italic {
		fakery |= FakeItalic
	}
	return FakedFont{Source: chosen.Source, Fakery: fakery}
}

// Typeface is a collection bound to a requested style.
type Typeface struct {
	Collection *Collection
	Style      Style
}

// NewTypeface binds a collection to a style.
func NewTypeface(c *Collection, style Style) *Typeface {
	return &Typeface{Collection: c, Style: style}
}

// defaultTypeface lazily parses the embedded Go Regular fallback.
var defaultTypeface = sync.OnceValue(func() *Typeface {
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		// The fallback font is embedded in the binary; failing to
		// parse it means the build itself is broken.
		panic("shape: parsing embedded fallback font: " + err.Error())
	}
	c, _ := NewCollection(Entry{Source: src, Style: StyleNormal})
	return NewTypeface(c, StyleNormal)
})

// ResolveDefault returns tf, or the package's default typeface (Go
// Regular at normal style) when tf is nil.
func ResolveDefault(tf *Typeface) *Typeface {
	if tf != nil {
		return tf
	}
	return defaultTypeface()
}

// floatToFixed converts a pixel value to 26.6 fixed point.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a 26.6 fixed point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
