package shape

import (
	"strconv"
	"strings"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/textmeasure/cache"
)

// Options carries the style attributes that influence shaping and
// measurement. Callers assemble it from their own style model.
type Options struct {
	// Size is the text size in pixels.
	Size float64

	// ScaleX scales all horizontal measurements. 0 means 1.
	ScaleX float64

	// SkewX is the synthetic oblique shear. It does not change
	// advances; it is carried so path extraction can apply it.
	SkewX float64

	// LetterSpacing is extra advance per cluster, in ems.
	LetterSpacing float64

	// FakeBold requests synthetic emboldening. It does not change
	// advances; it is carried for rendering layers.
	FakeBold bool

	// Features holds OpenType feature settings in CSS
	// font-feature-settings form, e.g. "'smcp' 1, 'liga' off".
	Features string

	// Locale is a BCP-47 tag guiding language-specific shaping.
	Locale string
}

// scale returns the effective horizontal scale.
func (o Options) scale() float64 {
	if o.ScaleX == 0 {
		return 1
	}
	return o.ScaleX
}

// Request describes one shaping call. Text is the full context span
// the shaper may examine; [Start, Start+Count) is the measured range,
// in code units relative to Text.
type Request struct {
	Text     []uint16
	Start    int
	Count    int
	Bidi     Bidi
	Typeface *Typeface
	Options  Options
}

// Engine shapes a request into a Layout. Implementations must treat
// the request as validated: range checking is the caller's job.
type Engine interface {
	Shape(req Request) *Layout
}

// HarfBuzz is the production Engine, backed by go-text/typesetting's
// HarfBuzz implementation.
//
// HarfBuzz is safe for concurrent use: shaper instances are pooled
// (shaping.HarfbuzzShaper is not concurrent-safe) and parsed feature
// strings are cached in a bounded LRU.
type HarfBuzz struct {
	pool     sync.Pool
	features *cache.Cache[string, []shaping.FontFeature]
}

// NewHarfBuzz creates a HarfBuzz engine.
func NewHarfBuzz() *HarfBuzz {
	return &HarfBuzz{
		pool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		features: cache.New[string, []shaping.FontFeature](64),
	}
}

// fontSubRun is a maximal same-font slice of a visual run, in rune
// indices.
type fontSubRun struct {
	start, end int
	src        *FontSource
}

// itemize splits runes[start:end) into maximal sub-runs covered by one
// collection entry, in logical order. Uncovered runes fall back to the
// first entry so they shape to its missing glyph.
func (c *Collection) itemize(runes []rune, start, end int) []fontSubRun {
	faces := make([]*font.Face, len(c.entries))
	pick := func(r rune) *FontSource {
		for i := range c.entries {
			if faces[i] == nil {
				faces[i] = c.entries[i].Source.shapingFace()
			}
			if _, ok := faces[i].NominalGlyph(r); ok {
				return c.entries[i].Source
			}
		}
		return c.entries[0].Source
	}

	var subs []fontSubRun
	for i := start; i < end; i++ {
		src := pick(runes[i])
		if n := len(subs); n > 0 && subs[n-1].src == src {
			subs[n-1].end = i + 1
			continue
		}
		subs = append(subs, fontSubRun{start: i, end: i + 1, src: src})
	}
	return subs
}

// detectScript returns the script of the first non-space rune in
// runes[start:end), defaulting to Latin. Mixed-script sub-runs take
// the first script; itemization has already split by font coverage,
// which tracks script boundaries closely in practice.
func detectScript(runes []rune, start, end int) language.Script {
	for _, r := range runes[start:end] {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// Shape implements Engine.
func (e *HarfBuzz) Shape(req Request) *Layout {
	l := &Layout{}
	if req.Count <= 0 || req.Start < 0 || req.Start+req.Count > len(req.Text) {
		return l
	}
	l.Advances = make([]float64, req.Count)

	tf := ResolveDefault(req.Typeface)
	opts := req.Options
	scale := opts.scale()
	spacing := opts.LetterSpacing * opts.Size

	dec := decodeUTF16(req.Text)
	runeStart := dec.runeOf[req.Start]
	runeEnd := dec.runeOf[req.Start+req.Count]
	if runeEnd <= runeStart {
		return l
	}

	lang := language.NewLanguage("en")
	if opts.Locale != "" {
		lang = language.NewLanguage(opts.Locale)
	}
	feats := e.fontFeatures(opts.Features)

	penX := 0.0
	for _, vr := range resolveRuns(dec.runes, runeStart, runeEnd, req.Bidi) {
		subs := tf.Collection.itemize(dec.runes, vr.start, vr.end)
		if vr.rtl {
			// Visual order of the sub-runs is reversed for an RTL run;
			// glyphs within each sub-run come back already reversed
			// from the shaper.
			for i, j := 0, len(subs)-1; i < j; i, j = i+1, j-1 {
				subs[i], subs[j] = subs[j], subs[i]
			}
		}

		dir := di.DirectionLTR
		if vr.rtl {
			dir = di.DirectionRTL
		}

		for _, sub := range subs {
			input := shaping.Input{
				Text:         dec.runes,
				RunStart:     sub.start,
				RunEnd:       sub.end,
				Direction:    dir,
				Face:         sub.src.shapingFace(),
				Size:         floatToFixed(opts.Size),
				Script:       detectScript(dec.runes, sub.start, sub.end),
				Language:     lang,
				FontFeatures: feats,
			}

			shaper := e.pool.Get().(*shaping.HarfbuzzShaper)
			out := shaper.Shape(input)
			e.pool.Put(shaper)

			penX = l.placeRun(out.Glyphs, sub.src, dec, req, penX, scale, spacing)
		}
	}

	l.Total = penX
	return l
}

// placeRun positions one shaped sub-run starting at penX, attributing
// cluster advances to code units and accumulating ink bounds. It
// returns the advanced pen position.
func (l *Layout) placeRun(glyphs []shaping.Glyph, src *FontSource, dec decoded, req Request, penX, scale, spacing float64) float64 {
	for i := 0; i < len(glyphs); {
		// One cluster: consecutive glyphs sharing a ClusterIndex.
		j := i + 1
		for j < len(glyphs) && glyphs[j].ClusterIndex == glyphs[i].ClusterIndex {
			j++
		}

		clusterAdv := spacing
		inner := 0.0
		for k := i; k < j; k++ {
			g := glyphs[k]
			x := penX + spacing/2 + inner + fixedToFloat(g.XOffset)*scale
			y := -fixedToFloat(g.YOffset)
			l.appendGlyph(Glyph{
				ID:      GlyphID(g.GlyphID),
				X:       x,
				Y:       y,
				Cluster: dec.unitOf[g.ClusterIndex] - req.Start,
				Source:  src,
			})

			// Ink bounds, y-down: YBearing is above the baseline and
			// Height is negative.
			bx := x + fixedToFloat(g.XBearing)*scale
			by := y - fixedToFloat(g.YBearing)
			l.Ink = l.Ink.Union(Rect{
				MinX: bx,
				MinY: by,
				MaxX: bx + fixedToFloat(g.Width)*scale,
				MaxY: by - fixedToFloat(g.Height),
			})

			adv := fixedToFloat(g.XAdvance) * scale
			inner += adv
			clusterAdv += adv
		}

		cu := dec.unitOf[glyphs[i].ClusterIndex] - req.Start
		if cu >= 0 && cu < len(l.Advances) {
			l.Advances[cu] += clusterAdv
		}
		penX += clusterAdv
		i = j
	}
	return penX
}

// fontFeatures parses a feature-settings string, caching the result.
func (e *HarfBuzz) fontFeatures(s string) []shaping.FontFeature {
	if s == "" {
		return nil
	}
	return e.features.GetOrCreate(s, func() []shaping.FontFeature {
		return parseFontFeatures(s)
	})
}

// parseFontFeatures parses CSS font-feature-settings syntax: a
// comma-separated list of quoted 4-byte tags, each with an optional
// integer or on/off value. Malformed entries are dropped.
func parseFontFeatures(s string) []shaping.FontFeature {
	var out []shaping.FontFeature
	for _, part := range strings.Split(s, ",") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) == 0 {
			continue
		}
		tag := strings.Trim(fields[0], `'"`)
		if len(tag) != 4 {
			Logger().Debug("shape: dropping malformed feature tag", "tag", fields[0])
			continue
		}
		value := uint32(1)
		if len(fields) > 1 {
			switch fields[1] {
			case "on":
				value = 1
			case "off":
				value = 0
			default:
				v, err := strconv.ParseUint(fields[1], 10, 32)
				if err != nil {
					Logger().Debug("shape: dropping malformed feature value", "value", fields[1])
					continue
				}
				value = uint32(v)
			}
		}
		out = append(out, shaping.FontFeature{Tag: ot.MustNewTag(tag), Value: value})
	}
	return out
}
