package textmeasure

import "github.com/gogpu/textmeasure/shape"

// Style specifies whether geometry is filled, stroked, or both.
type Style int

const (
	// StyleFill fills the geometry.
	StyleFill Style = iota
	// StyleStroke strokes the geometry.
	StyleStroke
	// StyleStrokeAndFill strokes and fills the geometry.
	StyleStrokeAndFill
)

// Cap specifies the shape of stroke endpoints.
type Cap int

const (
	// CapButt specifies a flat endpoint.
	CapButt Cap = iota
	// CapRound specifies a rounded endpoint.
	CapRound
	// CapSquare specifies a square endpoint.
	CapSquare
)

// Join specifies the shape of stroke joins.
type Join int

const (
	// JoinMiter specifies a sharp (mitered) join.
	JoinMiter Join = iota
	// JoinRound specifies a rounded join.
	JoinRound
	// JoinBevel specifies a beveled join.
	JoinBevel
)

// Align specifies how text is positioned relative to its origin.
type Align int

const (
	// AlignLeft draws text to the right of the origin.
	AlignLeft Align = iota
	// AlignCenter centers text on the origin.
	AlignCenter
	// AlignRight draws text to the left of the origin.
	AlignRight
)

// Hinting specifies glyph hinting.
type Hinting int

const (
	// HintingOff disables hinting.
	HintingOff Hinting = iota
	// HintingOn enables normal hinting.
	HintingOn
)

// FilterQuality specifies the image filtering level. It replaces the
// boolean filter-bitmap flag that historically shared a bit with the
// text flags; see LegacyFlags.
type FilterQuality int

const (
	// FilterNone disables filtering.
	FilterNone FilterQuality = iota
	// FilterLow enables bilinear filtering.
	FilterLow
	// FilterMedium enables bilinear filtering with mipmaps.
	FilterMedium
	// FilterHigh enables bicubic filtering.
	FilterHigh
)

// TextEncoding specifies how text passed to rendering layers is
// interpreted.
type TextEncoding int

const (
	// EncodingUTF8 interprets text as UTF-8 bytes.
	EncodingUTF8 TextEncoding = iota
	// EncodingUTF16 interprets text as UTF-16 code units.
	EncodingUTF16
	// EncodingUTF32 interprets text as UTF-32 code points.
	EncodingUTF32
	// EncodingGlyphID interprets text as raw glyph ids.
	EncodingGlyphID
)

// FontVariant selects between font height variants.
type FontVariant int

const (
	// VariantDefault uses the font's own vertical metrics.
	VariantDefault FontVariant = iota
	// VariantElegant substitutes the fixed "elegant" metrics used for
	// scripts with tall conjuncts; see Measurer.Metrics.
	VariantElegant
)

// Flags is the paint flag bitset. Bit 1 (0x02) is deliberately absent:
// it historically stored the filter-bitmap boolean, which is now the
// separate FilterQuality field. LegacyFlags synthesizes the combined
// view for callers that still need it.
type Flags uint32

const (
	// FlagAntiAlias enables anti-aliased rendering.
	FlagAntiAlias Flags = 1 << 0
	// FlagDither enables dithering.
	FlagDither Flags = 1 << 2
	// FlagUnderline draws underlined text.
	FlagUnderline Flags = 1 << 3
	// FlagStrikeThru draws struck-through text.
	FlagStrikeThru Flags = 1 << 4
	// FlagFakeBold applies synthetic emboldening.
	FlagFakeBold Flags = 1 << 5
	// FlagLinearText disables glyph position quantization.
	FlagLinearText Flags = 1 << 6
	// FlagSubpixelText enables subpixel glyph positioning.
	FlagSubpixelText Flags = 1 << 7
	// FlagDevKern enables device kerning.
	FlagDevKern Flags = 1 << 8
	// FlagEmbeddedBitmap allows embedded bitmap strikes.
	FlagEmbeddedBitmap Flags = 1 << 10

	// legacyFilterBitmap is the retired filter-bitmap bit, masked out
	// of Flags and synthesized only in the legacy view.
	legacyFilterBitmap Flags = 1 << 1
)

// Has reports whether all bits in f are set.
func (fl Flags) Has(f Flags) bool { return fl&f == f }

// Paint is a bag of rendering and text-styling attributes. Fields are
// plain and directly assignable; the few accessors exist where a set
// has side effects (SetTextLocale) or packs bits (flags, legacy view).
//
// A Paint must not be shared between concurrent Measurer calls: some
// operations temporarily adjust and then restore fields. Clone per
// goroutine instead.
type Paint struct {
	// Style selects fill, stroke, or both.
	Style Style

	// Color is the draw color in ARGB order.
	Color uint32

	// StrokeWidth is the stroke width; 0 requests hairline strokes.
	StrokeWidth float64

	// StrokeMiter is the miter limit for sharp joins.
	StrokeMiter float64

	// StrokeCap is the stroke endpoint shape.
	StrokeCap Cap

	// StrokeJoin is the stroke join shape.
	StrokeJoin Join

	// Flags is the flag bitset, excluding the retired filter bit.
	Flags Flags

	// FilterQuality is the image filtering level.
	FilterQuality FilterQuality

	// Hinting is the glyph hinting mode.
	Hinting Hinting

	// TextAlign positions text relative to its origin.
	TextAlign Align

	// TextEncoding is how rendering layers interpret text buffers.
	TextEncoding TextEncoding

	// TextSize is the text size in pixels.
	TextSize float64

	// TextScaleX scales text horizontally. 1 is unscaled.
	TextScaleX float64

	// TextSkewX shears text horizontally. 0 is upright; synthetic
	// oblique uses negative values.
	TextSkewX float64

	// LetterSpacing is extra advance per cluster, in ems.
	LetterSpacing float64

	// FontVariant selects default or elegant vertical metrics.
	FontVariant FontVariant

	// FontFeatures holds OpenType feature settings in CSS
	// font-feature-settings syntax.
	FontFeatures string

	// HyphenEdit encodes a pending hyphenation edit for line breaking.
	HyphenEdit uint32

	// locale is the canonical BCP-47 tag; set via SetTextLocale.
	locale string
}

// NewPaint creates a Paint with default values. Text defaults to
// glyph-id encoding because measurement always goes through the
// shaping engine.
func NewPaint() *Paint {
	p := &Paint{}
	p.Reset()
	return p
}

// Reset restores all fields to their defaults.
func (p *Paint) Reset() {
	*p = Paint{
		StrokeMiter:  4,
		Hinting:      HintingOn,
		TextEncoding: EncodingGlyphID,
		TextSize:     12,
		TextScaleX:   1,
		Color:        0xFF000000,
	}
}

// Set copies all attributes from src.
func (p *Paint) Set(src *Paint) { *p = *src }

// Clone returns a copy of the Paint.
func (p *Paint) Clone() *Paint {
	c := *p
	return &c
}

// Alpha returns the alpha component of the color.
func (p *Paint) Alpha() uint8 { return uint8(p.Color >> 24) }

// SetAlpha replaces the alpha component of the color.
func (p *Paint) SetAlpha(a uint8) {
	p.Color = p.Color&0x00FFFFFF | uint32(a)<<24
}

// SetFlag sets or clears the given flag bits. The retired filter bit
// is ignored; use FilterQuality.
func (p *Paint) SetFlag(f Flags, on bool) {
	f &^= legacyFilterBitmap
	if on {
		p.Flags |= f
	} else {
		p.Flags &^= f
	}
}

// FakeBold reports whether synthetic emboldening is requested.
func (p *Paint) FakeBold() bool { return p.Flags.Has(FlagFakeBold) }

// SetFakeBold sets synthetic emboldening.
func (p *Paint) SetFakeBold(on bool) { p.SetFlag(FlagFakeBold, on) }

// LegacyFlags returns the historical combined flag word in which
// bit 1 reports whether filtering is enabled.
func (p *Paint) LegacyFlags() uint32 {
	flags := uint32(p.Flags)
	if p.FilterQuality != FilterNone {
		flags |= uint32(legacyFilterBitmap)
	}
	return flags
}

// SetLegacyFlags applies a historical combined flag word: bit 1 maps
// to FilterQuality (low when set, none when clear) and the remaining
// bits replace Flags.
func (p *Paint) SetLegacyFlags(flags uint32) {
	if Flags(flags).Has(legacyFilterBitmap) {
		p.FilterQuality = FilterLow
	} else {
		p.FilterQuality = FilterNone
	}
	p.Flags = Flags(flags) &^ legacyFilterBitmap
}

// IsElegantTextHeight reports whether elegant metrics are selected.
func (p *Paint) IsElegantTextHeight() bool { return p.FontVariant == VariantElegant }

// SetElegantTextHeight selects between default and elegant metrics.
func (p *Paint) SetElegantTextHeight(on bool) {
	if on {
		p.FontVariant = VariantElegant
	} else {
		p.FontVariant = VariantDefault
	}
}

// TextLocale returns the canonical BCP-47 locale tag, or "" when none
// is set.
func (p *Paint) TextLocale() string { return p.locale }

// SetTextLocale canonicalizes locale to a BCP-47 tag and stores it.
// Unresolvable locales fail closed to the empty tag.
func (p *Paint) SetTextLocale(locale string) {
	p.locale = CanonicalLocale(locale)
}

// shapingOptions assembles the engine options from the current text
// attributes.
func (p *Paint) shapingOptions() shape.Options {
	return shape.Options{
		Size:          p.TextSize,
		ScaleX:        p.TextScaleX,
		SkewX:         p.TextSkewX,
		LetterSpacing: p.LetterSpacing,
		FakeBold:      p.FakeBold(),
		Features:      p.FontFeatures,
		Locale:        p.locale,
	}
}
