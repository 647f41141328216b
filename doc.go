// Package textmeasure measures shaped text against a paint-style
// attribute model.
//
// # Overview
//
// textmeasure exposes a Paint attribute bag (size, scale, skew, letter
// spacing, locale, font features, flags) and a Measurer facade that
// turns a paint configuration plus a text run into measurements:
// total and per-character advances, grapheme-aware cursor positions,
// glyph outline paths, ink bounds, glyph-presence queries, and
// mappings between cursor offsets and cumulative advances. Shaping is
// delegated to the engine in the shape subpackage, backed by
// go-text/typesetting's HarfBuzz implementation.
//
// # Quick start
//
//	m := textmeasure.NewMeasurer()
//	p := textmeasure.NewPaint()
//	p.TextSize = 20
//
//	text := textmeasure.UTF16("Hello")
//	run := textmeasure.WholeRun(text)
//	total, err := m.Advances(p, nil, run, shape.BidiLTR, nil, 0)
//
// # Text indexing
//
// All offsets are UTF-16 code unit indices over []uint16 buffers; use
// UTF16 and FromUTF16 to convert. A run carries both the measured
// range and a wider context range the shaper may examine, so shaping
// context (joining scripts, kerning across the boundary) is preserved.
//
// # Concurrency
//
// A Measurer is safe for concurrent use, but a Paint is not: several
// operations temporarily adjust and then restore paint fields (skew
// and fake-bold for font fakery, alignment and encoding during path
// extraction), so a Paint must not be shared between concurrent calls.
// Clone the Paint per goroutine instead.
package textmeasure
