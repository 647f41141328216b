// Package shape provides the text layout engine behind textmeasure.
//
// The engine converts a UTF-16 text run plus styling options into a
// Layout: positioned glyph ids with per-code-unit advances, total
// advance, ink bounds, and maximal same-font sub-runs. Shaping is
// performed by go-text/typesetting's HarfBuzz implementation; bidi
// resolution uses golang.org/x/text/unicode/bidi; grapheme cluster
// boundaries follow UAX#29 via go-text/typesetting/segmenter.
//
// All offsets in this package are UTF-16 code unit indices. The engine
// decodes to runes internally and maps cluster indices back to code
// units, so surrogate pairs and ligature clusters behave the way a
// UTF-16 caller expects: a cluster's advance is attributed to its
// first code unit and the remaining units report a zero advance.
package shape
