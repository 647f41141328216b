package textmeasure

import (
	"math"

	"github.com/gogpu/textmeasure/shape"
)

// FontMetricsInt is FontMetrics reduced to integers with the rounding
// downstream line-height computations depend on: ascent, descent and
// leading round to nearest, top floors, bottom ceils.
type FontMetricsInt struct {
	Top     int
	Ascent  int
	Descent int
	Bottom  int
	Leading int
}

// Elegant metrics are fixed fractions of the text size, expressed
// over a 2048-unit em, substituted for the font's own vertical
// metrics when the elegant variant is selected.
const (
	elegantTop     = 2500
	elegantBottom  = -1000
	elegantAscent  = 1900
	elegantDescent = -500
	elegantLeading = 0
	elegantUnitsEm = 2048
)

// Metrics returns the vertical font metrics for the paint's base font
// at its text size, and the recommended line spacing. Metrics are
// measured with font fakery applied; the paint's skew and fake-bold
// are restored before return. The elegant variant replaces the font's
// metrics with fixed fractions of the text size.
func (m *Measurer) Metrics(p *Paint, tf *shape.Typeface) (shape.FontMetrics, float64) {
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
	metrics := faked.Source.Metrics(p.TextSize)
	p.TextSkewX = saveSkew
	p.SetFakeBold(saveBold)

	if p.FontVariant == VariantElegant {
		size := p.TextSize
		metrics.Top = -size * elegantTop / elegantUnitsEm
		metrics.Bottom = -size * elegantBottom / elegantUnitsEm
		metrics.Ascent = -size * elegantAscent / elegantUnitsEm
		metrics.Descent = -size * elegantDescent / elegantUnitsEm
		metrics.Leading = size * elegantLeading / elegantUnitsEm
	}
	return metrics, metrics.Spacing()
}

// MetricsInt returns the integer font metrics and the integer line
// spacing, descent − ascent + leading over the rounded values.
func (m *Measurer) MetricsInt(p *Paint, tf *shape.Typeface) (FontMetricsInt, int) {
	metrics, _ := m.Metrics(p, tf)
	mi := FontMetricsInt{
		Top:     int(math.Floor(metrics.Top)),
		Ascent:  roundToInt(metrics.Ascent),
		Descent: roundToInt(metrics.Descent),
		Bottom:  int(math.Ceil(metrics.Bottom)),
		Leading: roundToInt(metrics.Leading),
	}
	return mi, mi.Descent - mi.Ascent + mi.Leading
}

// Ascent returns the recommended distance above the baseline,
// negative in y-down coordinates.
func (m *Measurer) Ascent(p *Paint, tf *shape.Typeface) float64 {
	metrics, _ := m.Metrics(p, tf)
	return metrics.Ascent
}

// Descent returns the recommended distance below the baseline.
func (m *Measurer) Descent(p *Paint, tf *shape.Typeface) float64 {
	metrics, _ := m.Metrics(p, tf)
	return metrics.Descent
}

// roundToInt rounds to nearest with halves toward positive infinity,
// matching rasterizer scalar rounding.
func roundToInt(v float64) int {
	return int(math.Floor(v + 0.5))
}
