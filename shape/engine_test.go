package shape

import (
	"math"
	"testing"

	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/shaping"
)

func shapeText(t *testing.T, text string, req func(*Request)) *Layout {
	t.Helper()
	units := encode(text)
	r := Request{
		Text:    units,
		Start:   0,
		Count:   len(units),
		Bidi:    BidiDefaultLTR,
		Options: Options{Size: 16},
	}
	if req != nil {
		req(&r)
	}
	return NewHarfBuzz().Shape(r)
}

func TestShapeBasic(t *testing.T) {
	l := shapeText(t, "AB", nil)

	if l.NumGlyphs() != 2 {
		t.Fatalf("NumGlyphs() = %d, want 2", l.NumGlyphs())
	}
	if len(l.Advances) != 2 {
		t.Fatalf("len(Advances) = %d, want 2", len(l.Advances))
	}
	for i, a := range l.Advances {
		if a <= 0 {
			t.Errorf("Advances[%d] = %v, want positive", i, a)
		}
	}
	if got := l.Advances[0] + l.Advances[1]; math.Abs(l.Total-got) > 1e-9 {
		t.Errorf("Total = %v, want sum of advances %v", l.Total, got)
	}
	if l.Ink.Empty() {
		t.Error("Ink bounds empty for visible glyphs")
	}
	if l.Ink.MinY >= 0 {
		t.Errorf("Ink.MinY = %v, want negative (ink above baseline)", l.Ink.MinY)
	}
	if len(l.Runs) != 1 {
		t.Errorf("len(Runs) = %d, want 1 for single-font text", len(l.Runs))
	}

	// Glyph positions advance monotonically for LTR text.
	if l.Glyphs[1].X <= l.Glyphs[0].X {
		t.Errorf("glyph X %v then %v, want increasing", l.Glyphs[0].X, l.Glyphs[1].X)
	}
	if l.Glyphs[0].Cluster != 0 || l.Glyphs[1].Cluster != 1 {
		t.Errorf("clusters = %d, %d, want 0, 1", l.Glyphs[0].Cluster, l.Glyphs[1].Cluster)
	}
}

func TestShapeInvalidRange(t *testing.T) {
	tests := []struct {
		name string
		req  func(*Request)
	}{
		{"zero count", func(r *Request) { r.Count = 0 }},
		{"negative start", func(r *Request) { r.Start = -1 }},
		{"range past end", func(r *Request) { r.Start = 1; r.Count = 5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := shapeText(t, "ab", tt.req)
			if l.NumGlyphs() != 0 || l.Total != 0 {
				t.Errorf("got %d glyphs total %v, want empty layout", l.NumGlyphs(), l.Total)
			}
		})
	}
}

func TestShapeSubrangeWithContext(t *testing.T) {
	whole := shapeText(t, "abc", nil)

	// Measure only "b" with "abc" as context.
	sub := shapeText(t, "abc", func(r *Request) { r.Start = 1; r.Count = 1 })

	if len(sub.Advances) != 1 {
		t.Fatalf("len(Advances) = %d, want 1", len(sub.Advances))
	}
	if math.Abs(sub.Advances[0]-whole.Advances[1]) > 1e-6 {
		t.Errorf("contextual advance of 'b' = %v, want %v", sub.Advances[0], whole.Advances[1])
	}
}

func TestShapeSurrogatePairCluster(t *testing.T) {
	// The emoji is uncovered by Go Regular but must still occupy one
	// cluster spanning both code units.
	l := shapeText(t, "a\U0001F600", nil)

	if len(l.Advances) != 3 {
		t.Fatalf("len(Advances) = %d, want 3", len(l.Advances))
	}
	if l.Advances[2] != 0 {
		t.Errorf("Advances[2] = %v, want 0 (trailing surrogate unit)", l.Advances[2])
	}
}

func TestShapeScaleX(t *testing.T) {
	base := shapeText(t, "AB", nil)
	wide := shapeText(t, "AB", func(r *Request) { r.Options.ScaleX = 2 })

	if math.Abs(wide.Total-2*base.Total) > 1e-6 {
		t.Errorf("Total at scaleX 2 = %v, want %v", wide.Total, 2*base.Total)
	}
}

func TestShapeLetterSpacing(t *testing.T) {
	base := shapeText(t, "AB", nil)
	spaced := shapeText(t, "AB", func(r *Request) { r.Options.LetterSpacing = 0.5 })

	// Half an em per cluster, two clusters.
	want := base.Total + 2*0.5*16
	if math.Abs(spaced.Total-want) > 1e-6 {
		t.Errorf("Total with letter spacing = %v, want %v", spaced.Total, want)
	}
}

func TestShapeForcedRTL(t *testing.T) {
	l := shapeText(t, "AB", func(r *Request) { r.Bidi = BidiForceRTL })

	if l.NumGlyphs() != 2 {
		t.Fatalf("NumGlyphs() = %d, want 2", l.NumGlyphs())
	}
	// Visual order is reversed: the first glyph belongs to 'B'.
	if l.Glyphs[0].Cluster != 1 || l.Glyphs[1].Cluster != 0 {
		t.Errorf("clusters = %d, %d, want 1, 0 in RTL visual order",
			l.Glyphs[0].Cluster, l.Glyphs[1].Cluster)
	}
	// Per-unit advances still attribute to logical units.
	for i, a := range l.Advances {
		if a <= 0 {
			t.Errorf("Advances[%d] = %v, want positive", i, a)
		}
	}
}

func TestShapeConcurrent(t *testing.T) {
	e := NewHarfBuzz()
	units := encode("concurrent shaping")
	req := Request{
		Text:    units,
		Count:   len(units),
		Bidi:    BidiDefaultLTR,
		Options: Options{Size: 14},
	}

	ref := e.Shape(req)
	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 20; j++ {
				l := e.Shape(req)
				if l.Total != ref.Total {
					t.Errorf("Total = %v, want %v", l.Total, ref.Total)
					return
				}
			}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}
}

func TestParseFontFeatures(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []shaping.FontFeature
	}{
		{
			name: "single tag",
			in:   "'smcp'",
			want: []shaping.FontFeature{{Tag: ot.MustNewTag("smcp"), Value: 1}},
		},
		{
			name: "on off values",
			in:   "'liga' off, 'kern' on",
			want: []shaping.FontFeature{
				{Tag: ot.MustNewTag("liga"), Value: 0},
				{Tag: ot.MustNewTag("kern"), Value: 1},
			},
		},
		{
			name: "integer value",
			in:   `"ss01" 2`,
			want: []shaping.FontFeature{{Tag: ot.MustNewTag("ss01"), Value: 2}},
		},
		{
			name: "malformed entries dropped",
			in:   "'toolong', 'x', 'liga' maybe, 'kern'",
			want: []shaping.FontFeature{{Tag: ot.MustNewTag("kern"), Value: 1}},
		},
		{
			name: "empty",
			in:   "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFontFeatures(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d features, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("feature[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFontFeaturesCached(t *testing.T) {
	e := NewHarfBuzz()
	a := e.fontFeatures("'liga' off")
	b := e.fontFeatures("'liga' off")
	if len(a) != 1 || len(b) != 1 || a[0] != b[0] {
		t.Errorf("cached parse differs: %v vs %v", a, b)
	}
}
