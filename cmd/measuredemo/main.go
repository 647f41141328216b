// Command measuredemo measures a text run and prints its advances,
// metrics, and bounds.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/textmeasure"
	"github.com/gogpu/textmeasure/shape"
)

func main() {
	var (
		text     = flag.String("text", "Hello, world", "text to measure")
		size     = flag.Float64("size", 16, "text size in pixels")
		fontPath = flag.String("font", "", "TTF/OTF font file (default: embedded Go Regular)")
		locale   = flag.String("locale", "", "BCP-47 locale tag")
		rtl      = flag.Bool("rtl", false, "force right-to-left layout")
		maxWidth = flag.Float64("break", 0, "if > 0, report how much text fits in this width")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		textmeasure.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var tf *shape.Typeface
	if *fontPath != "" {
		src, err := shape.NewFontSourceFromFile(*fontPath)
		if err != nil {
			log.Fatalf("Failed to load font: %v", err)
		}
		coll, err := shape.NewCollection(shape.Entry{Source: src, Style: shape.StyleNormal})
		if err != nil {
			log.Fatalf("Failed to build collection: %v", err)
		}
		tf = shape.NewTypeface(coll, shape.StyleNormal)
	}

	paint := textmeasure.NewPaint()
	paint.TextSize = *size
	paint.SetTextLocale(*locale)

	bidi := shape.BidiDefaultLTR
	if *rtl {
		bidi = shape.BidiDefaultRTL
	}

	m := textmeasure.NewMeasurer()
	units := textmeasure.UTF16(*text)
	run := textmeasure.WholeRun(units)

	advances := make([]float64, len(units))
	total, err := m.Advances(paint, tf, run, bidi, advances, 0)
	if err != nil {
		log.Fatalf("Failed to measure: %v", err)
	}

	fmt.Printf("text:    %q (%d code units)\n", *text, len(units))
	fmt.Printf("total:   %.2f\n", total)
	fmt.Printf("advances: %.2f\n", advances)

	bounds, err := m.Bounds(paint, tf, run, bidi)
	if err != nil {
		log.Fatalf("Failed to compute bounds: %v", err)
	}
	fmt.Printf("bounds:  [%d, %d, %d, %d]\n", bounds.Left, bounds.Top, bounds.Right, bounds.Bottom)

	metrics, spacing := m.Metrics(paint, tf)
	fmt.Printf("metrics: top %.2f ascent %.2f descent %.2f bottom %.2f leading %.2f spacing %.2f\n",
		metrics.Top, metrics.Ascent, metrics.Descent, metrics.Bottom, metrics.Leading, spacing)

	if *maxWidth > 0 {
		n, measured, err := m.BreakText(paint, tf, units, bidi, *maxWidth, true)
		if err != nil {
			log.Fatalf("Failed to break text: %v", err)
		}
		fmt.Printf("fits:    %d code units (%.2f px) within %.2f px\n", n, measured, *maxWidth)
	}
}
