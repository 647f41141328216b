package shape

import "golang.org/x/text/unicode/bidi"

// visualRun is a maximal same-direction slice of the measured range,
// in rune indices. Runs are produced in visual left-to-right order.
type visualRun struct {
	start, end int // rune indices, half-open
	rtl        bool
}

// forced reports whether the mode pins the whole run to one direction,
// and which.
func (b Bidi) forced() (rtl, ok bool) {
	switch b {
	case BidiForceLTR:
		return false, true
	case BidiForceRTL:
		return true, true
	}
	return false, false
}

// baseRTL is the direction used for neutral content.
func (b Bidi) baseRTL() bool {
	switch b {
	case BidiRTL, BidiDefaultRTL, BidiForceRTL:
		return true
	}
	return false
}

// resolveRuns splits runes[start:end] into visual runs according to
// the bidi mode. Forced modes yield a single run; the remaining modes
// run the Unicode bidi algorithm with the mode's direction as the
// default for content without a strong character.
//
// x/text's Ordering emits runs in logical order and leaves the L2
// reordering rule to the caller, so the runs are reordered here before
// they are returned.
func resolveRuns(runes []rune, start, end int, mode Bidi) []visualRun {
	if start >= end {
		return nil
	}
	if rtl, ok := mode.forced(); ok {
		return []visualRun{{start: start, end: end, rtl: rtl}}
	}

	def := bidi.LeftToRight
	if mode.baseRTL() {
		def = bidi.RightToLeft
	}

	var p bidi.Paragraph
	_, _ = p.SetString(string(runes[start:end]), bidi.DefaultDirection(def))
	ordering, err := p.Order()
	if err != nil {
		return []visualRun{{start: start, end: end, rtl: mode.baseRTL()}}
	}

	runs := make([]visualRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		r := ordering.Run(i)
		// Pos returns rune indices relative to the substring, with an
		// inclusive end.
		s, e := r.Pos()
		runs = append(runs, visualRun{
			start: start + s,
			end:   start + e + 1,
			rtl:   r.Direction() == bidi.RightToLeft,
		})
	}
	reorderVisual(runs, paragraphRTL(runes, start, end, mode))
	return runs
}

// paragraphRTL resolves the paragraph embedding direction: the first strong
// character decides, and the mode's default applies when there is none
// (rules P2 and P3).
func paragraphRTL(runes []rune, start, end int, mode Bidi) bool {
	for _, r := range runes[start:end] {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return false
		case bidi.R, bidi.AL:
			return true
		}
	}
	return mode.baseRTL()
}

// reorderVisual rearranges logical-order runs into visual left-to-right
// order (rule L2). Embedding levels are reconstructed from run parity:
// same-direction runs sit at the base level and opposite-direction runs
// one level above, which matches the resolved levels for text without
// explicit directional controls. L2 then reverses every maximal run
// sequence at or above each level, from the highest level down.
func reorderVisual(runs []visualRun, baseRTL bool) {
	maxLevel := 0
	levels := make([]int, len(runs))
	for i, r := range runs {
		switch {
		case r.rtl:
			levels[i] = 1
		case baseRTL:
			levels[i] = 2
		}
		if levels[i] > maxLevel {
			maxLevel = levels[i]
		}
	}

	for lvl := maxLevel; lvl > 0; lvl-- {
		for i := 0; i < len(runs); {
			if levels[i] < lvl {
				i++
				continue
			}
			j := i
			for j < len(runs) && levels[j] >= lvl {
				j++
			}
			for lo, hi := i, j-1; lo < hi; lo, hi = lo+1, hi-1 {
				runs[lo], runs[hi] = runs[hi], runs[lo]
				levels[lo], levels[hi] = levels[hi], levels[lo]
			}
			i = j
		}
	}
}
