package shape

// Measurement maps between cursor offsets and cumulative advances over
// a shaped layout. The functions own the exact tie-break and
// within-cluster policies; callers must not re-derive them.

// clusterSpan returns the cluster containing the relative code unit
// offset rel, as half-open relative offsets. Cluster starts are the
// Cluster fields of the layout's glyphs; a layout with no glyphs
// treats every unit as its own cluster.
func (l *Layout) clusterSpan(rel int) (start, end int) {
	start, end = rel, rel+1
	found := false
	for _, g := range l.Glyphs {
		if g.Cluster <= rel && (!found || g.Cluster > start) {
			start = g.Cluster
			found = true
		}
	}
	if !found {
		return rel, rel + 1
	}
	end = len(l.Advances)
	for _, g := range l.Glyphs {
		if g.Cluster > rel && g.Cluster < end {
			end = g.Cluster
		}
	}
	return start, end
}

// RunAdvance returns the cumulative advance from the start of the
// measured range up to offset. Offsets inside a ligature cluster
// divide the cluster's advance evenly across its grapheme boundaries,
// so a cursor inside "fi" lands halfway through the ligature.
// offset is in code units relative to text; the measured range is
// [start, start+count).
func RunAdvance(l *Layout, text []uint16, start, count, offset int) float64 {
	rel := offset - start
	if rel <= 0 {
		return 0
	}
	if rel > count {
		rel = count
	}

	sum := func(from, to int) float64 {
		total := 0.0
		for i := from; i < to && i < len(l.Advances); i++ {
			total += l.Advances[i]
		}
		return total
	}

	cs, ce := l.clusterSpan(rel - 1)
	if rel == ce || cs >= rel {
		return sum(0, rel)
	}

	// offset splits the cluster [cs, ce): count grapheme boundaries on
	// each side and apportion the cluster advance.
	clusterAdv := sum(cs, ce)
	base := sum(0, cs)

	bounds := graphemeBoundaries(text, start+cs, ce-cs)
	total, before := 0, 0
	for i := 1; i <= ce-cs; i++ {
		if !bounds[i] {
			continue
		}
		total++
		if cs+i <= rel {
			before++
		}
	}
	if total == 0 {
		return base + clusterAdv
	}
	return base + clusterAdv*float64(before)/float64(total)
}

// OffsetForAdvance returns the cursor offset whose cumulative advance
// is nearest to advance, searching the grapheme boundaries of the
// measured range. Ties resolve to the lower offset. The result is in
// code units relative to text, in [start, start+count].
func OffsetForAdvance(l *Layout, text []uint16, start, count int, advance float64) int {
	bounds := graphemeBoundaries(text, start, count)

	best := start
	bestDist := advance
	if bestDist < 0 {
		bestDist = -bestDist
	}

	for rel := 1; rel <= count; rel++ {
		if !bounds[rel] {
			continue
		}
		a := RunAdvance(l, text, start, count, start+rel)
		d := a - advance
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			bestDist = d
			best = start + rel
		}
		if a > advance {
			// Advances are monotonic over boundaries; nothing further
			// can get closer.
			break
		}
	}
	return best
}
