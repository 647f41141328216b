package shape

import "github.com/go-text/typesetting/segmenter"

// MoveOpt selects how a cursor position relates to the nearest valid
// grapheme cluster boundary.
type MoveOpt int

const (
	// MoveAfter moves to the boundary strictly after the offset.
	MoveAfter MoveOpt = iota
	// MoveAtOrAfter stays put on a boundary, otherwise moves forward.
	MoveAtOrAfter
	// MoveBefore moves to the boundary strictly before the offset.
	MoveBefore
	// MoveAtOrBefore stays put on a boundary, otherwise moves back.
	MoveAtOrBefore
	// MoveAt reports the offset itself, or -1 if it is not a boundary.
	MoveAt
)

// String returns the string representation of the move option.
func (o MoveOpt) String() string {
	switch o {
	case MoveAfter:
		return "After"
	case MoveAtOrAfter:
		return "AtOrAfter"
	case MoveBefore:
		return "Before"
	case MoveAtOrBefore:
		return "AtOrBefore"
	case MoveAt:
		return "At"
	default:
		return unknownStr
	}
}

// boundarySet marks the valid cursor positions within a context span.
// Index i corresponds to code unit offset start+i; both span edges are
// always boundaries.
type boundarySet []bool

// graphemeBoundaries computes the UAX#29 grapheme cluster boundaries of
// text[start:start+count], mapped back to UTF-16 code unit offsets.
// Offsets inside a surrogate pair are never boundaries.
func graphemeBoundaries(text []uint16, start, count int) boundarySet {
	set := make(boundarySet, count+1)
	set[0] = true
	set[count] = true
	if count == 0 {
		return set
	}

	dec := decodeUTF16(text[start : start+count])

	var seg segmenter.Segmenter
	seg.Init(dec.runes)
	iter := seg.GraphemeIterator()
	for iter.Next() {
		g := iter.Grapheme()
		set[dec.unitOf[g.Offset]] = true
	}
	return set
}

// Cursor returns the cursor position obtained by applying opt to
// offset within the context span [start, start+count], following
// grapheme cluster boundaries. It is a pure function of the text and
// does not shape. MoveAt returns -1 when offset is not a boundary.
// Offsets outside the span are clamped to it first.
func Cursor(text []uint16, start, count, offset int, opt MoveOpt) int {
	if count < 0 || start < 0 || start+count > len(text) {
		return -1
	}
	if offset < start {
		offset = start
	}
	if offset > start+count {
		offset = start + count
	}

	set := graphemeBoundaries(text, start, count)
	at := func(o int) bool { return set[o-start] }

	switch opt {
	case MoveAfter:
		if offset < start+count {
			offset++
		}
		fallthrough
	case MoveAtOrAfter:
		for !at(offset) {
			offset++
		}
	case MoveBefore:
		if offset > start {
			offset--
		}
		fallthrough
	case MoveAtOrBefore:
		for !at(offset) {
			offset--
		}
	case MoveAt:
		if !at(offset) {
			return -1
		}
	}
	return offset
}

// IsBoundary reports whether offset is a valid cursor position within
// the context span.
func IsBoundary(text []uint16, start, count, offset int) bool {
	if offset < start || offset > start+count {
		return false
	}
	return graphemeBoundaries(text, start, count)[offset-start]
}
