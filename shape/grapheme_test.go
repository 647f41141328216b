package shape

import "testing"

func TestCursorAscii(t *testing.T) {
	text := encode("abc")
	tests := []struct {
		name   string
		offset int
		opt    MoveOpt
		want   int
	}{
		{"after advances", 0, MoveAfter, 1},
		{"after clamps at end", 3, MoveAfter, 3},
		{"at-or-after stays", 1, MoveAtOrAfter, 1},
		{"before retreats", 2, MoveBefore, 1},
		{"before clamps at start", 0, MoveBefore, 0},
		{"at-or-before stays", 2, MoveAtOrBefore, 2},
		{"at on boundary", 2, MoveAt, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cursor(text, 0, 3, tt.offset, tt.opt); got != tt.want {
				t.Errorf("Cursor(%d, %v) = %d, want %d", tt.offset, tt.opt, got, tt.want)
			}
		})
	}
}

func TestCursorSurrogatePair(t *testing.T) {
	// a=0, emoji=1..2, b=3: offset 2 splits the pair.
	text := encode("a\U0001F600b")
	tests := []struct {
		name   string
		offset int
		opt    MoveOpt
		want   int
	}{
		{"after jumps whole pair", 1, MoveAfter, 3},
		{"at-or-after leaves interior", 2, MoveAtOrAfter, 3},
		{"before jumps whole pair", 3, MoveBefore, 1},
		{"at-or-before leaves interior", 2, MoveAtOrBefore, 1},
		{"at interior is invalid", 2, MoveAt, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cursor(text, 0, 4, tt.offset, tt.opt); got != tt.want {
				t.Errorf("Cursor(%d, %v) = %d, want %d", tt.offset, tt.opt, got, tt.want)
			}
		})
	}
}

func TestCursorCombiningMark(t *testing.T) {
	// "e" + U+0301 is one grapheme cluster of two code units.
	text := encode("aéb")
	if got := Cursor(text, 0, len(text), 1, MoveAfter); got != 3 {
		t.Errorf("MoveAfter from 1 = %d, want 3 (cluster end)", got)
	}
	if got := Cursor(text, 0, len(text), 2, MoveAt); got != -1 {
		t.Errorf("MoveAt inside cluster = %d, want -1", got)
	}
	if got := Cursor(text, 0, len(text), 2, MoveAtOrBefore); got != 1 {
		t.Errorf("MoveAtOrBefore inside cluster = %d, want 1", got)
	}
}

func TestCursorContextSpan(t *testing.T) {
	text := encode("hello world")

	// Offsets clamp to the context span [6, 11].
	if got := Cursor(text, 6, 5, 2, MoveAtOrAfter); got != 6 {
		t.Errorf("clamped below = %d, want 6", got)
	}
	if got := Cursor(text, 6, 5, 99, MoveAtOrBefore); got != 11 {
		t.Errorf("clamped above = %d, want 11", got)
	}

	// Invalid spans report -1.
	if got := Cursor(text, 6, 99, 7, MoveAt); got != -1 {
		t.Errorf("invalid span = %d, want -1", got)
	}
}

func TestIsBoundary(t *testing.T) {
	text := encode("a\U0001F600b")
	tests := []struct {
		offset int
		want   bool
	}{
		{0, true},
		{1, true},
		{2, false},
		{3, true},
		{4, true},
		{5, false},
		{-1, false},
	}
	for _, tt := range tests {
		if got := IsBoundary(text, 0, 4, tt.offset); got != tt.want {
			t.Errorf("IsBoundary(%d) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}
