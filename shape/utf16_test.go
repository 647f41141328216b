package shape

import (
	"testing"
	"unicode/utf16"
)

func encode(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

func TestDecodeUTF16(t *testing.T) {
	tests := []struct {
		name  string
		units []uint16
		runes string
	}{
		{"ascii", encode("abc"), "abc"},
		{"surrogate pair", encode("a\U0001F600b"), "a\U0001F600b"},
		{"unpaired high", []uint16{'a', 0xD800, 'b'}, "a�b"},
		{"unpaired low", []uint16{0xDC00, 'a'}, "�a"},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := decodeUTF16(tt.units)
			if string(d.runes) != tt.runes {
				t.Errorf("runes = %q, want %q", string(d.runes), tt.runes)
			}
			if len(d.runeOf) != len(tt.units)+1 {
				t.Errorf("len(runeOf) = %d, want %d", len(d.runeOf), len(tt.units)+1)
			}
			if len(d.unitOf) != len(d.runes)+1 {
				t.Errorf("len(unitOf) = %d, want %d", len(d.unitOf), len(d.runes)+1)
			}
		})
	}
}

func TestDecodeUTF16IndexMaps(t *testing.T) {
	// "a" + emoji (2 units) + "b": units a=0, emoji=1..2, b=3.
	d := decodeUTF16(encode("a\U0001F600b"))

	wantRuneOf := []int{0, 1, 1, 2, 3}
	for i, want := range wantRuneOf {
		if d.runeOf[i] != want {
			t.Errorf("runeOf[%d] = %d, want %d", i, d.runeOf[i], want)
		}
	}

	wantUnitOf := []int{0, 1, 3, 4}
	for i, want := range wantUnitOf {
		if d.unitOf[i] != want {
			t.Errorf("unitOf[%d] = %d, want %d", i, d.unitOf[i], want)
		}
	}
}

func TestSurrogatePredicates(t *testing.T) {
	if !isHighSurrogate(0xD800) || !isHighSurrogate(0xDBFF) {
		t.Error("high surrogate range edges not detected")
	}
	if !isLowSurrogate(0xDC00) || !isLowSurrogate(0xDFFF) {
		t.Error("low surrogate range edges not detected")
	}
	if isHighSurrogate(0xDC00) || isLowSurrogate(0xDBFF) || isHighSurrogate('a') {
		t.Error("non-members detected as surrogates")
	}
}
