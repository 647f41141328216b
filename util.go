package textmeasure

import "unicode/utf16"

// UTF16 converts a Go string to UTF-16 code units. Supplementary
// characters become surrogate pairs.
func UTF16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// FromUTF16 converts UTF-16 code units back to a Go string. Unpaired
// surrogates become U+FFFD.
func FromUTF16(units []uint16) string {
	return string(utf16.Decode(units))
}
