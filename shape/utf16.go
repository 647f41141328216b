package shape

import "unicode/utf16"

// Surrogate ranges for UTF-16 validation.
const (
	surrHigh    = 0xD800
	surrHighEnd = 0xDBFF
	surrLow     = 0xDC00
	surrLowEnd  = 0xDFFF
)

func isHighSurrogate(u uint16) bool { return surrHigh <= u && u <= surrHighEnd }
func isLowSurrogate(u uint16) bool  { return surrLow <= u && u <= surrLowEnd }

// decoded is a UTF-16 buffer decoded to runes together with the index
// maps needed to translate cluster and cursor positions between the
// two representations.
type decoded struct {
	runes []rune
	// runeOf maps a code unit index to the index of the rune containing
	// it. Both units of a surrogate pair map to the same rune.
	// len(runeOf) == len(units)+1 so the one-past-the-end offset maps too.
	runeOf []int
	// unitOf maps a rune index to the index of its first code unit.
	// len(unitOf) == len(runes)+1.
	unitOf []int
}

// decodeUTF16 decodes units, replacing unpaired surrogates with U+FFFD
// the way unicode/utf16 does.
func decodeUTF16(units []uint16) decoded {
	d := decoded{
		runes:  make([]rune, 0, len(units)),
		runeOf: make([]int, len(units)+1),
	}

	for i := 0; i < len(units); {
		d.runeOf[i] = len(d.runes)
		u := units[i]
		if isHighSurrogate(u) && i+1 < len(units) && isLowSurrogate(units[i+1]) {
			d.runeOf[i+1] = len(d.runes)
			d.runes = append(d.runes, utf16.DecodeRune(rune(u), rune(units[i+1])))
			d.unitOf = append(d.unitOf, i)
			i += 2
			continue
		}
		if isHighSurrogate(u) || isLowSurrogate(u) {
			d.runes = append(d.runes, '�')
		} else {
			d.runes = append(d.runes, rune(u))
		}
		d.unitOf = append(d.unitOf, i)
		i++
	}

	d.runeOf[len(units)] = len(d.runes)
	d.unitOf = append(d.unitOf, len(units))
	return d
}
