package sysdir

import (
	"unicode/utf16"
	"unicode/utf8"
)

// UTF-16 surrogate ranges.
const (
	_surr1 = 0xd800 // high surrogates start
	_surr2 = 0xdc00 // low surrogates start
	_surr3 = 0xe000 // surrogates end
)

// utf16ToString transcodes UTF-16 code units into a UTF-8 string.
//
// Surrogate pairs decode to a single code point.
// Unpaired surrogates become U+FFFD.
//
// Kept free of platform dependencies so it can be tested everywhere,
// even though only the Windows resolver calls it.
func utf16ToString(units []uint16) string {
	buf := make([]byte, 0, len(units))
	for i := 0; i < len(units); i++ {
		switch r := rune(units[i]); {
		case r < _surr1 || _surr3 <= r:
			buf = utf8.AppendRune(buf, r)

		case r < _surr2 && i+1 < len(units) &&
			_surr2 <= units[i+1] && units[i+1] < _surr3:
			buf = utf8.AppendRune(buf, utf16.DecodeRune(r, rune(units[i+1])))
			i++

		default:
			buf = utf8.AppendRune(buf, utf8.RuneError)
		}
	}
	return string(buf)
}
