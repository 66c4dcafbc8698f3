// Package symbol implements the UTF-8 codec used by the gap buffer.
//
// The buffer's invariants depend on the exact classification of malformed
// input (truncated sequences, stray continuation bytes, overlong encodings,
// values past the Unicode range), so the codec is spelled out here instead of
// delegating to unicode/utf8. Unlike the standard library, surrogate code
// points are accepted; the buffer only cares about sequence structure.
package symbol

// MaxLen is the longest UTF-8 encoding of a single symbol, in bytes.
const MaxLen = 4

// IsContinuation reports whether b is a UTF-8 continuation byte (10xxxxxx).
func IsContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// Len returns the encoded length of the symbol starting with lead.
// The caller must pass a byte known to begin a valid sequence; continuation
// bytes are not valid input.
func Len(lead byte) int {
	switch {
	case lead >= 0xF0:
		return 4
	case lead >= 0xE0:
		return 3
	case lead >= 0xC0:
		return 2
	default:
		return 1
	}
}

// Decode decodes the first symbol in p.
//
// On success it returns the code point, the number of bytes it occupies and
// ok == true. It fails when p is empty, the sequence is truncated, a
// continuation byte is missing, the encoding is overlong for its length, or
// the value exceeds 0x10FFFF.
func Decode(p []byte) (r rune, size int, ok bool) {
	if len(p) == 0 {
		return 0, 0, false
	}

	b0 := p[0]
	if b0 < 0x80 {
		// ASCII, 0xxxxxxx
		return rune(b0), 1, true
	}

	switch {
	case b0 >= 0xF8:
		return 0, 0, false

	case b0 >= 0xF0:
		// 11110xxx 10xxxxxx 10xxxxxx 10xxxxxx
		if len(p) < 4 || !IsContinuation(p[1]) || !IsContinuation(p[2]) || !IsContinuation(p[3]) {
			return 0, 0, false
		}
		r = rune(b0&0x07)<<18 | rune(p[1]&0x3F)<<12 | rune(p[2]&0x3F)<<6 | rune(p[3]&0x3F)
		if r < 0x10000 || r > 0x10FFFF {
			return 0, 0, false
		}
		return r, 4, true

	case b0 >= 0xE0:
		// 1110xxxx 10xxxxxx 10xxxxxx
		if len(p) < 3 || !IsContinuation(p[1]) || !IsContinuation(p[2]) {
			return 0, 0, false
		}
		r = rune(b0&0x0F)<<12 | rune(p[1]&0x3F)<<6 | rune(p[2]&0x3F)
		if r < 0x800 {
			return 0, 0, false
		}
		return r, 3, true

	case b0 >= 0xC0:
		// 110xxxxx 10xxxxxx
		if len(p) < 2 || !IsContinuation(p[1]) {
			return 0, 0, false
		}
		r = rune(b0&0x1F)<<6 | rune(p[1]&0x3F)
		if r < 0x80 {
			return 0, 0, false
		}
		return r, 2, true

	default:
		// Continuation byte in lead position.
		return 0, 0, false
	}
}

// Valid reports whether p is a well-formed sequence of symbols.
func Valid(p []byte) bool {
	for i := 0; i < len(p); {
		_, n, ok := Decode(p[i:])
		if !ok {
			return false
		}
		i += n
	}
	return true
}
