package charmaps

// upsideDown maps characters to their rotated counterparts. Letters with
// no convincing rotation (l, o, s, x, z and digits 0, 1, 8) map to
// themselves and are omitted.
var upsideDown = map[rune]rune{
	'a': 'ɐ', 'b': 'q', 'c': 'ɔ', 'd': 'p', 'e': 'ǝ', 'f': 'ɟ',
	'g': 'ɓ', 'h': 'ɥ', 'i': 'ᴉ', 'j': 'ɾ', 'k': 'ʞ', 'm': 'ɯ',
	'n': 'u', 'p': 'd', 'q': 'b', 'r': 'ɹ', 't': 'ʇ', 'u': 'n',
	'v': 'ʌ', 'w': 'ʍ', 'y': 'ʎ',
	'A': '∀', 'B': 'ᙠ', 'C': 'Ɔ', 'D': 'ᗡ', 'E': 'Ǝ', 'F': 'Ⅎ',
	'G': '⅁', 'J': 'ſ', 'K': 'ʞ', 'L': 'Ꞁ', 'M': 'W', 'P': 'Ԁ',
	'Q': 'Ὁ', 'R': 'ᴚ', 'T': 'Ʇ', 'U': 'Ո', 'V': 'Λ', 'W': 'M',
	'Y': '⅄',
	'1': 'Ɩ', '2': 'ᄅ', '3': 'Ɛ', '4': 'ㄣ', '5': 'ϛ', '6': '9',
	'7': 'ㄥ', '9': '6',
	'.': '˙', ',': '\'', '\'': ',', '"': '„', '?': '¿', '!': '¡',
	'(': ')', ')': '(', '[': ']', ']': '[', '{': '}', '}': '{',
	'<': '>', '>': '<', '&': '⅋', '_': '‾', ';': '؛',
}

// CanFlip reports whether r has an upside-down counterpart distinct from
// itself.
func CanFlip(r rune) bool {
	_, ok := upsideDown[r]
	return ok
}

// FlipRune returns the upside-down counterpart of r, or r itself when no
// rotation exists.
func FlipRune(r rune) rune {
	if flipped, ok := upsideDown[r]; ok {
		return flipped
	}
	return r
}
