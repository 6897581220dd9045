package charmaps

// SimilarUnicode maps lowercase letters to visually similar Unicode
// confusables drawn from Greek, Cyrillic, Armenian, and currency blocks.
// Escape sequences keep homoglyphs distinguishable from their ASCII
// counterparts in source.
var SimilarUnicode = map[rune][]string{
	'a': {"\u0430", "\u03B1", "\u00E0"}, // cyrillic a, greek alpha, a-grave
	'b': {"\u042C", "\u0432"}, // cyrillic soft sign, cyrillic ve
	'c': {"\u0441", "\u00E7"}, // cyrillic es, c-cedilla
	'd': {"\u20AB", "\u010F"}, // dong sign, d-caron
	'e': {"\u0435", "\u0454", "\u06F6"}, // cyrillic e, ukrainian ie, extended arabic-indic six
	'g': {"\u0121", "\u0123"}, // g-dot-above, g-cedilla
	'h': {"\u04BB", "\u0570"}, // cyrillic shha, armenian ho
	'i': {"\u0456", "\u00ED"}, // ukrainian i, i-acute
	'j': {"\u0458", "\u0135"}, // cyrillic je, j-circumflex
	'k': {"\u043A", "\u0137"}, // cyrillic ka, k-cedilla
	'l': {"\u04CF", "\u013C"}, // cyrillic palochka, l-cedilla
	'm': {"\u043C"}, // cyrillic em
	'n': {"\u0578", "\u00F1"}, // armenian vo, n-tilde
	'o': {"\u043E", "\u03BF", "\u00F8"}, // cyrillic o, greek omicron, o-slash
	'p': {"\u0440", "\u03C1"}, // cyrillic er, greek rho
	'q': {"\u211A", "\u051B"}, // double-struck Q, cyrillic qa
	'r': {"\u0433", "\u027E"}, // cyrillic ghe, r-fishhook
	's': {"\u0455", "\u015F"}, // cyrillic dze, s-cedilla
	't': {"\u03C4", "\u0163"}, // greek tau, t-cedilla
	'u': {"\u03C5", "\u00F9"}, // greek upsilon, u-grave
	'v': {"\u03BD", "\u0475"}, // greek nu, cyrillic izhitsa
	'w': {"\u051D", "\u0448"}, // cyrillic we, cyrillic sha
	'x': {"\u0445", "\u04B3"}, // cyrillic ha, ha-descender
	'y': {"\u0443", "\u00FD"}, // cyrillic u, y-acute
	'z': {"\u017C", "\u017E"}, // z-dot-above, z-caron
}

// SimilarUnicodeDigits holds digit confusables for similar-unicode
// replacement.
var SimilarUnicodeDigits = map[rune][]string{
	'0': {"\u2070", "\u06F0"}, // superscript zero, extended arabic-indic zero
	'6': {"\u06F6"},           // extended arabic-indic six
}
