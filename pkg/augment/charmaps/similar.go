package charmaps

// SimilarASCII maps lowercase letters to visually similar ASCII
// substitutes. Multi-character substitutes are allowed (e.g. 'd' -> "|)").
var SimilarASCII = map[rune][]string{
	'a': {"@", "4"},
	'b': {"8", "|3"},
	'c': {"(", "<"},
	'd': {"|)", "c|"},
	'e': {"3"},
	'g': {"9", "6"},
	'h': {"#", "|-|"},
	'i': {"1", "!"},
	'k': {"|<"},
	'l': {"|", "1"},
	'm': {"/\\/\\"},
	'n': {"/\\/"},
	'o': {"0", "()"},
	's': {"$", "5"},
	't': {"+", "7"},
	'u': {"(_)"},
	'v': {"\\/"},
	'w': {"vv", "\\/\\/"},
	'x': {"><"},
	'z': {"2"},
}
