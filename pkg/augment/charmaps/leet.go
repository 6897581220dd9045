package charmaps

// Leet maps letters to their leetspeak digits. The encoder lowercases
// unmapped letters, so only the substituted set is listed here.
var Leet = map[rune]string{
	'a': "4",
	'e': "3",
	'l': "1",
	'o': "0",
	's': "5",
	't': "7",
}
