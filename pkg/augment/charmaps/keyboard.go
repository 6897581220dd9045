package charmaps

// QwertyNeighbors maps each lowercase letter to the keys adjacent to it on
// a US QWERTY layout. Used by the typo simulator for fat-finger
// substitutions.
var QwertyNeighbors = map[rune][]rune{
	'q': {'w', 'a'},
	'w': {'q', 'e', 's'},
	'e': {'w', 'r', 'd'},
	'r': {'e', 't', 'f'},
	't': {'r', 'y', 'g'},
	'y': {'t', 'u', 'h'},
	'u': {'y', 'i', 'j'},
	'i': {'u', 'o', 'k'},
	'o': {'i', 'p', 'l'},
	'p': {'o', 'l'},
	'a': {'q', 's', 'z'},
	's': {'a', 'd', 'w', 'x'},
	'd': {'s', 'f', 'e', 'c'},
	'f': {'d', 'g', 'r', 'v'},
	'g': {'f', 'h', 't', 'b'},
	'h': {'g', 'j', 'y', 'n'},
	'j': {'h', 'k', 'u', 'm'},
	'k': {'j', 'l', 'i'},
	'l': {'k', 'o', 'p'},
	'z': {'a', 'x'},
	'x': {'z', 'c', 's'},
	'c': {'x', 'v', 'd'},
	'v': {'c', 'b', 'f'},
	'b': {'v', 'n', 'g'},
	'n': {'b', 'm', 'h'},
	'm': {'n', 'j'},
}
