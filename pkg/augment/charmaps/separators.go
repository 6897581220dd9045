package charmaps

// Punctuation is the separator pool for punctuation insertion.
var Punctuation = []string{".", ";", "?", "!", ",", ":"}

// Whitespace is the separator pool for whitespace insertion.
var Whitespace = []string{" ", "\t", "\n"}

// ZeroWidth is the separator pool for zero-width character insertion.
// These glyphs are invisible in most renderers but survive copy/paste,
// which is what makes them useful for robustness testing.
var ZeroWidth = []string{
	"\u200B", // zero width space
	"\u200C", // zero width non-joiner
	"\u200D", // zero width joiner
	"\u2060", // word joiner
}

// Bidirectional control characters used by the bidirectional transform.
const (
	// RightToLeftOverride forces subsequent text to render right-to-left.
	RightToLeftOverride = "\u202E"

	// PopDirectionalFormatting terminates the most recent override.
	PopDirectionalFormatting = "\u202C"
)
