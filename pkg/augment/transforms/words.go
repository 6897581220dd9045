package transforms

import (
	"strings"
	"unicode"
)

// splitEdgePunct separates leading and trailing punctuation from a token
// so lookups match the bare word and rewrites can reattach the edges.
func splitEdgePunct(tok string) (lead, core, trail string) {
	runes := []rune(tok)

	start := 0
	for start < len(runes) && isEdgePunct(runes[start]) {
		start++
	}
	end := len(runes)
	for end > start && isEdgePunct(runes[end-1]) {
		end--
	}

	return string(runes[:start]), string(runes[start:end]), string(runes[end:])
}

func isEdgePunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// matchCapitalization transfers the leading capitalization of model onto
// word. Only the first rune is considered.
func matchCapitalization(model, word string) string {
	mr := []rune(model)
	wr := []rune(word)
	if len(mr) == 0 || len(wr) == 0 {
		return word
	}
	if unicode.IsUpper(mr[0]) {
		wr[0] = unicode.ToUpper(wr[0])
	} else if unicode.IsLower(mr[0]) {
		wr[0] = unicode.ToLower(wr[0])
	}
	return string(wr)
}

func hasLetter(s string) bool {
	return strings.ContainsFunc(s, unicode.IsLetter)
}
