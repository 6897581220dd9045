package transforms

import (
	"math/rand/v2"
	"strings"

	"github.com/textmorph/textmorph/pkg/augment"
)

// applyToWords is the word-gated rewrite engine. It tokenizes src on
// whitespace, collects the words eligible reports true for, converts the
// configured probability into a unit count, samples that many distinct
// words, and rewrites them. Rewritten text is rejoined with single
// spaces.
//
// Returns the new text, the eligible unit count, and the changed count.
func applyToWords(cfg augment.BaseConfig, rng *rand.Rand, src string,
	eligible func(word string) bool,
	rewrite func(rng *rand.Rand, word string) string,
) (string, int, int) {
	words := strings.Fields(src)
	if len(words) == 0 {
		return src, 0, 0
	}

	var eligibleIdx []int
	for i, w := range words {
		if eligible(w) {
			eligibleIdx = append(eligibleIdx, i)
		}
	}

	count := cfg.AugCount(len(eligibleIdx))
	picked := augment.SampleIndexes(rng, len(eligibleIdx), count)

	changed := 0
	for _, j := range picked {
		i := eligibleIdx[j]
		if next := rewrite(rng, words[i]); next != words[i] {
			words[i] = next
			changed++
		}
	}

	return strings.Join(words, " "), len(eligibleIdx), changed
}

// applyToChars is the character-gated counterpart of applyToWords.
// Rewrites may expand a rune into a multi-rune replacement.
func applyToChars(cfg augment.BaseConfig, rng *rand.Rand, src string,
	eligible func(r rune) bool,
	rewrite func(rng *rand.Rand, r rune) string,
) (string, int, int) {
	runes := []rune(src)
	if len(runes) == 0 {
		return src, 0, 0
	}

	var eligibleIdx []int
	for i, r := range runes {
		if eligible(r) {
			eligibleIdx = append(eligibleIdx, i)
		}
	}

	count := cfg.AugCount(len(eligibleIdx))
	picked := augment.SampleIndexes(rng, len(eligibleIdx), count)

	replacements := make(map[int]string, len(picked))
	changed := 0
	for _, j := range picked {
		i := eligibleIdx[j]
		if next := rewrite(rng, runes[i]); next != string(runes[i]) {
			replacements[i] = next
			changed++
		}
	}

	var b strings.Builder
	b.Grow(len(src))
	for i, r := range runes {
		if repl, ok := replacements[i]; ok {
			b.WriteString(repl)
		} else {
			b.WriteRune(r)
		}
	}

	return b.String(), len(eligibleIdx), changed
}

// outcomeFields merges the shared config fields with the per-application
// eligible and changed counts.
func outcomeFields(cfg augment.BaseConfig, units, changed int) augment.Record {
	fields := cfg.Fields()
	fields[augment.KeyUnitCount] = units
	fields[augment.KeyAugCount] = changed
	return fields
}
