package transforms

import (
	"github.com/textmorph/textmorph/pkg/augment"
)

// ===== Functional façade =====
//
// One free function per family, wrapping a default-constructed instance
// for one-off use. Callers who apply a transform repeatedly or tune the
// full configuration surface should construct the struct instead.

// BaselineText runs the no-op tokenization round trip.
func BaselineText(texts []string) ([]string, []augment.Record, error) {
	return NewBaseline().Apply(texts)
}

// ApplyLambdaText runs an arbitrary labeled mutation over texts.
func ApplyLambdaText(texts []string, label string, fn func(string) (string, error)) ([]string, []augment.Record, error) {
	t, err := NewApplyLambda(label, fn)
	if err != nil {
		return nil, nil, err
	}
	return t.Apply(texts)
}

// ChangeCaseText recases roughly a third of the words of each text.
func ChangeCaseText(texts []string, style string, seed uint64) ([]string, []augment.Record, error) {
	t, err := NewChangeCase(style, augment.BaseConfig{AugP: DefaultAugP, Seed: seed})
	if err != nil {
		return nil, nil, err
	}
	return t.Apply(texts)
}

// ContractionsText collapses matched phrases into contractions.
func ContractionsText(texts []string, seed uint64) ([]string, []augment.Record, error) {
	t, err := NewContractions(augment.BaseConfig{AugP: DefaultAugP, Seed: seed})
	if err != nil {
		return nil, nil, err
	}
	return t.Apply(texts)
}

// EncodeTextWith encodes texts with the named encoder at the given
// granularity.
func EncodeTextWith(texts []string, encoder string, granularity augment.Granularity) ([]string, []augment.Record, error) {
	t, err := NewEncodeText(encoder, augment.BaseConfig{AugP: DefaultAugP, Granularity: granularity})
	if err != nil {
		return nil, nil, err
	}
	return t.Apply(texts)
}

// InsertPunctuationCharsText weaves punctuation between all characters.
func InsertPunctuationCharsText(texts []string, seed uint64) ([]string, []augment.Record, error) {
	t, err := NewInsertPunctuationChars(augment.GranularityAll, 1.0, false, seed)
	if err != nil {
		return nil, nil, err
	}
	return t.Apply(texts)
}

// InsertWhitespaceCharsText weaves whitespace between all characters.
func InsertWhitespaceCharsText(texts []string, seed uint64) ([]string, []augment.Record, error) {
	t, err := NewInsertWhitespaceChars(augment.GranularityAll, 1.0, false, seed)
	if err != nil {
		return nil, nil, err
	}
	return t.Apply(texts)
}

// InsertZeroWidthCharsText weaves zero-width characters between all
// characters.
func InsertZeroWidthCharsText(texts []string, seed uint64) ([]string, []augment.Record, error) {
	t, err := NewInsertZeroWidthChars(augment.GranularityAll, 1.0, false, seed)
	if err != nil {
		return nil, nil, err
	}
	return t.Apply(texts)
}

// InsertTextTokens splices one random pool token into each text.
func InsertTextTokens(texts []string, pool []string, seed uint64) ([]string, []augment.Record, error) {
	t, err := NewInsertText(pool, 1, LocationRandom, seed)
	if err != nil {
		return nil, nil, err
	}
	return t.Apply(texts)
}

// MergeWordsText fuses roughly a third of adjacent word pairs.
func MergeWordsText(texts []string, seed uint64) ([]string, []augment.Record, error) {
	t, err := NewMergeWords(augment.BaseConfig{AugP: DefaultAugP, Seed: seed})
	if err != nil {
		return nil, nil, err
	}
	return t.Apply(texts)
}

// ReplaceBidirectionalText reverses each text behind directional
// overrides.
func ReplaceBidirectionalText(texts []string) ([]string, []augment.Record, error) {
	t, err := NewReplaceBidirectional(augment.GranularityAll)
	if err != nil {
		return nil, nil, err
	}
	return t.Apply(texts)
}

// ReplaceFunFontsText restyles each text in a random decorative font.
func ReplaceFunFontsText(texts []string, seed uint64) ([]string, []augment.Record, error) {
	t, err := NewReplaceFunFonts(FontRandom, false, augment.BaseConfig{AugP: DefaultAugP, Seed: seed})
	if err != nil {
		return nil, nil, err
	}
	return t.Apply(texts)
}

// ReplaceSimilarCharsText substitutes ASCII look-alike glyphs.
func ReplaceSimilarCharsText(texts []string, seed uint64) ([]string, []augment.Record, error) {
	t, err := NewReplaceSimilarChars(augment.BaseConfig{AugP: DefaultAugP, Seed: seed})
	if err != nil {
		return nil, nil, err
	}
	return t.Apply(texts)
}

// ReplaceSimilarUnicodeCharsText substitutes Unicode confusables.
func ReplaceSimilarUnicodeCharsText(texts []string, seed uint64) ([]string, []augment.Record, error) {
	t, err := NewReplaceSimilarUnicodeChars(augment.BaseConfig{AugP: DefaultAugP, Seed: seed})
	if err != nil {
		return nil, nil, err
	}
	return t.Apply(texts)
}

// ReplaceTextWith swaps texts that match the mapping exactly.
func ReplaceTextWith(texts []string, mapping map[string]string) ([]string, []augment.Record, error) {
	t, err := NewReplaceText(mapping)
	if err != nil {
		return nil, nil, err
	}
	return t.Apply(texts)
}

// ReplaceUpsideDownText rotates each text 180 degrees.
func ReplaceUpsideDownText(texts []string) ([]string, []augment.Record, error) {
	t, err := NewReplaceUpsideDown(augment.BaseConfig{AugP: DefaultAugP})
	if err != nil {
		return nil, nil, err
	}
	return t.Apply(texts)
}

// ReplaceWordsText substitutes mapped words.
func ReplaceWordsText(texts []string, mapping map[string]string, seed uint64) ([]string, []augment.Record, error) {
	t, err := NewReplaceWords(mapping, augment.BaseConfig{AugP: DefaultAugP, Seed: seed})
	if err != nil {
		return nil, nil, err
	}
	return t.Apply(texts)
}

// SimulateTyposText injects mixed typing mistakes.
func SimulateTyposText(texts []string, seed uint64) ([]string, []augment.Record, error) {
	t, err := NewSimulateTypos(TypoAll, augment.BaseConfig{AugP: DefaultAugP, Seed: seed})
	if err != nil {
		return nil, nil, err
	}
	return t.Apply(texts)
}

// SplitWordsText breaks random words in two.
func SplitWordsText(texts []string, seed uint64) ([]string, []augment.Record, error) {
	t, err := NewSplitWords(augment.BaseConfig{AugP: DefaultAugP, Seed: seed})
	if err != nil {
		return nil, nil, err
	}
	return t.Apply(texts)
}

// SwapGenderedWordsText exchanges gendered words for their counterparts.
func SwapGenderedWordsText(texts []string, seed uint64) ([]string, []augment.Record, error) {
	t, err := NewSwapGenderedWords(augment.BaseConfig{AugP: DefaultAugP, Seed: seed})
	if err != nil {
		return nil, nil, err
	}
	return t.Apply(texts)
}
