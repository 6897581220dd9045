package transforms

import (
	"math/rand/v2"
	"unicode"

	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/augment/charmaps"
)

// SimilarChars substitutes gated characters with visually similar glyphs.
// The two families share this engine and differ only in their glyph
// table: ASCII look-alikes versus Unicode confusables.
type SimilarChars struct {
	family string
	table  map[rune][]string
	cfg    augment.BaseConfig
}

// NewReplaceSimilarChars substitutes ASCII look-alikes ('a' to '@').
func NewReplaceSimilarChars(cfg augment.BaseConfig) (*SimilarChars, error) {
	return newSimilarChars(FamilyReplaceSimilar, charmaps.SimilarASCII, cfg)
}

// NewReplaceSimilarUnicodeChars substitutes Unicode confusables, covering
// both letters and digits.
func NewReplaceSimilarUnicodeChars(cfg augment.BaseConfig) (*SimilarChars, error) {
	table := make(map[rune][]string, len(charmaps.SimilarUnicode)+len(charmaps.SimilarUnicodeDigits))
	for r, glyphs := range charmaps.SimilarUnicode {
		table[r] = glyphs
	}
	for r, glyphs := range charmaps.SimilarUnicodeDigits {
		table[r] = glyphs
	}
	return newSimilarChars(FamilyReplaceSimilarUni, table, cfg)
}

func newSimilarChars(family string, table map[rune][]string, cfg augment.BaseConfig) (*SimilarChars, error) {
	cfg = cfg.WithDefaults(augment.GranularityChar)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &SimilarChars{family: family, table: table, cfg: cfg}, nil
}

var _ augment.Transformer = (*SimilarChars)(nil)

// Name implements [augment.Transformer].
func (t *SimilarChars) Name() string { return t.family }

// DescribeConfig implements [augment.Describer].
func (t *SimilarChars) DescribeConfig() map[string]any {
	return map[string]any(t.cfg.Fields())
}

// Apply implements [augment.Transformer].
func (t *SimilarChars) Apply(texts []string) ([]string, []augment.Record, error) {
	rng := augment.NewRNG(t.cfg.Seed)

	return augment.PerText(t.family, texts, func(src string) (string, augment.Record, error) {
		dst, units, changed := applyToChars(t.cfg, rng, src,
			func(r rune) bool { return len(t.lookup(r)) > 0 },
			func(rng *rand.Rand, r rune) string {
				glyphs := t.lookup(r)
				return glyphs[rng.IntN(len(glyphs))]
			})
		return dst, outcomeFields(t.cfg, units, changed), nil
	})
}

func (t *SimilarChars) lookup(r rune) []string {
	if glyphs, ok := t.table[r]; ok {
		return glyphs
	}
	return t.table[unicode.ToLower(r)]
}
