package transforms

import (
	"math/rand/v2"

	"github.com/textmorph/textmorph/pkg/augment"
)

// SplitWords breaks gated words in two by inserting a space at a random
// interior position. Only words of at least two characters are eligible.
type SplitWords struct {
	cfg augment.BaseConfig
}

// NewSplitWords creates a word-splitting transform.
func NewSplitWords(cfg augment.BaseConfig) (*SplitWords, error) {
	cfg = cfg.WithDefaults(augment.GranularityWord)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &SplitWords{cfg: cfg}, nil
}

var _ augment.Transformer = (*SplitWords)(nil)

// Name implements [augment.Transformer].
func (*SplitWords) Name() string { return FamilySplitWords }

// DescribeConfig implements [augment.Describer].
func (t *SplitWords) DescribeConfig() map[string]any {
	return map[string]any(t.cfg.Fields())
}

// Apply implements [augment.Transformer].
func (t *SplitWords) Apply(texts []string) ([]string, []augment.Record, error) {
	rng := augment.NewRNG(t.cfg.Seed)

	return augment.PerText(FamilySplitWords, texts, func(src string) (string, augment.Record, error) {
		dst, units, changed := applyToWords(t.cfg, rng, src,
			func(w string) bool { return len([]rune(w)) >= 2 },
			func(rng *rand.Rand, w string) string {
				runes := []rune(w)
				at := 1 + rng.IntN(len(runes)-1)
				return string(runes[:at]) + " " + string(runes[at:])
			})
		return dst, outcomeFields(t.cfg, units, changed), nil
	})
}
