package transforms

import (
	"math/rand/v2"
	"strings"

	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/augment/lexicon"
)

// SwapGenderedWords exchanges gendered words for their counterparts in
// both directions ("king" for "queen" and back). Capitalization and edge
// punctuation survive the swap.
type SwapGenderedWords struct {
	cfg     augment.BaseConfig
	mapping map[string]string
}

// NewSwapGenderedWords creates a gender-swapping transform over the
// built-in pair table.
func NewSwapGenderedWords(cfg augment.BaseConfig) (*SwapGenderedWords, error) {
	cfg = cfg.WithDefaults(augment.GranularityWord)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &SwapGenderedWords{cfg: cfg, mapping: lexicon.Gendered}, nil
}

var _ augment.Transformer = (*SwapGenderedWords)(nil)

// Name implements [augment.Transformer].
func (*SwapGenderedWords) Name() string { return FamilySwapGenderedWords }

// DescribeConfig implements [augment.Describer].
func (t *SwapGenderedWords) DescribeConfig() map[string]any {
	return map[string]any(t.cfg.Fields())
}

// Apply implements [augment.Transformer].
func (t *SwapGenderedWords) Apply(texts []string) ([]string, []augment.Record, error) {
	rng := augment.NewRNG(t.cfg.Seed)

	return augment.PerText(FamilySwapGenderedWords, texts, func(src string) (string, augment.Record, error) {
		dst, units, changed := applyToWords(t.cfg, rng, src,
			func(w string) bool {
				_, core, _ := splitEdgePunct(w)
				_, ok := t.mapping[strings.ToLower(core)]
				return ok
			},
			func(_ *rand.Rand, w string) string {
				lead, core, trail := splitEdgePunct(w)
				swapped := t.mapping[strings.ToLower(core)]
				return lead + matchCapitalization(core, swapped) + trail
			})
		return dst, outcomeFields(t.cfg, units, changed), nil
	})
}
