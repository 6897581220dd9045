package transforms

import (
	"math/rand/v2"
	"strings"

	"github.com/textmorph/textmorph/pkg/augment"
)

// ReplaceWords substitutes gated words using a caller-supplied mapping.
// Matching ignores case and edge punctuation; the replacement inherits
// the original word's capitalization and keeps its punctuation.
type ReplaceWords struct {
	cfg     augment.BaseConfig
	mapping map[string]string
}

// NewReplaceWords creates a word-replacement transform. Mapping keys are
// matched case-insensitively. An empty mapping is valid and leaves every
// text unchanged.
func NewReplaceWords(mapping map[string]string, cfg augment.BaseConfig) (*ReplaceWords, error) {
	cfg = cfg.WithDefaults(augment.GranularityWord)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lookup := make(map[string]string, len(mapping))
	for word, repl := range mapping {
		lookup[strings.ToLower(word)] = repl
	}

	return &ReplaceWords{cfg: cfg, mapping: lookup}, nil
}

var _ augment.Transformer = (*ReplaceWords)(nil)

// Name implements [augment.Transformer].
func (*ReplaceWords) Name() string { return FamilyReplaceWords }

// DescribeConfig implements [augment.Describer].
func (t *ReplaceWords) DescribeConfig() map[string]any {
	cfg := map[string]any(t.cfg.Fields())
	cfg["mapping_size"] = len(t.mapping)
	return cfg
}

// Apply implements [augment.Transformer].
func (t *ReplaceWords) Apply(texts []string) ([]string, []augment.Record, error) {
	rng := augment.NewRNG(t.cfg.Seed)

	return augment.PerText(FamilyReplaceWords, texts, func(src string) (string, augment.Record, error) {
		dst, units, changed := applyToWords(t.cfg, rng, src,
			func(w string) bool {
				_, core, _ := splitEdgePunct(w)
				_, ok := t.mapping[strings.ToLower(core)]
				return ok
			},
			func(_ *rand.Rand, w string) string {
				lead, core, trail := splitEdgePunct(w)
				repl := t.mapping[strings.ToLower(core)]
				return lead + matchCapitalization(core, repl) + trail
			})
		return dst, outcomeFields(t.cfg, units, changed), nil
	})
}
