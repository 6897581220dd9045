package transforms

import (
	"strings"

	"github.com/textmorph/textmorph/pkg/augment"
)

// MergeWords deletes the space between gated pairs of adjacent words,
// fusing them into one token. The eligible units are the word gaps, so a
// text of n words has n-1 units.
type MergeWords struct {
	cfg augment.BaseConfig
}

// NewMergeWords creates a word-merging transform.
func NewMergeWords(cfg augment.BaseConfig) (*MergeWords, error) {
	cfg = cfg.WithDefaults(augment.GranularityWord)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &MergeWords{cfg: cfg}, nil
}

var _ augment.Transformer = (*MergeWords)(nil)

// Name implements [augment.Transformer].
func (*MergeWords) Name() string { return FamilyMergeWords }

// DescribeConfig implements [augment.Describer].
func (t *MergeWords) DescribeConfig() map[string]any {
	return map[string]any(t.cfg.Fields())
}

// Apply implements [augment.Transformer].
func (t *MergeWords) Apply(texts []string) ([]string, []augment.Record, error) {
	rng := augment.NewRNG(t.cfg.Seed)

	return augment.PerText(FamilyMergeWords, texts, func(src string) (string, augment.Record, error) {
		words := strings.Fields(src)
		gaps := max(len(words)-1, 0)

		count := t.cfg.AugCount(gaps)
		picked := augment.SampleIndexes(rng, gaps, count)

		merged := make(map[int]bool, len(picked))
		for _, g := range picked {
			merged[g] = true
		}

		var b strings.Builder
		for i, w := range words {
			if i > 0 && !merged[i-1] {
				b.WriteByte(' ')
			}
			b.WriteString(w)
		}

		dst := src
		if len(words) > 0 {
			dst = b.String()
		}
		return dst, outcomeFields(t.cfg, gaps, len(picked)), nil
	})
}
