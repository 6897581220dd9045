package transforms

import (
	"strings"

	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/augment/lexicon"
	"github.com/textmorph/textmorph/pkg/errors"
)

// Contractions collapses multi-word phrases into their contracted forms
// ("do not" becomes "don't"). Matching is case-insensitive; the
// contraction inherits the capitalization of the phrase's first word.
type Contractions struct {
	cfg   augment.BaseConfig
	table map[string]string
}

// ContractionsOption customizes a Contractions transform.
type ContractionsOption func(*Contractions)

// WithContractionTable replaces the built-in phrase table.
func WithContractionTable(table map[string]string) ContractionsOption {
	return func(t *Contractions) { t.table = table }
}

// NewContractions creates a contraction transform. The probability gates
// each matched phrase independently.
func NewContractions(cfg augment.BaseConfig, opts ...ContractionsOption) (*Contractions, error) {
	cfg = cfg.WithDefaults(augment.GranularityWord)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	t := &Contractions{cfg: cfg, table: lexicon.Contractions}
	for _, opt := range opts {
		opt(t)
	}
	if len(t.table) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "contraction table is empty")
	}

	// Lowercased lookup copy so matching ignores sentence capitalization.
	lookup := make(map[string]string, len(t.table))
	for phrase, contraction := range t.table {
		lookup[strings.ToLower(phrase)] = contraction
	}
	t.table = lookup

	return t, nil
}

var _ augment.Transformer = (*Contractions)(nil)

// Name implements [augment.Transformer].
func (*Contractions) Name() string { return FamilyContractions }

// DescribeConfig implements [augment.Describer].
func (t *Contractions) DescribeConfig() map[string]any {
	return map[string]any(t.cfg.Fields())
}

type phraseMatch struct {
	start, width int
	replacement  string
}

// Apply implements [augment.Transformer].
func (t *Contractions) Apply(texts []string) ([]string, []augment.Record, error) {
	rng := augment.NewRNG(t.cfg.Seed)

	return augment.PerText(FamilyContractions, texts, func(src string) (string, augment.Record, error) {
		words := strings.Fields(src)

		matches := t.findMatches(words)
		count := t.cfg.AugCount(len(matches))
		picked := augment.SampleIndexes(rng, len(matches), count)

		chosen := make(map[int]phraseMatch, len(picked))
		for _, j := range picked {
			chosen[matches[j].start] = matches[j]
		}

		var out []string
		for i := 0; i < len(words); {
			m, ok := chosen[i]
			if !ok {
				out = append(out, words[i])
				i++
				continue
			}
			out = append(out, m.replacement)
			i += m.width
		}

		dst := src
		if len(words) > 0 {
			dst = strings.Join(out, " ")
		}
		return dst, outcomeFields(t.cfg, len(matches), len(picked)), nil
	})
}

// findMatches scans for non-overlapping phrase matches, longest first at
// each position. Edge punctuation on the final word of a phrase carries
// over to the contraction.
func (t *Contractions) findMatches(words []string) []phraseMatch {
	var matches []phraseMatch
	for i := 0; i < len(words); {
		if m, ok := t.matchAt(words, i, 2); ok {
			matches = append(matches, m)
			i += 2
			continue
		}
		if m, ok := t.matchAt(words, i, 1); ok {
			matches = append(matches, m)
		}
		i++
	}
	return matches
}

func (t *Contractions) matchAt(words []string, start, width int) (phraseMatch, bool) {
	if start+width > len(words) {
		return phraseMatch{}, false
	}

	lead, first, _ := splitEdgePunct(words[start])
	parts := []string{first}
	for k := 1; k < width; k++ {
		_, core, _ := splitEdgePunct(words[start+k])
		parts = append(parts, core)
	}
	_, _, trail := splitEdgePunct(words[start+width-1])

	contraction, ok := t.table[strings.ToLower(strings.Join(parts, " "))]
	if !ok {
		return phraseMatch{}, false
	}

	return phraseMatch{
		start:       start,
		width:       width,
		replacement: lead + matchCapitalization(first, contraction) + trail,
	}, true
}
