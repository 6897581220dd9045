package transforms

import (
	"strings"

	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/augment/charmaps"
	"github.com/textmorph/textmorph/pkg/errors"
)

// ReplaceBidirectional reverses text and wraps it in Unicode directional
// overrides, so it renders forward but its codepoints run backward. At
// granularity "all" the whole text is one unit; at "word" every word is
// reversed and wrapped individually.
type ReplaceBidirectional struct {
	granularity augment.Granularity
}

// NewReplaceBidirectional creates a bidirectional transform.
func NewReplaceBidirectional(granularity augment.Granularity) (*ReplaceBidirectional, error) {
	if granularity == "" {
		granularity = augment.GranularityAll
	}
	if granularity != augment.GranularityAll && granularity != augment.GranularityWord {
		return nil, errors.New(errors.ErrCodeInvalidGranularity,
			"replace_bidirectional granularity must be 'all' or 'word'")
	}
	return &ReplaceBidirectional{granularity: granularity}, nil
}

var _ augment.Transformer = (*ReplaceBidirectional)(nil)

// Name implements [augment.Transformer].
func (*ReplaceBidirectional) Name() string { return FamilyReplaceBidirection }

// DescribeConfig implements [augment.Describer].
func (t *ReplaceBidirectional) DescribeConfig() map[string]any {
	return map[string]any{augment.KeyGranularity: string(t.granularity)}
}

// Apply implements [augment.Transformer].
func (t *ReplaceBidirectional) Apply(texts []string) ([]string, []augment.Record, error) {
	return augment.PerText(FamilyReplaceBidirection, texts, func(src string) (string, augment.Record, error) {
		var dst string
		var units, changed int

		if t.granularity == augment.GranularityAll {
			if src != "" {
				dst = wrapReversed(src)
				units, changed = 1, 1
			}
		} else {
			words := strings.Fields(src)
			for i, w := range words {
				words[i] = wrapReversed(w)
			}
			dst = src
			if len(words) > 0 {
				dst = strings.Join(words, " ")
			}
			units, changed = len(words), len(words)
		}

		return dst, augment.Record{
			augment.KeyGranularity: string(t.granularity),
			augment.KeyUnitCount:   units,
			augment.KeyAugCount:    changed,
		}, nil
	})
}

func wrapReversed(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return charmaps.RightToLeftOverride + string(runes) + charmaps.PopDirectionalFormatting
}
