package transforms

import (
	"math"
	"math/rand/v2"
	"strings"

	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/augment/charmaps"
	"github.com/textmorph/textmorph/pkg/errors"
)

// SeparatorInsert weaves separator characters between the characters of
// each unit. The cadence controls density: at cadence 1 a separator lands
// between every adjacent pair of characters, at cadence c roughly every
// c-th position. There is never a trailing separator.
//
// Three families share this engine, differing only in the separator pool:
// punctuation, whitespace, and zero-width characters.
type SeparatorInsert struct {
	family      string
	pool        []string
	granularity augment.Granularity
	cadence     float64
	varyChars   bool
	seed        uint64
}

// NewInsertPunctuationChars inserts punctuation separators.
func NewInsertPunctuationChars(granularity augment.Granularity, cadence float64, varyChars bool, seed uint64) (*SeparatorInsert, error) {
	return newSeparatorInsert(FamilyInsertPunctuation, charmaps.Punctuation, granularity, cadence, varyChars, seed)
}

// NewInsertWhitespaceChars inserts whitespace separators.
func NewInsertWhitespaceChars(granularity augment.Granularity, cadence float64, varyChars bool, seed uint64) (*SeparatorInsert, error) {
	return newSeparatorInsert(FamilyInsertWhitespace, charmaps.Whitespace, granularity, cadence, varyChars, seed)
}

// NewInsertZeroWidthChars inserts zero-width separators.
func NewInsertZeroWidthChars(granularity augment.Granularity, cadence float64, varyChars bool, seed uint64) (*SeparatorInsert, error) {
	return newSeparatorInsert(FamilyInsertZeroWidth, charmaps.ZeroWidth, granularity, cadence, varyChars, seed)
}

func newSeparatorInsert(family string, pool []string, granularity augment.Granularity, cadence float64, varyChars bool, seed uint64) (*SeparatorInsert, error) {
	if granularity == "" {
		granularity = augment.GranularityAll
	}
	if granularity != augment.GranularityAll && granularity != augment.GranularityWord {
		return nil, errors.New(errors.ErrCodeInvalidGranularity,
			"%s granularity must be 'all' or 'word'", family)
	}
	if err := errors.ValidateCadence(cadence); err != nil {
		return nil, err
	}

	return &SeparatorInsert{
		family:      family,
		pool:        pool,
		granularity: granularity,
		cadence:     cadence,
		varyChars:   varyChars,
		seed:        seed,
	}, nil
}

var _ augment.Transformer = (*SeparatorInsert)(nil)

// Name implements [augment.Transformer].
func (t *SeparatorInsert) Name() string { return t.family }

// DescribeConfig implements [augment.Describer].
func (t *SeparatorInsert) DescribeConfig() map[string]any {
	return map[string]any{
		augment.KeyGranularity: string(t.granularity),
		augment.KeyCadence:     t.cadence,
		KeyVaryChars:           t.varyChars,
	}
}

// Apply implements [augment.Transformer].
func (t *SeparatorInsert) Apply(texts []string) ([]string, []augment.Record, error) {
	rng := augment.NewRNG(t.seed)

	return augment.PerText(t.family, texts, func(src string) (string, augment.Record, error) {
		var dst string
		var slots, inserted int

		if t.granularity == augment.GranularityAll {
			dst, slots, inserted = t.weave(rng, src)
		} else {
			words := strings.Fields(src)
			for i, w := range words {
				next, s, n := t.weave(rng, w)
				words[i] = next
				slots += s
				inserted += n
			}
			dst = src
			if len(words) > 0 {
				dst = strings.Join(words, " ")
			}
		}

		return dst, augment.Record{
			augment.KeyGranularity: string(t.granularity),
			augment.KeyCadence:     t.cadence,
			KeyVaryChars:           t.varyChars,
			augment.KeyUnitCount:   slots,
			augment.KeyAugCount:    inserted,
		}, nil
	})
}

// weave inserts separators into one unit at the configured cadence and
// returns the result plus the slot and insertion counts.
func (t *SeparatorInsert) weave(rng *rand.Rand, s string) (string, int, int) {
	runes := []rune(s)
	if len(runes) < 2 {
		return s, 0, 0
	}

	positions := make(map[int]bool)
	for k := 1; ; k++ {
		pos := int(math.Round(float64(k) * t.cadence))
		if pos >= len(runes) {
			break
		}
		positions[pos] = true
	}

	sep := t.pool[rng.IntN(len(t.pool))]

	var b strings.Builder
	b.Grow(len(s) + len(positions))
	inserted := 0
	for i, r := range runes {
		if positions[i] {
			if t.varyChars && inserted > 0 {
				sep = t.pool[rng.IntN(len(t.pool))]
			}
			b.WriteString(sep)
			inserted++
		}
		b.WriteRune(r)
	}

	return b.String(), len(runes) - 1, inserted
}
