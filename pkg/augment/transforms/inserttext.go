package transforms

import (
	"strings"

	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/errors"
)

// Insertion locations accepted by [NewInsertText].
const (
	LocationPrepend = "prepend"
	LocationAppend  = "append"
	LocationRandom  = "random"
)

// InsertText splices tokens drawn from a caller-supplied pool into each
// text, at the start, the end, or random word boundaries.
type InsertText struct {
	pool     []string
	num      int
	location string
	seed     uint64
}

// NewInsertText creates an insertion transform adding num pool tokens per
// text.
func NewInsertText(pool []string, num int, location string, seed uint64) (*InsertText, error) {
	if len(pool) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "insertion pool is empty")
	}
	if num < 1 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "num_insertions must be at least 1, got %d", num)
	}
	switch location {
	case LocationPrepend, LocationAppend, LocationRandom:
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"invalid insertion location: %q (must be 'prepend', 'append', or 'random')", location)
	}

	return &InsertText{pool: pool, num: num, location: location, seed: seed}, nil
}

var _ augment.Transformer = (*InsertText)(nil)

// Name implements [augment.Transformer].
func (*InsertText) Name() string { return FamilyInsertText }

// DescribeConfig implements [augment.Describer].
func (t *InsertText) DescribeConfig() map[string]any {
	return map[string]any{
		KeyInsertionLocation: t.location,
		KeyNumInsertions:     t.num,
	}
}

// Apply implements [augment.Transformer].
func (t *InsertText) Apply(texts []string) ([]string, []augment.Record, error) {
	rng := augment.NewRNG(t.seed)

	return augment.PerText(FamilyInsertText, texts, func(src string) (string, augment.Record, error) {
		words := strings.Fields(src)
		units := len(words)

		for range t.num {
			tok := t.pool[rng.IntN(len(t.pool))]
			switch t.location {
			case LocationPrepend:
				words = append([]string{tok}, words...)
			case LocationAppend:
				words = append(words, tok)
			default: // LocationRandom
				at := rng.IntN(len(words) + 1)
				words = append(words[:at], append([]string{tok}, words[at:]...)...)
			}
		}

		return strings.Join(words, " "), augment.Record{
			KeyInsertionLocation: t.location,
			KeyNumInsertions:     t.num,
			augment.KeyUnitCount: units,
			augment.KeyAugCount:  t.num,
		}, nil
	})
}
