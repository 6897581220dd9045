package augment

import (
	"github.com/textmorph/textmorph/pkg/errors"
)

// OneOf applies exactly one of its candidate transformers per Apply call.
// The draw happens once per invocation and the chosen candidate runs over
// the entire batch, trading per-text diversity for a single reproducible
// random decision per batch.
//
// Per input text, OneOf emits a composite record nesting the chosen
// candidate's record, annotated with the candidate index and name.
type OneOf struct {
	candidates []Transformer
	weights    []float64
	seed       uint64
}

// OneOfOption configures a OneOf combinator.
type OneOfOption func(*OneOf)

// WithWeights sets per-candidate selection weights. Without it, candidates
// are drawn uniformly.
func WithWeights(weights ...float64) OneOfOption {
	return func(o *OneOf) { o.weights = weights }
}

// WithChoiceSeed sets the seed driving candidate selection. Seeding OneOf
// makes the whole call deterministic, including which branch fires.
func WithChoiceSeed(seed uint64) OneOfOption {
	return func(o *OneOf) { o.seed = seed }
}

// NewOneOf builds a selection combinator over the given candidates.
func NewOneOf(candidates []Transformer, opts ...OneOfOption) (*OneOf, error) {
	if len(candidates) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "one_of requires at least one candidate")
	}
	for i, c := range candidates {
		if c == nil {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "one_of candidate %d is nil", i)
		}
	}

	o := &OneOf{candidates: candidates}
	for _, opt := range opts {
		opt(o)
	}

	if o.weights == nil {
		o.weights = make([]float64, len(candidates))
		for i := range o.weights {
			o.weights[i] = 1
		}
	}
	if len(o.weights) != len(candidates) {
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"one_of has %d weights for %d candidates", len(o.weights), len(candidates))
	}
	var total float64
	for i, w := range o.weights {
		if w < 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "one_of weight %d is negative", i)
		}
		total += w
	}
	if total == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "one_of weights sum to zero")
	}

	return o, nil
}

// Name returns the combinator identifier.
func (o *OneOf) Name() string { return NameOneOf }

// Candidates returns the configured candidate transformers.
func (o *OneOf) Candidates() []Transformer { return o.candidates }

// Apply draws one candidate and applies it to the whole batch.
func (o *OneOf) Apply(texts []string) ([]string, []Record, error) {
	if err := errors.ValidateBatch(texts); err != nil {
		return nil, nil, err
	}

	rng := NewRNG(o.seed)
	idx := o.draw(rng.Float64())
	chosen := o.candidates[idx]

	outputs, recs, err := chosen.Apply(texts)
	if err != nil {
		return nil, nil, err
	}
	if len(recs) != len(texts) {
		return nil, nil, errors.New(errors.ErrCodeInternal,
			"%s produced %d records for %d texts", chosen.Name(), len(recs), len(texts))
	}

	records := make([]Record, len(texts))
	for i := range texts {
		rec := NewRecord(NameOneOf, texts[i], outputs[i])
		rec[KeyChoiceIndex] = idx
		rec[KeyChosen] = chosen.Name()
		rec[KeySteps] = []Record{recs[i]}
		records[i] = rec
	}

	return outputs, records, nil
}

// draw maps a uniform sample in [0, 1) to a candidate index by weight.
func (o *OneOf) draw(u float64) int {
	var total float64
	for _, w := range o.weights {
		total += w
	}

	target := u * total
	var acc float64
	for i, w := range o.weights {
		acc += w
		if target < acc {
			return i
		}
	}
	return len(o.weights) - 1
}

// Ensure OneOf implements Transformer.
var _ Transformer = (*OneOf)(nil)
