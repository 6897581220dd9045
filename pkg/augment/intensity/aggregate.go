package intensity

import (
	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/errors"
)

// Strategy selects how an [Aggregator] folds leaf intensities.
type Strategy string

const (
	// StrategyMax takes the strongest single change across all steps.
	StrategyMax Strategy = "max"

	// StrategyMean averages the change across all steps.
	StrategyMean Strategy = "mean"
)

// ParseStrategy validates an aggregation strategy string.
func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(s); st {
	case StrategyMax, StrategyMean:
		return st, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidConfig,
			"invalid aggregation strategy: %q (must be 'max' or 'mean')", s)
	}
}

// Aggregator folds the leaf intensities nested inside a composite record
// into one score. The fold is an explicit caller choice: [For] refuses
// composite records precisely because no single aggregate is universally
// right.
type Aggregator struct {
	strategy Strategy
}

// NewAggregator creates an aggregator with the given strategy.
func NewAggregator(strategy Strategy) (*Aggregator, error) {
	if _, err := ParseStrategy(string(strategy)); err != nil {
		return nil, err
	}
	return &Aggregator{strategy: strategy}, nil
}

// Strategy returns the configured fold.
func (a *Aggregator) Strategy() Strategy { return a.strategy }

// Aggregate scores a record of any shape. Leaf records dispatch directly;
// composite records recurse through their nested steps and fold the leaf
// scores. A composite record without steps is malformed.
func (a *Aggregator) Aggregate(rec augment.Record) (float64, error) {
	scores, err := a.collect(rec)
	if err != nil {
		return 0, err
	}
	if len(scores) == 0 {
		return 0, nil
	}

	switch a.strategy {
	case StrategyMax:
		best := scores[0]
		for _, s := range scores[1:] {
			if s > best {
				best = s
			}
		}
		return best, nil
	default: // StrategyMean
		sum := 0.0
		for _, s := range scores {
			sum += s
		}
		return sum / float64(len(scores)), nil
	}
}

func (a *Aggregator) collect(rec augment.Record) ([]float64, error) {
	name := rec.Name()
	if name != augment.NameCompose && name != augment.NameOneOf {
		score, err := For(rec)
		if err != nil {
			return nil, err
		}
		return []float64{score}, nil
	}

	steps, ok := rec.Steps()
	if !ok {
		return nil, errors.New(errors.ErrCodeMalformedMetadata,
			"composite record %q has no steps field", name)
	}

	var scores []float64
	for _, step := range steps {
		nested, err := a.collect(step)
		if err != nil {
			return nil, err
		}
		scores = append(scores, nested...)
	}
	return scores, nil
}
