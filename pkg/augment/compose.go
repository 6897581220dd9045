package augment

import (
	"github.com/textmorph/textmorph/pkg/errors"
)

// Compose applies a fixed sequence of transformers to each text, in order:
// the output of step k becomes the input of step k+1.
//
// Per input text, Compose emits one composite record whose "steps" field
// nests the record of every step in execution order. If an inner
// transformer fails, the error propagates as-is; there is no
// partial-result recovery, and any sink the caller was filling must be
// treated as invalid.
type Compose struct {
	steps []Transformer
}

// NewCompose builds a composition from an ordered list of transformers.
// An empty list is a configuration error, not a silent no-op.
func NewCompose(steps ...Transformer) (*Compose, error) {
	if len(steps) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "compose requires at least one transform")
	}
	for i, s := range steps {
		if s == nil {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "compose step %d is nil", i)
		}
	}
	return &Compose{steps: steps}, nil
}

// Name returns the combinator identifier.
func (c *Compose) Name() string { return NameCompose }

// Steps returns the configured transformers in application order.
func (c *Compose) Steps() []Transformer { return c.steps }

// Apply threads the batch through every step in order.
func (c *Compose) Apply(texts []string) ([]string, []Record, error) {
	if err := errors.ValidateBatch(texts); err != nil {
		return nil, nil, err
	}

	cur := texts
	stepRecords := make([][]Record, 0, len(c.steps))

	for _, step := range c.steps {
		out, recs, err := step.Apply(cur)
		if err != nil {
			return nil, nil, err
		}
		if len(recs) != len(cur) {
			return nil, nil, errors.New(errors.ErrCodeInternal,
				"%s produced %d records for %d texts", step.Name(), len(recs), len(cur))
		}
		cur = out
		stepRecords = append(stepRecords, recs)
	}

	records := make([]Record, len(texts))
	for i := range texts {
		steps := make([]Record, len(c.steps))
		for k := range c.steps {
			steps[k] = stepRecords[k][i]
		}
		rec := NewRecord(NameCompose, texts[i], cur[i])
		rec[KeySteps] = steps
		records[i] = rec
	}

	return cur, records, nil
}

// Ensure Compose implements Transformer.
var _ Transformer = (*Compose)(nil)
