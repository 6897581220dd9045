package augment

import (
	"github.com/textmorph/textmorph/pkg/errors"
)

// Transformer is the atomic unit of the augmentation engine. A transformer
// captures its full configuration at construction time; configuration never
// changes across invocations, only per-call randomness (derived from the
// configured seed) varies.
//
// Apply maps a batch of texts to a batch of outputs and returns exactly one
// metadata record per input text, at matching indices. Implementations must
// not mutate the input slice.
type Transformer interface {
	// Name returns the transform family identifier recorded in metadata.
	Name() string

	// Apply transforms every text in the batch. The returned slices are
	// parallel to texts: outputs[i] and records[i] describe texts[i].
	Apply(texts []string) (outputs []string, records []Record, err error)
}

// Describer is implemented by transformers that can summarize their
// effective configuration for display, such as interactive previews.
type Describer interface {
	DescribeConfig() map[string]any
}

// ApplyInto runs t over texts and appends the resulting records to sink.
// It is the bridge between the return-value contract of [Transformer] and
// callers that accumulate provenance across several invocations.
func ApplyInto(t Transformer, texts []string, sink *Sink) ([]string, error) {
	outputs, records, err := t.Apply(texts)
	if err != nil {
		return nil, err
	}
	if sink != nil {
		sink.Append(records...)
	}
	return outputs, nil
}

// PerText lifts a single-text mutation into the batch contract: it
// validates the batch, applies mutate to each text, and assembles one base
// record per text merged with the mutation's transform-specific fields.
//
// A mutate function that leaves the text unchanged still produces a record;
// skipped units are legitimate no-ops, never errors.
func PerText(name string, texts []string, mutate func(src string) (string, Record, error)) ([]string, []Record, error) {
	if err := errors.ValidateBatch(texts); err != nil {
		return nil, nil, err
	}

	outputs := make([]string, len(texts))
	records := make([]Record, len(texts))

	for i, src := range texts {
		dst, fields, err := mutate(src)
		if err != nil {
			return nil, nil, errors.Wrap(errors.ErrCodeInternal, err, "%s: text %d", name, i)
		}

		rec := NewRecord(name, src, dst)
		for k, v := range fields {
			rec[k] = v
		}

		outputs[i] = dst
		records[i] = rec
	}

	return outputs, records, nil
}
