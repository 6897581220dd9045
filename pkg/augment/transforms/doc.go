// Package transforms implements the leaf text augmentations.
//
// # Architecture
//
// Every transform is a struct that captures its full configuration at
// construction time and implements [augment.Transformer]. Construction
// validates; Apply never fails on configuration. Stochastic transforms
// derive a fresh generator from their configured seed on every Apply
// call, so identical seed, configuration, and input always produce
// identical output and metadata.
//
// Word-gated transforms share the engine in units.go: tokenize, find
// eligible units, convert the configured probability into a unit count,
// sample distinct units, rewrite them. The eligible and changed counts
// land in each record so intensity can be recomputed from metadata alone.
//
// # Usage
//
//	t, err := transforms.NewChangeCase("upper", augment.BaseConfig{AugP: 0.5, Seed: 42})
//	if err != nil {
//		return err
//	}
//	outputs, records, err := t.Apply([]string{"hello world"})
//
// The free functions in functional.go wrap default-constructed instances
// for one-off use.
package transforms
