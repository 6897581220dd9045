// Package augment provides the composition and provenance engine for
// randomized text transforms.
//
// # Architecture
//
// The engine is built from three pieces:
//
//  1. Transformer: the atomic contract. A transformer maps a batch of texts
//     to a batch of outputs and yields exactly one metadata [Record] per
//     input text.
//  2. Combinators: [Compose] threads a batch through an ordered list of
//     transformers; [OneOf] picks exactly one candidate per call.
//  3. Records: structured provenance describing each application. Records
//     carry every field needed to recompute an intensity score later,
//     without access to the transformer that produced them.
//
// Leaf transformers live in the transforms subpackage; intensity scoring
// lives in the intensity subpackage.
//
// # Randomness
//
// There is no ambient random state. Every stochastic transformer carries a
// seed in its configuration and derives a fresh PCG generator per Apply
// call, so the same seed, configuration, and input always produce
// bit-identical outputs and records.
//
// # Usage
//
//	t, err := transforms.NewChangeCase(transforms.ChangeCaseConfig{
//	    Granularity: augment.GranularityWord,
//	    Cadence:     2,
//	    Case:        "upper",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	outputs, records, err := t.Apply([]string{"hello world"})
package augment
