// Package pipeline provides the core augmentation pipeline for Textmorph.
//
// This package implements the complete build → apply → score pipeline that
// can be used by CLI and library consumers. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Build: Materialize a transform tree from step specifications
//  2. Apply: Run the tree over the input batch, collecting records
//  3. Score: Derive intensity scores from the emitted records
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Steps: []pipeline.StepSpec{{Family: "change_case", Config: map[string]any{"case": "upper"}}},
//	    Texts: []string{"hello world"},
//	    Seed:  42,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Output[0])
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/augment/intensity"
	"github.com/textmorph/textmorph/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Library Consumers
// =============================================================================

const (
	// DefaultSeed is the default random seed for reproducibility. A fixed
	// default keeps bare CLI invocations repeatable; callers wanting fresh
	// randomness pass an explicit seed.
	DefaultSeed = uint64(42)

	// DefaultStrategy is the default intensity aggregation strategy for
	// composite records.
	DefaultStrategy = string(intensity.StrategyMax)
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for persisted run manifests.
type Options struct {
	// Name labels the run in logs and stats output.
	Name string `json:"name,omitempty"`

	// Steps is the transform tree to materialize. A single step runs
	// alone; multiple steps run as a composition in order.
	Steps []StepSpec `json:"steps"`

	// Texts is the input batch.
	Texts []string `json:"texts"`

	// Seed is applied to every leaf step that does not carry its own
	// seed, making the whole run reproducible from one number.
	Seed uint64 `json:"seed,omitempty"`

	// Strategy selects how composite records fold into one intensity
	// score ("max" or "mean").
	Strategy string `json:"strategy,omitempty"`

	// Refresh bypasses the cache read (the result is still written back).
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this execution.
	RunID string

	// Input is the batch the pipeline ran over.
	Input []string

	// Output holds the augmented texts, index-aligned with Input.
	Output []string

	// Records holds one provenance record per input text.
	Records []augment.Record

	// Intensities holds one [0, 100] score per record.
	Intensities []float64

	// Stats contains timing and size information.
	Stats Stats

	// CacheHit reports whether the result came from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	TextCount int
	LeafCount int
	BuildTime time.Duration
	ApplyTime time.Duration
	ScoreTime time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Steps) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "at least one step is required")
	}
	if err := errors.ValidateBatch(o.Texts); err != nil {
		return err
	}
	if o.Strategy == "" {
		o.Strategy = DefaultStrategy
	}
	if _, err := intensity.ParseStrategy(o.Strategy); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// LeafCount returns the number of leaf transforms in the step tree.
func (o *Options) LeafCount() int {
	total := 0
	for _, s := range o.Steps {
		total += s.leafCount()
	}
	return total
}

// RootFamily returns the family name identifying the tree root, used in
// cache keys and log lines. A multi-step tree is rooted at a composition.
func (o *Options) RootFamily() string {
	if len(o.Steps) == 1 {
		return o.Steps[0].RootFamily()
	}
	return augment.NameCompose
}

// score derives one intensity per record, folding composite records with
// the configured strategy.
func (o *Options) score(records []augment.Record) ([]float64, error) {
	agg, err := intensity.NewAggregator(intensity.Strategy(o.Strategy))
	if err != nil {
		return nil, err
	}

	scores := make([]float64, len(records))
	for i, rec := range records {
		s, err := agg.Aggregate(rec)
		if err != nil {
			return nil, err
		}
		scores[i] = s
	}
	return scores, nil
}
