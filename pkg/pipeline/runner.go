package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/cache"
	"github.com/textmorph/textmorph/pkg/errors"
	"github.com/textmorph/textmorph/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// cachedResult is the serialized form of a completed run. The input batch
// and run identity are reconstructed by the caller; only the derived data
// is stored.
type cachedResult struct {
	Output      []string         `json:"output"`
	Records     []augment.Record `json:"records"`
	Intensities []float64        `json:"intensities"`
}

// Execute runs the complete build → apply → score pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		RunID: uuid.NewString(),
		Input: opts.Texts,
	}
	result.Stats.TextCount = len(opts.Texts)
	result.Stats.LeafCount = opts.LeafCount()

	cacheKey := r.resultKey(opts)

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached cachedResult
			if json.Unmarshal(data, &cached) == nil && len(cached.Output) == len(opts.Texts) {
				observability.Cache().OnCacheHit(ctx, "result")
				result.Output = cached.Output
				result.Records = cached.Records
				result.Intensities = cached.Intensities
				result.CacheHit = true
				opts.Logger.Debug("result served from cache", "key", cacheKey)
				return result, nil
			}
			// Stale or corrupt entry, fall through to recompute.
		}
		observability.Cache().OnCacheMiss(ctx, "result")
	}

	// Stage 1: Build
	buildStart := time.Now()
	tr, err := BuildSteps(opts.Steps, opts.Seed)
	if err != nil {
		return nil, err
	}
	result.Stats.BuildTime = time.Since(buildStart)

	opts.Logger.Info("built transform tree",
		"root", tr.Name(),
		"leaves", result.Stats.LeafCount,
		"duration", result.Stats.BuildTime)

	// Stage 2: Apply
	applyStart := time.Now()
	observability.Augment().OnApplyStart(ctx, tr.Name(), len(opts.Texts))
	outputs, records, err := tr.Apply(opts.Texts)
	result.Stats.ApplyTime = time.Since(applyStart)
	observability.Augment().OnApplyComplete(ctx, tr.Name(), len(opts.Texts), result.Stats.ApplyTime, err)
	if err != nil {
		return nil, err
	}
	result.Output = outputs
	result.Records = records

	opts.Logger.Info("applied transforms",
		"texts", len(outputs),
		"duration", result.Stats.ApplyTime)

	// Stage 3: Score
	scoreStart := time.Now()
	scores, err := opts.score(records)
	if err != nil {
		return nil, err
	}
	result.Intensities = scores
	result.Stats.ScoreTime = time.Since(scoreStart)

	for i, s := range scores {
		observability.Augment().OnIntensityComputed(ctx, records[i].Name(), s)
	}

	opts.Logger.Info("scored records",
		"strategy", opts.Strategy,
		"duration", result.Stats.ScoreTime)

	// Cache the result
	if data, err := json.Marshal(cachedResult{
		Output:      result.Output,
		Records:     result.Records,
		Intensities: result.Intensities,
	}); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.ResultTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "result", len(data))
		}
	}

	return result, nil
}

// Apply runs build → apply without scoring or caching. Useful when the
// caller only wants outputs, such as interactive previews.
func (r *Runner) Apply(ctx context.Context, opts Options) ([]string, []augment.Record, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInternal, err, "run canceled")
	}

	tr, err := BuildSteps(opts.Steps, opts.Seed)
	if err != nil {
		return nil, nil, err
	}

	start := time.Now()
	observability.Augment().OnApplyStart(ctx, tr.Name(), len(opts.Texts))
	outputs, records, err := tr.Apply(opts.Texts)
	observability.Augment().OnApplyComplete(ctx, tr.Name(), len(opts.Texts), time.Since(start), err)
	return outputs, records, err
}

// resultKey derives the cache key identifying this run's output.
func (r *Runner) resultKey(opts Options) string {
	specData, _ := json.Marshal(opts.Steps)
	return r.Keyer.ResultKey(cache.ResultKeyOpts{
		Family:     opts.RootFamily(),
		ConfigHash: cache.Hash(specData),
		Seed:       opts.Seed,
		BatchHash:  cache.HashStrings(opts.Texts),
	})
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
// Must run before ValidateAndSetDefaults, which fills a discard logger.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
