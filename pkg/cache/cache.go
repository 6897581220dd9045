// Package cache provides result caching for augmentation runs.
//
// The engine itself is deterministic and in-memory; caching lives at the
// CLI layer, where re-running a seeded pipeline over the same batch is
// pure waste. Backends share one interface so the CLI can swap between
// file storage, Redis, and a disabled cache through configuration.
package cache

import (
	"context"
	"time"
)

// Default TTLs per artifact kind.
const (
	// ResultTTL bounds cached augmentation results. Results are fully
	// determined by configuration, seed, and input, so the TTL exists
	// only to keep cache directories from growing without bound.
	ResultTTL = 7 * 24 * time.Hour

	// FixtureTTL bounds cached fixture comparisons.
	FixtureTTL = 24 * time.Hour
)

// Cache is the storage interface for cached artifacts.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer builds cache keys for the artifact kinds the runner stores.
// Implementations must be collision-free across distinct inputs.
type Keyer interface {
	// ResultKey identifies one augmentation result: a transform tree
	// applied to a batch with a seed.
	ResultKey(opts ResultKeyOpts) string

	// FixtureKey identifies the golden fixture records of a family.
	FixtureKey(family string) string
}

// ResultKeyOpts carries everything that determines an augmentation
// result.
type ResultKeyOpts struct {
	// Family is the root transform family or combinator name.
	Family string

	// ConfigHash is the hash of the full configuration tree.
	ConfigHash string

	// Seed is the run seed.
	Seed uint64

	// BatchHash is the hash of the input texts.
	BatchHash string
}

// DefaultKeyer generates hashed, prefixed cache keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ResultKey implements [Keyer].
func (k *DefaultKeyer) ResultKey(opts ResultKeyOpts) string {
	return hashKey("result", opts.Family, opts.ConfigHash, opts.Seed, opts.BatchHash)
}

// FixtureKey implements [Keyer].
func (k *DefaultKeyer) FixtureKey(family string) string {
	return hashKey("fixture", family)
}
