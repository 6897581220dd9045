package cache

// ScopedKeyer wraps a Keyer with a prefix so separate contexts (parallel
// experiment runs, per-dataset namespaces) never collide in a shared
// backend.
//
// Example usage:
//
//	// Keys scoped to one experiment
//	expKeyer := NewScopedKeyer(NewDefaultKeyer(), "exp:robustness-v2:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ResultKey generates a prefixed key for augmentation result caching.
func (k *ScopedKeyer) ResultKey(opts ResultKeyOpts) string {
	return k.prefix + k.inner.ResultKey(opts)
}

// FixtureKey generates a prefixed key for fixture caching.
func (k *ScopedKeyer) FixtureKey(family string) string {
	return k.prefix + k.inner.FixtureKey(family)
}
