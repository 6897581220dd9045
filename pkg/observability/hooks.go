// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about augmentation runs and cache operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetAugmentHooks(&myAugmentHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Augment().OnApplyStart(ctx, family, batchSize)
//	// ... run the transform ...
//	observability.Augment().OnApplyComplete(ctx, family, batchSize, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Augment Hooks
// =============================================================================

// AugmentHooks receives events from augmentation runs.
type AugmentHooks interface {
	// Apply events
	OnApplyStart(ctx context.Context, family string, batchSize int)
	OnApplyComplete(ctx context.Context, family string, batchSize int, duration time.Duration, err error)

	// Intensity events
	OnIntensityComputed(ctx context.Context, family string, score float64)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopAugmentHooks is a no-op implementation of AugmentHooks.
type NoopAugmentHooks struct{}

func (NoopAugmentHooks) OnApplyStart(context.Context, string, int)                           {}
func (NoopAugmentHooks) OnApplyComplete(context.Context, string, int, time.Duration, error)  {}
func (NoopAugmentHooks) OnIntensityComputed(context.Context, string, float64)                {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	augmentHooks AugmentHooks = NoopAugmentHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	hooksMu      sync.RWMutex
)

// SetAugmentHooks registers custom augmentation hooks.
// This should be called once at application startup before any runs.
func SetAugmentHooks(h AugmentHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		augmentHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Augment returns the registered augmentation hooks.
func Augment() AugmentHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return augmentHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	augmentHooks = NoopAugmentHooks{}
	cacheHooks = NoopCacheHooks{}
}
