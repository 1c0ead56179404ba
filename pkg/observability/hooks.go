// Package observability provides hooks for metrics, tracing, and logging.
//
// Consumers register hooks at startup to receive events about chart
// calculation, transit scans and cache operations. Libraries never import a
// metrics backend; they only call the registered hooks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetChartHooks(&myChartHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Chart().OnCalculateStart(ctx, id)
//	// ... calculate ...
//	observability.Chart().OnCalculateComplete(ctx, id, warnings, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// ChartHooks receives one start and one complete event per
// chart.Calculate call. warnings counts the data gaps in the report.
type ChartHooks interface {
	OnCalculateStart(ctx context.Context, reportID string)
	OnCalculateComplete(ctx context.Context, reportID string, warnings int, duration time.Duration, err error)
}

// TransitHooks receives events from transit scans.
type TransitHooks interface {
	OnScanStart(ctx context.Context, body, classification string)
	OnScanComplete(ctx context.Context, body, classification string, events int, duration time.Duration, err error)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	// OnCacheSet reports a write of size bytes.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopChartHooks ignores chart events.
type NoopChartHooks struct{}

func (NoopChartHooks) OnCalculateStart(context.Context, string)                               {}
func (NoopChartHooks) OnCalculateComplete(context.Context, string, int, time.Duration, error) {}

// NoopTransitHooks ignores scan events.
type NoopTransitHooks struct{}

func (NoopTransitHooks) OnScanStart(context.Context, string, string)                               {}
func (NoopTransitHooks) OnScanComplete(context.Context, string, string, int, time.Duration, error) {}

// NoopCacheHooks ignores cache events.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// registry holds the process-wide hooks. Setters are meant for startup;
// getters are called on every calculation and cache access.
var registry struct {
	sync.RWMutex
	chart   ChartHooks
	transit TransitHooks
	cache   CacheHooks
}

func init() { Reset() }

// SetChartHooks replaces the chart hooks. nil is ignored.
func SetChartHooks(h ChartHooks) {
	registry.Lock()
	defer registry.Unlock()
	if h != nil {
		registry.chart = h
	}
}

// SetTransitHooks replaces the transit hooks. nil is ignored.
func SetTransitHooks(h TransitHooks) {
	registry.Lock()
	defer registry.Unlock()
	if h != nil {
		registry.transit = h
	}
}

// SetCacheHooks replaces the cache hooks. nil is ignored.
func SetCacheHooks(h CacheHooks) {
	registry.Lock()
	defer registry.Unlock()
	if h != nil {
		registry.cache = h
	}
}

func Chart() ChartHooks {
	registry.RLock()
	defer registry.RUnlock()
	return registry.chart
}

func Transit() TransitHooks {
	registry.RLock()
	defer registry.RUnlock()
	return registry.transit
}

func Cache() CacheHooks {
	registry.RLock()
	defer registry.RUnlock()
	return registry.cache
}

// Reset restores the no-op hooks.
func Reset() {
	registry.Lock()
	defer registry.Unlock()
	registry.chart = NoopChartHooks{}
	registry.transit = NoopTransitHooks{}
	registry.cache = NoopCacheHooks{}
}
