package assetgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordResolve is called after each image resolution attempt.
	// duration is the total time taken, err is nil if an image was found.
	RecordResolve(duration time.Duration, err error)

	// RecordHash is called after each content hash computation.
	// bytes is the number of bytes hashed.
	RecordHash(bytes int, duration time.Duration)

	// RecordCacheLookup is called for each static URL cache lookup.
	RecordCacheLookup(hit bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordResolve(time.Duration, error) {}
func (NoopMetricsCollector) RecordHash(int, time.Duration)      {}
func (NoopMetricsCollector) RecordCacheLookup(bool)             {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ResolveCount      atomic.Int64
	ResolveMisses     atomic.Int64
	ResolveTotalNanos atomic.Int64
	HashCount         atomic.Int64
	HashBytes         atomic.Int64
	HashTotalNanos    atomic.Int64
	CacheHits         atomic.Int64
	CacheMisses       atomic.Int64
}

// RecordResolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResolve(duration time.Duration, err error) {
	b.ResolveCount.Add(1)
	b.ResolveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ResolveMisses.Add(1)
	}
}

// RecordHash implements MetricsCollector.
func (b *BasicMetricsCollector) RecordHash(bytes int, duration time.Duration) {
	b.HashCount.Add(1)
	b.HashBytes.Add(int64(bytes))
	b.HashTotalNanos.Add(duration.Nanoseconds())
}

// RecordCacheLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCacheLookup(hit bool) {
	if hit {
		b.CacheHits.Add(1)
	} else {
		b.CacheMisses.Add(1)
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector counters.
type BasicMetricsStats struct {
	ResolveCount  int64
	ResolveMisses int64
	HashCount     int64
	HashBytes     int64
	CacheHits     int64
	CacheMisses   int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ResolveCount:  b.ResolveCount.Load(),
		ResolveMisses: b.ResolveMisses.Load(),
		HashCount:     b.HashCount.Load(),
		HashBytes:     b.HashBytes.Load(),
		CacheHits:     b.CacheHits.Load(),
		CacheMisses:   b.CacheMisses.Load(),
	}
}
