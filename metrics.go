package wordsearch

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives timings from searches. Implementations must be
// safe for concurrent use: RecordBand is called from band goroutines.
type MetricsCollector interface {
	// RecordSearch is called once per search after all bands have merged.
	// cells is the number of anchor cells scanned.
	RecordSearch(cells, matches, workers int, duration time.Duration)

	// RecordBand is called when a single column band finishes.
	RecordBand(cells, matches int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSearch(int, int, int, time.Duration) {}
func (NoopMetricsCollector) RecordBand(int, int, time.Duration)        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	SearchCount      atomic.Int64
	SearchCells      atomic.Int64
	SearchMatches    atomic.Int64
	SearchTotalNanos atomic.Int64
	BandCount        atomic.Int64
	BandTotalNanos   atomic.Int64
	BandMaxNanos     atomic.Int64
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(cells, matches, workers int, duration time.Duration) {
	b.SearchCount.Add(1)
	b.SearchCells.Add(int64(cells))
	b.SearchMatches.Add(int64(matches))
	b.SearchTotalNanos.Add(duration.Nanoseconds())
}

// RecordBand implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBand(cells, matches int, duration time.Duration) {
	b.BandCount.Add(1)
	ns := duration.Nanoseconds()
	b.BandTotalNanos.Add(ns)
	for {
		cur := b.BandMaxNanos.Load()
		if ns <= cur || b.BandMaxNanos.CompareAndSwap(cur, ns) {
			return
		}
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		SearchCount:   b.SearchCount.Load(),
		SearchCells:   b.SearchCells.Load(),
		SearchMatches: b.SearchMatches.Load(),
		BandCount:     b.BandCount.Load(),
		BandMaxNanos:  b.BandMaxNanos.Load(),
	}
	if stats.SearchCount > 0 {
		stats.SearchAvgNanos = b.SearchTotalNanos.Load() / stats.SearchCount
	}
	if stats.BandCount > 0 {
		stats.BandAvgNanos = b.BandTotalNanos.Load() / stats.BandCount
	}
	return stats
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SearchCount    int64
	SearchCells    int64
	SearchMatches  int64
	SearchAvgNanos int64
	BandCount      int64
	BandAvgNanos   int64
	BandMaxNanos   int64 // slowest band; compare with BandAvgNanos for imbalance
}
