// Package telemetry provides OpenTelemetry integration for metrics collection.
package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// DashboardMetrics provides business metrics for the reporting dashboard.
// It tracks cache effectiveness, analytics service calls and export activity.
type DashboardMetrics struct {
	meter  metric.Meter
	logger *zap.Logger

	// Counter metrics (monotonically increasing)
	cacheRequestTotal    *Counter
	upstreamRequestTotal *Counter
	exportTotal          *Counter
	forecastTotal        *Counter
	commentaryTotal      *Counter
	detailFailureTotal   *Counter

	// Histogram metrics
	upstreamDuration *Histogram

	// Gauge metrics (point-in-time values)
	cacheEntryCount *Gauge
	cacheHitRatio   *FloatGauge

	// Periodic collector
	stopChan    chan struct{}
	stopOnce    sync.Once
	collectOnce sync.Once

	// Data provider for periodic collection
	cacheProvider CacheStatsProvider
}

// CacheStatsProvider provides cache state for periodic metrics collection.
// This interface allows the telemetry layer to observe the cache without
// depending on the cache package directly. The cache store satisfies it.
type CacheStatsProvider interface {
	// Stats returns cumulative hit and miss counts
	Stats() (hits, misses int64)

	// Len returns the number of entries currently cached
	Len() int
}

// DashboardMetricsConfig holds configuration for dashboard metrics.
type DashboardMetricsConfig struct {
	Meter           metric.Meter
	Logger          *zap.Logger
	CollectInterval time.Duration // Default: 1 minute
	CacheProvider   CacheStatsProvider
}

// NewDashboardMetrics creates a new DashboardMetrics instance.
func NewDashboardMetrics(cfg DashboardMetricsConfig) (*DashboardMetrics, error) {
	if cfg.Meter == nil {
		return nil, ErrMeterNil
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	dm := &DashboardMetrics{
		meter:         cfg.Meter,
		logger:        logger,
		stopChan:      make(chan struct{}),
		cacheProvider: cfg.CacheProvider,
	}

	// Initialize counter metrics
	var err error

	// Cache metrics
	dm.cacheRequestTotal, err = NewCounter(
		cfg.Meter,
		"dashboard_cache_request_total",
		"Total number of cache lookups by key prefix and outcome",
		"{requests}",
	)
	if err != nil {
		return nil, err
	}

	// Upstream analytics service metrics
	dm.upstreamRequestTotal, err = NewCounter(
		cfg.Meter,
		"dashboard_upstream_request_total",
		"Total number of analytics service calls",
		"{requests}",
	)
	if err != nil {
		return nil, err
	}

	dm.upstreamDuration, err = NewHistogram(cfg.Meter, HistogramOpts{
		Name:        "dashboard_upstream_request_duration_seconds",
		Description: "Analytics service call latency distribution in seconds",
		Unit:        "s",
		Boundaries:  UpstreamDurationBuckets,
	})
	if err != nil {
		return nil, err
	}

	// Export metrics
	dm.exportTotal, err = NewCounter(
		cfg.Meter,
		"dashboard_export_total",
		"Total number of PDF export attempts",
		"{exports}",
	)
	if err != nil {
		return nil, err
	}

	// Forecast and commentary metrics
	dm.forecastTotal, err = NewCounter(
		cfg.Meter,
		"dashboard_forecast_total",
		"Total number of forecast generations triggered",
		"{forecasts}",
	)
	if err != nil {
		return nil, err
	}

	dm.commentaryTotal, err = NewCounter(
		cfg.Meter,
		"dashboard_commentary_generated_total",
		"Total number of AI commentary generations triggered",
		"{generations}",
	)
	if err != nil {
		return nil, err
	}

	// Bulk detail load metrics
	dm.detailFailureTotal, err = NewCounter(
		cfg.Meter,
		"dashboard_detail_failure_total",
		"Number of companies whose detail load failed during bulk hydration",
		"{companies}",
	)
	if err != nil {
		return nil, err
	}

	// Cache gauge metrics
	dm.cacheEntryCount, err = NewGauge(
		cfg.Meter,
		"dashboard_cache_entries",
		"Number of entries currently held in the query cache",
		"{entries}",
	)
	if err != nil {
		return nil, err
	}

	dm.cacheHitRatio, err = NewFloatGauge(
		cfg.Meter,
		"dashboard_cache_hit_ratio",
		"Fraction of cache lookups served without a loader call",
		"1",
	)
	if err != nil {
		return nil, err
	}

	return dm, nil
}

// SetCacheProvider attaches the cache store after construction. The store
// takes the metrics recorder at creation and the gauges need the store, so
// one side has to be wired late. Must be called before
// StartPeriodicCollection.
func (dm *DashboardMetrics) SetCacheProvider(p CacheStatsProvider) {
	dm.cacheProvider = p
}

// =============================================================================
// Cache Metrics
// =============================================================================

// CacheOutcome represents the result of a cache lookup for metrics labeling.
type CacheOutcome string

const (
	CacheOutcomeHit  CacheOutcome = "hit"
	CacheOutcomeMiss CacheOutcome = "miss"
)

// RecordCacheLookup records a single cache lookup. The kind label is the
// bounded key class ("companies", "detail", "analysis", ...), never a full
// key.
func (dm *DashboardMetrics) RecordCacheLookup(ctx context.Context, kind string, hit bool) {
	outcome := CacheOutcomeMiss
	if hit {
		outcome = CacheOutcomeHit
	}
	dm.cacheRequestTotal.Inc(ctx,
		AttrCacheKind.String(kind),
		AttrCacheOutcome.String(string(outcome)),
	)
}

// =============================================================================
// Upstream Analytics Service Metrics
// =============================================================================

// Outcome represents the result of an operation for metrics labeling.
type Outcome string

const (
	OutcomeOK    Outcome = "ok"
	OutcomeError Outcome = "error"
)

// RecordUpstreamRequest records an analytics service call with its duration.
// Operation names follow the {port}.{method} convention, e.g. "company.list".
func (dm *DashboardMetrics) RecordUpstreamRequest(ctx context.Context, operation string, outcome Outcome, duration time.Duration) {
	dm.upstreamRequestTotal.Inc(ctx,
		AttrUpstreamOperation.String(operation),
		AttrUpstreamOutcome.String(string(outcome)),
	)
	dm.upstreamDuration.RecordDuration(ctx, duration,
		AttrUpstreamOperation.String(operation),
	)
}

// =============================================================================
// Export, Forecast and Commentary Metrics
// =============================================================================

// RecordExport records a PDF export attempt against a storage backend.
func (dm *DashboardMetrics) RecordExport(ctx context.Context, backend string, outcome Outcome) {
	dm.exportTotal.Inc(ctx,
		AttrExportBackend.String(backend),
		AttrExportOutcome.String(string(outcome)),
	)
}

// RecordForecastTriggered records a forecast generation request for a company.
func (dm *DashboardMetrics) RecordForecastTriggered(ctx context.Context, companyID uuid.UUID) {
	dm.forecastTotal.Inc(ctx,
		AttrCompanyID.String(companyID.String()),
	)
}

// RecordCommentaryGenerated records an AI commentary generation request.
func (dm *DashboardMetrics) RecordCommentaryGenerated(ctx context.Context, companyID uuid.UUID) {
	dm.commentaryTotal.Inc(ctx,
		AttrCompanyID.String(companyID.String()),
	)
}

// RecordDetailFailure records a company whose detail load failed during
// bulk hydration. The dashboard keeps rendering with an empty placeholder.
func (dm *DashboardMetrics) RecordDetailFailure(ctx context.Context, companyID uuid.UUID) {
	dm.detailFailureTotal.Inc(ctx,
		AttrCompanyID.String(companyID.String()),
	)
}

// =============================================================================
// Periodic Collection
// =============================================================================

// StartPeriodicCollection starts periodic collection of cache gauge metrics.
// It samples the cache every interval (default: 1 minute).
// This is non-blocking - use Stop() to stop collection.
func (dm *DashboardMetrics) StartPeriodicCollection(ctx context.Context, interval time.Duration) {
	dm.collectOnce.Do(func() {
		if interval <= 0 {
			interval = time.Minute
		}

		go dm.runPeriodicCollection(ctx, interval)
	})
}

// runPeriodicCollection runs the periodic collection loop.
func (dm *DashboardMetrics) runPeriodicCollection(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Collect immediately on start
	dm.collectCacheMetrics(ctx)

	for {
		select {
		case <-dm.stopChan:
			dm.logger.Info("Stopping periodic dashboard metrics collection")
			return
		case <-ctx.Done():
			dm.logger.Info("Context cancelled, stopping periodic dashboard metrics collection")
			return
		case <-ticker.C:
			dm.collectCacheMetrics(ctx)
		}
	}
}

// collectCacheMetrics samples the cache store and records gauge metrics.
func (dm *DashboardMetrics) collectCacheMetrics(ctx context.Context) {
	if dm.cacheProvider == nil {
		dm.logger.Debug("No cache provider configured, skipping cache metrics collection")
		return
	}

	dm.cacheEntryCount.Record(ctx, int64(dm.cacheProvider.Len()))

	hits, misses := dm.cacheProvider.Stats()
	if total := hits + misses; total > 0 {
		dm.cacheHitRatio.Record(ctx, float64(hits)/float64(total))
	}
}

// Stop stops the periodic collection.
func (dm *DashboardMetrics) Stop() {
	dm.stopOnce.Do(func() {
		close(dm.stopChan)
	})
}

// =============================================================================
// Error Types
// =============================================================================

// ErrMeterNil is returned when meter is nil.
var ErrMeterNil = &MetricsError{Op: "NewDashboardMetrics", Err: "meter cannot be nil"}

// MetricsError represents a metrics-related error.
type MetricsError struct {
	Op  string
	Err string
}

func (e *MetricsError) Error() string {
	return e.Op + ": " + e.Err
}

// =============================================================================
// Attribute Key Constants
// =============================================================================

// Dashboard metrics attribute keys not already defined in metrics.go
var (
	// AttrScenarioType labels metrics by scenario kind (annuale, infrannuale)
	AttrScenarioType = attribute.Key("scenario_type")
)
