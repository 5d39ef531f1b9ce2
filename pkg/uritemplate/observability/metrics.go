package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records template metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordParse records a template parse for a relation, with its error status.
	RecordParse(ctx context.Context, relation string, err error)

	// RecordExpansion records a link expansion with its duration, the number
	// of links produced and its error status.
	RecordExpansion(ctx context.Context, relation string, duration time.Duration, links int, err error)

	// RecordCacheLookup records a parse cache lookup.
	RecordCacheLookup(ctx context.Context, hit bool)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	parses        metric.Int64Counter
	parseErrors   metric.Int64Counter
	expansions    metric.Int64Counter
	expandErrors  metric.Int64Counter
	expandLatency metric.Float64Histogram
	linksEmitted  metric.Int64Counter
	cacheLookups  metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics lazily initializes the shared OTel metrics instance.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("uritemplate")

	parses, err := meter.Int64Counter("uritemplate.parse.count",
		metric.WithDescription("Number of template parses"),
	)
	if err != nil {
		return nil, err
	}

	parseErrors, err := meter.Int64Counter("uritemplate.parse.errors",
		metric.WithDescription("Number of malformed templates"),
	)
	if err != nil {
		return nil, err
	}

	expansions, err := meter.Int64Counter("uritemplate.expand.count",
		metric.WithDescription("Number of link expansions"),
	)
	if err != nil {
		return nil, err
	}

	expandErrors, err := meter.Int64Counter("uritemplate.expand.errors",
		metric.WithDescription("Number of failed link expansions"),
	)
	if err != nil {
		return nil, err
	}

	expandLatency, err := meter.Float64Histogram("uritemplate.expand.latency_ms",
		metric.WithDescription("Link expansion latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	linksEmitted, err := meter.Int64Counter("uritemplate.expand.links",
		metric.WithDescription("Number of links produced by expansions"),
	)
	if err != nil {
		return nil, err
	}

	cacheLookups, err := meter.Int64Counter("uritemplate.cache.lookups",
		metric.WithDescription("Number of parse cache lookups"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		parses:        parses,
		parseErrors:   parseErrors,
		expansions:    expansions,
		expandErrors:  expandErrors,
		expandLatency: expandLatency,
		linksEmitted:  linksEmitted,
		cacheLookups:  cacheLookups,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordParse records a template parse.
func (m *otelMetrics) RecordParse(ctx context.Context, relation string, err error) {
	attrs := metric.WithAttributes(attribute.String("relation", relation))
	m.parses.Add(ctx, 1, attrs)
	if err != nil {
		m.parseErrors.Add(ctx, 1, attrs)
	}
}

// RecordExpansion records a link expansion.
func (m *otelMetrics) RecordExpansion(ctx context.Context, relation string, duration time.Duration, links int, err error) {
	attrs := metric.WithAttributes(attribute.String("relation", relation))

	m.expansions.Add(ctx, 1, attrs)
	m.expandLatency.Record(ctx, float64(duration.Microseconds())/1000, attrs)
	if err != nil {
		m.expandErrors.Add(ctx, 1, attrs)
		return
	}
	m.linksEmitted.Add(ctx, int64(links), attrs)
}

// RecordCacheLookup records a parse cache lookup.
func (m *otelMetrics) RecordCacheLookup(ctx context.Context, hit bool) {
	m.cacheLookups.Add(ctx, 1, metric.WithAttributes(attribute.Bool("hit", hit)))
}
