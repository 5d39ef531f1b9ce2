package link

import (
	"log/slog"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate"
	"github.com/randalmurphal/uritemplate/pkg/uritemplate/observability"
)

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithExpander sets the expander used to build links.
//
// Default: uritemplate.NewExpander() (placeholders kept, no encoding)
func WithExpander(exp *uritemplate.Expander) CatalogOption {
	return func(c *Catalog) {
		if exp != nil {
			c.expander = exp
		}
	}
}

// WithCache shares a parse cache between catalogs.
//
// Default: a private cache per catalog
func WithCache(cache *uritemplate.Cache) CatalogOption {
	return func(c *Catalog) {
		if cache != nil {
			c.cache = cache
		}
	}
}

// WithLogger sets the logger for registration and expansion events.
//
// Default: nil (no logging)
func WithLogger(logger *slog.Logger) CatalogOption {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// WithMetrics sets the metrics recorder.
//
// Default: observability.NoopMetrics{}
//
// Example:
//
//	catalog := link.NewCatalog(link.WithMetrics(observability.NewMetricsRecorder()))
func WithMetrics(m observability.MetricsRecorder) CatalogOption {
	return func(c *Catalog) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithSpanManager sets the span manager used for tracing.
//
// Default: observability.NoopSpanManager{}
func WithSpanManager(sm observability.SpanManager) CatalogOption {
	return func(c *Catalog) {
		if sm != nil {
			c.spans = sm
		}
	}
}
