// Package observability provides logging, metrics and tracing for template
// parsing and link building.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
// Every helper accepts a nil logger.
package observability

import "log/slog"

// EnrichLogger returns a logger that tags every record with the link
// relation being built.
//
// Example:
//
//	enriched := EnrichLogger(logger, "self")
//	enriched.Info("building link") // includes relation=self
func EnrichLogger(logger *slog.Logger, relation string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("relation", relation))
}

// LogTemplateRegistered logs a template added to a catalog.
func LogTemplateRegistered(logger *slog.Logger, relation, source string) {
	if logger == nil {
		return
	}
	logger.Debug("template registered",
		slog.String("relation", relation),
		slog.String("template", source),
	)
}

// LogTemplateError logs a template that failed to parse.
func LogTemplateError(logger *slog.Logger, relation, source string, err error) {
	if logger == nil {
		return
	}
	logger.Error("template rejected",
		slog.String("relation", relation),
		slog.String("template", source),
		slog.String("error", err.Error()),
	)
}

// LogExpansion logs a successful link expansion.
func LogExpansion(logger *slog.Logger, relation string, links int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("link expanded",
		slog.String("relation", relation),
		slog.Int("links", links),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogExpansionError logs a failed link expansion.
func LogExpansionError(logger *slog.Logger, relation string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("link expansion failed",
		slog.String("relation", relation),
		slog.String("error", err.Error()),
	)
}

// LogUnbound logs a variable left as a placeholder because it had no binding.
func LogUnbound(logger *slog.Logger, name, placeholder string) {
	if logger == nil {
		return
	}
	logger.Debug("variable unbound, placeholder kept",
		slog.String("variable", name),
		slog.String("placeholder", placeholder),
	)
}
