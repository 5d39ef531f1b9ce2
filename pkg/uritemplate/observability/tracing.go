package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer uses the global OTel tracer provider.
var tracer = otel.Tracer("uritemplate")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartBuildSpan starts a span covering a multi-relation link build.
	StartBuildSpan(ctx context.Context, relations []string) (context.Context, trace.Span)

	// StartLinkSpan starts a span for expanding one relation.
	// It should be a child of the build span when there is one.
	StartLinkSpan(ctx context.Context, relation, template string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartBuildSpan starts a span for a multi-relation build.
func (m *otelSpanManager) StartBuildSpan(ctx context.Context, relations []string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "uritemplate.catalog.build",
		trace.WithAttributes(
			attribute.StringSlice("link.relations", relations),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartLinkSpan starts a span for one relation.
func (m *otelSpanManager) StartLinkSpan(ctx context.Context, relation, template string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "uritemplate.link."+relation,
		trace.WithAttributes(
			attribute.String("link.relation", relation),
			attribute.String("link.template", template),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	EndSpanWithError(span, err)
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
