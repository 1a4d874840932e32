package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the typedispatch tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("typedispatch")

// SpanManager handles trace span lifecycle for dispatch operations.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartProcessSpan starts a span for a Process call. key is the
	// rendered type key being dispatched.
	StartProcessSpan(ctx context.Context, key string) (context.Context, trace.Span)

	// StartInvokeSpan starts a span for an Invoke call. signature is the
	// invoked function's type string.
	StartInvokeSpan(ctx context.Context, signature string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartProcessSpan starts a span for a Process call.
func (m *otelSpanManager) StartProcessSpan(ctx context.Context, key string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "typedispatch.process",
		trace.WithAttributes(
			attribute.String("dispatch.key", key),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartInvokeSpan starts a span for an Invoke call.
func (m *otelSpanManager) StartInvokeSpan(ctx context.Context, signature string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "typedispatch.invoke",
		trace.WithAttributes(
			attribute.String("invoke.signature", signature),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
