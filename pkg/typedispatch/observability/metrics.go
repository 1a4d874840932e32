package observability

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Lookup result kinds recorded with RecordLookup.
const (
	LookupExact    = "exact"
	LookupAncestor = "ancestor"
	LookupMiss     = "miss"
)

// MetricsRecorder records typedispatch metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordLookup records one registry lookup and how it resolved
	// (exact, ancestor, or miss).
	RecordLookup(ctx context.Context, kind, result string)

	// RecordBind records the application of a binding batch.
	RecordBind(ctx context.Context, kind string, count int)

	// RecordRelease records a guard restoring its snapshot.
	RecordRelease(ctx context.Context, kind string, count int)

	// RecordProcess records a Process call with its duration and error status.
	RecordProcess(ctx context.Context, duration time.Duration, err error)

	// RecordInvoke records an Invoke call with its duration and error status.
	RecordInvoke(ctx context.Context, duration time.Duration, err error)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	lookups        metric.Int64Counter
	binds          metric.Int64Counter
	releases       metric.Int64Counter
	processLatency metric.Float64Histogram
	invokeLatency  metric.Float64Histogram
	dispatchErrors metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("typedispatch")

	lookups, err := meter.Int64Counter("typedispatch.lookups",
		metric.WithDescription("Number of registry lookups"),
	)
	if err != nil {
		return nil, err
	}

	binds, err := meter.Int64Counter("typedispatch.bindings.applied",
		metric.WithDescription("Number of bindings applied"),
	)
	if err != nil {
		return nil, err
	}

	releases, err := meter.Int64Counter("typedispatch.bindings.restored",
		metric.WithDescription("Number of bindings restored by guard release"),
	)
	if err != nil {
		return nil, err
	}

	processLatency, err := meter.Float64Histogram("typedispatch.process.latency_ms",
		metric.WithDescription("Process call latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	invokeLatency, err := meter.Float64Histogram("typedispatch.invoke.latency_ms",
		metric.WithDescription("Invoke call latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	dispatchErrors, err := meter.Int64Counter("typedispatch.dispatch.errors",
		metric.WithDescription("Number of failed Process and Invoke calls"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		lookups:        lookups,
		binds:          binds,
		releases:       releases,
		processLatency: processLatency,
		invokeLatency:  invokeLatency,
		dispatchErrors: dispatchErrors,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder backed by OpenTelemetry.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() (MetricsRecorder, error) {
	return getDefaultMetrics()
}

// RecordLookup records one registry lookup.
func (m *otelMetrics) RecordLookup(ctx context.Context, kind, result string) {
	m.lookups.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("result", result),
	))
}

// RecordBind records the application of a binding batch.
func (m *otelMetrics) RecordBind(ctx context.Context, kind string, count int) {
	m.binds.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String("kind", kind),
	))
}

// RecordRelease records a guard restoring its snapshot.
func (m *otelMetrics) RecordRelease(ctx context.Context, kind string, count int) {
	m.releases.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String("kind", kind),
	))
}

// RecordProcess records a Process call.
func (m *otelMetrics) RecordProcess(ctx context.Context, duration time.Duration, err error) {
	m.processLatency.Record(ctx, float64(duration.Milliseconds()))
	if err != nil {
		m.dispatchErrors.Add(ctx, 1, metric.WithAttributes(
			attribute.String("op", "process"),
		))
	}
}

// RecordInvoke records an Invoke call.
func (m *otelMetrics) RecordInvoke(ctx context.Context, duration time.Duration, err error) {
	m.invokeLatency.Record(ctx, float64(duration.Milliseconds()))
	if err != nil {
		m.dispatchErrors.Add(ctx, 1, metric.WithAttributes(
			attribute.String("op", "invoke"),
		))
	}
}
