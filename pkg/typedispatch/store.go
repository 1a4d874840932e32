package typedispatch

import (
	"log/slog"

	"github.com/randalmurphal/typedispatch/pkg/typedispatch/observability"
)

// Store holds the processor and provider registries for one dispatch scope.
// Use the package-level functions to work with the global store, NewStore
// for a private one, or CreateStore for a process-wide named store.
//
// A Store is NOT safe for concurrent use. Registration normally happens
// during initialization; callers that mutate a store from multiple
// goroutines must synchronize externally.
type Store struct {
	name       string
	processors *typemap
	providers  *typemap

	logger        *slog.Logger
	metrics       observability.MetricsRecorder
	spans         observability.SpanManager
	strict        bool
	processOutput bool
}

// StoreOption configures a Store at construction time.
type StoreOption func(*Store)

// WithLogger sets the structured logger for registration and guard events.
// A nil logger (the default) disables logging.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics for lookups, binds, and
// Process/Invoke latency. Default: disabled (no-op recorder).
//
// The recorder uses the global OTel meter provider; configure it before
// creating the store. If instrument creation fails, metrics stay disabled.
func WithMetrics(enabled bool) StoreOption {
	return func(s *Store) {
		if !enabled {
			s.metrics = observability.NoopMetrics{}
			return
		}
		if m, err := observability.NewMetricsRecorder(); err == nil {
			s.metrics = m
		}
	}
}

// WithTracing enables OpenTelemetry spans around Process and Invoke.
// Default: disabled (no-op span manager).
func WithTracing(enabled bool) StoreOption {
	return func(s *Store) {
		if enabled {
			s.spans = observability.NewSpanManager()
		} else {
			s.spans = observability.NoopSpanManager{}
		}
	}
}

// WithStrict makes Process return ErrNoProcessor when no processor matches
// the value's type. Default: a miss is silently ignored.
func WithStrict(strict bool) StoreOption {
	return func(s *Store) {
		s.strict = strict
	}
}

// WithProcessOutput makes Invoke feed the invoked function's first non-error
// return value back through Process. Default: disabled.
func WithProcessOutput(enabled bool) StoreOption {
	return func(s *Store) {
		s.processOutput = enabled
	}
}

// NewStore creates an empty, anonymous Store. The store is independent of
// the global store and of the named-store table.
func NewStore(opts ...StoreOption) *Store {
	return newStore("", opts...)
}

func newStore(name string, opts ...StoreOption) *Store {
	s := &Store{
		name:       name,
		processors: newTypemap(),
		providers:  newTypemap(),
		metrics:    observability.NoopMetrics{},
		spans:      observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the store's name. Anonymous stores return "".
func (s *Store) Name() string {
	return s.name
}

// Len returns the number of registered processors and providers.
func (s *Store) Len() (processors, providers int) {
	return s.processors.size(), s.providers.size()
}

// Processors returns every processor binding in registration order. The
// slice is a snapshot; later store mutations do not affect it.
func (s *Store) Processors() Bindings {
	return collectBindings(s.processors)
}

// Providers returns every provider binding in registration order.
func (s *Store) Providers() Bindings {
	return collectBindings(s.providers)
}

func collectBindings(side *typemap) Bindings {
	out := make(Bindings, 0, side.size())
	side.forEach(func(k, v any) bool {
		out = append(out, Binding{Key: k, Value: v})
		return true
	})
	return out
}

// Clear removes every processor and provider binding.
func (s *Store) Clear() {
	s.processors.clear()
	s.providers.clear()
}

// ClearProcessor removes the exact processor binding for key and returns it.
// Ancestor bindings are untouched; a missing key returns (nil, false).
func (s *Store) ClearProcessor(key any) (Processor, bool) {
	return s.processors.remove(key)
}

// ClearProvider removes the exact provider binding for key and returns it.
func (s *Store) ClearProvider(key any) (Provider, bool) {
	return s.providers.remove(key)
}
