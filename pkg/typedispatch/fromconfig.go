package typedispatch

import (
	"github.com/randalmurphal/typedispatch/pkg/typedispatch/config"
)

// OptionsFromConfig builds store options from a configuration map.
//
// Recognized keys (all optional):
//   - strict (bool): Process fails on a missing processor
//   - process_output (bool): Invoke feeds results through Process
//   - metrics (bool): enable OpenTelemetry metrics
//   - tracing (bool): enable OpenTelemetry tracing
//
// Unrecognized keys are ignored, so a dispatch section can live inside a
// larger application config.
func OptionsFromConfig(cfg config.Config) []StoreOption {
	var opts []StoreOption
	if cfg.Bool("strict", false) {
		opts = append(opts, WithStrict(true))
	}
	if cfg.Bool("process_output", false) {
		opts = append(opts, WithProcessOutput(true))
	}
	if cfg.Bool("metrics", false) {
		opts = append(opts, WithMetrics(true))
	}
	if cfg.Bool("tracing", false) {
		opts = append(opts, WithTracing(true))
	}
	return opts
}

// NewStoreFromConfig creates an anonymous store configured from cfg.
// Extra options are applied after the configured ones and take precedence.
func NewStoreFromConfig(cfg config.Config, extra ...StoreOption) *Store {
	return NewStore(append(OptionsFromConfig(cfg), extra...)...)
}

// CreateStoreFromConfig builds a store from cfg, additionally honoring a
// "name" (string) key: when present, the store is registered process-wide
// via CreateStore under that name; when absent, an anonymous store is
// returned. Extra options take precedence over the configured ones.
func CreateStoreFromConfig(cfg config.Config, extra ...StoreOption) (*Store, error) {
	opts := append(OptionsFromConfig(cfg), extra...)
	if !cfg.Has("name") {
		return NewStore(opts...), nil
	}
	return CreateStore(cfg.String("name", ""), opts...)
}
