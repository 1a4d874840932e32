package typedispatch

import (
	"context"
	"fmt"
	"reflect"

	"github.com/google/uuid"

	"github.com/randalmurphal/typedispatch/pkg/typedispatch/observability"
)

// Processor is a function registered to act on values of its key type.
// The first non-context parameter must accept the key type. Any return
// values are allowed; a trailing error return is propagated by Process.
type Processor = any

// Provider is a zero-argument factory registered to produce values of its
// key type: func() T, func() (T, error), or the context-taking variants.
// A non-function value is accepted too and is wrapped into a constant
// factory at bind time.
type Provider = any

// Binding pairs a type key with a processor or provider.
// The key is usually a reflect.Type (see KeyOf), but any comparable value
// is accepted.
type Binding struct {
	Key   any
	Value any
}

// Bindings is an ordered batch of bindings. Order matters: keys enter the
// registry in slice order, and ancestor lookup breaks ties by that order.
type Bindings []Binding

// bindConfig holds configuration for one bind call.
type bindConfig struct {
	clobber bool
}

// BindOption configures a single bind.
type BindOption func(*bindConfig)

// WithClobber allows a bind to overwrite existing bindings instead of
// failing with a CollisionError. Default: false.
func WithClobber(clobber bool) BindOption {
	return func(c *bindConfig) {
		c.clobber = clobber
	}
}

// snapshot records one key's state prior to a bind, so a Guard can put it
// back. present==false marks a key that had no binding.
type snapshot struct {
	key     any
	value   any
	present bool
}

// Guard reverses the bind that created it. Obtain one from Bind or
// BindProviders, and release it to restore every key the bind touched:
//
//	g, err := store.Bind(typedispatch.Bindings{{Key: key, Value: fn}}, typedispatch.WithClobber(true))
//	if err != nil {
//	    return err
//	}
//	defer g.Release()
//
// Releasing restores the prior binding for each key, or removes keys that
// had none. A Guard that is never released leaves the bind permanent.
// Guards are single-use: the snapshot is consumed by the first Release and
// later calls are no-ops.
type Guard struct {
	id    string
	store *Store
	side  *typemap
	kind  string
	prior []snapshot
}

// ID returns the guard's identifier, used in log fields.
func (g *Guard) ID() string {
	return g.id
}

// Release restores the registry state captured when the guard was created.
// Restore order is independent of application order; snapshot keys are
// unique and each is restored on its own. Safe to call via defer on every
// exit path.
func (g *Guard) Release() {
	if g == nil || g.prior == nil {
		return
	}
	for _, snap := range g.prior {
		if snap.present {
			g.side.put(snap.key, snap.value)
		} else {
			g.side.remove(snap.key)
		}
	}
	n := len(g.prior)
	g.prior = nil
	observability.LogRelease(g.store.logger, g.store.name, g.kind, g.id, n)
	g.store.metrics.RecordRelease(context.Background(), g.kind, n)
}

// Bind applies a batch of {key → processor} bindings and returns a Guard
// that can undo them. Without WithClobber, a key that already has a
// processor fails the entire batch with a *CollisionError before anything
// is installed.
//
// Calling Bind and discarding the Guard registers permanently; releasing
// the Guard (typically via defer) makes the bind scoped.
func (s *Store) Bind(bindings Bindings, opts ...BindOption) (*Guard, error) {
	return s.bind(s.processors, "processor", bindings, opts...)
}

// BindProviders applies a batch of {key → provider} bindings. Non-function
// values are wrapped into constant factories. Semantics otherwise match
// Bind.
func (s *Store) BindProviders(bindings Bindings, opts ...BindOption) (*Guard, error) {
	wrapped := make(Bindings, len(bindings))
	for i, b := range bindings {
		wrapped[i] = Binding{Key: b.Key, Value: asProvider(b.Value)}
	}
	return s.bind(s.providers, "provider", wrapped, opts...)
}

// bind validates, snapshots, and installs a batch against one registry
// side. The whole batch is checked before any key is installed, so a
// collision leaves the registry untouched.
func (s *Store) bind(side *typemap, kind string, bindings Bindings, opts ...BindOption) (*Guard, error) {
	var cfg bindConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	prior := make([]snapshot, 0, len(bindings))
	seen := make(map[any]bool, len(bindings))
	for _, b := range bindings {
		if !hashable(b.Key) {
			return nil, fmt.Errorf("bind %s: key %s is not usable as a map key", kind, keyString(b.Key))
		}
		if side.contains(b.Key) && !cfg.clobber {
			return nil, &CollisionError{Key: b.Key, Kind: kind}
		}
		// A key repeated within the batch keeps only its first snapshot,
		// so Release restores the pre-batch state.
		if seen[b.Key] {
			continue
		}
		seen[b.Key] = true
		v, present := side.get(b.Key)
		prior = append(prior, snapshot{key: b.Key, value: v, present: present})
	}

	for _, b := range bindings {
		side.put(b.Key, b.Value)
	}

	g := &Guard{
		id:    "bind-" + uuid.New().String()[:8],
		store: s,
		side:  side,
		kind:  kind,
		prior: prior,
	}
	observability.LogBind(s.logger, s.name, kind, g.id, len(bindings))
	s.metrics.RecordBind(context.Background(), kind, len(bindings))
	return g, nil
}

// KeyOf returns the reflect.Type key for T. Works for interface types too:
//
//	typedispatch.KeyOf[io.Writer]()
func KeyOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
