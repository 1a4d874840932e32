package typedispatch

import (
	"context"
	"reflect"

	"github.com/randalmurphal/typedispatch/pkg/typedispatch/observability"
)

// Processor returns the processor registered for key.
//
// Lookup is exact first: a key with its own binding always wins. When key
// is a reflect.Type and has no exact binding, registered type keys are
// scanned in registration order and the first one the query type is
// assignable to wins. Assignability is Go's subtype relation here, so a
// processor registered for an interface catches every implementing type.
//
// Ties between multiple matching ancestor keys go to whichever was
// registered first. That is a deliberate, simple policy: registration
// order, not specificity.
//
// A miss returns (nil, false), never an error. Nil and non-comparable keys
// are misses.
func (s *Store) Processor(key any) (Processor, bool) {
	return s.lookup(s.processors, "processor", key)
}

// Provider returns the provider registered for key, without invoking it.
// Lookup semantics match Processor.
func (s *Store) Provider(key any) (Provider, bool) {
	return s.lookup(s.providers, "provider", key)
}

func (s *Store) lookup(side *typemap, kind string, key any) (any, bool) {
	if v, ok := side.get(key); ok {
		s.metrics.RecordLookup(context.Background(), kind, observability.LookupExact)
		return v, true
	}

	query, ok := key.(reflect.Type)
	if ok && query != nil {
		var found any
		var matched bool
		side.forEach(func(k, v any) bool {
			ancestor, isType := k.(reflect.Type)
			if isType && query.AssignableTo(ancestor) {
				found, matched = v, true
				return false
			}
			return true
		})
		if matched {
			s.metrics.RecordLookup(context.Background(), kind, observability.LookupAncestor)
			return found, true
		}
	}

	s.metrics.RecordLookup(context.Background(), kind, observability.LookupMiss)
	return nil, false
}

// ProcessorFor returns the processor registered for T in store s.
// A nil store means the global store.
func ProcessorFor[T any](s *Store) (Processor, bool) {
	return storeOrGlobal(s).Processor(KeyOf[T]())
}

// ProviderFor returns the provider registered for T in store s, without
// invoking it. A nil store means the global store.
func ProviderFor[T any](s *Store) (Provider, bool) {
	return storeOrGlobal(s).Provider(KeyOf[T]())
}
