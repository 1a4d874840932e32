package typedispatch

import (
	"context"
	"reflect"

	"github.com/randalmurphal/typedispatch/pkg/typedispatch/observability"
)

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

// RegisterProcessor registers fn as the processor for the type of its first
// parameter. A leading context.Context parameter is skipped when inferring
// the key, so func(context.Context, T) registers for T.
//
// A non-function value, or a function with no usable parameter, cannot be a
// processor: a warning is logged, nothing is registered, and nil is
// returned (skip, not failure). fn itself is never wrapped and stays
// directly callable.
//
// Registration is permanent and non-clobbering: registering a second
// processor for the same type fails with a *CollisionError unless the first
// is cleared or an explicit Bind with WithClobber is used.
func (s *Store) RegisterProcessor(fn Processor) error {
	key, ok := processorKey(fn)
	if !ok {
		observability.LogRegistrationSkipped(s.logger, s.name, "processor",
			"function has no parameter types, cannot be a processor")
		return nil
	}
	_, err := s.Bind(Bindings{{Key: key, Value: fn}})
	return err
}

// RegisterProvider registers fn as the provider for the type of its first
// return value. A trailing error return is ignored when inferring the key,
// so func() (T, error) registers for T.
//
// A non-function value or a function with no non-error return cannot be a
// provider: a warning is logged and registration is skipped. Registration
// is permanent and non-clobbering, as with RegisterProcessor.
func (s *Store) RegisterProvider(fn Provider) error {
	key, ok := providerKey(fn)
	if !ok {
		observability.LogRegistrationSkipped(s.logger, s.name, "provider",
			"function has no return types, cannot be a provider")
		return nil
	}
	_, err := s.BindProviders(Bindings{{Key: key, Value: fn}})
	return err
}

// processorKey extracts the type key from a processor function's signature.
func processorKey(fn Processor) (reflect.Type, bool) {
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func || t.NumIn() == 0 {
		return nil, false
	}
	first := t.In(0)
	if first == contextType {
		if t.NumIn() < 2 {
			return nil, false
		}
		first = t.In(1)
	}
	return first, true
}

// providerKey extracts the type key from a provider function's signature.
func providerKey(fn Provider) (reflect.Type, bool) {
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func || t.NumOut() == 0 {
		return nil, false
	}
	first := t.Out(0)
	if first == errorType {
		return nil, false
	}
	return first, true
}

// RegisterProcessorFor registers fn for T with the key fixed at compile
// time, for processors whose parameter type is wider than the key (for
// example an any-taking function registered for a concrete type).
// A nil store means the global store.
func RegisterProcessorFor[T any](s *Store, fn Processor) error {
	_, err := storeOrGlobal(s).Bind(Bindings{{Key: KeyOf[T](), Value: fn}})
	return err
}

// RegisterProviderFor registers fn (or a constant value) as the provider
// for T with the key fixed at compile time. A nil store means the global
// store.
func RegisterProviderFor[T any](s *Store, fn Provider) error {
	_, err := storeOrGlobal(s).BindProviders(Bindings{{Key: KeyOf[T](), Value: fn}})
	return err
}
