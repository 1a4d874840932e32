package typedispatch

import (
	"context"
	"fmt"
	"reflect"
)

// constantProvider wraps a non-function bound via BindProviders so that
// every provider in the registry is callable.
type constantProvider struct {
	value any
}

// asProvider normalizes a provider binding: functions pass through, any
// other value becomes a constant factory.
func asProvider(v Provider) Provider {
	if t := reflect.TypeOf(v); t != nil && t.Kind() == reflect.Func {
		return v
	}
	return constantProvider{value: v}
}

// Provide resolves an instance for key: the provider is looked up (exact
// match first, then ancestor scan in registration order) and invoked.
// A miss returns an error wrapping ErrNoProvider; a provider's own error
// return is propagated as-is.
func (s *Store) Provide(ctx context.Context, key any) (any, error) {
	p, ok := s.Provider(key)
	if !ok {
		return nil, fmt.Errorf("provide %s: %w", keyString(key), ErrNoProvider)
	}
	return callProvider(ctx, p)
}

// callProvider invokes a registered provider. Providers take no arguments
// beyond an optional leading context.Context, return one value, and may
// return a trailing error.
func callProvider(ctx context.Context, p Provider) (any, error) {
	if c, ok := p.(constantProvider); ok {
		return c.value, nil
	}

	fv := reflect.ValueOf(p)
	ft := fv.Type()

	var args []reflect.Value
	switch {
	case ft.NumIn() == 0:
	case ft.NumIn() == 1 && ft.In(0) == contextType:
		args = []reflect.Value{reflect.ValueOf(ctx)}
	default:
		return nil, fmt.Errorf("provider %s takes arguments beyond context", ft)
	}

	outs := fv.Call(args)
	return splitResult(outs)
}

// splitResult separates a call's first value from a trailing error return.
func splitResult(outs []reflect.Value) (any, error) {
	if len(outs) == 0 {
		return nil, nil
	}
	if last := outs[len(outs)-1]; last.Type() == errorType {
		if !last.IsNil() {
			return nil, last.Interface().(error)
		}
		outs = outs[:len(outs)-1]
	}
	if len(outs) == 0 {
		return nil, nil
	}
	return outs[0].Interface(), nil
}

// ProvideAs resolves a typed instance for T. A nil store means the global
// store. The zero value of T accompanies any error.
func ProvideAs[T any](ctx context.Context, s *Store) (T, error) {
	var zero T
	v, err := storeOrGlobal(s).Provide(ctx, KeyOf[T]())
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("provider for %s returned %T", KeyOf[T](), v)
	}
	return typed, nil
}
