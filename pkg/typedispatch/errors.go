package typedispatch

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors for registration.
var (
	// ErrAlreadyRegistered indicates a non-clobbering bind targeted a key
	// that already has a binding.
	ErrAlreadyRegistered = errors.New("type already registered")

	// ErrNoProcessor indicates Process found no processor for a value
	// (only surfaced in strict mode).
	ErrNoProcessor = errors.New("no processor registered")

	// ErrNoProvider indicates no provider is registered for a type.
	ErrNoProvider = errors.New("no provider registered")

	// ErrNotAFunc indicates a func-typed argument was expected.
	ErrNotAFunc = errors.New("not a function")

	// ErrNotAssignable indicates a dispatched or provider-produced value
	// cannot be passed to the target function's parameter type.
	ErrNotAssignable = errors.New("value not assignable")
)

// Sentinel errors for the named-store table.
var (
	// ErrStoreExists indicates CreateStore was called with a name already in use.
	ErrStoreExists = errors.New("store already exists")

	// ErrStoreNotFound indicates GetStore or DestroyStore referenced an
	// unknown store name.
	ErrStoreNotFound = errors.New("store does not exist")

	// ErrReservedStore indicates an attempt to create or destroy the global store.
	ErrReservedStore = errors.New("reserved store name")
)

// CollisionError reports a bind that targeted an already-registered key
// without clobber permission. No bindings from the offending batch have
// been applied when this error is returned.
type CollisionError struct {
	// Key is the type key that already has a binding.
	Key any
	// Kind is the registry side, "processor" or "provider".
	Kind string
}

// Error implements the error interface.
func (e *CollisionError) Error() string {
	return fmt.Sprintf("type %s already has a %s (clobber disabled)", keyString(e.Key), e.Kind)
}

// Unwrap returns ErrAlreadyRegistered for errors.Is support.
func (e *CollisionError) Unwrap() error {
	return ErrAlreadyRegistered
}

// UnresolvedError reports an Invoke parameter with no registered provider.
type UnresolvedError struct {
	// Index is the parameter position in the invoked function.
	Index int
	// Type is the parameter type that could not be resolved.
	Type reflect.Type
}

// Error implements the error interface.
func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("no provider for parameter %d (%s)", e.Index, e.Type)
}

// Unwrap returns ErrNoProvider for errors.Is support.
func (e *UnresolvedError) Unwrap() error {
	return ErrNoProvider
}

// keyString renders a type key for error messages and log fields.
func keyString(key any) string {
	if t, ok := key.(reflect.Type); ok {
		return t.String()
	}
	return fmt.Sprintf("%v", key)
}
