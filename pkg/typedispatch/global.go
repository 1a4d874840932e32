package typedispatch

import "context"

// Package-level forms of the Store API, operating on the global store.
// They mirror the methods one-to-one; see the Store documentation.

// Bind applies processor bindings to the global store.
func Bind(bindings Bindings, opts ...BindOption) (*Guard, error) {
	return globalStore.Bind(bindings, opts...)
}

// BindProviders applies provider bindings to the global store.
func BindProviders(bindings Bindings, opts ...BindOption) (*Guard, error) {
	return globalStore.BindProviders(bindings, opts...)
}

// LookupProcessor returns the processor registered for key in the global store.
func LookupProcessor(key any) (Processor, bool) {
	return globalStore.Processor(key)
}

// LookupProvider returns the provider registered for key in the global store.
func LookupProvider(key any) (Provider, bool) {
	return globalStore.Provider(key)
}

// Processors returns the global store's processor bindings in registration order.
func Processors() Bindings {
	return globalStore.Processors()
}

// Providers returns the global store's provider bindings in registration order.
func Providers() Bindings {
	return globalStore.Providers()
}

// RegisterProcessor registers fn in the global store, keyed by the type of
// its first non-context parameter.
func RegisterProcessor(fn Processor) error {
	return globalStore.RegisterProcessor(fn)
}

// RegisterProvider registers fn in the global store, keyed by the type of
// its first non-error return.
func RegisterProvider(fn Provider) error {
	return globalStore.RegisterProvider(fn)
}

// Process routes value through the global store's processors.
func Process(ctx context.Context, value any) error {
	return globalStore.Process(ctx, value)
}

// Provide resolves an instance for key from the global store's providers.
func Provide(ctx context.Context, key any) (any, error) {
	return globalStore.Provide(ctx, key)
}

// Invoke calls fn with parameters resolved from the global store's providers.
func Invoke(ctx context.Context, fn any) error {
	return globalStore.Invoke(ctx, fn)
}
