/*
Package typedispatch is a runtime registry that associates a type with a
single processor function able to act on values of that type, plus a scoped
override mechanism for temporarily replacing registrations.

# Overview

A Store holds two registries: processors (type → function acting on values
of that type) and providers (type → factory producing values of that type).
Registrations are permanent by default; a bind can instead return a Guard
that restores the prior state when released, so overrides can be scoped to
a block or a test.

The package keeps one process-wide global store, exposed through
package-level functions; private and named stores are available for
isolation. Processors and Providers enumerate a store's bindings in
registration order, for diagnostics or bulk inspection.

# Basic Usage

Register a processor keyed by its first parameter type, then dispatch:

	func printReport(r Report) {
	    fmt.Println(r.Summary)
	}

	func main() {
	    if err := typedispatch.RegisterProcessor(printReport); err != nil {
	        log.Fatal(err)
	    }

	    // Exact lookup.
	    proc, ok := typedispatch.LookupProcessor(typedispatch.KeyOf[Report]())
	    _ = proc // the registered printReport
	    _ = ok

	    // Or dispatch a value directly.
	    err := typedispatch.Process(context.Background(), Report{Summary: "done"})
	    if err != nil {
	        log.Fatal(err)
	    }
	}

# Lookup Semantics

Lookup is exact first. When the queried key is a reflect.Type with no exact
binding, registered type keys are scanned in registration order and the
first key the query type is assignable to wins. Registering a processor for
an interface therefore catches every implementing type:

	typedispatch.RegisterProcessor(func(s fmt.Stringer) {
	    fmt.Println(s.String())
	})

	// Any Stringer now dispatches to the processor above, unless a more
	// exact binding exists for its concrete type.

Ties between several matching ancestor keys go to whichever was registered
first: the policy is registration order, not specificity. A miss is
(nil, false), never an error, so callers can probe freely.

# Scoped Overrides

Bind returns a Guard. Releasing it restores every key the bind touched,
including keys that had no prior binding (those are removed again):

	g, err := typedispatch.Bind(typedispatch.Bindings{
	    {Key: typedispatch.KeyOf[Report](), Value: mockPrinter},
	}, typedispatch.WithClobber(true))
	if err != nil {
	    return err
	}
	defer g.Release()

	// Within this scope Report values dispatch to mockPrinter; after
	// Release the original processor is back.

Release runs on every exit path when deferred, normal return or panic.
Without WithClobber, binding an already-registered key fails with a
*CollisionError and nothing from the batch is applied.

# Providers and Invoke

Providers are the mirror image: factories keyed by the type they produce.
Invoke resolves every parameter of a function from the provider registry:

	typedispatch.RegisterProvider(func() *sql.DB { return db })

	err := typedispatch.Invoke(ctx, func(db *sql.DB, r Report) error {
	    return save(db, r)
	})

context.Context parameters receive the invocation context directly.
A parameter with no matching provider fails with *UnresolvedError before
the function is called.

# Named Stores

Stores can be created, fetched, and destroyed by name for subsystems that
need isolated registries:

	s, err := typedispatch.CreateStore("plugins")
	...
	s, err = typedispatch.GetStore("plugins")
	...
	err = typedispatch.DestroyStore("plugins")

The name "global" is reserved for the process-wide store, which cannot be
destroyed.

# Observability

Stores accept a structured logger and opt-in OpenTelemetry metrics and
tracing:

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	s := typedispatch.NewStore(
	    typedispatch.WithLogger(logger),
	    typedispatch.WithMetrics(true),
	    typedispatch.WithTracing(true),
	)

Logs include structured fields: store, kind, guard_id, count.
OpenTelemetry metrics: typedispatch.lookups, typedispatch.bindings.applied,
typedispatch.process.latency_ms, etc.
OpenTelemetry tracing: typedispatch.process and typedispatch.invoke spans.

# Error Handling

Registration collisions carry the offending key:

	var collision *typedispatch.CollisionError
	if errors.As(err, &collision) {
	    log.Printf("key %v taken", collision.Key)
	}
	// or: errors.Is(err, typedispatch.ErrAlreadyRegistered)

A declaratively registered function with no usable parameter types is
skipped with a logged warning, not an error. Lookup misses are (nil, false).

# Thread Safety

  - Store is NOT safe for concurrent use; registries are expected to be
    populated during initialization or externally synchronized
  - Guard is NOT safe for concurrent use; release each guard exactly once,
    from the goroutine that created it
  - Config (subpackage) IS safe for concurrent reads

# Subpackages

  - config: store options from YAML/JSON configuration
  - observability: logging, metrics, and tracing helpers
*/
package typedispatch
