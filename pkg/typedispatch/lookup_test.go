package typedispatch

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stamp implements fmt.Stringer for ancestor-lookup tests.
type stamp struct{ label string }

func (s stamp) String() string { return s.label }

// stringerCloser implements both fmt.Stringer and io.Closer, to exercise
// ancestor tie-breaking between unrelated interface keys.
type stringerCloser struct{ stamp }

func (stringerCloser) Close() error { return nil }

func TestLookupEmptyStore(t *testing.T) {
	s := NewStore()

	_, ok := s.Processor(KeyOf[int]())
	assert.False(t, ok)
}

func TestLookupExactMatch(t *testing.T) {
	s := NewStore()
	f := func(stamp) {}
	require.NoError(t, s.RegisterProcessor(f))

	got, ok := s.Processor(KeyOf[stamp]())
	require.True(t, ok)
	sameFunc(t, f, got)
}

func TestLookupAncestorFallback(t *testing.T) {
	s := NewStore()
	f := func(fmt.Stringer) {}

	_, err := s.Bind(Bindings{{Key: KeyOf[fmt.Stringer](), Value: f}})
	require.NoError(t, err)

	// stamp has no exact binding but implements Stringer.
	got, ok := s.Processor(KeyOf[stamp]())
	require.True(t, ok)
	sameFunc(t, f, got)
}

func TestLookupExactBeatsAncestor(t *testing.T) {
	s := NewStore()
	forStringer := func(fmt.Stringer) {}
	forStamp := func(stamp) {}

	_, err := s.Bind(Bindings{
		{Key: KeyOf[fmt.Stringer](), Value: forStringer},
		{Key: KeyOf[stamp](), Value: forStamp},
	})
	require.NoError(t, err)

	got, ok := s.Processor(KeyOf[stamp]())
	require.True(t, ok)
	sameFunc(t, forStamp, got)
}

func TestLookupAncestorTieBreaksByRegistrationOrder(t *testing.T) {
	// stringerCloser implements both io.Closer and fmt.Stringer; the first
	// registered ancestor wins regardless of declaration order.
	forCloser := func(io.Closer) {}
	forStringer := func(fmt.Stringer) {}

	s := NewStore()
	_, err := s.Bind(Bindings{
		{Key: KeyOf[io.Closer](), Value: forCloser},
		{Key: KeyOf[fmt.Stringer](), Value: forStringer},
	})
	require.NoError(t, err)

	got, ok := s.Processor(KeyOf[stringerCloser]())
	require.True(t, ok)
	sameFunc(t, forCloser, got)

	// Reversed registration order flips the winner.
	s2 := NewStore()
	_, err = s2.Bind(Bindings{
		{Key: KeyOf[fmt.Stringer](), Value: forStringer},
		{Key: KeyOf[io.Closer](), Value: forCloser},
	})
	require.NoError(t, err)

	got, ok = s2.Processor(KeyOf[stringerCloser]())
	require.True(t, ok)
	sameFunc(t, forStringer, got)
}

func TestLookupNilKey(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.RegisterProcessor(func(int) {}))

	_, ok := s.Processor(nil)
	assert.False(t, ok)
}

func TestLookupUnhashableKey(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.RegisterProcessor(func(int) {}))

	assert.NotPanics(t, func() {
		_, ok := s.Processor([]string{"not", "hashable"})
		assert.False(t, ok)
	})
}

func TestLookupNonTypeKey(t *testing.T) {
	s := NewStore()

	// Registry keys don't have to be types; a sentinel works and must not
	// break type queries scanning past it.
	f := func(any) {}
	_, err := s.Bind(Bindings{{Key: "sentinel", Value: f}})
	require.NoError(t, err)

	got, ok := s.Processor("sentinel")
	require.True(t, ok)
	sameFunc(t, f, got)

	// A type query skips the non-type key without matching.
	_, ok = s.Processor(KeyOf[int]())
	assert.False(t, ok)
}

func TestLookupNonTypeQuerySkipsScan(t *testing.T) {
	s := NewStore()
	_, err := s.Bind(Bindings{{Key: KeyOf[fmt.Stringer](), Value: func(fmt.Stringer) {}}})
	require.NoError(t, err)

	// A non-type query can only match exactly.
	_, ok := s.Processor("stamp")
	assert.False(t, ok)
}

func TestProcessorForGeneric(t *testing.T) {
	s := NewStore()
	f := func(stamp) {}
	require.NoError(t, s.RegisterProcessor(f))

	got, ok := ProcessorFor[stamp](s)
	require.True(t, ok)
	sameFunc(t, f, got)

	_, ok = ProcessorFor[int](s)
	assert.False(t, ok)
}

func TestProviderForGeneric(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.RegisterProvider(func() stamp { return stamp{label: "x"} }))

	_, ok := ProviderFor[stamp](s)
	assert.True(t, ok)

	_, ok = ProviderFor[int](s)
	assert.False(t, ok)
}
