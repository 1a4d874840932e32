package typedispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGetDestroyStore(t *testing.T) {
	s, err := CreateStore("stores-test")
	require.NoError(t, err)
	assert.Equal(t, "stores-test", s.Name())

	got, err := GetStore("stores-test")
	require.NoError(t, err)
	assert.Same(t, s, got)

	require.NoError(t, DestroyStore("stores-test"))

	_, err = GetStore("stores-test")
	assert.ErrorIs(t, err, ErrStoreNotFound)

	err = DestroyStore("stores-test")
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestCreateStoreDuplicate(t *testing.T) {
	_, err := CreateStore("stores-dup")
	require.NoError(t, err)
	t.Cleanup(func() { _ = DestroyStore("stores-dup") })

	_, err = CreateStore("stores-dup")
	assert.ErrorIs(t, err, ErrStoreExists)
}

func TestGlobalStoreIsReserved(t *testing.T) {
	_, err := CreateStore(GlobalStoreName)
	assert.ErrorIs(t, err, ErrReservedStore)

	err = DestroyStore(GlobalStoreName)
	assert.ErrorIs(t, err, ErrReservedStore)
}

func TestGetStoreGlobalAliases(t *testing.T) {
	byName, err := GetStore(GlobalStoreName)
	require.NoError(t, err)
	assert.Same(t, GlobalStore(), byName)

	byEmpty, err := GetStore("")
	require.NoError(t, err)
	assert.Same(t, GlobalStore(), byEmpty)
}

func TestNamedStoresAreIsolated(t *testing.T) {
	a, err := CreateStore("stores-a")
	require.NoError(t, err)
	t.Cleanup(func() { _ = DestroyStore("stores-a") })

	b, err := CreateStore("stores-b")
	require.NoError(t, err)
	t.Cleanup(func() { _ = DestroyStore("stores-b") })

	type marker struct{}
	require.NoError(t, a.RegisterProcessor(func(marker) {}))

	_, ok := a.Processor(KeyOf[marker]())
	assert.True(t, ok)
	_, ok = b.Processor(KeyOf[marker]())
	assert.False(t, ok)
	_, ok = GlobalStore().Processor(KeyOf[marker]())
	assert.False(t, ok)
}
