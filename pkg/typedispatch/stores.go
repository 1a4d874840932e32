package typedispatch

import "fmt"

// GlobalStoreName is the reserved name of the process-wide default store.
const GlobalStoreName = "global"

var (
	globalStore = newStore(GlobalStoreName)

	// namedStores is the process-wide store table. Like the stores
	// themselves it is unsynchronized; named stores are expected to be
	// created during initialization.
	namedStores = map[string]*Store{GlobalStoreName: globalStore}
)

// GlobalStore returns the process-wide default store. It exists for the
// process lifetime and starts empty; there is no teardown.
func GlobalStore() *Store {
	return globalStore
}

// storeOrGlobal maps a nil store to the global store, for the generic
// package-level helpers.
func storeOrGlobal(s *Store) *Store {
	if s == nil {
		return globalStore
	}
	return s
}

// CreateStore creates and registers a named store. The name "global" is
// reserved, and creating a name twice fails with ErrStoreExists.
func CreateStore(name string, opts ...StoreOption) (*Store, error) {
	if name == GlobalStoreName {
		return nil, fmt.Errorf("create store: %q: %w", name, ErrReservedStore)
	}
	if _, exists := namedStores[name]; exists {
		return nil, fmt.Errorf("create store: %q: %w", name, ErrStoreExists)
	}
	s := newStore(name, opts...)
	namedStores[name] = s
	return s, nil
}

// GetStore returns the named store. The empty string and "global" both
// return the global store; an unknown name fails with ErrStoreNotFound.
func GetStore(name string) (*Store, error) {
	if name == "" {
		return globalStore, nil
	}
	s, ok := namedStores[name]
	if !ok {
		return nil, fmt.Errorf("get store: %q: %w", name, ErrStoreNotFound)
	}
	return s, nil
}

// DestroyStore removes a named store from the table. The global store
// cannot be destroyed; an unknown name fails with ErrStoreNotFound.
func DestroyStore(name string) error {
	if name == GlobalStoreName {
		return fmt.Errorf("destroy store: %w: the global store cannot be destroyed", ErrReservedStore)
	}
	if _, ok := namedStores[name]; !ok {
		return fmt.Errorf("destroy store: %q: %w", name, ErrStoreNotFound)
	}
	delete(namedStores, name)
	return nil
}
