package typedispatch

import "reflect"

// typemap is the ordered associative store backing one side of a Store
// (processors or providers). Go maps do not preserve insertion order, but
// ancestor lookup ties are broken by registration order, so keys are tracked
// in a separate slice. Overwriting an existing key keeps its original
// position.
//
// Keys are usually reflect.Type values, but any comparable value is accepted.
// Non-comparable values would panic inside map operations, so every access
// goes through a comparability guard first.
type typemap struct {
	keys    []any
	entries map[any]any
}

func newTypemap() *typemap {
	return &typemap{entries: make(map[any]any)}
}

// hashable reports whether key can be used in a map operation without
// panicking. A nil key is not hashable.
func hashable(key any) bool {
	if key == nil {
		return false
	}
	return reflect.TypeOf(key).Comparable()
}

// get returns the value bound to key, if any. Nil and non-comparable keys
// are treated as absent rather than causing a panic.
func (m *typemap) get(key any) (any, bool) {
	if !hashable(key) {
		return nil, false
	}
	v, ok := m.entries[key]
	return v, ok
}

// contains reports whether key has a binding.
func (m *typemap) contains(key any) bool {
	_, ok := m.get(key)
	return ok
}

// put installs value under key, appending the key to the order on first
// insertion. Overwrites keep the key's existing position.
func (m *typemap) put(key, value any) {
	if _, exists := m.entries[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = value
}

// remove deletes key and returns its prior value.
func (m *typemap) remove(key any) (any, bool) {
	v, ok := m.get(key)
	if !ok {
		return nil, false
	}
	delete(m.entries, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return v, true
}

// forEach visits entries in insertion order. Returning false stops the walk.
func (m *typemap) forEach(fn func(key, value any) bool) {
	for _, k := range m.keys {
		if !fn(k, m.entries[k]) {
			return
		}
	}
}

// clear removes every entry.
func (m *typemap) clear() {
	m.keys = nil
	m.entries = make(map[any]any)
}

// size returns the number of entries.
func (m *typemap) size() int {
	return len(m.entries)
}
