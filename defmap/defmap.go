// Package defmap provides a small map wrapper whose lookups return a default
// value rather than failing when a key is absent. Header and parameter names
// are frequently missing from real-world messages, so callers want
// empty-string semantics at every call site instead of ok-checks.
//
// The map remembers the order in which keys were first inserted, and it may be
// constructed with a key normalizer to get case-insensitive lookups, which is
// what every header-name and parameter-name map in this module uses.
package defmap

import "strings"

// Map is an insertion-ordered mapping from K to V whose Get never fails. A
// zero Map is not usable; construct one with New or NewFolded.
type Map[K comparable, V any] struct {
	normalize func(K) K
	keys      []K
	values    map[K]V
}

// New constructs an empty Map. The normalize function, if non-nil, is applied
// to every key on the way in and on lookup, making two keys equal whenever
// they normalize to the same value.
func New[K comparable, V any](normalize func(K) K) *Map[K, V] {
	return &Map[K, V]{
		normalize: normalize,
		keys:      make([]K, 0, 10),
		values:    make(map[K]V, 10),
	}
}

// NewFolded constructs an empty string-keyed Map with case-insensitive keys.
func NewFolded[V any]() *Map[string, V] {
	return New[string, V](strings.ToLower)
}

func (m *Map[K, V]) key(k K) K {
	if m.normalize != nil {
		return m.normalize(k)
	}
	return k
}

// Get returns the value stored for k, or the zero value of V if k is not
// present. Absence is not an error.
func (m *Map[K, V]) Get(k K) V {
	return m.values[m.key(k)]
}

// GetOr returns the value stored for k, or def if k is not present.
func (m *Map[K, V]) GetOr(k K, def V) V {
	if v, ok := m.values[m.key(k)]; ok {
		return v
	}
	return def
}

// Has reports whether k is present.
func (m *Map[K, V]) Has(k K) bool {
	_, ok := m.values[m.key(k)]
	return ok
}

// Set inserts or overwrites the value for k. The first insertion of a key
// fixes its position in Keys; overwriting does not move it.
func (m *Map[K, V]) Set(k K, v V) {
	n := m.key(k)
	if _, ok := m.values[n]; !ok {
		m.keys = append(m.keys, n)
	}
	m.values[n] = v
}

// Len returns the number of keys stored.
func (m *Map[K, V]) Len() int {
	return len(m.values)
}

// Keys returns the normalized keys in first-insertion order.
func (m *Map[K, V]) Keys() []K {
	ks := make([]K, len(m.keys))
	copy(ks, m.keys)
	return ks
}
