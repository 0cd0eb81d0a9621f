package keys

import (
	"iter"

	"github.com/erraggy/oaswire/oaserrors"
)

// Map is an insertion-ordered collection of unique keys bound to a single
// Pattern. Iteration order is the order in which keys were first set, which
// keeps encoded output deterministic.
//
// Concurrency: a Map is built once and then only read. Reads may happen from
// many goroutines; writes must not overlap with anything.
type Map[V any] struct {
	pattern Pattern
	keys    []Key
	values  []V
	index   map[string]int
}

// NewMap creates an empty Map whose keys must match pattern.
func NewMap[V any](pattern Pattern) *Map[V] {
	return &Map[V]{
		pattern: pattern,
		index:   make(map[string]int),
	}
}

// Pattern returns the grammar every key in m matches.
func (m *Map[V]) Pattern() Pattern { return m.pattern }

// Len returns the number of entries. A nil Map has length zero.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Get returns the value stored under raw.
// A raw string that is not a valid key is simply absent; no error is reported.
func (m *Map[V]) Get(raw string) (V, bool) {
	var zero V
	if m == nil {
		return zero, false
	}
	k, err := New(raw, m.pattern)
	if err != nil {
		return zero, false
	}
	i, ok := m.index[k.raw]
	if !ok {
		return zero, false
	}
	return m.values[i], true
}

// Set validates raw and stores v under it. An existing key keeps its
// position and has its value replaced.
//
// An invalid key returns an *oaserrors.InvalidKeyError and leaves m unchanged.
func (m *Map[V]) Set(raw string, v V) error {
	k, err := New(raw, m.pattern)
	if err != nil {
		return err
	}
	m.put(k, v)
	return nil
}

// SetKey stores v under a key that was validated earlier.
// The key must have been built for the same pattern as m.
func (m *Map[V]) SetKey(k Key, v V) error {
	if k.IsZero() {
		return &oaserrors.InvalidKeyError{
			Key:     k.raw,
			Pattern: m.pattern.String(),
			Message: "zero key",
		}
	}
	if k.pattern != m.pattern {
		return &oaserrors.InvalidKeyError{
			Key:     k.raw,
			Pattern: m.pattern.String(),
			Message: "key was validated as " + k.pattern.String(),
		}
	}
	m.put(k, v)
	return nil
}

func (m *Map[V]) put(k Key, v V) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[k.raw]; ok {
		m.values[i] = v
		return
	}
	m.index[k.raw] = len(m.keys)
	m.keys = append(m.keys, k)
	m.values = append(m.values, v)
}

// Delete removes raw and reports whether it was present.
// The relative order of the remaining entries is preserved.
func (m *Map[V]) Delete(raw string) bool {
	i, ok := m.index[raw]
	if !ok {
		return false
	}
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.values = append(m.values[:i], m.values[i+1:]...)
	delete(m.index, raw)
	for j := i; j < len(m.keys); j++ {
		m.index[m.keys[j].raw] = j
	}
	return true
}

// Keys returns a copy of the keys in insertion order.
func (m *Map[V]) Keys() []Key {
	if m == nil {
		return nil
	}
	out := make([]Key, len(m.keys))
	copy(out, m.keys)
	return out
}

// All iterates over the entries in insertion order.
func (m *Map[V]) All() iter.Seq2[Key, V] {
	return func(yield func(Key, V) bool) {
		if m == nil {
			return
		}
		for i, k := range m.keys {
			if !yield(k, m.values[i]) {
				return
			}
		}
	}
}
