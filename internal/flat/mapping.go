package flat

import (
	"iter"
	"strings"

	"yamlsimple/internal/keypath"
)

// Mapping is an insertion-ordered key-path to value mapping.
type Mapping struct {
	keys   []string
	values map[string]string
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]string)}
}

// Add appends key with value. Adding an existing key fails with a
// DuplicateKeyError and leaves the mapping unchanged.
func (m *Mapping) Add(key, value string) error {
	if _, ok := m.values[key]; ok {
		return &DuplicateKeyError{Key: key}
	}

	m.keys = append(m.keys, key)
	m.values[key] = value

	return nil
}

// Get returns the value bound to key.
func (m *Mapping) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	return len(m.keys)
}

// Keys returns the key-paths in document order.
func (m *Mapping) Keys() []string {
	return append([]string(nil), m.keys...)
}

// All iterates entries in document order.
func (m *Mapping) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Leaves iterates entries that have no nested entries below them, in
// document order. Parent lines such as "variables:" are recorded with an
// empty value by Parse; Leaves hides them.
func (m *Mapping) Leaves() iter.Seq2[string, string] {
	parents := make(map[string]struct{})

	for _, k := range m.keys {
		for i := range len(k) {
			if k[i] == keypath.Separator[0] {
				parents[k[:i]] = struct{}{}
			}
		}
	}

	return func(yield func(string, string) bool) {
		for _, k := range m.keys {
			if _, ok := parents[k]; ok {
				continue
			}

			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// ToMap copies the entries into a plain map.
func (m *Mapping) ToMap() map[string]string {
	out := make(map[string]string, len(m.keys))
	for k, v := range m.values {
		out[k] = v
	}

	return out
}

// String renders the mapping as "key=value" lines in document order.
func (m *Mapping) String() string {
	var sb strings.Builder

	for k, v := range m.All() {
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(v)
		sb.WriteByte('\n')
	}

	return sb.String()
}
