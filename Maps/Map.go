package Maps

import "iter"

// Hashable is implemented by keys that know how to hash and compare themselves. Use HashableHash and HashableEqual to build the functions a table needs from it.
type Hashable interface {
	Hash() int64
	Equal(other Hashable) bool
}

// HashFunc must be deterministic and consistent with the EqualFunc it is paired with: keys that are equal must hash equally.
type HashFunc[K any] func(K) int64

// EqualFunc reports whether two keys are the same key.
type EqualFunc[K any] func(a, b K) bool

// Map is the capability set shared by every collision-resolution strategy. Implementations are not safe for concurrent use.
type Map[K any, V any] interface {
	// Get returns the value mapped to the key and whether it was present.
	Get(K) (V, bool)
	// Set maps the key to the value, returning the previous value and true if the key was already present.
	Set(K, V) (V, bool)
	// Delete unmaps the key, returning the removed value and true if it was present.
	Delete(K) (V, bool)
	Contains(K) bool
	Len() int
	Cap() int
	// Threshold is the count at which the next insertion grows the storage.
	Threshold() int
	Clear()
	// All yields every live pair once, in no particular order. Mutating the map while ranging over All is not supported.
	All() iter.Seq2[K, V]
}
