package ChainMap

import "github.com/g-m-twostay/go-hashtable/Maps"

// Entry is a key/value pair that caches the hash of its key. The hash is computed once, when the entry is created, and never again.
type Entry[K any, V any] struct {
	key  K
	val  V
	hash int64
}

func (e *Entry[K, V]) Key() K {
	return e.key
}

func (e *Entry[K, V]) Value() V {
	return e.val
}

func (e *Entry[K, V]) Hash() int64 {
	return e.hash
}

// matches compares hashes first and only calls eq when they agree.
func (e *Entry[K, V]) matches(hash int64, key K, eq Maps.EqualFunc[K]) bool {
	return e.hash == hash && eq(e.key, key)
}

// Equal reports whether both entries hold the same key. Values aren't compared.
func (e *Entry[K, V]) Equal(o *Entry[K, V], eq Maps.EqualFunc[K]) bool {
	return e.matches(o.hash, o.key, eq)
}
