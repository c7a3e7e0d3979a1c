package ChainMap

import (
	"iter"
	"slices"

	"github.com/g-m-twostay/go-hashtable/Maps"
	"go.uber.org/zap"
)

var _ Maps.Map[string, int] = (*ChainMap[string, int])(nil)

const (
	DefaultCapacity      = 3
	DefaultMaxLoadFactor = 0.75
)

// bucket holds every entry whose hash maps to its index, in insertion order.
type bucket[K any, V any] []Entry[K, V]

// ChainMap resolves collisions by separate chaining. Every time the size reaches the threshold, the bucket array doubles and all entries are redistributed.
type ChainMap[K any, V any] struct {
	buckets         []bucket[K, V]
	size, threshold int
	loadFactor      float64
	hash            Maps.HashFunc[K]
	eq              Maps.EqualFunc[K]
	log             *zap.Logger
}

// New ChainMap from cfg. Capacities below DefaultCapacity are raised to it.
func New[K any, V any](cfg Maps.Config[K]) (*ChainMap[K, V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	u := &ChainMap[K, V]{loadFactor: cfg.MaxLoadFactor, hash: cfg.Hash, eq: cfg.Equal, log: cfg.Log()}
	u.alloc(max(cfg.Capacity, DefaultCapacity))
	return u, nil
}

func (u *ChainMap[K, V]) alloc(n int) {
	u.buckets = make([]bucket[K, V], n)
	u.threshold = Maps.Threshold(n, u.loadFactor, 1, n)
}

// seek returns the bucket index for hash and the key's position in it, or -1.
func (u *ChainMap[K, V]) seek(hash int64, key K) (int, int) {
	b := Maps.Index(hash, len(u.buckets))
	for i := range u.buckets[b] {
		if u.buckets[b][i].matches(hash, key, u.eq) {
			return b, i
		}
	}
	return b, -1
}

func (u *ChainMap[K, V]) Get(key K) (v V, ok bool) {
	if b, i := u.seek(u.hash(key), key); i >= 0 {
		return u.buckets[b][i].val, true
	}
	return
}

func (u *ChainMap[K, V]) Contains(key K) bool {
	_, i := u.seek(u.hash(key), key)
	return i >= 0
}

func (u *ChainMap[K, V]) Set(key K, val V) (old V, ok bool) {
	hash := u.hash(key)
	b, i := u.seek(hash, key)
	if i >= 0 {
		e := &u.buckets[b][i]
		old, e.val = e.val, val
		return old, true
	}
	u.buckets[b] = append(u.buckets[b], Entry[K, V]{key: key, val: val, hash: hash})
	u.size++
	if u.size >= u.threshold {
		u.grow()
	}
	return
}

func (u *ChainMap[K, V]) Delete(key K) (old V, ok bool) {
	b, i := u.seek(u.hash(key), key)
	if i < 0 {
		return
	}
	old = u.buckets[b][i].val
	u.buckets[b] = slices.Delete(u.buckets[b], i, i+1)
	u.size--
	return old, true
}

// grow doubles the bucket array and rebuilds every bucket using the cached hashes.
func (u *ChainMap[K, V]) grow() {
	old := u.buckets
	u.alloc(len(old) << 1)
	for _, b := range old {
		for _, e := range b {
			i := Maps.Index(e.hash, len(u.buckets))
			u.buckets[i] = append(u.buckets[i], e)
		}
	}
	u.log.Debug("chain map resized",
		zap.Int("from", len(old)),
		zap.Int("to", len(u.buckets)),
		zap.Int("size", u.size),
		zap.Int("threshold", u.threshold))
}

// Clear removes all entries. The bucket array keeps its length.
func (u *ChainMap[K, V]) Clear() {
	for i := range u.buckets {
		clear(u.buckets[i])
		u.buckets[i] = u.buckets[i][:0]
	}
	u.log.Debug("chain map cleared", zap.Int("size", u.size), zap.Int("capacity", len(u.buckets)))
	u.size = 0
}

func (u *ChainMap[K, V]) Len() int {
	return u.size
}

// Cap is the number of buckets.
func (u *ChainMap[K, V]) Cap() int {
	return len(u.buckets)
}

func (u *ChainMap[K, V]) Threshold() int {
	return u.threshold
}

// All walks the buckets in index order and each bucket in insertion order.
func (u *ChainMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, b := range u.buckets {
			for _, e := range b {
				if !yield(e.key, e.val) {
					return
				}
			}
		}
	}
}

// Entries yields a copy of every entry, hash included.
func (u *ChainMap[K, V]) Entries() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		for _, b := range u.buckets {
			for _, e := range b {
				if !yield(e) {
					return
				}
			}
		}
	}
}
