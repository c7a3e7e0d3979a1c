package ProbeMap

import (
	"iter"

	"github.com/g-m-twostay/go-hashtable/Maps"
	"go.uber.org/zap"
)

var _ Maps.Map[string, int] = (*ProbeMap[string, int])(nil)

const (
	DefaultCapacity      = 8
	DefaultMaxLoadFactor = 0.45
)

// ProbeMap resolves collisions by open addressing with triangular probing. Deleted slots become tombstones, which lookups move entries back into and resizes discard.
//
// used counts occupied slots plus tombstones and is what the threshold is checked against, since both lengthen probe sequences.
type ProbeMap[K any, V any] struct {
	tags                  []state
	keys                  []K
	vals                  []V
	size, used, threshold int
	loadFactor            float64
	hash                  Maps.HashFunc[K]
	eq                    Maps.EqualFunc[K]
	log                   *zap.Logger
}

// New ProbeMap from cfg. The capacity is rounded up to a power of two no smaller than DefaultCapacity.
func New[K any, V any](cfg Maps.Config[K]) (*ProbeMap[K, V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	u := &ProbeMap[K, V]{loadFactor: cfg.MaxLoadFactor, hash: cfg.Hash, eq: cfg.Equal, log: cfg.Log()}
	u.alloc(Maps.NextPow2(max(cfg.Capacity, DefaultCapacity)))
	return u, nil
}

// alloc replaces the storage with n empty slots. The threshold stays below n so that an empty slot always exists and every probe terminates.
func (u *ProbeMap[K, V]) alloc(n int) {
	u.tags, u.keys, u.vals = make([]state, n), make([]K, n), make([]V, n)
	u.threshold = Maps.Threshold(n, u.loadFactor, 1, n-1)
}

// probe returns the slot visited at step x of the sequence starting at home.
func (u *ProbeMap[K, V]) probe(home, x int) int {
	return (home + triangular(x)) & (len(u.tags) - 1)
}

func (u *ProbeMap[K, V]) bury(i int) {
	var k K
	var v V
	u.tags[i], u.keys[i], u.vals[i] = tombstone, k, v
}

// move relocates the entry at from into the tombstone at to, leaving a tombstone behind.
func (u *ProbeMap[K, V]) move(from, to int) {
	u.tags[to], u.keys[to], u.vals[to] = occupied, u.keys[from], u.vals[from]
	u.bury(from)
}

// lookup returns the slot holding key, or -1. When the probe passed a tombstone before reaching the key, the entry is first moved into the earliest such tombstone.
func (u *ProbeMap[K, V]) lookup(key K) int {
	j := -1
	for x, home := 0, Maps.Index(u.hash(key), len(u.tags)); ; x++ {
		i := u.probe(home, x)
		switch u.tags[i] {
		case empty:
			return -1
		case tombstone:
			if j < 0 {
				j = i
			}
		case occupied:
			if u.eq(u.keys[i], key) {
				if j < 0 {
					return i
				}
				u.move(i, j)
				return j
			}
		}
	}
}

func (u *ProbeMap[K, V]) Get(key K) (v V, ok bool) {
	if i := u.lookup(key); i >= 0 {
		return u.vals[i], true
	}
	return
}

// Contains may compact the key's probe path, see lookup.
func (u *ProbeMap[K, V]) Contains(key K) bool {
	return u.lookup(key) >= 0
}

// Set grows the storage at most once, before probing. used never exceeds half the slots after a grow, so an empty slot remains even when the threshold is clamped.
func (u *ProbeMap[K, V]) Set(key K, val V) (old V, ok bool) {
	if u.used >= u.threshold {
		u.grow()
	}
	j := -1
	for x, home := 0, Maps.Index(u.hash(key), len(u.tags)); ; x++ {
		i := u.probe(home, x)
		switch u.tags[i] {
		case empty:
			if j < 0 {
				j = i
				u.used++
			}
			u.tags[j], u.keys[j], u.vals[j] = occupied, key, val
			u.size++
			return
		case tombstone:
			if j < 0 {
				j = i
			}
		case occupied:
			if u.eq(u.keys[i], key) {
				old = u.vals[i]
				if j < 0 {
					u.vals[i] = val
				} else {
					u.tags[j], u.keys[j], u.vals[j] = occupied, u.keys[i], val
					u.bury(i)
				}
				return old, true
			}
		}
	}
}

// Delete leaves a tombstone in the key's slot. used isn't decremented; only a resize reclaims the slot.
func (u *ProbeMap[K, V]) Delete(key K) (old V, ok bool) {
	for x, home := 0, Maps.Index(u.hash(key), len(u.tags)); ; x++ {
		i := u.probe(home, x)
		switch u.tags[i] {
		case empty:
			return
		case occupied:
			if u.eq(u.keys[i], key) {
				old = u.vals[i]
				u.bury(i)
				u.size--
				return old, true
			}
		}
	}
}

// place puts a key known to be absent into storage that has no tombstones.
func (u *ProbeMap[K, V]) place(key K, val V) {
	for x, home := 0, Maps.Index(u.hash(key), len(u.tags)); ; x++ {
		i := u.probe(home, x)
		if u.tags[i] == empty {
			u.tags[i], u.keys[i], u.vals[i] = occupied, key, val
			u.used++
			u.size++
			return
		}
	}
}

// grow doubles the storage and reinserts every occupied slot. Tombstones are dropped here and nowhere else.
func (u *ProbeMap[K, V]) grow() {
	tags, keys, vals := u.tags, u.keys, u.vals
	buried := u.used - u.size
	u.alloc(len(tags) << 1)
	u.size, u.used = 0, 0
	for i, t := range tags {
		if t == occupied {
			u.place(keys[i], vals[i])
		}
	}
	u.log.Debug("probe map resized",
		zap.Int("from", len(tags)),
		zap.Int("to", len(u.tags)),
		zap.Int("size", u.size),
		zap.Int("tombstones", buried),
		zap.Int("threshold", u.threshold))
}

// Clear empties every slot, tombstones included. The capacity is kept.
func (u *ProbeMap[K, V]) Clear() {
	u.log.Debug("probe map cleared", zap.Int("size", u.size), zap.Int("used", u.used), zap.Int("capacity", len(u.tags)))
	clear(u.tags)
	clear(u.keys)
	clear(u.vals)
	u.size, u.used = 0, 0
}

func (u *ProbeMap[K, V]) Len() int {
	return u.size
}

// Cap is the number of slots.
func (u *ProbeMap[K, V]) Cap() int {
	return len(u.tags)
}

func (u *ProbeMap[K, V]) Threshold() int {
	return u.threshold
}

// Used is the number of occupied slots plus tombstones.
func (u *ProbeMap[K, V]) Used() int {
	return u.used
}

// All yields occupied slots in index order. Get and Contains may move entries, so they must not be called while ranging.
func (u *ProbeMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, t := range u.tags {
			if t == occupied && !yield(u.keys[i], u.vals[i]) {
				return
			}
		}
	}
}
