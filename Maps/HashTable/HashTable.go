package HashTable

import (
	"iter"

	"github.com/cockroachdb/errors"
	Go_Utils "github.com/g-m-twostay/go-hashtable"
	"github.com/g-m-twostay/go-hashtable/Maps"
	"github.com/g-m-twostay/go-hashtable/Maps/ChainMap"
	"github.com/g-m-twostay/go-hashtable/Maps/ProbeMap"
	"go.uber.org/zap"
)

// HashTable maps keys to values through the strategy chosen at construction. It holds no data of its own.
//
// A HashTable is not safe for concurrent use, and under OpenAddressing even Get and Contains write to the table. Callers sharing one must serialize every call.
type HashTable[K any, V any] struct {
	m        Maps.Map[K, V]
	strategy Strategy
}

// Stats is a snapshot of a table's bookkeeping.
type Stats struct {
	Strategy  Strategy
	Capacity  int
	Len       int
	Threshold int
	// Used counts slots that lengthen probe sequences: live entries plus, under OpenAddressing, tombstones.
	Used int
}

// New HashTable for comparable keys. Keys are hashed with a randomly seeded Go_Utils.Hasher and compared with == unless WithHasher or WithEqual say otherwise.
func New[K comparable, V any](opts ...Option[K]) (*HashTable[K, V], error) {
	o := defaultOptions[K]()
	o.hash, o.equal = Maps.ComparableHash[K](Go_Utils.NewHasher()), Maps.ComparableEqual[K]
	for _, opt := range opts {
		opt(o)
	}
	return build[K, V](o)
}

// NewFunc HashTable for keys of any type, hashed and compared by the given functions.
func NewFunc[K any, V any](hash Maps.HashFunc[K], equal Maps.EqualFunc[K], opts ...Option[K]) (*HashTable[K, V], error) {
	o := defaultOptions[K]()
	o.hash, o.equal = hash, equal
	for _, opt := range opts {
		opt(o)
	}
	return build[K, V](o)
}

// Collect builds a HashTable from seq. Later pairs overwrite earlier ones with the same key.
func Collect[K comparable, V any](seq iter.Seq2[K, V], opts ...Option[K]) (*HashTable[K, V], error) {
	t, err := New[K, V](opts...)
	if err != nil {
		return nil, err
	}
	t.Update(seq)
	return t, nil
}

// FromMap copies m into a new HashTable sized for len(m) entries.
func FromMap[K comparable, V any](m map[K]V, opts ...Option[K]) (*HashTable[K, V], error) {
	opts = append([]Option[K]{WithCapacity[K](max(len(m), 1))}, opts...)
	return Collect(func(yield func(K, V) bool) {
		for k, v := range m {
			if !yield(k, v) {
				return
			}
		}
	}, opts...)
}

func build[K any, V any](o *options[K]) (*HashTable[K, V], error) {
	cfg := Maps.Config[K]{Capacity: o.capacity, MaxLoadFactor: o.loadFactor, Hash: o.hash, Equal: o.equal, Logger: o.logger}
	t := &HashTable[K, V]{strategy: o.strategy}
	switch o.strategy {
	case SeparateChaining:
		if !o.capSet {
			cfg.Capacity = ChainMap.DefaultCapacity
		}
		if !o.lfSet {
			cfg.MaxLoadFactor = ChainMap.DefaultMaxLoadFactor
		}
		m, err := ChainMap.New[K, V](cfg)
		if err != nil {
			return nil, err
		}
		t.m = m
	case OpenAddressing:
		if !o.capSet {
			cfg.Capacity = ProbeMap.DefaultCapacity
		}
		if !o.lfSet {
			cfg.MaxLoadFactor = ProbeMap.DefaultMaxLoadFactor
		}
		m, err := ProbeMap.New[K, V](cfg)
		if err != nil {
			return nil, err
		}
		t.m = m
	default:
		return nil, errors.Wrapf(Maps.ErrInvalidConfiguration, "unknown strategy %v", o.strategy)
	}
	o.logger.Debug("hash table created",
		zap.Stringer("strategy", o.strategy),
		zap.Int("capacity", t.m.Cap()),
		zap.Float64("maxLoadFactor", cfg.MaxLoadFactor),
		zap.Int("threshold", t.m.Threshold()))
	return t, nil
}

// Get returns the value mapped to key, or an error wrapping Maps.ErrKeyNotFound.
func (u *HashTable[K, V]) Get(key K) (V, error) {
	v, ok := u.m.Get(key)
	if !ok {
		return v, Maps.KeyNotFound(key)
	}
	return v, nil
}

// Lookup is Get without the error.
func (u *HashTable[K, V]) Lookup(key K) (V, bool) {
	return u.m.Get(key)
}

// GetOr returns the value mapped to key, or def.
func (u *HashTable[K, V]) GetOr(key K, def V) V {
	if v, ok := u.m.Get(key); ok {
		return v
	}
	return def
}

// Set maps key to val. It returns the previous value and true if key was present.
func (u *HashTable[K, V]) Set(key K, val V) (V, bool) {
	return u.m.Set(key, val)
}

// SetDefault maps key to def unless key is present, and returns the value now mapped to key.
func (u *HashTable[K, V]) SetDefault(key K, def V) V {
	if v, ok := u.m.Get(key); ok {
		return v
	}
	u.m.Set(key, def)
	return def
}

// Delete unmaps key. It returns the removed value and true if key was present; deleting an absent key does nothing.
func (u *HashTable[K, V]) Delete(key K) (V, bool) {
	return u.m.Delete(key)
}

// Pop is Delete for keys that must be present: absence is an error wrapping Maps.ErrKeyNotFound.
func (u *HashTable[K, V]) Pop(key K) (V, error) {
	v, ok := u.m.Delete(key)
	if !ok {
		return v, Maps.KeyNotFound(key)
	}
	return v, nil
}

func (u *HashTable[K, V]) Contains(key K) bool {
	return u.m.Contains(key)
}

// Update sets every pair from seq, in order.
func (u *HashTable[K, V]) Update(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		u.m.Set(k, v)
	}
}

func (u *HashTable[K, V]) Len() int {
	return u.m.Len()
}

func (u *HashTable[K, V]) Cap() int {
	return u.m.Cap()
}

// Clear removes every mapping and keeps the current capacity.
func (u *HashTable[K, V]) Clear() {
	u.m.Clear()
}

func (u *HashTable[K, V]) Strategy() Strategy {
	return u.strategy
}

func (u *HashTable[K, V]) Stats() Stats {
	s := Stats{Strategy: u.strategy, Capacity: u.m.Cap(), Len: u.m.Len(), Threshold: u.m.Threshold(), Used: u.m.Len()}
	if p, ok := u.m.(interface{ Used() int }); ok {
		s.Used = p.Used()
	}
	return s
}

// All yields every pair once. The order is unspecified and may change after any Set or Delete. The table must not be used while ranging.
func (u *HashTable[K, V]) All() iter.Seq2[K, V] {
	return u.m.All()
}

func (u *HashTable[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range u.m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (u *HashTable[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range u.m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// GetMaybe is Get for a key that may be None, which is rejected with Maps.ErrInvalidKey.
func (u *HashTable[K, V]) GetMaybe(key Maps.Maybe[K]) (v V, err error) {
	k, err := key.Key()
	if err != nil {
		return v, errors.Wrap(err, "get")
	}
	return u.Get(k)
}

func (u *HashTable[K, V]) SetMaybe(key Maps.Maybe[K], val V) (old V, ok bool, err error) {
	k, err := key.Key()
	if err != nil {
		return old, false, errors.Wrap(err, "set")
	}
	old, ok = u.m.Set(k, val)
	return old, ok, nil
}

func (u *HashTable[K, V]) DeleteMaybe(key Maps.Maybe[K]) (old V, ok bool, err error) {
	k, err := key.Key()
	if err != nil {
		return old, false, errors.Wrap(err, "delete")
	}
	old, ok = u.m.Delete(k)
	return old, ok, nil
}

func (u *HashTable[K, V]) ContainsMaybe(key Maps.Maybe[K]) (bool, error) {
	k, err := key.Key()
	if err != nil {
		return false, errors.Wrap(err, "contains")
	}
	return u.m.Contains(k), nil
}
