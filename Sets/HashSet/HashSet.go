package HashSet

import (
	"iter"

	"github.com/g-m-twostay/go-hashtable/Maps/HashTable"
	"github.com/g-m-twostay/go-hashtable/Sets"
)

var _ Sets.ExtendedSet[int] = (*HashSet[int])(nil)

// HashSet is a set backed by a HashTable with empty values. Like the table, it isn't safe for concurrent use.
type HashSet[E comparable] struct {
	t    *HashTable.HashTable[E, struct{}]
	opts []HashTable.Option[E]
}

// New HashSet of type E. opts configure the underlying HashTable and are reused by Filter.
func New[E comparable](opts ...HashTable.Option[E]) (*HashSet[E], error) {
	t, err := HashTable.New[E, struct{}](opts...)
	if err != nil {
		return nil, err
	}
	return &HashSet[E]{t: t, opts: opts}, nil
}

// Size of the set.
func (u *HashSet[E]) Size() uint {
	return uint(u.t.Len())
}

// Put e into the set. Returns true if e wasn't already present.
func (u *HashSet[E]) Put(e E) bool {
	_, existed := u.t.Set(e, struct{}{})
	return !existed
}

// Has e in the set.
func (u *HashSet[E]) Has(e E) bool {
	return u.t.Contains(e)
}

// Remove e from the set. Returns true if e was present.
func (u *HashSet[E]) Remove(e E) bool {
	_, ok := u.t.Delete(e)
	return ok
}

// Take an arbitrary element from the set without removing it. Returns zero value if the set is empty.
func (u *HashSet[E]) Take() (e E) {
	for k := range u.All() {
		return k
	}
	return
}

func (u *HashSet[E]) All() iter.Seq[E] {
	return u.t.Keys()
}

// Range calls f on each element until f returns false. f must not modify the set.
func (u *HashSet[E]) Range(f func(E) bool) {
	for k := range u.All() {
		if !f(k) {
			return
		}
	}
}

func (u *HashSet[E]) Clear() {
	u.t.Clear()
}

func (u *HashSet[E]) PutAll(s Sets.Set[E]) (n uint) {
	s.Range(func(e E) bool {
		if u.Put(e) {
			n++
		}
		return true
	})
	return
}

func (u *HashSet[E]) RemoveAll(s Sets.Set[E]) (n uint) {
	s.Range(func(e E) bool {
		if u.Remove(e) {
			n++
		}
		return true
	})
	return
}

// Eq reports whether both sets hold exactly the same elements.
func (u *HashSet[E]) Eq(s Sets.Set[E]) bool {
	if u.Size() != s.Size() {
		return false
	}
	eq := true
	u.Range(func(e E) bool {
		eq = s.Has(e)
		return eq
	})
	return eq
}

func (u *HashSet[E]) Union(s Sets.Set[E]) {
	u.PutAll(s)
}

// Intersect keeps only the elements also in s.
func (u *HashSet[E]) Intersect(s Sets.Set[E]) {
	var drop []E
	u.Range(func(e E) bool {
		if !s.Has(e) {
			drop = append(drop, e)
		}
		return true
	})
	for _, e := range drop {
		u.Remove(e)
	}
}

func (u *HashSet[E]) Filter(f func(E) bool) Sets.ExtendedSet[E] {
	r, err := New[E](u.opts...)
	if err != nil {
		// u was built from the same options.
		panic(err)
	}
	u.Range(func(e E) bool {
		if f(e) {
			r.Put(e)
		}
		return true
	})
	return r
}
