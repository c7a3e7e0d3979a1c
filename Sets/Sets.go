package Sets

import "iter"

// Set is a collection of distinct elements. Implementations backed by a HashTable inherit its rules: no concurrent use, and no mutation while iterating.
type Set[E any] interface {
	// Put returns true if the element was added.
	Put(E) bool
	Has(E) bool
	// Remove returns true if the element was present.
	Remove(E) bool
	Size() uint
	// Take returns an arbitrary element, or the zero value of an empty set.
	Take() E
	Range(func(E) bool)
	// All yields each element once, in no particular order. It can be ranged over repeatedly.
	All() iter.Seq[E]
}

// ExtendedSet adds operations that take another Set. Unless noted, they modify the receiver.
type ExtendedSet[E any] interface {
	Set[E]
	// PutAll returns the number of elements that were added.
	PutAll(Set[E]) uint
	// RemoveAll returns the number of elements that were removed.
	RemoveAll(Set[E]) uint
	Eq(Set[E]) bool
	Union(Set[E])
	Intersect(Set[E])
	// Filter returns a new set of the elements f accepts; the receiver is unchanged.
	Filter(func(E) bool) ExtendedSet[E]
	// Clear removes every element and keeps the allocated storage.
	Clear()
}

// Collect returns the elements of s in a new slice.
func Collect[E any](s Set[E]) []E {
	r := make([]E, 0, s.Size())
	for e := range s.All() {
		r = append(r, e)
	}
	return r
}
