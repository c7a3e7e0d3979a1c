package Go_Utils

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Hasher carries the seeds used by the hash functions below. Two Hashers made by NewHasher almost certainly produce different hashes for the same input; copies of one Hasher always agree.
// The receivers are thread-safe, but the inputs are read without synchronization.
type Hasher struct {
	seed maphash.Seed
	salt uint64
}

// NewHasher returns a Hasher with random seeds.
func NewHasher() Hasher {
	seed := maphash.MakeSeed()
	return Hasher{seed: seed, salt: maphash.Comparable(seed, uint64(0x9e3779b97f4a7c15))}
}

// HashString hashes v with xxhash.
func (u Hasher) HashString(v string) uint64 {
	d := xxhash.NewWithSeed(u.salt)
	_, _ = d.WriteString(v)
	return d.Sum64()
}

// HashBytes hashes the given byte slice with xxhash. A nil slice and an empty slice hash the same.
func (u Hasher) HashBytes(b []byte) uint64 {
	d := xxhash.NewWithSeed(u.salt)
	_, _ = d.Write(b)
	return d.Sum64()
}

// HashComparable hashes any comparable value. Values that compare equal hash equally, except floating point NaNs, which never compare equal to anything.
func HashComparable[T comparable](u Hasher, v T) uint64 {
	return maphash.Comparable(u.seed, v)
}

// HashInt hashes v. Integers of different types but the same numeric value hash the same.
func HashInt[I constraints.Integer](u Hasher, v I) uint64 {
	return maphash.Comparable(u.seed, uint64(v))
}
