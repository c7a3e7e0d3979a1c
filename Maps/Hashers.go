package Maps

import (
	"bytes"

	Go_Utils "github.com/g-m-twostay/go-hashtable"
	"golang.org/x/exp/constraints"
)

// StringHash hashes strings with h.
func StringHash(h Go_Utils.Hasher) HashFunc[string] {
	return func(s string) int64 {
		return int64(h.HashString(s))
	}
}

// BytesHash hashes byte slices by content with h. Pair it with BytesEqual.
func BytesHash(h Go_Utils.Hasher) HashFunc[[]byte] {
	return func(b []byte) int64 {
		return int64(h.HashBytes(b))
	}
}

func BytesEqual(a, b []byte) bool {
	return bytes.Equal(a, b)
}

func IntHash[I constraints.Integer](h Go_Utils.Hasher) HashFunc[I] {
	return func(v I) int64 {
		return int64(Go_Utils.HashInt(h, v))
	}
}

// ComparableHash hashes any comparable key with h. Pair it with ComparableEqual.
func ComparableHash[K comparable](h Go_Utils.Hasher) HashFunc[K] {
	return func(k K) int64 {
		return int64(Go_Utils.HashComparable(h, k))
	}
}

func ComparableEqual[K comparable](a, b K) bool {
	return a == b
}

func HashableHash[K Hashable](k K) int64 {
	return k.Hash()
}

func HashableEqual[K Hashable](a, b K) bool {
	return a.Equal(b)
}
