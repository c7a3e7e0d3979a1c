package Maps

import (
	"math"
	"math/bits"
)

// NextPow2 returns the smallest power of two that is >= n. It returns 1 for n <= 1.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// Index maps hash onto [0, n) as abs(hash) mod n. math.MinInt64 is handled without overflow.
func Index(hash int64, n int) int {
	u := uint64(hash)
	if hash < 0 {
		u = -u
	}
	return int(u % uint64(n))
}

// Threshold returns floor(capacity*loadFactor) clamped to [lo, hi].
func Threshold(capacity int, loadFactor float64, lo, hi int) int {
	t := float64(capacity) * loadFactor
	switch {
	case t >= float64(hi):
		return hi
	case t < float64(lo):
		return lo
	}
	return int(math.Floor(t))
}
