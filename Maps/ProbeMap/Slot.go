package ProbeMap

// state tags a slot. The zero value is empty, so freshly allocated storage needs no initialization.
type state byte

const (
	empty state = iota
	tombstone
	occupied
)

func (s state) String() string {
	switch s {
	case empty:
		return "empty"
	case tombstone:
		return "tombstone"
	case occupied:
		return "occupied"
	}
	return "invalid"
}

// triangular returns x(x+1)/2. Offsetting a power-of-two table by triangular(0..n-1) visits each of its n slots exactly once.
func triangular(x int) int {
	return (x*x + x) >> 1
}
