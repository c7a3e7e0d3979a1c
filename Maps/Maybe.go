package Maps

// Maybe is a key that may be absent. It lets callers pass "no key" explicitly instead of reserving a key value for it. The zero value is None.
type Maybe[K any] struct {
	key K
	ok  bool
}

// Some wraps a present key. Any value of K is a valid key, including zero values and nil pointers.
func Some[K any](key K) Maybe[K] {
	return Maybe[K]{key: key, ok: true}
}

// None is the absent key. Table operations given None fail with ErrInvalidKey and change nothing.
func None[K any]() Maybe[K] {
	return Maybe[K]{}
}

// Get returns the wrapped key and whether it is present.
func (m Maybe[K]) Get() (K, bool) {
	return m.key, m.ok
}

// Key returns the wrapped key, or ErrInvalidKey for None.
func (m Maybe[K]) Key() (K, error) {
	if !m.ok {
		return m.key, ErrInvalidKey
	}
	return m.key, nil
}
