package Maps

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidConfiguration is returned when a table is constructed with a capacity below 1 or a load factor that isn't a finite positive number.
	ErrInvalidConfiguration = errors.New("invalid hash table configuration")
	// ErrInvalidKey is returned when an operation is given None instead of a key.
	ErrInvalidKey = errors.New("invalid key")
	// ErrKeyNotFound is returned by strict lookups of keys that have no mapping.
	ErrKeyNotFound = errors.New("key not found")
)

// KeyNotFound wraps ErrKeyNotFound with the missing key.
func KeyNotFound[K any](key K) error {
	return errors.Wrapf(ErrKeyNotFound, "%v", key)
}
