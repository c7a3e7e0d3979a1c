package Maps

import (
	"math"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Config is what every strategy is built from. Capacity and MaxLoadFactor are taken as given; strategies may raise Capacity to their own minimum.
type Config[K any] struct {
	Capacity      int
	MaxLoadFactor float64
	Hash          HashFunc[K]
	Equal         EqualFunc[K]
	// Logger receives resize and clear events at debug level. nil disables logging.
	Logger *zap.Logger
}

// Validate reports the first problem with the Config as an error wrapping ErrInvalidConfiguration.
func (c *Config[K]) Validate() error {
	if c.Capacity < 1 {
		return errors.Wrapf(ErrInvalidConfiguration, "capacity %d is less than 1", c.Capacity)
	}
	if lf := c.MaxLoadFactor; !(lf > 0) || math.IsInf(lf, 1) {
		return errors.Wrapf(ErrInvalidConfiguration, "max load factor %v is not a finite positive number", lf)
	}
	if c.Hash == nil {
		return errors.Wrap(ErrInvalidConfiguration, "nil hash function")
	}
	if c.Equal == nil {
		return errors.Wrap(ErrInvalidConfiguration, "nil equality function")
	}
	return nil
}

// Log returns the configured logger, or a no-op one.
func (c *Config[K]) Log() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
