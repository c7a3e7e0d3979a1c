package HashTable

import (
	"github.com/g-m-twostay/go-hashtable/Maps"
	"go.uber.org/zap"
)

type Option[K any] func(*options[K])

type options[K any] struct {
	strategy   Strategy
	capacity   int
	loadFactor float64
	// capSet and lfSet tell an explicit zero apart from "use the strategy default".
	capSet, lfSet bool
	hash          Maps.HashFunc[K]
	equal         Maps.EqualFunc[K]
	logger        *zap.Logger
}

func defaultOptions[K any]() *options[K] {
	return &options[K]{strategy: SeparateChaining, logger: zap.NewNop()}
}

// WithStrategy picks the collision-resolution strategy. The default is SeparateChaining.
func WithStrategy[K any](s Strategy) Option[K] {
	return func(o *options[K]) {
		o.strategy = s
	}
}

// WithCapacity sets the minimum starting storage size. Defaults to 3 slots for SeparateChaining and 8 for OpenAddressing; smaller values are raised to those.
func WithCapacity[K any](capacity int) Option[K] {
	return func(o *options[K]) {
		o.capacity, o.capSet = capacity, true
	}
}

// WithMaxLoadFactor sets the fraction of capacity that may be used before the table grows. Defaults to 0.75 for SeparateChaining and 0.45 for OpenAddressing.
func WithMaxLoadFactor[K any](lf float64) Option[K] {
	return func(o *options[K]) {
		o.loadFactor, o.lfSet = lf, true
	}
}

func WithHasher[K any](hash Maps.HashFunc[K]) Option[K] {
	return func(o *options[K]) {
		o.hash = hash
	}
}

func WithEqual[K any](equal Maps.EqualFunc[K]) Option[K] {
	return func(o *options[K]) {
		o.equal = equal
	}
}

// WithLogger sets the logger that receives construction, resize and clear events at debug level.
func WithLogger[K any](logger *zap.Logger) Option[K] {
	return func(o *options[K]) {
		if logger != nil {
			o.logger = logger
		}
	}
}
