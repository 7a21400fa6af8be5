package hashdict

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

const (
	// DefaultCapacity is the initial table size when none is configured.
	DefaultCapacity = 101
	// DefaultMaxLoadFactor is the occupancy ratio above which the table grows.
	DefaultMaxLoadFactor = 0.5
)

// ErrInvalidConfig is returned by constructors given unusable parameters.
var ErrInvalidConfig = errors.New("hashdict: invalid configuration")

type options struct {
	capacity      int
	maxLoadFactor float64
	logger        *zap.Logger
}

func defaultOptions() options {
	return options{
		capacity:      DefaultCapacity,
		maxLoadFactor: DefaultMaxLoadFactor,
		logger:        zap.NewNop(),
	}
}

func (o options) validate() error {
	if o.capacity < 1 {
		return fmt.Errorf("%w: capacity %d must be positive", ErrInvalidConfig, o.capacity)
	}
	if o.maxLoadFactor <= 0 || o.maxLoadFactor >= 1 {
		return fmt.Errorf("%w: load factor %v must be in (0, 1)", ErrInvalidConfig, o.maxLoadFactor)
	}
	return nil
}

// Option configures a Dictionary at construction time.
type Option func(*options)

// WithCapacity sets the initial number of slots. Non-prime values are
// rounded up to the next prime.
func WithCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// WithLoadFactor sets the occupancy ratio (live entries plus tombstones over
// capacity) that an insertion may not exceed without a resize.
func WithLoadFactor(f float64) Option {
	return func(o *options) { o.maxLoadFactor = f }
}

// WithLogger routes resize diagnostics to l. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}
