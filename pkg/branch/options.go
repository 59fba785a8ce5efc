package branch

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type options struct {
	name   string
	logger *zap.Logger
}

// Option configures diagnostics of a single expression.
type Option func(*options)

// WithLogger routes decision logs (Debug level) to logger. Without it the
// expression logs nothing.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithName names the logger of the expression, e.g. "pricing.discount".
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// Trace resolves opts into the logger used by an expression and its id.
// The id is uuid.Nil when no logger was supplied.
func Trace(opts ...Option) (*zap.Logger, uuid.UUID) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.logger == nil {
		return zap.NewNop(), uuid.Nil
	}

	id := uuid.New()
	log := o.logger
	if o.name != "" {
		log = log.Named(o.name)
	}
	return log.With(zap.Stringer("branch_id", id)), id
}
