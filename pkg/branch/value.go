package branch

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Value is the immutable subject of a conditional expression.
type Value[T any] struct {
	id      uuid.UUID
	log     *zap.Logger
	value   T
	present bool
}

// Of wraps v. A nil pointer, map, slice, func, chan or interface is held
// as is but reported absent by IsPresent.
func Of[T any](v T, opts ...Option) Value[T] {
	log, id := Trace(opts...)
	return Value[T]{
		id:      id,
		log:     log,
		value:   v,
		present: !IsNil(v),
	}
}

// Empty is a holder without a subject, for branching on outside state.
func Empty[T any](opts ...Option) Value[T] {
	log, id := Trace(opts...)
	return Value[T]{
		id:  id,
		log: log,
	}
}

func (v Value[T]) Get() T {
	return v.value
}

func (v Value[T]) IsPresent() bool {
	return v.present
}

func (v Value[T]) Id() uuid.UUID {
	return v.id
}

// Logger never returns nil; the zero Value logs to a no-op logger.
func (v Value[T]) Logger() *zap.Logger {
	if v.log == nil {
		return zap.NewNop()
	}
	return v.log
}
