package strict

import (
	"go.uber.org/zap"

	"github.com/ib-77/branch/pkg/branch"
)

// Matcher is an immutable if/else ladder over a subject of type T that
// resolves to a result of type R.
type Matcher[T, R any] struct {
	log       *zap.Logger
	value     T
	result    R
	state     branch.State
	step      int
	last      bool
	hasResult bool
}

// From starts a ladder on v. R is usually the only type argument to spell:
//
//	strict.From[string](branch.Of(42))
func From[R, T any](v branch.Value[T]) Matcher[T, R] {
	return Matcher[T, R]{log: v.Logger(), value: v.Get()}
}

// Of starts a ladder on a plain value
func Of[R, T any](value T, opts ...branch.Option) Matcher[T, R] {
	return From[R](branch.Of(value, opts...))
}

// Match evaluates predicate unless the matcher is already resolved.
func (m Matcher[T, R]) Match(predicate branch.Predicate[T]) Matcher[T, R] {
	if m.state == branch.Resolved {
		return m
	}

	m.step++
	m.state = branch.ConditionSet
	m.last = predicate(m.value)
	m.logger().Debug("predicate evaluated", zap.Int("step", m.step), zap.Bool("matched", m.last))
	return m
}

// Then resolves the matcher with produce(value) if the last predicate held
func (m Matcher[T, R]) Then(produce func(T) R) Matcher[T, R] {
	if !m.takes("strict.Then") {
		return m
	}
	return m.resolve(produce(m.value), true)
}

// ThenGet resolves the matcher with produce() if the last predicate held
func (m Matcher[T, R]) ThenGet(produce branch.Producer[R]) Matcher[T, R] {
	if !m.takes("strict.ThenGet") {
		return m
	}
	return m.resolve(produce(), true)
}

// ThenDo resolves the matcher without a result, running consume
func (m Matcher[T, R]) ThenDo(consume branch.Consumer[T]) Matcher[T, R] {
	if !m.takes("strict.ThenDo") {
		return m
	}
	consume(m.value)

	var zero R
	return m.resolve(zero, false)
}

// OrElseGet returns the recorded result, or produce() if nothing resolved.
// A matcher resolved by ThenDo yields the zero R.
func (m Matcher[T, R]) OrElseGet(produce branch.Producer[R]) R {
	if m.state == branch.Resolved {
		return m.result
	}
	m.logger().Debug("fallback taken", zap.Int("steps", m.step))
	return produce()
}

// OrElse is OrElseGet with an already computed fallback
func (m Matcher[T, R]) OrElse(fallback R) R {
	if m.state == branch.Resolved {
		return m.result
	}
	m.logger().Debug("fallback taken", zap.Int("steps", m.step))
	return fallback
}

// OrElseDo runs consume if nothing resolved
func (m Matcher[T, R]) OrElseDo(consume branch.Consumer[T]) {
	if m.state == branch.Resolved {
		return
	}
	m.logger().Debug("fallback taken", zap.Int("steps", m.step))
	consume(m.value)
}

// OrElseThrow returns the error built by supply if nothing resolved. The
// error is returned exactly as supplied. The matcher is returned so a
// resolved ladder can still be read with OrElseGet or Result.
func (m Matcher[T, R]) OrElseThrow(supply branch.ErrorSupplier) (Matcher[T, R], error) {
	if m.state == branch.Resolved {
		return m, nil
	}
	m.logger().Debug("unresolved, returning caller error", zap.Int("steps", m.step))
	return m, supply()
}

// Result returns the recorded value; ok is false unless a Then or ThenGet
// branch resolved the matcher.
func (m Matcher[T, R]) Result() (R, bool) {
	return m.result, m.hasResult
}

func (m Matcher[T, R]) State() branch.State {
	return m.state
}

func (m Matcher[T, R]) Resolved() bool {
	return m.state == branch.Resolved
}

func (m Matcher[T, R]) Value() T {
	return m.value
}

func (m Matcher[T, R]) takes(op string) bool {
	switch m.state {
	case branch.Unbound:
		branch.Violate(op, branch.ErrUnboundCondition)
	case branch.Resolved:
		return false
	}
	return m.last
}

func (m Matcher[T, R]) resolve(result R, hasResult bool) Matcher[T, R] {
	m.state = branch.Resolved
	m.result = result
	m.hasResult = hasResult
	m.logger().Debug("branch taken", zap.Int("step", m.step), zap.Bool("has_result", hasResult))
	return m
}

func (m Matcher[T, R]) logger() *zap.Logger {
	if m.log == nil {
		return zap.NewNop()
	}
	return m.log
}
