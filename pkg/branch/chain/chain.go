package chain

import (
	"go.uber.org/zap"

	"github.com/ib-77/branch/pkg/branch"
)

// Chain evaluates predicates against one subject value
type Chain[T any] struct {
	log     *zap.Logger
	value   T
	state   branch.State
	step    int
	last    bool
	matched bool
}

// From starts a chain on v
func From[T any](v branch.Value[T]) Chain[T] {
	return Chain[T]{log: v.Logger(), value: v.Get()}
}

// Of starts a chain on a plain value
func Of[T any](value T, opts ...branch.Option) Chain[T] {
	return From(branch.Of(value, opts...))
}

// Match evaluates predicate immediately and remembers its outcome for the
// next action call
func (c Chain[T]) Match(predicate branch.Predicate[T]) Chain[T] {
	c.step++
	c.state = branch.ConditionSet
	c.last = predicate(c.value)
	c.logger().Debug("predicate evaluated", zap.Int("step", c.step), zap.Bool("matched", c.last))
	return c
}

// Then passes the subject to consume if the last predicate held
func (c Chain[T]) Then(consume branch.Consumer[T]) Chain[T] {
	next, ok := c.take("chain.Then")
	if ok {
		consume(c.value)
	}
	return next
}

// ThenDo runs effect if the last predicate held
func (c Chain[T]) ThenDo(effect func()) Chain[T] {
	next, ok := c.take("chain.ThenDo")
	if ok {
		effect()
	}
	return next
}

// ThenGet calls produce if the last predicate held. A chain carries no
// value result, so the produced value is dropped.
func ThenGet[T, R any](c Chain[T], produce func() R) Chain[T] {
	next, ok := c.take("chain.ThenGet")
	if ok {
		_ = produce()
	}
	return next
}

// Otherwise passes the subject to consume if no branch fired. It ends the chain.
func (c Chain[T]) Otherwise(consume branch.Consumer[T]) {
	if c.fallback() {
		consume(c.value)
	}
}

// OtherwiseDo runs effect if no branch fired. It ends the chain.
func (c Chain[T]) OtherwiseDo(effect func()) {
	if c.fallback() {
		effect()
	}
}

// OtherwiseGet calls produce if no branch fired, dropping its value.
func OtherwiseGet[T, R any](c Chain[T], produce func() R) {
	if c.fallback() {
		_ = produce()
	}
}

// Matched reports whether any branch has fired so far
func (c Chain[T]) Matched() bool {
	return c.matched
}

// Last is the outcome of the most recent Match
func (c Chain[T]) Last() bool {
	return c.last
}

// Bound reports whether Match has been called at least once
func (c Chain[T]) Bound() bool {
	return c.state != branch.Unbound
}

// State is Unbound before the first Match and ConditionSet after it. A
// chain never reaches Resolved: any number of branches may fire.
func (c Chain[T]) State() branch.State {
	return c.state
}

func (c Chain[T]) Value() T {
	return c.value
}

func (c Chain[T]) take(op string) (Chain[T], bool) {
	if c.state == branch.Unbound {
		branch.Violate(op, branch.ErrUnboundCondition)
	}
	if !c.last {
		return c, false
	}

	c.matched = true
	c.logger().Debug("branch taken", zap.String("op", op), zap.Int("step", c.step))
	return c, true
}

func (c Chain[T]) fallback() bool {
	if c.matched {
		return false
	}
	c.logger().Debug("fallback taken", zap.Int("steps", c.step))
	return true
}

func (c Chain[T]) logger() *zap.Logger {
	if c.log == nil {
		return zap.NewNop()
	}
	return c.log
}
