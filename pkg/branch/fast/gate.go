package fast

import (
	"go.uber.org/zap"

	"github.com/ib-77/branch/pkg/branch"
)

// Gate is a condition fixed at construction.
type Gate struct {
	log       *zap.Logger
	condition bool
}

// Of builds a gate from cond.
func Of(cond bool, opts ...branch.Option) Gate {
	log, _ := branch.Trace(opts...)
	return Gate{log: log, condition: cond}
}

func (g Gate) Condition() bool {
	return g.condition
}

// Run calls effect only if the condition holds.
func (g Gate) Run(effect func()) {
	if !g.condition {
		return
	}
	g.logger().Debug("gate open, running effect")
	effect()
}

// Throw returns supply() if the condition holds and nil otherwise. supply
// is not called for a closed gate.
func (g Gate) Throw(supply branch.ErrorSupplier) error {
	if !g.condition {
		return nil
	}
	g.logger().Debug("gate open, returning caller error")
	return supply()
}

func (g Gate) logger() *zap.Logger {
	if g.log == nil {
		return zap.NewNop()
	}
	return g.log
}

// Selection is the value-selecting form of a Gate, awaiting its else branch.
type Selection[R any] struct {
	gate    Gate
	produce func() R
}

// Select records produce as the outcome for an open gate. Nothing is
// evaluated until ElseGet.
func Select[R any](g Gate, produce func() R) Selection[R] {
	s := Selection[R]{gate: g}
	if g.condition {
		s.produce = produce
	}
	return s
}

// ElseGet returns produce() of an open gate, or orElse() of a closed one.
// It panics with branch.ErrNoTrueBranch when the gate is open and no
// producer was selected.
func (s Selection[R]) ElseGet(orElse func() R) R {
	if !s.gate.condition {
		s.gate.logger().Debug("gate closed, selecting else branch")
		return orElse()
	}
	if s.produce == nil {
		branch.Violate("fast.ElseGet", branch.ErrNoTrueBranch)
	}
	s.gate.logger().Debug("gate open, selecting true branch")
	return s.produce()
}

// IfElse evaluates exactly one of onTrue and onFalse.
func IfElse[R any](cond bool, onTrue, onFalse func() R) R {
	return Select(Of(cond), onTrue).ElseGet(onFalse)
}
