package branch

import (
	"errors"
	"fmt"
)

var (
	// ErrUnboundCondition is raised when an action is called before any Match.
	ErrUnboundCondition = errors.New("no predicate bound")
	// ErrNoTrueBranch is raised when a true gate has no selected producer.
	ErrNoTrueBranch = errors.New("no true branch selected")
)

// PreconditionError reports a misuse of the fluent API together with the
// operation that detected it. It is always raised with panic: it signals a
// programming error, not a runtime input.
type PreconditionError struct {
	Op  string
	Err error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("branch: %s: %v", e.Op, e.Err)
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// Violate panics with a *PreconditionError for op.
func Violate(op string, err error) {
	panic(&PreconditionError{Op: op, Err: err})
}

// IsPreconditionError reports whether err (or any error in its chain) is a
// [*PreconditionError].
func IsPreconditionError(err error) bool {
	if err == nil {
		return false
	}
	var pe *PreconditionError
	return errors.As(err, &pe)
}
