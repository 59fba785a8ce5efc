// Package fast gates values, side effects and errors on a bool that is
// already known.
//
// Highlights:
// - Of: build a Gate from a bool
// - Select + ElseGet: lazy two-way value selection
// - Run: side effect only when the condition holds
// - Throw: caller-supplied error only when the condition holds
// - IfElse: one-shot lazy ternary
package fast
