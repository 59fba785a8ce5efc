// Package chain runs every branch whose predicate holds.
//
// Unlike an if/else ladder, a Chain does not stop at the first match: each
// Match/Then pair is independent, and the terminal Otherwise runs only if no
// Then fired. Use package strict when branches must be exclusive.
//
// Key operations:
// - From/Of: start a chain on a branch.Value or a plain value
// - Match: evaluate a predicate on the subject now
// - Then/ThenDo/ThenGet: act if the last predicate held
// - Otherwise/OtherwiseDo/OtherwiseGet: fallback when nothing matched
//
// Chain is an immutable value; every call returns the next state.
package chain
