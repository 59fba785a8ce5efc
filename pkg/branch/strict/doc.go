// Package strict provides an if / else-if / else ladder as a fluent
// Matcher[T, R].
//
// The first Match whose predicate holds and is followed by a Then* call
// resolves the matcher; from then on every Match and Then* is inert and
// later predicates are not evaluated. The terminal call picks the outcome:
// - OrElseGet/OrElse: the recorded result or a fallback value
// - OrElseDo: a fallback side effect
// - OrElseThrow: a caller-supplied error when nothing resolved
//
// Resolution is tracked by an explicit branch.State, so a branch that
// produced a zero or nil value still counts as taken.
package strict
