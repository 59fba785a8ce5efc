// Package branch holds the subject value and the shared plumbing for fluent
// conditional expressions. The modes live in sub-packages:
// - chain: every matching predicate fires, fallback runs if none matched
// - strict: if / else-if / else, first match wins
// - fast: a precomputed bool gates a value, a side effect or an error
//
// Of/Empty build a Value[T]; chain.From and strict.From pick the mode.
// Predicates run when Match is called, actions only once their condition
// is known to be true.
package branch
