package branch

// Predicate decides whether a branch applies to the subject value
type Predicate[T any] func(T) bool

// Consumer runs a side effect with the subject value
type Consumer[T any] func(T)

// Producer lazily computes an outcome
type Producer[R any] func() R

// ErrorSupplier lazily builds the error returned by OrElseThrow / Throw
type ErrorSupplier func() error
