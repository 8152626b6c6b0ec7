package kernel

// Specification is a composable predicate over values of type T. Domain
// specifications such as RouteSpecification expose their satisfaction check
// as a Specification so callers can combine them with And, Or and Not
// without any inheritance hierarchy.
type Specification[T any] func(T) bool

// And returns a specification satisfied when both s and other are satisfied.
func (s Specification[T]) And(other Specification[T]) Specification[T] {
	return func(candidate T) bool {
		return s(candidate) && other(candidate)
	}
}

// Or returns a specification satisfied when either s or other is satisfied.
func (s Specification[T]) Or(other Specification[T]) Specification[T] {
	return func(candidate T) bool {
		return s(candidate) || other(candidate)
	}
}

// Not returns a specification satisfied when s is not satisfied.
func (s Specification[T]) Not() Specification[T] {
	return func(candidate T) bool {
		return !s(candidate)
	}
}
