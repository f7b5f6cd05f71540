package specification

// Satisfies returns a leaf specification backed by fn. The description is
// used for String rendering and should name the rule, not restate the
// code. fn must be pure for the specification contract to hold.
func Satisfies[T any](description string, fn func(T) bool) Specification[T] {
	return funcSpec[T]{description: description, fn: fn}
}

type funcSpec[T any] struct {
	description string
	fn          func(T) bool
}

func (s funcSpec[T]) IsSatisfiedBy(candidate T) bool {
	return s.fn(candidate)
}

func (s funcSpec[T]) String() string {
	return s.description
}
