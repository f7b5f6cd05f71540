package specification

// Specification decides whether a candidate of type T satisfies a rule.
//
// Implementations must be pure: IsSatisfiedBy is a function of the
// candidate and the specification's construction-time parameters only,
// with no side effects, so the same tree and candidate always yield the
// same result. Because implementations are immutable after construction
// they are safe to share and evaluate from multiple goroutines.
type Specification[T any] interface {
	// IsSatisfiedBy reports whether candidate satisfies the rule.
	IsSatisfiedBy(candidate T) bool

	// String renders a human-readable description of the rule,
	// recursively for composite specifications.
	String() string
}
