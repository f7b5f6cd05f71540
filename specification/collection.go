package specification

// Filter returns the candidates that satisfy spec, in input order.
// A nil or empty input yields a nil result.
func Filter[T any](candidates []T, spec Specification[T]) []T {
	var matched []T
	for _, c := range candidates {
		if spec.IsSatisfiedBy(c) {
			matched = append(matched, c)
		}
	}
	return matched
}

// Any reports whether at least one candidate satisfies spec.
func Any[T any](candidates []T, spec Specification[T]) bool {
	for _, c := range candidates {
		if spec.IsSatisfiedBy(c) {
			return true
		}
	}
	return false
}

// All reports whether every candidate satisfies spec. An empty input is
// vacuously true.
func All[T any](candidates []T, spec Specification[T]) bool {
	for _, c := range candidates {
		if !spec.IsSatisfiedBy(c) {
			return false
		}
	}
	return true
}
