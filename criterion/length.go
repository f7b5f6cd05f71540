package criterion

import (
	"fmt"

	"github.com/c360studio/speckit/specification"
)

// LengthBetween returns a specification satisfied when
// min <= len(candidate) <= max, inclusive on both ends. Length is byte
// length, matching the built-in len. When min > max the specification is
// never satisfied.
func LengthBetween[S ~string](min, max int) specification.Specification[S] {
	return length[S]{min: min, max: max}
}

// SizeBetween is LengthBetween for sequence candidates: satisfied when
// min <= len(candidate) <= max, inclusive.
func SizeBetween[S ~[]E, E any](min, max int) specification.Specification[S] {
	return size[S, E]{min: min, max: max}
}

type length[S ~string] struct {
	min, max int
}

func (s length[S]) IsSatisfiedBy(candidate S) bool {
	return len(candidate) >= s.min && len(candidate) <= s.max
}

func (s length[S]) String() string {
	return fmt.Sprintf("length in [%d, %d]", s.min, s.max)
}

type size[S ~[]E, E any] struct {
	min, max int
}

func (s size[S, E]) IsSatisfiedBy(candidate S) bool {
	return len(candidate) >= s.min && len(candidate) <= s.max
}

func (s size[S, E]) String() string {
	return fmt.Sprintf("size in [%d, %d]", s.min, s.max)
}
