package criterion

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/c360studio/speckit/specification"
)

// EqualTo returns a specification satisfied when the candidate equals
// value. Equality is Go value equality, not identity.
func EqualTo[T comparable](value T) specification.Specification[T] {
	return equalTo[T]{value: value}
}

// In returns a specification satisfied when the candidate is a member of
// values. Duplicates in values are harmless.
func In[T comparable](values ...T) specification.Specification[T] {
	members := make(map[T]struct{}, len(values))
	for _, v := range values {
		members[v] = struct{}{}
	}
	rendered := make([]T, len(values))
	copy(rendered, values)
	return in[T]{members: members, rendered: rendered}
}

// GreaterThan returns a specification satisfied when candidate > value.
func GreaterThan[T cmp.Ordered](value T) specification.Specification[T] {
	return ordered[T]{op: opGT, value: value}
}

// GreaterThanOrEqualTo returns a specification satisfied when
// candidate >= value.
func GreaterThanOrEqualTo[T cmp.Ordered](value T) specification.Specification[T] {
	return ordered[T]{op: opGE, value: value}
}

// LessThan returns a specification satisfied when candidate < value.
func LessThan[T cmp.Ordered](value T) specification.Specification[T] {
	return ordered[T]{op: opLT, value: value}
}

// LessThanOrEqualTo returns a specification satisfied when
// candidate <= value.
func LessThanOrEqualTo[T cmp.Ordered](value T) specification.Specification[T] {
	return ordered[T]{op: opLE, value: value}
}

// Between returns a specification satisfied when
// min <= candidate <= max, inclusive on both ends. When min > max the
// specification is never satisfied.
func Between[T cmp.Ordered](min, max T) specification.Specification[T] {
	return between[T]{min: min, max: max}
}

// GreaterThanFunc is GreaterThan for types without a native ordering.
// compare must return a negative, zero or positive value for a<b, a==b
// and a>b respectively, like time.Time.Compare.
func GreaterThanFunc[T any](value T, compare func(a, b T) int) specification.Specification[T] {
	return orderedFunc[T]{op: opGT, value: value, compare: compare}
}

// GreaterThanOrEqualToFunc is GreaterThanOrEqualTo with an explicit
// three-way comparison.
func GreaterThanOrEqualToFunc[T any](value T, compare func(a, b T) int) specification.Specification[T] {
	return orderedFunc[T]{op: opGE, value: value, compare: compare}
}

// LessThanFunc is LessThan with an explicit three-way comparison.
func LessThanFunc[T any](value T, compare func(a, b T) int) specification.Specification[T] {
	return orderedFunc[T]{op: opLT, value: value, compare: compare}
}

// LessThanOrEqualToFunc is LessThanOrEqualTo with an explicit three-way
// comparison.
func LessThanOrEqualToFunc[T any](value T, compare func(a, b T) int) specification.Specification[T] {
	return orderedFunc[T]{op: opLE, value: value, compare: compare}
}

// BetweenFunc is Between with an explicit three-way comparison.
func BetweenFunc[T any](min, max T, compare func(a, b T) int) specification.Specification[T] {
	return betweenFunc[T]{min: min, max: max, compare: compare}
}

type equalTo[T comparable] struct {
	value T
}

func (s equalTo[T]) IsSatisfiedBy(candidate T) bool {
	return candidate == s.value
}

func (s equalTo[T]) String() string {
	return fmt.Sprintf("= %v", s.value)
}

type in[T comparable] struct {
	members  map[T]struct{}
	rendered []T
}

func (s in[T]) IsSatisfiedBy(candidate T) bool {
	_, ok := s.members[candidate]
	return ok
}

func (s in[T]) String() string {
	parts := make([]string, len(s.rendered))
	for i, v := range s.rendered {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return fmt.Sprintf("in {%s}", strings.Join(parts, ", "))
}

const (
	opGT = ">"
	opGE = ">="
	opLT = "<"
	opLE = "<="
)

type ordered[T cmp.Ordered] struct {
	op    string
	value T
}

func (s ordered[T]) IsSatisfiedBy(candidate T) bool {
	return opHolds(s.op, cmp.Compare(candidate, s.value))
}

func (s ordered[T]) String() string {
	return fmt.Sprintf("%s %v", s.op, s.value)
}

type orderedFunc[T any] struct {
	op      string
	value   T
	compare func(a, b T) int
}

func (s orderedFunc[T]) IsSatisfiedBy(candidate T) bool {
	return opHolds(s.op, s.compare(candidate, s.value))
}

func (s orderedFunc[T]) String() string {
	return fmt.Sprintf("%s %v", s.op, s.value)
}

// opHolds interprets a three-way comparison of candidate against the
// reference value under the given operator.
func opHolds(op string, c int) bool {
	switch op {
	case opGT:
		return c > 0
	case opGE:
		return c >= 0
	case opLT:
		return c < 0
	default:
		return c <= 0
	}
}

type between[T cmp.Ordered] struct {
	min, max T
}

func (s between[T]) IsSatisfiedBy(candidate T) bool {
	return candidate >= s.min && candidate <= s.max
}

func (s between[T]) String() string {
	return fmt.Sprintf("between [%v, %v]", s.min, s.max)
}

type betweenFunc[T any] struct {
	min, max T
	compare  func(a, b T) int
}

func (s betweenFunc[T]) IsSatisfiedBy(candidate T) bool {
	return s.compare(candidate, s.min) >= 0 && s.compare(candidate, s.max) <= 0
}

func (s betweenFunc[T]) String() string {
	return fmt.Sprintf("between [%v, %v]", s.min, s.max)
}
