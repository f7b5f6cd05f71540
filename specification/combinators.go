package specification

import (
	"fmt"
	"strings"
)

// And returns a specification satisfied when both a and b are satisfied.
// Evaluation short-circuits: b is not evaluated when a is unsatisfied.
func And[T any](a, b Specification[T]) Specification[T] {
	return conjunction[T]{left: a, right: b}
}

// Or returns a specification satisfied when either a or b is satisfied.
// Evaluation short-circuits: b is not evaluated when a is satisfied.
func Or[T any](a, b Specification[T]) Specification[T] {
	return disjunction[T]{left: a, right: b}
}

// Not returns a specification satisfied when a is unsatisfied.
func Not[T any](a Specification[T]) Specification[T] {
	return negation[T]{inner: a}
}

// AndNot is shorthand for And(a, Not(b)).
func AndNot[T any](a, b Specification[T]) Specification[T] {
	return And(a, Not(b))
}

// OrNot is shorthand for Or(a, Not(b)).
func OrNot[T any](a, b Specification[T]) Specification[T] {
	return Or(a, Not(b))
}

// AllOf returns a specification satisfied when every given specification
// is satisfied. With no arguments it is always satisfied. Evaluation
// stops at the first unsatisfied member.
func AllOf[T any](specs ...Specification[T]) Specification[T] {
	return allOf[T]{specs: specs}
}

// AnyOf returns a specification satisfied when at least one given
// specification is satisfied. With no arguments it is never satisfied.
// Evaluation stops at the first satisfied member.
func AnyOf[T any](specs ...Specification[T]) Specification[T] {
	return anyOf[T]{specs: specs}
}

// NoneOf returns a specification satisfied when no given specification
// is satisfied. Equivalent to Not(AnyOf(specs...)).
func NoneOf[T any](specs ...Specification[T]) Specification[T] {
	return Not(AnyOf(specs...))
}

type conjunction[T any] struct {
	left, right Specification[T]
}

func (s conjunction[T]) IsSatisfiedBy(candidate T) bool {
	return s.left.IsSatisfiedBy(candidate) && s.right.IsSatisfiedBy(candidate)
}

func (s conjunction[T]) String() string {
	return fmt.Sprintf("(%s AND %s)", s.left, s.right)
}

type disjunction[T any] struct {
	left, right Specification[T]
}

func (s disjunction[T]) IsSatisfiedBy(candidate T) bool {
	return s.left.IsSatisfiedBy(candidate) || s.right.IsSatisfiedBy(candidate)
}

func (s disjunction[T]) String() string {
	return fmt.Sprintf("(%s OR %s)", s.left, s.right)
}

type negation[T any] struct {
	inner Specification[T]
}

func (s negation[T]) IsSatisfiedBy(candidate T) bool {
	return !s.inner.IsSatisfiedBy(candidate)
}

func (s negation[T]) String() string {
	return fmt.Sprintf("NOT %s", s.inner)
}

type allOf[T any] struct {
	specs []Specification[T]
}

func (s allOf[T]) IsSatisfiedBy(candidate T) bool {
	for _, spec := range s.specs {
		if !spec.IsSatisfiedBy(candidate) {
			return false
		}
	}
	return true
}

func (s allOf[T]) String() string {
	return renderVariadic("ALL", s.specs)
}

type anyOf[T any] struct {
	specs []Specification[T]
}

func (s anyOf[T]) IsSatisfiedBy(candidate T) bool {
	for _, spec := range s.specs {
		if spec.IsSatisfiedBy(candidate) {
			return true
		}
	}
	return false
}

func (s anyOf[T]) String() string {
	return renderVariadic("ANY", s.specs)
}

func renderVariadic[T any](connective string, specs []Specification[T]) string {
	parts := make([]string, len(specs))
	for i, spec := range specs {
		parts[i] = spec.String()
	}
	return fmt.Sprintf("%s(%s)", connective, strings.Join(parts, ", "))
}
