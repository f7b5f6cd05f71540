// Package spectest provides probe specifications for testing evaluation
// behavior: whether a branch was reached at all, and how many times.
package spectest

import (
	"fmt"

	"github.com/c360studio/speckit/specification"
)

// Panics returns a specification whose evaluation panics with msg. Use
// it as the right operand of a short-circuiting combinator to prove the
// operand was never evaluated.
func Panics[T any](msg string) specification.Specification[T] {
	return panics[T]{msg: msg}
}

type panics[T any] struct {
	msg string
}

func (s panics[T]) IsSatisfiedBy(T) bool {
	panic(s.msg)
}

func (s panics[T]) String() string {
	return fmt.Sprintf("panics(%q)", s.msg)
}

// Counter wraps a specification and counts evaluations. Unlike real
// specifications it is stateful; it exists only to observe evaluation.
type Counter[T any] struct {
	inner specification.Specification[T]
	calls int
}

// Counting wraps inner in a Counter.
func Counting[T any](inner specification.Specification[T]) *Counter[T] {
	return &Counter[T]{inner: inner}
}

// IsSatisfiedBy delegates to the wrapped specification and records the
// call.
func (c *Counter[T]) IsSatisfiedBy(candidate T) bool {
	c.calls++
	return c.inner.IsSatisfiedBy(candidate)
}

// String delegates to the wrapped specification.
func (c *Counter[T]) String() string {
	return c.inner.String()
}

// Calls reports how many times IsSatisfiedBy has run.
func (c *Counter[T]) Calls() int {
	return c.calls
}
