package specification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/speckit/criterion"
	"github.com/c360studio/speckit/specification"
	"github.com/c360studio/speckit/spectest"
)

func always() specification.Specification[int] {
	return specification.Satisfies("always", func(int) bool { return true })
}

func never() specification.Specification[int] {
	return specification.Satisfies("never", func(int) bool { return false })
}

func TestAnd(t *testing.T) {
	tests := []struct {
		name  string
		left  specification.Specification[int]
		right specification.Specification[int]
		want  bool
	}{
		{"both satisfied", always(), always(), true},
		{"left unsatisfied", never(), always(), false},
		{"right unsatisfied", always(), never(), false},
		{"neither satisfied", never(), never(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, specification.And(tt.left, tt.right).IsSatisfiedBy(0))
		})
	}
}

func TestOr(t *testing.T) {
	tests := []struct {
		name  string
		left  specification.Specification[int]
		right specification.Specification[int]
		want  bool
	}{
		{"both satisfied", always(), always(), true},
		{"left only", always(), never(), true},
		{"right only", never(), always(), true},
		{"neither satisfied", never(), never(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, specification.Or(tt.left, tt.right).IsSatisfiedBy(0))
		})
	}
}

func TestNot(t *testing.T) {
	assert.False(t, specification.Not(always()).IsSatisfiedBy(0))
	assert.True(t, specification.Not(never()).IsSatisfiedBy(0))
}

func TestAndNot(t *testing.T) {
	spec := specification.AndNot(
		criterion.StartsWith("Hello"),
		criterion.Contains("world"),
	)

	assert.True(t, spec.IsSatisfiedBy("Hello Bob"))
	assert.False(t, spec.IsSatisfiedBy("Hello world"))
	assert.False(t, spec.IsSatisfiedBy("Goodbye Bob"))
}

func TestOrNot(t *testing.T) {
	spec := specification.OrNot(
		criterion.GreaterThan(10),
		criterion.EqualTo(3),
	)

	assert.True(t, spec.IsSatisfiedBy(11))
	assert.True(t, spec.IsSatisfiedBy(4))
	assert.False(t, spec.IsSatisfiedBy(3))
}

func TestDeMorganDuality(t *testing.T) {
	pairs := []struct {
		name  string
		left  specification.Specification[int]
		right specification.Specification[int]
	}{
		{"always/always", always(), always()},
		{"always/never", always(), never()},
		{"never/always", never(), always()},
		{"never/never", never(), never()},
		{"range leaves", criterion.Between(1, 5), criterion.GreaterThan(3)},
	}

	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			notAnd := specification.Not(specification.And(tt.left, tt.right))
			orNots := specification.Or(specification.Not(tt.left), specification.Not(tt.right))
			for candidate := 0; candidate < 8; candidate++ {
				assert.Equal(t, notAnd.IsSatisfiedBy(candidate), orNots.IsSatisfiedBy(candidate),
					"candidate %d", candidate)
			}
		})
	}
}

func TestDoubleNegation(t *testing.T) {
	spec := criterion.Between(1, 5)
	doubled := specification.Not(specification.Not(spec))

	for candidate := 0; candidate < 8; candidate++ {
		assert.Equal(t, spec.IsSatisfiedBy(candidate), doubled.IsSatisfiedBy(candidate))
	}
}

func TestShortCircuit(t *testing.T) {
	boom := spectest.Panics[int]("right operand evaluated")

	t.Run("And skips right when left is unsatisfied", func(t *testing.T) {
		spec := specification.And(never(), boom)
		require.NotPanics(t, func() {
			assert.False(t, spec.IsSatisfiedBy(0))
		})
	})

	t.Run("Or skips right when left is satisfied", func(t *testing.T) {
		spec := specification.Or(always(), boom)
		require.NotPanics(t, func() {
			assert.True(t, spec.IsSatisfiedBy(0))
		})
	})

	t.Run("AllOf stops at first unsatisfied member", func(t *testing.T) {
		spec := specification.AllOf(always(), never(), boom)
		require.NotPanics(t, func() {
			assert.False(t, spec.IsSatisfiedBy(0))
		})
	})

	t.Run("AnyOf stops at first satisfied member", func(t *testing.T) {
		spec := specification.AnyOf(never(), always(), boom)
		require.NotPanics(t, func() {
			assert.True(t, spec.IsSatisfiedBy(0))
		})
	})
}

func TestCombinationDoesNotMutateOperands(t *testing.T) {
	left := criterion.Between(1, 3)
	right := criterion.Between(6, 9)

	combined := specification.And(left, right)
	_ = specification.Or(left, right)
	_ = specification.Not(left)
	assert.False(t, combined.IsSatisfiedBy(2))

	// operands still evaluate exactly as before combination
	assert.True(t, left.IsSatisfiedBy(2))
	assert.False(t, left.IsSatisfiedBy(7))
	assert.True(t, right.IsSatisfiedBy(7))
	assert.False(t, right.IsSatisfiedBy(2))
}

func TestSharedSubexpression(t *testing.T) {
	shared := spectest.Counting(criterion.GreaterThan(0))

	a := specification.And[int](shared, criterion.LessThan(10))
	b := specification.Or[int](shared, criterion.EqualTo(-5))

	assert.True(t, a.IsSatisfiedBy(5))
	assert.True(t, b.IsSatisfiedBy(5))
	assert.Equal(t, 2, shared.Calls(), "each tree evaluates the shared leaf once")
}

func TestAllOf(t *testing.T) {
	t.Run("empty is vacuously satisfied", func(t *testing.T) {
		assert.True(t, specification.AllOf[int]().IsSatisfiedBy(0))
	})

	t.Run("all members must hold", func(t *testing.T) {
		spec := specification.AllOf(
			criterion.GreaterThan(0),
			criterion.LessThan(10),
			specification.Not(criterion.EqualTo(5)),
		)
		assert.True(t, spec.IsSatisfiedBy(4))
		assert.False(t, spec.IsSatisfiedBy(5))
		assert.False(t, spec.IsSatisfiedBy(12))
	})
}

func TestAnyOf(t *testing.T) {
	t.Run("empty is never satisfied", func(t *testing.T) {
		assert.False(t, specification.AnyOf[int]().IsSatisfiedBy(0))
	})

	t.Run("one member suffices", func(t *testing.T) {
		spec := specification.AnyOf(
			criterion.EqualTo(1),
			criterion.EqualTo(2),
			criterion.EqualTo(3),
		)
		assert.True(t, spec.IsSatisfiedBy(2))
		assert.False(t, spec.IsSatisfiedBy(4))
	})
}

func TestNoneOf(t *testing.T) {
	spec := specification.NoneOf(
		criterion.EqualTo(1),
		criterion.EqualTo(2),
	)

	assert.True(t, spec.IsSatisfiedBy(3))
	assert.False(t, spec.IsSatisfiedBy(1))
	assert.True(t, specification.NoneOf[int]().IsSatisfiedBy(0))
}

func TestSatisfies(t *testing.T) {
	even := specification.Satisfies("even", func(n int) bool { return n%2 == 0 })

	assert.True(t, even.IsSatisfiedBy(4))
	assert.False(t, even.IsSatisfiedBy(3))
	assert.Equal(t, "even", even.String())
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		spec specification.Specification[int]
		want string
	}{
		{
			"conjunction",
			specification.And(criterion.GreaterThan(1), criterion.LessThan(9)),
			"(> 1 AND < 9)",
		},
		{
			"negated disjunction",
			specification.Not(specification.Or(criterion.EqualTo(1), criterion.EqualTo(2))),
			"NOT (= 1 OR = 2)",
		},
		{
			"and-not renders as the derived tree",
			specification.AndNot(criterion.GreaterThan(1), criterion.EqualTo(5)),
			"(> 1 AND NOT = 5)",
		},
		{
			"n-ary",
			specification.AnyOf(criterion.EqualTo(1), criterion.EqualTo(2), criterion.EqualTo(3)),
			"ANY(= 1, = 2, = 3)",
		},
		{
			"all-of",
			specification.AllOf(criterion.GreaterThan(0), criterion.LessThan(4)),
			"ALL(> 0, < 4)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.spec.String())
		})
	}
}
