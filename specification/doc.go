// Package specification implements the Specification pattern: composable
// predicates that decide whether a candidate value satisfies a rule.
//
// A Specification is a two-method contract: IsSatisfiedBy evaluates a
// candidate, String renders the rule for diagnostics. Specifications are
// immutable after construction; the combinators (And, Or, Not, AndNot,
// OrNot and the n-ary AllOf, AnyOf, NoneOf) never mutate their operands,
// they allocate new composite nodes wrapping them. A specification can
// therefore be reused as a sub-expression in any number of larger trees.
//
// Evaluation recurses down the composite tree and short-circuits: And
// skips its right operand when the left is false, Or skips it when the
// left is true.
//
// Leaf specifications live in the criterion package. Consumers add their
// own leaves either with Satisfies or by implementing the Specification
// interface directly; such leaves combine with built-in ones without any
// registration step.
package specification
