// Package criterion provides the built-in leaf specifications: value
// comparisons, range and set membership, string matching, length bounds,
// and pattern matching.
//
// Every constructor returns a specification.Specification and composes
// with the combinators in the specification package. Leaves copy their
// parameters at construction and never mutate afterwards.
//
// Ordering leaves (GreaterThan through Between) are constrained to
// cmp.Ordered, which covers numeric and string candidates. For types
// without a native ordering, such as time.Time, use the Func variants
// and supply a three-way comparison.
//
// Construction is the only fallible step: MatchesPattern and MatchesGlob
// validate their pattern eagerly and return an error, so a malformed
// pattern can never reach evaluation. All other constructors cannot
// fail; a Between or LengthBetween with inverted bounds is a valid,
// never-satisfied specification.
package criterion
