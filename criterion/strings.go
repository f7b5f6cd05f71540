package criterion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/cases"

	"github.com/c360studio/speckit/specification"
)

// StartsWith returns a specification satisfied when the candidate begins
// with prefix. Comparison is case-sensitive; use StartsWithFold for a
// case-insensitive match.
func StartsWith[S ~string](prefix S) specification.Specification[S] {
	return affix[S]{kind: affixPrefix, value: string(prefix)}
}

// StartsWithFold is StartsWith under Unicode case folding.
func StartsWithFold[S ~string](prefix S) specification.Specification[S] {
	return affix[S]{kind: affixPrefix, value: fold(string(prefix)), folded: true}
}

// EndsWith returns a specification satisfied when the candidate ends
// with suffix.
func EndsWith[S ~string](suffix S) specification.Specification[S] {
	return affix[S]{kind: affixSuffix, value: string(suffix)}
}

// EndsWithFold is EndsWith under Unicode case folding.
func EndsWithFold[S ~string](suffix S) specification.Specification[S] {
	return affix[S]{kind: affixSuffix, value: fold(string(suffix)), folded: true}
}

// Contains returns a specification satisfied when the candidate contains
// substr anywhere.
func Contains[S ~string](substr S) specification.Specification[S] {
	return affix[S]{kind: affixSubstring, value: string(substr)}
}

// ContainsFold is Contains under Unicode case folding.
func ContainsFold[S ~string](substr S) specification.Specification[S] {
	return affix[S]{kind: affixSubstring, value: fold(string(substr)), folded: true}
}

// EqualFold returns a specification satisfied when the candidate equals
// value under Unicode case folding.
func EqualFold[S ~string](value S) specification.Specification[S] {
	return affix[S]{kind: affixEqual, value: fold(string(value)), folded: true}
}

// Matches returns a specification satisfied when the candidate matches
// re, with the engine's search semantics: the pattern may match anywhere
// in the candidate unless anchored.
func Matches(re *regexp.Regexp) specification.Specification[string] {
	return matches{re: re}
}

// MatchesPattern compiles pattern and returns the corresponding Matches
// specification. A malformed pattern fails here, at construction, never
// at evaluation.
func MatchesPattern(pattern string) (specification.Specification[string], error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile pattern: %w", err)
	}
	return Matches(re), nil
}

// MatchesGlob returns a specification satisfied when the candidate
// matches the doublestar glob pattern, with ** spanning path separators.
// A malformed pattern fails at construction.
func MatchesGlob(pattern string) (specification.Specification[string], error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("malformed glob pattern %q", pattern)
	}
	return glob{pattern: pattern}, nil
}

const (
	affixPrefix    = "starts with"
	affixSuffix    = "ends with"
	affixSubstring = "contains"
	affixEqual     = "equals"
)

type affix[S ~string] struct {
	kind   string
	value  string // already folded when folded is set
	folded bool
}

func (s affix[S]) IsSatisfiedBy(candidate S) bool {
	c := string(candidate)
	if s.folded {
		c = fold(c)
	}
	switch s.kind {
	case affixPrefix:
		return strings.HasPrefix(c, s.value)
	case affixSuffix:
		return strings.HasSuffix(c, s.value)
	case affixSubstring:
		return strings.Contains(c, s.value)
	default:
		return c == s.value
	}
}

func (s affix[S]) String() string {
	if s.folded {
		return fmt.Sprintf("%s %q (case-folded)", s.kind, s.value)
	}
	return fmt.Sprintf("%s %q", s.kind, s.value)
}

// fold applies full Unicode case folding, so pairs like K/k and final
// sigma compare equal. A caser is allocated per call: cases.Caser is
// stateful and not safe for concurrent use.
func fold(s string) string {
	return cases.Fold().String(s)
}

type matches struct {
	re *regexp.Regexp
}

func (s matches) IsSatisfiedBy(candidate string) bool {
	return s.re.MatchString(candidate)
}

func (s matches) String() string {
	return fmt.Sprintf("matches /%s/", s.re)
}

type glob struct {
	pattern string
}

func (s glob) IsSatisfiedBy(candidate string) bool {
	// pattern was validated at construction
	ok, _ := doublestar.Match(s.pattern, candidate)
	return ok
}

func (s glob) String() string {
	return fmt.Sprintf("glob %q", s.pattern)
}
