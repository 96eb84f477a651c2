package validate

import (
	"regexp"

	"github.com/pkg/errors"
)

// ErrPatternsUnset is returned when Validate is called without a pattern set.
// Callers wanting "no constraint" must pass None().
var ErrPatternsUnset = errors.New("validation patterns not set")

// Pattern is a compiled whitelist entry. It only matches whole strings.
type Pattern struct {
	expr string
	re   *regexp.Regexp
}

// Compile builds a full-match Pattern from a regular expression.
func Compile(expr string) (Pattern, error) {
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return Pattern{}, errors.Wrapf(err, "invalid pattern %q", expr)
	}
	return Pattern{expr: expr, re: re}, nil
}

// MustCompile is like Compile but panics on invalid expressions.
func MustCompile(expr string) Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the expression the pattern was built from.
func (p Pattern) String() string {
	return p.expr
}

// Match reports whether the entire value matches the pattern.
func (p Pattern) Match(value string) bool {
	return p.re != nil && p.re.MatchString(value)
}

// Patterns is an ordered whitelist. A nil Patterns means "unset"; an empty
// non-nil one means "unconstrained".
type Patterns []Pattern

// None returns the explicit empty set.
func None() Patterns {
	return Patterns{}
}

// CompileAll compiles every expression into a pattern set.
func CompileAll(exprs ...string) (Patterns, error) {
	ret := make(Patterns, 0, len(exprs))
	for _, expr := range exprs {
		p, err := Compile(expr)
		if err != nil {
			return nil, err
		}
		ret = append(ret, p)
	}
	return ret, nil
}

// Strings returns the source expressions.
func (ps Patterns) Strings() []string {
	ret := make([]string, len(ps))
	for i, p := range ps {
		ret[i] = p.expr
	}
	return ret
}

// Validate reports whether value fully matches at least one of patterns.
// An empty set accepts everything.
func Validate(value string, patterns Patterns) (bool, error) {
	if patterns == nil {
		return false, ErrPatternsUnset
	}
	if len(patterns) == 0 {
		return true, nil
	}
	for _, p := range patterns {
		if p.Match(value) {
			return true, nil
		}
	}
	return false, nil
}
