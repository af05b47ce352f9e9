package pathexpr

import (
	"fmt"
	"strings"
	"unicode"
)

// AlternativeSeparator splits a path expression into fallback alternatives.
const AlternativeSeparator = "|"

// Alternative is one fallback candidate within a path expression,
// already split into its ordered segments.
type Alternative []string

// Paths is the ordered set of alternatives parsed from one path expression.
// Order determines precedence: the first alternative that resolves wins.
type Paths []Alternative

// Parse splits a path expression into its alternatives and each alternative
// into segments. Dot and slash are interchangeable segment separators.
//
// Parse panics if expr contains whitespace. Paths are expected to be
// compile-time constants, so whitespace is a programming error rather than
// a runtime input error.
func Parse(expr string) Paths {
	if strings.ContainsFunc(expr, unicode.IsSpace) {
		panic(fmt.Sprintf("pathexpr: path expression must not contain whitespace: %q", expr))
	}

	alternatives := strings.Split(expr, AlternativeSeparator)
	paths := make(Paths, 0, len(alternatives))

	for _, alt := range alternatives {
		paths = append(paths, segments(alt))
	}

	return paths
}

// segments splits one alternative on the segment separators.
// Empty segments are preserved; they simply never match a key.
func segments(alt string) Alternative {
	return strings.Split(strings.ReplaceAll(alt, "/", "."), ".")
}

// String reassembles the alternative in canonical dotted form.
func (a Alternative) String() string {
	return strings.Join(a, ".")
}
