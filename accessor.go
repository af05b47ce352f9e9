package fieldpath

import (
	"fmt"
	"strings"
	"time"

	"github.com/0xalexb/fieldpath/node"
	"github.com/0xalexb/fieldpath/pathexpr"
)

// Accessor answers typed lookups against one immutable document tree.
// The tree must outlive the accessor and every value borrowed from it.
type Accessor struct {
	root    *node.Node
	options Options
}

// New creates an Accessor over the given document tree.
func New(root *node.Node, opts ...Option) *Accessor {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return &Accessor{
		root:    root,
		options: options,
	}
}

// Root returns the document tree the accessor reads from.
func (a *Accessor) Root() *node.Node {
	return a.root
}

// Get resolves a path expression to a node, trying each alternative in order
// and returning the first that resolves to a present, non-null value. Nodes
// holding an explicit null or a bad-value marker count as absent, so callers
// cannot distinguish "key present but null" from "key absent". Get returns
// nil when no alternative resolves.
//
// Get panics if path contains whitespace; see pathexpr.Parse.
func (a *Accessor) Get(path string) *node.Node {
	for _, alternative := range pathexpr.Parse(path) {
		resolved := node.Resolve(a.root, alternative)

		switch resolved.Type() {
		case node.NullType, node.BadValueType:
			continue
		default:
			return resolved
		}
	}

	return nil
}

// field resolves path and coerces the result, classifying failures as
// ErrMissing (nothing resolved) or ErrInvalid (coercion refused the node).
func field[T any](a *Accessor, path, label string, coerce func(*node.Node) (T, bool)) (T, error) {
	var zero T

	resolved := a.Get(path)
	if resolved == nil {
		return zero, ErrMissing
	}

	value, ok := coerce(resolved)
	if !ok {
		return zero, fmt.Errorf("%w: %s (%s)", ErrInvalid, label, resolved)
	}

	return value, nil
}

// Str returns the string at path. Only string nodes qualify.
func (a *Accessor) Str(path string) (string, error) {
	return field(a, path, "not a string", (*node.Node).AsStr)
}

// Int returns the integer at path. Only integer nodes qualify.
func (a *Accessor) Int(path string) (int64, error) {
	return field(a, path, "not an integer", (*node.Node).AsInt)
}

// Float returns the float at path. An integer node is widened to float.
func (a *Accessor) Float(path string) (float64, error) {
	return field(a, path, "not a float", func(n *node.Node) (float64, bool) {
		if f, ok := n.AsFloat(); ok {
			return f, true
		}

		if i, ok := n.AsInt(); ok {
			return float64(i), true
		}

		return 0, false
	})
}

// Bool returns the boolean at path, leniently. A boolean node is taken
// as-is. A string node compares case-insensitively against "yes": "Yes"
// is true and every other string, including "no" and "true", is false.
func (a *Accessor) Bool(path string) (bool, error) {
	return field(a, path, "not a boolean", func(n *node.Node) (bool, bool) {
		if b, ok := n.AsBool(); ok {
			return b, true
		}

		if s, ok := n.AsStr(); ok {
			return strings.EqualFold(s, "yes"), true
		}

		return false, false
	})
}

// BoolStrict returns the boolean at path. Only boolean nodes qualify.
func (a *Accessor) BoolStrict(path string) (bool, error) {
	return field(a, path, "not a boolean", (*node.Node).AsBool)
}

// Hash returns the mapping at path. The result aliases the tree and must be
// treated as read-only.
func (a *Accessor) Hash(path string) (map[string]*node.Node, error) {
	return field(a, path, "not a hash", (*node.Node).AsHash)
}

// Array returns the sequence at path. The result aliases the tree and must
// be treated as read-only.
func (a *Accessor) Array(path string) ([]*node.Node, error) {
	return field(a, path, "not an array", (*node.Node).AsArray)
}

// Date returns the date at path, parsed from a string node by the configured
// DateParser. Date panics when the accessor was built without WithDateParser:
// absent the capability, this getter is not offered.
func (a *Accessor) Date(path string) (time.Time, error) {
	if a.options.DateParser == nil {
		panic("fieldpath: Date requires an accessor built with WithDateParser")
	}

	return field(a, path, "not a date", func(n *node.Node) (time.Time, bool) {
		s, ok := n.AsStr()
		if !ok {
			return time.Time{}, false
		}

		date, err := a.options.DateParser(s)
		if err != nil {
			return time.Time{}, false
		}

		return date, true
	})
}
