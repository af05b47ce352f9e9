package node

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Type identifies the variant held by a Node.
type Type int

// The closed set of node variants.
const (
	NullType Type = iota
	BadValueType
	StringType
	IntType
	FloatType
	BoolType
	HashType
	ArrayType
)

// String returns the variant name.
func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:     "Null",
		BadValueType: "BadValue",
		StringType:   "String",
		IntType:      "Int",
		FloatType:    "Float",
		BoolType:     "Bool",
		HashType:     "Hash",
		ArrayType:    "Array",
	}[t]
	if ok {
		return s
	}

	return "<unknown type>"
}

// Types returns all node variants.
func Types() []Type {
	return []Type{
		NullType,
		BadValueType,
		StringType,
		IntType,
		FloatType,
		BoolType,
		HashType,
		ArrayType,
	}
}

// IsLeaf reports whether the variant holds no children.
func (t Type) IsLeaf() bool {
	switch t {
	case HashType, ArrayType:
		return false
	default:
		return true
	}
}

// Node is one value in a document tree. The zero value is the null node.
type Node struct {
	typ  Type
	str  string
	num  int64
	flt  float64
	bit  bool
	hash map[string]*Node
	arr  []*Node
}

// NewNull returns a null node.
func NewNull() *Node {
	return &Node{typ: NullType}
}

// NewBadValue returns a bad-value marker node.
func NewBadValue() *Node {
	return &Node{typ: BadValueType}
}

// NewString returns a string node.
func NewString(s string) *Node {
	return &Node{typ: StringType, str: s}
}

// NewInt returns an integer node.
func NewInt(i int64) *Node {
	return &Node{typ: IntType, num: i}
}

// NewFloat returns a float node.
func NewFloat(f float64) *Node {
	return &Node{typ: FloatType, flt: f}
}

// NewBool returns a boolean node.
func NewBool(b bool) *Node {
	return &Node{typ: BoolType, bit: b}
}

// NewHash returns a hash node over the given entries. The map is used as-is;
// callers must not mutate it afterwards.
func NewHash(entries map[string]*Node) *Node {
	return &Node{typ: HashType, hash: entries}
}

// NewArray returns an array node over the given elements.
func NewArray(elements ...*Node) *Node {
	return &Node{typ: ArrayType, arr: elements}
}

// Type returns the variant held by the node. A nil node is null.
func (n *Node) Type() Type {
	if n == nil {
		return NullType
	}

	return n.typ
}

// AsStr returns the string value if the node is a string.
func (n *Node) AsStr() (string, bool) {
	if n.Type() != StringType {
		return "", false
	}

	return n.str, true
}

// AsInt returns the integer value if the node is an integer.
func (n *Node) AsInt() (int64, bool) {
	if n.Type() != IntType {
		return 0, false
	}

	return n.num, true
}

// AsFloat returns the float value if the node is a float.
func (n *Node) AsFloat() (float64, bool) {
	if n.Type() != FloatType {
		return 0, false
	}

	return n.flt, true
}

// AsBool returns the boolean value if the node is a boolean.
func (n *Node) AsBool() (bool, bool) {
	if n.Type() != BoolType {
		return false, false
	}

	return n.bit, true
}

// AsHash returns the entries if the node is a hash. Callers must treat the
// returned map as read-only; it aliases the tree.
func (n *Node) AsHash() (map[string]*Node, bool) {
	if n.Type() != HashType {
		return nil, false
	}

	return n.hash, true
}

// AsArray returns the elements if the node is an array. Callers must treat
// the returned slice as read-only; it aliases the tree.
func (n *Node) AsArray() ([]*Node, bool) {
	if n.Type() != ArrayType {
		return nil, false
	}

	return n.arr, true
}

// Key returns the child stored under key, or nil when the node is not a hash
// or the key is absent.
func (n *Node) Key(key string) *Node {
	if n.Type() != HashType {
		return nil
	}

	return n.hash[key]
}

// At returns the element at index, or nil when the node is not an array or
// the index is out of bounds.
func (n *Node) At(index int) *Node {
	if n.Type() != ArrayType || index < 0 || index >= len(n.arr) {
		return nil
	}

	return n.arr[index]
}

// Len returns the number of children for hashes and arrays, zero otherwise.
func (n *Node) Len() int {
	switch n.Type() {
	case HashType:
		return len(n.hash)
	case ArrayType:
		return len(n.arr)
	default:
		return 0
	}
}

// String renders the node for diagnostics, e.g. `String("no")` or
// `Hash{port: Int(80)}`. Hash keys are sorted for stable output.
func (n *Node) String() string {
	switch n.Type() {
	case NullType:
		return "Null"
	case BadValueType:
		return "BadValue"
	case StringType:
		return fmt.Sprintf("String(%q)", n.str)
	case IntType:
		return fmt.Sprintf("Int(%d)", n.num)
	case FloatType:
		return fmt.Sprintf("Float(%v)", n.flt)
	case BoolType:
		return fmt.Sprintf("Bool(%t)", n.bit)
	case HashType:
		keys := make([]string, 0, len(n.hash))
		for k := range n.hash {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+n.hash[k].String())
		}

		return "Hash{" + strings.Join(parts, ", ") + "}"
	case ArrayType:
		parts := make([]string, 0, len(n.arr))
		for _, el := range n.arr {
			parts = append(parts, el.String())
		}

		return "Array[" + strings.Join(parts, ", ") + "]"
	default:
		return "<unknown node " + strconv.Itoa(int(n.typ)) + ">"
	}
}
