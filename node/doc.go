// Package node defines the document tree that fieldpath lookups walk.
//
// A Node is a closed tagged variant: hash, array, string, int, float, bool,
// null, or bad value (a marker for data that could not be represented).
// Nodes are immutable after construction; lookups borrow the tree read-only,
// so any number of lookups may run concurrently against the same tree.
//
// Trees are usually produced by parser/yaml, but can be built directly with
// the New* constructors, which is convenient in tests.
package node
