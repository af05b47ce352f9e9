// Package fieldpath provides fault-tolerant typed field access over document
// trees parsed from human-authored formats such as YAML.
//
// A lookup names where a value lives with a compact path expression:
//
//	"users.clients.23.name"
//	"users/clients/23/name"
//
// Dot and slash separate segments interchangeably. A pipe separates fallback
// alternatives, which makes schema migrations backward compatible:
//
//	"offer.date|offer_date"
//
// Alternatives are tried left to right and the first one resolving to a
// non-null value wins. Keys that are absent and keys holding an explicit
// null are deliberately indistinguishable: both count as missing.
//
// Typed getters coerce the resolved node to the requested type and fail with
// exactly one of two error kinds, discriminated with errors.Is:
//
//	ErrMissing — no alternative resolved to a usable node
//	ErrInvalid — a node resolved but could not be coerced
//
// An Accessor never mutates the tree it wraps, so any number of lookups may
// run concurrently over the same tree.
package fieldpath
