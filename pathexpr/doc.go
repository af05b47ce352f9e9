// Package pathexpr parses path expressions into ordered fallback alternatives.
//
// A path expression addresses a value inside a document tree. Segments are
// separated by dot (.) or slash (/), which are interchangeable:
//
//	"users.clients.23.name"
//	"users/clients/23/name"
//
// A pipe (|) separates fallback alternatives, tried left to right:
//
//	"offer.date|offer_date"
//
// Path expressions are code, not user input: an expression containing
// whitespace indicates a bug at the call site and makes Parse panic.
package pathexpr
