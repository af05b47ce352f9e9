// Package yaml parses YAML documents into fieldpath node trees.
//
// It implements the fieldpath.Parser interface on top of goccy/go-yaml,
// decoding the whole document into the generic node model that lookups walk.
package yaml
