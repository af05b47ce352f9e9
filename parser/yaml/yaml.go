package yaml

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/0xalexb/fieldpath/node"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Parser implements the fieldpath.Parser interface for YAML data.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes YAML data into a document tree. Only the first document of a
// multi-document stream is decoded.
func (p *Parser) Parse(data []byte) (*node.Node, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var doc any

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return node.FromAny(doc), nil
}
