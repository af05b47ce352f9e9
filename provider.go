package fieldpath

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/fieldpath/node"
)

// Parser defines an interface for parsing raw document data into a tree.
// See parser/yaml for an implementation using goccy/go-yaml.
type Parser interface {
	Parse(data []byte) (*node.Node, error)
}

// DataFetcher defines an interface for reading raw document data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Provider returns a function that reads and parses document data and wraps
// the resulting tree in an Accessor configured with the given options.
func Provider(opts ...Option) func(Parser, DataFetcher) (*Accessor, error) {
	return func(parser Parser, fetcher DataFetcher) (*Accessor, error) {
		data, err := fetcher.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		root, err := parser.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		slog.Debug("document parsed",
			slog.Int("bytes", len(data)),
			slog.String("root", root.Type().String()))

		return New(root, opts...), nil
	}
}
