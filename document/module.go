package document

import (
	"fmt"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/0xalexb/fieldpath"
	"github.com/0xalexb/fieldpath/dmy"
	"github.com/0xalexb/fieldpath/fetcher/file"
	"github.com/0xalexb/fieldpath/logging"
	yamlparser "github.com/0xalexb/fieldpath/parser/yaml"
)

// NewModule creates an Fx module that provides a *fieldpath.Accessor loaded
// from the configured file, tagged with the module name. The document is
// read and parsed lazily, when the container first asks for the accessor.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	var cfg Config

	for _, apply := range opts {
		apply(&cfg)
	}

	cfg.SetDefaults()

	err := cfg.Validate()
	if err != nil {
		return fx.Error(fmt.Errorf("document module %q: %w", name, err))
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func() (*fieldpath.Accessor, error) {
					return load(name, cfg)
				},
				fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
			),
		),
	)
}

func load(name string, cfg Config) (*fieldpath.Accessor, error) {
	logger := logging.New(cfg.LogLevel, os.Stderr)

	fetcher, err := file.NewFetcher(cfg.Path)()
	if err != nil {
		return nil, fmt.Errorf("document %q: %w", name, err)
	}

	var accessorOpts []fieldpath.Option
	if cfg.DMYDates {
		accessorOpts = append(accessorOpts, fieldpath.WithDateParser(dmy.Parse))
	}

	accessor, err := fieldpath.Provider(accessorOpts...)(yamlparser.NewParser(), fetcher)
	if err != nil {
		return nil, fmt.Errorf("document %q: %w", name, err)
	}

	logger.Info("document loaded",
		slog.String("name", name),
		slog.String("path", cfg.Path))

	return accessor, nil
}
