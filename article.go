// Package article assembles the document toolkit: frontmatter parsing and
// validation, body rendering, asset resolution, and the slug-unique
// collection index.
package article

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-article/collection"
	"github.com/goliatone/go-article/internal/logging"
	"github.com/goliatone/go-article/internal/logging/gologger"
	"github.com/goliatone/go-article/internal/markdown"
	"github.com/goliatone/go-article/pkg/interfaces"
)

// Module wires the document service and collection index from a Config.
type Module struct {
	cfg      Config
	service  *markdown.Service
	index    *collection.Index
	provider interfaces.LoggerProvider
	renderer interfaces.Renderer
}

// Option customises module construction.
type Option func(*Module)

// WithLoggerProvider overrides the logger provider built from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		if provider != nil {
			m.provider = provider
		}
	}
}

// WithRenderer overrides the default goldmark renderer.
func WithRenderer(renderer interfaces.Renderer) Option {
	return func(m *Module) {
		if renderer != nil {
			m.renderer = renderer
		}
	}
}

// New validates the configuration and builds the module.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{cfg: cfg}
	for _, opt := range opts {
		opt(m)
	}

	if m.provider == nil {
		provider, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	service, err := markdown.NewService(markdown.Config{
		BasePath:  cfg.Content.Dir,
		Pattern:   cfg.Content.Pattern,
		Recursive: cfg.Content.Recursive,
		Renderer: interfaces.RenderOptions{
			Extensions: cfg.Renderer.Extensions,
			Sanitize:   cfg.Renderer.Sanitize,
			HardWraps:  cfg.Renderer.HardWraps,
			SafeMode:   cfg.Renderer.SafeMode,
		},
		Logger: logging.DocumentLogger(m.provider),
	}, m.renderer)
	if err != nil {
		return nil, fmt.Errorf("initialise document service: %w", err)
	}
	m.service = service

	m.index = collection.New(
		collection.WithLogger(logging.CollectionLogger(m.provider)),
	)

	return m, nil
}

// Documents exposes the document service.
func (m *Module) Documents() *markdown.Service {
	return m.service
}

// Collection exposes the slug-unique index.
func (m *Module) Collection() *collection.Index {
	return m.index
}

// LoggerProvider exposes the configured provider so hosts can scope loggers.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	return m.provider
}

func buildLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "noop":
		return noopProvider{}, nil
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:  cfg.Level,
			Format: cfg.Format,
		})
	default:
		return nil, fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, cfg.Provider)
	}
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger {
	return logging.NoOp()
}
