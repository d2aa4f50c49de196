package bootstrap

import (
	"fmt"
	"strings"

	article "github.com/goliatone/go-article"
	"github.com/goliatone/go-article/internal/logging"
	"github.com/goliatone/go-article/internal/markdown"
	"github.com/goliatone/go-article/pkg/interfaces"
)

// Options captures configuration for article CLI bootstraps.
type Options struct {
	ContentDir     string
	Pattern        string
	Recursive      bool
	LogLevel       string
	LogFormat      string
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the article module and the configured service/logger.
type Module struct {
	Module  *article.Module
	Service *markdown.Service
	Logger  interfaces.Logger
}

// BuildModule constructs an article module configured for CLI operations.
func BuildModule(opts Options) (*Module, error) {
	cfg := article.DefaultConfig()
	cfg.Content.Dir = strings.TrimSpace(opts.ContentDir)
	if cfg.Content.Dir == "" {
		cfg.Content.Dir = "content"
	}
	if trimmed := strings.TrimSpace(opts.Pattern); trimmed != "" {
		cfg.Content.Pattern = trimmed
	}
	cfg.Content.Recursive = opts.Recursive

	if trimmed := strings.TrimSpace(opts.LogLevel); trimmed != "" {
		cfg.Logging.Level = trimmed
	}
	if trimmed := strings.TrimSpace(opts.LogFormat); trimmed != "" {
		cfg.Logging.Format = trimmed
	}

	moduleOpts := []article.Option{}
	if opts.LoggerProvider != nil {
		moduleOpts = append(moduleOpts, article.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := article.New(cfg, moduleOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise article module: %w", err)
	}

	logger := logging.ModuleLogger(module.LoggerProvider(), "article.cli")

	return &Module{
		Module:  module,
		Service: module.Documents(),
		Logger:  logger,
	}, nil
}

// SplitList parses a comma separated flag value into trimmed entries.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
