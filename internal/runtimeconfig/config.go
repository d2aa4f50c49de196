package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
)

var ErrContentDirRequired = errors.New("article config: content directory is required")
var ErrLoggingProviderUnknown = errors.New("article config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("article config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("article config: logging format is invalid")

// Config aggregates runtime settings for the article module. Fields
// intentionally use simple types so host applications can extend them later.
type Config struct {
	Content  ContentConfig
	Renderer RendererConfig
	Logging  LoggingConfig
}

// ContentConfig captures filesystem behaviour for document discovery.
type ContentConfig struct {
	Dir       string
	Pattern   string
	Recursive bool
}

// RendererConfig mirrors interfaces.RenderOptions for runtime configuration.
type RendererConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider string
	Level    string
	Format   string
}

// DefaultConfig returns opinionated defaults.
func DefaultConfig() Config {
	return Config{
		Content: ContentConfig{
			Dir:       "content",
			Pattern:   "*.md",
			Recursive: true,
		},
		Renderer: RendererConfig{},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Content.Dir) == "" {
		return ErrContentDirRequired
	}
	if provider := normalizeProvider(cfg.Logging.Provider); provider != "" && !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
		return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "gologger", "noop":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
