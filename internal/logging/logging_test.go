package logging

import (
	"testing"

	"github.com/goliatone/go-article/pkg/interfaces"
)

func TestModuleLoggerDefaultsToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "")
	if logger == nil {
		t.Fatal("expected logger, got nil")
	}
	// No-op logger must swallow entries without panicking.
	logger.Info("ignored")
}

func TestModuleLoggerUsesProvider(t *testing.T) {
	provider := &stubProvider{}

	logger := DocumentLogger(provider)
	if logger == nil {
		t.Fatal("expected logger, got nil")
	}
	if provider.requested != "article.document" {
		t.Fatalf("expected document module scope, got %q", provider.requested)
	}

	CollectionLogger(provider)
	if provider.requested != "article.collection" {
		t.Fatalf("expected collection module scope, got %q", provider.requested)
	}
}

func TestWithFieldsSkipsEmptyInput(t *testing.T) {
	logger := NoOp()
	if got := WithFields(logger, nil); got != logger {
		t.Fatal("expected identical logger for empty fields")
	}
	if got := WithFields(nil, map[string]any{"k": "v"}); got != nil {
		t.Fatal("expected nil logger to pass through")
	}
}

type stubProvider struct {
	requested string
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = name
	return NoOp()
}
