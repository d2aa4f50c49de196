package markdown

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-article/document"
	"github.com/goliatone/go-article/internal/assets"
	"github.com/goliatone/go-article/internal/logging"
	"github.com/goliatone/go-article/internal/validation"
	"github.com/goliatone/go-article/pkg/interfaces"
)

// Config controls how the document service discovers and parses files.
type Config struct {
	BasePath  string
	Pattern   string
	Recursive bool
	Renderer  interfaces.RenderOptions
	Logger    interfaces.Logger
}

// Service implements interfaces.DocumentService for filesystem-backed
// documents. It also owns the publishable check combining field validation,
// shape validation, and banner resolution.
type Service struct {
	cfg      Config
	renderer interfaces.Renderer
	loader   *Loader
	resolver *assets.Resolver
	logger   interfaces.Logger
}

var _ interfaces.DocumentService = (*Service)(nil)

// NewService constructs a document service using an underlying loader. When
// renderer is nil, a goldmark renderer with the configured defaults is created.
func NewService(cfg Config, renderer interfaces.Renderer) (*Service, error) {
	filesystem, err := prepareFilesystem(cfg.BasePath)
	if err != nil {
		return nil, err
	}

	if renderer == nil {
		renderer = NewGoldmarkRenderer(cfg.Renderer)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	loader := NewLoader(filesystem, LoaderConfig{
		BasePath:  cfg.BasePath,
		Pattern:   cfg.Pattern,
		Recursive: cfg.Recursive,
	})

	return &Service{
		cfg:      cfg,
		renderer: renderer,
		loader:   loader,
		resolver: assets.NewResolver(filesystem),
		logger:   logger,
	}, nil
}

// Load reads a single document relative to the configured base path.
func (s *Service) Load(ctx context.Context, path string, opts interfaces.LoadOptions) (*interfaces.Document, error) {
	result, err := s.loader.LoadFile(ctx, s.normalisePath(path), toLoaderParams(opts))
	if err != nil {
		return nil, err
	}
	if err := s.renderDocument(ctx, result.Document, opts.Renderer); err != nil {
		return nil, err
	}
	return result.Document, nil
}

// LoadDirectory reads every document within the supplied directory.
func (s *Service) LoadDirectory(ctx context.Context, dir string, opts interfaces.LoadOptions) ([]*interfaces.Document, error) {
	results, err := s.loader.LoadDirectory(ctx, s.normalisePath(dir), toLoaderParams(opts))
	if err != nil {
		return nil, err
	}

	docs := make([]*interfaces.Document, 0, len(results))
	for _, result := range results {
		if err := s.renderDocument(ctx, result.Document, opts.Renderer); err != nil {
			return nil, err
		}
		docs = append(docs, result.Document)
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].FilePath < docs[j].FilePath
	})
	return docs, nil
}

// List returns the article file paths under dir without parsing them, so
// callers can check each document individually and keep going past failures.
func (s *Service) List(ctx context.Context, dir string, opts interfaces.LoadOptions) ([]string, error) {
	return s.loader.ListFiles(ctx, s.normalisePath(dir), toLoaderParams(opts))
}

// Render converts markdown bytes into HTML using the configured renderer.
func (s *Service) Render(ctx context.Context, markdown []byte, opts interfaces.RenderOptions) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	return s.renderer.RenderWithOptions(markdown, mergeRenderOptions(s.cfg.Renderer, opts))
}

// RenderDocument converts the document's markdown body into HTML using the
// configured renderer.
func (s *Service) RenderDocument(ctx context.Context, doc *interfaces.Document, opts interfaces.RenderOptions) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("document service: document is nil")
	}
	html, err := s.Render(ctx, doc.Body, opts)
	if err != nil {
		return nil, err
	}
	doc.BodyHTML = html
	return html, nil
}

// Check loads a document and reports every publishable-state violation:
// field constraints, frontmatter shape problems, and banner resolution.
// Parse failures surface as errors; violations are results, never panics.
func (s *Service) Check(ctx context.Context, path string, opts interfaces.LoadOptions) (*interfaces.Document, document.Violations, error) {
	result, err := s.loader.LoadFile(ctx, s.normalisePath(path), toLoaderParams(opts))
	if err != nil {
		return nil, nil, err
	}
	doc := result.Document

	violations := document.Validate(doc.Metadata)
	violations = mergeShapeViolations(violations, doc.Metadata.Raw)

	if doc.Metadata.Banner != "" && violations.ByField("banner") == nil {
		if _, err := s.resolver.Resolve(doc.FilePath, doc.Metadata.Banner); err != nil {
			violations = append(violations, document.Violation{Field: "banner", Err: err})
		}
	}

	if !violations.Empty() {
		s.logger.Warn("document failed publishable check",
			"path", doc.FilePath,
			"violations", strings.Join(violations.Fields(), ","))
	}

	return doc, violations, nil
}

// mergeShapeViolations folds schema-level issues into the violation set. A
// wrong-typed field decodes to its zero value and shows up as missing, so the
// shape issue replaces that report; fields already flagged as invalid keep
// their field-level violation.
func mergeShapeViolations(violations document.Violations, raw map[string]any) document.Violations {
	for _, issue := range validation.CheckMetadataShape(raw) {
		shapeErr := &document.InvalidFieldValueError{Field: issue.Field, Reason: issue.Message}

		merged := false
		for i, existing := range violations {
			if existing.Field != issue.Field {
				continue
			}
			if errors.Is(existing.Err, document.ErrMissingField) {
				violations[i] = document.Violation{Field: issue.Field, Err: shapeErr}
			}
			merged = true
			break
		}
		if !merged {
			violations = append(violations, document.Violation{Field: issue.Field, Err: shapeErr})
		}
	}
	return violations
}

func (s *Service) renderDocument(ctx context.Context, doc *interfaces.Document, overrides interfaces.RenderOptions) error {
	if doc == nil {
		return nil
	}
	html, err := s.Render(ctx, doc.Body, overrides)
	if err != nil {
		return fmt.Errorf("render document %s: %w", doc.FilePath, err)
	}
	doc.BodyHTML = html
	return nil
}

func (s *Service) normalisePath(path string) string {
	if strings.TrimSpace(path) == "" {
		return "."
	}
	clean := filepath.Clean(path)
	if filepath.IsAbs(clean) && strings.TrimSpace(s.cfg.BasePath) != "" {
		if rel, err := filepath.Rel(s.cfg.BasePath, clean); err == nil {
			return filepath.ToSlash(rel)
		}
	}
	return filepath.ToSlash(clean)
}

func mergeRenderOptions(base, override interfaces.RenderOptions) interfaces.RenderOptions {
	result := base
	if len(override.Extensions) > 0 {
		result.Extensions = append([]string(nil), override.Extensions...)
	}
	if override.Sanitize {
		result.Sanitize = true
	}
	if override.HardWraps {
		result.HardWraps = true
	}
	if override.SafeMode {
		result.SafeMode = true
	}
	return result
}

func toLoaderParams(opts interfaces.LoadOptions) LoadParams {
	return LoadParams{
		Pattern:   opts.Pattern,
		Recursive: opts.Recursive,
	}
}

func prepareFilesystem(basePath string) (fs.FS, error) {
	if strings.TrimSpace(basePath) == "" {
		basePath = "."
	}
	if _, err := os.Stat(basePath); err != nil {
		return nil, fmt.Errorf("document service: stat base path %s: %w", basePath, err)
	}
	return os.DirFS(basePath), nil
}
