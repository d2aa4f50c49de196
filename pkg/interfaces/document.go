package interfaces

import (
	"context"
	"time"
)

// DateLayout is the calendar-date layout required of the frontmatter date
// field. Publication dates carry no time component.
const DateLayout = "2006-01-02"

// Metadata models the frontmatter header attached to an article document.
// Every field except Custom is required before a document is considered
// publishable; enforcement lives in the document package so parsing stays
// permissive and authors see every problem at once.
type Metadata struct {
	Slug         string         `yaml:"slug" json:"slug"`
	Title        string         `yaml:"title" json:"title"`
	Date         string         `yaml:"date" json:"date"`
	Author       string         `yaml:"author" json:"author"`
	Description  string         `yaml:"description" json:"description"`
	Keywords     []string       `yaml:"keywords" json:"keywords"`
	Banner       string         `yaml:"banner" json:"banner"`
	BannerCredit string         `yaml:"bannerCredit" json:"bannerCredit"`
	Custom       map[string]any `yaml:",inline" json:"custom,omitempty"`
	// Raw preserves the decoded header as a flat map so shape validation and
	// preview tooling can inspect fields without re-parsing the source.
	Raw map[string]any `yaml:"-" json:"-"`
}

// PublishedAt parses the frontmatter date into a calendar timestamp.
func (m Metadata) PublishedAt() (time.Time, error) {
	return time.Parse(DateLayout, m.Date)
}

// Document represents an article file with parsed metadata and content. The
// struct is shared between the interfaces package and internal
// implementations so consumers can depend on a stable contract.
type Document struct {
	FilePath     string
	Metadata     Metadata
	Body         []byte
	BodyHTML     []byte
	LastModified time.Time
	// Checksum stores a digest of the original file content (SHA-256) so
	// callers can detect changes without re-reading unchanged files.
	Checksum []byte
}

// Renderer converts markdown body bytes into display-ready HTML. Rendering is
// a pure function of its input; implementations must be safe for reuse across
// goroutines.
type Renderer interface {
	// Render converts markdown into HTML using the renderer's defaults.
	Render(markdown []byte) ([]byte, error)
	// RenderWithOptions converts markdown into HTML using the supplied overrides.
	RenderWithOptions(markdown []byte, opts RenderOptions) ([]byte, error)
}

// RenderOptions customises body rendering, keeping option names readable for
// configuration unmarshalling and CLI flags.
type RenderOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// LoadOptions fine-tunes how documents are discovered and parsed from disk.
type LoadOptions struct {
	Recursive *bool
	Pattern   string
	Renderer  RenderOptions
}

// DocumentService exposes the file workflows for article documents: loading
// them from disk, rendering their bodies, and checking them for publishable
// state.
type DocumentService interface {
	Load(ctx context.Context, path string, opts LoadOptions) (*Document, error)
	LoadDirectory(ctx context.Context, dir string, opts LoadOptions) ([]*Document, error)
	Render(ctx context.Context, markdown []byte, opts RenderOptions) ([]byte, error)
	RenderDocument(ctx context.Context, doc *Document, opts RenderOptions) ([]byte, error)
}
