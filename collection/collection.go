// Package collection maintains the in-memory index that owns the
// slug-uniqueness invariant across article documents. Records are never
// deleted; a document is only superseded by a new revision under the same
// slug, and a published revision is read-only.
package collection

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-article/document"
	"github.com/goliatone/go-article/internal/logging"
	"github.com/goliatone/go-article/pkg/interfaces"
)

// Record is one revision of a document registered with the index.
type Record struct {
	ID          uuid.UUID
	Slug        string
	Version     int
	Document    *interfaces.Document
	Published   bool
	CreatedAt   time.Time
	PublishedAt *time.Time
}

// Index tracks document revisions keyed by slug. Safe for concurrent use.
type Index struct {
	mu      sync.RWMutex
	records map[string][]*Record
	logger  interfaces.Logger
	clock   func() time.Time
}

// Option customises index construction.
type Option func(*Index)

// WithLogger attaches a logger to the index.
func WithLogger(logger interfaces.Logger) Option {
	return func(idx *Index) {
		if logger != nil {
			idx.logger = logger
		}
	}
}

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) Option {
	return func(idx *Index) {
		if clock != nil {
			idx.clock = clock
		}
	}
}

// New constructs an empty index.
func New(opts ...Option) *Index {
	idx := &Index{
		records: map[string][]*Record{},
		logger:  logging.NoOp(),
		clock:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// Put registers a new document under its slug. A slug already present in the
// index is a conflict; use Supersede to publish a new revision of an existing
// document.
func (idx *Index) Put(doc *interfaces.Document) (*Record, error) {
	slug, err := checkSlug(doc)
	if err != nil {
		return nil, err
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, exists := idx.records[slug]; exists {
		return nil, &SlugExistsError{Slug: slug}
	}

	record := idx.appendRevision(slug, doc)
	idx.logger.Debug("document registered", "slug", slug, "version", record.Version)
	return record, nil
}

// Supersede appends a new revision for a slug the index already tracks.
// Prior revisions are retained and stay read-only.
func (idx *Index) Supersede(doc *interfaces.Document) (*Record, error) {
	slug, err := checkSlug(doc)
	if err != nil {
		return nil, err
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, exists := idx.records[slug]; !exists {
		return nil, &NotFoundError{Slug: slug}
	}

	record := idx.appendRevision(slug, doc)
	idx.logger.Debug("document superseded", "slug", slug, "version", record.Version)
	return record, nil
}

// Update replaces the document on the latest revision. Only unpublished
// revisions may be mutated; after publication the record is read-only and a
// new revision must supersede it.
func (idx *Index) Update(slug string, doc *interfaces.Document) (*Record, error) {
	if doc == nil {
		return nil, ErrDocumentRequired
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	record, err := idx.latest(slug)
	if err != nil {
		return nil, err
	}
	if record.Published {
		return nil, ErrRevisionPublished
	}

	record.Document = doc
	return record, nil
}

// Publish marks the latest revision read-only. Publishing an already
// published revision is a no-op.
func (idx *Index) Publish(slug string) (*Record, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	record, err := idx.latest(slug)
	if err != nil {
		return nil, err
	}
	if record.Published {
		return record, nil
	}

	now := idx.clock()
	record.Published = true
	record.PublishedAt = &now
	idx.logger.Info("document published", "slug", slug, "version", record.Version)
	return record, nil
}

// Get returns the latest revision registered for the slug.
func (idx *Index) Get(slug string) (*Record, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.latest(slug)
}

// History returns every revision for the slug, oldest first.
func (idx *Index) History(slug string) ([]*Record, error) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	revisions, exists := idx.records[slug]
	if !exists {
		return nil, &NotFoundError{Slug: slug}
	}
	return append([]*Record(nil), revisions...), nil
}

// Slugs returns every registered slug in lexical order.
func (idx *Index) Slugs() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make([]string, 0, len(idx.records))
	for slug := range idx.records {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}

// Len reports the number of distinct slugs in the index.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.records)
}

func (idx *Index) appendRevision(slug string, doc *interfaces.Document) *Record {
	revisions := idx.records[slug]
	record := &Record{
		ID:        uuid.New(),
		Slug:      slug,
		Version:   len(revisions) + 1,
		Document:  doc,
		CreatedAt: idx.clock(),
	}
	idx.records[slug] = append(revisions, record)
	return record
}

func (idx *Index) latest(slug string) (*Record, error) {
	revisions, exists := idx.records[slug]
	if !exists || len(revisions) == 0 {
		return nil, &NotFoundError{Slug: slug}
	}
	return revisions[len(revisions)-1], nil
}

func checkSlug(doc *interfaces.Document) (string, error) {
	if doc == nil {
		return "", ErrDocumentRequired
	}
	slug := doc.Metadata.Slug
	if slug == "" {
		return "", ErrSlugRequired
	}
	if !document.IsValidSlug(slug) {
		return "", ErrSlugInvalid
	}
	return slug, nil
}
