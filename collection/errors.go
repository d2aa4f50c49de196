package collection

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDocumentRequired  = errors.New("collection: document is required")
	ErrSlugRequired      = errors.New("collection: slug is required")
	ErrSlugInvalid       = errors.New("collection: slug contains invalid characters")
	ErrSlugExists        = errors.New("collection: slug already exists")
	ErrNotFound          = errors.New("collection: document not found")
	ErrRevisionPublished = errors.New("collection: published revision is read-only")
)

// SlugExistsError captures uniqueness conflicts when registering documents.
type SlugExistsError struct {
	Slug string
}

func (e *SlugExistsError) Error() string {
	if e == nil {
		return ErrSlugExists.Error()
	}
	slug := strings.TrimSpace(e.Slug)
	if slug != "" {
		return fmt.Sprintf("%s: slug=%s", ErrSlugExists.Error(), slug)
	}
	return ErrSlugExists.Error()
}

func (e *SlugExistsError) Unwrap() error {
	return ErrSlugExists
}

// NotFoundError captures lookups for slugs the index has never seen.
type NotFoundError struct {
	Slug string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ErrNotFound.Error()
	}
	slug := strings.TrimSpace(e.Slug)
	if slug != "" {
		return fmt.Sprintf("%s: slug=%s", ErrNotFound.Error(), slug)
	}
	return ErrNotFound.Error()
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
