package document

import (
	"fmt"
	"path"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-article/pkg/interfaces"
)

// Violation pairs a frontmatter field with the constraint it failed. Err is
// always a *MissingFieldError or *InvalidFieldValueError so callers can
// branch on the error taxonomy with errors.Is.
type Violation struct {
	Field string
	Err   error
}

// Violations collects every field-level problem found in a metadata block.
// Validation never fails fast; the author sees all problems at once.
type Violations []Violation

// Empty reports whether the metadata passed every field constraint.
func (v Violations) Empty() bool {
	return len(v) == 0
}

// Fields returns the violated field names in validation order.
func (v Violations) Fields() []string {
	out := make([]string, 0, len(v))
	for _, violation := range v {
		out = append(out, violation.Field)
	}
	return out
}

// ByField returns the violation recorded for the named field, or nil.
func (v Violations) ByField(name string) error {
	for _, violation := range v {
		if violation.Field == name {
			return violation.Err
		}
	}
	return nil
}

// ErrOrNil folds the set into a single error value for callers that only
// need pass/fail semantics.
func (v Violations) ErrOrNil() error {
	if len(v) == 0 {
		return nil
	}
	parts := make([]string, 0, len(v))
	for _, violation := range v {
		parts = append(parts, violation.Err.Error())
	}
	return fmt.Errorf("document: %d violation(s): %s", len(v), strings.Join(parts, "; "))
}

// fieldOrder pins the order violations are reported in, matching the
// frontmatter schema.
var fieldOrder = []string{
	"slug",
	"title",
	"date",
	"author",
	"description",
	"keywords",
	"banner",
	"bannerCredit",
}

// Validate checks every field-level constraint on the metadata block and
// returns the full violation set. Asset resolution is deliberately excluded;
// it requires filesystem access and lives with the assets resolver.
func Validate(meta interfaces.Metadata) Violations {
	err := validation.ValidateStruct(&meta,
		validation.Field(&meta.Slug, validation.Required, validation.By(checkSlug)),
		validation.Field(&meta.Title, validation.Required),
		validation.Field(&meta.Date, validation.Required, validation.Date(interfaces.DateLayout)),
		validation.Field(&meta.Author, validation.Required),
		validation.Field(&meta.Description, validation.Required),
		validation.Field(&meta.Keywords, validation.Required, validation.Each(validation.Required)),
		validation.Field(&meta.Banner, validation.Required, validation.By(checkRelativePath)),
		validation.Field(&meta.BannerCredit, validation.Required),
	)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validation.Errors)
	if !ok {
		return Violations{{Field: "", Err: &InvalidFieldValueError{Reason: err.Error()}}}
	}

	var out Violations
	for _, field := range fieldOrder {
		ferr, found := fieldErrs[field]
		if !found || ferr == nil {
			continue
		}
		out = append(out, Violation{Field: field, Err: classify(field, ferr)})
	}
	return out
}

func classify(field string, err error) error {
	if obj, ok := err.(validation.Error); ok {
		if obj.Code() == validation.ErrRequired.Code() {
			return &MissingFieldError{Field: field}
		}
	}
	return &InvalidFieldValueError{Field: field, Reason: err.Error()}
}

func checkSlug(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !IsValidSlug(s) {
		return fmt.Errorf("must be a URL-safe slug")
	}
	return nil
}

func checkRelativePath(value any) error {
	p, _ := value.(string)
	if p == "" {
		return nil
	}
	if strings.Contains(p, "://") {
		return fmt.Errorf("must be a relative path, not a URL")
	}
	if path.IsAbs(strings.ReplaceAll(p, "\\", "/")) {
		return fmt.Errorf("must be relative to the document")
	}
	return nil
}
