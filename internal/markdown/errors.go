package markdown

import (
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-article/document"
)

const validationFailedCode = "ARTICLE_VALIDATION_FAILED"

// WrapViolations folds a violation set into a categorised error for callers
// that propagate failures instead of rendering them, such as CLI exits.
func WrapViolations(violations document.Violations) error {
	if violations.Empty() {
		return nil
	}
	err := violations.ErrOrNil()
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "document validation failed").
		WithTextCode(validationFailedCode)
}

// IsValidationError reports whether err originated from a publishable check.
func IsValidationError(err error) bool {
	return goerrors.IsCategory(err, goerrors.CategoryValidation)
}
