package document

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformedBlock    = errors.New("document: frontmatter block is malformed")
	ErrMissingField      = errors.New("document: required field is missing")
	ErrInvalidFieldValue = errors.New("document: field value is invalid")
	ErrUnresolvableAsset = errors.New("document: asset path does not resolve")
)

// MalformedBlockError captures structural frontmatter failures where the
// header could not be decoded at all.
type MalformedBlockError struct {
	Path  string
	Cause error
}

func (e *MalformedBlockError) Error() string {
	if e == nil {
		return ErrMalformedBlock.Error()
	}
	path := strings.TrimSpace(e.Path)
	switch {
	case path != "" && e.Cause != nil:
		return fmt.Sprintf("%s: path=%s: %v", ErrMalformedBlock.Error(), path, e.Cause)
	case path != "":
		return fmt.Sprintf("%s: path=%s", ErrMalformedBlock.Error(), path)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", ErrMalformedBlock.Error(), e.Cause)
	}
	return ErrMalformedBlock.Error()
}

func (e *MalformedBlockError) Unwrap() error {
	return ErrMalformedBlock
}

// MissingFieldError reports a required frontmatter field that is absent or empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	if e == nil {
		return ErrMissingField.Error()
	}
	field := strings.TrimSpace(e.Field)
	if field != "" {
		return fmt.Sprintf("%s: field=%s", ErrMissingField.Error(), field)
	}
	return ErrMissingField.Error()
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// InvalidFieldValueError reports a field that is present but fails its format
// constraint, such as a non-ISO-8601 date.
type InvalidFieldValueError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldValueError) Error() string {
	if e == nil {
		return ErrInvalidFieldValue.Error()
	}
	field := strings.TrimSpace(e.Field)
	reason := strings.TrimSpace(e.Reason)
	switch {
	case field != "" && reason != "":
		return fmt.Sprintf("%s: field=%s: %s", ErrInvalidFieldValue.Error(), field, reason)
	case field != "":
		return fmt.Sprintf("%s: field=%s", ErrInvalidFieldValue.Error(), field)
	}
	return ErrInvalidFieldValue.Error()
}

func (e *InvalidFieldValueError) Unwrap() error {
	return ErrInvalidFieldValue
}

// UnresolvableAssetError reports a banner path that does not resolve to an
// existing file. Retry or recovery policy belongs to the caller.
type UnresolvableAssetError struct {
	Path  string
	Cause error
}

func (e *UnresolvableAssetError) Error() string {
	if e == nil {
		return ErrUnresolvableAsset.Error()
	}
	path := strings.TrimSpace(e.Path)
	if path != "" {
		return fmt.Sprintf("%s: path=%s", ErrUnresolvableAsset.Error(), path)
	}
	return ErrUnresolvableAsset.Error()
}

func (e *UnresolvableAssetError) Unwrap() error {
	return ErrUnresolvableAsset
}
