package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-article/document"
	"github.com/goliatone/go-article/pkg/interfaces"
)

// ParseFrontMatter extracts metadata and the markdown body from the provided
// source bytes. The header is decoded into a raw map first and typed fields
// are built from it, so a wrong-typed field (keywords given as a scalar)
// decodes to its zero value and is reported by shape validation instead of
// failing the whole header. A *document.MalformedBlockError is returned only
// when the header is not structurally valid YAML. Missing or empty fields are
// not an error here; field enforcement belongs to document.Validate so
// authors see every problem at once.
func ParseFrontMatter(source []byte) (interfaces.Metadata, []byte, error) {
	var header map[string]any

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &header)
	if err != nil {
		return interfaces.Metadata{}, nil, &document.MalformedBlockError{Cause: err}
	}

	return buildMetadata(normalizeMap(header)), body, nil
}

// BuildDocument assembles an interfaces.Document from the supplied file path,
// raw content, and modification time. BodyHTML is intentionally left empty so
// callers can render lazily.
func BuildDocument(path string, source []byte, modified time.Time) (*interfaces.Document, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		if mbe, ok := err.(*document.MalformedBlockError); ok {
			mbe.Path = path
		}
		return nil, err
	}

	return &interfaces.Document{
		FilePath:     path,
		Metadata:     meta,
		Body:         body,
		LastModified: modified,
	}, nil
}

// buildMetadata maps canonical header keys onto typed fields and routes
// everything else into Custom. Raw keeps the full normalised header.
func buildMetadata(raw map[string]any) interfaces.Metadata {
	meta := interfaces.Metadata{
		Custom: map[string]any{},
		Raw:    raw,
	}

	for key, value := range raw {
		switch key {
		case "slug":
			meta.Slug = stringField(value)
		case "title":
			meta.Title = stringField(value)
		case "date":
			meta.Date = stringField(value)
		case "author":
			meta.Author = stringField(value)
		case "description":
			meta.Description = stringField(value)
		case "keywords":
			meta.Keywords = stringListField(value)
		case "banner":
			meta.Banner = stringField(value)
		case "bannerCredit":
			meta.BannerCredit = stringField(value)
		default:
			meta.Custom[key] = value
		}
	}

	return meta
}

// stringField tolerates wrong-typed values; the zero value flows into field
// validation while the shape check names the type mismatch.
func stringField(value any) string {
	s, _ := value.(string)
	return s
}

func stringListField(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil
		}
		out = append(out, s)
	}
	return out
}

// normalizeMap converts the YAML decoder's map[interface{}]interface{}
// values into map[string]any recursively. Nested custom objects then survive
// JSON encoding during shape validation and round-trip serialization.
func normalizeMap(header map[string]any) map[string]any {
	out := make(map[string]any, len(header))
	for key, value := range header {
		out[key] = normalizeValue(value)
	}
	return out
}

func normalizeValue(value any) any {
	switch typed := value.(type) {
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, v := range typed {
			out[fmt.Sprint(k)] = normalizeValue(v)
		}
		return out
	case map[string]any:
		return normalizeMap(typed)
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, normalizeValue(item))
		}
		return out
	case time.Time:
		// Unquoted dates resolve to time.Time; the header contract keeps
		// dates as strings.
		if typed.Hour() == 0 && typed.Minute() == 0 && typed.Second() == 0 && typed.Nanosecond() == 0 {
			return typed.Format(interfaces.DateLayout)
		}
		return typed.Format(time.RFC3339)
	default:
		return value
	}
}
