package validation

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// Issue captures a single shape-level problem in a frontmatter header, such
// as a keywords field declared as a scalar instead of a list.
type Issue struct {
	Field   string
	Message string
}

// metadataSchema pins the expected JSON types of the frontmatter header.
// Presence and format constraints live in the document package; this layer
// only catches type mismatches that field rules cannot express.
var metadataSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"slug":         map[string]any{"type": "string"},
		"title":        map[string]any{"type": "string"},
		"date":         map[string]any{"type": "string"},
		"author":       map[string]any{"type": "string"},
		"description":  map[string]any{"type": "string"},
		"keywords":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"banner":       map[string]any{"type": "string"},
		"bannerCredit": map[string]any{"type": "string"},
	},
	"additionalProperties": true,
}

var (
	compiledOnce sync.Once
	compiled     *jsonschema.Schema
	compileErr   error
)

// CheckMetadataShape validates the raw frontmatter map against the built-in
// metadata schema and returns one issue per offending field. A nil or empty
// map yields no issues; missing fields are the document package's concern.
func CheckMetadataShape(raw map[string]any) []Issue {
	if len(raw) == 0 {
		return nil
	}

	schema, err := compileMetadataSchema()
	if err != nil {
		return []Issue{{Message: err.Error()}}
	}

	payload, err := normalizePayload(raw)
	if err != nil {
		return []Issue{{Message: err.Error()}}
	}

	if err := schema.Validate(payload); err != nil {
		var validationErr *jsonschema.ValidationError
		if ok := asValidationError(err, &validationErr); ok {
			return collectIssues(validationErr)
		}
		return []Issue{{Message: err.Error()}}
	}
	return nil
}

func compileMetadataSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		encoded, err := json.Marshal(metadataSchema)
		if err != nil {
			compileErr = err
			return
		}
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("metadata.json", bytes.NewReader(encoded)); err != nil {
			compileErr = err
			return
		}
		compiled, compileErr = compiler.Compile("metadata.json")
	})
	return compiled, compileErr
}

// normalizePayload round-trips the raw map through JSON so typed values from
// the YAML decoder ([]string, int) become the generic types the schema
// validator expects.
func normalizePayload(raw map[string]any) (any, error) {
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var payload any
	if err := json.Unmarshal(encoded, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func asValidationError(err error, target **jsonschema.ValidationError) bool {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return false
	}
	*target = ve
	return true
}

func collectIssues(err *jsonschema.ValidationError) []Issue {
	if err == nil {
		return nil
	}
	issues := []Issue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, Issue{
				Field:   fieldFromLocation(node.InstanceLocation),
				Message: strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}

// fieldFromLocation maps a JSON pointer like "/keywords/2" to its top-level
// frontmatter field name.
func fieldFromLocation(location string) string {
	location = strings.TrimPrefix(strings.TrimSpace(location), "/")
	if location == "" {
		return ""
	}
	if idx := strings.IndexByte(location, '/'); idx >= 0 {
		location = location[:idx]
	}
	return location
}
