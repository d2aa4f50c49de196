package validation

import "testing"

func TestCheckMetadataShape_Valid(t *testing.T) {
	issues := CheckMetadataShape(map[string]any{
		"slug":         "foo",
		"title":        "Foo",
		"date":         "2020-11-13",
		"author":       "A",
		"description":  "d",
		"keywords":     []string{"a", "b"},
		"banner":       "./img.jpg",
		"bannerCredit": "c",
	})
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
}

func TestCheckMetadataShape_ScalarKeywords(t *testing.T) {
	issues := CheckMetadataShape(map[string]any{
		"keywords": "react",
	})
	if len(issues) == 0 {
		t.Fatal("expected issue for scalar keywords")
	}
	if issues[0].Field != "keywords" {
		t.Fatalf("expected keywords issue, got %q", issues[0].Field)
	}
}

func TestCheckMetadataShape_NumericTitle(t *testing.T) {
	issues := CheckMetadataShape(map[string]any{
		"title": 42,
	})
	if len(issues) == 0 {
		t.Fatal("expected issue for numeric title")
	}
	if issues[0].Field != "title" {
		t.Fatalf("expected title issue, got %q", issues[0].Field)
	}
}

func TestCheckMetadataShape_NestedKeywordEntry(t *testing.T) {
	issues := CheckMetadataShape(map[string]any{
		"keywords": []any{"ok", 7},
	})
	if len(issues) == 0 {
		t.Fatal("expected issue for non-string keyword entry")
	}
	if issues[0].Field != "keywords" {
		t.Fatalf("expected keywords issue, got %q", issues[0].Field)
	}
}

func TestCheckMetadataShape_NestedCustomObject(t *testing.T) {
	issues := CheckMetadataShape(map[string]any{
		"title": "Foo",
		"extra": map[string]any{
			"credit": "Someone",
			"tags":   []any{"one", "two"},
		},
	})
	if len(issues) != 0 {
		t.Fatalf("expected nested custom object to pass, got %v", issues)
	}
}

func TestCheckMetadataShape_ExtraFieldsAllowed(t *testing.T) {
	issues := CheckMetadataShape(map[string]any{
		"title":       "Foo",
		"custom_flag": true,
	})
	if len(issues) != 0 {
		t.Fatalf("expected extra fields to pass, got %v", issues)
	}
}

func TestCheckMetadataShape_EmptyMap(t *testing.T) {
	if issues := CheckMetadataShape(nil); issues != nil {
		t.Fatalf("expected nil issues for empty map, got %v", issues)
	}
}
