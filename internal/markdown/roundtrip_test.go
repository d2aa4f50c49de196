package markdown

import (
	"reflect"
	"strings"
	"testing"

	"github.com/goliatone/go-article/document"
)

func TestFrontMatterRoundTrip(t *testing.T) {
	data := readFixture(t, "testdata/basic.md")

	meta, body, err := ParseFrontMatter(data)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	serialized, err := document.MarshalFrontMatter(meta, body)
	if err != nil {
		t.Fatalf("MarshalFrontMatter: %v", err)
	}

	reparsed, rebody, err := ParseFrontMatter(serialized)
	if err != nil {
		t.Fatalf("re-parse serialized document: %v", err)
	}

	if !reflect.DeepEqual(meta, reparsed) {
		t.Fatalf("round-trip record mismatch:\n first: %#v\nsecond: %#v", meta, reparsed)
	}
	if strings.TrimSpace(string(body)) != strings.TrimSpace(string(rebody)) {
		t.Fatalf("round-trip body mismatch:\n first: %q\nsecond: %q", string(body), string(rebody))
	}
}

func TestMarshalFrontMatter_EmptyBody(t *testing.T) {
	meta, _, err := ParseFrontMatter(readFixture(t, "testdata/basic.md"))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	serialized, err := document.MarshalFrontMatter(meta, nil)
	if err != nil {
		t.Fatalf("MarshalFrontMatter: %v", err)
	}

	if !strings.HasPrefix(string(serialized), "---\n") {
		t.Fatalf("expected frontmatter delimiter prefix, got %q", string(serialized)[:16])
	}

	reparsed, body, err := ParseFrontMatter(serialized)
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if reparsed.Slug != meta.Slug {
		t.Fatalf("slug mismatch after round-trip: %q vs %q", reparsed.Slug, meta.Slug)
	}
	if len(body) != 0 {
		t.Fatalf("expected empty body, got %q", string(body))
	}
}
