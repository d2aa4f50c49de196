package markdown

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-article/document"
	"github.com/goliatone/go-article/pkg/interfaces"
)

func TestParseFrontMatter(t *testing.T) {
	data := readFixture(t, "testdata/basic.md")

	meta, body, err := ParseFrontMatter(data)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if meta.Slug != "sample-article" {
		t.Fatalf("Metadata Slug mismatch, got %q", meta.Slug)
	}
	if meta.Title != "Sample Article" {
		t.Fatalf("Metadata Title mismatch, got %q", meta.Title)
	}
	if meta.Date != "2020-11-13" {
		t.Fatalf("Metadata Date mismatch, got %q", meta.Date)
	}
	if len(meta.Keywords) != 2 || meta.Keywords[0] != "react" {
		t.Fatalf("Metadata Keywords mismatch: %#v", meta.Keywords)
	}
	if meta.Banner != "./images/banner.jpg" {
		t.Fatalf("Metadata Banner mismatch, got %q", meta.Banner)
	}
	if meta.Custom["custom_flag"] != true {
		t.Fatalf("Metadata Custom flag missing: %#v", meta.Custom)
	}
	if meta.Raw["author"] != "A. Writer" {
		t.Fatalf("Metadata Raw author missing: %#v", meta.Raw)
	}
	if len(body) == 0 || !strings.Contains(string(body), "# Sample Article") {
		t.Fatalf("markdown body not returned correctly: %q", string(body))
	}
}

func TestParseFrontMatter_Malformed(t *testing.T) {
	input := []byte("---\ntitle: [unclosed\n---\nbody\n")

	_, _, err := ParseFrontMatter(input)
	if err == nil {
		t.Fatal("expected malformed block error")
	}
	if !errors.Is(err, document.ErrMalformedBlock) {
		t.Fatalf("expected ErrMalformedBlock, got %v", err)
	}
}

func TestParseFrontMatter_MissingFieldsAreNotAnError(t *testing.T) {
	input := []byte("---\ntitle: Only A Title\n---\nbody\n")

	meta, body, err := ParseFrontMatter(input)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if meta.Title != "Only A Title" {
		t.Fatalf("expected title to be decoded, got %q", meta.Title)
	}
	if meta.Slug != "" {
		t.Fatalf("expected empty slug, got %q", meta.Slug)
	}
	if strings.TrimSpace(string(body)) != "body" {
		t.Fatalf("unexpected body: %q", string(body))
	}
}

func TestParseFrontMatter_NestedCustomValues(t *testing.T) {
	input := []byte(`---
slug: nested-extras
title: Nested Extras
extra:
  credit: Someone
  tags:
    - one
    - two
---
body
`)

	meta, _, err := ParseFrontMatter(input)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	extra, ok := meta.Custom["extra"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested custom map, got %T", meta.Custom["extra"])
	}
	if extra["credit"] != "Someone" {
		t.Fatalf("expected nested credit value, got %#v", extra["credit"])
	}
	tags, ok := extra["tags"].([]any)
	if !ok || len(tags) != 2 || tags[0] != "one" {
		t.Fatalf("expected nested tags list, got %#v", extra["tags"])
	}
	if _, ok := meta.Raw["extra"].(map[string]any); !ok {
		t.Fatalf("expected raw header to carry normalised nested map, got %T", meta.Raw["extra"])
	}
}

func TestParseFrontMatter_UnquotedDateStaysString(t *testing.T) {
	input := []byte("---\ntitle: Dated\ndate: 2020-11-13\n---\nbody\n")

	meta, _, err := ParseFrontMatter(input)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if meta.Date != "2020-11-13" {
		t.Fatalf("expected unquoted date to decode as string, got %q", meta.Date)
	}
	if meta.Raw["date"] != "2020-11-13" {
		t.Fatalf("expected raw date to stay a string, got %#v", meta.Raw["date"])
	}
}

func TestParseFrontMatter_WrongTypedFieldIsNotMalformed(t *testing.T) {
	input := []byte("---\ntitle: Scalar Keywords\nkeywords: react\n---\nbody\n")

	meta, _, err := ParseFrontMatter(input)
	if err != nil {
		t.Fatalf("expected wrong-typed field to parse, got %v", err)
	}
	if meta.Keywords != nil {
		t.Fatalf("expected keywords to stay unset, got %#v", meta.Keywords)
	}
	if meta.Raw["keywords"] != "react" {
		t.Fatalf("expected raw header to keep the scalar, got %#v", meta.Raw["keywords"])
	}
}

func TestBuildDocument(t *testing.T) {
	data := readFixture(t, "testdata/basic.md")
	modified := time.Now().UTC()

	doc, err := BuildDocument("testdata/basic.md", data, modified)
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}

	if doc.FilePath != "testdata/basic.md" {
		t.Fatalf("expected FilePath to be set, got %q", doc.FilePath)
	}
	if doc.LastModified != modified {
		t.Fatalf("expected LastModified to equal the provided timestamp")
	}
	if len(doc.Body) == 0 {
		t.Fatalf("expected Body to contain markdown content")
	}
}

func TestGoldmarkRenderer_Render(t *testing.T) {
	renderer := NewGoldmarkRenderer(interfaces.RenderOptions{})

	html, err := renderer.Render([]byte("# Heading\n\nHello **world**"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	got := string(html)
	if !strings.Contains(got, "<h1") || !strings.Contains(got, "Heading</h1>") {
		t.Fatalf("expected rendered HTML to include <h1>Heading</h1>, got %q", got)
	}
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Fatalf("expected rendered HTML to include <strong>, got %q", got)
	}
}

func TestGoldmarkRenderer_FencedCode(t *testing.T) {
	renderer := NewGoldmarkRenderer(interfaces.RenderOptions{})

	html, err := renderer.Render([]byte("```js\nconsole.log('hi')\n```\n"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	got := string(html)
	if !strings.Contains(got, "<pre><code class=\"language-js\">") {
		t.Fatalf("expected language-annotated code block, got %q", got)
	}
}

func TestGoldmarkRenderer_RenderWithOptions(t *testing.T) {
	renderer := NewGoldmarkRenderer(interfaces.RenderOptions{})

	html, err := renderer.RenderWithOptions([]byte("line one\nline two"), interfaces.RenderOptions{
		HardWraps: true,
	})
	if err != nil {
		t.Fatalf("RenderWithOptions: %v", err)
	}

	if !strings.Contains(string(html), "line one<br>") {
		t.Fatalf("expected hard wraps in HTML output, got %q", string(html))
	}
}

func TestGoldmarkRenderer_Deterministic(t *testing.T) {
	renderer := NewGoldmarkRenderer(interfaces.RenderOptions{})
	input := []byte("# Title\n\nSome *body* text.")

	first, err := renderer.Render(input)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := renderer.Render(input)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if string(first) != string(second) {
		t.Fatalf("expected identical output for identical input")
	}
}

func TestGoldmarkRenderer_IdempotentOnRenderedHTML(t *testing.T) {
	renderer := NewGoldmarkRenderer(interfaces.RenderOptions{})

	first, err := renderer.Render([]byte("Hello **world**"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	second, err := renderer.Render(first)
	if err != nil {
		t.Fatalf("Render rendered output: %v", err)
	}

	// Raw HTML passes through untouched, so re-rendering is a no-op apart
	// from the trailing newline normalisation.
	if !strings.Contains(string(second), "<strong>world</strong>") {
		t.Fatalf("expected rendered HTML to survive re-rendering, got %q", string(second))
	}
}

func readFixture(tb testing.TB, path string) []byte {
	tb.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("read fixture %s: %v", path, err)
	}
	return data
}
