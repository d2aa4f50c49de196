package article_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	article "github.com/goliatone/go-article"
	"github.com/goliatone/go-article/collection"
	"github.com/goliatone/go-article/pkg/interfaces"
)

func TestDefaultConfig(t *testing.T) {
	cfg := article.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
	if cfg.Content.Dir != "content" {
		t.Fatalf("unexpected content dir %q", cfg.Content.Dir)
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := article.DefaultConfig()
	cfg.Content.Dir = ""

	if _, err := article.New(cfg); !errors.Is(err, article.ErrContentDirRequired) {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}
}

func TestModule_EndToEnd(t *testing.T) {
	base := t.TempDir()
	writeFile(t, base, "hooks.md", `---
slug: lifecycle-hooks
title: Understanding Lifecycle Hooks
date: "2020-11-13"
author: A. Writer
description: When to reach for each hook.
keywords:
  - hooks
  - lifecycle
banner: ./images/banner.jpg
bannerCredit: Photo by Someone
---

# Understanding Lifecycle Hooks

Use the *mount* hook for setup and the *update* hook for reactions.
`)
	writeFile(t, base, "images/banner.jpg", "fake-image-bytes")

	cfg := article.DefaultConfig()
	cfg.Content.Dir = base
	cfg.Logging.Provider = "noop"

	module, err := article.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := context.Background()

	doc, violations, err := module.Documents().Check(ctx, "hooks.md", interfaces.LoadOptions{})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !violations.Empty() {
		t.Fatalf("expected publishable document, got %v", violations.Fields())
	}

	if _, err := module.Documents().RenderDocument(ctx, doc, interfaces.RenderOptions{}); err != nil {
		t.Fatalf("RenderDocument: %v", err)
	}
	if !strings.Contains(string(doc.BodyHTML), "<em>mount</em>") {
		t.Fatalf("expected emphasis in rendered body, got %q", string(doc.BodyHTML))
	}

	record, err := module.Collection().Put(doc)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if record.Version != 1 {
		t.Fatalf("expected version 1, got %d", record.Version)
	}

	if _, err := module.Collection().Put(doc); !errors.Is(err, collection.ErrSlugExists) {
		t.Fatalf("expected slug conflict, got %v", err)
	}

	published, err := module.Collection().Publish("lifecycle-hooks")
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !published.Published {
		t.Fatal("expected record to be published")
	}
}

func writeFile(t *testing.T, base, rel, content string) {
	t.Helper()
	path := filepath.Join(base, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
