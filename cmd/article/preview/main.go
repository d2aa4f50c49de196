package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-article/cmd/article/internal/bootstrap"
	"github.com/goliatone/go-article/pkg/interfaces"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	var (
		contentDir = flag.String("content-dir", "content", "Path to the article content root")
		pattern    = flag.String("pattern", "*.md", "Glob pattern applied when discovering article files")
		filePath   = flag.String("file", "", "Article file to preview (relative to the content root)")
		renderHTML = flag.Bool("render-html", true, "Render the markdown body into HTML as part of the preview")
	)

	flag.Parse()

	if *filePath == "" {
		log.Fatalf("--file is required")
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir: *contentDir,
		Pattern:    *pattern,
		Recursive:  true,
	})
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}

	ctx := context.Background()

	doc, err := module.Service.Load(ctx, *filePath, interfaces.LoadOptions{})
	if err != nil {
		log.Fatalf("load article document: %v", err)
	}

	fmt.Fprintf(os.Stdout, "Path: %s\nSlug: %s\nChecksum: %x\n\n", doc.FilePath, doc.Metadata.Slug, doc.Checksum)

	if doc.Metadata.Raw != nil {
		header, err := json.MarshalIndent(doc.Metadata.Raw, "", "  ")
		if err == nil {
			fmt.Fprintf(os.Stdout, "Frontmatter:\n%s\n\n", header)
		}
	}

	if *renderHTML {
		fmt.Fprintf(os.Stdout, "Rendered HTML:\n%s\n", string(doc.BodyHTML))
	} else {
		fmt.Fprintf(os.Stdout, "Markdown Body:\n%s\n", string(doc.Body))
	}
}
