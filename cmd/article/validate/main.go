package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-article/cmd/article/internal/bootstrap"
	"github.com/goliatone/go-article/internal/markdown"
	"github.com/goliatone/go-article/pkg/interfaces"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	var (
		contentDir = flag.String("content-dir", "content", "Path to the article content root")
		pattern    = flag.String("pattern", "*.md", "Glob pattern applied when discovering article files")
		filePath   = flag.String("file", "", "Single article file to check (relative to the content root)")
		recursive  = flag.Bool("recursive", true, "Traverse sub-directories when checking the content root")
	)

	flag.Parse()

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir: *contentDir,
		Pattern:    *pattern,
		Recursive:  *recursive,
	})
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}

	ctx := context.Background()

	paths := []string{}
	if *filePath != "" {
		paths = append(paths, *filePath)
	} else {
		// Enumerate without parsing so one malformed file cannot hide the
		// problems in every other document.
		listed, err := module.Service.List(ctx, ".", interfaces.LoadOptions{})
		if err != nil {
			log.Fatalf("discover article documents: %v", err)
		}
		paths = listed
	}

	failed := 0
	for _, path := range paths {
		doc, violations, err := module.Service.Check(ctx, path, interfaces.LoadOptions{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failed++
			continue
		}
		if violations.Empty() {
			fmt.Fprintf(os.Stdout, "%s: ok (slug=%s)\n", doc.FilePath, doc.Metadata.Slug)
			continue
		}
		failed++
		fmt.Fprintf(os.Stderr, "%s: %v\n", doc.FilePath, markdown.WrapViolations(violations))
		for _, violation := range violations {
			fmt.Fprintf(os.Stderr, "  - %v\n", violation.Err)
		}
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "\n%d of %d document(s) failed validation\n", failed, len(paths))
		os.Exit(1)
	}
}
