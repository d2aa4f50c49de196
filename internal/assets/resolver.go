// Package assets resolves relative asset references (banner images) against
// the content filesystem. Resolution is a read-only existence check; missing
// assets surface as structured errors and are never retried here.
package assets

import (
	"io/fs"
	"path"
	"strings"

	"github.com/goliatone/go-article/document"
)

// Resolver checks that document-relative asset paths point at real files.
type Resolver struct {
	fs fs.FS
}

// NewResolver constructs a resolver over the supplied filesystem, typically
// the same fs.FS the document loader reads from.
func NewResolver(filesystem fs.FS) *Resolver {
	return &Resolver{fs: filesystem}
}

// Resolve normalises assetPath relative to the directory containing docPath
// and verifies the target exists. It returns the resolved slash path, or a
// *document.UnresolvableAssetError when the file is missing or the path
// escapes the content root.
func (r *Resolver) Resolve(docPath, assetPath string) (string, error) {
	trimmed := strings.TrimSpace(assetPath)
	if trimmed == "" {
		return "", &document.UnresolvableAssetError{Path: assetPath}
	}

	resolved := path.Join(path.Dir(path.Clean(docPath)), path.Clean(trimmed))
	if resolved == ".." || strings.HasPrefix(resolved, "../") {
		return "", &document.UnresolvableAssetError{Path: assetPath}
	}

	info, err := fs.Stat(r.fs, resolved)
	if err != nil {
		return "", &document.UnresolvableAssetError{Path: assetPath, Cause: err}
	}
	if info.IsDir() {
		return "", &document.UnresolvableAssetError{Path: assetPath}
	}

	return resolved, nil
}
