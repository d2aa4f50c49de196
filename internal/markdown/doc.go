// Package markdown implements the filesystem-backed document service:
// frontmatter extraction, body rendering, and discovery of article files.
package markdown
