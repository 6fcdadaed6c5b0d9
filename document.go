package doctldr

import (
	"context"
	"path/filepath"
	"strings"
)

// Format identifies the markup format of a source file. It is derived
// from the file extension once, at discovery time, and never re-derived.
type Format string

// Supported document formats.
const (
	FormatMarkdown         Format = "markdown"
	FormatRestructuredText Format = "restructuredtext"
	FormatHTML             Format = "html"
	FormatPlainText        Format = "plaintext"
)

// FormatFromPath infers a document format from the path's extension.
// Unknown extensions are treated as plain text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md":
		return FormatMarkdown
	case ".rst":
		return FormatRestructuredText
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatPlainText
	}
}

// Document represents a discovered documentation file with its extracted
// plain text content. Documents are immutable after assembly and owned by
// the caller that requested directory processing.
type Document struct {
	Path     string   `json:"path"`
	Content  string   `json:"content"`
	Format   Format   `json:"format"`
	Metadata Metadata `json:"metadata"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Path == "" {
		return Errorf(EINVALID, "document path required")
	}
	if d.Format == "" {
		return Errorf(EINVALID, "document format required")
	}
	return nil
}

// Metadata describes the decoded content of a document.
//
// FileSize is the byte length of the decoded content, not the original
// file's size on disk; decoding may change the byte count (e.g.
// UTF-16 to UTF-8).
type Metadata struct {
	FileSize  int    `json:"fileSize"`
	Encoding  string `json:"encoding"`
	LineCount int    `json:"lineCount"`
}

// CountLines returns the number of newline-delimited lines in s. A
// trailing newline does not produce a phantom empty line.
func CountLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}

// Processor discovers and assembles documents from a directory tree.
type Processor interface {
	// ProcessDirectory walks dir and returns a document for every file
	// that passes the include/exclude filters. A file that cannot be
	// read or extracted is skipped; it never aborts the traversal.
	ProcessDirectory(ctx context.Context, dir string) ([]*Document, error)
}
