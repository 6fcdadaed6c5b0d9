// Package output renders summaries as markdown, JSON or plain text and
// writes the result to a file or standard output.
package output

import (
	"strings"

	"github.com/fwojciec/doctldr"
)

// NewFormatter selects a formatter by name. Recognized names are
// "md"/"markdown", "json" and "txt"/"text"; anything else is a startup
// error.
func NewFormatter(format string, includeMetadata bool) (doctldr.Formatter, error) {
	switch strings.ToLower(format) {
	case "md", "markdown":
		return &MarkdownFormatter{IncludeMetadata: includeMetadata}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "txt", "text":
		return &TextFormatter{}, nil
	default:
		return nil, doctldr.Errorf(doctldr.EINVALID, "unsupported output format: %s", format)
	}
}
