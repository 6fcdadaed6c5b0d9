package output

import (
	"fmt"
	"strings"

	"github.com/fwojciec/doctldr"
)

// Ensure MarkdownFormatter implements doctldr.Formatter at compile time.
var _ doctldr.Formatter = (*MarkdownFormatter)(nil)

// MarkdownFormatter renders each summary as a heading plus body with a
// horizontal-rule separator.
type MarkdownFormatter struct {
	// IncludeMetadata adds a compression-ratio annotation when the
	// summary is smaller than the original.
	IncludeMetadata bool
}

// Format renders summaries as markdown.
func (f *MarkdownFormatter) Format(summaries []*doctldr.Summary) (string, error) {
	var b strings.Builder
	for _, s := range summaries {
		fmt.Fprintf(&b, "# Summary of %s\n\n", s.OriginalPath)
		b.WriteString(s.Summary)
		b.WriteString("\n\n---\n\n")

		if f.IncludeMetadata && s.Metadata.CompressionRatio < 1.0 {
			fmt.Fprintf(&b, "_Compressed to %.1f%% of original size_\n\n", s.Metadata.CompressionRatio*100)
		}
	}
	return b.String(), nil
}
