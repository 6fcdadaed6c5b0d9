package output

import (
	"fmt"
	"strings"

	"github.com/fwojciec/doctldr"
)

// Ensure TextFormatter implements doctldr.Formatter at compile time.
var _ doctldr.Formatter = (*TextFormatter)(nil)

// TextFormatter renders each summary under a `=== path ===` header.
type TextFormatter struct{}

// Format renders summaries as plain text.
func (f *TextFormatter) Format(summaries []*doctldr.Summary) (string, error) {
	var b strings.Builder
	for _, s := range summaries {
		fmt.Fprintf(&b, "=== %s ===\n\n", s.OriginalPath)
		b.WriteString(s.Summary)
		b.WriteString("\n\n")
	}
	return b.String(), nil
}
