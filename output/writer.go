package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/doctldr"
)

// Writer renders summaries with its formatter and persists the result.
type Writer struct {
	Formatter doctldr.Formatter
}

// NewWriter creates a Writer around a formatter.
func NewWriter(formatter doctldr.Formatter) *Writer {
	return &Writer{Formatter: formatter}
}

// Write formats summaries and writes them to the file at path, or to
// stdout when path is empty. Write errors are fatal to the run.
func (w *Writer) Write(summaries []*doctldr.Summary, path string, stdout io.Writer) error {
	formatted, err := w.Formatter.Format(summaries)
	if err != nil {
		return err
	}

	if path == "" {
		_, err := fmt.Fprintln(stdout, formatted)
		return err
	}

	if err := os.WriteFile(path, []byte(formatted), 0644); err != nil {
		return fmt.Errorf("failed to write output to %q: %w", path, err)
	}
	return nil
}
