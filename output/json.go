package output

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/doctldr"
)

// Ensure JSONFormatter implements doctldr.Formatter at compile time.
var _ doctldr.Formatter = (*JSONFormatter)(nil)

// JSONFormatter renders summaries as a pretty-printed JSON array.
type JSONFormatter struct{}

// Format renders summaries as JSON.
func (f *JSONFormatter) Format(summaries []*doctldr.Summary) (string, error) {
	if summaries == nil {
		summaries = []*doctldr.Summary{}
	}
	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize summaries: %w", err)
	}
	return string(data), nil
}
