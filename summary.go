package doctldr

// Summary pairs a document with its generated summary and size metrics.
type Summary struct {
	OriginalPath string          `json:"original_path"`
	Summary      string          `json:"summary"`
	Metadata     SummaryMetadata `json:"metadata"`
}

// SummaryMetadata records how much the summarization compressed the
// original decoded content.
type SummaryMetadata struct {
	OriginalSize     int     `json:"original_size"`
	SummarySize      int     `json:"summary_size"`
	CompressionRatio float64 `json:"compression_ratio"`
}

// NewSummary builds a Summary for a document. The compression ratio is
// the summary byte length divided by the original decoded content byte
// length.
func NewSummary(doc *Document, text string) *Summary {
	ratio := 0.0
	if doc.Metadata.FileSize > 0 {
		ratio = float64(len(text)) / float64(doc.Metadata.FileSize)
	}
	return &Summary{
		OriginalPath: doc.Path,
		Summary:      text,
		Metadata: SummaryMetadata{
			OriginalSize:     doc.Metadata.FileSize,
			SummarySize:      len(text),
			CompressionRatio: ratio,
		},
	}
}

// Formatter renders a sequence of summaries into a single output string.
// The renderer is selected once at startup based on the configured
// output format.
type Formatter interface {
	Format(summaries []*Summary) (string, error)
}
