package doctldr

import "context"

// Summarizer produces a condensed summary of document content.
type Summarizer interface {
	// Summarize returns a summary of content. Implementations are
	// latency-bound and fallible; there is no retry or backoff.
	Summarize(ctx context.Context, content string) (string, error)
}
