// Package slog provides logging decorators for pipeline interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/doctldr"
)

// Ensure Summarizer implements doctldr.Summarizer at compile time.
var _ doctldr.Summarizer = (*Summarizer)(nil)

// Summarizer wraps a doctldr.Summarizer with request logging.
type Summarizer struct {
	next   doctldr.Summarizer
	logger *slog.Logger
}

// NewSummarizer creates a logging Summarizer decorator.
func NewSummarizer(next doctldr.Summarizer, logger *slog.Logger) *Summarizer {
	return &Summarizer{next: next, logger: logger}
}

// Summarize delegates to the wrapped summarizer and logs the call.
func (s *Summarizer) Summarize(ctx context.Context, content string) (string, error) {
	begin := time.Now()
	summary, err := s.next.Summarize(ctx, content)
	if err != nil {
		s.logger.Error("summarization failed",
			"content_bytes", len(content),
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}
	s.logger.Info("summarized document",
		"content_bytes", len(content),
		"summary_bytes", len(summary),
		"duration", time.Since(begin),
	)
	return summary, nil
}
