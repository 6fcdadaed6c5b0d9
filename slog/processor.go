package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/doctldr"
)

// Ensure Processor implements doctldr.Processor at compile time.
var _ doctldr.Processor = (*Processor)(nil)

// Processor wraps a doctldr.Processor with per-directory logging.
type Processor struct {
	next   doctldr.Processor
	logger *slog.Logger
}

// NewProcessor creates a logging Processor decorator.
func NewProcessor(next doctldr.Processor, logger *slog.Logger) *Processor {
	return &Processor{next: next, logger: logger}
}

// ProcessDirectory delegates to the wrapped processor and logs the
// document count and duration.
func (p *Processor) ProcessDirectory(ctx context.Context, dir string) ([]*doctldr.Document, error) {
	begin := time.Now()
	docs, err := p.next.ProcessDirectory(ctx, dir)
	if err != nil {
		p.logger.Error("directory processing failed",
			"dir", dir,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	p.logger.Info("processed directory",
		"dir", dir,
		"documents", len(docs),
		"duration", time.Since(begin),
	)
	return docs, nil
}
