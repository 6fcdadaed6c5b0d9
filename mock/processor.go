package mock

import (
	"context"

	"github.com/fwojciec/doctldr"
)

var _ doctldr.Processor = (*Processor)(nil)

// Processor is a mock implementation of doctldr.Processor.
type Processor struct {
	ProcessDirectoryFn func(ctx context.Context, dir string) ([]*doctldr.Document, error)
}

func (p *Processor) ProcessDirectory(ctx context.Context, dir string) ([]*doctldr.Document, error) {
	return p.ProcessDirectoryFn(ctx, dir)
}
