package mock

import "github.com/fwojciec/doctldr"

var _ doctldr.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of doctldr.Extractor.
type Extractor struct {
	ExtractFn func(text string) (string, error)
}

func (e *Extractor) Extract(text string) (string, error) {
	return e.ExtractFn(text)
}
