package mock

import "github.com/fwojciec/doctldr"

var _ doctldr.Formatter = (*Formatter)(nil)

// Formatter is a mock implementation of doctldr.Formatter.
type Formatter struct {
	FormatFn func(summaries []*doctldr.Summary) (string, error)
}

func (f *Formatter) Format(summaries []*doctldr.Summary) (string, error) {
	return f.FormatFn(summaries)
}
