package mock

import "github.com/fwojciec/doctldr"

var _ doctldr.Decoder = (*Decoder)(nil)

// Decoder is a mock implementation of doctldr.Decoder.
type Decoder struct {
	DecodeFn func(data []byte) (string, string)
}

func (d *Decoder) Decode(data []byte) (string, string) {
	return d.DecodeFn(data)
}
