// Package charset detects character encodings and decodes raw file
// bytes to strings using golang.org/x/text.
package charset

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/doctldr"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

// Byte-order-marks recognized during detection.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// fallbacks are tried in order when the input is not valid UTF-8. Order
// matters: a byte sequence valid in more than one of these resolves to
// whichever comes first.
var fallbacks = []struct {
	name string
	enc  encoding.Encoding
}{
	{"windows-1252", charmap.Windows1252},
	{"macintosh", charmap.Macintosh},
	{"Shift_JIS", japanese.ShiftJIS},
}

// Ensure Decoder implements doctldr.Decoder at compile time.
var _ doctldr.Decoder = (*Decoder)(nil)

// Decoder implements doctldr.Decoder with a fixed priority chain:
// UTF-8 BOM, UTF-16 BOM, valid UTF-8, Windows-1252, Mac Roman,
// Shift-JIS, then lossy UTF-8.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode detects the encoding of data and returns the decoded text with
// the canonical encoding name. It never fails; as a last resort invalid
// UTF-8 sequences are replaced with the replacement character and the
// encoding is reported as UTF-8 even though the true source encoding
// was never identified.
func (d *Decoder) Decode(data []byte) (string, string) {
	if bytes.HasPrefix(data, bomUTF8) {
		text, _ := lossyUTF8(data[len(bomUTF8):])
		return text, "UTF-8"
	}

	// The BOM determines the byte order and is consumed; the reported
	// name is UTF-16LE for either order, matching the original tool.
	if bytes.HasPrefix(data, bomUTF16BE) || bytes.HasPrefix(data, bomUTF16LE) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		if text, err := dec.Bytes(data); err == nil {
			return string(text), "UTF-16LE"
		}
		return lossyUTF8(data)
	}

	if utf8.Valid(data) {
		return string(data), "UTF-8"
	}

	for _, fb := range fallbacks {
		if text, ok := decodeStrict(fb.enc, data); ok {
			return text, fb.name
		}
	}

	return lossyUTF8(data)
}

// decodeStrict decodes data with enc, rejecting the result if any byte
// had no mapping in the encoding. x/text decoders substitute U+FFFD for
// unmapped bytes instead of failing, so presence of the replacement
// character is the error signal.
func decodeStrict(enc encoding.Encoding, data []byte) (string, bool) {
	text, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	if bytes.ContainsRune(text, utf8.RuneError) {
		return "", false
	}
	return string(text), true
}

// lossyUTF8 decodes data as UTF-8, substituting the replacement
// character for invalid sequences.
func lossyUTF8(data []byte) (string, string) {
	return strings.ToValidUTF8(string(data), string(utf8.RuneError)), "UTF-8"
}
