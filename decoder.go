package doctldr

// Decoder detects the character encoding of raw bytes and decodes them
// to a string.
type Decoder interface {
	// Decode returns the decoded text and the canonical name of the
	// detected encoding. It never fails: bytes that match no known
	// encoding are decoded lossily, substituting the Unicode
	// replacement character for invalid sequences.
	//
	// Detection is heuristic and order-dependent; a byte sequence valid
	// in multiple encodings resolves to whichever is tried first.
	Decode(data []byte) (text string, encoding string)
}
