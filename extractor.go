package doctldr

// Extractor converts decoded markup text into normalized plain text.
type Extractor interface {
	// Extract strips markup from text and returns the plain text
	// content. Inline code and line breaks are preserved; all other
	// formatting semantics are deliberately lost.
	Extract(text string) (string, error)
}

// Ensure Passthrough implements Extractor at compile time.
var _ Extractor = (*Passthrough)(nil)

// Passthrough is an identity Extractor. It serves plain text files and
// reStructuredText, for which no real conversion is implemented.
type Passthrough struct{}

// Extract returns text unchanged.
func (p *Passthrough) Extract(text string) (string, error) {
	return text, nil
}

// ExtractorRegistry maps document formats to extractors and falls back
// to a passthrough extractor for unregistered formats.
type ExtractorRegistry interface {
	// Get returns the extractor for a format, or the fallback if none
	// is registered.
	Get(format Format) Extractor

	// Register adds an extractor for a format. An already registered
	// extractor is replaced.
	Register(format Format, extractor Extractor)

	// List returns all registered formats.
	List() []Format
}

// Ensure Registry implements ExtractorRegistry at compile time.
var _ ExtractorRegistry = (*Registry)(nil)

// Registry is the standard ExtractorRegistry implementation.
type Registry struct {
	fallback   Extractor
	extractors map[Format]Extractor
}

// NewRegistry creates a Registry with the given fallback extractor.
func NewRegistry(fallback Extractor) *Registry {
	return &Registry{
		fallback:   fallback,
		extractors: make(map[Format]Extractor),
	}
}

// Get returns the extractor registered for format, falling back to the
// registry's fallback extractor.
func (r *Registry) Get(format Format) Extractor {
	if e, ok := r.extractors[format]; ok {
		return e
	}
	return r.fallback
}

// Register adds an extractor for a format.
func (r *Registry) Register(format Format, extractor Extractor) {
	r.extractors[format] = extractor
}

// List returns all registered formats.
func (r *Registry) List() []Format {
	formats := make([]Format, 0, len(r.extractors))
	for f := range r.extractors {
		formats = append(formats, f)
	}
	return formats
}
