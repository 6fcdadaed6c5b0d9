// Package goquery renders HTML as wrapped plain text using goquery for
// tag stripping.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/doctldr"
	"github.com/mitchellh/go-wordwrap"
)

// lineWidth is the fixed column width for wrapped output.
const lineWidth = 80

// blockSelector matches the elements treated as text blocks. Container
// elements (div, blockquote with nested paragraphs, lists) are handled
// by skipping any match that itself contains a match.
const blockSelector = "h1, h2, h3, h4, h5, h6, p, li, pre, blockquote, dt, dd, td, th"

// Ensure Extractor implements doctldr.Extractor at compile time.
var _ doctldr.Extractor = (*Extractor)(nil)

// Extractor strips tags from HTML and renders the text wrapped at 80
// columns. Script and style content is dropped; pre blocks are kept
// verbatim; other blocks have their whitespace collapsed and are
// separated by blank lines.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract renders rawHTML as plain text.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript, head").Remove()

	var blocks []string
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		// Skip containers; their inner blocks are matched separately.
		if s.Find(blockSelector).Length() > 0 {
			return
		}
		if s.Is("pre") {
			if text := strings.TrimRight(s.Text(), "\n"); text != "" {
				blocks = append(blocks, text)
			}
			return
		}
		if text := collapse(s.Text()); text != "" {
			blocks = append(blocks, wordwrap.WrapString(text, lineWidth))
		}
	})

	// Markup without block elements (or none at all) falls back to the
	// full text content.
	if len(blocks) == 0 {
		if text := collapse(doc.Text()); text != "" {
			return wordwrap.WrapString(text, lineWidth), nil
		}
		return "", nil
	}

	return strings.Join(blocks, "\n\n"), nil
}

// collapse folds all whitespace runs into single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
