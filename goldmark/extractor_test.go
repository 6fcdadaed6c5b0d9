package goldmark_test

import (
	"testing"

	"github.com/fwojciec/doctldr"
	"github.com/fwojciec/doctldr/goldmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements doctldr.Extractor at compile time.
var _ doctldr.Extractor = (*goldmark.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("strips emphasis, keeps code span text", func(t *testing.T) {
		t.Parallel()

		e := goldmark.NewExtractor()
		got, err := e.Extract("**bold** and `code`")

		require.NoError(t, err)
		assert.Equal(t, "bold and code", got)
	})

	t.Run("strips heading markers", func(t *testing.T) {
		t.Parallel()

		e := goldmark.NewExtractor()
		got, err := e.Extract("# Getting Started")

		require.NoError(t, err)
		assert.Equal(t, "Getting Started", got)
	})

	t.Run("strips link syntax, keeps link text", func(t *testing.T) {
		t.Parallel()

		e := goldmark.NewExtractor()
		got, err := e.Extract("see [the docs](https://example.com) for details")

		require.NoError(t, err)
		assert.Equal(t, "see the docs for details", got)
	})

	t.Run("soft break becomes newline", func(t *testing.T) {
		t.Parallel()

		e := goldmark.NewExtractor()
		got, err := e.Extract("first line\nsecond line")

		require.NoError(t, err)
		assert.Equal(t, "first line\nsecond line", got)
	})

	t.Run("hard break becomes newline", func(t *testing.T) {
		t.Parallel()

		e := goldmark.NewExtractor()
		got, err := e.Extract("first line  \nsecond line")

		require.NoError(t, err)
		assert.Equal(t, "first line\nsecond line", got)
	})

	t.Run("keeps fenced code block content", func(t *testing.T) {
		t.Parallel()

		e := goldmark.NewExtractor()
		got, err := e.Extract("```go\nfunc main() {}\n```")

		require.NoError(t, err)
		assert.Contains(t, got, "func main() {}\n")
		assert.NotContains(t, got, "```")
	})

	t.Run("discards image syntax", func(t *testing.T) {
		t.Parallel()

		e := goldmark.NewExtractor()
		got, err := e.Extract("![alt text](image.png)")

		require.NoError(t, err)
		assert.NotContains(t, got, "image.png")
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		e := goldmark.NewExtractor()
		got, err := e.Extract("")

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
