package output_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/fwojciec/doctldr"
	"github.com/fwojciec/doctldr/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSummaries() []*doctldr.Summary {
	return []*doctldr.Summary{
		{
			OriginalPath: "docs/a.md",
			Summary:      "Summary of A.",
			Metadata: doctldr.SummaryMetadata{
				OriginalSize:     100,
				SummarySize:      13,
				CompressionRatio: 0.13,
			},
		},
		{
			OriginalPath: "docs/b.txt",
			Summary:      "Summary of B.",
			Metadata: doctldr.SummaryMetadata{
				OriginalSize:     10,
				SummarySize:      13,
				CompressionRatio: 1.3,
			},
		},
	}
}

func TestNewFormatter(t *testing.T) {
	t.Parallel()

	t.Run("recognizes format aliases", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"md", "markdown", "json", "txt", "text", "MD", "JSON"} {
			f, err := output.NewFormatter(name, false)
			require.NoError(t, err, name)
			assert.NotNil(t, f, name)
		}
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		t.Parallel()

		_, err := output.NewFormatter("xml", false)

		require.Error(t, err)
		assert.Equal(t, doctldr.EINVALID, doctldr.ErrorCode(err))
	})
}

func TestMarkdownFormatter_Format(t *testing.T) {
	t.Parallel()

	t.Run("renders heading, body and separator", func(t *testing.T) {
		t.Parallel()

		f := &output.MarkdownFormatter{}
		got, err := f.Format(testSummaries())

		require.NoError(t, err)
		assert.Contains(t, got, "# Summary of docs/a.md")
		assert.Contains(t, got, "Summary of A.")
		assert.Contains(t, got, "\n---\n")
	})

	t.Run("annotates compression when metadata enabled and ratio below one", func(t *testing.T) {
		t.Parallel()

		f := &output.MarkdownFormatter{IncludeMetadata: true}
		got, err := f.Format(testSummaries())

		require.NoError(t, err)
		// a.md compressed to 13%; b.txt grew, so no annotation for it.
		assert.Contains(t, got, "_Compressed to 13.0% of original size_")
		assert.Equal(t, 1, strings.Count(got, "_Compressed to"))
	})

	t.Run("omits annotation when metadata disabled", func(t *testing.T) {
		t.Parallel()

		f := &output.MarkdownFormatter{IncludeMetadata: false}
		got, err := f.Format(testSummaries())

		require.NoError(t, err)
		assert.NotContains(t, got, "_Compressed to")
	})
}

func TestJSONFormatter_Format(t *testing.T) {
	t.Parallel()

	t.Run("produces a parseable array", func(t *testing.T) {
		t.Parallel()

		f := &output.JSONFormatter{}
		got, err := f.Format(testSummaries())

		require.NoError(t, err)

		var parsed []struct {
			OriginalPath string `json:"original_path"`
			Summary      string `json:"summary"`
			Metadata     struct {
				OriginalSize     int     `json:"original_size"`
				SummarySize      int     `json:"summary_size"`
				CompressionRatio float64 `json:"compression_ratio"`
			} `json:"metadata"`
		}
		require.NoError(t, json.Unmarshal([]byte(got), &parsed))
		require.Len(t, parsed, 2)
		for _, p := range parsed {
			assert.NotEmpty(t, p.OriginalPath)
			assert.NotEmpty(t, p.Summary)
		}
	})

	t.Run("empty input is an empty array", func(t *testing.T) {
		t.Parallel()

		f := &output.JSONFormatter{}
		got, err := f.Format(nil)

		require.NoError(t, err)
		assert.Equal(t, "[]", got)
	})
}

func TestTextFormatter_Format(t *testing.T) {
	t.Parallel()

	f := &output.TextFormatter{}
	got, err := f.Format(testSummaries())

	require.NoError(t, err)
	assert.Contains(t, got, "=== docs/a.md ===\n\nSummary of A.")
	assert.Contains(t, got, "=== docs/b.txt ===\n\nSummary of B.")
}
