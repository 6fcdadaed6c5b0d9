package walk_test

import (
	"testing"

	"github.com/fwojciec/doctldr/walk"
	"github.com/stretchr/testify/assert"
)

func TestGlob_Match(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		input   string
		want    bool
	}{
		{"star matches extension", "*.md", "README.md", true},
		{"star crosses separators", "*.md", "docs/guide/intro.md", true},
		{"star rejects other extension", "*.md", "main.go", false},
		{"anchored, not substring", "*.md", "README.md.bak", false},
		{"question matches single char", "doc?.txt", "doc1.txt", true},
		{"question rejects two chars", "doc?.txt", "doc12.txt", false},
		{"literal exact match", "node_modules", "node_modules", true},
		{"literal is case-insensitive", "readme.MD", "README.md", true},
		{"literal rejects prefix", "node_modules", "node_modules_cache", false},
		{"literal rejects nested path", "node_modules", "src/node_modules", false},
		{"dot is escaped", "a.md", "aXmd", false},
		{"regex metacharacters are literal", "release(1).txt", "release(1).txt", true},
		{"plus is literal", "c++.md", "c++.md", true},
		{"empty pattern matches only empty string", "", "", true},
		{"empty pattern rejects non-empty", "", "x", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := walk.CompileGlob(tt.pattern)
			assert.Equal(t, tt.want, g.Match(tt.input))
		})
	}
}
