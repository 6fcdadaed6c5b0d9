package walk

import (
	"regexp"
	"strings"
)

// Glob is a compiled shell-style glob pattern. `*` matches any sequence
// of characters (including path separators), `?` matches any single
// character, and everything else is literal. Matching is
// case-insensitive and anchored at both ends: the pattern must match
// the entire string, not a substring.
type Glob struct {
	re *regexp.Regexp
}

// CompileGlob compiles a glob pattern into a matcher. A pattern that
// fails to compile yields a matcher that never matches; it does not
// panic. This is a fail-safe, not fail-open: an invalid exclude pattern
// excludes nothing, an invalid include pattern includes nothing.
func CompileGlob(pattern string) *Glob {
	re, err := regexp.Compile(translate(pattern))
	if err != nil {
		return &Glob{}
	}
	return &Glob{re: re}
}

// Match reports whether s matches the pattern.
func (g *Glob) Match(s string) bool {
	if g.re == nil {
		return false
	}
	return g.re.MatchString(s)
}

// translate converts a glob pattern into an anchored, case-insensitive
// regular expression.
func translate(pattern string) string {
	var b strings.Builder
	b.WriteString(`(?i)^`)
	for _, c := range pattern {
		switch c {
		case '*':
			b.WriteString(`.*`)
		case '?':
			b.WriteByte('.')
		case '.', '\\', '+', '(', ')', '[', ']', '{', '}', '|', '^', '$':
			b.WriteByte('\\')
			b.WriteRune(c)
		default:
			b.WriteRune(c)
		}
	}
	b.WriteByte('$')
	return b.String()
}
