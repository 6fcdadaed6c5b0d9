// Package walk implements document discovery: depth-bounded filesystem
// traversal, glob include/exclude filtering, decoding, extraction, and
// document assembly.
package walk

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/doctldr"
)

// DefaultMaxDepth bounds traversal when no depth is configured.
const DefaultMaxDepth = 5

// Ensure Processor implements doctldr.Processor at compile time.
var _ doctldr.Processor = (*Processor)(nil)

// Processor walks directory trees and assembles documents from the
// files that pass its filters. The pipeline is sequential: each file is
// fully read, decoded and extracted before the walker proceeds.
type Processor struct {
	// MaxDepth is the traversal depth ceiling. The root is depth 0; a
	// file directly inside a root is depth 1. Zero or negative values
	// fall back to DefaultMaxDepth.
	MaxDepth int

	// Decoder detects and decodes file encodings.
	Decoder doctldr.Decoder

	// Extractors selects the text extractor for each document format.
	Extractors doctldr.ExtractorRegistry

	// Logger receives per-file warnings. May be nil.
	Logger *slog.Logger

	include []*Glob
	exclude []*Glob
}

// NewProcessor creates a Processor from processing configuration.
func NewProcessor(cfg doctldr.ProcessingConfig, dec doctldr.Decoder, reg doctldr.ExtractorRegistry) *Processor {
	p := &Processor{
		MaxDepth:   cfg.MaxDepth,
		Decoder:    dec,
		Extractors: reg,
	}
	for _, pat := range cfg.IncludePatterns {
		p.include = append(p.include, CompileGlob(pat))
	}
	for _, pat := range cfg.ExcludePatterns {
		p.exclude = append(p.exclude, CompileGlob(pat))
	}
	return p
}

// ProcessDirectory walks dir and returns a document per accepted file.
//
// Filtering policy, per candidate: reject if not a regular file; reject
// if it matches any exclude pattern; accept iff it matches at least one
// include pattern. Exclude patterns are also checked against directory
// names so that a pattern like "node_modules" prunes the whole subtree.
// Hidden (dot-prefixed) entries are skipped.
//
// A file that cannot be read or extracted is logged as a warning and
// skipped; one bad file never aborts the traversal.
func (p *Processor) ProcessDirectory(ctx context.Context, dir string) ([]*doctldr.Document, error) {
	maxDepth := p.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	var docs []*doctldr.Document
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			p.warn("failed to access path", path, err)
			return nil
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}

		name := d.Name()
		depth := relDepth(dir, path)

		if d.IsDir() {
			if path != dir {
				if strings.HasPrefix(name, ".") {
					return filepath.SkipDir
				}
				if matchAny(p.exclude, name) {
					return filepath.SkipDir
				}
			}
			if depth >= maxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		slashPath := filepath.ToSlash(path)
		if matchAny(p.exclude, slashPath) || matchAny(p.exclude, name) {
			return nil
		}
		if !matchAny(p.include, slashPath) {
			return nil
		}

		doc, perr := p.processFile(path)
		if perr != nil {
			p.warn("failed to process file", path, perr)
			return nil
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return docs, nil
}

// processFile reads, decodes and extracts a single file. Metadata is
// computed from the decoded content before extraction, so FileSize
// reflects the decoded byte length rather than the on-disk size.
func (p *Processor) processFile(path string) (*doctldr.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	text, encName := p.Decoder.Decode(data)
	metadata := doctldr.Metadata{
		FileSize:  len(text),
		Encoding:  encName,
		LineCount: doctldr.CountLines(text),
	}

	format := doctldr.FormatFromPath(path)
	content, err := p.Extractors.Get(format).Extract(text)
	if err != nil {
		return nil, err
	}

	return &doctldr.Document{
		Path:     path,
		Content:  content,
		Format:   format,
		Metadata: metadata,
	}, nil
}

func (p *Processor) warn(msg, path string, err error) {
	if p.Logger == nil {
		return
	}
	p.Logger.Warn(msg, "path", path, "error", err)
}

// relDepth returns the number of path components between root and path.
func relDepth(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}

func matchAny(globs []*Glob, s string) bool {
	for _, g := range globs {
		if g.Match(s) {
			return true
		}
	}
	return false
}
