// Package doctldr provides a CLI tool that summarizes directories of
// documentation files. It walks input directories, extracts plain text
// from markdown, HTML, reStructuredText and plain text files, summarizes
// each document through an LLM, and renders the results as markdown,
// JSON or plain text.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., charset/,
// goldmark/, openai/).
package doctldr
