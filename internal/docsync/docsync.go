// Package docsync regenerates the error-message documentation block embedded
// in a source file.
//
// The block spans from a fixed header comment line to a fixed end-marker line.
// Its body is rebuilt from the error literals found in the same file, one
// listing line per literal, in order of appearance. Both the extraction pass
// and the block replacement run against the original, unmodified content.
package docsync

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/bookrab/errdoc/internal/catalog"
	"github.com/bookrab/errdoc/internal/errors"
)

// Default markers and listing prefix, matching the Rust error-macro layout
// this tool was built for.
const (
	DefaultHeader     = "/// Macro to produce nice errors"
	DefaultFooter     = "#[macro_export]"
	DefaultLinePrefix = "/// "
	DefaultFile       = "src/errors.rs"
)

// Options configures a Syncer. Zero values take the defaults above.
type Options struct {
	Header     string // First line of the documentation block
	Footer     string // End-marker line closing the block
	LinePrefix string // Prefix for each generated listing line
	Pattern    string // Extraction pattern (one capture group)
}

// Syncer rewrites documentation blocks from extracted error messages.
type Syncer struct {
	header     string
	footer     string
	linePrefix string
	scanner    *catalog.Scanner
	blockRe    *regexp.Regexp
}

// New creates a Syncer from options.
func New(opts Options) (*Syncer, error) {
	header := opts.Header
	if header == "" {
		header = DefaultHeader
	}
	footer := opts.Footer
	if footer == "" {
		footer = DefaultFooter
	}
	linePrefix := opts.LinePrefix
	if linePrefix == "" {
		linePrefix = DefaultLinePrefix
	}

	scanner, err := catalog.NewScanner(opts.Pattern)
	if err != nil {
		return nil, err
	}

	// (?s) lets .*? cross newlines so the whole block is captured,
	// however long the current listing is. Non-greedy keeps the match
	// from swallowing a later end marker.
	blockRe, err := regexp.Compile(`(?s)` + regexp.QuoteMeta(header) + `.*?` + regexp.QuoteMeta(footer))
	if err != nil {
		return nil, fmt.Errorf("failed to compile block pattern: %w", err)
	}

	return &Syncer{
		header:     header,
		footer:     footer,
		linePrefix: linePrefix,
		scanner:    scanner,
		blockRe:    blockRe,
	}, nil
}

// Result describes the outcome of syncing or checking one file.
type Result struct {
	Path    string          // File the result refers to
	Content string          // Full rewritten content
	Entries []catalog.Entry // Extracted entries, in order, duplicates kept
	Changed bool            // Whether Content differs from the file's content
}

// Rewrite applies the documentation-block transformation to content and
// returns the new content plus the extracted entries. When the marker pair is
// absent the content is returned unchanged; that is a valid no-op, not an
// error. Every marker pair in the content receives the same regenerated
// listing.
func (s *Syncer) Rewrite(content string) (string, []catalog.Entry) {
	entries := s.scanner.Scan(content)
	block := s.renderBlock(entries)
	return s.blockRe.ReplaceAllLiteralString(content, block), entries
}

// renderBlock builds the replacement block: header line, one listing line per
// entry, end marker. With no entries the block is just header and marker.
func (s *Syncer) renderBlock(entries []catalog.Entry) string {
	var b strings.Builder
	b.WriteString(s.header)
	for _, e := range entries {
		b.WriteString("\n")
		b.WriteString(s.linePrefix)
		b.WriteString(e.Text())
	}
	b.WriteString("\n")
	b.WriteString(s.footer)
	return b.String()
}

// SyncFile rewrites the documentation block of the file at path and
// overwrites the file in place. The returned Result carries the full new
// content so the caller can echo it to stdout.
func (s *Syncer) SyncFile(path string) (*Result, error) {
	res, err := s.CheckFile(path)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, []byte(res.Content), 0644); err != nil {
		return nil, errors.PathError(path, "failed to write file", err)
	}
	return res, nil
}

// CheckFile computes the rewrite for the file at path without writing
// anything back.
func (s *Syncer) CheckFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.PathError(path, "failed to read file", err)
	}

	content := string(data)
	newContent, entries := s.Rewrite(content)

	return &Result{
		Path:    path,
		Content: newContent,
		Entries: entries,
		Changed: newContent != content,
	}, nil
}
