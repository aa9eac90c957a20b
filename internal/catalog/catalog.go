// Package catalog extracts error-message entries from source text.
//
// An entry is a string literal of the shape "E0001: message" embedded in the
// scanned file. Entries keep their order of appearance and duplicates; the
// regenerated documentation listing must mirror the source exactly.
package catalog

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPattern matches quoted error literals: one uppercase E, exactly four
// digits, a colon, then anything up to (not including) the closing quote.
// `.` does not cross newlines, so multi-line literals never match.
const DefaultPattern = `"(E\d{4}:.+?)"`

// Entry is a single extracted error message.
type Entry struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`

	// raw is the capture exactly as it appears in the source. The
	// regenerated listing must reproduce it byte for byte, including any
	// unusual spacing around the colon.
	raw string
}

// Text returns the full message as it appears in the source,
// e.g. "E0001: bad input".
func (e Entry) Text() string {
	if e.raw != "" {
		return e.raw
	}
	if e.Code == "" {
		return e.Message
	}
	return e.Code + ": " + e.Message
}

// Scanner extracts entries matching a compiled pattern.
type Scanner struct {
	re *regexp.Regexp
}

// NewScanner compiles a scanner from an extraction pattern. The pattern must
// have exactly one capture group (the message text).
func NewScanner(pattern string) (*Scanner, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid extraction pattern: %w", err)
	}
	if re.NumSubexp() != 1 {
		return nil, fmt.Errorf("extraction pattern must have exactly one capture group, got %d", re.NumSubexp())
	}

	return &Scanner{re: re}, nil
}

// Scan returns all entries in content, in order of appearance, duplicates
// preserved.
func (s *Scanner) Scan(content string) []Entry {
	matches := s.re.FindAllStringSubmatch(content, -1)

	var entries []Entry
	for _, m := range matches {
		entries = append(entries, parseEntry(m[1]))
	}
	return entries
}

// parseEntry splits "E0001: bad input" into code and message. Text without a
// colon separator becomes a message with an empty code.
func parseEntry(text string) Entry {
	code, message, found := strings.Cut(text, ":")
	if !found {
		return Entry{Message: text, raw: text}
	}
	return Entry{
		Code:    code,
		Message: strings.TrimSpace(message),
		raw:     text,
	}
}

// EncodeJSON renders entries as indented JSON for machine consumption.
func EncodeJSON(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog as JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// EncodeYAML renders entries as YAML for machine consumption.
func EncodeYAML(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to encode catalog as YAML: %w", err)
	}
	return data, nil
}
