// Package manifest reads the comic manifest: a text file listing candidate
// page image URLs, one per line.
package manifest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Entry is one non-blank manifest line paired with its 1-based position in
// the blank-filtered sequence. Positions keep advancing across entries that
// fail the URL check, so page numbering follows manifest order rather than
// the count of successful downloads.
type Entry struct {
	Position int
	Text     string
}

// IsURL reports whether the entry looks like a downloadable URL.
// Anything else is treated as a comment line, not an error.
func (e Entry) IsURL() bool {
	return strings.HasPrefix(e.Text, "http://") || strings.HasPrefix(e.Text, "https://")
}

// PageFilename returns the output filename for this entry, e.g. "page-03.jpg".
// The position is zero-padded to at least two digits.
func (e Entry) PageFilename() string {
	return fmt.Sprintf("page-%02d.jpg", e.Position)
}

// Parse reads manifest text and returns its entries in order. Lines are
// trimmed of surrounding whitespace; blank lines are dropped before
// positions are assigned.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entries = append(entries, Entry{Position: len(entries) + 1, Text: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan manifest: %w", err)
	}
	return entries, nil
}

// Load reads the manifest file at path and parses it.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	return entries, nil
}
