// Package frontmatter provides utilities for parsing YAML frontmatter in
// markdown files.
package frontmatter

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrMissingFrontmatter is returned by MustParse when no frontmatter is found.
var ErrMissingFrontmatter = errors.New("missing frontmatter")

// Parse extracts YAML frontmatter and body content from a reader.
// If no frontmatter is present, returns empty struct and full content as body.
func Parse[T any](r io.Reader, matter *T) (body []byte, err error) {
	return parse(r, matter, false)
}

// MustParse is like Parse but returns an error if no frontmatter is found.
// This is useful for files where frontmatter is required (skill documents).
func MustParse[T any](r io.Reader, matter *T) (body []byte, err error) {
	return parse(r, matter, true)
}

func parse[T any](r io.Reader, matter *T, required bool) ([]byte, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if !bytes.HasPrefix(content, []byte("---\n")) && !bytes.HasPrefix(content, []byte("---\r\n")) {
		if required {
			return nil, ErrMissingFrontmatter
		}
		return content, nil
	}

	// Skip the opening delimiter, handling both LF and CRLF.
	startOffset := 3
	if len(content) > 3 && content[3] == '\r' {
		startOffset = 4
	}
	if len(content) > startOffset && content[startOffset] == '\n' {
		startOffset++
	}

	// Search for closing "---" on a new line
	parts := bytes.SplitN(content[startOffset:], []byte("\n---"), 2)
	if len(parts) < 2 {
		parts = bytes.SplitN(content[startOffset:], []byte("\r\n---"), 2)
	}

	if len(parts) < 2 {
		if required {
			return nil, errors.New("missing closing frontmatter delimiter")
		}
		return content, nil
	}

	fm := parts[0]
	bodyContent := parts[1]

	// Trim leading newline from body (residue from split)
	if len(bodyContent) > 0 {
		if bodyContent[0] == '\r' {
			bodyContent = bodyContent[1:]
		}
		if len(bodyContent) > 0 && bodyContent[0] == '\n' {
			bodyContent = bodyContent[1:]
		}
	}

	if err := yaml.Unmarshal(fm, matter); err != nil {
		return nil, err
	}

	return bodyContent, nil
}
