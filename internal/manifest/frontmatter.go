package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"

	"go.yaml.in/yaml/v3"
)

const delimiter = "---"

var (
	// ErrNoFrontmatter is returned when a document does not start with "---".
	ErrNoFrontmatter = errors.New("missing frontmatter")
	// ErrUnterminated is returned when the closing "---" line is missing.
	ErrUnterminated = errors.New("unterminated frontmatter")
)

// Frontmatter holds the fields shared by every template file. Unknown keys
// are kept in Extra.
type Frontmatter struct {
	Name        string         `yaml:"name" json:"name"`
	Description string         `yaml:"description" json:"description"`
	Version     string         `yaml:"version,omitempty" json:"version,omitempty"`
	Extra       map[string]any `yaml:",inline" json:"-"`
}

// Split separates the YAML between the leading "---" lines from the body.
func Split(data []byte) (front, body []byte, err error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	first, rest, found := bytes.Cut(data, []byte("\n"))
	if string(bytes.TrimRight(first, "\r")) != delimiter {
		return nil, data, ErrNoFrontmatter
	}
	if !found {
		return nil, nil, ErrUnterminated
	}

	offset := 0
	for {
		line, after, more := bytes.Cut(rest[offset:], []byte("\n"))
		if string(bytes.TrimRight(line, "\r")) == delimiter {
			return rest[:offset], after, nil
		}
		if !more {
			return nil, nil, ErrUnterminated
		}
		offset += len(line) + 1
	}
}

// Parse extracts and decodes the frontmatter of a document.
func Parse(data []byte) (*Frontmatter, error) {
	front, _, err := Split(data)
	if err != nil {
		return nil, err
	}

	var fm Frontmatter
	if err := yaml.Unmarshal(front, &fm); err != nil {
		return nil, fmt.Errorf("parsing frontmatter: %w", err)
	}
	return &fm, nil
}

// ParseFile reads name from fsys and parses its frontmatter.
func ParseFile(fsys fs.FS, name string) (*Frontmatter, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", name, err)
	}
	fm, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return fm, nil
}
