// Package export renders notes for use outside the store: the slot wire
// format (JSON), YAML, and Markdown with a YAML frontmatter block per note.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/notes/pkg/core"
)

// Format names an export encoding.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "md"
)

// Formats lists the supported formats in display order.
var Formats = []Format{FormatJSON, FormatYAML, FormatMarkdown}

// ErrUnknownFormat is returned for a format outside Formats.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat resolves a user supplied name ("markdown" is accepted for md).
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Write encodes notes to w in the given format.
func Write(w io.Writer, format Format, notes []core.Note) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, notes)
	case FormatYAML:
		return writeYAML(w, notes)
	case FormatMarkdown:
		return writeMarkdown(w, notes)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func writeJSON(w io.Writer, notes []core.Note) error {
	data, err := core.EncodeNotes(notes)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)
	return err
}

func writeYAML(w io.Writer, notes []core.Note) error {
	if notes == nil {
		notes = []core.Note{}
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(notes); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return encoder.Close()
}

// frontmatter is the metadata block written above each note body.
type frontmatter struct {
	ID    int64    `yaml:"id"`
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags,flow"`
}

func writeMarkdown(w io.Writer, notes []core.Note) error {
	for i, n := range notes {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		doc, err := MarshalMarkdown(n)
		if err != nil {
			return err
		}
		if _, err := w.Write(doc); err != nil {
			return err
		}
	}
	return nil
}

// MarshalMarkdown renders a single note as frontmatter followed by its body.
func MarshalMarkdown(n core.Note) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	if err := encoder.Encode(frontmatter{ID: n.ID, Title: n.Title, Tags: tags}); err != nil {
		return nil, fmt.Errorf("failed to encode frontmatter for %d: %w", n.ID, err)
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}

	buf.WriteString("---\n")
	buf.WriteString(n.Body)
	if !strings.HasSuffix(n.Body, "\n") {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// UnmarshalMarkdown parses a document produced by MarshalMarkdown.
// The body keeps everything after the closing delimiter except the single
// trailing newline added on write.
func UnmarshalMarkdown(data []byte) (core.Note, error) {
	if !bytes.HasPrefix(data, []byte("---\n")) && !bytes.HasPrefix(data, []byte("---\r\n")) {
		return core.Note{}, errors.New("missing frontmatter")
	}
	rest := data[bytes.IndexByte(data, '\n')+1:]

	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return core.Note{}, errors.New("frontmatter started but no closing delimiter found")
	}
	head := rest[:end+1]
	body := rest[end+len("\n---"):]
	body = bytes.TrimPrefix(body, []byte("\r"))
	body = bytes.TrimPrefix(body, []byte("\n"))

	var fm frontmatter
	if err := yaml.Unmarshal(head, &fm); err != nil {
		return core.Note{}, fmt.Errorf("failed to parse frontmatter: %w", err)
	}
	if fm.Tags == nil {
		fm.Tags = []string{}
	}
	return core.Note{
		ID:    fm.ID,
		Title: fm.Title,
		Body:  strings.TrimSuffix(string(body), "\n"),
		Tags:  fm.Tags,
	}, nil
}
