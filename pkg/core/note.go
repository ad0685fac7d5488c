// Package core holds the note domain: the Note entity, the pure functions that
// derive views over a list of notes, the Store that owns the authoritative
// list, and the Storage port the store persists through.
package core

import (
	"strings"
)

// Note is the central entity of the domain.
// A note is owned by exactly one Store and is never referenced elsewhere.
type Note struct {
	ID    int64    `json:"id" yaml:"id"`
	Title string   `json:"title" yaml:"title"`
	Body  string   `json:"body" yaml:"body"`
	Tags  []string `json:"tags" yaml:"tags"`
}

// HasTag reports whether the note carries tag exactly.
func (n Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// clone returns a copy that does not share the tag slice.
func (n Note) clone() Note {
	tags := make([]string, len(n.Tags))
	copy(tags, n.Tags)
	n.Tags = tags
	return n
}

// ParseTags splits comma separated text into trimmed fragments.
// Empty fragments and duplicates are preserved, so "a,,b" yields
// ["a", "", "b"] and "" yields [""]. The result is never nil.
func ParseTags(text string) []string {
	parts := strings.Split(text, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, strings.TrimSpace(p))
	}
	return tags
}

// FormatTags is the inverse of ParseTags for display and edit drafts.
func FormatTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// Validate checks the write-time invariant shared by add and update.
func Validate(title, body string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(body) == "" {
		return ErrValidation
	}
	return nil
}
