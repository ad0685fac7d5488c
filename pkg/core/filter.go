package core

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Search returns the notes whose title or any tag contains query,
// compared case-insensitively. An empty query matches every note.
// The relative order of notes is preserved.
func Search(notes []Note, query string) []Note {
	q := strings.ToLower(query)
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if matches(n, q) {
			out = append(out, n)
		}
	}
	return out
}

func matches(n Note, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(n.Title), lowerQuery) {
		return true
	}
	for _, t := range n.Tags {
		if strings.Contains(strings.ToLower(t), lowerQuery) {
			return true
		}
	}
	return false
}

// UniqueTags returns every distinct tag across notes in first-seen order.
func UniqueTags(notes []Note) []string {
	seen := make(map[string]struct{})
	tags := []string{}
	for _, n := range notes {
		for _, t := range n.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	return tags
}

// FilterByTag returns the notes with at least one tag matching pattern.
// Patterns use doublestar glob syntax ("work/*", "proj-**", "{home,errands}");
// a pattern without meta characters matches the tag exactly.
func FilterByTag(notes []Note, pattern string) ([]Note, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid tag pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		for _, t := range n.Tags {
			ok, err := doublestar.Match(pattern, t)
			if err != nil {
				return nil, fmt.Errorf("invalid tag pattern %q: %w", pattern, err)
			}
			if ok {
				out = append(out, n)
				break
			}
		}
	}
	return out, nil
}

func indexOf(notes []Note, id int64) int {
	for i, n := range notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
