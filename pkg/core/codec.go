package core

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EncodeNotes serializes notes into the slot wire format: a JSON array of
// {id, title, body, tags}. Tags are always encoded as an array, never null,
// so encoding the result of DecodeNotes reproduces the same bytes.
func EncodeNotes(notes []Note) ([]byte, error) {
	out := make([]Note, len(notes))
	for i, n := range notes {
		out[i] = normalize(n)
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to encode notes: %w", err)
	}
	return data, nil
}

// DecodeNotes parses the slot wire format.
// Blank input and a JSON null decode to an empty list.
func DecodeNotes(data []byte) ([]Note, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []Note{}, nil
	}
	var notes []Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}
	if notes == nil {
		return []Note{}, nil
	}
	for i := range notes {
		notes[i] = normalize(notes[i])
	}
	return notes, nil
}

func normalize(n Note) Note {
	if n.Tags == nil {
		n.Tags = []string{}
	}
	return n
}
