package core

import "fmt"

// EventType represents the type of change in the store.
type EventType string

const (
	EventCreate  EventType = "CREATE"
	EventModify  EventType = "MODIFY"
	EventPending EventType = "PENDING"
	EventDelete  EventType = "DELETE"
	EventReload  EventType = "RELOAD"
)

// Event represents a change in the store or in the underlying storage slot.
// ID is zero for events that concern the whole collection.
type Event struct {
	Type      EventType
	ID        int64
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	if e.ID == 0 {
		return string(e.Type)
	}
	return fmt.Sprintf("%s %d", e.Type, e.ID)
}
