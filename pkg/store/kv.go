// Package store persists tracker state as one value per fixed key.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by KV.Read for a key that was never written.
var ErrNotFound = errors.New("store: key not found")

// KV is the key-value collaborator every view reads and writes.
type KV interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
	// Erase removes key. Erasing a missing key is not an error.
	Erase(key string) error
	Has(key string) bool
}

// Watcher is implemented by stores that can report changes.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

// EventType describes the nature of a change notification.
type EventType int

const (
	// EventWritten indicates a key received a new value.
	EventWritten EventType = iota
	// EventErased indicates a key was removed.
	EventErased
	// EventInvalidated asks listeners to reload everything.
	EventInvalidated
)

func (t EventType) String() string {
	switch t {
	case EventWritten:
		return "written"
	case EventErased:
		return "erased"
	default:
		return "invalidated"
	}
}

// Event is emitted by Watch when stored state changes.
type Event struct {
	Type EventType
	Key  string
}
