package store

import (
	"context"
	"sync"
)

// Memory is an in-process KV, used in tests and as a scratch store.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte
	subs   []chan Event
}

// NewMemory returns an empty Memory store seeded with the given values.
func NewMemory(seed map[string]string) *Memory {
	m := &Memory{values: make(map[string][]byte, len(seed))}
	for k, v := range seed {
		m.values[k] = []byte(v)
	}
	return m
}

func (m *Memory) Read(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), val...), nil
}

func (m *Memory) Write(key string, val []byte) error {
	m.mu.Lock()
	if m.values == nil {
		m.values = make(map[string][]byte)
	}
	m.values[key] = append([]byte(nil), val...)
	m.mu.Unlock()
	m.notify(Event{Type: EventWritten, Key: key})
	return nil
}

func (m *Memory) Erase(key string) error {
	m.mu.Lock()
	_, ok := m.values[key]
	delete(m.values, key)
	m.mu.Unlock()
	if ok {
		m.notify(Event{Type: EventErased, Key: key})
	}
	return nil
}

func (m *Memory) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.values[key]
	return ok
}

// String returns the stored value for key, or "" when missing.
func (m *Memory) String(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(m.values[key])
}

// Watch streams writes and erases until ctx is done.
func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 64)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, sub := range m.subs {
			if sub == ch {
				m.subs = append(m.subs[:i], m.subs[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}

func (m *Memory) notify(ev Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, sub := range m.subs {
		select {
		case sub <- ev:
		default:
		}
	}
}
