package docstore

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
)

// Memory is an in-memory implementation of Store.
type Memory struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
	hub  *hub
}

// NewMemory constructs a Memory store.
func NewMemory() *Memory {
	return &Memory{
		data: make(map[string]json.RawMessage),
		hub:  newHub(),
	}
}

// Get returns the document at path.
func (m *Memory) Get(ctx context.Context, path string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.data[path]
	if !ok {
		return nil, ErrNotFound
	}
	return doc, nil
}

// Put stores the document at path, overwriting any previous value.
func (m *Memory) Put(ctx context.Context, path string, doc any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[path] = raw
	m.mu.Unlock()

	m.hub.publish(path, raw)
	return nil
}

// Remove deletes the document at path. Removing an absent path is a no-op.
func (m *Memory) Remove(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	_, existed := m.data[path]
	delete(m.data, path)
	m.mu.Unlock()

	if existed {
		m.hub.publish(path, nil)
	}
	return nil
}

// List returns all documents whose path starts with prefix + "/".
func (m *Memory) List(ctx context.Context, prefix string) (map[string]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]json.RawMessage)
	p := strings.TrimSuffix(prefix, "/") + "/"
	for path, doc := range m.data {
		if strings.HasPrefix(path, p) {
			out[path] = doc
		}
	}
	return out, nil
}

// Subscribe registers a live listener for path.
func (m *Memory) Subscribe(path string, fn func(json.RawMessage)) func() {
	unsubscribe := m.hub.subscribe(path, func(doc []byte) {
		fn(doc)
	})

	m.mu.RLock()
	current := m.data[path]
	m.mu.RUnlock()
	fn(current)

	return unsubscribe
}
