// Package credentials holds the durable slot that keeps each session's
// OpenAI API key between visits.
package credentials

import (
	"context"
	"sync"
)

// Memory keeps keys in process memory. Keys are lost on restart.
type Memory struct {
	mu   sync.RWMutex
	keys map[string]string
}

func NewMemory() *Memory {
	return &Memory{keys: make(map[string]string)}
}

func (m *Memory) Load(_ context.Context, sessionID string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.keys[sessionID], nil
}

func (m *Memory) Save(_ context.Context, sessionID, apiKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys[sessionID] = apiKey
	return nil
}

func (m *Memory) Clear(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keys, sessionID)
	return nil
}
