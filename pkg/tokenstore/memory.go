package tokenstore

import (
	"context"
	"sync"
)

// MemoryStore keeps tokens in process memory. Suitable for single-process
// usage and tests.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tokens: map[string]string{}}
}

func (m *MemoryStore) Get(ctx context.Context, sessionKey string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	token, ok := m.tokens[sessionKey]
	if !ok || token == "" {
		return "", ErrNotFound
	}
	return token, nil
}

func (m *MemoryStore) Set(ctx context.Context, sessionKey, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[sessionKey] = token
	return nil
}

func (m *MemoryStore) Clear(ctx context.Context, sessionKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, sessionKey)
	return nil
}
