package memory

import (
	"context"
	"strconv"
	"sync"
)

// MemoryStore keeps preferences in an in-process map.
// It is the default store for tests and for callers that manage
// persistence themselves.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]string),
	}
}

// Name returns the identifier name defined for this store
func (*MemoryStore) Name() string {
	return "memory"
}

// Open is part of the lifecycle behaviour and gets called when opening this store.
func (ms *MemoryStore) Open(ctx context.Context) error {
	return nil
}

// Close is part of the lifecycle behaviour and gets called when closing this store.
func (ms *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// Bool returns the boolean value stored under key, or def when absent.
func (ms *MemoryStore) Bool(ctx context.Context, key string, def bool) (bool, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	raw, exists := ms.values[key]
	if !exists {
		return def, nil
	}

	return raw == "true" || raw == "1" || raw == "yes", nil
}

// Int returns the integer value stored under key, or def when absent.
func (ms *MemoryStore) Int(ctx context.Context, key string, def int) (int, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	raw, exists := ms.values[key]
	if !exists {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return def, nil
	}

	return value, nil
}

// SetBool stores a boolean preference.
func (ms *MemoryStore) SetBool(key string, value bool) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.values[key] = strconv.FormatBool(value)
}

// SetInt stores an integer preference.
func (ms *MemoryStore) SetInt(key string, value int) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.values[key] = strconv.Itoa(value)
}
