package slots

import (
	"context"
	"strings"
	"sync"
)

// MemoryStore keeps slots in memory and is safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	byKey map[string]Record
}

// NewMemoryStore constructs a MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byKey: make(map[string]Record)}
}

// Get returns the record held under key.
func (s *MemoryStore) Get(ctx context.Context, key string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.byKey[key]
	if !ok {
		return Record{}, ErrNotFound
	}
	return cloneRecord(record), nil
}

// Put replaces the record held under key.
func (s *MemoryStore) Put(ctx context.Context, key string, record Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	if len(record.Payload) == 0 {
		return ErrEmptyPayload
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byKey[key] = cloneRecord(record)
	return nil
}

func cloneRecord(r Record) Record {
	out := r
	out.Payload = append([]byte(nil), r.Payload...)
	return out
}
