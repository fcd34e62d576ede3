package enumstore

import (
	"context"
	"maps"
	"strings"
	"sync"

	"github.com/dmitrymomot/enumkit/pkg/enum"
)

// MemoryStore keeps overrides in process memory. Safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	enums map[string]map[string]enum.Data
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		enums: make(map[string]map[string]enum.Data),
	}
}

func (s *MemoryStore) Load(ctx context.Context, enumName string) (map[string]enum.Data, error) {
	if strings.TrimSpace(enumName) == "" {
		return nil, ErrEmptyEnumName
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.enums[enumName]
	out := make(map[string]enum.Data, len(stored))
	for member, rec := range stored {
		out[member] = maps.Clone(rec)
	}
	return out, nil
}

func (s *MemoryStore) Save(ctx context.Context, enumName, member string, data enum.Data) error {
	if err := validateKey(enumName, member); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	members, ok := s.enums[enumName]
	if !ok {
		members = make(map[string]enum.Data)
		s.enums[enumName] = members
	}

	merged := make(enum.Data, len(members[member])+len(data))
	maps.Copy(merged, members[member])
	maps.Copy(merged, data)
	members[member] = merged
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, enumName, member string) error {
	if err := validateKey(enumName, member); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.enums[enumName], member)
	return nil
}
