package memory

import (
	"context"
	"sync"

	"peptide-protocol-tracker/internal/ports/storage"
)

type store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewStore crea el store clave-valor en memoria (default para dev y tests).
func NewStore() storage.Store {
	return &store{
		data: make(map[string][]byte),
	}
}

func (s *store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}

	// El slice devuelto no comparte memoria con el guardado.
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *store) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	s.data[key] = v
	return nil
}

func (s *store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}
