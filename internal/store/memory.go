package store

import "context"

// MemoryStorage holds the blob in process memory. Used by tests and as
// a last-resort fallback when no other backend is reachable.
type MemoryStorage struct {
	blob []byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load(ctx context.Context) ([]byte, error) {
	if m.blob == nil {
		return nil, ErrNoDocument
	}
	out := make([]byte, len(m.blob))
	copy(out, m.blob)
	return out, nil
}

func (m *MemoryStorage) Save(ctx context.Context, blob []byte) error {
	m.blob = make([]byte, len(blob))
	copy(m.blob, blob)
	return nil
}
