// storage/kv_memory.go
package storage

import "sync"

// MemoryKV keeps records in memory. Used in tests and when no database
// is configured.
type MemoryKV struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{records: make(map[string][]byte)}
}

func (m *MemoryKV) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.records[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, true, nil
}

func (m *MemoryKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	m.records[key] = stored
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, key)
	return nil
}
