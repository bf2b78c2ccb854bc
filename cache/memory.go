package cache

import "sync"

// Memory 提供一个基于内存的缓存。
type Memory struct {
	sync.RWMutex

	data map[string][]byte
}

var _ Cache = (*Memory)(nil)

// NewMemory 返回一个新的内存缓存。
func NewMemory() *Memory {
	return &Memory{
		data: map[string][]byte{},
	}
}

func (m *Memory) Get(key string) ([]byte, error) {
	m.RLock()
	defer m.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Set(key string, val []byte) error {
	m.Lock()
	defer m.Unlock()

	m.data[key] = append([]byte(nil), val...)
	return nil
}
