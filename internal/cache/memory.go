// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

// MemoryStore is a Store backed by a map. It counts reads and writes so
// callers can check which side effects an operation had.
type MemoryStore struct {
	Data   map[string][]byte
	Reads  int
	Writes int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{Data: map[string][]byte{}}
}

func (m *MemoryStore) Exists(key string) (bool, error) {
	_, ok := m.Data[key]
	return ok, nil
}

func (m *MemoryStore) Read(key string) ([]byte, error) {
	b, ok := m.Data[key]
	if !ok {
		return nil, ErrNotFound
	}
	m.Reads++
	return append([]byte(nil), b...), nil
}

func (m *MemoryStore) Write(key string, data []byte) error {
	m.Data[key] = append([]byte(nil), data...)
	m.Writes++
	return nil
}
