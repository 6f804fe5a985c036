package iohistory

import (
	"database/sql"
	"sync"

	"github.com/stretchr/testify/mock"
	"github.com/vitalscan/vitalscan/internal/contract"
	"github.com/vitalscan/vitalscan/schema"
)

// MockKeyValueStore is a testify mock implementation of KeyValueStore.
type MockKeyValueStore struct {
	mock.Mock
}

var _ contract.KeyValueStore = &MockKeyValueStore{} // Compile-time check

// Get implements the KeyValueStore interface.
func (m *MockKeyValueStore) Get(key string) (string, error) {
	ret := m.Called(key)
	return ret.String(0), ret.Error(1)
}

// Set implements the KeyValueStore interface.
func (m *MockKeyValueStore) Set(key, value string) error {
	return m.Called(key, value).Error(0)
}

// Delete implements the KeyValueStore interface.
func (m *MockKeyValueStore) Delete(key string) error {
	return m.Called(key).Error(0)
}

// Status implements the KeyValueStore interface.
func (m *MockKeyValueStore) Status() (schema.StorageStatus, error) {
	ret := m.Called()
	status, _ := ret.Get(0).(schema.StorageStatus)
	return status, ret.Error(1)
}

// Close implements the KeyValueStore interface.
func (m *MockKeyValueStore) Close() error {
	return m.Called().Error(0)
}

// MemoryKeyValueStore is an in-memory KeyValueStore for tests that need
// real get/set/delete behavior rather than expectations.
type MemoryKeyValueStore struct {
	mu     sync.Mutex
	values map[string]string
}

var _ contract.KeyValueStore = &MemoryKeyValueStore{} // Compile-time check

// NewMemoryKeyValueStore returns an empty in-memory store.
func NewMemoryKeyValueStore() *MemoryKeyValueStore {
	return &MemoryKeyValueStore{values: make(map[string]string)}
}

// Get implements the KeyValueStore interface.
func (m *MemoryKeyValueStore) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	if !ok {
		return "", sql.ErrNoRows
	}
	return value, nil
}

// Set implements the KeyValueStore interface.
func (m *MemoryKeyValueStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Delete implements the KeyValueStore interface.
func (m *MemoryKeyValueStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// Status implements the KeyValueStore interface.
func (m *MemoryKeyValueStore) Status() (schema.StorageStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var size int64
	for _, v := range m.values {
		size += int64(len(v))
	}
	return schema.StorageStatus{Backend: "memory", Connected: true, SnapshotBytes: size}, nil
}

// Close implements the KeyValueStore interface.
func (m *MemoryKeyValueStore) Close() error { return nil }
