package tensor

import "fmt"

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for testing.
// It records every allocation and can be told to fail after a number of
// successful ones.
type MockBackend struct {
	allocations int
	bytes       int
	failAfter   int
}

// NewMockBackend creates a new MockBackend that never fails.
func NewMockBackend() *MockBackend {
	return &MockBackend{failAfter: -1}
}

// NewFailingMockBackend creates a MockBackend whose allocations fail once
// n have succeeded.
func NewFailingMockBackend(n int) *MockBackend {
	return &MockBackend{failAfter: n}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// Allocate returns a zeroed buffer and counts the allocation.
func (m *MockBackend) Allocate(byteSize int) ([]byte, error) {
	if m.failAfter >= 0 && m.allocations >= m.failAfter {
		return nil, fmt.Errorf("mock: allocation %d refused", m.allocations+1)
	}
	m.allocations++
	m.bytes += byteSize
	return make([]byte, byteSize), nil
}

// Allocations returns the number of successful allocations.
func (m *MockBackend) Allocations() int {
	return m.allocations
}

// AllocatedBytes returns the total number of bytes handed out.
func (m *MockBackend) AllocatedBytes() int {
	return m.bytes
}
