package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorage(t *testing.T) {
	backend := NewMockBackend()

	s, err := NewStorage[float64](backend, 6)
	require.NoError(t, err)
	assert.Equal(t, 6, s.Len())
	assert.Equal(t, 48, s.ByteSize())
	assert.Equal(t, Float64, s.DType())
	assert.Equal(t, CPU, s.Device())
	assert.Equal(t, 1, s.Refs())
	assert.Equal(t, 48, backend.AllocatedBytes())

	for _, v := range s.Data() {
		assert.Zero(t, v)
	}

	s.Set(2, 1.5)
	assert.InDelta(t, 1.5, s.At(2), 1e-12)
}

func TestStorageEmpty(t *testing.T) {
	s, err := NewStorage[int32](NewMockBackend(), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestStorageAllocationFailure(t *testing.T) {
	_, err := NewStorage[float32](NewFailingMockBackend(0), 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refused")

	_, err = NewStorage[float32](NewMockBackend(), -1)
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestStorageRefCounting(t *testing.T) {
	s, err := NewStorage[uint8](NewMockBackend(), 3)
	require.NoError(t, err)

	s.Retain()
	assert.Equal(t, 2, s.Refs())

	s.Release()
	assert.False(t, s.Released())
	assert.Equal(t, 3, s.Len())

	s.Release()
	assert.True(t, s.Released())
	assert.Equal(t, 0, s.Len())
}

func TestDeviceString(t *testing.T) {
	assert.Equal(t, "CPU", CPU.String())
	assert.Equal(t, "WebGPU", WebGPU.String())
	assert.Equal(t, "Unknown", Device(99).String())
}
