package tensor

import (
	"fmt"
	"sync/atomic"
	"unsafe"
)

// Device represents the compute device for tensor storage.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
	CUDA
	Vulkan
	Metal
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case CUDA:
		return "CUDA"
	case Vulkan:
		return "Vulkan"
	case Metal:
		return "Metal"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// Storage is a reference-counted contiguous buffer of elements shared by
// one or more tensors. Views derived from a tensor retain the storage;
// the data is dropped when the last reference is released.
//
// Element access is not synchronised. Concurrent mutation of a shared
// Storage must be serialised by the caller.
type Storage[T DType] struct {
	buffer   []byte
	data     []T
	dtype    DataType
	device   Device
	refCount atomic.Int32
}

// NewStorage allocates n zeroed elements on the backend's device with a
// reference count of 1.
func NewStorage[T DType](b Backend, n int) (*Storage[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative storage size %d", ErrInvalidShape, n)
	}
	dtype := inferDataType[T]()
	buffer, err := b.Allocate(n * dtype.Size())
	if err != nil {
		return nil, fmt.Errorf("allocate %d x %s on %s: %w", n, dtype, b.Device(), err)
	}
	if len(buffer) != n*dtype.Size() {
		return nil, fmt.Errorf("allocate %d x %s on %s: backend returned %d bytes", n, dtype, b.Device(), len(buffer))
	}

	s := &Storage[T]{
		buffer: buffer,
		dtype:  dtype,
		device: b.Device(),
	}
	if n > 0 {
		//nolint:gosec // unsafe.Slice for zero-copy typed access, length checked above
		s.data = unsafe.Slice((*T)(unsafe.Pointer(&buffer[0])), n)
	}
	s.refCount.Store(1)
	return s, nil
}

// Len returns the number of elements.
func (s *Storage[T]) Len() int {
	return len(s.data)
}

// At returns the element at a linear offset.
func (s *Storage[T]) At(i int) T {
	return s.data[i]
}

// Set writes the element at a linear offset.
func (s *Storage[T]) Set(i int, v T) {
	s.data[i] = v
}

// Data returns the elements in storage order (zero-copy).
//
// WARNING: Modifications to the returned slice are visible to every view.
func (s *Storage[T]) Data() []T {
	return s.data
}

// DType returns the element type.
func (s *Storage[T]) DType() DataType {
	return s.dtype
}

// Device returns the device the buffer lives on.
func (s *Storage[T]) Device() Device {
	return s.device
}

// ByteSize returns the buffer size in bytes.
func (s *Storage[T]) ByteSize() int {
	return len(s.buffer)
}

// Retain increments the reference count.
func (s *Storage[T]) Retain() {
	s.refCount.Add(1)
}

// Release decrements the reference count and drops the buffer when it
// reaches 0.
func (s *Storage[T]) Release() {
	if s.refCount.Add(-1) == 0 {
		s.buffer = nil
		s.data = nil
	}
}

// Refs returns the current reference count.
func (s *Storage[T]) Refs() int {
	return int(s.refCount.Load())
}

// Released reports whether the last reference has been released.
func (s *Storage[T]) Released() bool {
	return s.refCount.Load() <= 0
}
