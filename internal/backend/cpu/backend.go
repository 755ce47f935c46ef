// Package cpu implements the CPU storage backend: plain Go byte slices.
package cpu

import (
	"fmt"

	"github.com/born-ml/ndview/internal/tensor"
)

// CPUBackend allocates tensor storage in process memory.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Allocate returns a zeroed buffer of byteSize bytes.
func (cpu *CPUBackend) Allocate(byteSize int) ([]byte, error) {
	if byteSize < 0 {
		return nil, fmt.Errorf("cpu: %w: negative allocation of %d bytes", tensor.ErrInvalidShape, byteSize)
	}
	// make() zero-initialises
	return make([]byte, byteSize), nil
}
