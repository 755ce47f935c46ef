package tensor

// Backend is the device abstraction behind Storage. It has one capability:
// allocate a zero-initialised contiguous buffer. Layouts, views and the
// shape algebra never depend on the device.
//
// Implementations:
//   - CPU: plain Go slices (internal/backend/cpu)
//   - CUDA, Vulkan, Metal, WebGPU: not implemented; Device values reserved
type Backend interface {
	// Allocate returns a zeroed buffer of byteSize bytes on the device.
	Allocate(byteSize int) ([]byte, error)

	// Metadata
	Name() string
	Device() Device
}
