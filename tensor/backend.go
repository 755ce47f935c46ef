// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/ndview/internal/tensor"

// Backend is the device abstraction behind tensor storage. Its only
// capability is allocating a zeroed contiguous buffer; layouts, views and
// the shape algebra never depend on it.
//
// Implementations:
//   - backend/cpu: plain Go memory
//
// Example:
//
//	import (
//	    "github.com/born-ml/ndview/tensor"
//	    "github.com/born-ml/ndview/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x, err := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
type Backend = tensor.Backend

// Storage is a reference-counted contiguous buffer shared by tensors.
//
// Element access is not synchronised: concurrent writes to storage shared
// between goroutines must be serialised by the caller.
type Storage[T DType] = tensor.Storage[T]

// NewStorage allocates n zeroed elements on the backend's device.
func NewStorage[T DType](b Backend, n int) (*Storage[T], error) {
	return tensor.NewStorage[T](b, n)
}
