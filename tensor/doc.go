// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides strided views over shared, reference-counted
// storage.
//
// # Overview
//
// A Tensor is a View (shape, strides, per-dimension offset and traversal
// order) over a Storage buffer. Most shape operations only build a new view:
//   - Transpose permutes dimensions without copying
//   - Index and Range narrow dimensions without copying
//   - BroadcastTo repeats size-1 dimensions with stride 0
//   - Squeeze and Unsqueeze drop or add unit dimensions
//
// Reshape is zero-copy for dense row-major tensors and copies otherwise.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ndview/backend/cpu"
//	    "github.com/born-ml/ndview/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x, _ := tensor.New[float64](tensor.Shape{2, 3, 4}, backend)
//	    tensor.Iota(x, 0, 1)
//
//	    y, _ := tensor.Transpose(x, tensor.Indices{1, 0, 2}) // shares x's storage
//	    z, _ := tensor.Reshape(y, tensor.Shape{tensor.Infer, 4})
//	    row, _ := z.Index(1).Tensor()                        // shape {1, 4}
//	    fmt.Println(row)
//	}
//
// # Strides and Orders
//
// An order lists dimensions from the fastest varying to the slowest.
// Row-major order for rank 3 is {2, 1, 0}, giving strides {12, 4, 1} for
// shape {2, 3, 4}; column-major order {0, 1, 2} gives {1, 2, 6}.
//
// # Supported Data Types
//
// The DType constraint admits float32, float64, int, int32, int64, uint8
// and bool. Arithmetic needs Numeric, which excludes bool.
//
// # Broadcasting
//
// Shapes are aligned from the trailing dimension. Broadcasting is
// one-directional: one operand's shape must broadcast to the other's.
//
//	a, _ := tensor.Zeros[float32](tensor.Shape{3, 4}, backend)
//	b, _ := tensor.Ones[float32](tensor.Shape{4}, backend)
//	c, _ := tensor.Add(a, b) // (3, 4)
//
// # Memory Management
//
// Every tensor holds one reference to its storage. Call Release when a
// tensor is no longer needed; the buffer is dropped with the last
// reference. Nothing is synchronised: share tensors across goroutines only
// with external locking.
package tensor
