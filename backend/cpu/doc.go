// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the CPU storage backend for tensors.
//
// # Overview
//
// The backend hands out zero-initialised contiguous buffers in process
// memory. Everything else (layouts, views, slicing, products) lives in the
// tensor package and is device independent.
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
//	    x, _ := tensor.Arange[float64](0, 24, 1, backend)
//	    y, _ := tensor.Reshape(x, tensor.Shape{2, 3, 4})
//	    fmt.Println(y)
//	}
package cpu
