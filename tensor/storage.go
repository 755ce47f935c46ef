// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/ndview/internal/tensor"

// Layout binds a shape to a set of strides.
type Layout = tensor.Layout

// View is a Layout plus a per-dimension offset and a traversal order.
type View = tensor.View

// IndexGenerator enumerates the index tuples of a shape.
type IndexGenerator = tensor.IndexGenerator

// Slice narrows a tensor one dimension at a time.
type Slice[T DType, B Backend] = tensor.Slice[T, B]

// NewLayout creates a layout, checking shape and strides agree in length.
func NewLayout(shape Shape, strides Indices) (Layout, error) {
	return tensor.NewLayout(shape, strides)
}

// OrderedLayout creates a dense layout with strides derived from order.
func OrderedLayout(shape Shape, order Indices) Layout {
	return tensor.OrderedLayout(shape, order)
}

// NewView creates and validates a view.
func NewView(shape Shape, offset, order, strides Indices) (View, error) {
	return tensor.NewView(shape, offset, order, strides)
}

// ViewOf wraps a layout in a zero-offset view.
func ViewOf(l Layout, order Indices) View {
	return tensor.ViewOf(l, order)
}

// DenseView returns the zero-offset view of a freshly allocated tensor.
func DenseView(shape Shape, major MajorOrder) View {
	return tensor.DenseView(shape, major)
}

// NewIndexGenerator creates a generator for shape traversed by dense strides.
func NewIndexGenerator(shape Shape, strides Indices) (*IndexGenerator, error) {
	return tensor.NewIndexGenerator(shape, strides)
}

// RowMajorIndices enumerates shape in row-major order.
func RowMajorIndices(shape Shape) *IndexGenerator {
	return tensor.RowMajorIndices(shape)
}

// ViewIndices enumerates a view in its recorded traversal order.
func ViewIndices(v View) *IndexGenerator {
	return tensor.ViewIndices(v)
}
