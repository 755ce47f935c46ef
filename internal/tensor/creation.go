package tensor

import (
	"fmt"
	"math"
)

// Zeros creates a row-major tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t, err := tensor.Zeros[float32](Shape{3, 4}, backend)
func Zeros[T Numeric, B Backend](shape Shape, b B) (*Tensor[T, B], error) {
	// Data is already zero-initialized by the backend
	return New[T](shape, b)
}

// Ones creates a row-major tensor filled with ones.
func Ones[T Numeric, B Backend](shape Shape, b B) (*Tensor[T, B], error) {
	return Full(shape, T(1), b)
}

// Full creates a row-major tensor filled with value.
func Full[T DType, B Backend](shape Shape, value T, b B) (*Tensor[T, B], error) {
	t, err := New[T](shape, b)
	if err != nil {
		return nil, err
	}
	Fill(t, value)
	return t, nil
}

// FromSlice creates a row-major tensor from a Go slice. The slice is copied.
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrMismatchedElementCount, shape, shape.NumElements(), len(data))
	}
	t, err := New[T](shape, b)
	if err != nil {
		return nil, err
	}
	copy(t.storage.Data(), data)
	return t, nil
}

// Scalar creates a rank-1 tensor of shape {1} holding value.
func Scalar[T DType, B Backend](value T, b B) (*Tensor[T, B], error) {
	return FromSlice([]T{value}, Shape{1}, b)
}

// Vector creates a rank-1 tensor from a literal.
func Vector[T DType, B Backend](values []T, b B) (*Tensor[T, B], error) {
	return FromSlice(values, Shape{len(values)}, b)
}

// Matrix creates a rank-2 row-major tensor from nested rows.
// All rows must have the same length.
//
// Example:
//
//	m, err := tensor.Matrix([][]float64{{1, 2}, {3, 4}}, backend)
func Matrix[T DType, B Backend](rows [][]T, b B) (*Tensor[T, B], error) {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	data := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("matrix literal: %w: row %d has %d elements, want %d",
				ErrMismatchedDimensions, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return FromSlice(data, Shape{len(rows), cols}, b)
}

// Tensor3 creates a rank-3 row-major tensor from a nested literal.
func Tensor3[T DType, B Backend](blocks [][][]T, b B) (*Tensor[T, B], error) {
	rows, cols := 0, 0
	if len(blocks) > 0 {
		rows = len(blocks[0])
		if rows > 0 {
			cols = len(blocks[0][0])
		}
	}
	data := make([]T, 0, len(blocks)*rows*cols)
	for i, block := range blocks {
		if len(block) != rows {
			return nil, fmt.Errorf("tensor literal: %w: block %d has %d rows, want %d",
				ErrMismatchedDimensions, i, len(block), rows)
		}
		for j, row := range block {
			if len(row) != cols {
				return nil, fmt.Errorf("tensor literal: %w: row [%d][%d] has %d elements, want %d",
					ErrMismatchedDimensions, i, j, len(row), cols)
			}
			data = append(data, row...)
		}
	}
	return FromSlice(data, Shape{len(blocks), rows, cols}, b)
}

// Arange creates a 1D tensor with values start, start+step, ... below end.
// Its length is floor((end - start) / step).
//
// Example:
//
//	x, _ := tensor.Arange[float32](0, 10, 1, backend) // [0, 1, 2, ..., 9]
func Arange[T Numeric, B Backend](start, end, step T, b B) (*Tensor[T, B], error) {
	if step == 0 {
		return nil, fmt.Errorf("arange: %w: step must be non-zero", ErrInvalidShape)
	}
	size := max(int(math.Floor((float64(end)-float64(start))/float64(step))), 0)

	t, err := New[T](Shape{size}, b)
	if err != nil {
		return nil, err
	}
	Iota(t, start, step)
	return t, nil
}

// Copy materialises t into fresh row-major storage of the same shape.
func Copy[T DType, B Backend](t *Tensor[T, B]) (*Tensor[T, B], error) {
	if t.released {
		return nil, ErrReleased
	}
	result, err := New[T](t.Shape(), t.backend)
	if err != nil {
		return nil, err
	}
	for idx := range t.Indices().All() {
		result.put(idx, t.get(idx))
	}
	return result, nil
}

// Fill sets every element of t's view to value.
func Fill[T DType, B Backend](t *Tensor[T, B], value T) {
	MapInPlace(t, func(T) T { return value })
}

// FillFunc sets the elements of t, in traversal order, to successive
// results of fn.
func FillFunc[T DType, B Backend](t *Tensor[T, B], fn func() T) {
	MapInPlace(t, func(T) T { return fn() })
}

// Iota fills t in traversal order with start, start+step, start+2*step, ...
func Iota[T Numeric, B Backend](t *Tensor[T, B], start, step T) {
	value := start
	FillFunc(t, func() T {
		v := value
		value += step
		return v
	})
}
