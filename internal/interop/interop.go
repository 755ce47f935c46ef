// Package interop converts between rank-2 float64 tensors and gonum matrices.
package interop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ndview/internal/tensor"
)

// Matrix exposes a rank-2 float64 tensor as a gonum mat.Matrix without
// copying. Reads go through the tensor's view, so transposed, sliced and
// broadcast tensors are seen in logical order.
type Matrix[B tensor.Backend] struct {
	t *tensor.Tensor[float64, B]
}

// AsMatrix wraps t. t must have rank 2 and no empty dimension, since
// gonum has no zero-sized matrices.
func AsMatrix[B tensor.Backend](t *tensor.Tensor[float64, B]) (*Matrix[B], error) {
	if t.NumDims() != 2 {
		return nil, fmt.Errorf("interop: %w: matrix needs rank 2, got %v", tensor.ErrMismatchedDimensions, t.Shape())
	}
	if t.NumElements() == 0 {
		return nil, fmt.Errorf("interop: %w: empty matrix %v", tensor.ErrInvalidShape, t.Shape())
	}
	return &Matrix[B]{t: t}, nil
}

// Dims returns the number of rows and columns.
func (m *Matrix[B]) Dims() (r, c int) {
	return m.t.Dim(0), m.t.Dim(1)
}

// At returns the element at row i, column j.
// It panics if i or j are out of bounds, as gonum matrices do.
func (m *Matrix[B]) At(i, j int) float64 {
	v, err := m.t.At(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}
	return v
}

// T returns the implicit transpose.
func (m *Matrix[B]) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}

// Tensor returns the wrapped tensor.
func (m *Matrix[B]) Tensor() *tensor.Tensor[float64, B] {
	return m.t
}

// ToDense copies a rank-2 tensor into a new gonum Dense matrix.
func ToDense[B tensor.Backend](t *tensor.Tensor[float64, B]) (*mat.Dense, error) {
	m, err := AsMatrix(t)
	if err != nil {
		return nil, err
	}
	return mat.DenseCopyOf(m), nil
}

// FromMatrix copies any gonum matrix into a new row-major tensor.
func FromMatrix[B tensor.Backend](m mat.Matrix, b B) (*tensor.Tensor[float64, B], error) {
	r, c := m.Dims()
	t, err := tensor.New[float64](tensor.Shape{r, c}, b)
	if err != nil {
		return nil, err
	}
	data := t.Storage().Data()
	for i := range r {
		for j := range c {
			data[i*c+j] = m.At(i, j)
		}
	}
	return t, nil
}

// MatMul multiplies two rank-2 tensors with gonum's Dense product and
// returns the result as a new tensor on a's backend.
func MatMul[B tensor.Backend](a, b *tensor.Tensor[float64, B]) (*tensor.Tensor[float64, B], error) {
	ma, err := AsMatrix(a)
	if err != nil {
		return nil, err
	}
	mb, err := AsMatrix(b)
	if err != nil {
		return nil, err
	}
	if a.Dim(1) != b.Dim(0) {
		return nil, fmt.Errorf("interop: %w: inner dimensions of %v and %v",
			tensor.ErrMismatchedDimensions, a.Shape(), b.Shape())
	}

	var product mat.Dense
	product.Mul(ma, mb)
	return FromMatrix(&product, a.Backend())
}
