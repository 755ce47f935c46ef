package tensor

import "fmt"

// Dot computes the product of a and b, dispatching on their ranks:
//
//	1 x 1: sum of pairwise products, shape {1}
//	2 x 1: matrix-vector product, shape {M}
//	1 x 2: b applied to a as matrix-vector (b · a), shape {rows of b}
//	2 x 2: matrix product, shape {M, N}
//	>2:    batched matrix product over the flattened leading dimensions,
//	       reshaped back to a's batch shape: [..., M, K] x [..., K, N] -> [..., M, N]
//
// Operands may be arbitrary views; the kernels address elements through
// their views. Inner or batch dimension mismatches fail with
// ErrMismatchedDimensions.
func Dot[T Numeric, B Backend](a, b *Tensor[T, B]) (*Tensor[T, B], error) {
	if a.released || b.released {
		return nil, ErrReleased
	}
	ra, rb := a.NumDims(), b.NumDims()
	switch {
	case ra == 0 || rb == 0:
		return nil, fmt.Errorf("dot: %w: operands of rank %d and %d", ErrNotEnoughDimensions, ra, rb)
	case ra > 2 || rb > 2:
		return batchProduct(a, b)
	case ra == 1 && rb == 1:
		return vectorVectorProduct(a, b)
	case rb == 1:
		return matrixVectorProduct(a, b)
	case ra == 1:
		return matrixVectorProduct(b, a)
	default:
		return matrixMatrixProduct(a, b)
	}
}

func vectorVectorProduct[T Numeric, B Backend](a, b *Tensor[T, B]) (*Tensor[T, B], error) {
	n := a.NumElements()
	if n != b.NumElements() {
		return nil, fmt.Errorf("dot: %w: vectors of %d and %d elements", ErrMismatchedElementCount, n, b.NumElements())
	}
	var sum T
	for i := range n {
		sum += a.get(Indices{i}) * b.get(Indices{i})
	}
	return Scalar(sum, a.backend)
}

func matrixVectorProduct[T Numeric, B Backend](m, v *Tensor[T, B]) (*Tensor[T, B], error) {
	rows, cols := m.Dim(0), m.Dim(1)
	if cols != v.Dim(0) {
		return nil, fmt.Errorf("dot: %w: matrix %v times vector %v", ErrMismatchedDimensions, m.Shape(), v.Shape())
	}
	result, err := New[T](Shape{rows}, m.backend)
	if err != nil {
		return nil, err
	}
	out := result.storage.Data()
	for i := range rows {
		var sum T
		for j := range cols {
			sum += m.get(Indices{i, j}) * v.get(Indices{j})
		}
		out[i] = sum
	}
	return result, nil
}

func matrixMatrixProduct[T Numeric, B Backend](a, b *Tensor[T, B]) (*Tensor[T, B], error) {
	m, k, n := a.Dim(0), a.Dim(1), b.Dim(1)
	if k != b.Dim(0) {
		return nil, fmt.Errorf("dot: %w: inner dimensions of %v and %v", ErrMismatchedDimensions, a.Shape(), b.Shape())
	}
	result, err := New[T](Shape{m, n}, a.backend)
	if err != nil {
		return nil, err
	}
	out := result.storage.Data()
	for i := range m {
		for j := range n {
			var sum T
			for kIdx := range k {
				sum += a.get(Indices{i, kIdx}) * b.get(Indices{kIdx, j})
			}
			out[i*n+j] = sum
		}
	}
	return result, nil
}

// batchProduct flattens leading dimensions of operands above rank 3, runs
// the 3D kernel and restores a's batch shape.
func batchProduct[T Numeric, B Backend](a, b *Tensor[T, B]) (*Tensor[T, B], error) {
	if a.NumDims() < 3 || b.NumDims() < 3 {
		return nil, fmt.Errorf("dot: %w: batched product needs two operands of rank >= 3, got %v and %v",
			ErrMismatchedDimensions, a.Shape(), b.Shape())
	}
	batchShape, err := BatchShape(a.Shape())
	if err != nil {
		return nil, fmt.Errorf("dot: %w", err)
	}

	lhs, err := flattenBatch(a)
	if err != nil {
		return nil, fmt.Errorf("dot: %w", err)
	}
	defer lhs.Release()
	rhs, err := flattenBatch(b)
	if err != nil {
		return nil, fmt.Errorf("dot: %w", err)
	}
	defer rhs.Release()

	result, err := batchMatrixProduct(lhs, rhs)
	if err != nil {
		return nil, err
	}
	if a.NumDims() == 3 {
		return result, nil
	}
	defer result.Release()
	return Reshape(result, append(batchShape, result.Dim(1), result.Dim(2)))
}

// flattenBatch views a rank >= 3 tensor as [batch, M, N]. The batch size is
// the product of the leading extents, so empty matrices still flatten.
func flattenBatch[T DType, B Backend](t *Tensor[T, B]) (*Tensor[T, B], error) {
	if t.NumDims() == 3 {
		return t.derive(t.view.Clone()), nil
	}
	batch, err := BatchShape(t.Shape())
	if err != nil {
		return nil, err
	}
	return Reshape(t, Shape{batch.NumElements(), t.Dim(-2), t.Dim(-1)})
}

// batchMatrixProduct computes [B, M, K] x [B, K, N] -> [B, M, N].
func batchMatrixProduct[T Numeric, B Backend](a, b *Tensor[T, B]) (*Tensor[T, B], error) {
	batch, m, k := a.Dim(0), a.Dim(1), a.Dim(2)
	n := b.Dim(2)
	if batch != b.Dim(0) {
		return nil, fmt.Errorf("dot: %w: batch sizes %d and %d", ErrMismatchedDimensions, batch, b.Dim(0))
	}
	if k != b.Dim(1) {
		return nil, fmt.Errorf("dot: %w: inner dimensions of %v and %v", ErrMismatchedDimensions, a.Shape(), b.Shape())
	}

	result, err := New[T](Shape{batch, m, n}, a.backend)
	if err != nil {
		return nil, err
	}
	out := result.storage.Data()
	for bIdx := range batch {
		cOffset := bIdx * m * n
		for i := range m {
			for j := range n {
				var sum T
				for kIdx := range k {
					sum += a.get(Indices{bIdx, i, kIdx}) * b.get(Indices{bIdx, kIdx, j})
				}
				out[cOffset+i*n+j] = sum
			}
		}
	}
	return result, nil
}
