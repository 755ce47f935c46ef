package tensor

import "fmt"

// Transpose permutes the dimensions of t: dimension i of the result is
// dimension order[i] of t. Shape, offset and strides are permuted; the data
// is shared.
//
// Example:
//
//	x, _ := tensor.New[float32](Shape{2, 3, 4}, backend) // strides {12, 4, 1}
//	y, _ := tensor.Transpose(x, Indices{1, 0, 2})       // shape {3, 2, 4}, strides {4, 12, 1}
func Transpose[T DType, B Backend](t *Tensor[T, B], order Indices) (*Tensor[T, B], error) {
	if t.released {
		return nil, ErrReleased
	}
	rank := t.NumDims()
	if !IsPermutation(order, rank) {
		return nil, fmt.Errorf("transpose: %w: %v for rank %d", ErrInvalidPermutation, order, rank)
	}

	old := t.view
	v := View{
		Layout: Layout{Shape: make(Shape, rank), Strides: make(Indices, rank)},
		Offset: make(Indices, rank),
		Order:  make(Indices, rank),
	}
	for i, d := range order {
		v.Shape[i] = old.Shape[d]
		v.Strides[i] = old.Strides[d]
		v.Offset[i] = old.Offset[d]
	}

	// The traversal order follows the data: old dimension d is now inv[d].
	inv := InversePermutation(order)
	for k, d := range old.Order {
		v.Order[k] = inv[d]
	}
	return t.derive(v), nil
}

// Reshape returns a tensor with the same elements, in row-major order, and
// a new shape. One extent may be Infer, computed from the element count.
//
// A dense row-major source (see View.Dense) is re-viewed without copying.
// Any other source is first copied into fresh row-major storage. That
// includes narrowed row-major views, which Contiguous still reports as
// contiguous, as well as transposed, column-major and broadcast ones.
//
// Example:
//
//	y, err := tensor.Reshape(x, Shape{Infer, 4}) // {2, 3, 4} -> {6, 4}
func Reshape[T DType, B Backend](t *Tensor[T, B], shape Shape) (*Tensor[T, B], error) {
	if t.released {
		return nil, ErrReleased
	}
	resolved, err := resolveShape(t.Shape(), shape)
	if err != nil {
		return nil, fmt.Errorf("reshape: %w", err)
	}

	src := t
	if !t.view.Dense() {
		src, err = Copy(t)
		if err != nil {
			return nil, fmt.Errorf("reshape: %w", err)
		}
		defer src.Release()
	}
	return src.derive(DenseView(resolved, RowMajor)), nil
}

// BroadcastTo returns a view of t with the target shape. Shapes are aligned
// from the trailing dimension; every extent of t must match the target or
// be 1. Size-1 and new leading dimensions get stride 0, so all their
// positions alias the same stored element.
//
// Example:
//
//	v, _ := tensor.Vector([]float32{1, 2, 3, 4}, backend)
//	b, _ := tensor.BroadcastTo(v, Shape{3, 4}) // strides {0, 1}
func BroadcastTo[T DType, B Backend](t *Tensor[T, B], shape Shape) (*Tensor[T, B], error) {
	if t.released {
		return nil, ErrReleased
	}
	if t.Shape().Equal(shape) {
		return t.derive(t.view.Clone()), nil
	}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("broadcast: %w", err)
	}
	if !BroadcastableTo(t.Shape(), shape) {
		return nil, fmt.Errorf("%w: %v to %v", ErrCannotBroadcast, t.Shape(), shape)
	}
	return broadcastTo(t, shape)
}

// broadcastTo assumes BroadcastableTo(t.Shape(), shape).
func broadcastTo[T DType, B Backend](t *Tensor[T, B], shape Shape) (*Tensor[T, B], error) {
	src := t.view
	v := View{
		Layout: Layout{Shape: shape.Clone(), Strides: make(Indices, len(shape))},
		Offset: make(Indices, len(shape)),
		Order:  RowMajorOrder(len(shape)),
	}

	// base collects the displacement of size-1 dimensions that were
	// narrowed by slicing; stride 0 would otherwise drop it.
	base := 0
	diff := len(shape) - len(src.Shape)
	for i, dim := range src.Shape {
		switch {
		case dim == 1 && shape[diff+i] != 1:
			base += src.Offset[i] * src.Strides[i]
		case dim == 1 && src.Offset[i] == 0:
			// stride stays 0
		default:
			v.Strides[diff+i] = src.Strides[i]
			v.Offset[diff+i] = src.Offset[i]
		}
	}

	if base != 0 && !foldBase(&v, base) {
		dense, err := Copy(t)
		if err != nil {
			return nil, fmt.Errorf("broadcast: %w", err)
		}
		defer dense.Release()
		return broadcastTo(dense, shape)
	}
	return t.derive(v), nil
}

// Broadcast brings a and b to a common shape. Only one-directional
// broadcasting is supported: one operand's shape must broadcast to the
// other's. Shapes like {3, 1} and {1, 4} are rejected.
func Broadcast[T DType, B Backend](a, b *Tensor[T, B]) (*Tensor[T, B], *Tensor[T, B], error) {
	if a.released || b.released {
		return nil, nil, ErrReleased
	}
	if a.Shape().Equal(b.Shape()) {
		return a.derive(a.view.Clone()), b.derive(b.view.Clone()), nil
	}

	aToB := BroadcastableTo(a.Shape(), b.Shape())
	bToA := BroadcastableTo(b.Shape(), a.Shape())
	if !aToB && !bToA {
		return nil, nil, fmt.Errorf("%w: %v and %v", ErrCannotBroadcast, a.Shape(), b.Shape())
	}

	if aToB {
		ra, err := broadcastTo(a, b.Shape())
		if err != nil {
			return nil, nil, err
		}
		return ra, b.derive(b.view.Clone()), nil
	}
	rb, err := broadcastTo(b, a.Shape())
	if err != nil {
		return nil, nil, err
	}
	return a.derive(a.view.Clone()), rb, nil
}

// Squeeze removes dimension dim, which must have extent 1.
// Supports negative dim indexing. This is a view operation when the
// removed dimension's displacement can be carried by another dimension.
//
// Example:
//
//	row, _ := x.Index(1).Tensor()  // Shape: [1, 4]
//	v, _ := tensor.Squeeze(row, 0) // Shape: [4]
func Squeeze[T DType, B Backend](t *Tensor[T, B], dim int) (*Tensor[T, B], error) {
	if t.released {
		return nil, ErrReleased
	}
	rank := t.NumDims()
	d := normalizeDim(dim, rank)
	if d < 0 || d >= rank {
		return nil, fmt.Errorf("squeeze: %w: dimension %d of rank %d", ErrNotEnoughDimensions, dim, rank)
	}
	if t.view.Shape[d] != 1 {
		return nil, fmt.Errorf("squeeze: %w: dimension %d has extent %d", ErrMismatchedDimensions, d, t.view.Shape[d])
	}

	src := t.view
	v := View{
		Layout: Layout{Shape: make(Shape, 0, rank-1), Strides: make(Indices, 0, rank-1)},
		Offset: make(Indices, 0, rank-1),
		Order:  make(Indices, 0, rank-1),
	}
	for i := range src.Shape {
		if i == d {
			continue
		}
		v.Shape = append(v.Shape, src.Shape[i])
		v.Strides = append(v.Strides, src.Strides[i])
		v.Offset = append(v.Offset, src.Offset[i])
	}
	for _, o := range src.Order {
		switch {
		case o < d:
			v.Order = append(v.Order, o)
		case o > d:
			v.Order = append(v.Order, o-1)
		}
	}

	if base := src.Offset[d] * src.Strides[d]; base != 0 && !foldBase(&v, base) {
		dense, err := Copy(t)
		if err != nil {
			return nil, fmt.Errorf("squeeze: %w", err)
		}
		defer dense.Release()
		return Squeeze(dense, d)
	}
	return t.derive(v), nil
}

// Unsqueeze inserts a dimension of extent 1 at position dim.
// Supports negative dim indexing (-1 appends). This is a view operation.
func Unsqueeze[T DType, B Backend](t *Tensor[T, B], dim int) (*Tensor[T, B], error) {
	if t.released {
		return nil, ErrReleased
	}
	rank := t.NumDims()
	d := dim
	if d < 0 {
		d += rank + 1
	}
	if d < 0 || d > rank {
		return nil, fmt.Errorf("unsqueeze: %w: position %d for rank %d", ErrNotEnoughDimensions, dim, rank)
	}

	src := t.view
	v := View{
		Layout: Layout{
			Shape:   append(append(src.Shape[:d:d].Clone(), 1), src.Shape[d:]...),
			Strides: append(append(src.Strides[:d:d].Clone(), 0), src.Strides[d:]...),
		},
		Offset: append(append(src.Offset[:d:d].Clone(), 0), src.Offset[d:]...),
		Order:  make(Indices, 0, rank+1),
	}

	// Place the new dimension next to its slower neighbour so a row-major
	// source stays row-major.
	if d == rank {
		v.Order = append(v.Order, d)
	}
	for _, o := range src.Order {
		if o >= d {
			o++
		}
		v.Order = append(v.Order, o)
		if o == d+1 {
			v.Order = append(v.Order, d)
		}
	}
	v.Strides[d] = MakeStrides(v.Shape, v.Order)[d]
	return t.derive(v), nil
}

// foldBase moves a constant storage displacement into the offset of a
// dimension whose stride divides it, fastest dimension first.
func foldBase(v *View, base int) bool {
	for _, d := range v.Order {
		s := v.Strides[d]
		if s > 0 && base%s == 0 && (v.Offset[d]+base/s) >= 0 {
			v.Offset[d] += base / s
			return true
		}
	}
	return false
}
