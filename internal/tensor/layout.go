package tensor

import "fmt"

// Layout binds a shape to a set of strides.
//
// Strides need not be the dense values MakeStrides would derive: broadcast
// dimensions carry stride 0 and narrowed views keep their parent's strides.
type Layout struct {
	Shape   Shape
	Strides Indices
}

// NewLayout creates a layout, checking that shape and strides agree in length.
func NewLayout(shape Shape, strides Indices) (Layout, error) {
	if len(shape) != len(strides) {
		return Layout{}, fmt.Errorf("%w: shape %v and strides %v differ in length", ErrInvalidShape, shape, strides)
	}
	if err := shape.Validate(); err != nil {
		return Layout{}, err
	}
	if err := validateStrides(strides); err != nil {
		return Layout{}, err
	}
	return Layout{Shape: shape.Clone(), Strides: strides.Clone()}, nil
}

// OrderedLayout creates a dense layout for shape with strides derived from order.
func OrderedLayout(shape Shape, order Indices) Layout {
	return Layout{Shape: shape.Clone(), Strides: MakeStrides(shape, order)}
}

// NumElements returns the number of elements the layout spans.
func (l Layout) NumElements() int {
	return l.Shape.NumElements()
}

// NumDims returns the rank of the layout.
func (l Layout) NumDims() int {
	return len(l.Shape)
}

// OffsetOf returns the storage offset of a full index tuple.
func (l Layout) OffsetOf(index Indices) (int, error) {
	return offsetOf(l.Shape, l.Strides, nil, index)
}

// ScalarOffsetOf applies i to the single dimension whose extent is not 1;
// all singleton dimensions are fixed at 0.
func (l Layout) ScalarOffsetOf(i int) (int, error) {
	return scalarOffsetOf(l.Shape, l.Strides, nil, i)
}

// View extends a Layout with a per-dimension offset and a traversal order.
//
// Offset is added to each index before it is multiplied by the stride, so a
// view can address a sub-region of a larger buffer. Order records how the
// strides were derived (fastest dimension first); it drives traversal and
// the contiguity test but never the offset computation.
type View struct {
	Layout
	Offset Indices
	Order  Indices
}

// NewView creates a view and validates it.
func NewView(shape Shape, offset, order, strides Indices) (View, error) {
	v := View{
		Layout: Layout{Shape: shape.Clone(), Strides: strides.Clone()},
		Offset: offset.Clone(),
		Order:  order.Clone(),
	}
	if err := v.Validate(); err != nil {
		return View{}, err
	}
	return v, nil
}

// ViewOf wraps a layout in a zero-offset view with the given order.
func ViewOf(l Layout, order Indices) View {
	return View{
		Layout: Layout{Shape: l.Shape.Clone(), Strides: l.Strides.Clone()},
		Offset: make(Indices, len(l.Shape)),
		Order:  order.Clone(),
	}
}

// DenseView returns a zero-offset view over a freshly laid out buffer.
func DenseView(shape Shape, major MajorOrder) View {
	order := MakeOrder(len(shape), major)
	return ViewOf(OrderedLayout(shape, order), order)
}

// Validate checks the view's internal consistency.
func (v View) Validate() error {
	rank := len(v.Shape)
	if len(v.Strides) != rank || len(v.Offset) != rank || len(v.Order) != rank {
		return fmt.Errorf("%w: shape %v, strides %v, offset %v, order %v differ in length",
			ErrInvalidShape, v.Shape, v.Strides, v.Offset, v.Order)
	}
	if err := v.Shape.Validate(); err != nil {
		return err
	}
	if err := validateStrides(v.Strides); err != nil {
		return err
	}
	for d, off := range v.Offset {
		if off < 0 {
			return fmt.Errorf("%w: negative offset %d in dimension %d", ErrIndexOutOfBounds, off, d)
		}
	}
	if !IsPermutation(v.Order, rank) {
		return fmt.Errorf("%w: order %v for rank %d", ErrInvalidPermutation, v.Order, rank)
	}
	return nil
}

// Clone returns a deep copy of the view.
func (v View) Clone() View {
	return View{
		Layout: Layout{Shape: v.Shape.Clone(), Strides: v.Strides.Clone()},
		Offset: v.Offset.Clone(),
		Order:  v.Order.Clone(),
	}
}

// OffsetOf returns the storage offset of a full index tuple:
// sum over d of (index[d] + offset[d]) * strides[d].
func (v View) OffsetOf(index Indices) (int, error) {
	return offsetOf(v.Shape, v.Strides, v.Offset, index)
}

// ScalarOffsetOf is the view counterpart of Layout.ScalarOffsetOf.
func (v View) ScalarOffsetOf(i int) (int, error) {
	return scalarOffsetOf(v.Shape, v.Strides, v.Offset, i)
}

// SubView narrows the view to shape starting at offset (relative to this
// view). Strides and order are kept.
func (v View) SubView(shape Shape, offset Indices) (View, error) {
	if len(shape) != len(v.Shape) || len(offset) != len(v.Shape) {
		return View{}, fmt.Errorf("%w: sub-view shape %v, offset %v for rank %d",
			ErrInvalidShape, shape, offset, len(v.Shape))
	}
	sub := v.Clone()
	for d := range shape {
		if shape[d] < 0 || offset[d] < 0 || offset[d]+shape[d] > v.Shape[d] {
			return View{}, fmt.Errorf("%w: sub-view [%d, %d) of dimension %d (size %d)",
				ErrIndexOutOfBounds, offset[d], offset[d]+shape[d], d, v.Shape[d])
		}
		sub.Shape[d] = shape[d]
		sub.Offset[d] += offset[d]
	}
	return sub, nil
}

// Contiguous reports whether the traversal order is the canonical row-major
// order for the view's rank.
//
// The test is structural: a view whose strides happen to be dense under a
// different order is reported as non-contiguous, and narrowing or
// broadcasting a row-major view does not change its answer.
func (v View) Contiguous() bool {
	return v.Order.Equal(RowMajorOrder(len(v.Shape)))
}

// Dense reports whether the view is contiguous, unnarrowed and its strides
// are exactly the row-major ones, so its elements occupy storage[0:n] in
// row-major order.
func (v View) Dense() bool {
	if !v.Contiguous() || !v.Strides.Equal(MakeStrides(v.Shape, v.Order)) {
		return false
	}
	for _, off := range v.Offset {
		if off != 0 {
			return false
		}
	}
	return true
}

// TraversalStrides returns the dense strides implied by the view's order.
// They drive the index generator; the view's own strides may be zero or
// sparse and are unsuitable for that.
func (v View) TraversalStrides() Indices {
	return MakeStrides(v.Shape, v.Order)
}

// span returns one past the largest storage offset the view can address,
// or 0 for an empty view.
func (v View) span() int {
	last := 0
	for d, dim := range v.Shape {
		if dim == 0 {
			return 0
		}
		last += (v.Offset[d] + dim - 1) * v.Strides[d]
	}
	return last + 1
}

// validateStrides rejects negative strides. Offsets are computed as a
// non-negative sum, so a view can only address storage at or after its base.
func validateStrides(strides Indices) error {
	for d, s := range strides {
		if s < 0 {
			return fmt.Errorf("%w: negative stride %d in dimension %d", ErrInvalidShape, s, d)
		}
	}
	return nil
}

// offsetOf computes a bounds-checked storage offset. base may be nil.
func offsetOf(shape Shape, strides, base, index Indices) (int, error) {
	if len(index) != len(shape) {
		return 0, fmt.Errorf("%w: got %d indices for rank %d", ErrIndexOutOfBounds, len(index), len(shape))
	}
	offset := 0
	for d, i := range index {
		if i < 0 || i >= shape[d] {
			return 0, fmt.Errorf("%w: index %d for dimension %d (size %d)", ErrIndexOutOfBounds, i, d, shape[d])
		}
		if base != nil {
			i += base[d]
		}
		offset += i * strides[d]
	}
	return offset, nil
}

func scalarOffsetOf(shape Shape, strides, base Indices, i int) (int, error) {
	dim := -1
	for d, n := range shape {
		if n == 1 {
			continue
		}
		if dim >= 0 {
			return 0, fmt.Errorf("%w: dimensions %d and %d of %v are not singleton", ErrAmbiguousIndex, dim, d, shape)
		}
		dim = d
	}

	index := make(Indices, len(shape))
	if dim >= 0 {
		index[dim] = i
	} else if i != 0 {
		return 0, fmt.Errorf("%w: index %d for all-singleton shape %v", ErrIndexOutOfBounds, i, shape)
	}
	return offsetOf(shape, strides, base, index)
}

// uncheckedOffset is offsetOf without validation, for indices produced by
// an index generator over the same view.
func (v View) uncheckedOffset(index Indices) int {
	offset := 0
	for d, i := range index {
		offset += (i + v.Offset[d]) * v.Strides[d]
	}
	return offset
}
