package tensor

import "fmt"

// Slice narrows a tensor one dimension at a time, left to right.
//
// Index fixes the current dimension to a single position (its extent
// becomes 1 and the dimension is kept); Range restricts it to a half-open
// sub-range. Each step returns a new Slice whose cursor has moved to the
// next dimension. Dimensions never reached pass through unchanged.
//
// The first error sticks: later steps are no-ops and Tensor reports it.
//
//	row, err := t.Index(1).Range(0, 2).Tensor()
type Slice[T DType, B Backend] struct {
	dim     int
	view    View
	storage *Storage[T]
	backend B
	err     error
}

// Index fixes the cursor dimension to position i.
func (s *Slice[T, B]) Index(i int) *Slice[T, B] {
	next, d := s.advance()
	if next.err != nil {
		return next
	}
	if i < 0 || i >= next.view.Shape[d] {
		next.err = fmt.Errorf("slice: %w: index %d for dimension %d (size %d)",
			ErrIndexOutOfBounds, i, d, next.view.Shape[d])
		return next
	}
	next.view.Shape[d] = 1
	next.view.Offset[d] += i
	return next
}

// Range restricts the cursor dimension to [start, end).
func (s *Slice[T, B]) Range(start, end int) *Slice[T, B] {
	next, d := s.advance()
	if next.err != nil {
		return next
	}
	if start < 0 || end < start || end > next.view.Shape[d] {
		next.err = fmt.Errorf("slice: %w: range [%d, %d) for dimension %d (size %d)",
			ErrIndexOutOfBounds, start, end, d, next.view.Shape[d])
		return next
	}
	next.view.Shape[d] = end - start
	next.view.Offset[d] += start
	return next
}

// advance clones s and moves the cursor, returning the dimension to narrow.
func (s *Slice[T, B]) advance() (*Slice[T, B], int) {
	next := &Slice[T, B]{dim: s.dim, storage: s.storage, backend: s.backend, err: s.err}
	if s.err != nil {
		next.view = s.view
		return next, -1
	}
	next.view = s.view.Clone()
	if s.dim >= len(s.view.Shape) {
		next.err = fmt.Errorf("slice: %w: cannot narrow dimension %d of a rank %d tensor",
			ErrNotEnoughDimensions, s.dim, len(s.view.Shape))
		return next, -1
	}
	next.dim = s.dim + 1
	return next, s.dim
}

// Err returns the first error encountered while slicing.
func (s *Slice[T, B]) Err() error {
	return s.err
}

// Dim returns the cursor: the number of dimensions narrowed so far.
func (s *Slice[T, B]) Dim() int {
	return s.dim
}

// View returns a copy of the narrowed view.
func (s *Slice[T, B]) View() View {
	return s.view.Clone()
}

// Shape returns the narrowed shape.
func (s *Slice[T, B]) Shape() Shape {
	return s.view.Shape
}

// NumDims returns the rank, which slicing never changes.
func (s *Slice[T, B]) NumDims() int {
	return len(s.view.Shape)
}

// Tensor converts the slice into a tensor sharing the source storage.
func (s *Slice[T, B]) Tensor() (*Tensor[T, B], error) {
	if s.err != nil {
		return nil, s.err
	}
	return FromStorage(s.storage, s.view, s.backend)
}

// MustTensor is Tensor that panics on error.
func (s *Slice[T, B]) MustTensor() *Tensor[T, B] {
	t, err := s.Tensor()
	if err != nil {
		panic(err)
	}
	return t
}
