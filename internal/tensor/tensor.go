package tensor

import (
	"fmt"
	"iter"
)

// Tensor couples a View with a shared reference to a Storage buffer.
//
// Type Parameters:
//   - T: element type (must satisfy DType)
//   - B: storage backend (must implement Backend)
//
// Tensors derived by slicing, re-viewing, transposing or broadcasting share
// the storage of their source: writes through one are visible through the
// others wherever their views overlap.
//
// Example:
//
//	backend := cpu.New()
//	t, _ := tensor.New[float64](Shape{2, 3, 4}, backend)
//	row, _ := t.Index(1).Tensor() // shape {1, 3, 4}, same storage
type Tensor[T DType, B Backend] struct {
	view     View
	storage  *Storage[T]
	backend  B
	released bool
}

// New creates a zero-filled row-major tensor.
func New[T DType, B Backend](shape Shape, b B) (*Tensor[T, B], error) {
	return NewOrdered[T](shape, RowMajor, b)
}

// NewOrdered creates a zero-filled tensor laid out in the given major order.
func NewOrdered[T DType, B Backend](shape Shape, major MajorOrder, b B) (*Tensor[T, B], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	storage, err := NewStorage[T](b, shape.NumElements())
	if err != nil {
		return nil, err
	}
	return &Tensor[T, B]{
		view:    DenseView(shape, major),
		storage: storage,
		backend: b,
	}, nil
}

// FromStorage creates a tensor over existing storage. The storage is
// retained; the view must stay within it.
func FromStorage[T DType, B Backend](storage *Storage[T], view View, b B) (*Tensor[T, B], error) {
	if err := checkView(storage, view); err != nil {
		return nil, err
	}
	storage.Retain()
	return &Tensor[T, B]{view: view.Clone(), storage: storage, backend: b}, nil
}

func checkView[T DType](storage *Storage[T], view View) error {
	if storage.Released() {
		return ErrReleased
	}
	if err := view.Validate(); err != nil {
		return err
	}
	if span := view.span(); span > storage.Len() {
		return fmt.Errorf("%w: view %v with offset %v reaches element %d of %d",
			ErrIndexOutOfBounds, view.Shape, view.Offset, span-1, storage.Len())
	}
	return nil
}

// Shape returns the tensor's shape.
func (t *Tensor[T, B]) Shape() Shape {
	return t.view.Shape
}

// Dim returns the extent of dimension d. Negative d counts from the end.
func (t *Tensor[T, B]) Dim(d int) int {
	return t.view.Shape[normalizeDim(d, len(t.view.Shape))]
}

// NumDims returns the rank.
func (t *Tensor[T, B]) NumDims() int {
	return len(t.view.Shape)
}

// NumElements returns the total number of elements.
func (t *Tensor[T, B]) NumElements() int {
	return t.view.NumElements()
}

// DType returns the tensor's data type.
func (t *Tensor[T, B]) DType() DataType {
	return inferDataType[T]()
}

// View returns a copy of the tensor's view.
func (t *Tensor[T, B]) View() View {
	return t.view.Clone()
}

// Storage returns the shared storage. Pointer equality of two tensors'
// storage means they alias.
func (t *Tensor[T, B]) Storage() *Storage[T] {
	return t.storage
}

// Backend returns the storage backend.
func (t *Tensor[T, B]) Backend() B {
	return t.backend
}

// Contiguous reports whether the view's order is canonical row-major.
func (t *Tensor[T, B]) Contiguous() bool {
	return t.view.Contiguous()
}

// Indices returns a generator over every index tuple of the tensor, in the
// traversal order of its view.
func (t *Tensor[T, B]) Indices() *IndexGenerator {
	return ViewIndices(t.view)
}

// All ranges over (index, value) pairs in traversal order.
func (t *Tensor[T, B]) All() iter.Seq2[Indices, T] {
	return func(yield func(Indices, T) bool) {
		for idx := range t.Indices().All() {
			if !yield(idx, t.get(idx)) {
				return
			}
		}
	}
}

// At returns the element at the given indices.
//
// Example:
//
//	v, err := t.At(1, 2) // Row 1, column 2
func (t *Tensor[T, B]) At(indices ...int) (T, error) {
	return t.AtIndex(indices)
}

// AtIndex returns the element at a full index tuple.
func (t *Tensor[T, B]) AtIndex(index Indices) (T, error) {
	var zero T
	offset, err := t.offset(index)
	if err != nil {
		return zero, err
	}
	return t.storage.At(offset), nil
}

// MustAt is At that panics on error.
func (t *Tensor[T, B]) MustAt(indices ...int) T {
	v, err := t.At(indices...)
	if err != nil {
		panic(err)
	}
	return v
}

// AtScalar returns the element at i along the tensor's only non-singleton
// dimension.
func (t *Tensor[T, B]) AtScalar(i int) (T, error) {
	var zero T
	if t.released {
		return zero, ErrReleased
	}
	offset, err := t.view.ScalarOffsetOf(i)
	if err != nil {
		return zero, err
	}
	return t.storage.At(offset), nil
}

// Set writes value at the given indices.
func (t *Tensor[T, B]) Set(value T, indices ...int) error {
	return t.SetIndex(indices, value)
}

// SetIndex writes value at a full index tuple.
func (t *Tensor[T, B]) SetIndex(index Indices, value T) error {
	offset, err := t.offset(index)
	if err != nil {
		return err
	}
	t.storage.Set(offset, value)
	return nil
}

func (t *Tensor[T, B]) offset(index Indices) (int, error) {
	if t.released {
		return 0, ErrReleased
	}
	return t.view.OffsetOf(index)
}

// get and put skip bounds checks; index must come from t's own generator
// or be validated against t's shape beforehand.
func (t *Tensor[T, B]) get(index Indices) T {
	return t.storage.data[t.view.uncheckedOffset(index)]
}

func (t *Tensor[T, B]) put(index Indices, v T) {
	t.storage.data[t.view.uncheckedOffset(index)] = v
}

// Index starts a slice by fixing dimension 0 to i.
func (t *Tensor[T, B]) Index(i int) *Slice[T, B] {
	return t.slice().Index(i)
}

// Range starts a slice by restricting dimension 0 to [start, end).
func (t *Tensor[T, B]) Range(start, end int) *Slice[T, B] {
	return t.slice().Range(start, end)
}

func (t *Tensor[T, B]) slice() *Slice[T, B] {
	s := &Slice[T, B]{view: t.view, storage: t.storage, backend: t.backend}
	if t.released {
		s.err = ErrReleased
	}
	return s
}

// WithView returns a tensor over the same storage with a new view.
func (t *Tensor[T, B]) WithView(view View) (*Tensor[T, B], error) {
	if t.released {
		return nil, ErrReleased
	}
	return FromStorage(t.storage, view, t.backend)
}

// derive is WithView for views built internally from t's own view.
func (t *Tensor[T, B]) derive(view View) *Tensor[T, B] {
	t.storage.Retain()
	return &Tensor[T, B]{view: view, storage: t.storage, backend: t.backend}
}

// Release drops this tensor's reference to its storage. The tensor must not
// be used afterwards. Calling Release twice is a no-op.
func (t *Tensor[T, B]) Release() {
	if t.released {
		return
	}
	t.released = true
	t.storage.Release()
}

// String renders the tensor as nested bracketed rows.
func (t *Tensor[T, B]) String() string {
	return Format(t, DefaultFormatConfig())
}

// normalizeDim maps a negative dimension to its positive counterpart.
func normalizeDim(dim, rank int) int {
	if dim < 0 {
		return dim + rank
	}
	return dim
}
