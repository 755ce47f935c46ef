package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustFromSlice creates a tensor from a slice, failing the test on error.
func mustFromSlice[T DType, B Backend](t *testing.T, data []T, shape Shape, backend B) *Tensor[T, B] {
	t.Helper()
	tensor, err := FromSlice(data, shape, backend)
	require.NoError(t, err)
	return tensor
}

// seq creates a row-major tensor holding 0, 1, 2, ...
func seq[T Numeric](t *testing.T, shape Shape) *Tensor[T, *MockBackend] {
	t.Helper()
	tensor, err := New[T](shape, NewMockBackend())
	require.NoError(t, err)
	Iota(tensor, 0, 1)
	return tensor
}

// values collects the elements of a tensor in row-major logical order.
func values[T DType, B Backend](t *testing.T, tensor *Tensor[T, B]) []T {
	t.Helper()
	out := make([]T, 0, tensor.NumElements())
	for idx := range RowMajorIndices(tensor.Shape()).All() {
		v, err := tensor.AtIndex(idx)
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

func TestNew(t *testing.T) {
	backend := NewMockBackend()
	x, err := New[float32](Shape{2, 3, 4}, backend)
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 3, 4}, x.Shape())
	assert.Equal(t, 3, x.NumDims())
	assert.Equal(t, 24, x.NumElements())
	assert.Equal(t, Float32, x.DType())
	assert.Equal(t, Indices{12, 4, 1}, x.View().Strides)
	assert.True(t, x.Contiguous())
	assert.Equal(t, 1, backend.Allocations())

	_, err = New[float32](Shape{2, -3}, backend)
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestNewOrdered(t *testing.T) {
	x, err := NewOrdered[int](Shape{2, 3, 4}, ColumnMajor, NewMockBackend())
	require.NoError(t, err)
	assert.Equal(t, Indices{1, 2, 6}, x.View().Strides)
	assert.False(t, x.Contiguous())

	// Iota follows traversal order, so storage holds 0..23 in memory order.
	Iota(x, 0, 1)
	for i, v := range x.Storage().Data() {
		assert.Equal(t, i, v)
	}
	v, err := x.At(1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestTensorAtSet(t *testing.T) {
	x := seq[float64](t, Shape{2, 3})

	v, err := x.At(1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, v, 1e-12)

	require.NoError(t, x.Set(42, 0, 1))
	assert.InDelta(t, 42.0, x.MustAt(0, 1), 1e-12)

	_, err = x.At(2, 0)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
	require.ErrorIs(t, x.Set(1, 0), ErrIndexOutOfBounds)

	assert.Panics(t, func() { x.MustAt(9, 9) })
}

func TestTensorDim(t *testing.T) {
	x := seq[int](t, Shape{2, 3, 4})
	assert.Equal(t, 2, x.Dim(0))
	assert.Equal(t, 4, x.Dim(-1))
	assert.Equal(t, 3, x.Dim(-2))
}

func TestTensorAtScalar(t *testing.T) {
	x := seq[int](t, Shape{1, 1, 1, 5})
	for i := range 5 {
		v, err := x.AtScalar(i)
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}

	y := seq[int](t, Shape{2, 2})
	_, err := y.AtScalar(0)
	require.ErrorIs(t, err, ErrAmbiguousIndex)
}

func TestTensorAll(t *testing.T) {
	x := seq[int](t, Shape{2, 2})
	var got []int
	for idx, v := range x.All() {
		assert.Equal(t, idx[0]*2+idx[1], v)
		got = append(got, v)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, got)
}

func TestFromStorage(t *testing.T) {
	backend := NewMockBackend()
	x := seq[int](t, Shape{3, 4})

	v, err := NewView(Shape{2, 2}, Indices{1, 1}, RowMajorOrder(2), Indices{4, 1})
	require.NoError(t, err)
	y, err := FromStorage(x.Storage(), v, backend)
	require.NoError(t, err)
	assert.Same(t, x.Storage(), y.Storage())
	assert.Equal(t, 2, x.Storage().Refs())
	assert.Equal(t, []int{5, 6, 9, 10}, values(t, y))

	tooBig, err := NewView(Shape{3, 4}, Indices{1, 0}, RowMajorOrder(2), Indices{4, 1})
	require.NoError(t, err)
	_, err = FromStorage(x.Storage(), tooBig, backend)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestWithView(t *testing.T) {
	x := seq[int](t, Shape{2, 3})

	y, err := x.WithView(DenseView(Shape{3, 2}, RowMajor))
	require.NoError(t, err)
	assert.Same(t, x.Storage(), y.Storage())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, values(t, y))

	require.NoError(t, y.Set(10, 2, 1))
	assert.Equal(t, 10, x.MustAt(1, 2), "views alias their storage")
}

func TestRelease(t *testing.T) {
	x := seq[float32](t, Shape{2, 2})
	y, err := x.WithView(x.View())
	require.NoError(t, err)

	x.Release()
	x.Release()
	assert.Equal(t, 1, y.Storage().Refs(), "double release is a no-op")

	_, err = x.At(0, 0)
	require.ErrorIs(t, err, ErrReleased)
	_, err = Transpose(x, Indices{1, 0})
	require.ErrorIs(t, err, ErrReleased)
	_, err = x.Index(0).Tensor()
	require.ErrorIs(t, err, ErrReleased)
	assert.Equal(t, "Tensor(released)", x.String())

	// The surviving view still reads the data.
	assert.InDelta(t, 3.0, y.MustAt(1, 1), 1e-6)

	y.Release()
	assert.True(t, y.Storage().Released())
	_, err = FromStorage(y.Storage(), DenseView(Shape{2, 2}, RowMajor), y.Backend())
	require.ErrorIs(t, err, ErrReleased)
}

func TestBoolTensor(t *testing.T) {
	x, err := Full(Shape{2, 2}, true, NewMockBackend())
	require.NoError(t, err)
	assert.Equal(t, Bool, x.DType())
	assert.True(t, All(x, func(b bool) bool { return b }))
}
