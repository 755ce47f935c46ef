package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerosOnesFull(t *testing.T) {
	backend := NewMockBackend()

	z, err := Zeros[float32](Shape{2, 3}, backend)
	require.NoError(t, err)
	assert.True(t, All(z, func(v float32) bool { return v == 0 }))

	o, err := Ones[int64](Shape{2, 3}, backend)
	require.NoError(t, err)
	assert.True(t, All(o, func(v int64) bool { return v == 1 }))

	f, err := Full(Shape{4}, uint8(7), backend)
	require.NoError(t, err)
	assert.Equal(t, []uint8{7, 7, 7, 7}, f.Storage().Data())
}

func TestFromSlice(t *testing.T) {
	backend := NewMockBackend()
	data := []float64{1, 2, 3, 4, 5, 6}

	x, err := FromSlice(data, Shape{2, 3}, backend)
	require.NoError(t, err)
	assert.Equal(t, data, values(t, x))

	data[0] = 100
	assert.InDelta(t, 1.0, x.MustAt(0, 0), 1e-12, "FromSlice copies its input")

	_, err = FromSlice(data, Shape{4, 2}, backend)
	require.ErrorIs(t, err, ErrMismatchedElementCount)
}

func TestLiterals(t *testing.T) {
	backend := NewMockBackend()

	s, err := Scalar(3.5, backend)
	require.NoError(t, err)
	assert.Equal(t, Shape{1}, s.Shape())

	v, err := Vector([]int32{1, 2, 3}, backend)
	require.NoError(t, err)
	assert.Equal(t, Shape{3}, v.Shape())

	m, err := Matrix([][]int{{1, 2, 3}, {4, 5, 6}}, backend)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, m.Shape())
	assert.Equal(t, 6, m.MustAt(1, 2))

	_, err = Matrix([][]int{{1, 2}, {3}}, backend)
	require.ErrorIs(t, err, ErrMismatchedDimensions)

	c, err := Tensor3([][][]int{{{1, 2}, {3, 4}}, {{5, 6}, {7, 8}}}, backend)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2, 2}, c.Shape())
	assert.Equal(t, 7, c.MustAt(1, 1, 0))

	_, err = Tensor3([][][]int{{{1, 2}}, {{3}}}, backend)
	require.ErrorIs(t, err, ErrMismatchedDimensions)
}

func TestArange(t *testing.T) {
	backend := NewMockBackend()

	x, err := Arange[float32](0, 5, 1, backend)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1, 2, 3, 4}, values(t, x))

	y, err := Arange(10, 0, -3, backend)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 7, 4}, values(t, y))

	e, err := Arange[uint8](5, 2, 1, backend)
	require.NoError(t, err)
	assert.Equal(t, 0, e.NumElements())

	_, err = Arange(0, 5, 0, backend)
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestCopy(t *testing.T) {
	x := seq[int](t, Shape{2, 3})
	y, err := Transpose(x, Indices{1, 0})
	require.NoError(t, err)

	c, err := Copy(y)
	require.NoError(t, err)
	assert.NotSame(t, x.Storage(), c.Storage())
	assert.True(t, c.View().Dense())
	assert.Equal(t, []int{0, 3, 1, 4, 2, 5}, c.Storage().Data())
}

func TestIotaIsTraversalOrder(t *testing.T) {
	x := seq[int](t, Shape{2, 3, 4})
	y, err := Reshape(x, Shape{6, 4})
	require.NoError(t, err)

	for i := range 6 {
		for j := range 4 {
			assert.Equal(t, i*4+j, y.MustAt(i, j))
		}
	}
}

func TestFillFunc(t *testing.T) {
	x, err := New[int](Shape{3}, NewMockBackend())
	require.NoError(t, err)
	n := 10
	FillFunc(x, func() int {
		n--
		return n
	})
	assert.Equal(t, []int{9, 8, 7}, values(t, x))
}
