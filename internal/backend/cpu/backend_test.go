package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndview/internal/tensor"
)

func TestCPUBackend(t *testing.T) {
	backend := New()
	assert.Equal(t, "CPU", backend.Name())
	assert.Equal(t, tensor.CPU, backend.Device())

	buf, err := backend.Allocate(16)
	require.NoError(t, err)
	assert.Len(t, buf, 16)
	for _, b := range buf {
		assert.Zero(t, b)
	}

	_, err = backend.Allocate(-1)
	require.ErrorIs(t, err, tensor.ErrInvalidShape)
}

func TestStorageOnCPU(t *testing.T) {
	s, err := tensor.NewStorage[float64](New(), 3)
	require.NoError(t, err)
	assert.Equal(t, tensor.CPU, s.Device())
	assert.Equal(t, 24, s.ByteSize())
}

// The scenarios below walk a tensor through the full pipeline on the CPU
// backend: creation, re-viewing, copying and products.

func TestIotaReshape(t *testing.T) {
	backend := New()
	x, err := tensor.New[float64](tensor.Shape{2, 3, 4}, backend)
	require.NoError(t, err)
	tensor.Iota(x, 0, 1)

	y, err := tensor.Reshape(x, tensor.Shape{tensor.Infer, 4})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{6, 4}, y.Shape())
	for i := range 6 {
		for j := range 4 {
			assert.InDelta(t, float64(i*4+j), y.MustAt(i, j), 1e-12)
		}
	}
}

func TestTransposeThenReshape(t *testing.T) {
	backend := New()
	x, err := tensor.New[float64](tensor.Shape{2, 3, 4}, backend)
	require.NoError(t, err)
	tensor.Iota(x, 0, 1)

	y, err := tensor.Transpose(x, tensor.Indices{1, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3, 2, 4}, y.Shape())
	assert.Equal(t, tensor.Indices{4, 12, 1}, y.View().Strides)
	assert.Same(t, x.Storage(), y.Storage())

	z, err := tensor.Reshape(y, tensor.Shape{6, 4})
	require.NoError(t, err)
	assert.NotSame(t, x.Storage(), z.Storage())

	// Row r of z is y[r/2][r%2] = x[r%2][r/2].
	for r := range 6 {
		for k := range 4 {
			assert.InDelta(t, x.MustAt(r%2, r/2, k), z.MustAt(r, k), 1e-12)
		}
	}
}

func TestBroadcastRows(t *testing.T) {
	backend := New()
	v, err := tensor.Vector([]int32{1, 2, 3, 4}, backend)
	require.NoError(t, err)

	b, err := tensor.BroadcastTo(v, tensor.Shape{3, 4})
	require.NoError(t, err)
	assert.Equal(t, tensor.Indices{0, 1}, b.View().Strides)
	for i := range 3 {
		for j := range 4 {
			assert.Equal(t, int32(j+1), b.MustAt(i, j))
		}
	}
}

func TestMatrixProduct(t *testing.T) {
	backend := New()
	a, err := tensor.Full(tensor.Shape{4, 3}, float32(2), backend)
	require.NoError(t, err)
	b, err := tensor.Full(tensor.Shape{3, 4}, float32(2), backend)
	require.NoError(t, err)

	c, err := tensor.Dot(a, b)
	require.NoError(t, err)
	want, err := tensor.Full(tensor.Shape{4, 4}, float32(12), backend)
	require.NoError(t, err)
	assert.True(t, tensor.Equals(c, want))
}

func TestBatchProduct(t *testing.T) {
	backend := New()
	a, err := tensor.Ones[float64](tensor.Shape{2, 3, 4}, backend)
	require.NoError(t, err)
	b, err := tensor.Ones[float64](tensor.Shape{2, 4, 6}, backend)
	require.NoError(t, err)

	c, err := tensor.Dot(a, b)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3, 6}, c.Shape())
}

func TestLeadingSingletonScalarIndex(t *testing.T) {
	backend := New()
	x, err := tensor.New[int](tensor.Shape{1, 1, 1, 5}, backend)
	require.NoError(t, err)
	assert.Equal(t, tensor.Indices{5, 5, 5, 1}, x.View().Strides)
	tensor.Iota(x, 10, 1)

	for i := range 5 {
		v, err := x.AtScalar(i)
		require.NoError(t, err)
		assert.Equal(t, 10+i, v)
	}
}
