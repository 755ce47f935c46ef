package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DType Tests

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float32, 4},
		{Float64, 8},
		{Int32, 4},
		{Int64, 8},
		{Uint8, 1},
		{Bool, 1},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestInferDataType(t *testing.T) {
	assert.Equal(t, Float32, inferDataType[float32]())
	assert.Equal(t, Float64, inferDataType[float64]())
	assert.Equal(t, Int32, inferDataType[int32]())
	assert.Equal(t, Int64, inferDataType[int64]())
	assert.Equal(t, Uint8, inferDataType[uint8]())
	assert.Equal(t, Bool, inferDataType[bool]())
	assert.Equal(t, Int, inferDataType[int]())
}

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
		{Shape{2, 0, 4}, 0},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.expected {
			t.Errorf("Shape%v.NumElements() = %d, want %d", tt.shape, got, tt.expected)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	require.NoError(t, Shape{2, 3}.Validate())
	require.NoError(t, Shape{0, 3}.Validate(), "zero extents describe empty tensors")
	require.ErrorIs(t, Shape{2, -1}.Validate(), ErrInvalidShape)
}

func TestMakeStrides(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		order Indices
		want  Indices
	}{
		{"row-major 3d", Shape{2, 3, 4}, RowMajorOrder(3), Indices{12, 4, 1}},
		{"column-major 3d", Shape{2, 3, 4}, ColMajorOrder(3), Indices{1, 2, 6}},
		{"row-major leading singletons", Shape{1, 1, 1, 5}, RowMajorOrder(4), Indices{5, 5, 5, 1}},
		{"scalar", Shape{}, RowMajorOrder(0), Indices{}},
		{"permuted", Shape{3, 2, 4}, Indices{2, 0, 1}, Indices{4, 12, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MakeStrides(tt.shape, tt.order))
		})
	}
}

func TestMakeOrder(t *testing.T) {
	assert.Equal(t, Indices{2, 1, 0}, MakeOrder(3, RowMajor))
	assert.Equal(t, Indices{0, 1, 2}, MakeOrder(3, ColumnMajor))
	assert.Equal(t, "row-major", RowMajor.String())
	assert.Equal(t, "column-major", ColumnMajor.String())
}

func TestPermutation(t *testing.T) {
	assert.True(t, IsPermutation(Indices{1, 0, 2}, 3))
	assert.False(t, IsPermutation(Indices{1, 1, 2}, 3), "repeated axis")
	assert.False(t, IsPermutation(Indices{0, 1}, 3), "wrong length")
	assert.False(t, IsPermutation(Indices{0, 1, 3}, 3), "axis out of range")

	order := Indices{2, 0, 1}
	inv := InversePermutation(order)
	for i, d := range order {
		assert.Equal(t, i, inv[d])
	}
}

func TestBroadcastableTo(t *testing.T) {
	tests := []struct {
		from, target Shape
		want         bool
	}{
		{Shape{4}, Shape{3, 4}, true},
		{Shape{1, 4}, Shape{3, 4}, true},
		{Shape{3, 1}, Shape{3, 4}, true},
		{Shape{1}, Shape{2, 3, 4}, true},
		{Shape{3}, Shape{3, 4}, false},
		{Shape{3, 4}, Shape{4}, false},
		{Shape{3, 1}, Shape{1, 4}, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BroadcastableTo(tt.from, tt.target), "%v -> %v", tt.from, tt.target)
	}
}

func TestBatchShape(t *testing.T) {
	batch, err := BatchShape(Shape{5, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, Shape{5, 2}, batch)

	_, err = BatchShape(Shape{3, 4})
	require.ErrorIs(t, err, ErrNotEnoughDimensions)
}

func TestResolveShape(t *testing.T) {
	from := Shape{2, 3, 4}

	got, err := resolveShape(from, Shape{Infer, 4})
	require.NoError(t, err)
	assert.Equal(t, Shape{6, 4}, got)

	got, err = resolveShape(from, Shape{24})
	require.NoError(t, err)
	assert.Equal(t, Shape{24}, got)

	_, err = resolveShape(from, Shape{Infer, Infer})
	require.ErrorIs(t, err, ErrAmbiguousInference)

	_, err = resolveShape(from, Shape{5, 5})
	require.ErrorIs(t, err, ErrMismatchedElementCount)

	_, err = resolveShape(from, Shape{Infer, 5})
	require.ErrorIs(t, err, ErrMismatchedElementCount)

	_, err = resolveShape(from, Shape{-2, 12})
	require.ErrorIs(t, err, ErrInvalidShape)
}
