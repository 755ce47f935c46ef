// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndview/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for storable element types.
type DType = tensor.DType

// Numeric is a constraint for element types supporting arithmetic.
type Numeric = tensor.Numeric

// DataType represents the runtime element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
	Int     DataType = tensor.Int
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	CUDA   Device = tensor.CUDA
	Vulkan Device = tensor.Vulkan
	Metal  Device = tensor.Metal
	WebGPU Device = tensor.WebGPU
)

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// Indices holds strides, offsets, orders and index tuples.
type Indices = tensor.Indices

// MajorOrder selects row- or column-major layout.
type MajorOrder = tensor.MajorOrder

// Canonical orders.
const (
	RowMajor    MajorOrder = tensor.RowMajor
	ColumnMajor MajorOrder = tensor.ColumnMajor
)

// Infer marks the reshape dimension computed from the element count.
const Infer = tensor.Infer

// FormatConfig controls the textual rendering of tensors.
type FormatConfig = tensor.FormatConfig

// Tensor couples a strided View with shared, reference-counted Storage.
//
// T is the element type, B the storage backend.
//
// Example:
//
//	backend := cpu.New()
//	x, _ := tensor.New[float32](tensor.Shape{2, 3, 4}, backend)
//	y, _ := tensor.Transpose(x, tensor.Indices{1, 0, 2}) // zero-copy
type Tensor[T DType, B Backend] = tensor.Tensor[T, B]

// Sentinel errors, matched with errors.Is.
var (
	ErrMismatchedElementCount = tensor.ErrMismatchedElementCount
	ErrMismatchedDimensions   = tensor.ErrMismatchedDimensions
	ErrCannotBroadcast        = tensor.ErrCannotBroadcast
	ErrNotEnoughDimensions    = tensor.ErrNotEnoughDimensions
	ErrInvalidPermutation     = tensor.ErrInvalidPermutation
	ErrIndexOutOfBounds       = tensor.ErrIndexOutOfBounds
	ErrAmbiguousInference     = tensor.ErrAmbiguousInference
	ErrAmbiguousIndex         = tensor.ErrAmbiguousIndex
	ErrInvalidShape           = tensor.ErrInvalidShape
	ErrReleased               = tensor.ErrReleased
)

// Stride computation

// MakeStrides derives dense strides from a fastest-first traversal order.
func MakeStrides(shape Shape, order Indices) Indices {
	return tensor.MakeStrides(shape, order)
}

// RowMajorOrder returns [rank-1, ..., 0].
func RowMajorOrder(rank int) Indices {
	return tensor.RowMajorOrder(rank)
}

// ColMajorOrder returns [0, ..., rank-1].
func ColMajorOrder(rank int) Indices {
	return tensor.ColMajorOrder(rank)
}

// MakeOrder returns the canonical order of the given kind.
func MakeOrder(rank int, major MajorOrder) Indices {
	return tensor.MakeOrder(rank, major)
}

// IsPermutation reports whether order is a permutation of 0..rank-1.
func IsPermutation(order Indices, rank int) bool {
	return tensor.IsPermutation(order, rank)
}

// InversePermutation returns the inverse of a valid permutation.
func InversePermutation(order Indices) Indices {
	return tensor.InversePermutation(order)
}

// BroadcastableTo reports whether from broadcasts to target.
func BroadcastableTo(from, target Shape) bool {
	return tensor.BroadcastableTo(from, target)
}

// BatchShape returns the leading dimensions of a rank >= 3 shape.
func BatchShape(shape Shape) (Shape, error) {
	return tensor.BatchShape(shape)
}

// Creation functions

// New creates a zero-filled row-major tensor.
func New[T DType, B Backend](shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.New[T](shape, b)
}

// NewOrdered creates a zero-filled tensor in the given major order.
func NewOrdered[T DType, B Backend](shape Shape, major MajorOrder, b B) (*Tensor[T, B], error) {
	return tensor.NewOrdered[T](shape, major, b)
}

// FromStorage creates a tensor over existing storage.
func FromStorage[T DType, B Backend](storage *Storage[T], view View, b B) (*Tensor[T, B], error) {
	return tensor.FromStorage(storage, view, b)
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	x, _ := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
func Zeros[T Numeric, B Backend](shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.Zeros[T](shape, b)
}

// Ones creates a tensor filled with ones.
func Ones[T Numeric, B Backend](shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.Ones[T](shape, b)
}

// Full creates a tensor filled with value.
func Full[T DType, B Backend](shape Shape, value T, b B) (*Tensor[T, B], error) {
	return tensor.Full(shape, value, b)
}

// FromSlice creates a row-major tensor from a Go slice.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Tensor[T, B], error) {
	return tensor.FromSlice(data, shape, b)
}

// Scalar creates a tensor of shape {1}.
func Scalar[T DType, B Backend](value T, b B) (*Tensor[T, B], error) {
	return tensor.Scalar(value, b)
}

// Vector creates a rank-1 tensor from a literal.
func Vector[T DType, B Backend](values []T, b B) (*Tensor[T, B], error) {
	return tensor.Vector(values, b)
}

// Matrix creates a rank-2 tensor from nested rows.
func Matrix[T DType, B Backend](rows [][]T, b B) (*Tensor[T, B], error) {
	return tensor.Matrix(rows, b)
}

// Tensor3 creates a rank-3 tensor from a nested literal.
func Tensor3[T DType, B Backend](blocks [][][]T, b B) (*Tensor[T, B], error) {
	return tensor.Tensor3(blocks, b)
}

// Arange creates a 1D tensor start, start+step, ... below end.
//
// Example:
//
//	x, _ := tensor.Arange[float32](0, 10, 1, backend) // [0, 1, ..., 9]
func Arange[T Numeric, B Backend](start, end, step T, b B) (*Tensor[T, B], error) {
	return tensor.Arange(start, end, step, b)
}

// Copy materialises t into fresh row-major storage.
func Copy[T DType, B Backend](t *Tensor[T, B]) (*Tensor[T, B], error) {
	return tensor.Copy(t)
}

// Fill sets every element of t to value.
func Fill[T DType, B Backend](t *Tensor[T, B], value T) {
	tensor.Fill(t, value)
}

// FillFunc fills t in traversal order with successive results of fn.
func FillFunc[T DType, B Backend](t *Tensor[T, B], fn func() T) {
	tensor.FillFunc(t, fn)
}

// Iota fills t in traversal order with start, start+step, ...
func Iota[T Numeric, B Backend](t *Tensor[T, B], start, step T) {
	tensor.Iota(t, start, step)
}

// Shape algebra

// Transpose permutes the dimensions of t without copying.
func Transpose[T DType, B Backend](t *Tensor[T, B], order Indices) (*Tensor[T, B], error) {
	return tensor.Transpose(t, order)
}

// Reshape re-views t with a new shape, copying only non-dense sources.
func Reshape[T DType, B Backend](t *Tensor[T, B], shape Shape) (*Tensor[T, B], error) {
	return tensor.Reshape(t, shape)
}

// BroadcastTo views t with a larger shape using stride 0.
func BroadcastTo[T DType, B Backend](t *Tensor[T, B], shape Shape) (*Tensor[T, B], error) {
	return tensor.BroadcastTo(t, shape)
}

// Broadcast brings a and b to a common shape, one direction only.
func Broadcast[T DType, B Backend](a, b *Tensor[T, B]) (*Tensor[T, B], *Tensor[T, B], error) {
	return tensor.Broadcast(a, b)
}

// Squeeze removes a dimension of extent 1.
func Squeeze[T DType, B Backend](t *Tensor[T, B], dim int) (*Tensor[T, B], error) {
	return tensor.Squeeze(t, dim)
}

// Unsqueeze inserts a dimension of extent 1.
func Unsqueeze[T DType, B Backend](t *Tensor[T, B], dim int) (*Tensor[T, B], error) {
	return tensor.Unsqueeze(t, dim)
}

// Elementwise operations

// Apply combines a and b elementwise, broadcasting one to the other.
func Apply[R, T DType, B Backend](a, b *Tensor[T, B], fn func(x, y T) R) (*Tensor[R, B], error) {
	return tensor.Apply(a, b, fn)
}

// ApplyInPlace replaces each element of dst with fn(dst, src).
func ApplyInPlace[T DType, B Backend](dst, src *Tensor[T, B], fn func(x, y T) T) error {
	return tensor.ApplyInPlace(dst, src, fn)
}

// Map applies fn to every element, returning a new tensor.
func Map[R, T DType, B Backend](t *Tensor[T, B], fn func(T) R) (*Tensor[R, B], error) {
	return tensor.Map(t, fn)
}

// MapInPlace replaces every element with fn(element).
func MapInPlace[T DType, B Backend](t *Tensor[T, B], fn func(T) T) {
	tensor.MapInPlace(t, fn)
}

// Add returns a + b.
func Add[T Numeric, B Backend](a, b *Tensor[T, B]) (*Tensor[T, B], error) {
	return tensor.Add(a, b)
}

// Sub returns a - b.
func Sub[T Numeric, B Backend](a, b *Tensor[T, B]) (*Tensor[T, B], error) {
	return tensor.Sub(a, b)
}

// Mul returns a * b elementwise.
func Mul[T Numeric, B Backend](a, b *Tensor[T, B]) (*Tensor[T, B], error) {
	return tensor.Mul(a, b)
}

// Div returns a / b elementwise.
func Div[T Numeric, B Backend](a, b *Tensor[T, B]) (*Tensor[T, B], error) {
	return tensor.Div(a, b)
}

// AddInPlace performs dst += src.
func AddInPlace[T Numeric, B Backend](dst, src *Tensor[T, B]) error {
	return tensor.AddInPlace(dst, src)
}

// SubInPlace performs dst -= src.
func SubInPlace[T Numeric, B Backend](dst, src *Tensor[T, B]) error {
	return tensor.SubInPlace(dst, src)
}

// MulInPlace performs dst *= src.
func MulInPlace[T Numeric, B Backend](dst, src *Tensor[T, B]) error {
	return tensor.MulInPlace(dst, src)
}

// DivInPlace performs dst /= src.
func DivInPlace[T Numeric, B Backend](dst, src *Tensor[T, B]) error {
	return tensor.DivInPlace(dst, src)
}

// Sin returns the elementwise sine.
func Sin[T float32 | float64, B Backend](t *Tensor[T, B]) (*Tensor[T, B], error) {
	return tensor.Sin(t)
}

// SinInPlace replaces every element with its sine.
func SinInPlace[T float32 | float64, B Backend](t *Tensor[T, B]) {
	tensor.SinInPlace(t)
}

// Dot computes vector, matrix and batched matrix products.
func Dot[T Numeric, B Backend](a, b *Tensor[T, B]) (*Tensor[T, B], error) {
	return tensor.Dot(a, b)
}

// Comparison and reductions

// Equal compares a and b elementwise.
func Equal[T DType, B Backend](a, b *Tensor[T, B]) (*Tensor[bool, B], error) {
	return tensor.Equal(a, b)
}

// NotEqual compares a and b elementwise.
func NotEqual[T DType, B Backend](a, b *Tensor[T, B]) (*Tensor[bool, B], error) {
	return tensor.NotEqual(a, b)
}

// All reports whether pred holds for every element.
func All[T DType, B Backend](t *Tensor[T, B], pred func(T) bool) bool {
	return tensor.All(t, pred)
}

// Any reports whether pred holds for some element.
func Any[T DType, B Backend](t *Tensor[T, B], pred func(T) bool) bool {
	return tensor.Any(t, pred)
}

// Equals reports whether a and b have the same shape and elements.
func Equals[T DType, B Backend](a, b *Tensor[T, B]) bool {
	return tensor.Equals(a, b)
}

// Formatting

// DefaultFormatConfig returns the rendering used by Tensor.String.
func DefaultFormatConfig() FormatConfig {
	return tensor.DefaultFormatConfig()
}

// Format renders t as nested bracketed rows.
func Format[T DType, B Backend](t *Tensor[T, B], cfg FormatConfig) string {
	return tensor.Format(t, cfg)
}
