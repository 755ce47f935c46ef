package tensor

import (
	"fmt"
	"slices"
)

// Shape represents the dimensions of a tensor.
type Shape []int

// Indices is an ordered sequence of per-dimension integers. Strides,
// offsets, traversal orders and index tuples all use it.
type Indices []int

// Infer marks the one dimension of a reshape target whose extent is
// computed from the element count.
const Infer = -1

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	n := 1 // Scalar has 1 element
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks that no extent is negative. Zero extents are allowed and
// describe empty tensors.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d has extent %d", ErrInvalidShape, i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Equal checks if two index sequences are equal.
func (ix Indices) Equal(other Indices) bool {
	return slices.Equal(ix, other)
}

// Clone returns a copy of the indices.
func (ix Indices) Clone() Indices {
	clone := make(Indices, len(ix))
	copy(clone, ix)
	return clone
}

// MajorOrder selects one of the two canonical dimension orders.
type MajorOrder int

// Canonical orders.
const (
	RowMajor MajorOrder = iota
	ColumnMajor
)

// String returns the order name.
func (m MajorOrder) String() string {
	switch m {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	default:
		return "unknown"
	}
}

// RowMajorOrder returns [rank-1, ..., 0]: the last dimension varies fastest.
func RowMajorOrder(rank int) Indices {
	order := make(Indices, rank)
	for i := range order {
		order[i] = rank - 1 - i
	}
	return order
}

// ColMajorOrder returns [0, ..., rank-1]: the first dimension varies fastest.
func ColMajorOrder(rank int) Indices {
	order := make(Indices, rank)
	for i := range order {
		order[i] = i
	}
	return order
}

// MakeOrder returns the canonical order of the given kind.
func MakeOrder(rank int, major MajorOrder) Indices {
	if major == ColumnMajor {
		return ColMajorOrder(rank)
	}
	return RowMajorOrder(rank)
}

// MakeStrides derives dense strides for shape from a traversal order.
//
// order lists dimensions from fastest to slowest varying: order[0] gets
// stride 1 and each following dimension gets the running product of the
// extents before it. Row-major {2, 3, 4} gives {12, 4, 1}; column-major
// gives {1, 2, 6}.
func MakeStrides(shape Shape, order Indices) Indices {
	strides := make(Indices, len(shape))
	stride := 1
	for _, dim := range order {
		strides[dim] = stride
		stride *= shape[dim]
	}
	return strides
}

// IsPermutation reports whether order is a permutation of 0..rank-1.
func IsPermutation(order Indices, rank int) bool {
	if len(order) != rank {
		return false
	}
	seen := make([]bool, rank)
	for _, d := range order {
		if d < 0 || d >= rank || seen[d] {
			return false
		}
		seen[d] = true
	}
	return true
}

// InversePermutation returns inv such that inv[order[i]] == i.
// order must be a valid permutation.
func InversePermutation(order Indices) Indices {
	inv := make(Indices, len(order))
	for i, d := range order {
		inv[d] = i
	}
	return inv
}

// BroadcastableTo reports whether from can be broadcast to target: aligned
// from the trailing dimension, every extent of from must equal the target
// extent or be 1, and target must have at least as many dimensions.
func BroadcastableTo(from, target Shape) bool {
	if len(target) < len(from) {
		return false
	}
	diff := len(target) - len(from)
	for i, dim := range from {
		if dim != target[diff+i] && dim != 1 {
			return false
		}
	}
	return true
}

// BatchShape returns the leading (batch) dimensions of a shape with at
// least three dimensions, i.e. everything but the trailing matrix dims.
func BatchShape(shape Shape) (Shape, error) {
	if len(shape) < 3 {
		return nil, fmt.Errorf("batch shape: %w: %v", ErrNotEnoughDimensions, shape)
	}
	return shape[:len(shape)-2].Clone(), nil
}

// resolveShape replaces a single Infer marker in target using the element
// count of from and checks the counts agree.
func resolveShape(from, target Shape) (Shape, error) {
	resolved := target.Clone()
	inferred := -1
	known := 1
	for i, dim := range resolved {
		switch {
		case dim == Infer:
			if inferred >= 0 {
				return nil, fmt.Errorf("%w: %v", ErrAmbiguousInference, target)
			}
			inferred = i
		case dim < 0:
			return nil, fmt.Errorf("%w: dimension %d has extent %d", ErrInvalidShape, i, dim)
		default:
			known *= dim
		}
	}

	total := from.NumElements()
	if inferred >= 0 {
		if known == 0 || total%known != 0 {
			return nil, fmt.Errorf("%w: cannot infer dimension %d of %v from %d elements",
				ErrMismatchedElementCount, inferred, target, total)
		}
		resolved[inferred] = total / known
	}

	if resolved.NumElements() != total {
		return nil, fmt.Errorf("%w: %v has %d elements, %v has %d",
			ErrMismatchedElementCount, resolved, resolved.NumElements(), from, total)
	}
	return resolved, nil
}
