package tensor

import "errors"

// Sentinel errors returned by tensor operations. Operations wrap them with
// context via fmt.Errorf("op: %w: ...", ErrX); match with errors.Is.
var (
	// ErrMismatchedElementCount is returned when a reshape target (or the
	// operands of a vector product) hold a different number of elements.
	ErrMismatchedElementCount = errors.New("tensor: mismatched element count")

	// ErrMismatchedDimensions is returned when operand shapes differ and
	// cannot be reconciled, including inner/batch dimensions of products.
	ErrMismatchedDimensions = errors.New("tensor: mismatched dimensions")

	// ErrCannotBroadcast is returned when a broadcast target is structurally
	// incompatible with the source shape.
	ErrCannotBroadcast = errors.New("tensor: cannot broadcast")

	// ErrNotEnoughDimensions is returned when an operation needs more
	// dimensions than its input has, including slicing past the last one.
	ErrNotEnoughDimensions = errors.New("tensor: not enough dimensions")

	// ErrInvalidPermutation is returned when a transpose order is not a
	// permutation of 0..rank-1.
	ErrInvalidPermutation = errors.New("tensor: invalid permutation")

	// ErrIndexOutOfBounds is returned when an index falls outside its
	// dimension's extent, or an index tuple has the wrong length.
	ErrIndexOutOfBounds = errors.New("tensor: index out of bounds")

	// ErrAmbiguousInference is returned when a reshape target has more than
	// one Infer marker.
	ErrAmbiguousInference = errors.New("tensor: cannot infer more than one dimension")

	// ErrAmbiguousIndex is returned by scalar indexing when more than one
	// dimension has an extent other than 1.
	ErrAmbiguousIndex = errors.New("tensor: scalar index is ambiguous")

	// ErrInvalidShape is returned for negative extents, mismatched
	// shape/stride lengths and similar malformed layouts.
	ErrInvalidShape = errors.New("tensor: invalid shape")

	// ErrReleased is returned when a tensor is used after its storage was freed.
	ErrReleased = errors.New("tensor: storage released")
)
