package tensor

import (
	"fmt"
	"math"
)

// Apply combines a and b elementwise into a new row-major tensor. If the
// shapes differ, one operand is broadcast to the other's shape first.
func Apply[R, T DType, B Backend](a, b *Tensor[T, B], fn func(x, y T) R) (*Tensor[R, B], error) {
	if !a.Shape().Equal(b.Shape()) {
		ba, bb, err := Broadcast(a, b)
		if err != nil {
			return nil, err
		}
		defer ba.Release()
		defer bb.Release()
		return Apply(ba, bb, fn)
	}
	if a.released || b.released {
		return nil, ErrReleased
	}

	result, err := New[R](a.Shape(), a.backend)
	if err != nil {
		return nil, err
	}
	for idx := range a.Indices().All() {
		result.put(idx, fn(a.get(idx), b.get(idx)))
	}
	return result, nil
}

// ApplyInPlace replaces each element of dst with fn(dst, src). src is
// broadcast to dst's shape when possible; dst is never reshaped.
func ApplyInPlace[T DType, B Backend](dst, src *Tensor[T, B], fn func(x, y T) T) error {
	if dst.released || src.released {
		return ErrReleased
	}
	if !dst.Shape().Equal(src.Shape()) {
		if !BroadcastableTo(src.Shape(), dst.Shape()) {
			return fmt.Errorf("%w: %v and %v", ErrMismatchedDimensions, dst.Shape(), src.Shape())
		}
		bs, err := broadcastTo(src, dst.Shape())
		if err != nil {
			return err
		}
		defer bs.Release()
		src = bs
	}

	for idx := range dst.Indices().All() {
		dst.put(idx, fn(dst.get(idx), src.get(idx)))
	}
	return nil
}

// Map applies fn to every element of t, returning a new row-major tensor.
func Map[R, T DType, B Backend](t *Tensor[T, B], fn func(T) R) (*Tensor[R, B], error) {
	if t.released {
		return nil, ErrReleased
	}
	result, err := New[R](t.Shape(), t.backend)
	if err != nil {
		return nil, err
	}
	for idx := range t.Indices().All() {
		result.put(idx, fn(t.get(idx)))
	}
	return result, nil
}

// MapInPlace replaces every element of t with fn(element), visiting them
// in traversal order. Broadcast views alias, so fn runs once per view
// position, not once per stored element.
func MapInPlace[T DType, B Backend](t *Tensor[T, B], fn func(T) T) {
	if t.released {
		return
	}
	for idx := range t.Indices().All() {
		t.put(idx, fn(t.get(idx)))
	}
}

// Add returns a + b elementwise.
func Add[T Numeric, B Backend](a, b *Tensor[T, B]) (*Tensor[T, B], error) {
	return Apply(a, b, func(x, y T) T { return x + y })
}

// Sub returns a - b elementwise.
func Sub[T Numeric, B Backend](a, b *Tensor[T, B]) (*Tensor[T, B], error) {
	return Apply(a, b, func(x, y T) T { return x - y })
}

// Mul returns a * b elementwise.
func Mul[T Numeric, B Backend](a, b *Tensor[T, B]) (*Tensor[T, B], error) {
	return Apply(a, b, func(x, y T) T { return x * y })
}

// Div returns a / b elementwise. Integer division by zero panics.
func Div[T Numeric, B Backend](a, b *Tensor[T, B]) (*Tensor[T, B], error) {
	return Apply(a, b, func(x, y T) T { return x / y })
}

// AddInPlace performs dst += src.
func AddInPlace[T Numeric, B Backend](dst, src *Tensor[T, B]) error {
	return ApplyInPlace(dst, src, func(x, y T) T { return x + y })
}

// SubInPlace performs dst -= src.
func SubInPlace[T Numeric, B Backend](dst, src *Tensor[T, B]) error {
	return ApplyInPlace(dst, src, func(x, y T) T { return x - y })
}

// MulInPlace performs dst *= src.
func MulInPlace[T Numeric, B Backend](dst, src *Tensor[T, B]) error {
	return ApplyInPlace(dst, src, func(x, y T) T { return x * y })
}

// DivInPlace performs dst /= src.
func DivInPlace[T Numeric, B Backend](dst, src *Tensor[T, B]) error {
	return ApplyInPlace(dst, src, func(x, y T) T { return x / y })
}

// Sin returns the elementwise sine of a floating-point tensor.
func Sin[T float32 | float64, B Backend](t *Tensor[T, B]) (*Tensor[T, B], error) {
	return Map(t, func(v T) T { return T(math.Sin(float64(v))) })
}

// SinInPlace replaces every element with its sine.
func SinInPlace[T float32 | float64, B Backend](t *Tensor[T, B]) {
	MapInPlace(t, func(v T) T { return T(math.Sin(float64(v))) })
}

// Equal compares a and b elementwise (a == b), broadcasting as Apply does.
func Equal[T DType, B Backend](a, b *Tensor[T, B]) (*Tensor[bool, B], error) {
	return Apply(a, b, func(x, y T) bool { return x == y })
}

// NotEqual compares a and b elementwise (a != b).
func NotEqual[T DType, B Backend](a, b *Tensor[T, B]) (*Tensor[bool, B], error) {
	return Apply(a, b, func(x, y T) bool { return x != y })
}

// All reports whether pred holds for every element. It is true for an
// empty tensor.
func All[T DType, B Backend](t *Tensor[T, B], pred func(T) bool) bool {
	for _, v := range t.All() {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Any reports whether pred holds for at least one element.
func Any[T DType, B Backend](t *Tensor[T, B], pred func(T) bool) bool {
	for _, v := range t.All() {
		if pred(v) {
			return true
		}
	}
	return false
}

// Equals reports whether a and b have the same shape and elements.
// Layout, order and storage are not compared.
func Equals[T DType, B Backend](a, b *Tensor[T, B]) bool {
	if a.released || b.released || !a.Shape().Equal(b.Shape()) {
		return false
	}
	for idx := range a.Indices().All() {
		if a.get(idx) != b.get(idx) {
			return false
		}
	}
	return true
}
