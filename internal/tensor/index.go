package tensor

import (
	"fmt"
	"iter"
)

// IndexGenerator enumerates every index tuple of a shape.
//
// The traversal follows the relative order of the strides: the dimension
// with the smallest stride varies fastest. For the c-th position the index
// along dimension d is (c / strides[d]) % shape[d], so the same generator
// walks row-major, column-major and permuted layouts without branching.
//
// The yielded Indices slice is owned by the generator and is overwritten on
// every step; clone it to keep it.
type IndexGenerator struct {
	shape   Shape
	strides Indices
	index   Indices
	count   int
	total   int
	started bool
}

// NewIndexGenerator creates a generator for shape traversed by strides.
// strides must be dense (as produced by MakeStrides) for the traversal to
// visit every position exactly once.
func NewIndexGenerator(shape Shape, strides Indices) (*IndexGenerator, error) {
	if len(shape) != len(strides) {
		return nil, fmt.Errorf("%w: shape %v and strides %v differ in length", ErrInvalidShape, shape, strides)
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() > 0 {
		for d, s := range strides {
			if s <= 0 {
				return nil, fmt.Errorf("%w: traversal stride %d of dimension %d must be positive", ErrInvalidShape, s, d)
			}
		}
	}
	return newIndexGenerator(shape, strides), nil
}

func newIndexGenerator(shape Shape, strides Indices) *IndexGenerator {
	return &IndexGenerator{
		shape:   shape.Clone(),
		strides: strides.Clone(),
		index:   make(Indices, len(shape)),
		total:   shape.NumElements(),
	}
}

// RowMajorIndices enumerates shape in row-major order.
func RowMajorIndices(shape Shape) *IndexGenerator {
	return newIndexGenerator(shape, MakeStrides(shape, RowMajorOrder(len(shape))))
}

// ViewIndices enumerates a view in the order recorded by view.Order.
func ViewIndices(v View) *IndexGenerator {
	return newIndexGenerator(v.Shape, v.TraversalStrides())
}

// Next advances to the next index tuple and reports whether one exists.
func (g *IndexGenerator) Next() bool {
	if g.started {
		g.count++
	}
	g.started = true
	if g.count >= g.total {
		g.count = g.total
		return false
	}
	g.update()
	return true
}

// Index returns the current index tuple.
func (g *IndexGenerator) Index() Indices {
	return g.index
}

// Count returns the position of the current tuple in the traversal.
func (g *IndexGenerator) Count() int {
	return g.count
}

// Len returns the number of tuples the generator yields.
func (g *IndexGenerator) Len() int {
	return g.total
}

// Reset rewinds the generator to before the first tuple.
func (g *IndexGenerator) Reset() {
	g.count = 0
	g.started = false
	clear(g.index)
}

// All returns the traversal as a range-over-func sequence. Every call
// starts from the beginning and leaves the receiver untouched.
func (g *IndexGenerator) All() iter.Seq[Indices] {
	return func(yield func(Indices) bool) {
		it := newIndexGenerator(g.shape, g.strides)
		for it.Next() {
			if !yield(it.Index()) {
				return
			}
		}
	}
}

func (g *IndexGenerator) update() {
	for d, stride := range g.strides {
		g.index[d] = (g.count / stride) % g.shape[d]
	}
}
