// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

// Cause represents one or more failures of type E as a binary tree.
// A single failed instruction produces a leaf (Single); Then and
// Both arise above the interpreter, in user code that re-raises inside
// a handler (Then) or accumulates two independent failures (Both).
//
// The interpreter never constructs Then or Both on its own — it only
// ever builds or propagates a Cause handed to it by Fail, Halt, or a
// FoldCauseM failure handler.
type Cause[E any] interface {
	// First returns the leftmost leaf of the tree.
	First() E
	// ToList returns every leaf, in left-to-right order.
	ToList() []E

	causeNode()
}

type singleCause[E any] struct {
	err E
}

// Single wraps one failure value as a leaf Cause.
func Single[E any](err E) Cause[E] {
	return singleCause[E]{err: err}
}

func (c singleCause[E]) causeNode() {}

func (c singleCause[E]) First() E {
	return c.err
}

func (c singleCause[E]) ToList() []E {
	return []E{c.err}
}

type thenCause[E any] struct {
	left, right Cause[E]
}

// Then composes two causes sequentially: right arose while
// handling left (e.g. a failure raised from inside an onCause handler
// that itself failed).
func Then[E any](left, right Cause[E]) Cause[E] {
	return thenCause[E]{left: left, right: right}
}

func (c thenCause[E]) causeNode() {}

func (c thenCause[E]) First() E {
	return c.left.First()
}

func (c thenCause[E]) ToList() []E {
	return append(c.left.ToList(), c.right.ToList()...)
}

type bothCause[E any] struct {
	left, right Cause[E]
}

// Both composes two independent, accumulated causes — neither
// caused the other.
func Both[E any](left, right Cause[E]) Cause[E] {
	return bothCause[E]{left: left, right: right}
}

func (c bothCause[E]) causeNode() {}

func (c bothCause[E]) First() E {
	return c.left.First()
}

func (c bothCause[E]) ToList() []E {
	return append(c.left.ToList(), c.right.ToList()...)
}

// Equal reports whether two causes have the same shape and the same
// leaf values, in order. It is a standalone function rather than a
// method so that Cause[E] itself need not require E comparable.
func Equal[E comparable](a, b Cause[E]) bool {
	switch av := a.(type) {
	case singleCause[E]:
		bv, ok := b.(singleCause[E])
		return ok && av.err == bv.err
	case thenCause[E]:
		bv, ok := b.(thenCause[E])
		return ok && Equal(av.left, bv.left) && Equal(av.right, bv.right)
	case bothCause[E]:
		bv, ok := b.(bothCause[E])
		return ok && Equal(av.left, bv.left) && Equal(av.right, bv.right)
	default:
		return false
	}
}
