package shiftset

import "golang.org/x/exp/constraints"

// Number bounds the element types a Set can hold. Elements need a strict
// total order plus an addition whose zero value is the identity, which is
// what the pending-delta bookkeeping relies on. Float keys must not be NaN.
type Number interface {
	constraints.Integer | constraints.Float
}

// Set is an ordered set with an amortized O(log n) bulk shift: Shift adds a
// delta to every element at or above a pivot without visiting them one by
// one. The zero value is an empty set ready to use.
//
// A Set is not safe for concurrent use. Lookups splay and therefore write to
// the tree, so even Find needs external serialization.
type Set[T Number] struct {
	root *node[T]
}

// New returns an empty set.
func New[T Number]() *Set[T] {
	return &Set[T]{}
}

// Find reports whether value is in the set.
func (s *Set[T]) Find(value T) bool {
	if s.root == nil {
		return false
	}
	s.splay(value)
	return s.root.key == value
}

// Insert adds value and reports whether it was absent.
func (s *Set[T]) Insert(value T) bool {
	if s.root == nil {
		s.root = &node[T]{key: value}
		return true
	}
	s.splay(value)
	old := s.root
	if old.key == value {
		return false
	}
	n := &node[T]{key: value}
	if old.key < value {
		// old root is the predecessor: it keeps its left subtree, while its
		// right subtree moves under the new root along with the debt owed
		// to it.
		n.left = old
		n.right = old.right
		old.right = nil
		if n.right != nil {
			n.right.parent = n
		}
		n.pendingRight = old.pendingRight
		old.pendingRight = 0
	} else {
		n.right = old
		n.left = old.left
		old.left = nil
		if n.left != nil {
			n.left.parent = n
		}
		n.pendingLeft = old.pendingLeft
		old.pendingLeft = 0
	}
	old.parent = n
	s.root = n
	return true
}

// Erase removes value and reports whether it was present.
func (s *Set[T]) Erase(value T) bool {
	if s.root == nil {
		return false
	}
	s.splay(value)
	if s.root.key != value {
		return false
	}
	left, right := s.root.left, s.root.right
	switch {
	case left == nil && right == nil:
		s.root = nil
	case left == nil:
		right.pushDown()
		right.parent = nil
		s.root = right
	case right == nil:
		left.pushDown()
		left.parent = nil
		s.root = left
	default:
		// Promote the left subtree, splay its maximum to the top (right.key
		// exceeds every key in it), and hang the right subtree off the
		// vacant right slot.
		left.pushDown()
		left.parent = nil
		s.root = left
		right.pushDown()
		s.splay(right.key)
		s.root.right = right
		right.parent = s.root
	}
	return true
}

// Shift adds delta to every element >= pivot. The cost is one splay plus a
// constant amount of accumulator work, independent of how many elements
// move. Deltas must be non-negative so that the relative order of elements
// is preserved; Shift panics on a negative delta.
func (s *Set[T]) Shift(pivot, delta T) {
	if delta < 0 {
		panic("shiftset: Shift called with negative delta")
	}
	if s.root == nil {
		return
	}
	s.splay(pivot)
	s.shiftRoot(pivot, delta)
}

// shiftRoot applies delta at the root after pivot was splayed there: the
// root key moves when it is >= pivot, and the whole right subtree is
// charged through the pending accumulator without being visited.
func (s *Set[T]) shiftRoot(pivot, delta T) {
	if s.root.key >= pivot {
		s.root.key += delta
	}
	if s.root.right != nil {
		s.root.pendingRight += delta
	}
}

// frame is one step of the non-mutating in-order walk: a node plus the sum
// of pending deltas accumulated on the path down to it.
type frame[T Number] struct {
	n   *node[T]
	off T
}

// SortedValues returns all elements in ascending order with every pending
// delta applied. The walk carries offsets on an explicit stack instead of
// pushing them down, so it does not modify the tree.
func (s *Set[T]) SortedValues() []T {
	if s.root == nil {
		return nil
	}
	out := make([]T, 0, 16)
	stack := make([]frame[T], 0, 16)
	n := s.root
	var off T
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, frame[T]{n, off})
			off += n.pendingLeft
			n = n.left
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, top.n.key+top.off)
		n = top.n.right
		off = top.off + top.n.pendingRight
	}
	return out
}
