package shiftset

// node is a splay tree node. key is meaningful only once every pending delta
// on the root-to-node path has been folded in. pendingLeft and pendingRight
// hold deltas owed to the left and right child subtree that have not been
// pushed down yet; a nil child slot always carries a zero accumulator.
type node[T Number] struct {
	key          T
	pendingLeft  T
	pendingRight T
	left         *node[T]
	right        *node[T]
	parent       *node[T]
}

// pushDown folds the delta owed to x by its parent into x itself: the
// parent-side accumulator is added to x.key, re-owed to x's child subtrees,
// and cleared on the parent. Must run before x's key is compared, before x
// is rotated, and before x is detached from its parent.
func (x *node[T]) pushDown() {
	if x == nil || x.parent == nil {
		return
	}
	p := x.parent
	var owed T
	if x == p.left {
		owed = p.pendingLeft
		p.pendingLeft = 0
	} else {
		owed = p.pendingRight
		p.pendingRight = 0
	}
	x.key += owed
	if x.left != nil {
		x.pendingLeft += owed
	}
	if x.right != nil {
		x.pendingRight += owed
	}
}

// rotate lifts x above its parent. The subtree that switches sides keeps its
// debt: the accumulator x held for it moves onto the parent's vacated child
// slot, and the slot x now holds the parent in starts clean.
func (x *node[T]) rotate() {
	p := x.parent
	if p == nil {
		return
	}
	x.pushDown()
	g := p.parent
	x.parent = g
	if g != nil {
		if g.left == p {
			g.left = x
		} else {
			g.right = x
		}
	}
	if p.left == x {
		p.left = x.right
		if x.right != nil {
			x.right.parent = p
		}
		x.right = p
		p.pendingLeft = x.pendingRight
		x.pendingRight = 0
	} else {
		p.right = x.left
		if x.left != nil {
			x.left.parent = p
		}
		x.left = p
		p.pendingRight = x.pendingLeft
		x.pendingLeft = 0
	}
	p.parent = x
}

// descend walks from the root toward value, folding pending deltas into both
// children of every node on the path so keys compare at their true values.
// It returns the node holding value, or the last node before a nil child.
// The tree must not be empty.
func (s *Set[T]) descend(value T) *node[T] {
	x := s.root
	for x.key != value {
		x.left.pushDown()
		x.right.pushDown()
		if x.key > value {
			if x.left == nil {
				break
			}
			x = x.left
		} else {
			if x.right == nil {
				break
			}
			x = x.right
		}
	}
	return x
}

// splay moves the node holding value, or the closest node on its search
// path, to the root. Every public operation funnels through here, so after
// it returns the root key is exact and the target of the operation sits at
// the top.
func (s *Set[T]) splay(value T) {
	x := s.descend(value)
	for x.parent != nil && x.parent.parent != nil {
		p := x.parent
		g := p.parent
		if (x == p.left) == (p == g.left) {
			// zig-zig: parent first, then x
			p.rotate()
			x.rotate()
		} else {
			// zig-zag: x twice
			x.rotate()
			x.rotate()
		}
	}
	if x.parent != nil {
		x.rotate()
	}
	s.root = x
}
