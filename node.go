package arbor

// NodeID uniquely identifies a node within a Tree. Identities are assigned
// by the owning tree in pre-order, starting at 1, and are never reused for
// the tree's lifetime.
type NodeID uint64

// NoNode is the identity returned when no node applies, e.g. the root
// identity of an empty tree or the parent identity of the root.
const NoNode NodeID = 0

// Node is a single tree vertex. All fields are unexported: nodes are
// created, linked, and destroyed only by the owning Tree, which keeps the
// parent/children invariants enforceable in one place.
type Node[T Value[T]] struct {
	value T
	id    NodeID

	// parent is a non-owning back reference; nil for the root. It always
	// points at the node whose children slice currently contains this node.
	parent *Node[T]

	// children are exclusively owned, in insertion order.
	children []*Node[T]
}

// newNode creates an unregistered node. The caller links it into the tree
// and assigns its identity via assignIDs.
func newNode[T Value[T]](value T, parent *Node[T]) *Node[T] {
	return &Node[T]{
		value:  value,
		parent: parent,
	}
}
