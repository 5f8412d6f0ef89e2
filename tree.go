package arbor

import "fmt"

// Tree is an N-ary tree of T values addressed by NodeID handles.
//
// The tree is the sole owner of its nodes: every node reachable from the
// root has exactly one registry entry, and every registry entry is
// reachable from the root. Mutations are all-or-nothing per call. A Tree
// is not safe for concurrent mutation; callers needing that must serialize
// access externally.
type Tree[T Value[T]] struct {
	root   *Node[T]
	nodes  map[NodeID]*Node[T] // registry for O(1) identity lookup
	nextID NodeID
}

// New creates an empty tree. It runs the one-time value-type round-trip
// check and fails with ErrIncompatibleValue if T cannot be encoded,
// decoded, and compared coherently.
func New[T Value[T]]() (*Tree[T], error) {
	if err := checkValue[T](); err != nil {
		return nil, err
	}
	return &Tree[T]{
		nodes:  make(map[NodeID]*Node[T]),
		nextID: 1,
	}, nil
}

// NewWithRoot creates a tree already holding a root value.
func NewWithRoot[T Value[T]](value T) (*Tree[T], error) {
	t, err := New[T]()
	if err != nil {
		return nil, err
	}
	// SetRoot cannot fail on a fresh tree.
	if _, err := t.SetRoot(value); err != nil {
		return nil, err
	}
	return t, nil
}

// SetRoot installs the root node of an empty tree and returns its identity.
// It fails with ErrAlreadyInitialized if a root exists.
func (t *Tree[T]) SetRoot(value T) (NodeID, error) {
	if t.root != nil {
		return NoNode, ErrAlreadyInitialized
	}
	t.root = newNode(value, nil)
	return t.assignIDs(t.root), nil
}

// Append adds a new leaf holding value as the last child of parent and
// returns the new node's identity.
func (t *Tree[T]) Append(parent NodeID, value T) (NodeID, error) {
	p, ok := t.nodes[parent]
	if !ok {
		return NoNode, fmt.Errorf("%w: parent %d", ErrNoSuchNode, parent)
	}
	child := newNode(value, p)
	p.children = append(p.children, child)
	return t.assignIDs(child), nil
}

// Remove detaches the subtree rooted at id and releases it as a unit.
// Removing the root is forbidden: a tree is either empty or anchored by a
// single root, and "remove the root but keep its children" has no meaning
// here. Sibling order of the remaining children is preserved.
func (t *Tree[T]) Remove(id NodeID) error {
	n, ok := t.nodes[id]
	if !ok {
		return fmt.Errorf("%w: node %d", ErrNoSuchNode, id)
	}
	if n == t.root {
		return fmt.Errorf("%w: the root cannot be removed", ErrIllegalOperation)
	}

	// Deregister children before the node itself so a partially cleaned
	// subtree is never observable through the registry.
	t.deregister(n)

	siblings := n.parent.children
	for i, c := range siblings {
		if c == n {
			n.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	n.parent = nil
	return nil
}

// Children returns the identities of id's children in order. A leaf yields
// an empty slice, not an error.
func (t *Tree[T]) Children(id NodeID) ([]NodeID, error) {
	n, ok := t.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: node %d", ErrNoSuchNode, id)
	}
	ids := make([]NodeID, len(n.children))
	for i, c := range n.children {
		ids[i] = c.id
	}
	return ids, nil
}

// Value returns the value held by id.
func (t *Tree[T]) Value(id NodeID) (T, error) {
	n, ok := t.nodes[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: node %d", ErrNoSuchNode, id)
	}
	return n.value, nil
}

// MustValue is indexed-access sugar for Value. It panics if id does not
// name a live node; use it only with identities the tree just handed out.
func (t *Tree[T]) MustValue(id NodeID) T {
	v, err := t.Value(id)
	if err != nil {
		panic(err)
	}
	return v
}

// Parent returns the identity of id's parent, or NoNode for the root.
func (t *Tree[T]) Parent(id NodeID) (NodeID, error) {
	n, ok := t.nodes[id]
	if !ok {
		return NoNode, fmt.Errorf("%w: node %d", ErrNoSuchNode, id)
	}
	if n.parent == nil {
		return NoNode, nil
	}
	return n.parent.id, nil
}

// RootID returns the root's identity, or NoNode for an empty tree.
func (t *Tree[T]) RootID() NodeID {
	if t.root == nil {
		return NoNode
	}
	return t.root.id
}

// Len returns the number of live nodes.
func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// assignIDs walks a newly attached subtree in pre-order, giving each node
// the next unused identity and registering it. Returns the identity given
// to the subtree's root.
func (t *Tree[T]) assignIDs(n *Node[T]) NodeID {
	n.id = t.nextID
	t.nextID++
	t.nodes[n.id] = n
	for _, c := range n.children {
		t.assignIDs(c)
	}
	return n.id
}

// deregister removes a subtree from the registry, children first.
func (t *Tree[T]) deregister(n *Node[T]) {
	for _, c := range n.children {
		t.deregister(c)
	}
	delete(t.nodes, n.id)
}
