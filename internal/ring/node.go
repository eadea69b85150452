/*
Package ring implements the nodes and linking primitives of a circular doubly linked list.
*/
package ring

// Node is a ring node.
type Node[V any] struct {
	next, prev *Node[V]
	Value      V
}

// NewNode creates a detached node holding v.
func NewNode[V any](v V) *Node[V] {
	n := &Node[V]{
		Value: v,
	}
	Init(n)
	return n
}

// Init links n to itself, making it a ring of one.
func Init[V any](n *Node[V]) {
	n.next = n
	n.prev = n
}

// Next returns the successor of n.
func (n *Node[V]) Next() *Node[V] {
	return n.next
}

// Prev returns the predecessor of n.
func (n *Node[V]) Prev() *Node[V] {
	return n.prev
}

// Linked reports whether n is linked to other nodes.
func (n *Node[V]) Linked() bool {
	return n.next != n && n.next != nil
}

// LinkAfter inserts n into the ring of anchor, immediately after anchor.
func LinkAfter[V any](anchor, n *Node[V]) {
	if n.Linked() {
		panic("ring: node is already linked")
	}

	next := anchor.next
	anchor.next = n
	n.prev = anchor
	next.prev = n
	n.next = next
}

// Unlink removes n from its ring and links n to itself.
func Unlink[V any](n *Node[V]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = n
	n.prev = n
}
