/*
Package sentinel implements a circular doubly linked list with a sentinel node
where every inserted element can be removed in constant time through its Handle.
*/
package sentinel

import (
	"github.com/mgnsk/sentinel/internal/ring"
)

// List is a circular doubly linked list.
//
// The zero value is a ready to use empty list.
// A List must not be copied after first use.
type List[V any] struct {
	noCopy  noCopy
	root    ring.Node[V]
	len     int
	version uint64
}

// New creates an empty list.
func New[V any]() *List[V] {
	l := &List[V]{}
	l.lazyInit()
	return l
}

func (l *List[V]) lazyInit() {
	if l.root.Next() == nil {
		ring.Init(&l.root)
	}
}

// Len returns the number of elements in the list.
func (l *List[V]) Len() int {
	return l.len
}

// PushHead inserts a value at the head of list l and returns its handle.
func (l *List[V]) PushHead(value V) *Handle[V] {
	l.lazyInit()
	return l.insertAfter(&l.root, value)
}

// PushTail inserts a value at the tail of list l and returns its handle.
func (l *List[V]) PushTail(value V) *Handle[V] {
	l.lazyInit()
	return l.insertAfter(l.root.Prev(), value)
}

// PushAfter inserts a value immediately after mark and returns its handle.
func (l *List[V]) PushAfter(mark *Handle[V], value V) (*Handle[V], error) {
	if err := l.check(mark); err != nil {
		return nil, err
	}
	return l.insertAfter(mark.node, value), nil
}

// PushBefore inserts a value immediately before mark and returns its handle.
func (l *List[V]) PushBefore(mark *Handle[V], value V) (*Handle[V], error) {
	if err := l.check(mark); err != nil {
		return nil, err
	}
	return l.insertAfter(mark.node.Prev(), value), nil
}

// PeekHead returns the head value. The second return value is false if the list is empty.
func (l *List[V]) PeekHead() (value V, ok bool) {
	if p := l.PeekHeadMut(); p != nil {
		return *p, true
	}
	return value, false
}

// PeekTail returns the tail value. The second return value is false if the list is empty.
func (l *List[V]) PeekTail() (value V, ok bool) {
	if p := l.PeekTailMut(); p != nil {
		return *p, true
	}
	return value, false
}

// PeekHeadMut returns a pointer to the head value or nil if the list is empty.
// The pointer is valid until the head element is unlinked.
func (l *List[V]) PeekHeadMut() *V {
	if l.len == 0 {
		return nil
	}
	return &l.root.Next().Value
}

// PeekTailMut returns a pointer to the tail value or nil if the list is empty.
// The pointer is valid until the tail element is unlinked.
func (l *List[V]) PeekTailMut() *V {
	if l.len == 0 {
		return nil
	}
	return &l.root.Prev().Value
}

// With inserts a value at the tail of list l and calls f with its handle.
// The element is released when f returns or panics unless f unlinked it.
func (l *List[V]) With(value V, f func(h *Handle[V]) error) error {
	h := l.PushTail(value)
	defer h.Release()

	return f(h)
}

// Clear detaches all elements and discards their values.
// Outstanding handles become stale.
func (l *List[V]) Clear() {
	if l.len == 0 {
		return
	}

	for n := l.root.Next(); n != &l.root; {
		next := n.Next()
		ring.Unlink(n)
		var zero V
		n.Value = zero
		n = next
	}

	l.len = 0
	l.version++
}

func (l *List[V]) insertAfter(mark *ring.Node[V], value V) *Handle[V] {
	h := &Handle[V]{
		list: l,
		node: ring.NewNode(value),
	}

	ring.LinkAfter(mark, h.node)
	l.len++
	l.version++

	return h
}

func (l *List[V]) remove(n *ring.Node[V]) {
	ring.Unlink(n)
	l.len--
	l.version++
}

func (l *List[V]) check(h *Handle[V]) error {
	if h.list == nil || !h.node.Linked() {
		return ErrStaleHandle
	}
	if h.list != l {
		return ErrForeignHandle
	}
	return nil
}

// noCopy lets go vet's copylocks check report copies of a List.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
