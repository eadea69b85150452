package sentinel

import (
	"iter"

	"github.com/mgnsk/sentinel/internal/ring"
)

// Iterator is a forward iterator over the values of a list.
//
// An iterator is invalidated when its list is modified by a push or
// unlink. Replacing values does not invalidate it. Value panics with
// ErrIteratorInvalidated on an invalidated iterator.
type Iterator[V any] struct {
	cursor[V]
}

// Iter returns an iterator positioned before the head of list l.
func (l *List[V]) Iter() *Iterator[V] {
	l.lazyInit()
	return &Iterator[V]{newCursor(l)}
}

// Value returns the current value.
func (it *Iterator[V]) Value() V {
	return it.current().Value
}

// MutIterator is a forward iterator over pointers to the values of a list.
// Value and Set panic with ErrIteratorInvalidated on an invalidated iterator.
type MutIterator[V any] struct {
	cursor[V]
}

// IterMut returns a mutable iterator positioned before the head of list l.
func (l *List[V]) IterMut() *MutIterator[V] {
	l.lazyInit()
	return &MutIterator[V]{newCursor(l)}
}

// Value returns a pointer to the current value.
func (it *MutIterator[V]) Value() *V {
	return &it.current().Value
}

// Set replaces the current value.
func (it *MutIterator[V]) Set(value V) {
	it.current().Value = value
}

// All returns a sequence of values from head to tail.
// It panics with ErrIteratorInvalidated if the list is modified by the loop body.
func (l *List[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		l.walk(forward, func(n *ring.Node[V]) bool {
			return yield(n.Value)
		})
	}
}

// Pointers returns a sequence of pointers to values from head to tail.
// It panics with ErrIteratorInvalidated if the list is modified by the loop body.
func (l *List[V]) Pointers() iter.Seq[*V] {
	return func(yield func(*V) bool) {
		l.walk(forward, func(n *ring.Node[V]) bool {
			return yield(&n.Value)
		})
	}
}

// Backward returns a sequence of values from tail to head.
// It panics with ErrIteratorInvalidated if the list is modified by the loop body.
func (l *List[V]) Backward() iter.Seq[V] {
	return func(yield func(V) bool) {
		l.walk(backward, func(n *ring.Node[V]) bool {
			return yield(n.Value)
		})
	}
}

type direction bool

const (
	forward  direction = true
	backward direction = false
)

func (l *List[V]) walk(dir direction, f func(n *ring.Node[V]) bool) {
	l.lazyInit()

	version := l.version
	step := (*ring.Node[V]).Next
	if dir == backward {
		step = (*ring.Node[V]).Prev
	}

	for n := step(&l.root); n != &l.root; {
		next := step(n)
		if !f(n) {
			return
		}
		if l.version != version {
			panic(ErrIteratorInvalidated)
		}
		n = next
	}
}

type cursor[V any] struct {
	list    *List[V]
	node    *ring.Node[V]
	version uint64
	err     error
	done    bool
}

func newCursor[V any](l *List[V]) cursor[V] {
	return cursor[V]{
		list:    l,
		node:    &l.root,
		version: l.version,
	}
}

// Next advances the iterator and reports whether a value is available.
// It returns false when the list is exhausted or was modified.
func (c *cursor[V]) Next() bool {
	if c.done {
		return false
	}

	if c.list.version != c.version {
		c.err = ErrIteratorInvalidated
		c.done = true
		return false
	}

	c.node = c.node.Next()
	if c.node == &c.list.root {
		c.done = true
		return false
	}

	return true
}

// Err returns ErrIteratorInvalidated if the iteration stopped because the list was modified.
func (c *cursor[V]) Err() error {
	return c.err
}

func (c *cursor[V]) current() *ring.Node[V] {
	if c.list.version != c.version {
		c.err = ErrIteratorInvalidated
		c.done = true
		panic(ErrIteratorInvalidated)
	}
	if c.done || c.node == &c.list.root {
		panic("sentinel: iterator is not positioned at an element")
	}
	return c.node
}
