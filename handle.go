package sentinel

import (
	"github.com/mgnsk/sentinel/internal/ring"
)

// Handle is the owning reference to a list element.
// It is the only way to access or remove that element.
type Handle[V any] struct {
	list *List[V]
	node *ring.Node[V]
}

// Linked reports whether the handle's element is still in its list.
func (h *Handle[V]) Linked() bool {
	return h.list != nil && h.node.Linked()
}

// Value returns the element value.
func (h *Handle[V]) Value() (value V, err error) {
	if !h.Linked() {
		return value, ErrStaleHandle
	}
	return h.node.Value, nil
}

// Ptr returns a pointer to the element value.
// The pointer is valid until the element is unlinked.
func (h *Handle[V]) Ptr() (*V, error) {
	if !h.Linked() {
		return nil, ErrStaleHandle
	}
	return &h.node.Value, nil
}

// Set replaces the element value.
func (h *Handle[V]) Set(value V) error {
	if !h.Linked() {
		return ErrStaleHandle
	}
	h.node.Value = value
	return nil
}

// Unlink removes the element from its list and returns its value.
// Only the first call succeeds, subsequent calls return ErrStaleHandle.
func (h *Handle[V]) Unlink() (value V, err error) {
	if !h.Linked() {
		return value, ErrStaleHandle
	}

	h.list.remove(h.node)
	h.list = nil

	value = h.node.Value
	var zero V
	h.node.Value = zero

	return value, nil
}

// Release removes the element from its list and discards its value.
// It is a no-op if the element was already removed.
//
//	h := l.PushTail(v)
//	defer h.Release()
func (h *Handle[V]) Release() {
	_, _ = h.Unlink()
}
